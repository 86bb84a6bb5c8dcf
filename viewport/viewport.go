// seehuhn.de/go/annotate - convert scene annotations into PDF markup
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package viewport maps points from an overlay scene drawn on top of a
// rendered page into the coordinate system of the PDF page.
//
// The render viewport is described by the page view box, a rotation and a
// zoom factor, and follows the conventions of common PDF viewers: device
// space has its origin in the top-left corner of the rendered page, with y
// pointing down.
package viewport

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotate/pdf"
)

var (
	errRotation = errors.New("page rotation must be a multiple of 90 degrees")
	errScale    = errors.New("viewport scale must be positive")
	errViewBox  = errors.New("empty page view box")
)

// Page describes a page as it is shown in a render viewport.
type Page struct {
	// Ref is the page dictionary the annotations are attached to.
	Ref pdf.Reference

	// ViewBox is the visible region of the page, in PDF default user space.
	ViewBox rect.Rect

	// Rotation is the clockwise rotation of the page in degrees.
	// This is one of 0, 90, 180 or 270.
	Rotation int

	// Scale is the zoom factor of the viewport.
	Scale float64

	// transform maps document space to device space.
	transform matrix.Matrix
}

// NewPage returns the viewport description for a page.  The rotation is
// normalised into the range [0, 360).
func NewPage(ref pdf.Reference, viewBox rect.Rect, rotation int, scale float64) (*Page, error) {
	if rotation%90 != 0 {
		return nil, fmt.Errorf("rotation %d: %w", rotation, errRotation)
	}
	rotation %= 360
	if rotation < 0 {
		rotation += 360
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("scale %g: %w", scale, errScale)
	}
	if viewBox.URx == viewBox.LLx || viewBox.URy == viewBox.LLy {
		return nil, errViewBox
	}

	p := &Page{
		Ref:      ref,
		ViewBox:  viewBox,
		Rotation: rotation,
		Scale:    scale,
	}
	p.transform = p.viewportMatrix()
	return p, nil
}

// Height returns the height of the page view box.
func (p *Page) Height() float64 {
	return math.Abs(p.ViewBox.URy - p.ViewBox.LLy)
}

// Width returns the width of the page view box.
func (p *Page) Width() float64 {
	return math.Abs(p.ViewBox.URx - p.ViewBox.LLx)
}

// Transform returns the matrix which maps document space to device space.
func (p *Page) Transform() matrix.Matrix {
	return p.transform
}

func (p *Page) viewportMatrix() matrix.Matrix {
	vb := p.ViewBox
	centerX := (vb.URx + vb.LLx) / 2
	centerY := (vb.URy + vb.LLy) / 2

	var a, b, c, d float64
	switch p.Rotation {
	case 90:
		a, b, c, d = 0, 1, 1, 0
	case 180:
		a, b, c, d = -1, 0, 0, 1
	case 270:
		a, b, c, d = 0, -1, -1, 0
	default:
		a, b, c, d = 1, 0, 0, -1
	}

	s := p.Scale
	var offX, offY float64
	if a == 0 {
		offX = math.Abs(centerY-vb.LLy) * s
		offY = math.Abs(centerX-vb.LLx) * s
	} else {
		offX = math.Abs(centerX-vb.LLx) * s
		offY = math.Abs(centerY-vb.LLy) * s
	}

	return matrix.Matrix{
		a * s, b * s, c * s, d * s,
		offX - a*s*centerX - c*s*centerY,
		offY - b*s*centerX - d*s*centerY,
	}
}

// DocumentToDevice maps a point from PDF user space to device space.
func (p *Page) DocumentToDevice(q vec.Vec2) vec.Vec2 {
	m := p.transform
	return vec.Vec2{
		X: q.X*m[0] + q.Y*m[2] + m[4],
		Y: q.X*m[1] + q.Y*m[3] + m[5],
	}
}

// DeviceToDocument maps a point from device space to PDF user space.
func (p *Page) DeviceToDocument(q vec.Vec2) vec.Vec2 {
	m := p.transform
	det := m[0]*m[3] - m[1]*m[2]
	return vec.Vec2{
		X: (q.X*m[3] - q.Y*m[2] + m[2]*m[5] - m[4]*m[3]) / det,
		Y: (-q.X*m[1] + q.Y*m[0] + m[4]*m[1] - m[5]*m[0]) / det,
	}
}
