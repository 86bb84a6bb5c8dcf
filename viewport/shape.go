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

package viewport

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// GroupTransform is the translation and scaling of a shape group within
// the scene.  Coordinates are in unscaled scene units.
//
// The zero value is the identity.  A scale factor of exactly 0 stands for
// a missing value and is treated as 1.
type GroupTransform struct {
	X, Y           float64
	ScaleX, ScaleY float64
}

// Apply maps a point from shape-local space to scene space.
func (g GroupTransform) Apply(p vec.Vec2) vec.Vec2 {
	sx, sy := g.ScaleX, g.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return vec.Vec2{X: g.X + p.X*sx, Y: g.Y + p.Y*sy}
}

// SceneToDocument maps a point in unscaled scene units to PDF user space.
func (p *Page) SceneToDocument(q vec.Vec2) vec.Vec2 {
	return p.DeviceToDocument(q.Mul(p.Scale))
}

// ShapeToDocument maps a point given in the local coordinates of a shape
// inside the group g to PDF user space.
func (p *Page) ShapeToDocument(g GroupTransform, q vec.Vec2) vec.Vec2 {
	return p.SceneToDocument(g.Apply(q))
}

// ShapePoints maps a flat list of shape-local coordinates x0, y0, x1, y1, ...
// to PDF user space.  A trailing odd coordinate is ignored.
func (p *Page) ShapePoints(g GroupTransform, coords []float64) []vec.Vec2 {
	res := make([]vec.Vec2, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		res = append(res, p.ShapeToDocument(g, vec.Vec2{X: coords[i], Y: coords[i+1]}))
	}
	return res
}

// RectToDocument maps the shape-local rectangle with corner (x, y) and the
// given width and height to PDF user space.  All four corners are
// transformed and the result is the normalised bounding box.
func (p *Page) RectToDocument(g GroupTransform, x, y, width, height float64) rect.Rect {
	corners := [4]vec.Vec2{
		p.ShapeToDocument(g, vec.Vec2{X: x, Y: y}),
		p.ShapeToDocument(g, vec.Vec2{X: x + width, Y: y}),
		p.ShapeToDocument(g, vec.Vec2{X: x, Y: y + height}),
		p.ShapeToDocument(g, vec.Vec2{X: x + width, Y: y + height}),
	}
	return BoundingBox(corners[:])
}

// BoundingBox returns the smallest rectangle containing all points.
// The result is the zero rectangle if pts is empty.
func BoundingBox(pts []vec.Vec2) rect.Rect {
	if len(pts) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{LLx: pts[0].X, LLy: pts[0].Y, URx: pts[0].X, URy: pts[0].Y}
	for _, q := range pts[1:] {
		r.LLx = min(r.LLx, q.X)
		r.LLy = min(r.LLy, q.Y)
		r.URx = max(r.URx, q.X)
		r.URy = max(r.URy, q.Y)
	}
	return r
}
