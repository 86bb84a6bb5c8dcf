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

package form

import (
	"fmt"
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/annotate/pdf"
)

// CounterRotation returns the matrix which undoes a page rotation inside
// an appearance stream of size w×h, so that the appearance is shown upright
// when the page is displayed rotated.  Rotations other than 90, 180 and 270
// degrees give the identity matrix.
func CounterRotation(rotation int, w, h float64) matrix.Matrix {
	switch rotation % 360 {
	case 90, -270:
		return matrix.Matrix{0, 1, -1, 0, h, 0}
	case 180, -180:
		return matrix.Matrix{-1, 0, 0, -1, w, h}
	case 270, -90:
		return matrix.Matrix{0, -1, 1, 0, 0, w}
	default:
		return matrix.Identity
	}
}

// AppearanceBBox returns the bounding box of an appearance stream for an
// annotation rectangle of size w×h on a page with the given rotation.
// Width and height are swapped for rotations by 90 and 270 degrees.
func AppearanceBBox(rotation int, w, h float64) rect.Rect {
	switch rotation % 360 {
	case 90, 270, -90, -270:
		return rect.Rect{URx: h, URy: w}
	default:
		return rect.Rect{URx: w, URy: h}
	}
}

// ImageName is the resource name under which [NewImage] refers to the image.
const ImageName pdf.Name = "Im1"

// NewImage returns a form which shows the image XObject img scaled to
// w×h, counter-rotated for a page with the given rotation.  The second
// return value is the content stream of the form.
func NewImage(img pdf.Reference, rotation int, w, h float64) (*Form, []byte) {
	f := &Form{
		BBox: AppearanceBBox(rotation, w, h),
		Resources: pdf.Dict{
			"XObject": pdf.Dict{ImageName: img},
		},
		DefaultName: "AP",
	}

	m := CounterRotation(rotation, w, h)
	body := fmt.Sprintf("q %s %s %s %s %s %s cm %s 0 0 %s 0 0 cm /%s Do Q",
		num(m[0]), num(m[1]), num(m[2]), num(m[3]), num(m[4]), num(m[5]),
		num(w), num(h), ImageName)
	return f, []byte(body)
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
