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

package annotation

import (
	"errors"

	"seehuhn.de/go/annotate/pdf"
)

// Border describes the border of an annotation, as stored in the /Border
// entry of the annotation dictionary.
type Border struct {
	// HCornerRadius is the horizontal corner radius.
	HCornerRadius float64

	// VCornerRadius is the vertical corner radius.
	VCornerRadius float64

	// Width is the border width in default user space units.
	// If 0, no border is drawn.
	Width float64

	// DashArray (optional; PDF 1.1) defines a pattern of dashes and gaps
	// for drawing the border. If nil, a solid border is drawn.
	DashArray []float64
}

// NoBorder is a border of width zero.
var NoBorder = &Border{}

func (b *Border) isDefault() bool {
	return b.HCornerRadius == 0 &&
		b.VCornerRadius == 0 &&
		b.Width == 1 &&
		b.DashArray == nil
}

func (b *Border) asArray() pdf.Array {
	a := pdf.Array{
		pdf.Number(b.HCornerRadius),
		pdf.Number(b.VCornerRadius),
		pdf.Number(b.Width),
	}
	if b.DashArray != nil {
		a = append(a, pdf.NumberArray(b.DashArray...))
	}
	return a
}

// BorderStyle is a border style dictionary.  For ink and text markup
// annotations it takes precedence over the /Border entry.
//
// See section 12.5.4 of ISO 32000-2:2020.
type BorderStyle struct {
	// Width is the border width in points.
	// If 0, no border is drawn.
	Width float64

	// Style is the border style.
	//  - "S" (Solid) is the default.
	//  - "D" (Dashed) specifies a dashed line.
	//  - "B" (Beveled) specifies a beveled line.
	//  - "I" (Inset) specifies an inset line.
	//  - "U" (Underline) specifies an underline.
	Style pdf.Name

	// DashArray (optional) defines a pattern of dashes and gaps for drawing
	// the border when Style is "D".
	DashArray []float64
}

// Encode converts the border style into a PDF dictionary.
// Width and style are always written, even when they have their default
// values.
func (b *BorderStyle) Encode(w pdf.Putter) (pdf.Dict, error) {
	if err := pdf.CheckVersion(w, "border style dictionary", pdf.V1_2); err != nil {
		return nil, err
	}
	if b.Width < 0 {
		return nil, errBorderWidth
	}

	style := b.Style
	if style == "" {
		style = "S"
	}
	d := pdf.Dict{
		"W": pdf.Number(b.Width),
		"S": style,
	}

	if style == "D" {
		if len(b.DashArray) == 0 {
			return nil, errors.New("missing dash array")
		}
		for _, x := range b.DashArray {
			if x < 0 {
				return nil, errors.New("negative dash value")
			}
		}
		d["D"] = pdf.NumberArray(b.DashArray...)
	} else if b.DashArray != nil {
		return nil, errors.New("unexpected dash array")
	}

	return d, nil
}
