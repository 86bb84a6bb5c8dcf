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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotate/pdf"
)

// Ink represents an ink annotation: a freehand "scribble" composed of one
// or more disjoint paths.
//
// See sections 12.5.6.13 of ISO 32000-2:2020.
type Ink struct {
	Common
	Markup

	// InkList is a list of stroked paths.  Each path is a series of points
	// in default user space.  When drawn, the points are connected by
	// straight lines or curves in an implementation-dependent way.
	InkList [][]vec.Vec2

	// BorderStyle (optional) specifies the line width and dash pattern
	// used in drawing the paths.
	//
	// This corresponds to the /BS entry in the PDF annotation dictionary.
	BorderStyle *BorderStyle
}

// AnnotationType returns "Ink".
// This implements the [Annotation] interface.
func (i *Ink) AnnotationType() pdf.Name {
	return "Ink"
}

// Encode implements the [Annotation] interface.
func (i *Ink) Encode(w pdf.Putter) (pdf.Dict, error) {
	if err := pdf.CheckVersion(w, "ink annotation", pdf.V1_3); err != nil {
		return nil, err
	}

	dict := pdf.Dict{
		"Subtype": pdf.Name("Ink"),
	}
	if err := i.Common.fillDict(w, dict); err != nil {
		return nil, err
	}
	if err := i.Markup.fillDict(w, dict); err != nil {
		return nil, err
	}

	inkArray := make(pdf.Array, len(i.InkList))
	for k, stroke := range i.InkList {
		coords := make(pdf.Array, 0, 2*len(stroke))
		for _, p := range stroke {
			coords = append(coords, pdf.Number(p.X), pdf.Number(p.Y))
		}
		inkArray[k] = coords
	}
	dict["InkList"] = inkArray

	if i.BorderStyle != nil {
		bs, err := i.BorderStyle.Encode(w)
		if err != nil {
			return nil, err
		}
		dict["BS"] = bs
	}

	return dict, nil
}
