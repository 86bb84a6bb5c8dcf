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
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotate/pdf"
)

// TextMarkupType is the subtype of a text markup annotation.
type TextMarkupType pdf.Name

// These are the text markup annotation subtypes.
const (
	TextMarkupTypeHighlight TextMarkupType = "Highlight"
	TextMarkupTypeSquiggly  TextMarkupType = "Squiggly"
	TextMarkupTypeStrikeOut TextMarkupType = "StrikeOut"
	TextMarkupTypeUnderline TextMarkupType = "Underline"
)

// TextMarkup represents a text markup annotation, which highlights,
// underlines, strikes out or squiggly-underlines regions of the page.
//
// See section 12.5.6.10 of ISO 32000-2:2020.
type TextMarkup struct {
	Common
	Markup

	// Type specifies which type of text markup annotation this is.
	Type TextMarkupType

	// QuadPoints specifies the quadrilaterals that comprise the marked
	// region.  Each quadrilateral is given by four points.  Viewers expect
	// the order top-left, top-right, bottom-left, bottom-right.
	QuadPoints []vec.Vec2
}

// AnnotationType returns the subtype of the annotation.
// This implements the [Annotation] interface.
func (t *TextMarkup) AnnotationType() pdf.Name {
	return pdf.Name(t.Type)
}

var (
	errNoQuadPoints  = errors.New("QuadPoints is required for text markup annotations")
	errQuadPointsLen = errors.New("length of QuadPoints is not a multiple of 4")
)

// Encode implements the [Annotation] interface.
func (t *TextMarkup) Encode(w pdf.Putter) (pdf.Dict, error) {
	switch t.Type {
	case TextMarkupTypeHighlight, TextMarkupTypeUnderline, TextMarkupTypeStrikeOut:
		if err := pdf.CheckVersion(w, string(t.Type)+" annotation", pdf.V1_3); err != nil {
			return nil, err
		}
	case TextMarkupTypeSquiggly:
		if err := pdf.CheckVersion(w, "squiggly annotation", pdf.V1_4); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown text markup type %q", t.Type)
	}

	if len(t.QuadPoints) == 0 {
		return nil, errNoQuadPoints
	}
	if len(t.QuadPoints)%4 != 0 {
		return nil, errQuadPointsLen
	}

	dict := pdf.Dict{
		"Subtype": pdf.Name(t.Type),
	}
	if err := t.Common.fillDict(w, dict); err != nil {
		return nil, err
	}
	if err := t.Markup.fillDict(w, dict); err != nil {
		return nil, err
	}

	quadArray := make(pdf.Array, len(t.QuadPoints)*2)
	for i, v := range t.QuadPoints {
		quadArray[i*2] = pdf.Number(v.X)
		quadArray[i*2+1] = pdf.Number(v.Y)
	}
	dict["QuadPoints"] = quadArray

	return dict, nil
}
