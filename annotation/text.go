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
	"seehuhn.de/go/annotate/pdf"
)

// TextIcon is the name of an icon used to display a text annotation.
type TextIcon pdf.Name

// These are the standard icon names for text annotations.
const (
	TextIconComment      TextIcon = "Comment"
	TextIconKey          TextIcon = "Key"
	TextIconNote         TextIcon = "Note"
	TextIconHelp         TextIcon = "Help"
	TextIconNewParagraph TextIcon = "NewParagraph"
	TextIconParagraph    TextIcon = "Paragraph"
	TextIconInsert       TextIcon = "Insert"
)

// Text represents a text annotation, a "sticky note" attached to a point in
// the PDF document.  Text annotations with [Markup.InReplyTo] set form the
// reply thread of another annotation.
//
// See section 12.5.6.4 of ISO 32000-2:2020.
type Text struct {
	Common
	Markup

	// Open specifies whether the popup window should initially be open.
	// The /Open entry is always written.
	Open bool

	// Icon is the name of an icon used in displaying the annotation.
	// An empty Icon is a shorthand for [TextIconNote].
	//
	// This corresponds to the /Name entry in the PDF annotation dictionary.
	Icon TextIcon
}

// AnnotationType returns "Text".
// This implements the [Annotation] interface.
func (t *Text) AnnotationType() pdf.Name {
	return "Text"
}

// Encode implements the [Annotation] interface.
func (t *Text) Encode(w pdf.Putter) (pdf.Dict, error) {
	dict := pdf.Dict{
		"Subtype": pdf.Name("Text"),
	}
	if err := t.Common.fillDict(w, dict); err != nil {
		return nil, err
	}
	if err := t.Markup.fillDict(w, dict); err != nil {
		return nil, err
	}

	dict["Open"] = pdf.Boolean(t.Open)
	if t.Icon != "" && t.Icon != TextIconNote {
		dict["Name"] = pdf.Name(t.Icon)
	}

	return dict, nil
}
