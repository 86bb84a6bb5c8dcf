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

// Annotation is the interface implemented by all annotation types in this
// package.
type Annotation interface {
	// AnnotationType returns the subtype of the annotation, e.g. "Ink".
	AnnotationType() pdf.Name

	// GetCommon returns the fields common to all annotations.
	GetCommon() *Common

	// Encode converts the annotation into a PDF dictionary.
	// Streams needed by the annotation must already have been written.
	Encode(w pdf.Putter) (pdf.Dict, error)
}

var (
	_ Annotation = (*Ink)(nil)
	_ Annotation = (*TextMarkup)(nil)
	_ Annotation = (*Stamp)(nil)
	_ Annotation = (*Text)(nil)
)

// GetCommon implements the [Annotation] interface.
func (c *Common) GetCommon() *Common {
	return c
}
