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

// Package form implements PDF form XObjects, as used for annotation
// appearance streams.
package form

import (
	"errors"
	"time"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/annotate/pdf"
)

// Form is the dictionary of a form XObject.
//
// See section 8.10 of ISO 32000-2:2020.
type Form struct {
	// BBox is the bounding box of the form, in form space.
	BBox rect.Rect

	// Matrix maps form space to user space.
	// The zero value is treated as the identity matrix.
	Matrix matrix.Matrix

	// Resources (optional) holds the named resources used by the content
	// stream.
	Resources pdf.Dict

	// LastModified (optional) is the time when the form was last changed.
	LastModified time.Time

	// DefaultName is the name used to refer to the form in PDF 1.0 files.
	DefaultName pdf.Name
}

// Embed writes the form as a new stream object with the given content.
func (f *Form) Embed(w pdf.Putter, body []byte) (pdf.Reference, error) {
	if f.BBox.URx == f.BBox.LLx || f.BBox.URy == f.BBox.LLy {
		return 0, errEmptyBBox
	}

	dict := pdf.Dict{
		"Type":     pdf.Name("XObject"),
		"Subtype":  pdf.Name("Form"),
		"FormType": pdf.Integer(1),
		"BBox":     pdf.NumberArray(f.BBox.LLx, f.BBox.LLy, f.BBox.URx, f.BBox.URy),
	}
	if f.Matrix != matrix.Identity && f.Matrix != (matrix.Matrix{}) {
		dict["Matrix"] = pdf.NumberArray(f.Matrix[:]...)
	}
	if f.Resources != nil {
		dict["Resources"] = f.Resources
	}
	if !f.LastModified.IsZero() {
		dict["LastModified"] = pdf.Date(f.LastModified)
	}
	if pdf.GetVersion(w) == pdf.V1_0 {
		if f.DefaultName == "" {
			return 0, errors.New("Form.DefaultName must be set in PDF 1.0")
		}
		dict["Name"] = f.DefaultName
	}

	ref := w.Alloc()
	stm, err := w.OpenStream(ref, dict, pdf.FilterCompress{})
	if err != nil {
		return 0, err
	}
	_, err = stm.Write(body)
	if err != nil {
		return 0, err
	}
	err = stm.Close()
	if err != nil {
		return 0, err
	}
	return ref, nil
}

var errEmptyBBox = errors.New("form XObject with empty bounding box")
