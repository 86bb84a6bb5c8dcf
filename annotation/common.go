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

	"golang.org/x/text/language"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/annotate/annotation/appearance"
	"seehuhn.de/go/annotate/graphics/color"
	"seehuhn.de/go/annotate/pdf"
)

// Common contains fields common to all annotation dictionaries.
//
// See section 12.5.2 of ISO 32000-2:2020.
type Common struct {
	// Rect is the location of the annotation on the page, in default user
	// space units.  The rectangle is normalised when written.
	Rect rect.Rect

	// Contents (optional) is the text displayed for the annotation.
	Contents string

	// Page (optional; PDF 1.3) is the page object the annotation belongs to.
	//
	// This corresponds to the /P entry in the PDF annotation dictionary.
	Page pdf.Reference

	// Name (optional; PDF 1.4) uniquely identifies the annotation among all
	// annotations on its page.
	//
	// This corresponds to the /NM entry in the PDF annotation dictionary.
	Name string

	// LastModified (optional; PDF 1.1) is the date and time when the
	// annotation was last modified.  This is normally a PDF date string, see
	// [pdf.Date], but readers accept arbitrary text.
	//
	// This corresponds to the /M entry in the PDF annotation dictionary.
	LastModified pdf.String

	// Flags (optional; PDF 1.1) is a set of flags specifying various
	// characteristics of the annotation.
	Flags Flags

	// Appearance (optional; PDF 1.2) specifies how the annotation is
	// presented visually on the page.
	//
	// This corresponds to the /AP entry in the PDF annotation dictionary.
	Appearance *appearance.Dict

	// Border (optional) specifies the width and dash pattern of the border.
	// If this is nil, the PDF default [0 0 1] is used.
	Border *Border

	// Color (optional; PDF 1.1) is the colour used for the background of the
	// icon, the title bar of the popup window, and the border.
	//
	// This corresponds to the /C entry in the PDF annotation dictionary.
	Color *color.RGB

	// StrokingTransparency (optional; PDF 1.4) is the transparency used for
	// stroking operations when drawing the annotation.  The value 0 means
	// fully opaque.
	//
	// This corresponds to the /CA entry in the PDF annotation dictionary,
	// which stores 1 - StrokingTransparency.
	StrokingTransparency float64

	// Lang (optional; PDF 2.0) is the language of the annotation text.
	Lang language.Tag
}

var (
	errTransparency = errors.New("annotation transparency out of range")
	errBorderWidth  = errors.New("negative border width")
)

func (c *Common) fillDict(w pdf.Putter, d pdf.Dict) error {
	d["Type"] = pdf.Name("Annot")

	r := c.Rect
	d["Rect"] = pdf.NumberArray(
		min(r.LLx, r.URx), min(r.LLy, r.URy),
		max(r.LLx, r.URx), max(r.LLy, r.URy))

	if c.Contents != "" {
		d["Contents"] = pdf.TextString(c.Contents)
	}

	if c.Page != 0 {
		if err := pdf.CheckVersion(w, "annotation P entry", pdf.V1_3); err != nil {
			return err
		}
		d["P"] = c.Page
	}

	if c.Name != "" {
		if err := pdf.CheckVersion(w, "annotation NM entry", pdf.V1_4); err != nil {
			return err
		}
		d["NM"] = pdf.TextString(c.Name)
	}

	if c.LastModified != nil {
		if err := pdf.CheckVersion(w, "annotation M entry", pdf.V1_1); err != nil {
			return err
		}
		d["M"] = c.LastModified
	}

	if c.Flags != 0 {
		if err := pdf.CheckVersion(w, "annotation flags", pdf.V1_1); err != nil {
			return err
		}
		d["F"] = pdf.Integer(c.Flags)
	}

	if c.Appearance != nil {
		ap, err := c.Appearance.Encode(w)
		if err != nil {
			return err
		}
		d["AP"] = ap
	}

	if c.Border != nil {
		if c.Border.Width < 0 {
			return errBorderWidth
		}
		if !c.Border.isDefault() {
			d["Border"] = c.Border.asArray()
		}
	}

	if c.Color != nil {
		if err := pdf.CheckVersion(w, "annotation C entry", pdf.V1_1); err != nil {
			return err
		}
		d["C"] = c.Color.AsPDF()
	}

	if c.StrokingTransparency != 0 {
		if c.StrokingTransparency < 0 || c.StrokingTransparency > 1 {
			return errTransparency
		}
		if err := pdf.CheckVersion(w, "annotation CA entry", pdf.V1_4); err != nil {
			return err
		}
		d["CA"] = pdf.Number(1 - c.StrokingTransparency)
	}

	if c.Lang != language.Und {
		if err := pdf.CheckVersion(w, "annotation Lang entry", pdf.V2_0); err != nil {
			return err
		}
		d["Lang"] = pdf.TextString(c.Lang.String())
	}

	return nil
}
