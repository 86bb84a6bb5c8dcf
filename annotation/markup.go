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
	"time"

	"seehuhn.de/go/annotate/pdf"
)

// Markup contains fields common to all markup annotations.
//
// See section 12.5.6.2 of ISO 32000-2:2020.
type Markup struct {
	// User (optional; PDF 1.1) identifies the user who added the annotation.
	//
	// This corresponds to the /T entry in the PDF annotation dictionary.
	User string

	// CreationDate (optional; PDF 1.5) is the date and time when the
	// annotation was created.
	CreationDate time.Time

	// InReplyTo (PDF 1.5) is a reference to the annotation that this
	// annotation is "in reply to".  Both annotations must be on the same
	// page.
	//
	// This corresponds to the /IRT entry in the PDF annotation dictionary.
	InReplyTo pdf.Reference

	// Subject (optional; PDF 1.5) is a short description of the subject
	// being addressed by the annotation.
	//
	// This corresponds to the /Subj entry in the PDF annotation dictionary.
	Subject string

	// ReplyType (optional; PDF 1.6) specifies the relationship between this
	// annotation and the one referenced by InReplyTo: "R" for a reply, or
	// "Group" for grouped annotations.
	//
	// This corresponds to the /RT entry in the PDF annotation dictionary.
	ReplyType pdf.Name

	// Intent (optional; PDF 1.6) describes the intent of the markup
	// annotation.
	//
	// This corresponds to the /IT entry in the PDF annotation dictionary.
	Intent pdf.Name
}

func (m *Markup) fillDict(w pdf.Putter, d pdf.Dict) error {
	if m.User != "" {
		if err := pdf.CheckVersion(w, "markup annotation T entry", pdf.V1_1); err != nil {
			return err
		}
		d["T"] = pdf.TextString(m.User)
	}

	if !m.CreationDate.IsZero() {
		if err := pdf.CheckVersion(w, "markup annotation CreationDate entry", pdf.V1_5); err != nil {
			return err
		}
		d["CreationDate"] = pdf.Date(m.CreationDate)
	}

	if m.InReplyTo != 0 {
		if err := pdf.CheckVersion(w, "markup annotation IRT entry", pdf.V1_5); err != nil {
			return err
		}
		d["IRT"] = m.InReplyTo
	}

	if m.Subject != "" {
		if err := pdf.CheckVersion(w, "markup annotation Subj entry", pdf.V1_5); err != nil {
			return err
		}
		d["Subj"] = pdf.TextString(m.Subject)
	}

	if m.ReplyType != "" {
		if m.InReplyTo == 0 {
			return errReplyType
		}
		if err := pdf.CheckVersion(w, "markup annotation RT entry", pdf.V1_6); err != nil {
			return err
		}
		d["RT"] = m.ReplyType
	}

	if m.Intent != "" {
		if err := pdf.CheckVersion(w, "markup annotation IT entry", pdf.V1_6); err != nil {
			return err
		}
		d["IT"] = m.Intent
	}

	return nil
}

var errReplyType = errors.New("reply type without IRT entry")
