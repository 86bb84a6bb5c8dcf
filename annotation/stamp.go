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
	"fmt"

	"seehuhn.de/go/annotate/pdf"
)

// Stamp represents a rubber stamp annotation, which displays text or
// graphics intended to look as if stamped on the page.
//
// See section 12.5.6.12 of ISO 32000-2:2020.
type Stamp struct {
	Common
	Markup

	// Icon (optional) is the name of an icon used to display the
	// annotation when no appearance stream is given.  Standard names
	// include Approved, Experimental, NotApproved, AsIs, Expired,
	// NotForPublicRelease, Confidential, Final, Sold, Departmental,
	// ForComment, TopSecret, Draft and ForPublicRelease.
	//
	// When writing annotations, an empty Icon can be used as a shorthand
	// for "Draft".
	//
	// This corresponds to the /Name entry in the PDF annotation dictionary.
	Icon pdf.Name
}

// AnnotationType returns "Stamp".
// This implements the [Annotation] interface.
func (s *Stamp) AnnotationType() pdf.Name {
	return "Stamp"
}

// Encode implements the [Annotation] interface.
func (s *Stamp) Encode(w pdf.Putter) (pdf.Dict, error) {
	if err := pdf.CheckVersion(w, "stamp annotation", pdf.V1_3); err != nil {
		return nil, err
	}

	dict := pdf.Dict{
		"Subtype": pdf.Name("Stamp"),
	}
	if err := s.Common.fillDict(w, dict); err != nil {
		return nil, err
	}
	if err := s.Markup.fillDict(w, dict); err != nil {
		return nil, err
	}

	if s.Intent != "" && s.Intent != "Stamp" {
		if s.Icon != "" && s.Icon != "Draft" {
			return nil, fmt.Errorf("stamp annotation: unexpected icon name with intent %q", s.Intent)
		}
	} else if s.Icon != "" && s.Icon != "Draft" {
		dict["Name"] = s.Icon
	}

	return dict, nil
}
