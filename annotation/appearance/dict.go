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

// Package appearance implements annotation appearance dictionaries.
package appearance

import (
	"errors"

	"seehuhn.de/go/annotate/pdf"
)

// Dict is an appearance dictionary.  The entries are references to form
// XObjects which have already been written to the file.
//
// See section 12.5.5 of ISO 32000-2:2020.
type Dict struct {
	// Normal is the annotation's normal appearance.
	Normal pdf.Reference

	// RollOver is the annotation's rollover appearance.
	//
	// When writing appearance dictionaries, a zero value can be used as a
	// shorthand for the same value as Normal.
	RollOver pdf.Reference

	// Down is the annotation's down appearance.
	//
	// When writing appearance dictionaries, a zero value can be used as a
	// shorthand for the same value as Normal.
	Down pdf.Reference
}

// Encode converts the appearance dictionary into a PDF dictionary.
func (d *Dict) Encode(w pdf.Putter) (pdf.Dict, error) {
	if err := pdf.CheckVersion(w, "appearance streams", pdf.V1_2); err != nil {
		return nil, err
	}
	if d.Normal == 0 {
		return nil, errNoNormal
	}

	dict := pdf.Dict{
		"N": d.Normal,
	}
	if d.RollOver != 0 && d.RollOver != d.Normal {
		dict["R"] = d.RollOver
	}
	if d.Down != 0 && d.Down != d.Normal {
		dict["D"] = d.Down
	}
	return dict, nil
}

var errNoNormal = errors.New("missing normal appearance")
