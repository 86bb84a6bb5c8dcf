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

package annotate

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned for records of an unsupported kind.
var ErrUnknownKind = errors.New("unknown annotation kind")

// Error is returned when a record cannot be converted.
// Nothing is added to the document in this case.
type Error struct {
	ID   string
	Kind Kind
	Err  error
}

func (err *Error) Error() string {
	return fmt.Sprintf("annotation %q (%s): %v", err.ID, err.Kind, err.Err)
}

func (err *Error) Unwrap() error {
	return err.Err
}
