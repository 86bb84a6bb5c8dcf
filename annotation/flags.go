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

import "strings"

// Flags specifies characteristics of an annotation.
//
// See section 12.5.3 of ISO 32000-2:2020.
type Flags uint32

const (
	// FlagInvisible applies only to annotations which do not belong to one
	// of the standard annotation types and for which no annotation handler
	// is available.
	FlagInvisible Flags = 1 << 0

	// FlagHidden (PDF 1.2) hides the annotation.
	FlagHidden Flags = 1 << 1

	// FlagPrint (PDF 1.2) prints the annotation when the page is printed.
	FlagPrint Flags = 1 << 2

	// FlagNoZoom (PDF 1.3) keeps the size of the annotation appearance
	// fixed when the page is magnified.
	FlagNoZoom Flags = 1 << 3

	// FlagNoRotate (PDF 1.3) keeps the annotation appearance upright when
	// the page is rotated.
	FlagNoRotate Flags = 1 << 4

	// FlagNoView (PDF 1.3) hides the annotation on screen but still allows
	// it to be printed.
	FlagNoView Flags = 1 << 5

	// FlagReadOnly (PDF 1.3) prevents user interaction with the annotation.
	FlagReadOnly Flags = 1 << 6

	// FlagLocked (PDF 1.4) prevents the annotation from being deleted or
	// its properties from being modified.
	FlagLocked Flags = 1 << 7

	// FlagToggleNoView (PDF 1.5) inverts the NoView flag for selection and
	// mouse hovering.
	FlagToggleNoView Flags = 1 << 8

	// FlagLockedContents (PDF 1.7) prevents the contents of the annotation
	// from being modified.
	FlagLockedContents Flags = 1 << 9
)

var flagNames = []string{
	"Invisible", "Hidden", "Print", "NoZoom", "NoRotate",
	"NoView", "ReadOnly", "Locked", "ToggleNoView", "LockedContents",
}

func (f Flags) String() string {
	var parts []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, "|")
}
