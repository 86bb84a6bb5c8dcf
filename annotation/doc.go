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

// Package annotation implements the PDF markup annotations produced by the
// synthesizer: ink, text markup, stamp and text (reply) annotations.
//
// Each annotation type has an Encode method which converts the Go struct
// into a PDF annotation dictionary.  The caller is responsible for storing
// the dictionary as an indirect object and for adding it to the /Annots
// array of the page.
//
// Annotations are described in section 12.5 of ISO 32000-2:2020.
package annotation
