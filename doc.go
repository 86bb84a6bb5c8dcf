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

// Package annotate converts annotations drawn on top of a rendered PDF page
// into PDF markup annotations.
//
// The drawing layer describes every annotation by a [Record]: the kind of
// annotation, some metadata, the reply comments, and a vector scene which
// holds the shapes drawn by the user.  A [Synthesizer] turns each record
// into one root annotation (an ink, underline or stamp annotation) and one
// text annotation for every reply comment.  All objects are written to a
// [pdf.Updater] and added to the /Annots array of the page.
//
// The mapping from scene coordinates to PDF user space is described by a
// [viewport.Page].
//
// Records are registered atomically: either the root annotation, its
// appearance stream and all replies are added to the document, or nothing
// is.
package annotate
