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
	"log/slog"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/annotate/annotation"
	"seehuhn.de/go/annotate/graphics/image"
	"seehuhn.de/go/annotate/viewport"
)

// stamp converts a stamp record.  The image is decoded here, but only
// written to the file when the record is committed.  If the image cannot
// be decoded, the stamp is created without an appearance stream.
func (s *Synthesizer) stamp(page *viewport.Page, rec *Record) (*annotation.Stamp, *image.Image, error) {
	st := &annotation.Stamp{
		Common: s.common(page, rec),
		Markup: s.markup(rec.Title),
	}
	st.Rect = annotationRect(page, rec, rect.Rect{}, 0)
	st.Flags = annotation.FlagPrint | annotation.FlagNoZoom
	if col, ok := s.parseColor(rec, rec.Color); ok {
		st.Color = &col
	}

	if rec.Contents.Image == "" {
		return st, nil, nil
	}
	img, err := image.DecodeDataURL(rec.Contents.Image)
	if err != nil {
		s.opts.logger().Warn("stamp image not decoded, appearance stream omitted",
			slog.String("id", rec.ID),
			slog.Any("error", err))
		return st, nil, nil
	}
	return st, img, nil
}
