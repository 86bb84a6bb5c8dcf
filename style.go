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

	"seehuhn.de/go/annotate/annotation"
	"seehuhn.de/go/annotate/graphics/color"
	"seehuhn.de/go/annotate/pdf"
	"seehuhn.de/go/annotate/viewport"
)

// common fills the annotation fields which are shared by all root
// annotations.
func (s *Synthesizer) common(page *viewport.Page, rec *Record) annotation.Common {
	return annotation.Common{
		Contents:     rec.Contents.Text,
		Page:         page.Ref,
		Name:         rec.ID,
		LastModified: s.date(rec.Date),
		Lang:         s.opts.Lang,
	}
}

func (s *Synthesizer) markup(title string) annotation.Markup {
	if title == "" {
		title = s.opts.DefaultAuthor
	}
	return annotation.Markup{User: title}
}

// date converts the date of a record or comment into the value of a /M
// entry.  Dates which cannot be interpreted are kept as text.
func (s *Synthesizer) date(raw string) pdf.String {
	if raw == "" {
		return pdf.Date(s.opts.Now())
	}
	if t, ok := pdf.ParseDate(raw); ok {
		return pdf.Date(t)
	}
	return pdf.TextString(raw)
}

// pickColor returns the first valid colour out of stroke and the record
// colour.  If neither is usable, fallback is returned.
func (s *Synthesizer) pickColor(rec *Record, stroke *string, fallback *color.RGB) color.RGB {
	if stroke != nil {
		if c, ok := s.parseColor(rec, *stroke); ok {
			return c
		}
	}
	if c, ok := s.parseColor(rec, rec.Color); ok {
		return c
	}
	if fallback == nil {
		return color.Black
	}
	return *fallback
}

func (s *Synthesizer) parseColor(rec *Record, text string) (color.RGB, bool) {
	if text == "" {
		return color.RGB{}, false
	}
	c, _, err := color.Parse(text)
	if err != nil {
		s.opts.logger().Debug("ignoring colour",
			slog.String("id", rec.ID),
			slog.String("color", text),
			slog.Any("error", err))
		return color.RGB{}, false
	}
	return c, true
}
