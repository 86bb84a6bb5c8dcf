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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotate/annotation"
	"seehuhn.de/go/annotate/viewport"
)

// underline converts the rectangles of the scene into an underline
// annotation, one quadrilateral per rectangle.
func (s *Synthesizer) underline(page *viewport.Page, rec *Record) (*annotation.TextMarkup, error) {
	g, err := s.parseScene(rec)
	if err != nil {
		return nil, err
	}

	var quads []vec.Vec2
	for _, r := range g.Rects() {
		box := page.RectToDocument(g.Transform, r.X, r.Y, r.Width, r.Height)
		quads = append(quads,
			vec.Vec2{X: box.LLx, Y: box.URy}, // top left
			vec.Vec2{X: box.URx, Y: box.URy}, // top right
			vec.Vec2{X: box.LLx, Y: box.LLy}, // bottom left
			vec.Vec2{X: box.URx, Y: box.LLy}, // bottom right
		)
	}

	col := s.pickColor(rec, nil, s.opts.UnderlineColor)
	u := &annotation.TextMarkup{
		Common:     s.common(page, rec),
		Markup:     s.markup(rec.Title),
		Type:       annotation.TextMarkupTypeUnderline,
		QuadPoints: quads,
	}
	u.Rect = annotationRect(page, rec, viewport.BoundingBox(quads), 0)
	u.Color = &col
	u.Flags = annotation.FlagPrint
	return u, nil
}
