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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotate/annotation"
	"seehuhn.de/go/annotate/curve"
	"seehuhn.de/go/annotate/scene"
	"seehuhn.de/go/annotate/viewport"
)

// ink converts freehand strokes into an ink annotation.  If fromPaths is
// true, the strokes are taken from Path shapes, which are flattened into
// polylines.  Otherwise Line shapes are used.
func (s *Synthesizer) ink(page *viewport.Page, rec *Record, fromPaths bool) (*annotation.Ink, error) {
	g, err := s.parseScene(rec)
	if err != nil {
		return nil, err
	}

	var strokes [][]vec.Vec2
	var first *scene.Stroke
	if fromPaths {
		paths := curve.Parser{Logger: s.opts.logger()}
		for _, p := range g.Paths() {
			data, err := paths.ParsePath(p.Data)
			if err != nil {
				return nil, err
			}
			local := curve.Flatten(data, s.opts.QuadSegments, s.opts.CubicSegments)
			stroke := make([]vec.Vec2, len(local))
			for i, pt := range local {
				stroke[i] = page.ShapeToDocument(g.Transform, pt)
			}
			strokes = append(strokes, stroke)
			if first == nil {
				st := p.StrokeStyle()
				first = &st
			}
		}
	} else {
		for _, l := range g.Lines() {
			strokes = append(strokes, page.ShapePoints(g.Transform, l.Points))
			if first == nil {
				st := l.StrokeStyle()
				first = &st
			}
		}
	}
	if first == nil {
		first = &scene.Stroke{}
	}

	width := 1.0
	if first.Width != nil && *first.Width >= 0 {
		width = *first.Width
	}
	opacity := 1.0
	if first.Opacity != nil {
		opacity = min(max(*first.Opacity, 0), 1)
	}
	col := s.pickColor(rec, first.Color, s.opts.InkColor)

	var all []vec.Vec2
	for _, stroke := range strokes {
		all = append(all, stroke...)
	}
	bbox := viewport.BoundingBox(all)

	if len(strokes) == 0 {
		s.opts.logger().Debug("ink annotation without strokes",
			slog.String("id", rec.ID))
	}

	ink := &annotation.Ink{
		Common:  s.common(page, rec),
		Markup:  s.markup(rec.Title),
		InkList: strokes,
		BorderStyle: &annotation.BorderStyle{
			Width: width,
			Style: "S",
		},
	}
	ink.Rect = annotationRect(page, rec, bbox, width/2)
	ink.Border = annotation.NoBorder
	ink.Color = &col
	ink.StrokingTransparency = 1 - opacity
	ink.Flags = annotation.FlagPrint
	return ink, nil
}
