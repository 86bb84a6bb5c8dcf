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

package scene

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/annotate/logging"
	"seehuhn.de/go/annotate/viewport"
)

func ptr[T any](x T) *T { return &x }

func TestParse(t *testing.T) {
	in := `{
		"attrs": {"x": 10, "y": 20, "scaleX": 2},
		"className": "Group",
		"children": [
			{"className": "Line", "attrs": {"points": [0, 0, 5, 5], "stroke": "rgb(0, 0, 255)", "strokeWidth": 3}},
			{"className": "Circle", "attrs": {"radius": 4}},
			{"className": "Path", "attrs": {"data": "M0,0 L1,1", "opacity": 0.5}},
			{"className": "Rect", "attrs": {"x": 1, "y": 2, "width": 30, "height": 4}}
		]
	}`

	h := logging.NewBufferedHandler(slog.LevelDebug)
	logging.SetLogger(slog.New(h))
	defer logging.SetLogger(nil)

	g, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}

	want := &Group{
		Transform: viewport.GroupTransform{X: 10, Y: 20, ScaleX: 2},
		Shapes: []Shape{
			&Line{Points: []float64{0, 0, 5, 5}, Stroke: Stroke{Width: ptr(3.0), Color: ptr("rgb(0, 0, 255)")}},
			&Path{Data: "M0,0 L1,1", Stroke: Stroke{Opacity: ptr(0.5)}},
			&Rect{X: 1, Y: 2, Width: 30, Height: 4},
		},
	}
	if d := cmp.Diff(want, g); d != "" {
		t.Error(d)
	}

	if len(g.Lines()) != 1 || len(g.Paths()) != 1 || len(g.Rects()) != 1 {
		t.Errorf("wrong shape counts: %d lines, %d paths, %d rects",
			len(g.Lines()), len(g.Paths()), len(g.Rects()))
	}

	if !h.Contains(slog.LevelDebug, "skipping shape") {
		t.Error("unknown shape was not logged")
	}
}

func TestParseMissingAttrs(t *testing.T) {
	g, err := Parse([]byte(`{"children": [{"className": "Line"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if g.Transform != (viewport.GroupTransform{}) {
		t.Errorf("unexpected transform %v", g.Transform)
	}
	lines := g.Lines()
	if len(lines) != 1 || len(lines[0].Points) != 0 {
		t.Errorf("unexpected lines %v", lines)
	}
	if s := lines[0].StrokeStyle(); s.Width != nil || s.Color != nil || s.Opacity != nil {
		t.Errorf("unexpected stroke %v", s)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"not json":         `{"children": [`,
		"no children":      `{"attrs": {"x": 1}}`,
		"bad group attrs":  `{"attrs": {"x": "left"}, "children": []}`,
		"bad child":        `{"children": [42]}`,
		"bad points":       `{"children": [{"className": "Line", "attrs": {"points": "1 2"}}]}`,
		"odd points":       `{"children": [{"className": "Line", "attrs": {"points": [1, 2, 3]}}]}`,
		"bad stroke width": `{"children": [{"className": "Rect", "attrs": {"strokeWidth": "wide"}}]}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(in))
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestParserLogger(t *testing.T) {
	h := logging.NewBufferedHandler(slog.LevelDebug)
	g, err := Parser{Logger: slog.New(h)}.Parse([]byte(`{"children": [{"className": "Star"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Shapes) != 0 {
		t.Errorf("unexpected shapes %v", g.Shapes)
	}
	if !h.Contains(slog.LevelDebug, "skipping shape") {
		t.Error("skipped shape was not logged to the parser logger")
	}
}
