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

package viewport

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var letter = rect.Rect{URx: 612, URy: 792}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestViewportMatrix(t *testing.T) {
	cases := []struct {
		rotation int
		scale    float64
		want     matrix.Matrix
	}{
		{0, 1.5, matrix.Matrix{1.5, 0, 0, -1.5, 0, 1188}},
		{90, 2, matrix.Matrix{0, 2, 2, 0, 0, 0}},
		{180, 1, matrix.Matrix{-1, 0, 0, 1, 612, 0}},
		{270, 1, matrix.Matrix{0, -1, -1, 0, 792, 612}},
		{-90, 1, matrix.Matrix{0, -1, -1, 0, 792, 612}},
	}
	for _, c := range cases {
		p, err := NewPage(1, letter, c.rotation, c.scale)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(c.want, p.Transform(), approx); d != "" {
			t.Errorf("rotation %d: %s", c.rotation, d)
		}
	}
}

func TestNewPageErrors(t *testing.T) {
	if _, err := NewPage(1, letter, 45, 1); err == nil {
		t.Error("rotation 45 accepted")
	}
	if _, err := NewPage(1, letter, 0, 0); err == nil {
		t.Error("scale 0 accepted")
	}
	if _, err := NewPage(1, rect.Rect{}, 0, 1); err == nil {
		t.Error("empty view box accepted")
	}
}

func TestShapeToDocument(t *testing.T) {
	p, err := NewPage(1, letter, 0, 1.5)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		g    GroupTransform
		in   vec.Vec2
		want vec.Vec2
	}{
		{"identity", GroupTransform{}, vec.Vec2{X: 100, Y: 50}, vec.Vec2{X: 100, Y: 742}},
		{"explicit ones", GroupTransform{ScaleX: 1, ScaleY: 1}, vec.Vec2{X: 100, Y: 50}, vec.Vec2{X: 100, Y: 742}},
		{"translated", GroupTransform{X: 10, Y: 20}, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 772}},
		{"scaled", GroupTransform{ScaleX: 2, ScaleY: 0.5}, vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 20, Y: 787}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := p.ShapeToDocument(c.g, c.in)
			if d := cmp.Diff(c.want, got, approx); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, rot := range []int{0, 90, 180, 270} {
		p, err := NewPage(1, rect.Rect{LLx: 10, LLy: 20, URx: 400, URy: 600}, rot, 1.25)
		if err != nil {
			t.Fatal(err)
		}
		in := vec.Vec2{X: 123, Y: 456}
		got := p.DeviceToDocument(p.DocumentToDevice(in))
		if d := cmp.Diff(in, got, approx); d != "" {
			t.Errorf("rotation %d: %s", rot, d)
		}
	}
}

func TestRotated(t *testing.T) {
	p, err := NewPage(1, letter, 90, 1)
	if err != nil {
		t.Fatal(err)
	}
	// The top-left corner of the rotated view is the bottom-left corner
	// of the page.
	got := p.ShapeToDocument(GroupTransform{}, vec.Vec2{X: 0, Y: 0})
	if d := cmp.Diff(vec.Vec2{}, got, approx); d != "" {
		t.Error(d)
	}
	got = p.ShapeToDocument(GroupTransform{}, vec.Vec2{X: 30, Y: 10})
	if d := cmp.Diff(vec.Vec2{X: 10, Y: 30}, got, approx); d != "" {
		t.Error(d)
	}
}

func TestRectToDocument(t *testing.T) {
	p, err := NewPage(1, letter, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	got := p.RectToDocument(GroupTransform{}, 10, 20, 100, 30)
	want := rect.Rect{LLx: 10, LLy: 742, URx: 110, URy: 772}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Error(d)
	}
}
