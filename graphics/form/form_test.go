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

package form

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/annotate/pdf"
)

func TestCounterRotation(t *testing.T) {
	cases := []struct {
		rotation int
		bbox     rect.Rect
		m        matrix.Matrix
	}{
		{0, rect.Rect{URx: 100, URy: 50}, matrix.Matrix{1, 0, 0, 1, 0, 0}},
		{90, rect.Rect{URx: 50, URy: 100}, matrix.Matrix{0, 1, -1, 0, 50, 0}},
		{180, rect.Rect{URx: 100, URy: 50}, matrix.Matrix{-1, 0, 0, -1, 100, 50}},
		{270, rect.Rect{URx: 50, URy: 100}, matrix.Matrix{0, -1, 1, 0, 0, 100}},
		{45, rect.Rect{URx: 100, URy: 50}, matrix.Matrix{1, 0, 0, 1, 0, 0}},
		{450, rect.Rect{URx: 50, URy: 100}, matrix.Matrix{0, 1, -1, 0, 50, 0}},
	}
	for _, c := range cases {
		if d := cmp.Diff(c.bbox, AppearanceBBox(c.rotation, 100, 50)); d != "" {
			t.Errorf("rotation %d, bbox: %s", c.rotation, d)
		}
		if d := cmp.Diff(c.m, CounterRotation(c.rotation, 100, 50)); d != "" {
			t.Errorf("rotation %d, matrix: %s", c.rotation, d)
		}
	}
}

func TestNewImage(t *testing.T) {
	_, body := NewImage(7, 90, 100, 50)
	want := "q 0 1 -1 0 50 0 cm 100 0 0 50 0 0 cm /Im1 Do Q"
	if string(body) != want {
		t.Errorf("got %q, want %q", body, want)
	}
}

func TestEmbed(t *testing.T) {
	data := pdf.NewData(pdf.V1_7)
	f, body := NewImage(pdf.NewReference(99, 0), 0, 20, 10)
	ref, err := f.Embed(data, body)
	if err != nil {
		t.Fatal(err)
	}

	obj, _ := data.Get(ref)
	stm, ok := obj.(*pdf.Stream)
	if !ok {
		t.Fatalf("expected stream, got %T", obj)
	}
	if got := pdf.Format(stm.Dict["BBox"]); got != "[0 0 20 10]" {
		t.Errorf("BBox = %s", got)
	}
	if _, hasMatrix := stm.Dict["Matrix"]; hasMatrix {
		t.Error("unexpected /Matrix entry")
	}
	if _, hasName := stm.Dict["Name"]; hasName {
		t.Error("unexpected /Name entry")
	}
	if stm.Dict["Filter"] != pdf.Name("FlateDecode") {
		t.Errorf("Filter = %v", stm.Dict["Filter"])
	}

	compressed, err := io.ReadAll(stm.R)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(compressed, []byte("/Im1 Do")) {
		t.Error("content stream was not compressed")
	}
}

func TestEmbedEmptyBBox(t *testing.T) {
	data := pdf.NewData(pdf.V1_7)
	f := &Form{}
	if _, err := f.Embed(data, nil); err == nil {
		t.Error("empty bounding box accepted")
	}
	if data.Len() != 0 {
		t.Error("objects were written")
	}
}
