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

package logging

import (
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultDiscards(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}

func TestSetLogger(t *testing.T) {
	h := NewBufferedHandler(slog.LevelInfo)
	SetLogger(slog.New(h))
	defer SetLogger(nil)

	Logger().Debug("hidden")
	Logger().With("id", "a1").WithGroup("shape").Warn("skipped", "kind", "Circle")

	want := []Entry{{
		Level:   slog.LevelWarn,
		Message: "skipped",
		Attrs:   map[string]string{"id": "a1", "shape.kind": "Circle"},
	}}
	if d := cmp.Diff(want, h.Entries()); d != "" {
		t.Error(d)
	}
	if !h.Contains(slog.LevelWarn, "skip") {
		t.Error("Contains did not find the warning")
	}
}
