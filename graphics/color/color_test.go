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

package color

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/annotate/pdf"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in    string
		want  RGB
		alpha float64
	}{
		{"rgb(255, 0, 0)", Red, 1},
		{"RGB(0,128,255)", RGB{0, 128.0 / 255, 1}, 1},
		{"rgba(255, 255, 255, 0.5)", White, 0.5},
		{"rgb(100%, 50%, 0%)", RGB{1, 0.5, 0}, 1},
		{"#000000", Black, 1},
		{"#f00", Red, 1},
		{"#00ff0080", RGB{0, 1, 0}, 128.0 / 255},
		{"red", Red, 1},
		{"  Black ", Black, 1},
		{"rgb(300, -5, 0)", RGB{1, 0, 0}, 1},
	}
	opt := cmpopts.EquateApprox(0, 1e-9)
	for _, c := range cases {
		got, alpha, err := Parse(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if d := cmp.Diff(c.want, got, opt); d != "" {
			t.Errorf("%q: %s", c.in, d)
		}
		if d := cmp.Diff(c.alpha, alpha, opt); d != "" {
			t.Errorf("%q alpha: %s", c.in, d)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "#12", "#ggg", "rgb(1,2)", "hsl(0, 0%, 0%)", "rgb(a,b,c)", "no-such-colour"} {
		_, _, err := Parse(in)
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: expected ErrSyntax, got %v", in, err)
		}
	}
}

func TestAsPDF(t *testing.T) {
	got := pdf.Format(RGB{1, 0.5, 1.0 / 3}.AsPDF())
	if got != "[1 0.5 0.3333]" {
		t.Errorf("AsPDF = %s", got)
	}
}
