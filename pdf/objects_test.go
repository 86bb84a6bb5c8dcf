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

package pdf

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   Object
		want string
	}{
		{Integer(42), "42"},
		{Number(1.5), "1.5"},
		{Number(-3), "-3"},
		{Real(2), "2."},
		{Boolean(true), "true"},
		{Name("Annot"), "/Annot"},
		{Name("A B"), "/A#20B"},
		{String("hello"), "(hello)"},
		{String("a(b"), `(a\(b)`},
		{Array{Integer(1), nil, Name("X")}, "[1 null /X]"},
		{NewReference(7, 0), "7 0 R"},
		{Dict{"Type": Name("Annot"), "F": Integer(4), "Skip": nil}, "<<\n/F 4\n/Type /Annot\n>>"},
		{NumberArray(1, 2.5, 0), "[1 2.5 0]"},
	}
	for _, c := range cases {
		got := Format(c.in)
		if got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTextString(t *testing.T) {
	for _, s := range []string{"", "plain text", "Jochen Voß", "批注", "é"} {
		enc := TextString(s)
		got := enc.AsTextString()
		want := s
		if s == "é" {
			want = "é" // NFC
		}
		if got != want {
			t.Errorf("round trip of %q gave %q", s, got)
		}
	}

	if enc := TextString("ASCII"); string(enc) != "ASCII" {
		t.Errorf("ASCII text should be stored verbatim, got %q", enc)
	}
	enc := TextString("Voß")
	if len(enc) < 2 || enc[0] != 0xFE || enc[1] != 0xFF {
		t.Errorf("non-ASCII text should start with a BOM, got % x", []byte(enc))
	}
}

func TestDate(t *testing.T) {
	tm := time.Date(2024, 3, 5, 14, 30, 0, 0, time.FixedZone("", 3600))
	if got := string(Date(tm)); got != "D:20240305143000+01'00" {
		t.Errorf("Date = %q", got)
	}

	cases := []struct {
		in string
		ok bool
	}{
		{"2024-03-05T14:30:00+01:00", true},
		{"2024-03-05 14:30:00", true},
		{"D:20240305143000+01'00", true},
		{"2024-03-05", true},
		{"yesterday", false},
		{"", false},
	}
	for _, c := range cases {
		_, ok := ParseDate(c.in)
		if ok != c.ok {
			t.Errorf("ParseDate(%q) ok = %t, want %t", c.in, ok, c.ok)
		}
	}

	got, _ := ParseDate("D:20240305143000+01'00")
	if !got.Equal(tm) {
		t.Errorf("ParseDate = %v, want %v", got, tm)
	}
}
