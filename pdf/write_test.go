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
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	d := NewData(V1_7)
	catalog := d.Alloc()
	pages := d.Alloc()
	page := d.Alloc()
	_ = d.Put(catalog, Dict{"Type": Name("Catalog"), "Pages": pages})
	_ = d.Put(pages, Dict{"Type": Name("Pages"), "Kids": Array{page}, "Count": Integer(1)})
	_ = d.Put(page, Dict{
		"Type":     Name("Page"),
		"Parent":   pages,
		"MediaBox": NumberArray(0, 0, 595, 842),
	})
	d.GetMeta().Root = catalog

	buf := &bytes.Buffer{}
	if err := d.Write(buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "%PDF-1.7\n") {
		t.Errorf("missing header: %q", out[:min(len(out), 20)])
	}
	if !strings.HasSuffix(out, "%%EOF\n") {
		t.Errorf("missing %s marker", "%%EOF")
	}

	m := regexp.MustCompile(`startxref\n(\d+)\n`).FindStringSubmatch(out)
	if m == nil {
		t.Fatal("missing startxref")
	}
	pos, _ := strconv.Atoi(m[1])
	if !strings.HasPrefix(out[pos:], "xref\n0 4\n") {
		t.Errorf("startxref does not point to the xref table")
	}

	// every in-use xref entry points to the matching object
	entries := regexp.MustCompile(`(\d{10}) (\d{5}) n\r\n`).FindAllStringSubmatch(out, -1)
	if len(entries) != 3 {
		t.Fatalf("found %d xref entries, want 3", len(entries))
	}
	for i, e := range entries {
		p, _ := strconv.Atoi(e[1])
		want := strconv.Itoa(i+1) + " 0 obj"
		if !strings.HasPrefix(out[p:], want) {
			t.Errorf("xref entry %d does not point to %q", i+1, want)
		}
	}
}

func TestWriteMissingRoot(t *testing.T) {
	d := NewData(V1_7)
	if err := d.Write(&bytes.Buffer{}); err == nil {
		t.Error("expected error for missing /Root")
	}
}
