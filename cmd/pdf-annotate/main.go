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

// Pdf-annotate converts annotation records into a PDF file.
//
// The records are read as a JSON array, either from the file given by -in
// or from standard input.  All annotations are placed on a single empty
// page of the given size.  The resulting file is written to -o, or to
// standard output if -o is not given and standard output is not a
// terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/annotate"
	"seehuhn.de/go/annotate/logging"
	"seehuhn.de/go/annotate/pdf"
	"seehuhn.de/go/annotate/viewport"
)

func main() {
	in := flag.String("in", "", "JSON file with annotation records (default stdin)")
	out := flag.String("o", "", "output file name (default stdout)")
	width := flag.Float64("width", 612, "page width in PDF units")
	height := flag.Float64("height", 792, "page height in PDF units")
	rotate := flag.Int("rotate", 0, "page rotation used when drawing the annotations")
	scale := flag.Float64("scale", 1, "zoom factor used when drawing the annotations")
	version := flag.String("version", "1.7", "PDF version of the output file")
	author := flag.String("author", "", "author for records without a title")
	verbose := flag.Bool("v", false, "print diagnostic messages")
	flag.Parse()

	if *verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *out == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "error: refusing to write PDF data to a terminal, use -o")
		os.Exit(1)
	}

	ver, err := pdf.ParseVersion(*version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %q: %v\n", *version, err)
		os.Exit(1)
	}

	err = run(*in, *out, ver, rect.Rect{URx: *width, URy: *height}, *rotate, *scale, *author)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(in, out string, ver pdf.Version, mediaBox rect.Rect, rotate int, scale float64, author string) error {
	var r io.Reader = os.Stdin
	if in != "" {
		fd, err := os.Open(in)
		if err != nil {
			return err
		}
		defer fd.Close()
		r = fd
	}
	recs, err := annotate.ReadRecords(r)
	if err != nil {
		return err
	}

	doc := pdf.NewData(ver)
	pageRef, err := newDocument(doc, mediaBox, rotate)
	if err != nil {
		return err
	}
	page, err := viewport.NewPage(pageRef, mediaBox, rotate, scale)
	if err != nil {
		return err
	}

	s := annotate.New(&annotate.Options{DefaultAuthor: author})
	refs, err := s.SynthesizeAll(doc, page, recs)
	if err != nil {
		// Records which could not be converted are reported, the
		// remaining annotations are still written.
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	logging.Logger().Info("annotations converted",
		slog.Int("records", len(recs)),
		slog.Int("failed", countZero(refs)),
		slog.Int("objects", doc.Len()))

	var w io.Writer = os.Stdout
	if out != "" {
		fd, err := os.Create(out)
		if err != nil {
			return err
		}
		defer fd.Close()
		w = fd
	}
	return doc.Write(w)
}

// newDocument creates a catalog and a page tree with a single empty page.
// The page is displayed with the given rotation.
func newDocument(doc *pdf.Data, mediaBox rect.Rect, rotate int) (pdf.Reference, error) {
	rotate %= 360
	if rotate < 0 {
		rotate += 360
	}
	if rotate%90 != 0 {
		return 0, fmt.Errorf("invalid page rotation %d", rotate)
	}

	catalog := doc.Alloc()
	pages := doc.Alloc()
	page := doc.Alloc()

	objs := map[pdf.Reference]pdf.Object{
		catalog: pdf.Dict{
			"Type":  pdf.Name("Catalog"),
			"Pages": pages,
		},
		pages: pdf.Dict{
			"Type":  pdf.Name("Pages"),
			"Kids":  pdf.Array{page},
			"Count": pdf.Integer(1),
		},
		page: pdf.Dict{
			"Type":     pdf.Name("Page"),
			"Parent":   pages,
			"MediaBox": pdf.NumberArray(mediaBox.LLx, mediaBox.LLy, mediaBox.URx, mediaBox.URy),
		},
	}
	if rotate != 0 {
		objs[page].(pdf.Dict)["Rotate"] = pdf.Integer(rotate)
	}
	for ref, obj := range objs {
		if err := doc.Put(ref, obj); err != nil {
			return 0, err
		}
	}
	doc.GetMeta().Root = catalog
	return page, nil
}

func countZero(refs []pdf.Reference) int {
	n := 0
	for _, ref := range refs {
		if ref == 0 {
			n++
		}
	}
	return n
}
