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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/slices"
)

// Write writes the document to w as a complete PDF file, using a
// classic cross-reference table.  The document catalog must have been
// set in [MetaInfo.Root].
func (d *Data) Write(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.meta.Root == 0 {
		return errors.New("missing /Root")
	}
	verString, err := d.meta.Version.ToString()
	if err != nil {
		return err
	}

	refs := make([]Reference, 0, len(d.objects))
	for ref := range d.objects {
		refs = append(refs, ref)
	}
	slices.SortFunc(refs, func(a, b Reference) int {
		return int(int64(a.Number()) - int64(b.Number()))
	})

	out := &posWriter{w: bufio.NewWriter(w)}
	_, err = fmt.Fprintf(out, "%%PDF-%s\n%%\x80\x80\x80\x80\n", verString)
	if err != nil {
		return err
	}

	var size uint32 = 1
	pos := map[uint32]int64{}
	gen := map[uint32]uint16{}
	for _, ref := range refs {
		obj := d.objects[ref]
		if s, isStream := obj.(*Stream); isStream {
			obj, err = withLength(s)
			if err != nil {
				return err
			}
		}

		pos[ref.Number()] = out.pos
		gen[ref.Number()] = ref.Generation()
		_, err = fmt.Fprintf(out, "%d %d obj\n", ref.Number(), ref.Generation())
		if err != nil {
			return err
		}
		err = obj.PDF(out)
		if err != nil {
			return fmt.Errorf("object %s: %w", ref, err)
		}
		_, err = io.WriteString(out, "\nendobj\n")
		if err != nil {
			return err
		}
		size = max(size, ref.Number()+1)
	}

	xRefPos := out.pos
	_, err = fmt.Fprintf(out, "xref\n0 %d\n", size)
	if err != nil {
		return err
	}
	for i := uint32(0); i < size; i++ {
		p, inUse := pos[i]
		switch {
		case i == 0:
			_, err = io.WriteString(out, "0000000000 65535 f\r\n")
		case inUse:
			_, err = fmt.Fprintf(out, "%010d %05d n\r\n", p, gen[i])
		default:
			_, err = io.WriteString(out, "0000000000 00001 f\r\n")
		}
		if err != nil {
			return err
		}
	}

	trailer := Dict{
		"Size": Integer(size),
		"Root": d.meta.Root,
	}
	if d.meta.Info != 0 {
		trailer["Info"] = d.meta.Info
	}
	_, err = io.WriteString(out, "trailer\n")
	if err != nil {
		return err
	}
	err = trailer.PDF(out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	return out.w.(*bufio.Writer).Flush()
}

// withLength makes sure that the /Length entry of a stream is set.
func withLength(s *Stream) (*Stream, error) {
	if _, ok := s.Dict["Length"].(Integer); ok {
		return s, nil
	}
	data, err := io.ReadAll(s.R)
	if err != nil {
		return nil, err
	}
	dict := Dict{}
	for key, val := range s.Dict {
		dict[key] = val
	}
	dict["Length"] = Integer(len(data))
	s.R = bytes.NewReader(data)
	return &Stream{Dict: dict, R: bytes.NewReader(data)}, nil
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
