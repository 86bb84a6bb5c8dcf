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
	"compress/zlib"
	"io"
)

// Filter represents a PDF stream filter.
type Filter interface {
	// Info returns the name and parameters of the filter,
	// as they should be recorded in the stream dictionary.
	Info(v Version) (Name, Dict, error)

	// Encode wraps w so that data written to the result is encoded
	// using this filter.
	Encode(v Version, w io.WriteCloser) (io.WriteCloser, error)
}

// FilterCompress is the FlateDecode filter.  The map holds the optional
// filter parameters which are recorded in /DecodeParms.
type FilterCompress Dict

// Info implements the [Filter] interface.
func (f FilterCompress) Info(Version) (Name, Dict, error) {
	if len(f) == 0 {
		return "FlateDecode", nil, nil
	}
	return "FlateDecode", Dict(f), nil
}

// Encode implements the [Filter] interface.
func (f FilterCompress) Encode(_ Version, w io.WriteCloser) (io.WriteCloser, error) {
	zw, err := zlib.NewWriterLevel(w, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	return &flateWriter{Writer: zw, out: w}, nil
}

type flateWriter struct {
	*zlib.Writer
	out io.WriteCloser
}

func (w *flateWriter) Close() error {
	err := w.Writer.Close()
	if err != nil {
		return err
	}
	return w.out.Close()
}

// appendFilter records a filter in the stream dictionary.  The first filter
// passed to OpenStream is closest to the stored data, so it is listed first.
func appendFilter(dict Dict, name Name, parms Dict) {
	var parmsObj Object
	if len(parms) > 0 {
		parmsObj = parms
	}

	switch prev := dict["Filter"].(type) {
	case nil:
		dict["Filter"] = name
		if parmsObj != nil {
			dict["DecodeParms"] = parmsObj
		}
	case Name:
		dict["Filter"] = Array{prev, name}
		prevParms := dict["DecodeParms"]
		if parmsObj != nil || prevParms != nil {
			dict["DecodeParms"] = Array{prevParms, parmsObj}
		}
	case Array:
		dict["Filter"] = append(prev[:len(prev):len(prev)], name)
		if p, ok := dict["DecodeParms"].(Array); ok {
			dict["DecodeParms"] = append(p[:len(p):len(p)], parmsObj)
		} else if parmsObj != nil {
			p := make(Array, len(prev)+1)
			p[len(prev)] = parmsObj
			dict["DecodeParms"] = p
		}
	}
}
