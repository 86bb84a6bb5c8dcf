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

package image

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/annotate/pdf"
)

func makePNG(t *testing.T, alpha uint8) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := range 3 {
		for x := range 4 {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(60 * x), G: uint8(80 * y), B: 200, A: alpha})
		}
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func dataURL(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func TestDecodeDataURL(t *testing.T) {
	raw := makePNG(t, 255)
	for _, in := range []string{
		dataURL("image/png", raw),
		base64.StdEncoding.EncodeToString(raw),
		base64.RawStdEncoding.EncodeToString(raw),
	} {
		im, err := DecodeDataURL(in)
		if err != nil {
			t.Fatal(err)
		}
		if im.Format != "png" {
			t.Errorf("format %q, want png", im.Format)
		}
		if d := cmp.Diff(image.Rect(0, 0, 4, 3), im.Bounds()); d != "" {
			t.Error(d)
		}
		if im.HasAlpha() {
			t.Error("opaque image reported as transparent")
		}
	}
}

func TestDecodeDataURLErrors(t *testing.T) {
	cases := []string{
		"data:image/png;base64",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png,rawdata",
		"data:image/png;base64,!!!",
		dataURL("image/png", []byte("not an image")),
	}
	for _, in := range cases {
		_, err := DecodeDataURL(in)
		if !errors.Is(err, ErrDataURL) {
			t.Errorf("%.30q: expected ErrDataURL, got %v", in, err)
		}
	}
}

func TestEmbedPNG(t *testing.T) {
	im, err := Decode(makePNG(t, 128))
	if err != nil {
		t.Fatal(err)
	}
	if !im.HasAlpha() {
		t.Fatal("transparency not detected")
	}

	data := pdf.NewData(pdf.V1_7)
	ref, err := im.Embed(data)
	if err != nil {
		t.Fatal(err)
	}
	if data.Len() != 2 {
		t.Errorf("got %d objects, want 2", data.Len())
	}

	obj, _ := data.Get(ref)
	stm := obj.(*pdf.Stream)
	if stm.Dict["Width"] != pdf.Integer(4) || stm.Dict["Height"] != pdf.Integer(3) {
		t.Errorf("wrong size: %s", pdf.Format(stm.Dict))
	}
	maskRef, ok := stm.Dict["SMask"].(pdf.Reference)
	if !ok {
		t.Fatal("missing /SMask")
	}
	mask, _ := data.Get(maskRef)
	if m, ok := mask.(*pdf.Stream); !ok || m.Dict["ColorSpace"] != pdf.Name("DeviceGray") {
		t.Errorf("invalid soft mask %v", mask)
	}
}

func TestEmbedSoftMaskVersion(t *testing.T) {
	im, err := Decode(makePNG(t, 0))
	if err != nil {
		t.Fatal(err)
	}
	data := pdf.NewData(pdf.V1_3)
	_, err = im.Embed(data)
	var versionErr *pdf.VersionError
	if !errors.As(err, &versionErr) {
		t.Errorf("expected version error, got %v", err)
	}
}

func TestEmbedJPEG(t *testing.T) {
	cases := []struct {
		name string
		img  image.Image
		cs   pdf.Name
	}{
		{"RGB", image.NewRGBA(image.Rect(0, 0, 8, 8)), "DeviceRGB"},
		{"Gray", image.NewGray(image.Rect(0, 0, 4, 4)), "DeviceGray"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := jpeg.Encode(buf, c.img, nil); err != nil {
				t.Fatal(err)
			}
			raw := buf.Bytes()

			im, err := DecodeDataURL(dataURL("image/jpeg", raw))
			if err != nil {
				t.Fatal(err)
			}
			data := pdf.NewData(pdf.V1_7)
			ref, err := im.Embed(data)
			if err != nil {
				t.Fatal(err)
			}

			obj, _ := data.Get(ref)
			stm := obj.(*pdf.Stream)
			if stm.Dict["Filter"] != pdf.Name("DCTDecode") {
				t.Errorf("Filter = %v", stm.Dict["Filter"])
			}
			if stm.Dict["ColorSpace"] != c.cs {
				t.Errorf("ColorSpace = %v, want %s", stm.Dict["ColorSpace"], c.cs)
			}
			body, err := io.ReadAll(stm.R)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(body, raw) {
				t.Error("JPEG data was not copied unchanged")
			}
		})
	}
}

func TestJPEGColorSpace(t *testing.T) {
	if cs := jpegColorSpace([]byte("not a JPEG")); cs != "" {
		t.Errorf("got %q for invalid data", cs)
	}
}
