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

// Package image embeds raster images into PDF files.
package image

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register the JPEG decoder
	_ "image/png"  // register the PNG decoder
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register the WebP decoder
)

// ErrDataURL is returned when an image data URL cannot be decoded.
var ErrDataURL = errors.New("invalid image data URL")

// Image is a decoded raster image, ready to be embedded.
type Image struct {
	// Pix holds the pixels of the image.
	Pix *image.NRGBA

	// Format is the name of the source format, as reported by
	// [image.Decode], for example "png".
	Format string

	// Raw holds the undecoded bytes of the source image.
	Raw []byte
}

// DecodeDataURL decodes an image given as a "data:image/...;base64," URL.
// A plain base64 string without the URL prefix is accepted as well.
// PNG, JPEG and WebP images are supported.
func DecodeDataURL(url string) (*Image, error) {
	payload := strings.TrimSpace(url)
	if rest, ok := strings.CutPrefix(payload, "data:"); ok {
		header, data, found := strings.Cut(rest, ",")
		if !found {
			return nil, fmt.Errorf("%w: missing ','", ErrDataURL)
		}
		if !strings.HasSuffix(header, ";base64") {
			return nil, fmt.Errorf("%w: not base64-encoded", ErrDataURL)
		}
		if !strings.HasPrefix(header, "image/") {
			return nil, fmt.Errorf("%w: media type %q", ErrDataURL,
				strings.TrimSuffix(header, ";base64"))
		}
		payload = data
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// some producers leave out the padding
		raw, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDataURL, err)
		}
	}
	return Decode(raw)
}

// Decode decodes a PNG, JPEG or WebP image.
func Decode(raw []byte) (*Image, error) {
	src, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataURL, err)
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrDataURL)
	}

	pix, ok := src.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) {
		pix = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(pix, pix.Bounds(), src, b.Min, draw.Src)
	}
	return &Image{Pix: pix, Format: format, Raw: raw}, nil
}

// Bounds returns the size of the image in pixels.
func (im *Image) Bounds() image.Rectangle {
	return im.Pix.Bounds()
}

// HasAlpha reports whether any pixel of the image is not fully opaque.
func (im *Image) HasAlpha() bool {
	p := im.Pix
	for y := 0; y < p.Rect.Dy(); y++ {
		row := p.Pix[y*p.Stride : y*p.Stride+4*p.Rect.Dx()]
		for i := 3; i < len(row); i += 4 {
			if row[i] != 0xff {
				return true
			}
		}
	}
	return false
}
