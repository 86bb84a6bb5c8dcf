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
	gocolor "image/color"
	"image/jpeg"

	"seehuhn.de/go/annotate/pdf"
)

// Embed writes the image as an image XObject and returns its reference.
//
// Greyscale and YCbCr JPEG images are copied unchanged, using the
// DCTDecode filter.  All other images, including CMYK JPEGs, are stored as 8-bit DeviceRGB
// samples with FlateDecode compression.  If the image has transparency,
// the alpha channel is written as a soft mask, which requires PDF 1.4.
func (im *Image) Embed(w pdf.Putter) (pdf.Reference, error) {
	hasAlpha := im.HasAlpha()
	if hasAlpha {
		if err := pdf.CheckVersion(w, "soft mask images", pdf.V1_4); err != nil {
			return 0, err
		}
	}

	width := im.Pix.Rect.Dx()
	height := im.Pix.Rect.Dy()
	ref := w.Alloc()

	dict := pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(width),
		"Height":           pdf.Integer(height),
		"ColorSpace":       pdf.Name("DeviceRGB"),
		"BitsPerComponent": pdf.Integer(8),
	}

	if im.Format == "jpeg" && !hasAlpha && im.Raw != nil {
		if cs := jpegColorSpace(im.Raw); cs != "" {
			dict["ColorSpace"] = cs
			dict["Filter"] = pdf.Name("DCTDecode")
			return ref, writeStream(w, ref, dict, nil, im.Raw)
		}
	}

	var maskRef pdf.Reference
	if hasAlpha {
		maskRef = w.Alloc()
		dict["SMask"] = maskRef
	}

	rgb := make([]byte, 0, 3*width*height)
	var alpha []byte
	if hasAlpha {
		alpha = make([]byte, 0, width*height)
	}
	p := im.Pix
	for y := range height {
		row := p.Pix[y*p.Stride : y*p.Stride+4*width]
		for i := 0; i < len(row); i += 4 {
			rgb = append(rgb, row[i], row[i+1], row[i+2])
			if hasAlpha {
				alpha = append(alpha, row[i+3])
			}
		}
	}

	err := writeStream(w, ref, dict, pdf.FilterCompress{}, rgb)
	if err != nil {
		return 0, err
	}

	if hasAlpha {
		maskDict := pdf.Dict{
			"Type":             pdf.Name("XObject"),
			"Subtype":          pdf.Name("Image"),
			"Width":            pdf.Integer(width),
			"Height":           pdf.Integer(height),
			"ColorSpace":       pdf.Name("DeviceGray"),
			"BitsPerComponent": pdf.Integer(8),
		}
		err = writeStream(w, maskRef, maskDict, pdf.FilterCompress{}, alpha)
		if err != nil {
			return 0, err
		}
	}

	return ref, nil
}

// jpegColorSpace returns the PDF colour space for the JPEG data raw,
// or the empty name if the data cannot be embedded unchanged.
func jpegColorSpace(raw []byte) pdf.Name {
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return ""
	}
	switch cfg.ColorModel {
	case gocolor.GrayModel:
		return "DeviceGray"
	case gocolor.YCbCrModel:
		return "DeviceRGB"
	default:
		return ""
	}
}

func writeStream(w pdf.Putter, ref pdf.Reference, dict pdf.Dict, filter pdf.Filter, body []byte) error {
	var filters []pdf.Filter
	if filter != nil {
		filters = append(filters, filter)
	}
	stm, err := w.OpenStream(ref, dict, filters...)
	if err != nil {
		return err
	}
	_, err = stm.Write(body)
	if err != nil {
		return err
	}
	return stm.Close()
}
