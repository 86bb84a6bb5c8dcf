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

// Package color implements the DeviceRGB colours used by annotations.
package color

import (
	"fmt"
	gocolor "image/color"
	"math"

	"seehuhn.de/go/annotate/pdf"
)

// RGB is a colour in the DeviceRGB colour space.
// All components are in the range [0, 1].
type RGB struct {
	R, G, B float64
}

// DeviceRGB returns the colour with the given components, clamped to [0, 1].
func DeviceRGB(r, g, b float64) RGB {
	return RGB{R: clamp(r), G: clamp(g), B: clamp(b)}
}

// Predefined colours.
var (
	Black = RGB{0, 0, 0}
	White = RGB{1, 1, 1}
	Red   = RGB{1, 0, 0}
)

// AsPDF returns the colour as an array of three numbers, as used for the
// /C entry of annotation dictionaries.  Components are rounded to four
// decimal places.
func (c RGB) AsPDF() pdf.Array {
	return pdf.Array{round(c.R), round(c.G), round(c.B)}
}

// RGBA implements the [image/color.Color] interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return uint32(c.R*0xffff + 0.5), uint32(c.G*0xffff + 0.5), uint32(c.B*0xffff + 0.5), 0xffff
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%.3g, %.3g, %.3g)", c.R, c.G, c.B)
}

// fromGo converts a Go colour to DeviceRGB, dropping the alpha channel.
func fromGo(c gocolor.Color) RGB {
	nc := gocolor.NRGBAModel.Convert(c).(gocolor.NRGBA)
	return RGB{
		R: float64(nc.R) / 255,
		G: float64(nc.G) / 255,
		B: float64(nc.B) / 255,
	}
}

func clamp(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func round(x float64) pdf.Number {
	return pdf.Number(math.Round(x*1e4) / 1e4)
}
