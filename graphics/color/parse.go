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
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrSyntax is returned by [Parse] for colour strings it cannot interpret.
var ErrSyntax = errors.New("invalid colour")

// Parse interprets a CSS-style colour string.  The supported forms are
// "rgb(r, g, b)" and "rgba(r, g, b, a)" with components in 0–255 (or
// percentages), "#rgb", "#rrggbb", "#rrggbbaa", and the SVG colour names.
// The alpha channel is returned separately; it is 1 if not given.
func Parse(s string) (RGB, float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	switch {
	case s == "":
		return RGB{}, 0, fmt.Errorf("%w: empty string", ErrSyntax)
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgb"):
		return parseFunc(s)
	}

	if c, ok := colornames.Map[s]; ok {
		return fromGo(c), 1, nil
	}
	return RGB{}, 0, fmt.Errorf("%w: %q", ErrSyntax, s)
}

func parseHex(s string) (RGB, float64, error) {
	var digits []uint64
	switch len(s) {
	case 3, 4:
		for i := range s {
			v, err := strconv.ParseUint(s[i:i+1], 16, 8)
			if err != nil {
				return RGB{}, 0, fmt.Errorf("%w: #%s", ErrSyntax, s)
			}
			digits = append(digits, v*17)
		}
	case 6, 8:
		for i := 0; i < len(s); i += 2 {
			v, err := strconv.ParseUint(s[i:i+2], 16, 8)
			if err != nil {
				return RGB{}, 0, fmt.Errorf("%w: #%s", ErrSyntax, s)
			}
			digits = append(digits, v)
		}
	default:
		return RGB{}, 0, fmt.Errorf("%w: #%s", ErrSyntax, s)
	}

	c := RGB{
		R: float64(digits[0]) / 255,
		G: float64(digits[1]) / 255,
		B: float64(digits[2]) / 255,
	}
	alpha := 1.0
	if len(digits) == 4 {
		alpha = float64(digits[3]) / 255
	}
	return c, alpha, nil
}

func parseFunc(s string) (RGB, float64, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return RGB{}, 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	name := strings.TrimSpace(s[:open])
	args := strings.FieldsFunc(s[open+1:len(s)-1], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if name == "rgb" && len(args) != 3 && len(args) != 4 ||
		name == "rgba" && len(args) != 4 ||
		name != "rgb" && name != "rgba" {
		return RGB{}, 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	var v [3]float64
	for i := range 3 {
		x, err := parseComponent(args[i], 255)
		if err != nil {
			return RGB{}, 0, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		v[i] = x
	}
	alpha := 1.0
	if len(args) == 4 {
		x, err := parseComponent(args[3], 1)
		if err != nil {
			return RGB{}, 0, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		alpha = x
	}
	return DeviceRGB(v[0], v[1], v[2]), clamp(alpha), nil
}

// parseComponent parses a number or a percentage and scales it to [0, 1].
func parseComponent(s string, scale float64) (float64, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		x, err := strconv.ParseFloat(pct, 64)
		return x / 100, err
	}
	x, err := strconv.ParseFloat(s, 64)
	return x / scale, err
}
