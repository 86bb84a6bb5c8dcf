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

package curve

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotate/logging"
)

// ErrSyntax indicates malformed path data.
var ErrSyntax = errors.New("malformed path data")

// Parser reads SVG path data.  The zero value is ready to use.
type Parser struct {
	// Logger receives a debug message for every skipped path command.  If
	// this is nil, the package logger from [logging.Logger] is used.
	Logger *slog.Logger
}

// ParsePath reads SVG path data, using the default [Parser].
func ParsePath(data string) (*path.Data, error) {
	return Parser{}.ParsePath(data)
}

func (ps Parser) logger() *slog.Logger {
	if ps.Logger != nil {
		return ps.Logger
	}
	return logging.Logger()
}

// ParsePath reads SVG path data.  The commands M, L, Q and C with absolute
// coordinates are understood.  Extra coordinate groups after a command
// repeat the command; after M they are treated as L.  All other commands,
// including the lower case relative forms and Z, are skipped together with
// their arguments.
func (ps Parser) ParsePath(data string) (*path.Data, error) {
	p := &path.Data{}
	s := &scanner{buf: data}

	var cmd byte
	for {
		s.skipSpace()
		if s.pos >= len(s.buf) {
			break
		}

		c := s.buf[s.pos]
		if isLetter(c) {
			cmd = c
			s.pos++
			if !isSupported(cmd) {
				ps.logger().Debug("skipping path command",
					slog.String("command", string(cmd)),
					slog.Int("offset", s.pos-1))
			}
			if cmd == 'M' || cmd == 'L' || cmd == 'Q' || cmd == 'C' {
				if err := s.args(p, cmd); err != nil {
					return nil, err
				}
			}
			continue
		}

		switch cmd {
		case 0:
			return nil, fmt.Errorf("%w: coordinates before first command at offset %d",
				ErrSyntax, s.pos)
		case 'M', 'L', 'Q', 'C':
			if cmd == 'M' {
				cmd = 'L'
			}
			if err := s.args(p, cmd); err != nil {
				return nil, err
			}
		default:
			if _, err := s.number(); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}

// ParseSVGPathToPoints reads SVG path data and returns the flattened path
// as a flat list of coordinates x0, y0, x1, y1, ..., using the default
// number of samples per curve.
func ParseSVGPathToPoints(data string) ([]float64, error) {
	p, err := ParsePath(data)
	if err != nil {
		return nil, err
	}
	pts := Flatten(p, 0, 0)
	res := make([]float64, 0, 2*len(pts))
	for _, pt := range pts {
		res = append(res, pt.X, pt.Y)
	}
	return res, nil
}

// Flatten converts a path into a polyline.  Move and line commands
// contribute their end point, curves contribute quadN or cubicN samples.
// Paths are not split at move commands and closing a sub-path adds no
// points.
func Flatten(p *path.Data, quadN, cubicN int) []vec.Vec2 {
	var res []vec.Vec2
	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k]
			start = current
			res = append(res, current)
			k++
		case path.CmdLineTo:
			current = p.Coords[k]
			res = append(res, current)
			k++
		case path.CmdQuadTo:
			res = append(res, QuadBezier(current, p.Coords[k], p.Coords[k+1], quadN)...)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			res = append(res, CubicBezier(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], cubicN)...)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			current = start
		}
	}
	return res
}

func isSupported(cmd byte) bool {
	return cmd == 'M' || cmd == 'L' || cmd == 'Q' || cmd == 'C'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

type scanner struct {
	buf string
	pos int
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.buf) {
		switch s.buf[s.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			s.pos++
		default:
			return
		}
	}
}

// args reads the coordinate group of one command and appends it to p.
func (s *scanner) args(p *path.Data, cmd byte) error {
	var n int
	switch cmd {
	case 'M', 'L':
		n = 1
	case 'Q':
		n = 2
	case 'C':
		n = 3
	}

	start := len(p.Coords)
	for range n {
		x, err := s.number()
		if err != nil {
			p.Coords = p.Coords[:start]
			return err
		}
		y, err := s.number()
		if err != nil {
			p.Coords = p.Coords[:start]
			return err
		}
		p.Coords = append(p.Coords, vec.Vec2{X: x, Y: y})
	}

	switch cmd {
	case 'M':
		p.Cmds = append(p.Cmds, path.CmdMoveTo)
	case 'L':
		p.Cmds = append(p.Cmds, path.CmdLineTo)
	case 'Q':
		p.Cmds = append(p.Cmds, path.CmdQuadTo)
	case 'C':
		p.Cmds = append(p.Cmds, path.CmdCubeTo)
	}
	return nil
}

// number reads one number.  Numbers may be separated by white space, a
// comma, or nothing at all if the second number starts with a sign or a
// second decimal point.
func (s *scanner) number() (float64, error) {
	s.skipSpace()
	start := s.pos
	i := s.pos
	if i < len(s.buf) && (s.buf[i] == '+' || s.buf[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s.buf) && isDigit(s.buf[i]) {
		i++
		digits++
	}
	if i < len(s.buf) && s.buf[i] == '.' {
		i++
		for i < len(s.buf) && isDigit(s.buf[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		if start >= len(s.buf) {
			return 0, fmt.Errorf("%w: unexpected end of data", ErrSyntax)
		}
		return 0, fmt.Errorf("%w: expected number at offset %d", ErrSyntax, start)
	}
	if i < len(s.buf) && (s.buf[i] == 'e' || s.buf[i] == 'E') {
		j := i + 1
		if j < len(s.buf) && (s.buf[j] == '+' || s.buf[j] == '-') {
			j++
		}
		if j < len(s.buf) && isDigit(s.buf[j]) {
			for j < len(s.buf) && isDigit(s.buf[j]) {
				j++
			}
			i = j
		}
	}

	x, err := strconv.ParseFloat(s.buf[start:i], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s.buf[start:i])
	}
	s.pos = i
	return x, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
