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

// Package curve converts vector path data into polylines.
//
// Curves are approximated by sampling at equally spaced parameter values.
// This matches the way freehand strokes are recorded by the drawing layer,
// where curve segments are short and a fixed number of samples suffices.
package curve

import "seehuhn.de/go/geom/vec"

// Default number of samples per curve segment.
const (
	DefaultQuadSegments  = 12
	DefaultCubicSegments = 16
)

// QuadBezier samples the quadratic Bézier curve with control points p0, p1,
// p2 at t = i/n for i = 1, ..., n.  The start point p0 is not included and
// the last sample is exactly p2.  If all control points coincide, every
// sample equals p0 exactly.  If n <= 0, [DefaultQuadSegments] is used.
func QuadBezier(p0, p1, p2 vec.Vec2, n int) []vec.Vec2 {
	if n <= 0 {
		n = DefaultQuadSegments
	}
	res := make([]vec.Vec2, n)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		b := 2 * s * t
		c := t * t
		res[i-1] = vec.Vec2{
			X: p0.X + b*(p1.X-p0.X) + c*(p2.X-p0.X),
			Y: p0.Y + b*(p1.Y-p0.Y) + c*(p2.Y-p0.Y),
		}
	}
	res[n-1] = p2
	return res
}

// CubicBezier samples the cubic Bézier curve with control points p0, p1,
// p2, p3 at t = i/n for i = 1, ..., n.  The start point p0 is not included
// and the last sample is exactly p3.  If n <= 0, [DefaultCubicSegments] is
// used.
func CubicBezier(p0, p1, p2, p3 vec.Vec2, n int) []vec.Vec2 {
	if n <= 0 {
		n = DefaultCubicSegments
	}
	res := make([]vec.Vec2, n)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		b := 3 * s * s * t
		c := 3 * s * t * t
		d := t * t * t
		res[i-1] = vec.Vec2{
			X: p0.X + b*(p1.X-p0.X) + c*(p2.X-p0.X) + d*(p3.X-p0.X),
			Y: p0.Y + b*(p1.Y-p0.Y) + c*(p2.Y-p0.Y) + d*(p3.Y-p0.Y),
		}
	}
	res[n-1] = p3
	return res
}
