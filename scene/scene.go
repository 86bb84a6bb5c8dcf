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

// Package scene reads the vector scene descriptions produced by the
// drawing layer.
//
// A scene is a JSON-serialised shape group: a node with a transform in
// "attrs" and a list of "children", each of which has a "className" and
// its own "attrs".  The shape kinds Line, Path and Rect are understood;
// other children are ignored.
package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"seehuhn.de/go/annotate/logging"
	"seehuhn.de/go/annotate/viewport"
)

// ErrMalformed is returned when a scene description cannot be used.
var ErrMalformed = errors.New("malformed scene description")

// Group is a transformed, ordered list of shapes.
type Group struct {
	Transform viewport.GroupTransform
	Shapes    []Shape
}

// Shape is one of [*Line], [*Path] or [*Rect].
type Shape interface {
	// StrokeStyle returns the stroke attributes of the shape.
	StrokeStyle() Stroke

	isShape()
}

// Stroke holds the stroke attributes of a shape.
// Nil fields were not present in the scene description.
type Stroke struct {
	Width   *float64
	Color   *string
	Opacity *float64
}

// StrokeStyle implements the [Shape] interface.
func (s Stroke) StrokeStyle() Stroke {
	return s
}

// Line is a polyline.  Points holds the coordinates x0, y0, x1, y1, ...
type Line struct {
	Points []float64
	Stroke
}

// Path is a vector path given as SVG path data.
type Path struct {
	Data string
	Stroke
}

// Rect is an axis-aligned rectangle in shape-local coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
	Stroke
}

func (*Line) isShape() {}
func (*Path) isShape() {}
func (*Rect) isShape() {}

type node struct {
	ClassName string             `json:"className"`
	Attrs     json.RawMessage    `json:"attrs"`
	Children  *[]json.RawMessage `json:"children"`
}

type groupAttrs struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	ScaleX float64 `json:"scaleX"`
	ScaleY float64 `json:"scaleY"`
}

type shapeAttrs struct {
	Points      []float64 `json:"points"`
	Data        string    `json:"data"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
	Width       float64   `json:"width"`
	Height      float64   `json:"height"`
	Stroke      *string   `json:"stroke"`
	StrokeWidth *float64  `json:"strokeWidth"`
	Opacity     *float64  `json:"opacity"`
}

// Parser decodes scene descriptions.  The zero value is ready to use.
type Parser struct {
	// Logger receives a debug message for every skipped shape.  If this is
	// nil, the package logger from [logging.Logger] is used.
	Logger *slog.Logger
}

// Parse decodes a scene description, using the default [Parser].
func Parse(data []byte) (*Group, error) {
	return Parser{}.Parse(data)
}

func (p Parser) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return logging.Logger()
}

// Parse decodes a scene description.
//
// A description which is not valid JSON, has no list of children, or
// contains a shape with invalid attributes is an error wrapping
// [ErrMalformed].  Children of unknown kind are skipped.
func (p Parser) Parse(data []byte) (*Group, error) {
	var root node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if root.Children == nil {
		return nil, fmt.Errorf("%w: missing children", ErrMalformed)
	}

	var ga groupAttrs
	if len(root.Attrs) > 0 {
		if err := json.Unmarshal(root.Attrs, &ga); err != nil {
			return nil, fmt.Errorf("%w: group attributes: %w", ErrMalformed, err)
		}
	}

	g := &Group{
		Transform: viewport.GroupTransform{
			X:      ga.X,
			Y:      ga.Y,
			ScaleX: ga.ScaleX,
			ScaleY: ga.ScaleY,
		},
	}
	for i, raw := range *root.Children {
		var child node
		if err := json.Unmarshal(raw, &child); err != nil {
			return nil, fmt.Errorf("%w: child %d: %w", ErrMalformed, i, err)
		}

		var a shapeAttrs
		if len(child.Attrs) > 0 {
			if err := json.Unmarshal(child.Attrs, &a); err != nil {
				return nil, fmt.Errorf("%w: child %d (%s): %w",
					ErrMalformed, i, child.ClassName, err)
			}
		}
		stroke := Stroke{Width: a.StrokeWidth, Color: a.Stroke, Opacity: a.Opacity}

		switch child.ClassName {
		case "Line":
			if len(a.Points)%2 != 0 {
				return nil, fmt.Errorf("%w: child %d: odd number of coordinates",
					ErrMalformed, i)
			}
			g.Shapes = append(g.Shapes, &Line{Points: a.Points, Stroke: stroke})
		case "Path":
			g.Shapes = append(g.Shapes, &Path{Data: a.Data, Stroke: stroke})
		case "Rect":
			g.Shapes = append(g.Shapes, &Rect{
				X:      a.X,
				Y:      a.Y,
				Width:  a.Width,
				Height: a.Height,
				Stroke: stroke,
			})
		default:
			p.logger().Debug("skipping shape",
				slog.Int("index", i),
				slog.String("kind", child.ClassName))
		}
	}
	return g, nil
}

// Lines returns the Line shapes of the group, in order.
func (g *Group) Lines() []*Line {
	return collect[*Line](g)
}

// Paths returns the Path shapes of the group, in order.
func (g *Group) Paths() []*Path {
	return collect[*Path](g)
}

// Rects returns the Rect shapes of the group, in order.
func (g *Group) Rects() []*Rect {
	return collect[*Rect](g)
}

func collect[T Shape](g *Group) []T {
	var res []T
	for _, s := range g.Shapes {
		if t, ok := s.(T); ok {
			res = append(res, t)
		}
	}
	return res
}
