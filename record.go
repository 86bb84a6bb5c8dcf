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

package annotate

import (
	"encoding/json"
	"fmt"
	"io"
)

// Kind is the kind of an annotation record.
type Kind string

// These are the supported annotation kinds.
const (
	KindInk       Kind = "ink"
	KindPolyline  Kind = "polyline"
	KindUnderline Kind = "underline"
	KindStamp     Kind = "stamp"
)

// Record is an annotation, as stored by the drawing layer.
type Record struct {
	// ID uniquely identifies the annotation.  It is used as the /NM entry
	// of the root annotation.
	ID string `json:"id"`

	Kind Kind `json:"type"`

	// Title is the name of the author.
	Title string `json:"title"`

	// Color is a CSS colour string, for example "rgb(255, 0, 0)".
	Color string `json:"color"`

	// Date is the modification date, as an RFC 3339 or PDF date string.
	Date string `json:"date"`

	Contents Contents `json:"contentsObj"`

	// Scene is the JSON scene description of the shapes drawn by the user.
	Scene string `json:"konvaString"`

	// ClientRect is the bounding box of the annotation in scene space.
	ClientRect ClientRect `json:"konvaClientRect"`

	// Comments is the reply thread, in chronological order.
	Comments []Comment `json:"comments"`
}

// Contents is the payload of an annotation.
type Contents struct {
	Text string `json:"text"`

	// Image (stamps only) is the stamp image as a data URL.
	Image string `json:"image"`
}

// ClientRect is a rectangle in scene coordinates, with y pointing down.
type ClientRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsZero reports whether the rectangle has zero width and height.
func (r ClientRect) IsZero() bool {
	return r.Width == 0 && r.Height == 0
}

// Comment is one entry of the reply thread of an annotation.
type Comment struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

// ReadRecords reads a JSON array of annotation records.
func ReadRecords(r io.Reader) ([]*Record, error) {
	var recs []*Record
	dec := json.NewDecoder(r)
	if err := dec.Decode(&recs); err != nil {
		return nil, fmt.Errorf("reading annotation records: %w", err)
	}
	return recs, nil
}
