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
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/annotate/graphics/color"
	"seehuhn.de/go/annotate/logging"
)

// Options control how records are converted.
// The zero value selects the defaults described for the individual fields.
type Options struct {
	// DefaultAuthor is used for annotations and replies without a title.
	// The default is "unknown user".
	DefaultAuthor string

	// InkColor is the colour of ink annotations when neither the first
	// stroke nor the record specify a colour.  The default is red.
	InkColor *color.RGB

	// UnderlineColor is the colour of underline annotations when the record
	// does not specify a colour.  The default is black.
	UnderlineColor *color.RGB

	// QuadSegments and CubicSegments give the number of samples used to
	// flatten quadratic and cubic curve segments of polyline annotations.
	// The defaults are 12 and 16.
	QuadSegments  int
	CubicSegments int

	// Workers limits the number of records which are prepared concurrently
	// by [Synthesizer.SynthesizeAll].  The default is GOMAXPROCS.
	Workers int

	// Lang, if set, is recorded as the language of all annotations.
	// This requires PDF 2.0.
	Lang language.Tag

	// Now returns the time used for records without a date.
	// The default is [time.Now].
	Now func() time.Time

	// Logger receives diagnostic messages.  If this is nil, the package
	// logger from [logging.Logger] is used.
	Logger *slog.Logger
}

const defaultAuthor = "unknown user"

func (o *Options) withDefaults() Options {
	var res Options
	if o != nil {
		res = *o
	}
	if res.DefaultAuthor == "" {
		res.DefaultAuthor = defaultAuthor
	}
	if res.InkColor == nil {
		c := color.Red
		res.InkColor = &c
	}
	if res.UnderlineColor == nil {
		c := color.Black
		res.UnderlineColor = &c
	}
	if res.Workers <= 0 {
		res.Workers = runtime.GOMAXPROCS(0)
	}
	if res.Now == nil {
		res.Now = time.Now
	}
	return res
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.Logger()
}
