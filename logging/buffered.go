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

package logging

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Entry is a log record captured by a [BufferedHandler].
type Entry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// BufferedHandler is a [slog.Handler] which keeps all records in memory.
// It is used to check log output in tests.
type BufferedHandler struct {
	level  slog.Leveler
	shared *bufferedState
	attrs  []slog.Attr
	groups []string
}

type bufferedState struct {
	mu      sync.Mutex
	entries []Entry
}

// NewBufferedHandler creates a handler which records all messages at or
// above the given level.
func NewBufferedHandler(level slog.Leveler) *BufferedHandler {
	if level == nil {
		level = slog.LevelDebug
	}
	return &BufferedHandler{
		level:  level,
		shared: &bufferedState{},
	}
}

// Enabled implements [slog.Handler].
func (h *BufferedHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements [slog.Handler].
func (h *BufferedHandler) Handle(_ context.Context, r slog.Record) error {
	e := Entry{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   map[string]string{},
	}
	for _, a := range h.attrs {
		e.Attrs[a.Key] = a.Value.String()
	}
	prefix := strings.Join(h.groups, ".")
	if prefix != "" {
		prefix += "."
	}
	r.Attrs(func(a slog.Attr) bool {
		e.Attrs[prefix+a.Key] = a.Value.String()
		return true
	})

	h.shared.mu.Lock()
	h.shared.entries = append(h.shared.entries, e)
	h.shared.mu.Unlock()
	return nil
}

// WithAttrs implements [slog.Handler].
func (h *BufferedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefix := strings.Join(h.groups, ".")
	if prefix != "" {
		prefix += "."
	}
	h2 := *h
	h2.attrs = make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(h2.attrs, h.attrs)
	for _, a := range attrs {
		a.Key = prefix + a.Key
		h2.attrs = append(h2.attrs, a)
	}
	return &h2
}

// WithGroup implements [slog.Handler].
func (h *BufferedHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.groups = append(h.groups[:len(h.groups):len(h.groups)], name)
	return &h2
}

// Entries returns a copy of all records captured so far.
func (h *BufferedHandler) Entries() []Entry {
	h.shared.mu.Lock()
	defer h.shared.mu.Unlock()
	return append([]Entry(nil), h.shared.entries...)
}

// Contains reports whether a captured record at the given level has a
// message containing msg.
func (h *BufferedHandler) Contains(level slog.Level, msg string) bool {
	for _, e := range h.Entries() {
		if e.Level == level && strings.Contains(e.Message, msg) {
			return true
		}
	}
	return false
}
