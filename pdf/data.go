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

package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/exp/maps"
)

// Putter is the write side of a PDF object table.
type Putter interface {
	// GetMeta returns the meta information of the document.
	GetMeta() *MetaInfo

	// Alloc allocates a new object number for an indirect object.
	Alloc() Reference

	// Put stores obj as the indirect object ref.  A nil object removes
	// a previously stored object.
	Put(ref Reference, obj Object) error

	// OpenStream starts writing the stream object ref.  The stream is
	// stored when the returned writer is closed.
	OpenStream(ref Reference, dict Dict, filters ...Filter) (io.WriteCloser, error)

	// AppendAnnotation appends annot to the /Annots array of the page
	// dictionary page.
	AppendAnnotation(page, annot Reference) error
}

// Updater provides exclusive, all-or-nothing access to an object table.
//
// Update calls fn with a [Putter] that may only be used until fn returns.
// No other writer can modify the table while fn runs.  If fn returns an
// error, all changes made through the Putter are undone.
type Updater interface {
	Update(fn func(w Putter) error) error
}

// Data is an in-memory representation of a PDF document.
// All methods are safe for concurrent use.
type Data struct {
	mu      sync.Mutex
	meta    MetaInfo
	objects map[Reference]Object
	lastRef uint32
}

var (
	_ Putter  = (*Data)(nil)
	_ Updater = (*Data)(nil)
)

// NewData creates a new, empty document using PDF version v.
func NewData(v Version) *Data {
	return &Data{
		meta: MetaInfo{
			Version: v,
		},
		objects: map[Reference]Object{},
	}
}

// GetMeta returns the meta information of the document.
func (d *Data) GetMeta() *MetaInfo {
	return &d.meta
}

// Alloc allocates a new object number for an indirect object.
func (d *Data) Alloc() Reference {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.alloc()
}

func (d *Data) alloc() Reference {
	for {
		d.lastRef++
		ref := NewReference(d.lastRef, 0)
		if _, ok := d.objects[ref]; !ok {
			return ref
		}
	}
}

// Get returns the indirect object ref, or nil if ref is not in use.
func (d *Data) Get(ref Reference) (Object, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.objects[ref], nil
}

// resolve follows a chain of references until a direct object is found.
func (d *Data) resolve(obj Object) (Object, error) {
	for count := 0; ; count++ {
		ref, isReference := obj.(Reference)
		if !isReference {
			return obj, nil
		}
		if count > 16 {
			return nil, &MalformedFileError{
				Err: errors.New("too many levels of indirection"),
				Loc: []string{"object " + ref.String()},
			}
		}
		obj = d.objects[ref]
	}
}

// Len returns the number of indirect objects stored in the table.
func (d *Data) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.objects)
}

// Put stores obj as the indirect object ref.
func (d *Data) Put(ref Reference, obj Object) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.put(ref, obj)
	return nil
}

func (d *Data) put(ref Reference, obj Object) {
	if obj == nil {
		delete(d.objects, ref)
	} else {
		d.objects[ref] = obj
	}
}

// OpenStream starts writing the stream object ref.
func (d *Data) OpenStream(ref Reference, dict Dict, filters ...Filter) (io.WriteCloser, error) {
	return d.openStream(ref, dict, filters, func(s *Stream) {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.put(ref, s)
	})
}

func (d *Data) openStream(ref Reference, dict Dict, filters []Filter, store func(*Stream)) (io.WriteCloser, error) {
	// Copy dict so that we don't change the caller's dict.
	streamDict := maps.Clone(dict)
	if streamDict == nil {
		streamDict = Dict{}
	}

	var w io.WriteCloser = &dataStreamWriter{
		s:     &Stream{Dict: streamDict},
		store: store,
	}
	for _, filter := range filters {
		name, parms, err := filter.Info(d.meta.Version)
		if err != nil {
			return nil, err
		}
		appendFilter(streamDict, name, parms)

		w, err = filter.Encode(d.meta.Version, w)
		if err != nil {
			return nil, err
		}
	}
	return w, nil
}

type dataStreamWriter struct {
	bytes.Buffer
	s     *Stream
	store func(*Stream)
}

func (w *dataStreamWriter) Close() error {
	w.s.R = bytes.NewReader(w.Bytes())
	w.s.Dict["Length"] = Integer(w.Len())
	w.store(w.s)
	return nil
}

// AppendAnnotation appends annot to the /Annots array of the given page.
func (d *Data) AppendAnnotation(page, annot Reference) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.appendAnnotation(page, annot, nil)
}

// appendAnnotation modifies the page dictionary in place.  If save is
// non-nil, it is called with every object reference before the object is
// changed.
func (d *Data) appendAnnotation(page, annot Reference, save func(Reference)) error {
	pageDict, ok := d.objects[page].(Dict)
	if !ok {
		return &MalformedFileError{
			Err: fmt.Errorf("expected page dictionary but got %T", d.objects[page]),
			Loc: []string{"object " + page.String()},
		}
	}

	if annotsRef, isRef := pageDict["Annots"].(Reference); isRef {
		annots, err := d.resolve(annotsRef)
		if err != nil {
			return err
		}
		a, ok := annots.(Array)
		if annots != nil && !ok {
			return &MalformedFileError{
				Err: fmt.Errorf("expected /Annots array but got %T", annots),
				Loc: []string{"object " + annotsRef.String()},
			}
		}
		if save != nil {
			save(annotsRef)
		}
		d.objects[annotsRef] = append(a[:len(a):len(a)], annot)
		return nil
	}

	a, ok := pageDict["Annots"].(Array)
	if pageDict["Annots"] != nil && !ok {
		return &MalformedFileError{
			Err: fmt.Errorf("expected /Annots array but got %T", pageDict["Annots"]),
			Loc: []string{"object " + page.String()},
		}
	}
	if save != nil {
		save(page)
	}
	pageDict = maps.Clone(pageDict)
	pageDict["Annots"] = append(a[:len(a):len(a)], annot)
	d.objects[page] = pageDict
	return nil
}

// Update implements the [Updater] interface.
func (d *Data) Update(fn func(w Putter) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	tx := &dataTx{
		d:       d,
		lastRef: d.lastRef,
		saved:   map[Reference]Object{},
	}
	err := fn(tx)
	tx.done = true
	if err != nil {
		tx.rollback()
		return err
	}
	return nil
}

// dataTx is the Putter passed to the callback of [Data.Update].
// The mutex of the underlying table is held while a dataTx is in use.
type dataTx struct {
	d       *Data
	lastRef uint32
	saved   map[Reference]Object
	done    bool
}

var errTxClosed = errors.New("object table update already finished")

func (tx *dataTx) GetMeta() *MetaInfo {
	return &tx.d.meta
}

func (tx *dataTx) Alloc() Reference {
	ref := tx.d.alloc()
	tx.save(ref)
	return ref
}

func (tx *dataTx) Put(ref Reference, obj Object) error {
	if tx.done {
		return errTxClosed
	}
	tx.save(ref)
	tx.d.put(ref, obj)
	return nil
}

func (tx *dataTx) OpenStream(ref Reference, dict Dict, filters ...Filter) (io.WriteCloser, error) {
	if tx.done {
		return nil, errTxClosed
	}
	return tx.d.openStream(ref, dict, filters, func(s *Stream) {
		if tx.done {
			return
		}
		tx.save(ref)
		tx.d.put(ref, s)
	})
}

func (tx *dataTx) AppendAnnotation(page, annot Reference) error {
	if tx.done {
		return errTxClosed
	}
	return tx.d.appendAnnotation(page, annot, tx.save)
}

// save records the state of ref before its first modification.
func (tx *dataTx) save(ref Reference) {
	if _, seen := tx.saved[ref]; seen {
		return
	}
	tx.saved[ref] = tx.d.objects[ref]
}

func (tx *dataTx) rollback() {
	for ref, obj := range tx.saved {
		tx.d.put(ref, obj)
	}
	tx.d.lastRef = tx.lastRef
}
