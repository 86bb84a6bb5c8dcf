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
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/annotate/annotation"
	"seehuhn.de/go/annotate/annotation/appearance"
	"seehuhn.de/go/annotate/graphics/form"
	"seehuhn.de/go/annotate/graphics/image"
	"seehuhn.de/go/annotate/pdf"
	"seehuhn.de/go/annotate/scene"
	"seehuhn.de/go/annotate/viewport"
)

// Synthesizer converts annotation records into PDF annotations.
// A Synthesizer is safe for concurrent use.
type Synthesizer struct {
	opts Options
}

// New returns a Synthesizer which uses the given options.
// If opts is nil, the default options are used.
func New(opts *Options) *Synthesizer {
	return &Synthesizer{opts: opts.withDefaults()}
}

// prepared holds everything needed to write one record to the document.
// No document objects have been allocated at this stage.
type prepared struct {
	rec     *Record
	root    annotation.Annotation
	stamp   *image.Image
	replies []*annotation.Text
}

// Synthesize converts rec into a root annotation and one reply per comment,
// adds all of them to the given page, and returns the reference of the root
// annotation.
//
// If an error is returned, the document is left unchanged.
func (s *Synthesizer) Synthesize(doc pdf.Updater, page *viewport.Page, rec *Record) (pdf.Reference, error) {
	p, err := s.prepare(page, rec)
	if err != nil {
		return 0, err
	}
	return s.commit(doc, page, p)
}

// SynthesizeAll converts several records for the same page.  Records are
// prepared concurrently, using up to [Options.Workers] goroutines, and are
// then written to the document in the given order.
//
// The returned slice has one entry per record.  Records which could not be
// converted have a zero reference, and the returned error joins the
// errors for all of them.
func (s *Synthesizer) SynthesizeAll(doc pdf.Updater, page *viewport.Page, recs []*Record) ([]pdf.Reference, error) {
	preps := make([]*prepared, len(recs))
	errs := make([]error, len(recs))

	sem := make(chan struct{}, s.opts.Workers)
	var wg sync.WaitGroup
	for i, rec := range recs {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer func() {
				<-sem
				wg.Done()
			}()
			preps[i], errs[i] = s.prepare(page, rec)
		}()
	}
	wg.Wait()

	refs := make([]pdf.Reference, len(recs))
	for i, p := range preps {
		if errs[i] != nil {
			continue
		}
		refs[i], errs[i] = s.commit(doc, page, p)
	}
	return refs, errors.Join(errs...)
}

// prepare converts the record into annotation objects.  It does not touch
// the document.
func (s *Synthesizer) prepare(page *viewport.Page, rec *Record) (*prepared, error) {
	if rec == nil {
		return nil, errors.New("missing annotation record")
	}
	p := &prepared{rec: rec}

	var err error
	switch rec.Kind {
	case KindInk:
		p.root, err = s.ink(page, rec, false)
	case KindPolyline:
		p.root, err = s.ink(page, rec, true)
	case KindUnderline:
		p.root, err = s.underline(page, rec)
	case KindStamp:
		p.root, p.stamp, err = s.stamp(page, rec)
	default:
		err = ErrUnknownKind
	}
	if err != nil {
		return nil, &Error{ID: rec.ID, Kind: rec.Kind, Err: err}
	}

	p.replies = s.replies(page, rec, p.root.GetCommon())
	return p, nil
}

// commit writes the prepared objects to the document.
func (s *Synthesizer) commit(doc pdf.Updater, page *viewport.Page, p *prepared) (pdf.Reference, error) {
	var rootRef pdf.Reference
	err := doc.Update(func(w pdf.Putter) error {
		if p.stamp != nil {
			if err := s.embedStamp(w, page, p); err != nil {
				return err
			}
		}

		ref, err := register(w, page, p.root)
		if err != nil {
			return err
		}
		err = threadReplies(w, page, ref, p.replies)
		if err != nil {
			return err
		}
		rootRef = ref
		return nil
	})
	if err != nil {
		return 0, &Error{ID: p.rec.ID, Kind: p.rec.Kind, Err: err}
	}

	s.opts.logger().Debug("annotation added",
		slog.String("id", p.rec.ID),
		slog.String("kind", string(p.rec.Kind)),
		slog.String("ref", rootRef.String()),
		slog.Int("replies", len(p.replies)))
	return rootRef, nil
}

// register stores an annotation as a new indirect object and adds it to
// the page.
func register(w pdf.Putter, page *viewport.Page, a annotation.Annotation) (pdf.Reference, error) {
	dict, err := a.Encode(w)
	if err != nil {
		return 0, err
	}
	ref := w.Alloc()
	err = w.Put(ref, dict)
	if err != nil {
		return 0, err
	}
	err = w.AppendAnnotation(page.Ref, ref)
	if err != nil {
		return 0, err
	}
	return ref, nil
}

// embedStamp writes the stamp image and its appearance stream.
func (s *Synthesizer) embedStamp(w pdf.Putter, page *viewport.Page, p *prepared) error {
	common := p.root.GetCommon()
	width := common.Rect.URx - common.Rect.LLx
	height := common.Rect.URy - common.Rect.LLy
	if width <= 0 || height <= 0 {
		s.opts.logger().Warn("stamp without area, appearance stream omitted",
			slog.String("id", p.rec.ID))
		return nil
	}

	imgRef, err := p.stamp.Embed(w)
	if err != nil {
		return fmt.Errorf("stamp image: %w", err)
	}
	f, body := form.NewImage(imgRef, page.Rotation, width, height)
	formRef, err := f.Embed(w, body)
	if err != nil {
		return fmt.Errorf("stamp appearance: %w", err)
	}
	common.Appearance = &appearance.Dict{Normal: formRef}
	return nil
}

// annotationRect returns the /Rect of the root annotation.  The client
// rectangle of the record is used if present, otherwise the bounding box
// of the geometry, enlarged by pad on all sides.
func annotationRect(page *viewport.Page, rec *Record, bbox rect.Rect, pad float64) rect.Rect {
	if !rec.ClientRect.IsZero() {
		cr := rec.ClientRect
		return page.RectToDocument(viewport.GroupTransform{}, cr.X, cr.Y, cr.Width, cr.Height)
	}
	return rect.Rect{
		LLx: bbox.LLx - pad,
		LLy: bbox.LLy - pad,
		URx: bbox.URx + pad,
		URy: bbox.URy + pad,
	}
}

func (s *Synthesizer) parseScene(rec *Record) (*scene.Group, error) {
	return scene.Parser{Logger: s.opts.logger()}.Parse([]byte(rec.Scene))
}
