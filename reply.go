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
	"strconv"

	"seehuhn.de/go/annotate/annotation"
	"seehuhn.de/go/annotate/pdf"
	"seehuhn.de/go/annotate/viewport"
)

// replies converts the comments of a record into text annotations.  The
// replies share the rectangle and colour of the root annotation.  The
// /IRT entries are filled in by [threadReplies], once the root annotation
// has been assigned a reference.
func (s *Synthesizer) replies(page *viewport.Page, rec *Record, root *annotation.Common) []*annotation.Text {
	if len(rec.Comments) == 0 {
		return nil
	}
	res := make([]*annotation.Text, len(rec.Comments))
	for i, c := range rec.Comments {
		name := c.ID
		if name == "" {
			name = rec.ID + "-reply-" + strconv.Itoa(i+1)
		}
		reply := &annotation.Text{
			Common: annotation.Common{
				Rect:         root.Rect,
				Contents:     c.Content,
				Page:         page.Ref,
				Name:         name,
				LastModified: s.date(c.Date),
				Flags:        annotation.FlagPrint,
				Color:        root.Color,
				Lang:         s.opts.Lang,
			},
			Markup: s.markup(c.Title),
			Open:   false,
		}
		reply.ReplyType = "R"
		res[i] = reply
	}
	return res
}

// threadReplies adds the replies to the page, in order, each one
// referring to the root annotation.
func threadReplies(w pdf.Putter, page *viewport.Page, root pdf.Reference, replies []*annotation.Text) error {
	for _, reply := range replies {
		reply.InReplyTo = root
		_, err := register(w, page, reply)
		if err != nil {
			return err
		}
	}
	return nil
}
