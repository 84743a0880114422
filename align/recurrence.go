// Copyright ©2024 The swalign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"github.com/smithwave/swalign/score"
	"github.com/smithwave/swalign/seq"
	"github.com/smithwave/swalign/swbuf"
)

// matrices bundles the four scratch matrices shared by every engine:
// best score ending at a cell (h), best score ending in a query gap
// (e), best score ending in a database gap (f), and the back-pointer
// to the cell that produced h's value (p).
type matrices struct {
	h swbuf.Buffer[score.Score]
	e swbuf.Buffer[score.Score]
	f swbuf.Buffer[score.Score]
	p swbuf.Buffer[int]
}

func newMatrices(size int) matrices {
	return matrices{
		h: swbuf.New(make([]score.Score, size)),
		e: swbuf.New(make([]score.Score, size)),
		f: swbuf.New(make([]score.Score, size)),
		p: swbuf.New(make([]int, size)),
	}
}

// fillCell applies the recurrence of spec §3 to one cell, given the
// flat indices of its three dependency neighbors and the (i, j)
// 1-based coordinate the cell corresponds to. It is the one piece of
// arithmetic shared verbatim by all three engines; what differs
// between them is only how here/above/left/aboveLeft are derived from
// (i, j) by their respective matrix layouts.
//
// Ties among the four alternatives are broken in the fixed order
// restart (0) -> diagonal -> left (E, query gap) -> above (F, database
// gap): values is built in that order and only a strictly greater
// candidate replaces the running best.
func fillCell(cfg score.Config, db, query *seq.Sequence, m matrices, here, above, left, aboveLeft, i, j int) {
	m.e.Write(here, max(m.e.Read(left)-cfg.GapExt, m.h.Read(left)-cfg.GapInit))
	m.f.Write(here, max(m.f.Read(above)-cfg.GapExt, m.h.Read(above)-cfg.GapInit))

	w := cfg.Weight(db.At(i-1), query.At(j-1))
	origins := [4]int{0, aboveLeft, left, above}
	values := [4]score.Score{0, m.h.Read(aboveLeft) + w, m.e.Read(here), m.f.Read(here)}

	bestOrigin, bestValue := origins[0], values[0]
	for k := 1; k < len(values); k++ {
		if values[k] > bestValue {
			bestValue = values[k]
			bestOrigin = origins[k]
		}
	}
	m.h.Write(here, bestValue)
	m.p.Write(here, bestOrigin)
}
