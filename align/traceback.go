// Copyright ©2024 The swalign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"github.com/smithwave/swalign/score"
	"github.com/smithwave/swalign/seq"
)

// coordOf maps a flat matrix index to its (i, j) 1-based coordinate.
// The row-major engines derive it by division; the diagonal-major
// engine looks it up in its IS/JS side tables.
type coordOf func(flat int) (i, j int)

// traceback finds the highest-scoring cell in h (ties broken by
// smallest (i, j), i.e. smallest row-major position, whatever the
// layout) and follows p's back-pointers from there until it reaches the
// restart sentinel (flat index 0) or a zero-scoring cell, producing the
// columns of the alignment in reverse order.
func traceback(database, query *seq.Sequence, h []score.Score, p []int, coord coordOf) seq.AlignedPair {
	start := argmax(h, coord)

	var dbIdx, qIdx []int
	for cur := start; cur != 0 && h[cur] > 0; cur = p[cur] {
		i, j := coord(cur)
		dbIdx = append(dbIdx, i-1)
		qIdx = append(qIdx, j-1)
	}
	reverseInts(dbIdx)
	reverseInts(qIdx)

	return seq.AlignedPair{
		Database: seq.NewAlignedSequence(database, dbIdx),
		Query:    seq.NewAlignedSequence(query, qIdx),
		Score:    int16(h[start]),
	}
}

// argmax returns the flat index of the largest value in h. If several
// cells tie for the maximum, it returns the one with the smallest i,
// then the smallest j, so that every layout picks the same cell.
func argmax(h []score.Score, coord coordOf) int {
	best := 0
	bestValue := h[0]
	bestI, bestJ := coord(0)
	for idx := 1; idx < len(h); idx++ {
		if h[idx] < bestValue {
			continue
		}
		i, j := coord(idx)
		if h[idx] > bestValue || i < bestI || (i == bestI && j < bestJ) {
			best, bestValue, bestI, bestJ = idx, h[idx], i, j
		}
	}
	return best
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
