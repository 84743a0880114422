// Copyright ©2024 The swalign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"github.com/smithwave/swalign/internal/workers"
	"github.com/smithwave/swalign/metrics"
	"github.com/smithwave/swalign/score"
	"github.com/smithwave/swalign/seq"
	"github.com/smithwave/swalign/swbuf"
)

// DiagonalMajorEngine computes the same recurrence as RowMajorEngine,
// but every matrix is a single flat buffer in which the cells of one
// antidiagonal occupy a contiguous run: antidiagonal 0's cell, then
// antidiagonal 1's cells, then antidiagonal 2's, and so on. That
// layout is friendlier to cache hierarchies and to a GPU work-item
// mapping (one contiguous range per kernel launch) than row-major
// storage, at the cost of re-deriving each cell's neighbor offsets
// instead of reading them off a fixed row width.
//
// Two side tables, is and js, record the original (i, j) coordinate
// each flat position holds, so that traceback - which only ever sees
// flat indices via p - can still recover sequence positions.
type DiagonalMajorEngine struct {
	cfg score.Config
}

// NewDiagonalMajorEngine returns a DiagonalMajorEngine scored by cfg.
func NewDiagonalMajorEngine(cfg score.Config) *DiagonalMajorEngine {
	return &DiagonalMajorEngine{cfg: cfg}
}

func (e *DiagonalMajorEngine) Name() string { return "Wavefront (diagonal-major)" }

// outerSize returns the number of cells (i, j) with i+j=k, 0<=i<=n,
// 0<=j<=m: the full width of antidiagonal k including whichever border
// cells (i=0 or j=0) it still touches.
func outerSize(k, n, m int) int {
	lo := max(0, k-n)
	hi := min(m, k) // inclusive
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

func (e *DiagonalMajorEngine) Align(database, query *seq.Sequence, met *metrics.Metrics) seq.AlignedPair {
	n, m := database.Len(), query.Len()
	size := (n + 1) * (m + 1)

	mats := newMatrices(size)
	is := swbuf.New(make([]int, size))
	js := swbuf.New(make([]int, size))

	// previousOuterSize/previousOuterLower describe antidiagonal k-1,
	// previousPreviousSize describes k-2's size, updated at the end of
	// every loop iteration so that at the top of iteration k they
	// already refer to the right diagonals.
	var (
		offset               int
		previousOuterSize    int
		previousPreviousSize int
		previousOuterLower   int
	)

	for k := 0; k <= n+m; k++ {
		outerLower := max(0, k-n)
		outerSz := outerSize(k, n, m)

		if k >= 2 {
			innerLower := max(1, k-n)
			innerUpper := min(m, k-1) // inclusive
			if innerUpper >= innerLower {
				padding := innerLower - outerLower
				delta1, delta2 := 0, 0
				if outerLower > 0 {
					delta1 = 1
				}
				if previousOuterLower > 0 {
					delta2 = 1
				}

				workers.Range(innerLower, innerUpper+1, 0, func(j int) {
					i := k - j
					here := offset + padding + (j - innerLower)
					above := here - previousOuterSize + delta1
					left := above - 1
					aboveLeft := left - previousPreviousSize + delta2

					is.Write(here, i)
					js.Write(here, j)
					fillCell(e.cfg, database, query, mats, here, above, left, aboveLeft, i, j)
				})
			}
		}

		previousPreviousSize = previousOuterSize
		previousOuterSize, previousOuterLower = outerSz, outerLower
		offset += outerSz
	}

	met.RecordCellUpdates(uint64(4 * size))
	pair := traceback(database, query, mats.h.Slice(), mats.p.Slice(), func(flat int) (int, int) {
		return is.Read(flat), js.Read(flat)
	})
	met.RecordSequencePair()
	return pair
}
