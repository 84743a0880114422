// Copyright ©2024 The swalign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"github.com/smithwave/swalign/internal/workers"
	"github.com/smithwave/swalign/metrics"
	"github.com/smithwave/swalign/score"
	"github.com/smithwave/swalign/seq"
)

// RowMajorEngine fills the same row-major matrices as SerialEngine, but
// processes each antidiagonal's cells in parallel: cell (i, j) depends
// only on (i-1, j-1), (i-1, j) and (i, j-1), all on antidiagonal k-1 or
// k-2, so every cell with i+j=k is independent of every other cell on
// k. workers.Range's join is the barrier that makes writes on k visible
// before any read from k+1 begins.
type RowMajorEngine struct {
	cfg score.Config
}

// NewRowMajorEngine returns a RowMajorEngine scored by cfg.
func NewRowMajorEngine(cfg score.Config) *RowMajorEngine {
	return &RowMajorEngine{cfg: cfg}
}

func (e *RowMajorEngine) Name() string { return "Wavefront (row-major)" }

func (e *RowMajorEngine) Align(database, query *seq.Sequence, met *metrics.Metrics) seq.AlignedPair {
	n, m := database.Len(), query.Len()
	width := m + 1
	size := (n + 1) * width

	mats := newMatrices(size)

	for k := 2; k <= n+m; k++ {
		lower := max(1, k-n)
		upper := min(m, k-1) // inclusive
		if lower > upper {
			continue
		}
		workers.Range(lower, upper+1, 0, func(j int) {
			i := k - j
			here := i*width + j
			above := (i-1)*width + j
			left := i*width + j - 1
			aboveLeft := (i-1)*width + j - 1
			fillCell(e.cfg, database, query, mats, here, above, left, aboveLeft, i, j)
		})
	}

	met.RecordCellUpdates(uint64(4 * size))
	pair := traceback(database, query, mats.h.Slice(), mats.p.Slice(), func(flat int) (int, int) {
		return flat / width, flat % width
	})
	met.RecordSequencePair()
	return pair
}
