// Copyright ©2024 The swalign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"github.com/smithwave/swalign/metrics"
	"github.com/smithwave/swalign/score"
	"github.com/smithwave/swalign/seq"
)

// SerialEngine fills H, E, F and P in plain row-major order, one cell
// at a time. It is the correctness oracle every other engine is
// expected to match.
type SerialEngine struct {
	cfg score.Config
}

// NewSerialEngine returns a SerialEngine scored by cfg.
func NewSerialEngine(cfg score.Config) *SerialEngine {
	return &SerialEngine{cfg: cfg}
}

func (e *SerialEngine) Name() string { return "Serial (row-major)" }

func (e *SerialEngine) Align(database, query *seq.Sequence, met *metrics.Metrics) seq.AlignedPair {
	n, m := database.Len(), query.Len()
	width := m + 1
	size := (n + 1) * width

	mats := newMatrices(size)

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			here := i*width + j
			above := (i-1)*width + j
			left := i*width + j - 1
			aboveLeft := (i-1)*width + j - 1
			fillCell(e.cfg, database, query, mats, here, above, left, aboveLeft, i, j)
		}
	}

	met.RecordCellUpdates(uint64(4 * size))
	pair := traceback(database, query, mats.h.Slice(), mats.p.Slice(), func(flat int) (int, int) {
		return flat / width, flat % width
	})
	met.RecordSequencePair()
	return pair
}
