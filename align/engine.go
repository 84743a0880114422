// Copyright ©2024 The swalign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package align implements the Smith-Waterman affine-gap local
// alignment recurrence behind three interchangeable engines: a serial
// row-major reference, a parallel row-major wavefront, and a parallel
// diagonal-major wavefront. All three compute the same AlignedPair
// from the same inputs.
package align

import (
	"github.com/smithwave/swalign/metrics"
	"github.com/smithwave/swalign/score"
	"github.com/smithwave/swalign/seq"
)

// Engine computes the local alignment of a database and a query
// sequence, recording cell-update and pair counts into metrics as a
// side effect.
type Engine interface {
	// Name returns a human-readable identifier for the engine.
	Name() string
	// Align returns the optimal local alignment between database and
	// query. Either sequence may be empty, in which case the result is
	// the empty alignment; this is not an error.
	Align(database, query *seq.Sequence, m *metrics.Metrics) seq.AlignedPair
}

// All returns one instance of each of the three engines, configured
// with cfg. This is the set a correctness or throughput harness
// (outside this package's scope, see spec §6) runs side by side.
func All(cfg score.Config) []Engine {
	return []Engine{
		NewSerialEngine(cfg),
		NewRowMajorEngine(cfg),
		NewDiagonalMajorEngine(cfg),
	}
}
