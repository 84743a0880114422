// Copyright ©2024 The swalign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics collects cell-update counts, pair counts and elapsed
// time across however many engines and pairs a caller runs, and prints
// the standard Giga-CUPS summary.
package metrics

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Metrics is a process-local, shared-ownership collector. All methods
// are safe for concurrent use; the mutex is taken at most twice per
// aligned pair (once for the cell-update count, once for the pair
// count), never from inside an engine's fill loop.
type Metrics struct {
	mu          sync.Mutex
	start       time.Time
	cellUpdates uint64
	pairs       uint64
}

// New returns a Metrics collector with its clock started now.
func New() *Metrics {
	return &Metrics{start: time.Now()}
}

// RecordCellUpdates adds n to the running cell-update count.
func (m *Metrics) RecordCellUpdates(n uint64) {
	m.mu.Lock()
	m.cellUpdates += n
	m.mu.Unlock()
}

// RecordSequencePair records that one sequence pair has been aligned.
func (m *Metrics) RecordSequencePair() {
	m.mu.Lock()
	m.pairs++
	m.mu.Unlock()
}

// Snapshot is a point-in-time, lock-free copy of a Metrics' counters.
type Snapshot struct {
	Elapsed     time.Duration
	CellUpdates uint64
	Pairs       uint64
}

// GigaCUPS returns cell updates per second, in billions.
func (s Snapshot) GigaCUPS() float64 {
	secs := s.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.CellUpdates) / (1e9 * secs)
}

// Snapshot returns the current counters and elapsed time.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Elapsed:     time.Since(m.start),
		CellUpdates: m.cellUpdates,
		Pairs:       m.pairs,
	}
}

// Report writes the standard three-line summary to w.
func (m *Metrics) Report(w io.Writer) error {
	s := m.Snapshot()
	_, err := fmt.Fprintf(w, "Elapsed: %.2fs\nGiga-CUPS: %.2f\nPairs: %d\n",
		s.Elapsed.Seconds(), s.GigaCUPS(), s.Pairs)
	return err
}
