// Copyright ©2024 The swalign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"math/rand"
	"testing"

	"github.com/smithwave/swalign/metrics"
	"github.com/smithwave/swalign/score"
	"github.com/smithwave/swalign/seq"
)

func allEngines() []Engine {
	return All(score.Default)
}

func runAll(t *testing.T, db, query *seq.Sequence) map[string]seq.AlignedPair {
	t.Helper()
	out := make(map[string]seq.AlignedPair)
	for _, e := range allEngines() {
		m := metrics.New()
		out[e.Name()] = e.Align(db, query, m)
	}
	return out
}

// TestOracleEquivalence checks spec property 1: every engine produces
// the same alignment (same rendered D/Q strings) as the serial oracle,
// across a spread of random sequence pairs.
func TestOracleEquivalence(t *testing.T) {
	alphabet := []byte("ACGT")
	rng := rand.New(rand.NewSource(1))
	randSeq := func(name string, n int) *seq.Sequence {
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return seq.New(name, b)
	}

	for trial := 0; trial < 30; trial++ {
		n := rng.Intn(20) + 1
		m := rng.Intn(20) + 1
		db := randSeq("db", n)
		q := randSeq("q", m)

		results := runAll(t, db, q)
		oracle := results["Serial (row-major)"]
		for name, pair := range results {
			if pair.Display() != oracle.Display() {
				t.Errorf("trial %d (db=%q, q=%q): engine %s = %q, want %q",
					trial, db.String(), q.String(), name, pair.Display(), oracle.Display())
			}
			if pair.Score != oracle.Score {
				t.Errorf("trial %d (db=%q, q=%q): engine %s Score = %d, want %d",
					trial, db.String(), q.String(), name, pair.Score, oracle.Score)
			}
		}
	}
}

// TestS1KnownAlignment checks the worked example of spec §8, scenario
// S1: a specific pair with a known optimal score and traceback.
func TestS1KnownAlignment(t *testing.T) {
	db := seq.New("db", []byte("TGTTACGG"))
	q := seq.New("q", []byte("GGTTGACTA"))

	for _, e := range allEngines() {
		m := metrics.New()
		pair := e.Align(db, q, m)
		if got, want := pair.Database.String(), "GTT-AC"; got != want {
			t.Errorf("%s: database side = %q, want %q", e.Name(), got, want)
		}
		if got, want := pair.Query.String(), "GTTGAC"; got != want {
			t.Errorf("%s: query side = %q, want %q", e.Name(), got, want)
		}
		if pair.Score != 13 {
			t.Errorf("%s: Score = %d, want 13", e.Name(), pair.Score)
		}
	}
}

// TestS3NoPositiveScore checks scenario S3: when every substitution is
// a mismatch and no positive-score cell exists, the result is the
// empty alignment on both sides.
func TestS3NoPositiveScore(t *testing.T) {
	db := seq.New("db", []byte("AAAA"))
	q := seq.New("q", []byte("CCCC"))

	for _, e := range allEngines() {
		m := metrics.New()
		pair := e.Align(db, q, m)
		if pair.Database.Len() != 0 || pair.Query.Len() != 0 {
			t.Errorf("%s: got non-empty alignment %q/%q, want empty",
				e.Name(), pair.Database.String(), pair.Query.String())
		}
	}
}

// TestS2RepeatedMatch checks the worked example of spec §8, scenario
// S2: two identical runs of the same base align fully, end to end.
func TestS2RepeatedMatch(t *testing.T) {
	db := seq.New("db", []byte("AAAA"))
	q := seq.New("q", []byte("AAAA"))

	for _, e := range allEngines() {
		m := metrics.New()
		pair := e.Align(db, q, m)
		if got, want := pair.Database.String(), "AAAA"; got != want {
			t.Errorf("%s: database side = %q, want %q", e.Name(), got, want)
		}
		if got, want := pair.Query.String(), "AAAA"; got != want {
			t.Errorf("%s: query side = %q, want %q", e.Name(), got, want)
		}
		if pair.Score != 12 {
			t.Errorf("%s: Score = %d, want 12", e.Name(), pair.Score)
		}
	}
}

// TestS4ShortQuery checks the worked example of spec §8, scenario S4:
// a single-residue query matches its one occurrence in the database
// and nothing more.
func TestS4ShortQuery(t *testing.T) {
	db := seq.New("db", []byte("ACGT"))
	q := seq.New("q", []byte("A"))

	for _, e := range allEngines() {
		m := metrics.New()
		pair := e.Align(db, q, m)
		if got, want := pair.Database.String(), "A"; got != want {
			t.Errorf("%s: database side = %q, want %q", e.Name(), got, want)
		}
		if got, want := pair.Query.String(), "A"; got != want {
			t.Errorf("%s: query side = %q, want %q", e.Name(), got, want)
		}
		if pair.Score != 3 {
			t.Errorf("%s: Score = %d, want 3", e.Name(), pair.Score)
		}
	}
}

// TestS5WorkedExample checks the worked example of spec §8, scenario
// S5: a pair with both mismatches and a gap, known optimal score 6.
func TestS5WorkedExample(t *testing.T) {
	db := seq.New("db", []byte("GATTACA"))
	q := seq.New("q", []byte("GCATGCU"))

	for _, e := range allEngines() {
		m := metrics.New()
		pair := e.Align(db, q, m)
		if pair.Score != 6 {
			t.Errorf("%s: Score = %d, want 6", e.Name(), pair.Score)
		}
	}
}

// TestS6EmptyQuery checks scenario S6: an empty query sequence yields
// the empty alignment, not an error.
func TestS6EmptyQuery(t *testing.T) {
	db := seq.New("db", []byte("ACGTACGT"))
	q := seq.New("q", nil)

	for _, e := range allEngines() {
		m := metrics.New()
		pair := e.Align(db, q, m)
		if pair.Len() != 0 {
			t.Errorf("%s: Len() = %d, want 0", e.Name(), pair.Len())
		}
	}
}

// TestEmptyDatabase mirrors TestS6EmptyQuery on the other side: an
// empty database sequence is equally not an error.
func TestEmptyDatabase(t *testing.T) {
	db := seq.New("db", nil)
	q := seq.New("q", []byte("ACGT"))

	for _, e := range allEngines() {
		m := metrics.New()
		pair := e.Align(db, q, m)
		if pair.Len() != 0 {
			t.Errorf("%s: Len() = %d, want 0", e.Name(), pair.Len())
		}
	}
}

// TestBothEmpty checks the degenerate case of two empty sequences.
func TestBothEmpty(t *testing.T) {
	db := seq.New("db", nil)
	q := seq.New("q", nil)
	for _, e := range allEngines() {
		m := metrics.New()
		pair := e.Align(db, q, m)
		if pair.Len() != 0 {
			t.Errorf("%s: Len() = %d, want 0", e.Name(), pair.Len())
		}
	}
}

// TestIndexBounds checks spec property 3: every index an engine emits
// into an AlignedSequence is within [0, source.Len()).
func TestIndexBounds(t *testing.T) {
	db := seq.New("db", []byte("GATTACAGATTACA"))
	q := seq.New("q", []byte("GATTCAGATCA"))

	for _, e := range allEngines() {
		m := metrics.New()
		pair := e.Align(db, q, m)
		for _, i := range pair.Database.Indices {
			if i < 0 || i >= db.Len() {
				t.Errorf("%s: database index %d out of [0,%d)", e.Name(), i, db.Len())
			}
		}
		for _, j := range pair.Query.Indices {
			if j < 0 || j >= q.Len() {
				t.Errorf("%s: query index %d out of [0,%d)", e.Name(), j, q.Len())
			}
		}
		if pair.Database.Len() != pair.Query.Len() {
			t.Errorf("%s: database/query column counts differ: %d vs %d",
				e.Name(), pair.Database.Len(), pair.Query.Len())
		}
	}
}

// TestDeterminism checks spec property 5: repeated runs of the same
// engine over the same inputs produce byte-identical results, despite
// the wavefront engines' internal concurrency.
func TestDeterminism(t *testing.T) {
	db := seq.New("db", []byte("TGCATGCATGCATGACGTGCATGC"))
	q := seq.New("q", []byte("TGCATGACGTGCATGCTGACGTGC"))

	for _, e := range allEngines() {
		var first string
		for run := 0; run < 5; run++ {
			m := metrics.New()
			pair := e.Align(db, q, m)
			got := pair.Display()
			if run == 0 {
				first = got
				continue
			}
			if got != first {
				t.Errorf("%s: run %d differs from run 0:\n%s\nvs\n%s", e.Name(), run, got, first)
			}
		}
	}
}

// TestMetricsArithmetic checks spec property 6: one Align call records
// exactly one pair and 4*(n+1)*(m+1) cell updates (H, E, F and P are
// each written once per interior cell, and the count covers the full
// allocated matrix rather than just the interior as a conservative
// upper bound consistent across engines).
func TestMetricsArithmetic(t *testing.T) {
	db := seq.New("db", []byte("ACGTACGTAC"))
	q := seq.New("q", []byte("ACGTACGT"))
	want := uint64(4 * (db.Len() + 1) * (q.Len() + 1))

	for _, e := range allEngines() {
		m := metrics.New()
		e.Align(db, q, m)
		snap := m.Snapshot()
		if snap.CellUpdates != want {
			t.Errorf("%s: CellUpdates = %d, want %d", e.Name(), snap.CellUpdates, want)
		}
		if snap.Pairs != 1 {
			t.Errorf("%s: Pairs = %d, want 1", e.Name(), snap.Pairs)
		}
	}
}

// TestSingleResidueMatch exercises the smallest nontrivial case: one
// matching residue on each side scores exactly Match and aligns them.
func TestSingleResidueMatch(t *testing.T) {
	db := seq.New("db", []byte("A"))
	q := seq.New("q", []byte("A"))
	for _, e := range allEngines() {
		m := metrics.New()
		pair := e.Align(db, q, m)
		if pair.Database.String() != "A" || pair.Query.String() != "A" {
			t.Errorf("%s: got %q/%q, want A/A", e.Name(), pair.Database.String(), pair.Query.String())
		}
	}
}

// TestRecurrenceInvariant checks spec property 4 directly: at every
// cell, H equals max(0, diag+w, E, F), where E and F are themselves
// computed from their own recurrences over H's left/above neighbors —
// not merely inferred from matching whole alignments, as the other
// tests in this file do.
func TestRecurrenceInvariant(t *testing.T) {
	cfg := score.Default
	db := seq.New("db", []byte("GATTACA"))
	q := seq.New("q", []byte("GCATGCU"))
	n, m := db.Len(), q.Len()
	width := m + 1
	size := (n + 1) * width

	mats := newMatrices(size)
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			here := i*width + j
			above := (i-1)*width + j
			left := i*width + j - 1
			aboveLeft := (i-1)*width + j - 1
			fillCell(cfg, db, q, mats, here, above, left, aboveLeft, i, j)

			wantE := max(mats.e.Read(left)-cfg.GapExt, mats.h.Read(left)-cfg.GapInit)
			wantF := max(mats.f.Read(above)-cfg.GapExt, mats.h.Read(above)-cfg.GapInit)
			if got := mats.e.Read(here); got != wantE {
				t.Fatalf("cell (%d,%d): E = %d, want %d (left E/H recurrence)", i, j, got, wantE)
			}
			if got := mats.f.Read(here); got != wantF {
				t.Fatalf("cell (%d,%d): F = %d, want %d (above F/H recurrence)", i, j, got, wantF)
			}

			w := cfg.Weight(db.At(i-1), q.At(j-1))
			wantH := max(0, max(mats.h.Read(aboveLeft)+w, max(wantE, wantF)))
			if got := mats.h.Read(here); got != wantH {
				t.Fatalf("cell (%d,%d): H = %d, want max(0, diag+w, E, F) = %d", i, j, got, wantH)
			}
		}
	}
}
