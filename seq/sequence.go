// Copyright ©2024 The swalign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seq defines the sequence and alignment data model shared by
// every alignment engine: a named byte sequence, an alignment's
// projection onto one sequence, and the pairing of two such
// projections.
package seq

import "strings"

// Sequence is an immutable named byte string. The alphabet is opaque:
// any byte compares equal only to itself, so the package places no
// constraint on the residue encoding.
type Sequence struct {
	name string
	raw  []byte
}

// New returns a Sequence with the given name and raw bytes. The bytes
// are not copied; callers must not mutate raw after passing it in.
func New(name string, raw []byte) *Sequence {
	return &Sequence{name: name, raw: raw}
}

// Name returns the sequence's informational name.
func (s *Sequence) Name() string { return s.name }

// Len returns the number of residues in the sequence.
func (s *Sequence) Len() int { return len(s.raw) }

// At returns the residue at the given 0-based position.
func (s *Sequence) At(i int) byte { return s.raw[i] }

// Raw returns the sequence's backing bytes. Callers must not modify
// the returned slice.
func (s *Sequence) Raw() []byte { return s.raw }

func (s *Sequence) String() string { return string(s.raw) }

// AlignedSequence is a source sequence together with an ordered list of
// 0-based positions it contributes to an alignment. A repeated index
// denotes a gap character at that column: the sequence did not advance.
type AlignedSequence struct {
	Source  *Sequence
	Indices []int
}

// NewAlignedSequence returns an AlignedSequence over source with the
// given column indices. Every index must be less than source.Len();
// callers (the engines) are responsible for this invariant.
func NewAlignedSequence(source *Sequence, indices []int) AlignedSequence {
	return AlignedSequence{Source: source, Indices: indices}
}

// Len returns the alignment's column count on this side.
func (a AlignedSequence) Len() int { return len(a.Indices) }

// String renders the aligned sequence as one character per column: the
// residue at that index, or '-' wherever the index repeats the
// previous column's (a gap).
func (a AlignedSequence) String() string {
	var b strings.Builder
	b.Grow(len(a.Indices))
	last := -1
	haveLast := false
	for _, i := range a.Indices {
		if haveLast && i == last {
			b.WriteByte('-')
		} else {
			b.WriteByte(a.Source.At(i))
		}
		last = i
		haveLast = true
	}
	return b.String()
}

// AlignedPair is a local alignment between a database sequence and a
// query sequence: two AlignedSequences of equal column count, read
// together column-by-column.
type AlignedPair struct {
	Database AlignedSequence
	Query    AlignedSequence
	// Score is the optimal local-alignment score the pair was traced
	// back from; 0 for the empty alignment.
	Score int16
}

// Len returns the alignment's column count, equal for both sides.
func (p AlignedPair) Len() int { return p.Database.Len() }

// Display renders the pair as the two-line "D: …" / "Q: …" form.
func (p AlignedPair) Display() string {
	var b strings.Builder
	b.WriteString("D: ")
	b.WriteString(p.Database.String())
	b.WriteByte('\n')
	b.WriteString("Q: ")
	b.WriteString(p.Query.String())
	return b.String()
}
