// Copyright ©2024 The swalign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package score holds the three scoring constants of the affine-gap
// Smith-Waterman recurrence and the substitution function derived from
// them.
package score

// Score is a cell value of the dynamic-programming matrices. It is
// never negative at rest (the recurrence floors at zero) and is bounded
// above by math.MaxInt16, per spec.
type Score = int16

// Config holds the match reward and affine gap-open/extend penalties.
// All three are process-wide in the original but are plumbed explicitly
// here so engines stay pure functions of their inputs.
type Config struct {
	Match   Score // reward for a matching base pair
	GapInit Score // penalty for opening a gap
	GapExt  Score // penalty for extending an already-open gap
}

// Default holds the reference implementation's defaults: W=3, G_INIT=2,
// G_EXT=2.
var Default = Config{Match: 3, GapInit: 2, GapExt: 2}

// Weight returns +Match if a and b are equal, -Match otherwise.
func (c Config) Weight(a, b byte) Score {
	if a == b {
		return c.Match
	}
	return -c.Match
}
