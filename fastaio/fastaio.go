// Copyright ©2024 The swalign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fastaio reads database and query sequences from FASTA files
// for the swalign command, adapting github.com/evolbioinf/fasta's
// scanner into the package seq data model.
package fastaio

import (
	"fmt"
	"io"

	"github.com/evolbioinf/fasta"

	"github.com/smithwave/swalign/seq"
)

// ReadAll scans every record in r and returns it as a Sequence, in
// file order. An empty file yields an empty, non-nil slice.
func ReadAll(r io.Reader) ([]*seq.Sequence, error) {
	sc := fasta.NewScanner(r)
	seqs := make([]*seq.Sequence, 0)
	for sc.ScanSequence() {
		s := sc.Sequence()
		seqs = append(seqs, seq.New(s.Header(), s.Data()))
	}
	return seqs, nil
}

// ReadOne scans the first record in r. It returns an error if r holds
// no record at all.
func ReadOne(r io.Reader) (*seq.Sequence, error) {
	sc := fasta.NewScanner(r)
	if !sc.ScanSequence() {
		return nil, fmt.Errorf("fastaio: no sequence found")
	}
	s := sc.Sequence()
	return seq.New(s.Header(), s.Data()), nil
}
