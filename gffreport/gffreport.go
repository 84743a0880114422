// Copyright ©2024 The swalign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gffreport writes the database-side span of each aligned pair
// from a bench run as a GFF feature, the same way loopy.go and
// cmd/press/press.go hand candidate events to gff.Writer for
// downstream tools to consume.
package gffreport

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/io/featio/gff"
	bioseq "github.com/biogo/biogo/seq"

	"github.com/smithwave/swalign/seq"
)

// Writer wraps a gff.Writer, translating AlignedPairs into features.
type Writer struct {
	w      *gff.Writer
	source string
}

// NewWriter returns a Writer that emits GFF2 records tagged with
// source (conventionally the program name) to w, wrapping one
// gff.NewWriter(w, 60, false) the way cmd/press/press.go configures
// its own.
func NewWriter(w io.Writer, source string) *Writer {
	return &Writer{w: gff.NewWriter(w, 60, false), source: source}
}

// Write emits one feature spanning the database indices pair touches,
// labelled with the query's name and alignment score.
func (g *Writer) Write(pair seq.AlignedPair, score int) error {
	if pair.Database.Len() == 0 {
		return nil
	}
	start, end := spanOf(pair.Database.Indices)
	sc := float64(score)
	_, err := g.w.Write(&gff.Feature{
		SeqName:    pair.Database.Source.Name(),
		Source:     g.source,
		Feature:    "local_alignment",
		FeatStart:  start,
		FeatEnd:    end,
		FeatScore:  &sc,
		FeatFrame:  gff.NoFrame,
		FeatStrand: bioseq.Plus,
		FeatAttributes: gff.Attributes{{
			Tag:   "Query",
			Value: fmt.Sprintf("%s %d %d", pair.Query.Source.Name(), spanFirst(pair.Query.Indices), spanLast(pair.Query.Indices)+1),
		}},
	})
	return err
}

// spanOf returns the half-open [start, end) database span covered by
// a traceback's index list: its minimum and one past its maximum,
// since consecutive gap columns repeat an index rather than advancing it.
func spanOf(indices []int) (start, end int) {
	if len(indices) == 0 {
		return 0, 0
	}
	return spanFirst(indices), spanLast(indices) + 1
}

func spanFirst(indices []int) int {
	if len(indices) == 0 {
		return 0
	}
	return indices[0]
}

func spanLast(indices []int) int {
	if len(indices) == 0 {
		return 0
	}
	return indices[len(indices)-1]
}
