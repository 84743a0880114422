// Copyright ©2024 The swalign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/smithwave/swalign/fastaio"
	"github.com/smithwave/swalign/gffreport"
	"github.com/smithwave/swalign/metrics"
)

func benchCmd(args []string) {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	in := fs.String("in", "", "FASTA file; first record is the database, the rest are queries (required)")
	n := fs.Int("n", 0, "maximum number of query records to use (0 means all)")
	engine := fs.String("engine", "all", "engine to run, or \"all\"")
	gffOut := fs.String("gff", "", "write each pair's database-side span to this GFF file")
	tsvOut := fs.String("out", "", "write an engine/query/score/gcups row per pair to this TSV file")
	errFile := fs.String("err", "", "redirect the log stream to this file (default stderr)")
	cfgOf := scoreFlags(fs)
	fs.Parse(args)

	done := redirectLog(*errFile)
	defer done()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "swalign bench: -in is required")
		fs.Usage()
		os.Exit(1)
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("swalign bench: failed to open %q: %v", *in, err)
	}
	defer f.Close()

	records, err := fastaio.ReadAll(f)
	if err != nil {
		log.Fatalf("swalign bench: failed to read %q: %v", *in, err)
	}
	if len(records) < 2 {
		log.Fatalf("swalign bench: %q holds %d record(s), need a database plus at least one query", *in, len(records))
	}
	db := records[0]
	queries := records[1:]
	if *n > 0 && *n < len(queries) {
		queries = queries[:*n]
	}

	engines, err := enginesFor(*engine, cfgOf())
	if err != nil {
		log.Fatalf("swalign bench: %v", err)
	}

	var gffW *gffreport.Writer
	if *gffOut != "" {
		gf, err := os.Create(*gffOut)
		if err != nil {
			log.Fatalf("swalign bench: failed to create %q: %v", *gffOut, err)
		}
		defer gf.Close()
		gffW = gffreport.NewWriter(gf, "swalign")
	}

	var tsvW *os.File
	if *tsvOut != "" {
		tsvW, err = os.Create(*tsvOut)
		if err != nil {
			log.Fatalf("swalign bench: failed to create %q: %v", *tsvOut, err)
		}
		defer tsvW.Close()
		fmt.Fprintln(tsvW, "engine\tquery\tscore\tgcups")
	}

	for _, e := range engines {
		m := metrics.New()
		var scores []float64
		for _, q := range queries {
			start := time.Now()
			pair := e.Align(db, q, m)
			elapsed := time.Since(start)

			scores = append(scores, float64(pair.Score))

			if gffW != nil {
				if err := gffW.Write(pair, int(pair.Score)); err != nil {
					log.Fatalf("swalign bench: gff write: %v", err)
				}
			}
			if tsvW != nil {
				var gcups float64
				if secs := elapsed.Seconds(); secs > 0 {
					cellUpdates := float64(4 * (db.Len() + 1) * (q.Len() + 1))
					gcups = cellUpdates / (1e9 * secs)
				}
				fmt.Fprintf(tsvW, "%s\t%s\t%d\t%.4f\n", e.Name(), q.Name(), pair.Score, gcups)
			}
		}

		fmt.Printf("=== %s ===\n", e.Name())
		if err := m.Report(os.Stdout); err != nil {
			log.Fatalf("swalign bench: report: %v", err)
		}
		if len(scores) > 0 {
			mean, std := stat.MeanStdDev(scores, nil)
			fmt.Printf("Score mean/stddev: %.2f / %.2f (n=%d)\n", mean, std, len(scores))
		}
	}
}
