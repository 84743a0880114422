// Copyright ©2024 The swalign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/smithwave/swalign/metrics"
	"github.com/smithwave/swalign/seq"
)

func runCmd(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	db := fs.String("db", "", "inline database sequence (required)")
	query := fs.String("query", "", "inline query sequence (required)")
	engine := fs.String("engine", "Wavefront (row-major)", "engine to run (see -engine=list)")
	errFile := fs.String("err", "", "redirect the log stream to this file (default stderr)")
	cfgOf := scoreFlags(fs)
	fs.Parse(args)

	done := redirectLog(*errFile)
	defer done()

	if *db == "" || *query == "" {
		fmt.Fprintln(os.Stderr, "swalign run: -db and -query are both required")
		fs.Usage()
		os.Exit(1)
	}

	engines, err := enginesFor(*engine, cfgOf())
	if err != nil {
		log.Fatalf("swalign run: %v", err)
	}

	dbSeq := seq.New("db", []byte(*db))
	querySeq := seq.New("query", []byte(*query))

	m := metrics.New()
	pair := engines[0].Align(dbSeq, querySeq, m)
	fmt.Println(pair.Display())
}
