// Copyright ©2024 The swalign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/smithwave/swalign/fastaio"
)

// fastaInfoCmd prints a name and length for every record of a FASTA
// file, the Go counterpart of the Rust original's "Got {name} of
// length {n}" diagnostic loop.
func fastaInfoCmd(args []string) {
	fs := flag.NewFlagSet("fasta-info", flag.ExitOnError)
	in := fs.String("in", "", "FASTA file to inspect (required)")
	errFile := fs.String("err", "", "redirect the log stream to this file (default stderr)")
	fs.Parse(args)

	done := redirectLog(*errFile)
	defer done()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "swalign fasta-info: -in is required")
		fs.Usage()
		os.Exit(1)
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("swalign fasta-info: failed to open %q: %v", *in, err)
	}
	defer f.Close()

	records, err := fastaio.ReadAll(f)
	if err != nil {
		log.Fatalf("swalign fasta-info: failed to read %q: %v", *in, err)
	}
	for _, s := range records {
		fmt.Printf("Got %s of length %d\n", s.Name(), s.Len())
	}
}
