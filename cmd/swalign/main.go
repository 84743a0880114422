// Copyright ©2024 The swalign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// swalign performs Smith-Waterman affine-gap local alignment.
//
// Usage:
//
//	swalign <command> [options]
//
// Commands:
//
//	run          Align two inline sequences and print the result
//	bench        Align a database sequence against many queries and report metrics
//	fasta-info   Print name and length for every record of a FASTA file
package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		runCmd(os.Args[2:])
	case "bench":
		benchCmd(os.Args[2:])
	case "fasta-info":
		fastaInfoCmd(os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "swalign: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `swalign - Smith-Waterman affine-gap local alignment

Usage:
  swalign <command> [options]

Commands:
  run          align two inline sequences and print the result
  bench        align a database sequence against many queries and report metrics
  fasta-info   print name and length for every record of a FASTA file

Use "swalign <command> -h" for a command's options.`)
}

// redirectLog points the standard logger at errFile, the same -err
// convention loopy.go uses, returning a cleanup func to defer.
func redirectLog(errFile string) func() {
	if errFile == "" {
		return func() {}
	}
	f, err := os.Create(errFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "swalign: failed to create log file: %v\n", err)
		os.Exit(1)
	}
	log.SetOutput(f)
	return func() { f.Close() }
}
