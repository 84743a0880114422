// Copyright ©2024 The swalign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// swalign-benchplot renders a Giga-CUPS-per-pair line chart from the
// TSV a "swalign bench -out" run produces, one line per engine.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	in     = flag.String("in", "", "TSV file produced by swalign bench -out (required)")
	out    = flag.String("out", "benchplot.svg", "output plot file name")
	errLog = flag.String("err", "", "redirect the log stream to this file (default stderr)")
)

func main() {
	flag.Parse()
	if *errLog != "" {
		f, err := os.Create(*errLog)
		if err != nil {
			log.Fatalf("failed to create log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}
	if *in == "" {
		fmt.Fprintln(os.Stderr, "swalign-benchplot: -in is required")
		flag.Usage()
		os.Exit(1)
	}

	series, err := readSeries(*in)
	if err != nil {
		log.Fatalf("failed to read %q: %v", *in, err)
	}

	p := plot.New()
	p.Title.Text = "Giga-CUPS per pair"
	p.X.Label.Text = "pair index"
	p.Y.Label.Text = "Giga-CUPS"

	for _, name := range sortedKeys(series) {
		pts := series[name]
		line, err := plotter.NewLine(pts)
		if err != nil {
			log.Fatalf("failed to build line for %q: %v", name, err)
		}
		line.Color = colorFor(len(p.Legend.Entries))
		p.Add(line)
		p.Legend.Add(name, line)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, *out); err != nil {
		log.Fatalf("failed to save %q: %v", *out, err)
	}
}

// readSeries parses the "engine\tquery\tscore\tgcups" TSV swalign
// bench writes, grouping gcups values into one XYs series per engine
// in file order.
func readSeries(path string) (map[string]plotter.XYs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	series := make(map[string]plotter.XYs)
	counts := make(map[string]int)

	sc := bufio.NewScanner(f)
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			first = false
			if strings.HasPrefix(line, "engine\t") {
				continue
			}
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			continue
		}
		engine := fields[0]
		gcups, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing gcups field %q: %w", fields[3], err)
		}
		idx := counts[engine]
		counts[engine] = idx + 1
		series[engine] = append(series[engine], plotter.XY{X: float64(idx), Y: gcups})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return series, nil
}

func sortedKeys(m map[string]plotter.XYs) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

var palette = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd"}

func colorFor(i int) plotColor {
	return plotColor(palette[i%len(palette)])
}

// plotColor satisfies color.Color with a fixed hex RGB value, letting
// each engine's line get a distinct, deterministic color without
// pulling in a palette dependency beyond what the teacher already uses.
type plotColor string

func (c plotColor) RGBA() (r, g, b, a uint32) {
	v := strings.TrimPrefix(string(c), "#")
	rr, _ := strconv.ParseUint(v[0:2], 16, 8)
	gg, _ := strconv.ParseUint(v[2:4], 16, 8)
	bb, _ := strconv.ParseUint(v[4:6], 16, 8)
	r = uint32(rr) << 8
	g = uint32(gg) << 8
	b = uint32(bb) << 8
	a = 0xffff
	return
}
