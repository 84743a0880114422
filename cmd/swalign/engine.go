// Copyright ©2024 The swalign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"

	"github.com/smithwave/swalign/align"
	"github.com/smithwave/swalign/score"
)

// scoreFlags registers the three scoring overrides on fs, defaulting to
// score.Default, and returns a func that reads them back once fs has
// been parsed.
func scoreFlags(fs *flag.FlagSet) func() score.Config {
	match := fs.Int("match", int(score.Default.Match), "match reward")
	gapInit := fs.Int("gapinit", int(score.Default.GapInit), "gap-open penalty")
	gapExt := fs.Int("gapext", int(score.Default.GapExt), "gap-extend penalty")
	return func() score.Config {
		return score.Config{
			Match:   score.Score(*match),
			GapInit: score.Score(*gapInit),
			GapExt:  score.Score(*gapExt),
		}
	}
}

// engineNames lists every engine name selectable with -engine, plus the
// special "all" value bench accepts to run every engine in turn.
func engineNames() []string {
	names := make([]string, len(align.All(score.Default)))
	for i, e := range align.All(score.Default) {
		names[i] = e.Name()
	}
	return names
}

// enginesFor returns the engines named by name: every engine if name is
// "all" or empty, a single-element slice if name matches one engine's
// Name(), or an error if it matches none.
func enginesFor(name string, cfg score.Config) ([]align.Engine, error) {
	all := align.All(cfg)
	if name == "" || name == "all" {
		return all, nil
	}
	for _, e := range all {
		if e.Name() == name {
			return []align.Engine{e}, nil
		}
	}
	return nil, fmt.Errorf("unknown engine %q (choices: %v, or \"all\")", name, engineNames())
}
