// Copyright ©2024 The swalign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package workers provides the two shapes of bounded concurrency the
// core needs: a range split across a fixed worker count for the inner,
// intra-pair parallelism over one antidiagonal, and a semaphore-limited
// fan-out for the outer, inter-pair parallelism over many queries.
package workers

import (
	"runtime"
	"sync"
)

// Range runs fn(i) for every i in [lo, hi), split into at most n
// contiguous chunks processed by separate goroutines, and blocks until
// all of them return. This is the barrier the wavefront engines rely on
// between successive antidiagonals: no call belonging to diagonal k+1
// is made until every call for diagonal k has returned.
//
// n <= 0 means use runtime.GOMAXPROCS(0). Small ranges run with fewer
// goroutines than n so that a chunk is never empty.
func Range(lo, hi, n int, fn func(i int)) {
	width := hi - lo
	if width <= 0 {
		return
	}
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > width {
		n = width
	}
	if n <= 1 {
		for i := lo; i < hi; i++ {
			fn(i)
		}
		return
	}

	chunk := (width + n - 1) / n
	var wg sync.WaitGroup
	for start := lo; start < hi; start += chunk {
		end := start + chunk
		if end > hi {
			end = hi
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// Pool bounds the number of concurrently running tasks submitted via
// Go, using a buffered channel as a counting semaphore, the same shape
// as a batch Smith-Waterman run over many query sequences.
type Pool struct {
	sem chan struct{}
	wg  sync.WaitGroup
}

// NewPool returns a Pool that runs at most size tasks at once. size<=0
// means use runtime.GOMAXPROCS(0).
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	return &Pool{sem: make(chan struct{}, size)}
}

// Go schedules task to run, blocking only if the pool is already at
// capacity.
func (p *Pool) Go(task func()) {
	p.wg.Add(1)
	p.sem <- struct{}{}
	go func() {
		defer p.wg.Done()
		defer func() { <-p.sem }()
		task()
	}()
}

// Wait blocks until every task submitted via Go has returned.
func (p *Pool) Wait() {
	p.wg.Wait()
}
