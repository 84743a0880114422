// Copyright ©2024 The swalign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swbuf provides a shareable handle onto a flat buffer that
// lets many goroutines write disjoint indices of the same backing array
// without a mutex. It is the scratch-matrix primitive the wavefront
// engines use to fill H, E, F and P: a slice header is already a small,
// freely-copyable value in Go, so the handle's only job is to document
// the concurrency contract the caller must uphold.
package swbuf

// Buffer is a copyable handle onto a flat slice of T. Copying a Buffer
// copies only the slice header; every copy still refers to the same
// backing array.
//
// Contract: Read and Write perform no bounds checking beyond what the
// Go runtime already does on slice indexing, and no synchronization.
// The caller must guarantee that no two goroutines operate on the same
// index concurrently, and that every Read of an index happens after
// the Write that produced the value it expects to see (for example via
// a WaitGroup barrier between antidiagonals). Within those bounds,
// concurrent writes to distinct indices of the same Buffer are race-free:
// they touch disjoint memory.
type Buffer[T any] struct {
	data []T
}

// New wraps data in a Buffer. It takes ownership of data in the sense
// that callers should not hold onto data and mutate it outside the
// Buffer once shared across goroutines.
func New[T any](data []T) Buffer[T] {
	return Buffer[T]{data: data}
}

// Read returns the value at index i.
func (b Buffer[T]) Read(i int) T { return b.data[i] }

// Write stores v at index i.
func (b Buffer[T]) Write(i int, v T) { b.data[i] = v }

// Len returns the number of elements in the buffer.
func (b Buffer[T]) Len() int { return len(b.data) }

// Slice returns the backing slice. It is intended for use once all
// concurrent writers have joined, e.g. during the traceback/argmax
// scan after a fill phase completes.
func (b Buffer[T]) Slice() []T { return b.data }
