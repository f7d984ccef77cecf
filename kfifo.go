// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfifo

import "unsafe"

// KFIFO is a lock-free bounded k-FIFO queue for values of type T.
//
// Elements live in a preallocated cell arena; the ring carries cell
// indices. A free list of indices hands cells to producers and takes them
// back from consumers, so neither Enqueue nor Dequeue allocates.
//
// Memory: k*segments slots (64 bytes each) plus k*segments cells of T
type KFIFO[T any] struct {
	ring  ring
	free  indexPool
	cells []T
}

// NewKFIFO creates a k-FIFO queue with segments segments of k slots each.
// Capacity is exactly k*segments.
// Panics if k < 1 or segments < 1.
func NewKFIFO[T any](k, segments int) *KFIFO[T] {
	return newKFIFO[T](k, segments, false)
}

func newKFIFO[T any](k, segments int, instrument bool) *KFIFO[T] {
	q := &KFIFO[T]{}
	q.ring.init(k, segments, instrument)
	n := q.ring.capacity()
	q.free.init(n)
	q.cells = make([]T, n)
	return q
}

// Enqueue adds an element to the queue.
// Returns ErrWouldBlock if the queue is full.
func (q *KFIFO[T]) Enqueue(elem *T) error {
	idx, ok := q.free.get()
	if !ok {
		q.ring.stats.rejectedFull()
		return ErrWouldBlock
	}
	q.cells[idx] = *elem
	if q.ring.enqueue(idx) {
		return nil
	}
	var zero T
	q.cells[idx] = zero
	q.free.put(idx)
	return ErrWouldBlock
}

// Dequeue removes and returns an element from the queue.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *KFIFO[T]) Dequeue() (T, error) {
	idx, ok := q.ring.dequeue()
	if !ok {
		var zero T
		return zero, ErrWouldBlock
	}
	elem := q.cells[idx]
	var zero T
	q.cells[idx] = zero
	q.free.put(idx)
	return elem, nil
}

// Cap returns the queue capacity (k*segments).
func (q *KFIFO[T]) Cap() int {
	return q.ring.capacity()
}

// K returns the number of slots per segment.
func (q *KFIFO[T]) K() int {
	return int(q.ring.k)
}

// Segments returns the number of segments on the ring.
func (q *KFIFO[T]) Segments() int {
	return int(q.ring.segments)
}

// Stats returns a snapshot of the queue counters.
// Returns the zero Stats unless the queue was built with Instrument().
func (q *KFIFO[T]) Stats() Stats {
	return q.ring.stats.snapshot()
}

// KFIFOIndirect is a lock-free bounded k-FIFO queue for uintptr values.
//
// The value is stored directly in the slot next to its version, so every
// uintptr value, including zero, can be enqueued.
//
// Memory: k*segments slots, 64 bytes per slot (16-byte entry + padding)
type KFIFOIndirect struct {
	ring ring
}

// NewKFIFOIndirect creates a k-FIFO queue for uintptr values.
// Capacity is exactly k*segments.
// Panics if k < 1 or segments < 1.
func NewKFIFOIndirect(k, segments int) *KFIFOIndirect {
	return newKFIFOIndirect(k, segments, false)
}

func newKFIFOIndirect(k, segments int, instrument bool) *KFIFOIndirect {
	q := &KFIFOIndirect{}
	q.ring.init(k, segments, instrument)
	return q
}

// Enqueue adds an element to the queue.
// Returns ErrWouldBlock if the queue is full.
func (q *KFIFOIndirect) Enqueue(elem uintptr) error {
	if q.ring.enqueue(uint64(elem)) {
		return nil
	}
	return ErrWouldBlock
}

// Dequeue removes and returns an element from the queue.
// Returns (0, ErrWouldBlock) if the queue is empty.
func (q *KFIFOIndirect) Dequeue() (uintptr, error) {
	v, ok := q.ring.dequeue()
	if !ok {
		return 0, ErrWouldBlock
	}
	return uintptr(v), nil
}

// Cap returns the queue capacity (k*segments).
func (q *KFIFOIndirect) Cap() int {
	return q.ring.capacity()
}

// K returns the number of slots per segment.
func (q *KFIFOIndirect) K() int {
	return int(q.ring.k)
}

// Segments returns the number of segments on the ring.
func (q *KFIFOIndirect) Segments() int {
	return int(q.ring.segments)
}

// Stats returns a snapshot of the queue counters.
func (q *KFIFOIndirect) Stats() Stats {
	return q.ring.stats.snapshot()
}

// KFIFOPtr is a lock-free bounded k-FIFO queue for unsafe.Pointer values.
//
// nil is the queue's empty marker and cannot be enqueued.
//
// Ownership semantics: the producer transfers the object to the consumer
// and must keep it reachable until it has been dequeued.
//
// Memory: k*segments slots, 64 bytes per slot
type KFIFOPtr struct {
	ring ring
}

// NewKFIFOPtr creates a k-FIFO queue for unsafe.Pointer values.
// Capacity is exactly k*segments.
// Panics if k < 1 or segments < 1.
func NewKFIFOPtr(k, segments int) *KFIFOPtr {
	return newKFIFOPtr(k, segments, false)
}

func newKFIFOPtr(k, segments int, instrument bool) *KFIFOPtr {
	q := &KFIFOPtr{}
	q.ring.init(k, segments, instrument)
	return q
}

// Enqueue adds an element to the queue.
// Returns ErrWouldBlock if the queue is full.
// Panics if elem is nil.
func (q *KFIFOPtr) Enqueue(elem unsafe.Pointer) error {
	if elem == nil {
		panic("kfifo: nil element")
	}
	if q.ring.enqueue(uint64(uintptr(elem))) {
		return nil
	}
	return ErrWouldBlock
}

// Dequeue removes and returns an element from the queue.
// Returns (nil, ErrWouldBlock) if the queue is empty.
func (q *KFIFOPtr) Dequeue() (unsafe.Pointer, error) {
	v, ok := q.ring.dequeue()
	if !ok {
		return nil, ErrWouldBlock
	}
	return *(*unsafe.Pointer)(unsafe.Pointer(&v)), nil
}

// Cap returns the queue capacity (k*segments).
func (q *KFIFOPtr) Cap() int {
	return q.ring.capacity()
}

// K returns the number of slots per segment.
func (q *KFIFOPtr) K() int {
	return int(q.ring.k)
}

// Segments returns the number of segments on the ring.
func (q *KFIFOPtr) Segments() int {
	return int(q.ring.segments)
}

// Stats returns a snapshot of the queue counters.
func (q *KFIFOPtr) Stats() Stats {
	return q.ring.stats.snapshot()
}
