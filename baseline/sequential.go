// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package baseline

import "code.hybscloud.com/kfifo"

// Sequential is a bounded strict FIFO queue. It is not safe for concurrent
// use.
type Sequential[T any] struct {
	buffer []T
	head   int
	size   int
}

// NewSequential creates a sequential queue holding up to capacity elements.
// Panics if capacity < 1.
func NewSequential[T any](capacity int) *Sequential[T] {
	if capacity < 1 {
		panic("baseline: capacity must be >= 1")
	}
	return &Sequential[T]{buffer: make([]T, capacity)}
}

// Enqueue appends a copy of elem.
// Returns kfifo.ErrWouldBlock if the queue is full.
func (q *Sequential[T]) Enqueue(elem *T) error {
	if q.size == len(q.buffer) {
		return kfifo.ErrWouldBlock
	}
	q.buffer[(q.head+q.size)%len(q.buffer)] = *elem
	q.size++
	return nil
}

// Dequeue removes the oldest element.
// Returns (zero-value, kfifo.ErrWouldBlock) if the queue is empty.
func (q *Sequential[T]) Dequeue() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, kfifo.ErrWouldBlock
	}
	elem := q.buffer[q.head]
	q.buffer[q.head] = zero
	q.head = (q.head + 1) % len(q.buffer)
	q.size--
	return elem, nil
}

// Len returns the number of elements in the queue.
func (q *Sequential[T]) Len() int {
	return q.size
}

// Cap returns the queue capacity.
func (q *Sequential[T]) Cap() int {
	return len(q.buffer)
}
