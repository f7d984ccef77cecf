// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfifo

import "unsafe"

// Queue is the combined producer-consumer interface for a bounded queue.
//
// The k-FIFO queues, and the baselines in package baseline, all implement
// it, so one can stand in for another in tests and benchmarks.
//
// The interface intentionally excludes length because accurate counts in
// lock-free algorithms require expensive cross-core synchronization.
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the interface for enqueueing elements.
type Producer[T any] interface {
	// Enqueue adds an element to the queue (non-blocking).
	// The element is copied into the queue.
	// Returns nil once the element is part of the queue, ErrWouldBlock if
	// the queue is full.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
type Consumer[T any] interface {
	// Dequeue removes and returns an element from the queue (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	Dequeue() (T, error)
}

// QueueIndirect is the combined interface for indirect (uintptr) queues.
//
// Example (buffer pool):
//
//	pool := make([][]byte, 1024)
//	freeList := kfifo.NewKFIFOIndirect(8, 128)
//
//	for i := range pool {
//	    pool[i] = make([]byte, 4096)
//	    freeList.Enqueue(uintptr(i))
//	}
//
//	idx, _ := freeList.Dequeue()
//	buf := pool[idx]
//	freeList.Enqueue(idx)
type QueueIndirect interface {
	Enqueue(elem uintptr) error
	Dequeue() (uintptr, error)
	Cap() int
}

// QueuePtr is the combined interface for unsafe.Pointer queues.
//
// The producer transfers ownership of the pointed-to object to the
// consumer. nil is reserved and cannot be enqueued.
type QueuePtr interface {
	Enqueue(elem unsafe.Pointer) error
	Dequeue() (unsafe.Pointer, error)
	Cap() int
}

// Relaxed is implemented by the k-FIFO queues. A queue with K() == k may
// return an element up to k-1 positions away from its strict FIFO position.
type Relaxed interface {
	K() int
	Segments() int
	Stats() Stats
}

var (
	_ Queue[int]    = (*KFIFO[int])(nil)
	_ QueueIndirect = (*KFIFOIndirect)(nil)
	_ QueuePtr      = (*KFIFOPtr)(nil)
	_ Relaxed       = (*KFIFO[int])(nil)
	_ Relaxed       = (*KFIFOIndirect)(nil)
	_ Relaxed       = (*KFIFOPtr)(nil)
)
