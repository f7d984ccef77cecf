// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kfifo provides bounded lock-free k-FIFO queues.
//
// A k-FIFO queue relaxes strict FIFO order to gain parallelism. Its slots
// are grouped into segments of k slots arranged as a ring; producers fill
// the segment under the tail cursor and consumers drain the segment under
// the head cursor. Up to k enqueues and k dequeues can therefore proceed
// without contending on one slot, at the cost of an element being dequeued
// up to k-1 positions away from its insertion order. k=1 is a strict FIFO.
//
// # Quick Start
//
//	q := kfifo.NewKFIFO[Event](8, 128)   // k=8, 128 segments, capacity 1024
//	q := kfifo.NewKFIFOIndirect(4, 256)  // uintptr values
//	q := kfifo.NewKFIFOPtr(4, 256)       // unsafe.Pointer values
//
// Builder API:
//
//	q := kfifo.Build[Event](kfifo.New(8).Capacity(1000))  // capacity 1000
//	q := kfifo.New(8).Segments(32).Instrument().BuildIndirect()
//
// # Basic Usage
//
//	q := kfifo.NewKFIFO[int](4, 16)
//
//	// Enqueue (non-blocking)
//	value := 42
//	if err := q.Enqueue(&value); kfifo.IsWouldBlock(err) {
//	    // Queue is full - handle backpressure
//	}
//
//	// Dequeue (non-blocking)
//	elem, err := q.Dequeue()
//	if kfifo.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
// # Ordering
//
// Segments are consumed in ring order and a segment is only retired once it
// is empty, so elements of one segment are always dequeued before elements
// of the next. Within a segment any order is possible. For a single
// producer and a single consumer this bounds reordering to k-1 positions.
// Across producers there is no total order.
//
// # Progress
//
// Enqueue and Dequeue are lock-free: every retry is caused by another
// goroutine's successful CAS. A single call may retry an unbounded number
// of times under heavy contention, but never blocks and never allocates.
// Callers that want bounded waiting use [EnqueueRetry] and [DequeueRetry]
// or an iox.Backoff loop.
//
// # Commit Validation
//
// A producer claims an empty slot of the tail segment with one CAS on a
// versioned slot. Because the cursors can move between the slot search and
// the claim, a claim may land in a segment consumers have already retired.
// After claiming, the producer compares the claimed segment with the
// current cursors:
//
//   - strictly after head and not past tail: committed
//   - anywhere else except head: stale, the claim is rolled back and the
//     enqueue retries
//   - the head segment itself: the producer bumps the head epoch, which
//     fails any retirement decision consumers made on an older head; if
//     that CAS loses, the claim is treated as stale
//
// A rollback whose CAS loses means a consumer already took the element,
// so the enqueue counts as done.
//
// # Capacity
//
// Capacity is exactly k*segments, fixed at construction. The queue may
// report full slightly earlier when consumers have moved the tail past
// partially filled segments.
//
// # Error Handling
//
// Queues return [ErrWouldBlock] when operations cannot proceed. This error
// is sourced from [code.hybscloud.com/iox] for ecosystem consistency.
//
//	kfifo.IsWouldBlock(err)  // true if queue full/empty
//	kfifo.IsSemantic(err)    // true if control flow signal
//	kfifo.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// Enqueueing nil into a [KFIFOPtr] panics: nil is the empty marker.
//
// # Race Detection
//
// The generic [KFIFO] publishes element cells through atomix operations
// that Go's race detector does not model. Tests that exercise it
// concurrently are skipped when [RaceEnabled] is true.
package kfifo
