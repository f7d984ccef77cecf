// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfifo

// DefaultSegments is the segment count used when the builder is not told
// otherwise.
const DefaultSegments = 16

// Options configures queue creation.
type Options struct {
	k          int  // Slots per segment
	segments   int  // Segments on the ring
	instrument bool // Maintain Stats counters
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// 8-relaxed queue holding 1024 events
//	q := kfifo.Build[Event](kfifo.New(8).Capacity(1024))
//
//	// Explicit geometry with counters
//	q := kfifo.New(4).Segments(64).Instrument().BuildIndirect()
type Builder struct {
	opts Options
}

// New creates a queue builder with k slots per segment.
//
// k bounds both the parallelism and the reordering: up to k enqueues and
// k dequeues proceed without contending on one slot, and an element may be
// dequeued up to k-1 positions out of order. k=1 gives a strict FIFO.
//
// Panics if k < 1.
func New(k int) *Builder {
	if k < 1 {
		panic("kfifo: k must be >= 1")
	}
	return &Builder{opts: Options{k: k, segments: DefaultSegments}}
}

// Segments sets the number of segments on the ring.
// Panics if n < 1.
func (b *Builder) Segments(n int) *Builder {
	if n < 1 {
		panic("kfifo: segments must be >= 1")
	}
	b.opts.segments = n
	return b
}

// Capacity sets the segment count to the smallest value whose total
// capacity is at least c. The resulting Cap() is a multiple of k.
// Panics if c < 1.
func (b *Builder) Capacity(c int) *Builder {
	if c < 1 {
		panic("kfifo: capacity must be >= 1")
	}
	b.opts.segments = (c + b.opts.k - 1) / b.opts.k
	return b
}

// Instrument enables the counters reported by Stats.
// Counting adds one atomic add per event to the hot path.
func (b *Builder) Instrument() *Builder {
	b.opts.instrument = true
	return b
}

// Build creates a k-FIFO queue for values of type T.
func Build[T any](b *Builder) *KFIFO[T] {
	return newKFIFO[T](b.opts.k, b.opts.segments, b.opts.instrument)
}

// BuildIndirect creates a k-FIFO queue for uintptr values.
func (b *Builder) BuildIndirect() *KFIFOIndirect {
	return newKFIFOIndirect(b.opts.k, b.opts.segments, b.opts.instrument)
}

// BuildPtr creates a k-FIFO queue for unsafe.Pointer values.
func (b *Builder) BuildPtr() *KFIFOPtr {
	return newKFIFOPtr(b.opts.k, b.opts.segments, b.opts.instrument)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
