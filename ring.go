// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfifo

import "code.hybscloud.com/atomix"

// entry is a snapshot of one versioned slot.
//
// The version strictly increases on every successful update of the slot.
// Claims and releases alternate, so an odd version means the slot holds a
// value and an even version means it is empty. Two empty snapshots taken
// at different times therefore never compare equal, which rules out ABA on
// the claim CAS.
type entry struct {
	version uint64
	value   uint64
}

func (e entry) occupied() bool {
	return e.version&1 != 0
}

type slot struct {
	entry atomix.Uint128 // lo=version, hi=value
	_     [64 - 16]byte  // Pad to cache line
}

// ring is the fixed slot storage of a k-FIFO queue: segments*k slots,
// segment s owning [s*k, s*k+k). Segment arithmetic wraps modulo segments.
type ring struct {
	_        pad
	tail     atomix.Uint64 // Enqueue cursor (epoch<<32 | segment)
	_        pad
	head     atomix.Uint64 // Dequeue cursor (epoch<<32 | segment)
	_        pad
	slots    []slot
	k        uint64
	segments uint64
	stats    *stats
}

func (r *ring) init(k, segments int, instrument bool) {
	if k < 1 {
		panic("kfifo: k must be >= 1")
	}
	if segments < 1 {
		panic("kfifo: segments must be >= 1")
	}
	if uint64(k) > maxK {
		panic("kfifo: k too large")
	}
	if uint64(segments) > maxSegments {
		panic("kfifo: too many segments")
	}
	r.k = uint64(k)
	r.segments = uint64(segments)
	r.slots = make([]slot, r.k*r.segments)
	if instrument {
		r.stats = &stats{}
	}
}

// base returns the index of the first slot of segment seg.
func (r *ring) base(seg uint64) uint64 {
	return seg * r.k
}

func (r *ring) load(i uint64) entry {
	version, value := r.slots[i].entry.LoadAcquire()
	return entry{version: version, value: value}
}

// tryClaim stores value into the empty slot i iff it still equals expected.
func (r *ring) tryClaim(i uint64, expected entry, value uint64) bool {
	return r.slots[i].entry.CompareAndSwapAcqRel(expected.version, expected.value, expected.version+1, value)
}

// tryRelease empties the occupied slot i iff it still equals expected.
func (r *ring) tryRelease(i uint64, expected entry) bool {
	return r.slots[i].entry.CompareAndSwapAcqRel(expected.version, expected.value, expected.version+1, 0)
}

func (r *ring) capacity() int {
	return int(r.k * r.segments)
}
