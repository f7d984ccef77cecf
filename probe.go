// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfifo

import "github.com/valyala/fastrand"

// Slot search within one segment.
//
// Every scan starts at a random offset and walks the k slots of the
// segment circularly. The start spreads concurrent goroutines across the
// segment instead of piling them onto slot 0; it has no effect on which
// outcomes are possible.

// probeStart returns a uniformly random offset in [0, k).
func (r *ring) probeStart() uint64 {
	if r.k == 1 {
		return 0
	}
	return uint64(fastrand.Uint32n(uint32(r.k)))
}

// findEmpty returns the index and snapshot of an empty slot in seg.
func (r *ring) findEmpty(seg uint64) (uint64, entry, bool) {
	return r.scan(seg, false)
}

// findOccupied returns the index and snapshot of an occupied slot in seg.
func (r *ring) findOccupied(seg uint64) (uint64, entry, bool) {
	return r.scan(seg, true)
}

// segmentOccupied reports whether any slot of seg holds a value.
func (r *ring) segmentOccupied(seg uint64) bool {
	_, _, ok := r.scan(seg, true)
	return ok
}

func (r *ring) scan(seg uint64, occupied bool) (uint64, entry, bool) {
	base := r.base(seg)
	off := r.probeStart()
	for range r.k {
		i := base + off
		e := r.load(i)
		if e.occupied() == occupied {
			return i, e, true
		}
		off++
		if off == r.k {
			off = 0
		}
	}
	return 0, entry{}, false
}
