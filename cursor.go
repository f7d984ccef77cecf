// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfifo

import "code.hybscloud.com/atomix"

// A cursor word packs a segment index with an epoch that changes on every
// successful cursor CAS:
//
//	[hi 32 bits = epoch | lo 32 bits = segment]
//
// The epoch lets the commit protocol invalidate stale head snapshots without
// moving the head, and keeps a cursor that wrapped all the way around the
// ring from comparing equal to an old snapshot.
const (
	segmentBits = 32
	segmentMask = 1<<segmentBits - 1

	maxSegments = 1 << segmentBits
	maxK        = 1<<32 - 1
)

func cursorSegment(c uint64) uint64 {
	return c & segmentMask
}

func cursorEpoch(c uint64) uint64 {
	return c >> segmentBits
}

func makeCursor(epoch, seg uint64) uint64 {
	return epoch<<segmentBits | seg&segmentMask
}

// next returns the segment following seg on the ring.
func (r *ring) next(seg uint64) uint64 {
	seg++
	if seg == r.segments {
		return 0
	}
	return seg
}

// advance moves cursor c one segment forward if it still holds old.
// Losing the CAS means another goroutine already moved it.
func (r *ring) advance(c *atomix.Uint64, old uint64) bool {
	return c.CompareAndSwapAcqRel(old, makeCursor(cursorEpoch(old)+1, r.next(cursorSegment(old))))
}

// touch bumps the epoch of cursor c without moving it.
func (r *ring) touch(c *atomix.Uint64, old uint64) bool {
	return c.CompareAndSwapAcqRel(old, makeCursor(cursorEpoch(old)+1, cursorSegment(old)))
}

func (r *ring) advanceHead(old uint64) {
	if r.advance(&r.head, old) {
		r.stats.headAdvanced()
	}
}

func (r *ring) advanceTail(old uint64) {
	if r.advance(&r.tail, old) {
		r.stats.tailAdvanced()
	}
}
