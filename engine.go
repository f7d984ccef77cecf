// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfifo

import "code.hybscloud.com/spin"

// enqueue inserts value into the tail segment.
// Returns false if the ring was observed full.
//
// A claimed slot is only provisional until committed reports that it lies
// inside the active region. Stale claims are rolled back and the loop
// retries with fresh cursors.
func (r *ring) enqueue(value uint64) bool {
	sw := spin.Wait{}
	for {
		tail := r.tail.LoadAcquire()
		head := r.head.LoadAcquire()
		if tail != r.tail.LoadAcquire() {
			continue
		}

		seg := cursorSegment(tail)
		if i, e, ok := r.findEmpty(seg); ok {
			if !r.tryClaim(i, e, value) {
				r.stats.claimContended()
				sw.Once()
				continue
			}
			if r.committed(tail, i, entry{version: e.version + 1, value: value}) {
				r.stats.enqueued()
				return true
			}
			sw.Once()
			continue
		}

		// Tail segment is saturated.
		headSeg := cursorSegment(head)
		if r.next(seg) == headSeg {
			if r.segmentOccupied(headSeg) {
				if head == r.head.LoadAcquire() {
					r.stats.rejectedFull()
					return false
				}
				// Head moved or was touched by a commit. Never push the
				// tail onto a head segment that may still hold values.
				continue
			}
			r.advanceHead(head)
		}
		r.advanceTail(tail)
	}
}

// dequeue removes a value from the head segment.
// Returns false if the ring was observed empty.
func (r *ring) dequeue() (uint64, bool) {
	sw := spin.Wait{}
	for {
		tail := r.tail.LoadAcquire()
		head := r.head.LoadAcquire()
		if head != r.head.LoadAcquire() {
			continue
		}

		seg := cursorSegment(head)
		if i, e, ok := r.findOccupied(seg); ok {
			if seg == cursorSegment(tail) {
				// Keep enqueuers one segment ahead of a draining head.
				r.advanceTail(tail)
			}
			if r.tryRelease(i, e) {
				r.stats.dequeued()
				return e.value, true
			}
			r.stats.releaseContended()
			sw.Once()
			continue
		}

		if seg == cursorSegment(tail) && tail == r.tail.LoadAcquire() {
			r.stats.reportedEmpty()
			return 0, false
		}
		r.advanceHead(head)
	}
}

// disposition classifies a claimed segment against the active region.
type disposition uint8

const (
	inside   disposition = iota // strictly after head, at or before tail
	outside                     // not reachable by dequeuers any more
	boundary                    // the head segment itself
)

// locate places seg relative to the active region (head, tail] of a ring,
// where head itself is the boundary. A tail numerically below head means
// the region wraps past the end of the ring.
func locate(seg, head, tail uint64) disposition {
	if seg == head {
		return boundary
	}
	if head <= tail {
		if head < seg && seg <= tail {
			return inside
		}
		return outside
	}
	if seg > head || seg <= tail {
		return inside
	}
	return outside
}

// committed decides whether the value just claimed at slot i is durably
// part of the queue. claimed is the slot content written by the claim and
// oldTail the tail cursor the claim was made under.
//
// Whenever the rollback CAS loses, a dequeuer has already removed the
// value, so the enqueue took effect and is reported as committed.
func (r *ring) committed(oldTail uint64, i uint64, claimed entry) bool {
	if r.load(i) != claimed {
		// Already consumed.
		return true
	}

	head := r.head.LoadAcquire()
	tail := r.tail.LoadAcquire()

	switch locate(cursorSegment(oldTail), cursorSegment(head), cursorSegment(tail)) {
	case inside:
		return true
	case outside:
		return !r.rollback(i, claimed)
	default:
		// A dequeuer may be deciding to retire this very segment. Bumping
		// the head epoch fails any such decision made on an older snapshot.
		if r.touch(&r.head, head) {
			r.stats.boundaryCommitted()
			return true
		}
		return !r.rollback(i, claimed)
	}
}

// rollback empties a stale claim. It returns false if a dequeuer got there
// first.
func (r *ring) rollback(i uint64, claimed entry) bool {
	if r.tryRelease(i, claimed) {
		r.stats.rolledBack()
		return true
	}
	r.stats.conceded()
	return false
}
