// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfifo

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// indexPool is a bounded lock-free free list of cell indices.
//
// It is a sequence-numbered MPMC ring: each slot packs its sequence and the
// stored index into one 128-bit word, so get and put are a single CAS each.
// The pool starts full with every index in [0, n) and never holds more than
// n indices, so put cannot fail.
//
// Entry format: [lo=sequence | hi=index]
type indexPool struct {
	_      pad
	tail   atomix.Uint64 // Put position
	_      pad
	head   atomix.Uint64 // Get position
	_      pad
	buffer []poolSlot
	mask   uint64
	size   uint64
}

type poolSlot struct {
	entry atomix.Uint128 // lo=seq, hi=index
	_     [64 - 16]byte  // Pad to cache line
}

func (p *indexPool) init(n int) {
	size := uint64(roundToPow2(n))
	p.buffer = make([]poolSlot, size)
	p.mask = size - 1
	p.size = size

	// Positions [0, n) are published; the rest await their first put.
	for i := uint64(0); i < size; i++ {
		if i < uint64(n) {
			p.buffer[i].entry.StoreRelaxed(i+1, i)
		} else {
			p.buffer[i].entry.StoreRelaxed(i, 0)
		}
	}
	p.tail.StoreRelaxed(uint64(n))
}

// get takes a free index. Returns false if every index is in use.
func (p *indexPool) get() (uint64, bool) {
	sw := spin.Wait{}
	for {
		head := p.head.LoadAcquire()
		s := &p.buffer[head&p.mask]
		seq, idx := s.entry.LoadAcquire()
		diff := int64(seq) - int64(head+1)

		if diff == 0 {
			if s.entry.CompareAndSwapAcqRel(seq, idx, head+p.size, 0) {
				p.head.CompareAndSwapRelaxed(head, head+1)
				return idx, true
			}
		} else if diff < 0 {
			return 0, false
		} else {
			// Another getter won this position; help it along.
			p.head.CompareAndSwapRelaxed(head, head+1)
		}
		sw.Once()
	}
}

// put returns idx to the pool.
func (p *indexPool) put(idx uint64) {
	sw := spin.Wait{}
	for {
		tail := p.tail.LoadAcquire()
		s := &p.buffer[tail&p.mask]
		seq, old := s.entry.LoadAcquire()
		diff := int64(seq) - int64(tail)

		if diff == 0 {
			if s.entry.CompareAndSwapAcqRel(seq, old, tail+1, idx) {
				p.tail.CompareAndSwapRelaxed(tail, tail+1)
				return
			}
		} else if diff > 0 {
			p.tail.CompareAndSwapRelaxed(tail, tail+1)
		}
		// diff < 0 is impossible while at most size indices circulate;
		// it can only be observed transiently from a stale tail.
		sw.Once()
	}
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
