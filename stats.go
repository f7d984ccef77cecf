// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfifo

import "code.hybscloud.com/atomix"

// Stats is a snapshot of the counters of an instrumented queue.
//
// Counters are updated independently, so a snapshot taken while operations
// are in flight is not a consistent cut.
type Stats struct {
	Enqueued int64 // Successful enqueues
	Dequeued int64 // Successful dequeues
	Full     int64 // Enqueues rejected because the queue was full
	Empty    int64 // Dequeues that found the queue empty

	ClaimContended   int64 // Claim CAS lost to another goroutine
	ReleaseContended int64 // Release CAS lost to another goroutine

	RolledBack        int64 // Stale claims emptied again
	Conceded          int64 // Stale claims already consumed by a dequeuer
	BoundaryCommitted int64 // Claims committed in the head segment

	HeadAdvances int64
	TailAdvances int64
}

// stats holds the live counters. All methods are no-ops on a nil receiver,
// which is the uninstrumented case.
type stats struct {
	enq, deq, full, empty      atomix.Int64
	claimCAS, releaseCAS       atomix.Int64
	rollbacks, concessions     atomix.Int64
	boundaries                 atomix.Int64
	headAdvances, tailAdvances atomix.Int64
}

func (s *stats) enqueued() {
	if s != nil {
		s.enq.Add(1)
	}
}

func (s *stats) dequeued() {
	if s != nil {
		s.deq.Add(1)
	}
}

func (s *stats) rejectedFull() {
	if s != nil {
		s.full.Add(1)
	}
}

func (s *stats) reportedEmpty() {
	if s != nil {
		s.empty.Add(1)
	}
}

func (s *stats) claimContended() {
	if s != nil {
		s.claimCAS.Add(1)
	}
}

func (s *stats) releaseContended() {
	if s != nil {
		s.releaseCAS.Add(1)
	}
}

func (s *stats) rolledBack() {
	if s != nil {
		s.rollbacks.Add(1)
	}
}

func (s *stats) conceded() {
	if s != nil {
		s.concessions.Add(1)
	}
}

func (s *stats) boundaryCommitted() {
	if s != nil {
		s.boundaries.Add(1)
	}
}

func (s *stats) headAdvanced() {
	if s != nil {
		s.headAdvances.Add(1)
	}
}

func (s *stats) tailAdvanced() {
	if s != nil {
		s.tailAdvances.Add(1)
	}
}

func (s *stats) snapshot() Stats {
	if s == nil {
		return Stats{}
	}
	return Stats{
		Enqueued:          s.enq.Load(),
		Dequeued:          s.deq.Load(),
		Full:              s.full.Load(),
		Empty:             s.empty.Load(),
		ClaimContended:    s.claimCAS.Load(),
		ReleaseContended:  s.releaseCAS.Load(),
		RolledBack:        s.rollbacks.Load(),
		Conceded:          s.concessions.Load(),
		BoundaryCommitted: s.boundaries.Load(),
		HeadAdvances:      s.headAdvances.Load(),
		TailAdvances:      s.tailAdvances.Load(),
	}
}
