// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bench drives queues with randomized enqueue/dequeue workloads and
// measures wall-clock completion time.
package bench

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/kfifo"
	"code.hybscloud.com/kfifo/baseline"
	"github.com/valyala/fastrand"
)

// Queue kinds accepted by NewQueue.
const (
	KindKFIFO  = "kfifo"
	KindLocked = "locked"
)

// Kinds lists every queue kind in reporting order.
var Kinds = []string{KindKFIFO, KindLocked}

var (
	ErrUnknownKind = errors.New("bench: unknown queue kind")
	ErrBadMix      = errors.New("bench: bad workload mix")
)

// Mix is a workload mix in percent. Enqueue+Dequeue is always 100.
type Mix struct {
	Enqueue int
	Dequeue int
}

// DefaultMixes are the mixes run when none are given.
var DefaultMixes = []Mix{{50, 50}, {25, 75}, {75, 25}}

// DefaultThreads are the goroutine counts run when none are given.
var DefaultThreads = []int{1, 2, 4, 8}

func (m Mix) String() string {
	return fmt.Sprintf("enq%d/deq%d", m.Enqueue, m.Dequeue)
}

// ParseMix parses "E/D", e.g. "75/25".
func ParseMix(s string) (Mix, error) {
	enq, deq, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Mix{}, fmt.Errorf("%w: %q", ErrBadMix, s)
	}
	e, err := strconv.Atoi(enq)
	if err != nil {
		return Mix{}, fmt.Errorf("%w: %q: %v", ErrBadMix, s, err)
	}
	d, err := strconv.Atoi(deq)
	if err != nil {
		return Mix{}, fmt.Errorf("%w: %q: %v", ErrBadMix, s, err)
	}
	if e < 0 || d < 0 || e+d != 100 {
		return Mix{}, fmt.Errorf("%w: %q must be two percentages summing to 100", ErrBadMix, s)
	}
	return Mix{Enqueue: e, Dequeue: d}, nil
}

// ParseMixes parses a comma separated list of mixes.
func ParseMixes(s string) ([]Mix, error) {
	var mixes []Mix
	for part := range strings.SplitSeq(s, ",") {
		m, err := ParseMix(part)
		if err != nil {
			return nil, err
		}
		mixes = append(mixes, m)
	}
	return mixes, nil
}

// ParseInts parses a comma separated list of positive integers.
func ParseInts(s string) ([]int, error) {
	var out []int
	for part := range strings.SplitSeq(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bench: %q: %w", part, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("bench: %d must be >= 1", n)
		}
		out = append(out, n)
	}
	return out, nil
}

// NewQueue creates an int queue of the given kind with capacity
// k*segments.
func NewQueue(kind string, k, segments int) (kfifo.Queue[int], error) {
	switch kind {
	case KindKFIFO:
		return kfifo.NewKFIFO[int](k, segments), nil
	case KindLocked:
		return baseline.NewLocked[int](k * segments), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Config describes one benchmark configuration.
type Config struct {
	Kind       string
	K          int
	Segments   int
	Threads    int
	Ops        int // Operations per goroutine
	Iterations int
	Mix        Mix
}

// Result summarizes the iterations of one configuration.
type Result struct {
	Config
	Mean, Min, Max time.Duration

	// Outcome totals across all iterations.
	Enqueued, Dequeued, Full, Empty int64
}

// Run executes cfg.Iterations runs of cfg, each on a fresh queue.
func Run(cfg Config) (Result, error) {
	if cfg.Threads < 1 || cfg.Ops < 1 || cfg.Iterations < 1 {
		return Result{}, errors.New("bench: threads, ops and iterations must be >= 1")
	}
	res := Result{Config: cfg}
	var total time.Duration
	for it := range cfg.Iterations {
		q, err := NewQueue(cfg.Kind, cfg.K, cfg.Segments)
		if err != nil {
			return Result{}, err
		}
		var c counters
		d := runOnce(q, cfg, &c)
		total += d
		if it == 0 || d < res.Min {
			res.Min = d
		}
		if d > res.Max {
			res.Max = d
		}
		res.Enqueued += c.enqueued.Load()
		res.Dequeued += c.dequeued.Load()
		res.Full += c.full.Load()
		res.Empty += c.empty.Load()
	}
	res.Mean = total / time.Duration(cfg.Iterations)
	return res, nil
}

type counters struct {
	enqueued, dequeued, full, empty atomix.Int64
}

func runOnce(q kfifo.Queue[int], cfg Config, c *counters) time.Duration {
	var ready, done sync.WaitGroup
	start := make(chan struct{})
	threshold := uint32(cfg.Mix.Enqueue)

	for g := range cfg.Threads {
		ready.Add(1)
		done.Add(1)
		go func(id int) {
			defer done.Done()
			var enq, deq, full, empty int64
			ready.Done()
			<-start
			for i := range cfg.Ops {
				if fastrand.Uint32n(100) < threshold {
					v := id*cfg.Ops + i
					if q.Enqueue(&v) == nil {
						enq++
					} else {
						full++
					}
					continue
				}
				if _, err := q.Dequeue(); err == nil {
					deq++
				} else {
					empty++
				}
			}
			c.enqueued.Add(enq)
			c.dequeued.Add(deq)
			c.full.Add(full)
			c.empty.Add(empty)
		}(g)
	}

	ready.Wait()
	began := time.Now()
	close(start)
	done.Wait()
	return time.Since(began)
}
