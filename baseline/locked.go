// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package baseline

import (
	"context"
	"sync"

	"code.hybscloud.com/kfifo"
)

// Locked is a bounded strict FIFO queue guarded by a mutex.
//
// Every operation is serializable. Enqueue and Dequeue follow the kfifo
// non-blocking contract; Put and Take wait for space or elements instead.
type Locked[T any] struct {
	mu      sync.Mutex
	changed chan struct{} // Closed and replaced when waiters need a wakeup
	waiters int
	seq     Sequential[T]
}

// NewLocked creates a locked queue holding up to capacity elements.
// Panics if capacity < 1.
func NewLocked[T any](capacity int) *Locked[T] {
	return &Locked[T]{
		changed: make(chan struct{}),
		seq:     *NewSequential[T](capacity),
	}
}

// Enqueue appends a copy of elem.
// Returns kfifo.ErrWouldBlock if the queue is full.
func (q *Locked[T]) Enqueue(elem *T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if err := q.seq.Enqueue(elem); err != nil {
		return err
	}
	q.notifyLocked()
	return nil
}

// Dequeue removes the oldest element.
// Returns (zero-value, kfifo.ErrWouldBlock) if the queue is empty.
func (q *Locked[T]) Dequeue() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	elem, err := q.seq.Dequeue()
	if err == nil {
		q.notifyLocked()
	}
	return elem, err
}

// Put appends a copy of elem, waiting while the queue is full.
// Returns the context error if ctx is done first.
func (q *Locked[T]) Put(ctx context.Context, elem *T) error {
	for {
		q.mu.Lock()
		if err := q.seq.Enqueue(elem); err == nil {
			q.notifyLocked()
			q.mu.Unlock()
			return nil
		}
		changed := q.changed
		q.waiters++
		q.mu.Unlock()

		if err := q.wait(ctx, changed); err != nil {
			return err
		}
	}
}

// Take removes the oldest element, waiting while the queue is empty.
// Returns the context error if ctx is done first.
func (q *Locked[T]) Take(ctx context.Context) (T, error) {
	for {
		q.mu.Lock()
		if elem, err := q.seq.Dequeue(); err == nil {
			q.notifyLocked()
			q.mu.Unlock()
			return elem, nil
		}
		changed := q.changed
		q.waiters++
		q.mu.Unlock()

		if err := q.wait(ctx, changed); err != nil {
			var zero T
			return zero, err
		}
	}
}

// Len returns the number of elements in the queue.
func (q *Locked[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.seq.Len()
}

// Cap returns the queue capacity.
func (q *Locked[T]) Cap() int {
	return q.seq.Cap()
}

func (q *Locked[T]) wait(ctx context.Context, changed <-chan struct{}) error {
	var err error
	select {
	case <-changed:
	case <-ctx.Done():
		err = ctx.Err()
	}
	q.mu.Lock()
	q.waiters--
	q.mu.Unlock()
	return err
}

func (q *Locked[T]) notifyLocked() {
	if q.waiters == 0 {
		return
	}
	close(q.changed)
	q.changed = make(chan struct{})
}

var (
	_ kfifo.Queue[int] = (*Sequential[int])(nil)
	_ kfifo.Queue[int] = (*Locked[int])(nil)
)
