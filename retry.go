// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfifo

import (
	"context"
	"time"

	"github.com/avast/retry-go/v3"
)

// Retry timing for EnqueueRetry and DequeueRetry.
const (
	retryDelay    = 10 * time.Microsecond
	retryMaxDelay = 5 * time.Millisecond
)

// EnqueueRetry enqueues elem, retrying up to attempts times while the queue
// is full. Waits between attempts back off exponentially with jitter.
//
// The queues never block; EnqueueRetry is the caller-side retry budget for
// code that prefers bounded waiting over immediate backpressure.
//
// Returns nil on success, ErrWouldBlock if the budget ran out, or the
// context error. Panics if attempts is 0.
func EnqueueRetry[T any](ctx context.Context, p Producer[T], elem *T, attempts uint) error {
	return retry.Do(
		func() error {
			return p.Enqueue(elem)
		},
		retryOptions(ctx, attempts)...,
	)
}

// DequeueRetry dequeues an element, retrying up to attempts times while the
// queue is empty. See EnqueueRetry for the retry policy.
func DequeueRetry[T any](ctx context.Context, c Consumer[T], attempts uint) (T, error) {
	var elem T
	err := retry.Do(
		func() error {
			v, err := c.Dequeue()
			if err != nil {
				return err
			}
			elem = v
			return nil
		},
		retryOptions(ctx, attempts)...,
	)
	return elem, err
}

func retryOptions(ctx context.Context, attempts uint) []retry.Option {
	if attempts == 0 {
		panic("kfifo: retry attempts must be >= 1")
	}
	return []retry.Option{
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.RetryIf(IsWouldBlock),
		retry.Delay(retryDelay),
		retry.MaxDelay(retryMaxDelay),
		retry.LastErrorOnly(true),
	}
}
