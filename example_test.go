// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples that use atomix concurrency primitives.
// These trigger false positives with Go's race detector because atomix
// atomic operations appear as regular memory accesses to the detector.
// The examples are correct; they're excluded from race testing.

package kfifo_test

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kfifo"
)

// ExampleNewKFIFO shows the relaxed order: elements of one segment may come
// out in any order, but segments are drained in sequence.
func ExampleNewKFIFO() {
	q := kfifo.NewKFIFO[int](2, 4)

	for i := 1; i <= 6; i++ {
		v := i * 10
		q.Enqueue(&v)
	}

	var batch []int
	for range 6 {
		v, _ := q.Dequeue()
		batch = append(batch, v)
		if len(batch) == 2 {
			slices.Sort(batch)
			fmt.Println(batch)
			batch = batch[:0]
		}
	}

	// Output:
	// [10 20]
	// [30 40]
	// [50 60]
}

// ExampleNewKFIFO_strict shows that k=1 is a strict FIFO.
func ExampleNewKFIFO_strict() {
	q := kfifo.NewKFIFO[string](1, 3)

	for _, s := range []string{"a", "b", "c", "d"} {
		if err := q.Enqueue(&s); err != nil {
			fmt.Println(s, "rejected:", kfifo.IsWouldBlock(err))
		}
	}
	for {
		s, err := q.Dequeue()
		if err != nil {
			break
		}
		fmt.Println(s)
	}

	// Output:
	// d rejected: true
	// a
	// b
	// c
}

// ExampleKFIFOIndirect demonstrates a buffer-pool free list.
func ExampleKFIFOIndirect() {
	pool := make([][]byte, 8)
	free := kfifo.NewKFIFOIndirect(2, 4)

	for i := range pool {
		pool[i] = make([]byte, 64)
		free.Enqueue(uintptr(i))
	}

	idx, _ := free.Dequeue()
	buf := pool[idx]
	copy(buf, "hello")
	fmt.Println(string(buf[:5]))
	free.Enqueue(idx)

	// Output:
	// hello
}

// ExampleKFIFOPtr demonstrates zero-copy pointer passing.
func ExampleKFIFOPtr() {
	type Message struct{ Body string }

	q := kfifo.NewKFIFOPtr(4, 4)
	msg := &Message{Body: "ping"}
	q.Enqueue(unsafe.Pointer(msg))

	p, _ := q.Dequeue()
	fmt.Println((*Message)(p).Body)

	// Output:
	// ping
}

// ExampleBuild demonstrates the builder with counters enabled.
func ExampleBuild() {
	q := kfifo.Build[int](kfifo.New(4).Capacity(8).Instrument())

	for i := range 10 {
		q.Enqueue(&i)
	}

	s := q.Stats()
	fmt.Println("cap:", q.Cap(), "enqueued:", s.Enqueued, "full:", s.Full)

	// Output:
	// cap: 8 enqueued: 8 full: 2
}

// ExampleEnqueueRetry demonstrates bounded waiting on a full queue.
func ExampleEnqueueRetry() {
	q := kfifo.NewKFIFO[int](1, 1)
	v := 1
	q.Enqueue(&v)

	err := kfifo.EnqueueRetry[int](context.Background(), q, &v, 5)
	fmt.Println(kfifo.IsWouldBlock(err))

	// Output:
	// true
}

// Example_workerPool demonstrates many submitters and workers sharing one
// queue.
func Example_workerPool() {
	jobs := kfifo.NewKFIFO[int](4, 4)
	results := make([]int, 10)
	var wg sync.WaitGroup
	var completed atomix.Int32

	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			backoff := iox.Backoff{}
			for completed.Load() < 10 {
				n, err := jobs.Dequeue()
				if err != nil {
					backoff.Wait()
					continue
				}
				backoff.Reset()
				results[n] = n * n
				completed.Add(1)
			}
		}()
	}

	backoff := iox.Backoff{}
	for i := range 10 {
		for jobs.Enqueue(&i) != nil {
			backoff.Wait()
		}
		backoff.Reset()
	}

	wg.Wait()
	fmt.Println(results)

	// Output:
	// [0 1 4 9 16 25 36 49 64 81]
}
