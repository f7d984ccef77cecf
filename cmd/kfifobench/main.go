// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command kfifobench compares the k-FIFO queue against the locked baseline
// across workload mixes and goroutine counts.
//
// Usage:
//
//	kfifobench -k 8 -segments 4096 -threads 1,2,4,8 -mix 50/50,25/75,75/25
package main

import (
	"flag"
	"os"
	"strings"

	"code.hybscloud.com/kfifo/internal/bench"
	"github.com/charmbracelet/log"
)

func main() {
	var (
		k          = flag.Int("k", 8, "slots per segment")
		segments   = flag.Int("segments", 4096, "segments on the ring")
		ops        = flag.Int("ops", 500_000, "operations per goroutine")
		iterations = flag.Int("iterations", 10, "runs per configuration")
		threads    = flag.String("threads", "1,2,4,8", "comma separated goroutine counts")
		mixes      = flag.String("mix", "50/50,25/75,75/25", "comma separated enq/deq percentages")
		kinds      = flag.String("queues", strings.Join(bench.Kinds, ","), "comma separated queue kinds")
		level      = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "kfifobench",
	})
	lvl, err := log.ParseLevel(*level)
	if err != nil {
		logger.Fatal("invalid log level", "level", *level, "err", err)
	}
	logger.SetLevel(lvl)

	threadCounts, err := bench.ParseInts(*threads)
	if err != nil {
		logger.Fatal("invalid -threads", "err", err)
	}
	workloads, err := bench.ParseMixes(*mixes)
	if err != nil {
		logger.Fatal("invalid -mix", "err", err)
	}

	for _, mix := range workloads {
		for _, kind := range strings.Split(*kinds, ",") {
			kind = strings.TrimSpace(kind)
			for _, n := range threadCounts {
				cfg := bench.Config{
					Kind:       kind,
					K:          *k,
					Segments:   *segments,
					Threads:    n,
					Ops:        *ops,
					Iterations: *iterations,
					Mix:        mix,
				}
				logger.Debug("running", "queue", kind, "mix", mix, "threads", n)
				res, err := bench.Run(cfg)
				if err != nil {
					logger.Fatal("run failed", "queue", kind, "err", err)
				}
				logger.Info("result",
					"queue", kind,
					"mix", mix,
					"threads", n,
					"mean", res.Mean,
					"min", res.Min,
					"max", res.Max,
					"enqueued", res.Enqueued,
					"dequeued", res.Dequeued,
					"full", res.Full,
					"empty", res.Empty,
				)
			}
		}
	}
}
