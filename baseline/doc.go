// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package baseline provides reference queues with the kfifo contract.
//
// [Sequential] is a plain single-threaded bounded FIFO used as an oracle in
// tests. [Locked] is a serializable mutex-guarded bounded FIFO used as a
// correctness and performance baseline for the lock-free queues.
//
// Both implement [kfifo.Queue] and report full or empty with
// [kfifo.ErrWouldBlock].
package baseline
