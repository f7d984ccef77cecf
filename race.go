// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package kfifo

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent tests for the generic [T] queue, whose
// cell arena is published through atomix operations the detector cannot see.
const RaceEnabled = true
