// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfifo_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kfifo"
)

// TestErrorClassification checks the iox delegating classifiers.
func TestErrorClassification(t *testing.T) {
	other := errors.New("other")

	tests := []struct {
		name                          string
		err                           error
		wouldBlock, semantic, nonFail bool
	}{
		{"nil", nil, false, false, true},
		{"ErrWouldBlock", kfifo.ErrWouldBlock, true, true, true},
		{"iox.ErrWouldBlock", iox.ErrWouldBlock, true, true, true},
		{"other error", other, false, false, false},
	}

	for tt := range slices.Values(tests) {
		t.Run(tt.name, func(t *testing.T) {
			if got := kfifo.IsWouldBlock(tt.err); got != tt.wouldBlock {
				t.Errorf("IsWouldBlock(%v) = %v, want %v", tt.err, got, tt.wouldBlock)
			}
			if got := kfifo.IsSemantic(tt.err); got != tt.semantic {
				t.Errorf("IsSemantic(%v) = %v, want %v", tt.err, got, tt.semantic)
			}
			if got := kfifo.IsNonFailure(tt.err); got != tt.nonFail {
				t.Errorf("IsNonFailure(%v) = %v, want %v", tt.err, got, tt.nonFail)
			}
		})
	}
}

// TestIsWouldBlockWrapped verifies wrapped ErrWouldBlock is recognized.
func TestIsWouldBlockWrapped(t *testing.T) {
	err := fmt.Errorf("dequeue: %w", kfifo.ErrWouldBlock)
	if !kfifo.IsWouldBlock(err) {
		t.Fatalf("IsWouldBlock(%v) = false, want true", err)
	}
}

// TestEmptyAndFullAreWouldBlock verifies both steady-state outcomes are
// reported as ErrWouldBlock rather than failures.
func TestEmptyAndFullAreWouldBlock(t *testing.T) {
	q := kfifo.NewKFIFO[int](1, 1)
	if _, err := q.Dequeue(); !kfifo.IsNonFailure(err) || err == nil {
		t.Fatalf("empty: got %v, want ErrWouldBlock", err)
	}
	v := 1
	if err := q.Enqueue(&v); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if err := q.Enqueue(&v); !kfifo.IsNonFailure(err) || err == nil {
		t.Fatalf("full: got %v, want ErrWouldBlock", err)
	}
}
