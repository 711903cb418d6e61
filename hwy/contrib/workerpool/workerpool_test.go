// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(3)
	defer pool.Close()
	if pool.NumWorkers() != 3 {
		t.Errorf("NumWorkers() = %d, want 3", pool.NumWorkers())
	}

	def := New(-1)
	defer def.Close()
	if def.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want GOMAXPROCS %d", def.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelForCoversRange(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{0, 1, 3, 4, 5, 97} {
		hits := make([]int32, n)
		var blocks atomic.Int32
		pool.ParallelFor(n, func(start, end int) {
			blocks.Add(1)
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Errorf("n=%d: index %d visited %d times", n, i, h)
			}
		}
		if n > 0 && int(blocks.Load()) > pool.NumWorkers() {
			t.Errorf("n=%d: %d blocks for %d workers", n, blocks.Load(), pool.NumWorkers())
		}
	}
}

func TestForEach(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 200
	out := make([]int, n)
	pool.ForEach(n, func(i int) {
		out[i] = i * i
	})
	for i, v := range out {
		if v != i*i {
			t.Errorf("out[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestClosedPoolRunsInline(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	var sum int
	pool.ParallelFor(10, func(start, end int) {
		for i := start; i < end; i++ {
			sum += i
		}
	})
	pool.ForEach(10, func(i int) { sum += i })
	if sum != 90 {
		t.Errorf("sum = %d, want 90", sum)
	}
}

func BenchmarkForEach(b *testing.B) {
	pool := New(0)
	defer pool.Close()
	out := make([]float32, 1024)
	b.ResetTimer()
	for range b.N {
		pool.ForEach(len(out), func(i int) {
			out[i] = float32(i) * 1.5
		})
	}
}
