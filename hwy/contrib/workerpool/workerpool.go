// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs independent per-lane work on a fixed set of
// long-lived goroutines.
//
// It is the execution context of group.HostGroup: lanes scheduled here run
// concurrently and in no particular order, so they never execute in lock-step
// and cannot take part in collectives.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ForEach(numLanes, func(lane int) {
//	    out[lane] = kernel(lane)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"k8s.io/klog/v2"
)

// Pool is a set of worker goroutines started once by New and reused by every
// ParallelFor and ForEach call until Close.
type Pool struct {
	numWorkers int
	tasks      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool of numWorkers goroutines. If numWorkers <= 0 it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.work()
	}
	klog.V(2).Infof("workerpool: started %d workers", numWorkers)
	return p
}

func (p *Pool) work() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after pending tasks finish. It is safe to call more
// than once; a closed pool runs later calls on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// submit runs each of fns on a worker and waits for all of them.
func (p *Pool) submit(fns []func()) {
	var wg sync.WaitGroup
	wg.Add(len(fns))
	for _, fn := range fns {
		p.tasks <- task{run: fn, done: &wg}
	}
	wg.Wait()
}

// ParallelFor splits [0, n) into one contiguous block per worker and calls
// fn(start, end) for each block concurrently. It returns when all blocks are
// done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	block := (n + workers - 1) / workers
	var fns []func()
	for start := 0; start < n; start += block {
		end := min(start+block, n)
		fns = append(fns, func() { fn(start, end) })
	}
	p.submit(fns)
}

// ForEach calls fn(i) for every i in [0, n). Workers claim indices one at a
// time, which balances lanes whose cost varies. It returns when all calls are
// done.
func (p *Pool) ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	claim := func() {
		for {
			i := int(next.Add(1) - 1)
			if i >= n {
				return
			}
			fn(i)
		}
	}
	fns := make([]func(), workers)
	for w := range fns {
		fns[w] = claim
	}
	p.submit(fns)
}
