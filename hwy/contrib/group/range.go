// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package group

import (
	"github.com/gomlx/exceptions"
)

// ForEachStrided distributes the indices [0, n) over the lanes of g: lane l
// owns l, l+size, l+2*size and so on, where size is the number of lanes. fn is
// called once per index with the owning lane, lane by lane in increasing
// index order.
func ForEachStrided(g Group, n int, fn func(lane, index int)) {
	ls := requireLockStep("ForEachStrided", g)
	forEachStrided(LinearRange(ls), n, fn)
}

func forEachStrided(size, n int, fn func(lane, index int)) {
	for lane := 0; lane < size; lane++ {
		for i := lane; i < n; i += size {
			fn(lane, i)
		}
	}
}

// ReduceRange folds every element of data with op. Each lane folds the
// elements it owns (see ForEachStrided), then one Reduce over the lanes that
// own at least one element combines the partial results. The grouping of
// elements differs from a sequential fold, so op should be commutative.
//
// An empty data returns op's identity without any collective.
func ReduceRange[T any](g Group, data []T, op IdentityOp[T]) T {
	ls := requireLockStep("ReduceRange", g)
	return reduceRange("ReduceRange", ls, data, Op[T](op), op.Identity())
}

// ReduceRangeInit is ReduceRange with init folded in once, in front.
func ReduceRangeInit[T any](g Group, data []T, init T, op Op[T]) T {
	ls := requireLockStep("ReduceRangeInit", g)
	return reduceRange("ReduceRangeInit", ls, data, op, init)
}

func reduceRange[T any](opName string, ls lockStep, data []T, op Op[T], init T) T {
	size := LinearRange(ls)
	live := min(size, len(data))
	if live == 0 {
		return init
	}
	partial := make([]T, size)
	copy(partial, data[:live])
	forEachStrided(size, len(data), func(lane, i int) {
		if i >= size {
			partial[lane] = op.Apply(partial[lane], data[i])
		}
	})
	return reduceLanes(opName, ls, partial, live, op, &init)
}

// ExclusiveScanRange writes the exclusive scan of src with op into dst and
// returns dst[len(src):], the position after the last element written, so
// adjacent ranges can be chained. dst must hold at least len(src) elements and
// may be src itself.
//
// src is processed in chunks of one element per lane; each chunk costs exactly
// two collectives, a scan seeded with the running carry and the broadcast of
// the next carry.
func ExclusiveScanRange[T any](g Group, src, dst []T, op IdentityOp[T]) []T {
	ls := requireLockStep("ExclusiveScanRange", g)
	return scanRange("ExclusiveScanRange", ls, src, dst, Op[T](op), op.Identity(), true)
}

// ExclusiveScanRangeInit is ExclusiveScanRange seeded with init: dst[0] is
// exactly init.
func ExclusiveScanRangeInit[T any](g Group, src, dst []T, init T, op Op[T]) []T {
	ls := requireLockStep("ExclusiveScanRangeInit", g)
	return scanRange("ExclusiveScanRangeInit", ls, src, dst, op, init, true)
}

// InclusiveScanRange writes the inclusive scan of src with op into dst and
// returns dst[len(src):]. See ExclusiveScanRange.
func InclusiveScanRange[T any](g Group, src, dst []T, op IdentityOp[T]) []T {
	ls := requireLockStep("InclusiveScanRange", g)
	return scanRange("InclusiveScanRange", ls, src, dst, Op[T](op), op.Identity(), false)
}

// InclusiveScanRangeInit is InclusiveScanRange seeded with init.
func InclusiveScanRangeInit[T any](g Group, src, dst []T, init T, op Op[T]) []T {
	ls := requireLockStep("InclusiveScanRangeInit", g)
	return scanRange("InclusiveScanRangeInit", ls, src, dst, op, init, false)
}

func scanRange[T any](opName string, ls lockStep, src, dst []T, op Op[T], carry T, exclusive bool) []T {
	if len(dst) < len(src) {
		exceptions.Panicf("%s: dst holds %d elements but src has %d", opName, len(dst), len(src))
	}
	size := LinearRange(ls)
	chunk := make([]T, size)
	for first := 0; first < len(src); first += size {
		// Lanes from live on keep the previous chunk's values. They take no
		// part in the scan, write nothing and are never the carry source.
		live := min(size, len(src)-first)
		copy(chunk, src[first:first+live])
		out := scanLanes(opName, ls, chunk, live, op, &carry, exclusive)
		copy(dst[first:first+live], out[:live])

		next := out
		if exclusive {
			next = make([]T, size)
			for lane := range live {
				next[lane] = op.Apply(out[lane], chunk[lane])
			}
		}
		carry = broadcastLane(ls, next, live-1)
	}
	return dst[len(src):]
}
