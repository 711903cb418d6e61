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
	"github.com/ajroetker/go-lanegroups/hwy"
)

// The kernels below are the single implementation of each collective. Every
// exported entry point validates its arguments, then calls exactly one kernel,
// and every kernel records exactly one synchronization on the group.

// reduceLanes folds the first live lanes of xs. If init is not nil it is
// folded in once, in front, before the result is broadcast.
func reduceLanes[T any](opName string, ls lockStep, xs []T, live int, op Op[T], init *T) T {
	impl := resolvePath(opName, ls, op)
	ls.sync()
	var result T
	if impl != nil {
		result = impl.reduce(xs[:live])
	} else {
		result = butterflyReduce(xs[:live], op)
	}
	if init != nil {
		result = op.Apply(*init, result)
	}
	return result
}

// scanLanes scans the first live lanes of xs. A non-nil seed is injected at
// lane 0 before scanning. For exclusive scans the inclusive result is shifted
// up one lane and lane 0 is set to exactly *seed, which must not be nil.
// Lanes from live on keep their input value.
func scanLanes[T any](opName string, ls lockStep, xs []T, live int, op Op[T], seed *T, exclusive bool) []T {
	impl := resolvePath(opName, ls, op)
	ls.sync()
	in := append([]T(nil), xs[:live]...)
	if seed != nil && live > 0 {
		in[0] = op.Apply(*seed, in[0])
	}
	var inclusive []T
	if impl != nil {
		inclusive = impl.inclusiveScan(in)
	} else {
		inclusive = butterflyInclusiveScan(in, op)
	}
	out := append([]T(nil), xs...)
	if !exclusive {
		copy(out, inclusive)
		return out
	}
	src := make([]int, live)
	for i := range src {
		src[i] = i - 1
	}
	shifted := shuffleLanes(inclusive, src)
	copy(out, shifted)
	if live > 0 {
		out[0] = *seed
	}
	return out
}

// broadcastLane returns xs[lane] to every lane.
func broadcastLane[T any](ls lockStep, xs []T, lane int) T {
	ls.sync()
	if !(forceFallback && ls.flat()) {
		if impl, ok := registerBroadcast[T](); ok {
			return impl.broadcast(xs, lane)
		}
	}
	src := make([]int, len(xs))
	for i := range src {
		src[i] = lane
	}
	return shuffleLanes(xs, src)[0]
}

// allLanes is the group-wide AND of bits.
func allLanes(ls lockStep, bits []bool) bool {
	ls.sync()
	if forceFallback && ls.flat() {
		return butterflyReduce(bits, Op[bool](LogicalAnd{}))
	}
	width := hwy.MaxLanes[uint8]()
	for off := 0; off < len(bits); off += width {
		live := hwy.TailMask[uint8](len(bits) - off)
		m := hwy.MaskAnd(hwy.MaskFromBools[uint8](bits[off:]), live)
		if m.CountTrue() != live.CountTrue() {
			return false
		}
	}
	return true
}

// anyLanes is the group-wide OR of bits.
func anyLanes(ls lockStep, bits []bool) bool {
	ls.sync()
	if forceFallback && ls.flat() {
		return butterflyReduce(bits, Op[bool](LogicalOr{}))
	}
	width := hwy.MaxLanes[uint8]()
	for off := 0; off < len(bits); off += width {
		live := hwy.TailMask[uint8](len(bits) - off)
		if hwy.MaskAnd(hwy.MaskFromBools[uint8](bits[off:]), live).AnyTrue() {
			return true
		}
	}
	return false
}
