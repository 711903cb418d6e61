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

import "github.com/ajroetker/go-lanegroups/hwy"

// This file is the accelerated path: collectives over the lane types of
// package hwy with a registered operator run as register-wide operations.
// The type switch in resolveNative is the static lookup table from
// (element type, operator) to the monomorphized kernel.

// nativeImpl is the accelerated implementation for one (T, operator) pair.
type nativeImpl[T any] interface {
	// reduce folds all of xs, which is not empty.
	reduce(xs []T) T

	// inclusiveScan returns the inclusive prefix fold of xs.
	inclusiveScan(xs []T) []T

	// broadcast returns xs[lane].
	broadcast(xs []T, lane int) T
}

// kernel binds a register operation, its identity and its horizontal forms.
type kernel[E hwy.Lanes] struct {
	identity   E
	combine    func(a, b hwy.Vec[E]) hwy.Vec[E]
	prefix     func(v hwy.Vec[E]) hwy.Vec[E]
	horizontal func(v hwy.Vec[E]) E
}

func (k kernel[E]) reduce(xs []E) E {
	acc := hwy.Set(k.identity)
	hwy.ProcessWithTail[E](len(xs),
		func(offset int) {
			acc = k.combine(acc, hwy.Load(xs[offset:]))
		},
		func(offset, count int) {
			acc = k.combine(acc, hwy.LoadOr(xs[offset:offset+count], k.identity))
		},
	)
	return k.horizontal(acc)
}

func (k kernel[E]) inclusiveScan(xs []E) []E {
	out := make([]E, len(xs))
	last := hwy.MaxLanes[E]() - 1
	carry := hwy.Set(k.identity)
	step := func(offset int, v hwy.Vec[E]) {
		v = k.combine(carry, k.prefix(v))
		hwy.Store(v, out[offset:])
		carry = hwy.Broadcast(v, last)
	}
	hwy.ProcessWithTail[E](len(xs),
		func(offset int) {
			step(offset, hwy.Load(xs[offset:]))
		},
		func(offset, count int) {
			// Identity padding keeps the dead lanes out of the live prefix.
			step(offset, hwy.LoadOr(xs[offset:offset+count], k.identity))
		},
	)
	return out
}

func (k kernel[E]) broadcast(xs []E, lane int) E {
	lanes := hwy.MaxLanes[E]()
	reg := hwy.Load(xs[lane-lane%lanes:])
	return hwy.GetLane(hwy.Broadcast(reg, lane%lanes), 0)
}

func arithKernel[E hwy.Lanes](code OpCode) (kernel[E], bool) {
	switch code {
	case OpAdd:
		return kernel[E]{identity: 0, combine: hwy.Add[E], prefix: hwy.PrefixSum[E], horizontal: hwy.ReduceSum[E]}, true
	case OpMul:
		return kernel[E]{identity: 1, combine: hwy.Mul[E], prefix: hwy.PrefixMul[E], horizontal: hwy.ReduceMul[E]}, true
	case OpMin:
		id := MaxValue[E]()
		return kernel[E]{
			identity:   id,
			combine:    hwy.Min[E],
			prefix:     func(v hwy.Vec[E]) hwy.Vec[E] { return hwy.PrefixMin(v, id) },
			horizontal: hwy.ReduceMin[E],
		}, true
	case OpMax:
		id := LowestValue[E]()
		return kernel[E]{
			identity:   id,
			combine:    hwy.Max[E],
			prefix:     func(v hwy.Vec[E]) hwy.Vec[E] { return hwy.PrefixMax(v, id) },
			horizontal: hwy.ReduceMax[E],
		}, true
	}
	return kernel[E]{}, false
}

func intKernel[E hwy.Integers](code OpCode) (kernel[E], bool) {
	switch code {
	case OpAnd:
		return kernel[E]{identity: AllOnes[E](), combine: hwy.And[E], prefix: hwy.PrefixAnd[E], horizontal: hwy.ReduceAnd[E]}, true
	case OpOr:
		return kernel[E]{identity: 0, combine: hwy.Or[E], prefix: hwy.PrefixOr[E], horizontal: hwy.ReduceOr[E]}, true
	case OpXor:
		return kernel[E]{identity: 0, combine: hwy.Xor[E], prefix: hwy.PrefixXor[E], horizontal: hwy.ReduceXor[E]}, true
	}
	return arithKernel[E](code)
}

func boxed[E hwy.Lanes](k kernel[E], ok bool) (any, bool) {
	return k, ok
}

// resolveNative returns the accelerated implementation of code over T. It
// fails for OpNone, for element types that are not hwy lane types and for
// bitwise operators over floats.
func resolveNative[T any](code OpCode) (nativeImpl[T], bool) {
	if code == OpNone {
		return nil, false
	}
	var (
		zero T
		impl any
		ok   bool
	)
	switch any(zero).(type) {
	case float32:
		impl, ok = boxed[float32](arithKernel[float32](code))
	case float64:
		impl, ok = boxed[float64](arithKernel[float64](code))
	case int8:
		impl, ok = boxed[int8](intKernel[int8](code))
	case int16:
		impl, ok = boxed[int16](intKernel[int16](code))
	case int32:
		impl, ok = boxed[int32](intKernel[int32](code))
	case int64:
		impl, ok = boxed[int64](intKernel[int64](code))
	case uint8:
		impl, ok = boxed[uint8](intKernel[uint8](code))
	case uint16:
		impl, ok = boxed[uint16](intKernel[uint16](code))
	case uint32:
		impl, ok = boxed[uint32](intKernel[uint32](code))
	case uint64:
		impl, ok = boxed[uint64](intKernel[uint64](code))
	}
	if !ok {
		return nil, false
	}
	return impl.(nativeImpl[T]), true
}

// isLaneType reports whether T is one of the hwy lane types.
func isLaneType[T any]() bool {
	_, ok := resolveNative[T](OpAdd)
	return ok
}

// registerBroadcast returns the register form of broadcasts for lane types.
// Broadcasting does not depend on an operator; any kernel of T carries it.
func registerBroadcast[T any]() (nativeImpl[T], bool) {
	return resolveNative[T](OpAdd)
}
