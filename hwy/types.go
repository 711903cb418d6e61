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

// Package hwy provides the lane-register layer used by lock-step lane groups.
//
// A register holds MaxLanes[T]() lanes of T and every operation in this
// package acts on all lanes at once. The horizontal reductions, in-register
// prefix scans and lane broadcasts are the accelerated collective
// instructions consumed by the hwy/contrib/group package.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-lanegroups/hwy"
//
//	a := hwy.Load(data)
//	total := hwy.ReduceSum(a)
//	prefix := hwy.PrefixSum(a)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in register lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable register handle. In base mode it wraps a slice with one
// element per lane.
//
// Vec instances should not be created directly; use Load, LoadOr, Set or Zero.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Mask represents one boolean per lane, as produced by comparisons or
// built from per-lane predicates with MaskFromBools.
type Mask[T Lanes] struct {
	// bit i is set if lane i is active.
	bits []bool
}

// MaskFromBools builds a full-width mask from per-lane booleans. Lanes beyond
// len(bits) are inactive; bits beyond MaxLanes[T]() are ignored.
func MaskFromBools[T Lanes](bits []bool) Mask[T] {
	m := make([]bool, MaxLanes[T]())
	copy(m, bits)
	return Mask[T]{bits: m}
}

// MaskAnd returns the lane-wise AND of two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.bits[i] && b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// FindFirstTrue returns the index of the first active lane, or -1 if none.
func FindFirstTrue[T Lanes](mask Mask[T]) int {
	for i, bit := range mask.bits {
		if bit {
			return i
		}
	}
	return -1
}
