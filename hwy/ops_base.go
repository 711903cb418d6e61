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

package hwy

// This file provides pure Go (scalar) implementations of the register
// operations. Each function acts on every lane of its operands at once.

// Load creates a vector by loading data from a slice.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// LoadOr loads up to MaxLanes elements from src and fills the remaining
// lanes with fill. The result always has MaxLanes lanes, which makes it
// the register form of a partially populated tail.
func LoadOr[T Lanes](src []T, fill T) Vec[T] {
	lanes := MaxLanes[T]()
	data := make([]T, lanes)
	n := copy(data, src)
	for i := n; i < lanes; i++ {
		data[i] = fill
	}
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

func zip[T Lanes](a, b Vec[T], fn func(x, y T) T) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = fn(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return zip(a, b, func(x, y T) T { return x + y })
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return zip(a, b, func(x, y T) T { return x * y })
}

// Min returns element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return zip(a, b, func(x, y T) T { return min(x, y) })
}

// Max returns element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return zip(a, b, func(x, y T) T { return max(x, y) })
}

// And performs element-wise bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	return zip(a, b, func(x, y T) T { return x & y })
}

// Or performs element-wise bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	return zip(a, b, func(x, y T) T { return x | y })
}

// Xor performs element-wise bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	return zip(a, b, func(x, y T) T { return x ^ y })
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] == b.data[i]
	}
	return Mask[T]{bits: bits}
}

// ReduceSum sums all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// ReduceMul multiplies all lanes. An empty vector reduces to 1.
func ReduceMul[T Lanes](v Vec[T]) T {
	prod := T(1)
	for _, x := range v.data {
		prod *= x
	}
	return prod
}

// ReduceMin returns the minimum value across all lanes.
func ReduceMin[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		m = min(m, x)
	}
	return m
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		m = max(m, x)
	}
	return m
}

// ReduceAnd returns the bitwise AND of all lanes. An empty vector reduces
// to all ones.
func ReduceAnd[T Integers](v Vec[T]) T {
	var zero T
	acc := ^zero
	for _, x := range v.data {
		acc &= x
	}
	return acc
}

// ReduceOr returns the bitwise OR of all lanes.
func ReduceOr[T Integers](v Vec[T]) T {
	var acc T
	for _, x := range v.data {
		acc |= x
	}
	return acc
}

// ReduceXor returns the bitwise XOR of all lanes.
func ReduceXor[T Integers](v Vec[T]) T {
	var acc T
	for _, x := range v.data {
		acc ^= x
	}
	return acc
}
