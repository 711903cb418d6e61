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

// In-register inclusive prefix scans using the Hillis-Steele algorithm.
//
// For a vector [a, b, c, d]:
//   - Step 1: slide by 1, combine -> [a, a+b, b+c, c+d]
//   - Step 2: slide by 2, combine -> [a, a+b, a+b+c, a+b+c+d]
//
// Each step slides in the operator's identity, so lanes below the offset
// are combined with a neutral value. log2(NumLanes) steps cover any width.

func prefixScan[T Lanes](v Vec[T], identity T, combine func(a, b Vec[T]) Vec[T]) Vec[T] {
	for offset := 1; offset < v.NumLanes(); offset <<= 1 {
		v = combine(SlideUpLanesOr(v, offset, identity), v)
	}
	return v
}

// PrefixSum computes the inclusive prefix sum within a single vector.
func PrefixSum[T Lanes](v Vec[T]) Vec[T] {
	return prefixScan(v, 0, Add[T])
}

// PrefixMul computes the inclusive prefix product within a single vector.
func PrefixMul[T Lanes](v Vec[T]) Vec[T] {
	return prefixScan(v, 1, Mul[T])
}

// PrefixMin computes the inclusive running minimum within a single vector.
// identity must be the largest value of T (+Inf for floats).
func PrefixMin[T Lanes](v Vec[T], identity T) Vec[T] {
	return prefixScan(v, identity, Min[T])
}

// PrefixMax computes the inclusive running maximum within a single vector.
// identity must be the lowest value of T (-Inf for floats).
func PrefixMax[T Lanes](v Vec[T], identity T) Vec[T] {
	return prefixScan(v, identity, Max[T])
}

// PrefixAnd computes the inclusive running bitwise AND within a single vector.
func PrefixAnd[T Integers](v Vec[T]) Vec[T] {
	var zero T
	return prefixScan(v, ^zero, And[T])
}

// PrefixOr computes the inclusive running bitwise OR within a single vector.
func PrefixOr[T Integers](v Vec[T]) Vec[T] {
	return prefixScan(v, 0, Or[T])
}

// PrefixXor computes the inclusive running bitwise XOR within a single vector.
func PrefixXor[T Integers](v Vec[T]) Vec[T] {
	return prefixScan(v, 0, Xor[T])
}
