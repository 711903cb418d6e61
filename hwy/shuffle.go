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

// This file provides lane movement operations: broadcasting one lane,
// extracting a lane and sliding lanes up.

// Broadcast broadcasts a single lane to all lanes in the vector.
func Broadcast[T Lanes](v Vec[T], lane int) Vec[T] {
	n := len(v.data)
	if lane < 0 || lane >= n {
		// Return zero vector if lane is out of bounds
		return Vec[T]{data: make([]T, n)}
	}
	result := make([]T, n)
	value := v.data[lane]
	for i := range result {
		result[i] = value
	}
	return Vec[T]{data: result}
}

// GetLane extracts a single lane value from the vector.
// Returns zero value if index is out of bounds.
func GetLane[T Lanes](v Vec[T], idx int) T {
	if idx < 0 || idx >= len(v.data) {
		var zero T
		return zero
	}
	return v.data[idx]
}

// SlideUpLanesOr shifts all lanes up (toward higher indices) by offset and
// sets the vacated lower lanes to fill. Lanes that slide out are discarded.
// Scans slide in their operator's identity.
// [1,2,3,4] with offset=1, fill=9 -> [9,1,2,3]
func SlideUpLanesOr[T Lanes](v Vec[T], offset int, fill T) Vec[T] {
	n := len(v.data)
	result := make([]T, n)
	if offset <= 0 {
		copy(result, v.data)
		return Vec[T]{data: result}
	}
	offset = min(offset, n)
	for i := range offset {
		result[i] = fill
	}
	copy(result[offset:], v.data[:n-offset])
	return Vec[T]{data: result}
}
