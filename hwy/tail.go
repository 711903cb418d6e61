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

// TailMask creates a mask with the first 'count' lanes active.
// This marks the live lanes of the last, partially populated register
// when a lane set is not a multiple of the register width.
func TailMask[T Lanes](count int) Mask[T] {
	maxLanes := MaxLanes[T]()
	count = max(0, min(count, maxLanes))
	bits := make([]bool, maxLanes)
	for i := range count {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// ProcessWithTail walks size elements one register at a time.
//
// It calls:
//   - fullFn(offset) for each full register (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of the register width
//
// Example:
//
//	acc := hwy.Zero[float32]()
//	hwy.ProcessWithTail[float32](len(data),
//	    func(offset int) {
//	        acc = hwy.Add(acc, hwy.Load(data[offset:]))
//	    },
//	    func(offset, count int) {
//	        acc = hwy.Add(acc, hwy.LoadOr(data[offset:offset+count], 0))
//	    },
//	)
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	maxLanes := MaxLanes[T]()

	fullVectors := size / maxLanes
	for i := range fullVectors {
		fullFn(i * maxLanes)
	}

	remaining := size % maxLanes
	if remaining > 0 {
		tailFn(fullVectors*maxLanes, remaining)
	}
}
