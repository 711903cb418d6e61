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

// Varying holds one value per lane of a group, indexed by linear lane id.
type Varying[T any] struct {
	lanes []T
}

// Uniform returns a Varying where every lane holds v.
func Uniform[T any](g Group, v T) Varying[T] {
	lanes := make([]T, LinearRange(g))
	for i := range lanes {
		lanes[i] = v
	}
	return Varying[T]{lanes: lanes}
}

// FromLanes returns a Varying with lane i holding values[i]. It panics if
// len(values) is not the number of lanes of g.
func FromLanes[T any](g Group, values []T) Varying[T] {
	if n := LinearRange(g); len(values) != n {
		exceptions.Panicf("FromLanes: got %d values for %s with %d lanes", len(values), g, n)
	}
	return Varying[T]{lanes: append([]T(nil), values...)}
}

// Generate returns a Varying with lane i holding fn(i).
func Generate[T any](g Group, fn func(lane int) T) Varying[T] {
	lanes := make([]T, LinearRange(g))
	for i := range lanes {
		lanes[i] = fn(i)
	}
	return Varying[T]{lanes: lanes}
}

// Map applies fn to every lane's value.
func Map[T, U any](x Varying[T], fn func(T) U) Varying[U] {
	lanes := make([]U, len(x.lanes))
	for i, v := range x.lanes {
		lanes[i] = fn(v)
	}
	return Varying[U]{lanes: lanes}
}

// Len returns the number of lanes.
func (x Varying[T]) Len() int {
	return len(x.lanes)
}

// Lane returns the value held by the lane with the given linear id.
func (x Varying[T]) Lane(i int) T {
	return x.lanes[i]
}

// Lanes returns a copy of all lanes' values.
func (x Varying[T]) Lanes() []T {
	return append([]T(nil), x.lanes...)
}

// LinearIDs returns each lane's linear id.
func LinearIDs(g Group) Varying[int] {
	requireLockStep("LinearIDs", g)
	return Generate(g, func(lane int) int { return lane })
}

// LocalIDs returns each lane's multi-dimensional local id.
func LocalIDs(g Group) Varying[ID] {
	requireLockStep("LocalIDs", g)
	r := g.LocalRange()
	return Generate(g, func(lane int) ID { return IDFromLinear(r, lane) })
}

// Shuffle returns, at each lane i, the value x holds at lane src[i]. A lane
// whose source is outside the group keeps its own value.
func Shuffle[T any](sg *SubGroup, x Varying[T], src Varying[int]) Varying[T] {
	requireLockStep("Shuffle", sg)
	checkLanes("Shuffle", sg, x)
	checkLanes("Shuffle", sg, src)
	return Varying[T]{lanes: shuffleLanes(x.lanes, src.lanes)}
}

// ShuffleXor returns, at each lane i, the value x holds at lane i^mask. A lane
// whose partner is outside the group keeps its own value.
func ShuffleXor[T any](sg *SubGroup, x Varying[T], mask int) Varying[T] {
	requireLockStep("ShuffleXor", sg)
	checkLanes("ShuffleXor", sg, x)
	return Varying[T]{lanes: shuffleXorLanes(x.lanes, mask)}
}

func shuffleLanes[T any](lanes []T, src []int) []T {
	out := make([]T, len(lanes))
	for i := range lanes {
		if s := src[i]; s >= 0 && s < len(lanes) {
			out[i] = lanes[s]
		} else {
			out[i] = lanes[i]
		}
	}
	return out
}

func shuffleXorLanes[T any](lanes []T, mask int) []T {
	out := make([]T, len(lanes))
	for i := range lanes {
		if p := i ^ mask; p < len(lanes) {
			out[i] = lanes[p]
		} else {
			out[i] = lanes[i]
		}
	}
	return out
}
