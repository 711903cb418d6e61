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

// Package group provides collective algorithms executed jointly by the lanes
// of a lock-step lane group: broadcast, reduce, exclusive and inclusive scan,
// AllOf/AnyOf/NoneOf predicate tests and leader election.
//
// A group is a fixed set of lanes that execute together. One goroutine owns
// every lane of a group, per-lane values travel in a Varying[T] (one value per
// lane, indexed by linear lane id) and a collective call consumes all lanes'
// values at once, so every lane enters and leaves the call together.
//
// # Groups
//
//   - SubGroup: a flat (1-D) group carved from a register of MaxLocalRange
//     lanes. It has the Shuffle and ShuffleXor exchange capability, so any
//     associative operator can be used.
//   - WorkGroup: a 1 to 3 dimensional group. Only native operators are
//     available; there is no multi-dimensional software fallback.
//   - HostGroup: a lane topology whose lanes run independently on a
//     workerpool. It has no lock-step capability and every collective called
//     on it panics with ErrUnsupportedOperation.
//
// # Operators
//
// Plus, Multiplies, BitOr, BitXor, BitAnd, Minimum and Maximum over the lane
// types of package hwy are native: they run on the hwy register operations
// (horizontal reductions and in-register prefix scans). Any other operator,
// including Func, LogicalAnd and LogicalOr or native operators over other
// element types, runs on the butterfly fallback built from ShuffleXor.
//
// Functions without an init argument (Reduce, ExclusiveScan, ...) require an
// operator with a registered identity at compile time; the *Init variants
// accept any Op.
//
// # Example
//
//	g, err := group.NewSubGroup(8)
//	if err != nil {
//	    return err
//	}
//	x := group.Generate(g, func(lane int) int32 { return int32(lane + 1) })
//	total := group.Reduce(g, x, group.Plus[int32]{})            // 36
//	prefix := group.ExclusiveScan(g, x, group.Plus[int32]{})    // [0 1 3 6 10 15 21 28]
//
// Slices of any length are processed with the range variants
// (ReduceRange, ExclusiveScanRange, AllOfRange, ...), which bound the number of
// collective calls by the number of group-sized chunks.
//
// # Configuration
//
// Setting HWY_GROUP_FALLBACK=1 routes every collective of a SubGroup through
// the software fallback, which is useful to compare both paths.
package group
