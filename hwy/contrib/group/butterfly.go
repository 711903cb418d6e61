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

// Butterfly exchange over the flat lanes of a SubGroup, for operators without
// a register implementation. Each round k pairs lane i with lane i^(1<<k)
// through shuffleXorLanes. A lane whose partner is not below len(xs) skips the
// round, which is what makes sizes that are not a power of two work:
//
// Lanes whose id is a multiple of 2^k start an aligned block of 2^k lanes.
// After round k-1 such a lane holds the ordered fold of its block restricted
// to the live lanes. In round k the lower block start b pairs with b+2^k, the
// start of the upper sibling block. Either b+2^k is live and holds its block's
// fold, or the whole sibling block lies past the last live lane and skipping
// loses nothing. Lane 0 starts every block it belongs to, so after the last
// round it holds the fold of all live lanes. Other lanes may hold partial
// folds, which is why the result is always read from lane 0.

// butterflyReduce returns the ordered fold of xs, which is not empty.
func butterflyReduce[T any](xs []T, op Op[T]) T {
	n := len(xs)
	acc := append([]T(nil), xs...)
	for bit := 1; bit < n; bit <<= 1 {
		partner := shuffleXorLanes(acc, bit)
		for i := range acc {
			p := i ^ bit
			switch {
			case p >= n:
				// Partner block is entirely past the live lanes.
			case i < p:
				acc[i] = op.Apply(acc[i], partner[i])
			default:
				acc[i] = op.Apply(partner[i], acc[i])
			}
		}
	}
	// Broadcast from lane 0.
	return shuffleLanes(acc, make([]int, n))[n-1]
}

// butterflyInclusiveScan returns the inclusive prefix folds of xs.
//
// Each lane keeps the fold of its block (total) and the fold of its block up
// to and including itself (prefix). A lane only ever folds in the total of a
// lower sibling block, and lower sibling blocks are always entirely live, so
// prefix is exact at every live lane. A total can be partial only for blocks
// that straddle the last live lane, and those are only read by dead lanes.
func butterflyInclusiveScan[T any](xs []T, op Op[T]) []T {
	n := len(xs)
	prefix := append([]T(nil), xs...)
	total := append([]T(nil), xs...)
	for bit := 1; bit < n; bit <<= 1 {
		partner := shuffleXorLanes(total, bit)
		for i := 0; i < n; i++ {
			p := i ^ bit
			switch {
			case p >= n:
			case p < i:
				prefix[i] = op.Apply(partner[i], prefix[i])
				total[i] = op.Apply(partner[i], total[i])
			default:
				total[i] = op.Apply(total[i], partner[i])
			}
		}
	}
	return prefix
}
