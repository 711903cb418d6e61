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

// AllOf reports whether every lane's value is true.
func AllOf(g Group, x Varying[bool]) bool {
	ls := requireLockStep("AllOf", g)
	checkLanes("AllOf", g, x)
	return allLanes(ls, x.lanes)
}

// AnyOf reports whether at least one lane's value is true.
func AnyOf(g Group, x Varying[bool]) bool {
	ls := requireLockStep("AnyOf", g)
	checkLanes("AnyOf", g, x)
	return anyLanes(ls, x.lanes)
}

// NoneOf reports whether no lane's value is true.
func NoneOf(g Group, x Varying[bool]) bool {
	ls := requireLockStep("NoneOf", g)
	checkLanes("NoneOf", g, x)
	return !anyLanes(ls, x.lanes)
}

// AllOfFunc reports whether pred holds for every lane's value.
func AllOfFunc[T any](g Group, x Varying[T], pred func(T) bool) bool {
	ls := requireLockStep("AllOfFunc", g)
	checkLanes("AllOfFunc", g, x)
	return allLanes(ls, Map(x, pred).lanes)
}

// AnyOfFunc reports whether pred holds for at least one lane's value.
func AnyOfFunc[T any](g Group, x Varying[T], pred func(T) bool) bool {
	ls := requireLockStep("AnyOfFunc", g)
	checkLanes("AnyOfFunc", g, x)
	return anyLanes(ls, Map(x, pred).lanes)
}

// NoneOfFunc reports whether pred holds for no lane's value.
func NoneOfFunc[T any](g Group, x Varying[T], pred func(T) bool) bool {
	ls := requireLockStep("NoneOfFunc", g)
	checkLanes("NoneOfFunc", g, x)
	return !anyLanes(ls, Map(x, pred).lanes)
}

// AllOfRange reports whether pred holds for every element of data. Each lane
// tests the elements it owns (see ForEachStrided), then the group takes one
// AllOf over the partial results.
func AllOfRange[T any](g Group, data []T, pred func(T) bool) bool {
	ls := requireLockStep("AllOfRange", g)
	return allOfRange(ls, data, pred)
}

func allOfRange[T any](ls lockStep, data []T, pred func(T) bool) bool {
	partial := Uniform(ls, true)
	forEachStrided(LinearRange(ls), len(data), func(lane, i int) {
		partial.lanes[lane] = partial.lanes[lane] && pred(data[i])
	})
	return allLanes(ls, partial.lanes)
}

// AnyOfRange reports whether pred holds for at least one element of data.
func AnyOfRange[T any](g Group, data []T, pred func(T) bool) bool {
	ls := requireLockStep("AnyOfRange", g)
	return anyOfRange(ls, data, pred)
}

func anyOfRange[T any](ls lockStep, data []T, pred func(T) bool) bool {
	partial := Uniform(ls, false)
	forEachStrided(LinearRange(ls), len(data), func(lane, i int) {
		partial.lanes[lane] = partial.lanes[lane] || pred(data[i])
	})
	return anyLanes(ls, partial.lanes)
}

// NoneOfRange reports whether pred holds for no element of data.
func NoneOfRange[T any](g Group, data []T, pred func(T) bool) bool {
	ls := requireLockStep("NoneOfRange", g)
	return !anyOfRange(ls, data, pred)
}

// Leader is true at exactly one lane, the one with linear id 0. It selects
// the lane that performs work once per group; it does not exclude the other
// lanes from anything by itself.
func Leader(g Group) Varying[bool] {
	requireLockStep("Leader", g)
	return Generate(g, func(lane int) bool { return lane == 0 })
}
