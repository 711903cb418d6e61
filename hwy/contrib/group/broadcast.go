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

// Broadcast returns lane 0's value of x to every lane.
func Broadcast[T any](g Group, x Varying[T]) T {
	ls := requireLockStep("Broadcast", g)
	return broadcastFrom("Broadcast", ls, x, 0)
}

// BroadcastFrom returns the value x holds at the given linear lane id. The
// other lanes' values are discarded.
//
// It panics with ErrUnsupportedOperation if g is not a lock-step group and
// with ErrConstraintViolation if lane is not a lane of g.
func BroadcastFrom[T any](g Group, x Varying[T], lane int) T {
	ls := requireLockStep("BroadcastFrom", g)
	return broadcastFrom("BroadcastFrom", ls, x, lane)
}

// BroadcastFromID is BroadcastFrom with the source lane given by its
// multi-dimensional local id.
func BroadcastFromID[T any](g Group, x Varying[T], id ID) T {
	ls := requireLockStep("BroadcastFromID", g)
	r := ls.LocalRange()
	if !r.Contains(id) {
		constraintf("BroadcastFromID: source id %v is not in %s", id, g)
	}
	return broadcastFrom("BroadcastFromID", ls, x, LinearID(r, id))
}

func broadcastFrom[T any](opName string, ls lockStep, x Varying[T], lane int) T {
	checkLanes(opName, ls, x)
	if n := LinearRange(ls); lane < 0 || lane >= n {
		constraintf("%s: source lane %d is not in %s", opName, lane, ls)
	}
	return broadcastLane(ls, x.lanes, lane)
}
