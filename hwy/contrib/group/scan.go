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

// ExclusiveScan returns, at lane i, the fold of the values of all lanes with
// linear id below i. Lane 0 receives op's identity.
func ExclusiveScan[T any](g Group, x Varying[T], op IdentityOp[T]) Varying[T] {
	ls := requireLockStep("ExclusiveScan", g)
	checkLanes("ExclusiveScan", g, x)
	id := op.Identity()
	return Varying[T]{lanes: scanLanes("ExclusiveScan", ls, x.lanes, x.Len(), Op[T](op), &id, true)}
}

// ExclusiveScanInit is ExclusiveScan seeded with init: lane 0 receives exactly
// init and lane i receives op(init, x[0], ..., x[i-1]).
func ExclusiveScanInit[T any](g Group, x Varying[T], init T, op Op[T]) Varying[T] {
	ls := requireLockStep("ExclusiveScanInit", g)
	checkLanes("ExclusiveScanInit", g, x)
	return Varying[T]{lanes: scanLanes("ExclusiveScanInit", ls, x.lanes, x.Len(), op, &init, true)}
}

// InclusiveScan returns, at lane i, the fold of the values of all lanes with
// linear id up to and including i.
func InclusiveScan[T any](g Group, x Varying[T], op IdentityOp[T]) Varying[T] {
	ls := requireLockStep("InclusiveScan", g)
	checkLanes("InclusiveScan", g, x)
	return Varying[T]{lanes: scanLanes("InclusiveScan", ls, x.lanes, x.Len(), Op[T](op), nil, false)}
}

// InclusiveScanInit is InclusiveScan seeded with init, which is folded in
// front of lane 0's value.
func InclusiveScanInit[T any](g Group, x Varying[T], init T, op Op[T]) Varying[T] {
	ls := requireLockStep("InclusiveScanInit", g)
	checkLanes("InclusiveScanInit", g, x)
	return Varying[T]{lanes: scanLanes("InclusiveScanInit", ls, x.lanes, x.Len(), op, &init, false)}
}
