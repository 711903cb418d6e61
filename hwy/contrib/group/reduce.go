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

// Reduce folds x across all lanes of g with op and returns the result every
// lane observes.
//
// Native operator and type pairs (see IsNative) use register reductions. Any
// other pair runs the butterfly fallback, which needs a *SubGroup; on other
// lock-step groups it panics with ErrConstraintViolation.
func Reduce[T any](g Group, x Varying[T], op IdentityOp[T]) T {
	ls := requireLockStep("Reduce", g)
	checkLanes("Reduce", g, x)
	return reduceLanes("Reduce", ls, x.lanes, x.Len(), Op[T](op), nil)
}

// ReduceInit returns op(init, Reduce(g, x, op)). init is contributed exactly
// once, and op needs no identity.
func ReduceInit[T any](g Group, x Varying[T], init T, op Op[T]) T {
	ls := requireLockStep("ReduceInit", g)
	checkLanes("ReduceInit", g, x)
	return reduceLanes("ReduceInit", ls, x.lanes, x.Len(), op, &init)
}
