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
	"github.com/ajroetker/go-lanegroups/hwy"
)

// tuple marks the fixed-width vector types.
type tuple interface {
	NumComponents() int
}

// Tuple is a fixed-width vector of lane-typed components. V is the vector
// type itself, so With can return it.
type Tuple[E hwy.Lanes, V any] interface {
	// NumComponents is the static component count.
	NumComponents() int

	// Component returns component i.
	Component(i int) E

	// With returns a copy with component i set to c.
	With(i int, c E) V
}

// Vec2 is a 2-component vector.
type Vec2[E hwy.Lanes] [2]E

// Vec3 is a 3-component vector.
type Vec3[E hwy.Lanes] [3]E

// Vec4 is a 4-component vector.
type Vec4[E hwy.Lanes] [4]E

// Vec8 is an 8-component vector.
type Vec8[E hwy.Lanes] [8]E

// Vec16 is a 16-component vector.
type Vec16[E hwy.Lanes] [16]E

func (v Vec2[E]) NumComponents() int { return 2 }
func (v Vec2[E]) Component(i int) E  { return v[i] }

func (v Vec2[E]) With(i int, c E) Vec2[E] {
	v[i] = c
	return v
}

func (v Vec3[E]) NumComponents() int { return 3 }
func (v Vec3[E]) Component(i int) E  { return v[i] }

func (v Vec3[E]) With(i int, c E) Vec3[E] {
	v[i] = c
	return v
}

func (v Vec4[E]) NumComponents() int { return 4 }
func (v Vec4[E]) Component(i int) E  { return v[i] }

func (v Vec4[E]) With(i int, c E) Vec4[E] {
	v[i] = c
	return v
}

func (v Vec8[E]) NumComponents() int { return 8 }
func (v Vec8[E]) Component(i int) E  { return v[i] }

func (v Vec8[E]) With(i int, c E) Vec8[E] {
	v[i] = c
	return v
}

func (v Vec16[E]) NumComponents() int { return 16 }
func (v Vec16[E]) Component(i int) E  { return v[i] }

func (v Vec16[E]) With(i int, c E) Vec16[E] {
	v[i] = c
	return v
}

// components splits x into one Varying per component.
func components[E hwy.Lanes, V Tuple[E, V]](x Varying[V]) []Varying[E] {
	var zero V
	out := make([]Varying[E], zero.NumComponents())
	for c := range out {
		lanes := make([]E, len(x.lanes))
		for i, v := range x.lanes {
			lanes[i] = v.Component(c)
		}
		out[c] = Varying[E]{lanes: lanes}
	}
	return out
}

// assemble is the inverse of components.
func assemble[E hwy.Lanes, V Tuple[E, V]](parts []Varying[E]) Varying[V] {
	lanes := make([]V, parts[0].Len())
	for c, part := range parts {
		for i, e := range part.lanes {
			lanes[i] = lanes[i].With(c, e)
		}
	}
	return Varying[V]{lanes: lanes}
}

// perComponent applies the scalar collective fn to every component of x.
func perComponent[E hwy.Lanes, V Tuple[E, V]](x Varying[V], fn func(c int, xc Varying[E]) Varying[E]) Varying[V] {
	parts := components[E](x)
	for c := range parts {
		parts[c] = fn(c, parts[c])
	}
	return assemble[E, V](parts)
}

// reduceComponents applies the scalar reduction fn to every component of x.
func reduceComponents[E hwy.Lanes, V Tuple[E, V]](x Varying[V], fn func(c int, xc Varying[E]) E) V {
	var out V
	for c, part := range components[E](x) {
		out = out.With(c, fn(c, part))
	}
	return out
}

// BroadcastVector is Broadcast for vector values. E is the component type,
// e.g. BroadcastVector[float32](g, x, lane) for a Varying[Vec4[float32]].
func BroadcastVector[E hwy.Lanes, V Tuple[E, V]](g Group, x Varying[V], lane int) V {
	ls := requireLockStep("BroadcastVector", g)
	checkLanes("BroadcastVector", g, x)
	if n := LinearRange(g); lane < 0 || lane >= n {
		constraintf("BroadcastVector: source lane %d is not in %s", lane, g)
	}
	return reduceComponents(x, func(_ int, xc Varying[E]) E {
		return broadcastLane(ls, xc.lanes, lane)
	})
}

// ReduceVector reduces every component of x independently with op.
func ReduceVector[E hwy.Lanes, V Tuple[E, V]](g Group, x Varying[V], op IdentityOp[E]) V {
	ls := requireLockStep("ReduceVector", g)
	checkLanes("ReduceVector", g, x)
	return reduceComponents(x, func(_ int, xc Varying[E]) E {
		return reduceLanes("ReduceVector", ls, xc.lanes, xc.Len(), Op[E](op), nil)
	})
}

// ReduceVectorInit is ReduceVector with init's components folded in once.
func ReduceVectorInit[E hwy.Lanes, V Tuple[E, V]](g Group, x Varying[V], init V, op Op[E]) V {
	ls := requireLockStep("ReduceVectorInit", g)
	checkLanes("ReduceVectorInit", g, x)
	return reduceComponents(x, func(c int, xc Varying[E]) E {
		ic := init.Component(c)
		return reduceLanes("ReduceVectorInit", ls, xc.lanes, xc.Len(), op, &ic)
	})
}

// ExclusiveScanVector scans every component of x independently with op.
func ExclusiveScanVector[E hwy.Lanes, V Tuple[E, V]](g Group, x Varying[V], op IdentityOp[E]) Varying[V] {
	ls := requireLockStep("ExclusiveScanVector", g)
	checkLanes("ExclusiveScanVector", g, x)
	id := op.Identity()
	return perComponent(x, func(_ int, xc Varying[E]) Varying[E] {
		return Varying[E]{lanes: scanLanes("ExclusiveScanVector", ls, xc.lanes, xc.Len(), Op[E](op), &id, true)}
	})
}

// ExclusiveScanVectorInit is ExclusiveScanVector seeded with init.
func ExclusiveScanVectorInit[E hwy.Lanes, V Tuple[E, V]](g Group, x Varying[V], init V, op Op[E]) Varying[V] {
	ls := requireLockStep("ExclusiveScanVectorInit", g)
	checkLanes("ExclusiveScanVectorInit", g, x)
	return perComponent(x, func(c int, xc Varying[E]) Varying[E] {
		ic := init.Component(c)
		return Varying[E]{lanes: scanLanes("ExclusiveScanVectorInit", ls, xc.lanes, xc.Len(), op, &ic, true)}
	})
}

// InclusiveScanVector scans every component of x independently with op.
func InclusiveScanVector[E hwy.Lanes, V Tuple[E, V]](g Group, x Varying[V], op IdentityOp[E]) Varying[V] {
	ls := requireLockStep("InclusiveScanVector", g)
	checkLanes("InclusiveScanVector", g, x)
	return perComponent(x, func(_ int, xc Varying[E]) Varying[E] {
		return Varying[E]{lanes: scanLanes("InclusiveScanVector", ls, xc.lanes, xc.Len(), Op[E](op), nil, false)}
	})
}

// InclusiveScanVectorInit is InclusiveScanVector seeded with init.
func InclusiveScanVectorInit[E hwy.Lanes, V Tuple[E, V]](g Group, x Varying[V], init V, op Op[E]) Varying[V] {
	ls := requireLockStep("InclusiveScanVectorInit", g)
	checkLanes("InclusiveScanVectorInit", g, x)
	return perComponent(x, func(c int, xc Varying[E]) Varying[E] {
		ic := init.Component(c)
		return Varying[E]{lanes: scanLanes("InclusiveScanVectorInit", ls, xc.lanes, xc.Len(), op, &ic, false)}
	})
}
