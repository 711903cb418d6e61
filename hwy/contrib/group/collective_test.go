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
	"math"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestScanAndReduceExample(t *testing.T) {
	run := func(t *testing.T) {
		sg := newSubGroup(t, 4)
		x := FromLanes(sg, []int32{1, 2, 3, 4})
		assert.Equal(t, []int32{1, 3, 6, 10}, InclusiveScan(sg, x, Plus[int32]{}).Lanes())
		assert.Equal(t, []int32{0, 1, 3, 6}, ExclusiveScan(sg, x, Plus[int32]{}).Lanes())
		assert.Equal(t, int32(10), Reduce(sg, x, Plus[int32]{}))
		assert.Equal(t, []int32{0, 1, 3, 6}, ExclusiveScanInit(sg, x, 0, Plus[int32]{}).Lanes())
	}
	t.Run("native", run)
	t.Run("fallback", func(t *testing.T) {
		withForcedFallback(t)
		run(t)
	})
}

func TestInit(t *testing.T) {
	sg := newSubGroup(t, 5)
	x := FromLanes(sg, []float64{1, 2, 3, 4, 5})
	// init is contributed once, not once per lane.
	assert.Equal(t, 115.0, ReduceInit(sg, x, 100, Plus[float64]{}))
	assert.Equal(t, []float64{100, 101, 103, 106, 110}, ExclusiveScanInit(sg, x, 100, Plus[float64]{}).Lanes())
	assert.Equal(t, []float64{101, 103, 106, 110, 115}, InclusiveScanInit(sg, x, 100, Plus[float64]{}).Lanes())

	// Lane 0's exclusive result is init itself, never folded with its element.
	m := FromLanes(sg, []float64{0, 1, 2, 3, 4})
	assert.Equal(t, []float64{7, 0, 0, 0, 0}, ExclusiveScanInit(sg, m, 7, Multiplies[float64]{}).Lanes())
}

func TestNativeOperators(t *testing.T) {
	values := []int32{5, -3, 12, 7, -8, 0, 9, 2, 11, -1, 4, 6}
	sg := newSubGroup(t, len(values))
	x := FromLanes(sg, values)

	assert.Equal(t, lo.Sum(values), Reduce(sg, x, Plus[int32]{}))
	assert.Equal(t, lo.Min(values), Reduce(sg, x, Minimum[int32]{}))
	assert.Equal(t, lo.Max(values), Reduce(sg, x, Maximum[int32]{}))
	assert.Equal(t, int32(0), Reduce(sg, x, Multiplies[int32]{}))
	assert.Equal(t, lo.Reduce(values, func(acc, v int32, _ int) int32 { return acc | v }, 0), Reduce(sg, x, BitOr[int32]{}))
	assert.Equal(t, lo.Reduce(values, func(acc, v int32, _ int) int32 { return acc & v }, -1), Reduce(sg, x, BitAnd[int32]{}))
	assert.Equal(t, lo.Reduce(values, func(acc, v int32, _ int) int32 { return acc ^ v }, 0), Reduce(sg, x, BitXor[int32]{}))

	mins := InclusiveScan(sg, x, Minimum[int32]{}).Lanes()
	assert.Equal(t, []int32{5, -3, -3, -3, -8, -8, -8, -8, -8, -8, -8, -8}, mins)
	maxs := ExclusiveScan(sg, x, Maximum[int32]{}).Lanes()
	assert.Equal(t, int32(math.MinInt32), maxs[0])
	assert.Equal(t, []int32{5, 5, 12, 12, 12, 12, 12, 12, 12, 12, 12}, maxs[1:])
}

func TestFloatIdentities(t *testing.T) {
	sg := newSubGroup(t, 3)
	x := FromLanes(sg, []float32{2, -1, 4})
	ex := ExclusiveScan(sg, x, Minimum[float32]{}).Lanes()
	assert.True(t, math.IsInf(float64(ex[0]), 1))
	assert.Equal(t, []float32{2, -1}, ex[1:])
	ex = ExclusiveScan(sg, x, Maximum[float32]{}).Lanes()
	assert.True(t, math.IsInf(float64(ex[0]), -1))
	assert.Equal(t, uint16(math.MaxUint16), MaxValue[uint16]())
	assert.Equal(t, int8(math.MinInt8), LowestValue[int8]())
	assert.Equal(t, uint32(math.MaxUint32), AllOnes[uint32]())
}

func TestBroadcast(t *testing.T) {
	run := func(t *testing.T) {
		sg := newSubGroup(t, 7)
		x := Generate(sg, func(lane int) int16 { return int16(10 * lane) })
		for lane := range 7 {
			assert.Equal(t, int16(10*lane), BroadcastFrom(sg, x, lane))
		}
		assert.Equal(t, int16(0), Broadcast(sg, x))
		s := Generate(sg, func(lane int) string { return lo.RandomString(lane+1, lo.LettersCharset) })
		assert.Equal(t, s.Lane(5), BroadcastFrom(sg, s, 5))
		requirePanicIs(t, ErrConstraintViolation, func() { BroadcastFrom(sg, x, 7) })
		requirePanicIs(t, ErrConstraintViolation, func() { BroadcastFrom(sg, x, -1) })
	}
	t.Run("native", run)
	t.Run("fallback", func(t *testing.T) {
		withForcedFallback(t)
		run(t)
	})
}

func TestBroadcastFromID(t *testing.T) {
	wg := newWorkGroup(t, 2, 3, 4)
	x := LinearIDs(wg)
	assert.Equal(t, 17, BroadcastFromID(wg, x, ID{1, 1, 1}))
	ids := LocalIDs(wg)
	assert.Equal(t, ID{0, 2, 3}, BroadcastFromID(wg, ids, ID{0, 2, 3}))
	requirePanicIs(t, ErrConstraintViolation, func() { BroadcastFromID(wg, x, ID{2, 0, 0}) })
}

func TestPredicates(t *testing.T) {
	run := func(t *testing.T) {
		for _, size := range []int{1, 3, 16, 33, 70} {
			sg := newSubGroup(t, size)
			allTrue := Uniform(sg, true)
			assert.True(t, AllOf(sg, allTrue))
			assert.True(t, AnyOf(sg, allTrue))
			assert.False(t, NoneOf(sg, allTrue))

			oneFalse := Generate(sg, func(lane int) bool { return lane != size-1 })
			assert.False(t, AllOf(sg, oneFalse))
			assert.Equal(t, size > 1, AnyOf(sg, oneFalse))

			oneTrue := Generate(sg, func(lane int) bool { return lane == size/2 })
			assert.True(t, AnyOf(sg, oneTrue))
			assert.False(t, NoneOf(sg, oneTrue))
			assert.True(t, NoneOf(sg, Uniform(sg, false)))

			x := LinearIDs(sg)
			assert.True(t, AllOfFunc(sg, x, func(v int) bool { return v < size }))
			assert.False(t, AnyOfFunc(sg, x, func(v int) bool { return v >= size }))
			assert.True(t, NoneOfFunc(sg, x, func(v int) bool { return v < 0 }))
		}
	}
	t.Run("native", run)
	t.Run("fallback", func(t *testing.T) {
		withForcedFallback(t)
		run(t)
	})
}

func TestLeader(t *testing.T) {
	for _, g := range []Group{newSubGroup(t, 1), newSubGroup(t, 9), newWorkGroup(t, 3, 2, 2)} {
		leaders := Leader(g).Lanes()
		assert.Equal(t, 1, lo.Count(leaders, true), "%s", g)
		assert.True(t, leaders[0], "%s", g)
	}
}

func TestWorkGroup(t *testing.T) {
	wg := newWorkGroup(t, 2, 4)
	x := Generate(wg, func(lane int) uint8 { return uint8(lane + 1) })
	assert.Equal(t, uint8(36), Reduce(wg, x, Plus[uint8]{}))
	assert.Equal(t, []uint8{1, 3, 6, 10, 15, 21, 28, 36}, InclusiveScan(wg, x, Plus[uint8]{}).Lanes())

	// No multi-dimensional fallback.
	concat := Func[string](func(a, b string) string { return a + b })
	s := Uniform(wg, "a")
	requirePanicIs(t, ErrConstraintViolation, func() { ReduceInit(wg, s, "", concat) })
	requirePanicIs(t, ErrConstraintViolation, func() { InclusiveScanInit(wg, s, "", concat) })

	// HWY_GROUP_FALLBACK does not apply to work groups.
	withForcedFallback(t)
	assert.Equal(t, uint8(36), Reduce(wg, x, Plus[uint8]{}))
}

func TestSyncCount(t *testing.T) {
	sg := newSubGroup(t, 4)
	x := Uniform(sg, int64(1))
	Reduce(sg, x, Plus[int64]{})
	ExclusiveScan(sg, x, Plus[int64]{})
	Broadcast(sg, x)
	AllOf(sg, Uniform(sg, true))
	NoneOf(sg, Uniform(sg, true))
	assert.Equal(t, 5, sg.syncs)
	Leader(sg)
	assert.Equal(t, 5, sg.syncs)
}

func TestSyncCountComposite(t *testing.T) {
	even := func(v int32) bool { return v%2 == 0 }
	data := []int32{2, 4, 6, 8, 10, 12}
	tests := []struct {
		name  string
		syncs int
		call  func(sg *SubGroup)
	}{
		{"BroadcastFrom", 1, func(sg *SubGroup) { BroadcastFrom(sg, Uniform(sg, int32(1)), 3) }},
		{"AllOfFunc", 1, func(sg *SubGroup) { AllOfFunc(sg, Uniform(sg, int32(2)), even) }},
		{"AnyOfFunc", 1, func(sg *SubGroup) { AnyOfFunc(sg, Uniform(sg, int32(2)), even) }},
		{"NoneOfFunc", 1, func(sg *SubGroup) { NoneOfFunc(sg, Uniform(sg, int32(2)), even) }},
		{"AllOfRange", 1, func(sg *SubGroup) { AllOfRange(sg, data, even) }},
		{"AnyOfRange", 1, func(sg *SubGroup) { AnyOfRange(sg, data, even) }},
		{"NoneOfRange", 1, func(sg *SubGroup) { NoneOfRange(sg, data, even) }},
		{"ForEachStrided", 0, func(sg *SubGroup) { ForEachStrided(sg, len(data), func(int, int) {}) }},
		{"ReduceRange", 1, func(sg *SubGroup) { ReduceRange(sg, data, Plus[int32]{}) }},
		{"InclusiveScanRange", 4, func(sg *SubGroup) {
			InclusiveScanRange(sg, data, make([]int32, len(data)), Plus[int32]{})
		}},
		{"ReduceVector", 2, func(sg *SubGroup) {
			ReduceVector[int32](sg, Uniform(sg, Vec2[int32]{1, 2}), Plus[int32]{})
		}},
		{"BroadcastVector", 3, func(sg *SubGroup) { BroadcastVector[int32](sg, Uniform(sg, Vec3[int32]{}), 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sg := newSubGroup(t, 4)
			tt.call(sg)
			assert.Equal(t, tt.syncs, sg.syncs)
		})
	}
}

func TestVectorAdapter(t *testing.T) {
	sg := newSubGroup(t, 5)
	x := Generate(sg, func(lane int) Vec3[float32] {
		return Vec3[float32]{float32(lane), float32(2 * lane), float32(lane * lane)}
	})
	assert.Equal(t, Vec3[float32]{10, 20, 30}, ReduceVector[float32](sg, x, Plus[float32]{}))
	assert.Equal(t, Vec3[float32]{11, 22, 33}, ReduceVectorInit[float32](sg, x, Vec3[float32]{1, 2, 3}, Plus[float32]{}))
	assert.Equal(t, Vec3[float32]{3, 6, 9}, BroadcastVector[float32](sg, x, 3))

	inc := InclusiveScanVector[float32](sg, x, Plus[float32]{})
	exc := ExclusiveScanVector[float32](sg, x, Plus[float32]{})
	excInit := ExclusiveScanVectorInit[float32](sg, x, Vec3[float32]{1, 1, 1}, Maximum[float32]{})
	incInit := InclusiveScanVectorInit[float32](sg, x, Vec3[float32]{0, 0, 100}, Maximum[float32]{})
	for c := range 3 {
		xc := Map(x, func(v Vec3[float32]) float32 { return v[c] })
		assert.Equal(t, InclusiveScan(sg, xc, Plus[float32]{}).Lanes(), Map(inc, func(v Vec3[float32]) float32 { return v[c] }).Lanes())
		assert.Equal(t, ExclusiveScan(sg, xc, Plus[float32]{}).Lanes(), Map(exc, func(v Vec3[float32]) float32 { return v[c] }).Lanes())
	}
	assert.Equal(t, Vec3[float32]{1, 1, 1}, excInit.Lane(0))
	assert.Equal(t, Vec3[float32]{3, 6, 9}, excInit.Lane(4))
	assert.Equal(t, Vec3[float32]{4, 8, 100}, incInit.Lane(4))

	// Components of an opaque operator take the fallback per component.
	v := Generate(sg, func(lane int) Vec2[uint8] { return Vec2[uint8]{uint8(lane), 1} })
	larger := Func[uint8](func(a, b uint8) uint8 { return max(a, b) })
	assert.Equal(t, Vec2[uint8]{4, 1}, ReduceVectorInit[uint8](sg, v, Vec2[uint8]{}, larger))
}
