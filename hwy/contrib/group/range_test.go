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
	"strings"
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanRangeExample(t *testing.T) {
	sg := newSubGroup(t, 4)
	src := []int32{1, 2, 3, 4, 5, 6, 7}

	dst := make([]int32, len(src))
	rest := ExclusiveScanRangeInit(sg, src, dst, 100, Plus[int32]{})
	assert.Empty(t, rest)
	assert.Equal(t, []int32{100, 101, 103, 106, 110, 115, 121}, dst)
	// Two chunks, two collectives each.
	assert.Equal(t, 4, sg.syncs)

	InclusiveScanRangeInit(sg, src, dst, 100, Plus[int32]{})
	assert.Equal(t, []int32{101, 103, 106, 110, 115, 121, 128}, dst)

	assert.Equal(t, int32(128), ReduceRangeInit(sg, src, 100, Plus[int32]{}))
	assert.Equal(t, int32(28), ReduceRange(sg, src, Plus[int32]{}))
}

func TestScanRangeMatchesSequential(t *testing.T) {
	for _, fallback := range []bool{false, true} {
		if fallback {
			withForcedFallback(t)
		}
		for size := 1; size <= 9; size++ {
			sg := newSubGroup(t, size)
			for n := 0; n <= 40; n++ {
				src := lo.Times(n, func(i int) int64 { return int64(i*i%17 - 5) })
				wantInc := make([]int64, n)
				wantExc := make([]int64, n)
				acc := int64(-4)
				for i, v := range src {
					wantExc[i] = acc
					acc += v
					wantInc[i] = acc
				}

				dst := make([]int64, n+2)
				rest := ExclusiveScanRangeInit(sg, src, dst, -4, Plus[int64]{})
				require.Len(t, rest, 2)
				require.Equalf(t, wantExc, dst[:n], "size %d n %d fallback %v", size, n, fallback)

				rest = InclusiveScanRangeInit(sg, src, dst, -4, Plus[int64]{})
				require.Len(t, rest, 2)
				require.Equalf(t, wantInc, dst[:n], "size %d n %d fallback %v", size, n, fallback)

				require.Equal(t, acc, ReduceRangeInit(sg, src, -4, Plus[int64]{}))
			}
		}
	}
}

func TestScanRangeChained(t *testing.T) {
	sg := newSubGroup(t, 5)
	src := lo.Times(23, func(i int) uint32 { return uint32(3*i + 1) })
	want := make([]uint32, len(src))
	InclusiveScanRange(sg, src, want, Plus[uint32]{})

	// Scan three adjacent pieces, threading the carry through init.
	got := make([]uint32, len(src))
	cursor := got
	var carry uint32
	for _, piece := range [][]uint32{src[:7], src[7:8], src[8:]} {
		cursor = InclusiveScanRangeInit(sg, piece, cursor, carry, Plus[uint32]{})
		carry = got[len(got)-len(cursor)-1]
	}
	assert.Empty(t, cursor)
	assert.Equal(t, want, got)
}

func TestScanRangeNonCommutative(t *testing.T) {
	for size := 1; size <= 6; size++ {
		sg := newSubGroup(t, size)
		src := laneNames(13)
		dst := make([]string, len(src))
		ExclusiveScanRange(sg, src, dst, concat)
		for i := range src {
			require.Equal(t, strings.Join(src[:i], ""), dst[i], "size %d index %d", size, i)
		}
		InclusiveScanRange(sg, src, dst, concat)
		require.Equal(t, strings.Join(src, ""), dst[len(dst)-1])
	}
}

func TestScanRangeInPlace(t *testing.T) {
	sg := newSubGroup(t, 3)
	data := []float64{1, 2, 3, 4, 5}
	ExclusiveScanRange(sg, data, data, Plus[float64]{})
	assert.Equal(t, []float64{0, 1, 3, 6, 10}, data)
}

func TestScanRangeShortDst(t *testing.T) {
	sg := newSubGroup(t, 3)
	err := exceptions.TryCatch[error](func() {
		ExclusiveScanRange(sg, []int8{1, 2, 3}, make([]int8, 2), Plus[int8]{})
	})
	assert.Error(t, err)
}

func TestReduceRange(t *testing.T) {
	sg := newSubGroup(t, 8)
	assert.Equal(t, float32(0), ReduceRange[float32](sg, nil, Plus[float32]{}))
	assert.Equal(t, "init", ReduceRangeInit[string](sg, nil, "init", concat))
	assert.Zero(t, sg.syncs)

	data := lo.Times(100, func(i int) int16 { return int16(i%9 - 4) })
	assert.Equal(t, lo.Max(data), ReduceRange(sg, data, Maximum[int16]{}))
	assert.Equal(t, lo.Min(data), ReduceRange(sg, data, Minimum[int16]{}))
	assert.Equal(t, lo.Sum(data), ReduceRange(sg, data, Plus[int16]{}))
	// One collective regardless of the range length.
	assert.Equal(t, 3, sg.syncs)

	// Fewer elements than lanes: only lanes owning elements take part.
	assert.Equal(t, int16(-4), ReduceRange(sg, data[:3], Minimum[int16]{}))
}

func TestForEachStrided(t *testing.T) {
	sg := newSubGroup(t, 4)
	owner := make([]int, 10)
	var order []int
	ForEachStrided(sg, 10, func(lane, i int) {
		owner[i] = lane
		order = append(order, i)
	})
	assert.Equal(t, []int{0, 1, 2, 3, 0, 1, 2, 3, 0, 1}, owner)
	assert.Equal(t, []int{0, 4, 8, 1, 5, 9, 2, 6, 3, 7}, order)
}

func TestPredicateRanges(t *testing.T) {
	sg := newSubGroup(t, 6)
	data := lo.Range(50)
	positive := func(v int) bool { return v >= 0 }
	assert.True(t, AllOfRange(sg, data, positive))
	assert.True(t, AnyOfRange(sg, data, func(v int) bool { return v == 49 }))
	assert.False(t, AnyOfRange(sg, data, func(v int) bool { return v > 49 }))
	assert.True(t, NoneOfRange(sg, data, func(v int) bool { return v > 49 }))
	assert.False(t, AllOfRange(sg, data, func(v int) bool { return v != 31 }))
	// Exactly one collective per call.
	assert.Equal(t, 5, sg.syncs)

	assert.True(t, AllOfRange(sg, []int{}, positive))
	assert.False(t, AnyOfRange(sg, []int{}, positive))
}
