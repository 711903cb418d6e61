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

package hwy

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPrefixScans(t *testing.T) {
	v := Vec[int32]{data: []int32{3, 1, 4, 1, 5, 9, 2, 6}}
	tests := []struct {
		name string
		got  Vec[int32]
		want []int32
	}{
		{"PrefixSum", PrefixSum(v), []int32{3, 4, 8, 9, 14, 23, 25, 31}},
		{"PrefixMul", PrefixMul(v), []int32{3, 3, 12, 12, 60, 540, 1080, 6480}},
		{"PrefixMin", PrefixMin(v, math.MaxInt32), []int32{3, 1, 1, 1, 1, 1, 1, 1}},
		{"PrefixMax", PrefixMax(v, math.MinInt32), []int32{3, 3, 4, 4, 5, 9, 9, 9}},
		{"PrefixAnd", PrefixAnd(v), []int32{3, 1, 0, 0, 0, 0, 0, 0}},
		{"PrefixOr", PrefixOr(v), []int32{3, 3, 7, 7, 7, 15, 15, 15}},
		{"PrefixXor", PrefixXor(v), []int32{3, 2, 6, 7, 2, 11, 9, 15}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got.Data()); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

// Widths that are not a power of two still scan every lane.
func TestPrefixSumOddWidth(t *testing.T) {
	for n := 1; n <= 17; n++ {
		data := make([]float64, n)
		want := make([]float64, n)
		var acc float64
		for i := range data {
			data[i] = float64(i + 1)
			acc += data[i]
			want[i] = acc
		}
		got := PrefixSum(Vec[float64]{data: data})
		if diff := cmp.Diff(want, got.Data()); diff != "" {
			t.Errorf("PrefixSum(n=%d) mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestProcessWithTail(t *testing.T) {
	lanes := MaxLanes[float32]()
	for _, size := range []int{0, 1, lanes - 1, lanes, lanes + 1, 3*lanes + 2} {
		var full, tail, covered int
		ProcessWithTail[float32](size,
			func(offset int) {
				full++
				covered += lanes
			},
			func(offset, count int) {
				tail++
				covered += count
				if offset != size-count {
					t.Errorf("size=%d: tail offset %d, want %d", size, offset, size-count)
				}
			},
		)
		if covered != size {
			t.Errorf("size=%d: covered %d elements", size, covered)
		}
		if full != size/lanes {
			t.Errorf("size=%d: %d full registers, want %d", size, full, size/lanes)
		}
		if want := min(1, size%lanes); tail != want {
			t.Errorf("size=%d: %d tail calls, want %d", size, tail, want)
		}
	}
}

func TestTailMask(t *testing.T) {
	lanes := MaxLanes[int16]()
	for count := -1; count <= lanes+1; count++ {
		m := TailMask[int16](count)
		want := max(0, min(count, lanes))
		if m.CountTrue() != want {
			t.Errorf("TailMask(%d).CountTrue() = %d, want %d", count, m.CountTrue(), want)
		}
	}
}
