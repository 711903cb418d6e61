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
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// MaxRank is the highest number of dimensions a group's local range may have.
const MaxRank = 3

// Range holds the per-dimension local extents of a group in row-major
// order: dimension 0 varies slowest, the last dimension fastest.
type Range struct {
	extents [MaxRank]int
	rank    int
}

// NewRange returns a Range with 1 to 3 positive extents.
func NewRange(extents ...int) (Range, error) {
	if len(extents) == 0 || len(extents) > MaxRank {
		return Range{}, errors.Errorf("group range must have 1 to %d dimensions, got %d", MaxRank, len(extents))
	}
	var r Range
	for d, e := range extents {
		if e <= 0 {
			return Range{}, errors.Errorf("group range dimension %d has extent %d, it must be positive", d, e)
		}
		r.extents[d] = e
	}
	r.rank = len(extents)
	return r, nil
}

// Rank returns the number of dimensions.
func (r Range) Rank() int {
	return r.rank
}

// Extent returns the extent of dimension d, or 1 for dimensions beyond Rank.
func (r Range) Extent(d int) int {
	if d < 0 || d >= r.rank {
		return 1
	}
	return r.extents[d]
}

// Extents returns a copy of the per-dimension extents.
func (r Range) Extents() []int {
	return append([]int(nil), r.extents[:r.rank]...)
}

// Size returns the product of the extents, the number of lanes.
func (r Range) Size() int {
	if r.rank == 0 {
		return 0
	}
	size := 1
	for _, e := range r.extents[:r.rank] {
		size *= e
	}
	return size
}

// Contains reports whether id addresses a lane of r.
func (r Range) Contains(id ID) bool {
	for d := range MaxRank {
		if id[d] < 0 || id[d] >= r.Extent(d) {
			return false
		}
	}
	return r.rank > 0
}

func (r Range) String() string {
	parts := make([]string, r.rank)
	for d, e := range r.extents[:r.rank] {
		parts[d] = fmt.Sprint(e)
	}
	return "[" + strings.Join(parts, "x") + "]"
}

// ID is a multi-dimensional local lane id. Coordinates beyond the range's
// rank are 0.
type ID [MaxRank]int

// LinearID flattens id within r using row-major order. For a 1-D range it is
// id[0] itself.
func LinearID(r Range, id ID) int {
	switch r.rank {
	case 1:
		return id[0]
	case 2:
		return id[0]*r.extents[1] + id[1]
	default:
		return (id[0]*r.extents[1]+id[1])*r.extents[2] + id[2]
	}
}

// IDFromLinear is the inverse of LinearID:
//
//	2-D: id0 = l / e1, id1 = l % e1
//	3-D: id0 = l / (e1*e2), id1 = (l / e2) % e1, id2 = l % e2
func IDFromLinear(r Range, linear int) ID {
	switch r.rank {
	case 1:
		return ID{linear, 0, 0}
	case 2:
		return ID{linear / r.extents[1], linear % r.extents[1], 0}
	default:
		e1, e2 := r.extents[1], r.extents[2]
		return ID{linear / (e1 * e2), (linear / e2) % e1, linear % e2}
	}
}
