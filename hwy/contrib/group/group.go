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
	"reflect"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/ajroetker/go-lanegroups/hwy/contrib/workerpool"
)

// Group describes the lane topology of one invocation. Groups are transient:
// create one per invocation and do not reuse it for another.
type Group interface {
	// LocalRange returns the per-dimension local extents.
	LocalRange() Range

	// MaxLocalRange returns the largest number of lanes a group of this kind
	// can hold.
	MaxLocalRange() int

	String() string
}

// lockStep is the capability of groups whose lanes execute collectives
// together. Only groups implementing it can run collectives.
type lockStep interface {
	Group

	// flat reports whether the group is a flattened 1-D lane set with the
	// Shuffle/ShuffleXor exchange capability required by the fallback.
	flat() bool

	// sync records one collective call.
	sync()

	// ready reports whether the receiver was built by its constructor: not a
	// nil pointer and holding at least one lane.
	ready() bool
}

// requireLockStep returns g's lock-step capability. It panics with
// ErrUnsupportedOperation if g is nil (including a typed nil) or has no
// lock-step capability, and with ErrConstraintViolation if g has no lanes.
func requireLockStep(opName string, g Group) lockStep {
	if g == nil {
		unsupported(opName, g)
	}
	ls, ok := g.(lockStep)
	if !ok {
		unsupported(opName, g)
	}
	if !ls.ready() {
		if reflect.ValueOf(ls).IsNil() {
			unsupported(opName, g)
		}
		constraintf("%s: %s has no usable lanes, create it with NewSubGroup or NewWorkGroup", opName, g)
	}
	return ls
}

// LinearRange returns the number of lanes of g.
func LinearRange(g Group) int {
	return g.LocalRange().Size()
}

// SubGroup is a flat lock-step group of Size() lanes carved out of a register
// of MaxLocalRange() lanes.
type SubGroup struct {
	size, maxLocal int
	syncs          int
}

var _ lockStep = (*SubGroup)(nil)

// SubGroupOption configures NewSubGroup.
type SubGroupOption func(*SubGroup)

// WithMaxLocalRange sets the register width the sub-group is carved from.
// The default is the sub-group size itself.
func WithMaxLocalRange(n int) SubGroupOption {
	return func(sg *SubGroup) {
		sg.maxLocal = n
	}
}

// NewSubGroup creates a flat lock-step group with size lanes.
func NewSubGroup(size int, opts ...SubGroupOption) (*SubGroup, error) {
	if size <= 0 {
		return nil, errors.Errorf("sub-group size must be positive, got %d", size)
	}
	sg := &SubGroup{size: size, maxLocal: size}
	for _, opt := range opts {
		opt(sg)
	}
	if sg.size > sg.maxLocal {
		return nil, errors.Errorf("sub-group size %d exceeds its maximum local range %d", sg.size, sg.maxLocal)
	}
	klog.V(2).Infof("group: created %s", sg)
	return sg, nil
}

// Size returns the number of lanes.
func (sg *SubGroup) Size() int {
	return sg.size
}

// LocalRange implements Group.
func (sg *SubGroup) LocalRange() Range {
	return Range{extents: [MaxRank]int{sg.size, 0, 0}, rank: 1}
}

// MaxLocalRange implements Group.
func (sg *SubGroup) MaxLocalRange() int {
	return sg.maxLocal
}

func (sg *SubGroup) String() string {
	return fmt.Sprintf("SubGroup(size=%d, max=%d)", sg.size, sg.maxLocal)
}

func (sg *SubGroup) flat() bool { return true }
func (sg *SubGroup) sync()      { sg.syncs++ }

func (sg *SubGroup) ready() bool { return sg != nil && sg.size > 0 && sg.size <= sg.maxLocal }

// WorkGroup is a lock-step group with 1 to 3 dimensions. It supports native
// operators only.
type WorkGroup struct {
	r     Range
	syncs int
}

var _ lockStep = (*WorkGroup)(nil)

// NewWorkGroup creates a lock-step group with the given local extents.
func NewWorkGroup(extents ...int) (*WorkGroup, error) {
	r, err := NewRange(extents...)
	if err != nil {
		return nil, errors.WithMessage(err, "NewWorkGroup")
	}
	wg := &WorkGroup{r: r}
	klog.V(2).Infof("group: created %s", wg)
	return wg, nil
}

// LocalRange implements Group.
func (wg *WorkGroup) LocalRange() Range {
	return wg.r
}

// MaxLocalRange implements Group.
func (wg *WorkGroup) MaxLocalRange() int {
	return wg.r.Size()
}

func (wg *WorkGroup) String() string {
	return fmt.Sprintf("WorkGroup%s", wg.r)
}

func (wg *WorkGroup) flat() bool { return false }
func (wg *WorkGroup) sync()      { wg.syncs++ }

func (wg *WorkGroup) ready() bool { return wg != nil && wg.r.Size() > 0 }

// HostGroup is a lane topology whose lanes run independently on a worker
// pool. Its lanes do not execute in lock-step, so it offers no collectives:
// every collective called on it panics with ErrUnsupportedOperation.
type HostGroup struct {
	r    Range
	pool *workerpool.Pool
}

// NewHostGroup creates a HostGroup whose lanes run on pool.
func NewHostGroup(pool *workerpool.Pool, extents ...int) (*HostGroup, error) {
	if pool == nil {
		return nil, errors.New("NewHostGroup requires a worker pool")
	}
	r, err := NewRange(extents...)
	if err != nil {
		return nil, errors.WithMessage(err, "NewHostGroup")
	}
	return &HostGroup{r: r, pool: pool}, nil
}

// LocalRange implements Group.
func (hg *HostGroup) LocalRange() Range {
	return hg.r
}

// MaxLocalRange implements Group.
func (hg *HostGroup) MaxLocalRange() int {
	return hg.r.Size()
}

func (hg *HostGroup) String() string {
	return fmt.Sprintf("HostGroup%s", hg.r)
}

// ForEachLane runs fn once per lane, concurrently, and returns when all lanes
// are done. Lanes must not communicate with each other.
func (hg *HostGroup) ForEachLane(fn func(linear int, id ID)) {
	hg.pool.ForEach(hg.r.Size(), func(l int) {
		fn(l, IDFromLinear(hg.r, l))
	})
}

// ForEachBlock splits the lanes into one contiguous block of linear ids per
// worker and runs fn on every block concurrently.
func (hg *HostGroup) ForEachBlock(fn func(start, end int)) {
	hg.pool.ParallelFor(hg.r.Size(), fn)
}
