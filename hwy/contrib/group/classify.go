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

// TypeCategory is the coarse kind of a collective's element type.
type TypeCategory int

const (
	// CategoryOpaque is any type without register arithmetic. Values are only
	// copied, never combined by register instructions.
	CategoryOpaque TypeCategory = iota

	// CategoryScalar is one of the hwy lane types.
	CategoryScalar

	// CategoryVector is a fixed-width tuple of lane-typed components, see Vec4.
	CategoryVector
)

func (c TypeCategory) String() string {
	switch c {
	case CategoryScalar:
		return "scalar"
	case CategoryVector:
		return "vector"
	default:
		return "opaque"
	}
}

// Path is the implementation a collective resolves to.
type Path int

const (
	// PathFallback is the butterfly exchange over Shuffle/ShuffleXor.
	PathFallback Path = iota

	// PathNative uses register reductions and prefix scans.
	PathNative

	// PathNativeVector runs PathNative once per vector component.
	PathNativeVector

	// PathFallbackVector runs PathFallback once per vector component.
	PathFallbackVector
)

func (p Path) String() string {
	switch p {
	case PathNative:
		return "native"
	case PathNativeVector:
		return "native-vector"
	case PathFallbackVector:
		return "fallback-vector"
	default:
		return "fallback"
	}
}

// CategoryOf returns the category of T. Named types over lane types (e.g.
// `type Celsius float32`) are opaque: they have no register kernel.
func CategoryOf[T any]() TypeCategory {
	var zero T
	if _, ok := any(zero).(tuple); ok {
		return CategoryVector
	}
	if isLaneType[T]() {
		return CategoryScalar
	}
	return CategoryOpaque
}

// IsNative reports whether op over T has a register implementation: op must be
// one of Plus, Multiplies, Minimum, Maximum, BitAnd, BitOr or BitXor and T one
// of the hwy lane types.
//
// The result depends only on the static types involved, so every call site
// always resolves to the same path.
func IsNative[T any](op Op[T]) bool {
	_, ok := resolveNative[T](OpCodeOf(op))
	return ok
}

// Classify returns the path a scalar collective with op over T takes on a
// SubGroup. Forced fallback (HWY_GROUP_FALLBACK) is not reflected here.
func Classify[T any](op Op[T]) Path {
	if IsNative(op) {
		return PathNative
	}
	return PathFallback
}

// ClassifyVector returns the path of a vector collective whose components of
// type E are combined with op.
func ClassifyVector[E hwy.Lanes](op Op[E]) Path {
	if IsNative(op) {
		return PathNativeVector
	}
	return PathFallbackVector
}

// resolvePath selects the implementation of a reduce or scan on ls. It returns
// the native implementation, or nil for the butterfly fallback. Non-native
// pairs on groups without the flat exchange capability panic with
// ErrConstraintViolation.
func resolvePath[T any](opName string, ls lockStep, op Op[T]) nativeImpl[T] {
	if !(forceFallback && ls.flat()) {
		if impl, ok := resolveNative[T](OpCodeOf(op)); ok {
			return impl
		}
	}
	if !ls.flat() {
		constraintf("%s: %T over %T has no register path and %s has no fallback", opName, op, *new(T), ls)
	}
	if n := LinearRange(ls); n > ls.MaxLocalRange() {
		constraintf("%s: fallback needs %d lanes but %s holds at most %d", opName, n, ls, ls.MaxLocalRange())
	}
	return nil
}
