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
	"reflect"

	"github.com/ajroetker/go-lanegroups/hwy"
)

// IdentityOf returns op's identity element, if op has one.
func IdentityOf[T any](op Op[T]) (T, bool) {
	if id, ok := op.(IdentityOp[T]); ok {
		return id.Identity(), true
	}
	var zero T
	return zero, false
}

// MaxValue returns the identity of Minimum: +Inf for floats, the largest
// representable value for integers.
func MaxValue[T hwy.Lanes]() T {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(math.Inf(1))
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(int64(1)<<(rv.Type().Bits()-1) - 1)
	default:
		rv.SetUint(math.MaxUint64 >> (64 - rv.Type().Bits()))
	}
	return v
}

// LowestValue returns the identity of Maximum: -Inf for floats, the lowest
// representable value for integers.
func LowestValue[T hwy.Lanes]() T {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(math.Inf(-1))
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(int64(-1) << (rv.Type().Bits() - 1))
	default:
		// Unsigned lowest is zero.
	}
	return v
}

// AllOnes returns the identity of BitAnd.
func AllOnes[T hwy.Integers]() T {
	var zero T
	return ^zero
}
