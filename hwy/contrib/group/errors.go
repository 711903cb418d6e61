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
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedOperation is raised when a collective is invoked on a
	// group without lock-step capability.
	ErrUnsupportedOperation = errors.New("operation not supported outside a lock-step lane group")

	// ErrConstraintViolation is raised when an element type, operator or
	// group shape cannot be used by the requested collective.
	ErrConstraintViolation = errors.New("collective constraint violated")
)

// unsupported panics with ErrUnsupportedOperation. The lane group cannot
// recover, so there is no error return.
func unsupported(opName string, g Group) {
	panic(errors.Wrapf(ErrUnsupportedOperation, "%s called on %s", opName, g))
}

func constraintf(format string, args ...any) {
	panic(errors.Wrapf(ErrConstraintViolation, format, args...))
}

// checkLanes verifies that x carries exactly one value per lane of g.
func checkLanes[T any](opName string, g Group, x Varying[T]) {
	if n := LinearRange(g); x.Len() != n {
		exceptions.Panicf("%s: Varying has %d lanes but %s has %d", opName, x.Len(), g, n)
	}
}
