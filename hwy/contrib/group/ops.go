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

import "github.com/ajroetker/go-lanegroups/hwy"

// Op is a pure, associative binary operation over T. Associativity is
// assumed, not checked.
type Op[T any] interface {
	Apply(a, b T) T
}

// IdentityOp is an Op with a registered identity element e, such that
// Apply(e, x) == x for every x.
type IdentityOp[T any] interface {
	Op[T]
	Identity() T
}

// OpCode names the operators that have an accelerated register path.
type OpCode int

const (
	// OpNone marks operators without an accelerated path.
	OpNone OpCode = iota
	OpAdd
	OpMul
	OpMin
	OpMax
	OpAnd
	OpOr
	OpXor
)

func (c OpCode) String() string {
	switch c {
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	case OpMin:
		return "min"
	case OpMax:
		return "max"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpXor:
		return "xor"
	default:
		return "none"
	}
}

// nativeOp is implemented by the registered operators only.
type nativeOp interface {
	opCode() OpCode
}

// OpCodeOf returns the register operation op maps to, or OpNone.
func OpCodeOf[T any](op Op[T]) OpCode {
	if n, ok := op.(nativeOp); ok {
		return n.opCode()
	}
	return OpNone
}

// Plus is addition.
type Plus[T hwy.Lanes] struct{}

func (Plus[T]) Apply(a, b T) T { return a + b }
func (Plus[T]) Identity() T    { return 0 }
func (Plus[T]) opCode() OpCode { return OpAdd }

// Multiplies is multiplication.
type Multiplies[T hwy.Lanes] struct{}

func (Multiplies[T]) Apply(a, b T) T { return a * b }
func (Multiplies[T]) Identity() T    { return 1 }
func (Multiplies[T]) opCode() OpCode { return OpMul }

// Minimum keeps the smaller operand.
type Minimum[T hwy.Lanes] struct{}

func (Minimum[T]) Apply(a, b T) T { return min(a, b) }
func (Minimum[T]) Identity() T    { return MaxValue[T]() }
func (Minimum[T]) opCode() OpCode { return OpMin }

// Maximum keeps the larger operand.
type Maximum[T hwy.Lanes] struct{}

func (Maximum[T]) Apply(a, b T) T { return max(a, b) }
func (Maximum[T]) Identity() T    { return LowestValue[T]() }
func (Maximum[T]) opCode() OpCode { return OpMax }

// BitAnd is bitwise AND.
type BitAnd[T hwy.Integers] struct{}

func (BitAnd[T]) Apply(a, b T) T { return a & b }
func (BitAnd[T]) Identity() T    { return AllOnes[T]() }
func (BitAnd[T]) opCode() OpCode { return OpAnd }

// BitOr is bitwise OR.
type BitOr[T hwy.Integers] struct{}

func (BitOr[T]) Apply(a, b T) T { return a | b }
func (BitOr[T]) Identity() T    { return 0 }
func (BitOr[T]) opCode() OpCode { return OpOr }

// BitXor is bitwise XOR.
type BitXor[T hwy.Integers] struct{}

func (BitXor[T]) Apply(a, b T) T { return a ^ b }
func (BitXor[T]) Identity() T    { return 0 }
func (BitXor[T]) opCode() OpCode { return OpXor }

// LogicalAnd is boolean conjunction. It has an identity but no register path.
type LogicalAnd struct{}

func (LogicalAnd) Apply(a, b bool) bool { return a && b }
func (LogicalAnd) Identity() bool       { return true }

// LogicalOr is boolean disjunction.
type LogicalOr struct{}

func (LogicalOr) Apply(a, b bool) bool { return a || b }
func (LogicalOr) Identity() bool       { return false }

// Func adapts an associative function to Op. It has no identity, so it can
// only be used with the *Init variants of scans and reductions.
type Func[T any] func(a, b T) T

func (f Func[T]) Apply(a, b T) T { return f(a, b) }

// WithIdentity pairs an associative function with its identity element.
type WithIdentity[T any] struct {
	Fn      func(a, b T) T
	Neutral T
}

func (w WithIdentity[T]) Apply(a, b T) T { return w.Fn(a, b) }
func (w WithIdentity[T]) Identity() T    { return w.Neutral }
