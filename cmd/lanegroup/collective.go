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

package main

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/ajroetker/go-lanegroups/hwy"
	"github.com/ajroetker/go-lanegroups/hwy/contrib/group"
)

const (
	kindReduce    = "reduce"
	kindScan      = "scan"
	kindBroadcast = "broadcast"
)

var collectiveHelp = map[string]string{
	kindReduce:    "Reduce the values with an operator, one element per lane per chunk",
	kindScan:      "Scan the values with an operator, one element per lane per chunk",
	kindBroadcast: "Broadcast one lane's value to the whole sub-group",
}

// elementType binds a --type name to its parser and operator table.
type elementType struct {
	run func(cmd *cobra.Command, opts *options, kind string, args []string) error
}

var elementTypes = map[string]elementType{
	"int32":   {run: typed(integerOps[int32](), parseSigned[int32])},
	"int64":   {run: typed(integerOps[int64](), parseSigned[int64])},
	"uint32":  {run: typed(integerOps[uint32](), parseUnsigned[uint32])},
	"float32": {run: typed(numericOps[float32](), parseFloat[float32])},
	"float64": {run: typed(numericOps[float64](), parseFloat[float64])},
	"string":  {run: typed(stringOps(), func(s string) (string, error) { return s, nil })},
}

func typeNames() string {
	names := lo.Keys(elementTypes)
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func numericOps[T hwy.Lanes]() map[string]group.IdentityOp[T] {
	return map[string]group.IdentityOp[T]{
		"add": group.Plus[T]{},
		"mul": group.Multiplies[T]{},
		"min": group.Minimum[T]{},
		"max": group.Maximum[T]{},
	}
}

func integerOps[T hwy.Integers]() map[string]group.IdentityOp[T] {
	return lo.Assign(numericOps[T](), map[string]group.IdentityOp[T]{
		"and": group.BitAnd[T]{},
		"or":  group.BitOr[T]{},
		"xor": group.BitXor[T]{},
	})
}

func stringOps() map[string]group.IdentityOp[string] {
	return map[string]group.IdentityOp[string]{
		"concat": group.WithIdentity[string]{
			Fn:      func(a, b string) string { return a + b },
			Neutral: "",
		},
	}
}

func parseSigned[T hwy.SignedInts](s string) (T, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil || int64(T(v)) != v {
		return 0, errors.Errorf("%q is not a valid %T", s, T(0))
	}
	return T(v), nil
}

func parseUnsigned[T hwy.UnsignedInts](s string) (T, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil || uint64(T(v)) != v {
		return 0, errors.Errorf("%q is not a valid %T", s, T(0))
	}
	return T(v), nil
}

func parseFloat[T hwy.Floats](s string) (T, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || (!math.IsInf(v, 0) && math.IsInf(float64(T(v)), 0)) {
		return 0, errors.Errorf("%q is not a valid %T", s, T(0))
	}
	return T(v), nil
}

func runCollective(cmd *cobra.Command, opts *options, kind string, args []string) error {
	et, ok := elementTypes[opts.typ]
	if !ok {
		return errors.Errorf("unknown --type %q, choose one of %s", opts.typ, typeNames())
	}
	return et.run(cmd, opts, kind, args)
}

// typed returns the runner of the collective subcommands for element type T.
func typed[T any](ops map[string]group.IdentityOp[T], parse func(string) (T, error)) func(*cobra.Command, *options, string, []string) error {
	return func(cmd *cobra.Command, opts *options, kind string, args []string) error {
		values := make([]T, len(args))
		for i, arg := range args {
			v, err := parse(arg)
			if err != nil {
				return errors.WithMessagef(err, "value #%d", i)
			}
			values[i] = v
		}
		sg, err := group.NewSubGroup(opts.size, group.WithMaxLocalRange(max(opts.maxLocal, opts.size)))
		if err != nil {
			return err
		}
		if kind == kindBroadcast {
			return broadcast(cmd, sg, opts, values)
		}

		op, ok := ops[opts.op]
		if !ok {
			names := lo.Keys(ops)
			sort.Strings(names)
			return errors.Errorf("operator %q is not available for --type %s, choose one of %s",
				opts.op, opts.typ, strings.Join(names, ", "))
		}
		klog.V(1).Infof("lanegroup: %s with %s over %s on %s takes the %s path",
			kind, opts.op, opts.typ, sg, group.Classify[T](op))

		var init *T
		if cmd.Flags().Changed("init") {
			v, err := parse(opts.init)
			if err != nil {
				return errors.WithMessage(err, "--init")
			}
			init = &v
		}

		var out []T
		err = exceptions.TryCatch[error](func() {
			switch {
			case kind == kindReduce && init != nil:
				out = []T{group.ReduceRangeInit(sg, values, *init, group.Op[T](op))}
			case kind == kindReduce:
				out = []T{group.ReduceRange(sg, values, op)}
			default:
				out = make([]T, len(values))
				scanRange(sg, values, out, op, init, opts.exclusive)
			}
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatValues(out))
		return nil
	}
}

func scanRange[T any](sg *group.SubGroup, src, dst []T, op group.IdentityOp[T], init *T, exclusive bool) {
	switch {
	case exclusive && init != nil:
		group.ExclusiveScanRangeInit(sg, src, dst, *init, group.Op[T](op))
	case exclusive:
		group.ExclusiveScanRange(sg, src, dst, op)
	case init != nil:
		group.InclusiveScanRangeInit(sg, src, dst, *init, group.Op[T](op))
	default:
		group.InclusiveScanRange(sg, src, dst, op)
	}
}

func broadcast[T any](cmd *cobra.Command, sg *group.SubGroup, opts *options, values []T) error {
	if len(values) != sg.Size() {
		return errors.Errorf("broadcast needs one value per lane: got %d values for %d lanes", len(values), sg.Size())
	}
	var v T
	err := exceptions.TryCatch[error](func() {
		v = group.BroadcastFrom(sg, group.FromLanes(sg, values), opts.lane)
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

func formatValues[T any](values []T) string {
	return strings.Join(lo.Map(values, func(v T, _ int) string { return fmt.Sprint(v) }), " ")
}
