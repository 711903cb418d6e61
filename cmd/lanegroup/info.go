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
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lanegroups/hwy"
	"github.com/ajroetker/go-lanegroups/hwy/contrib/group"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch level and register lane counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dispatch level: %s\n", hwy.CurrentName())
			fmt.Fprintf(out, "register width: %d bytes\n", hwy.CurrentWidth())
			fmt.Fprintf(out, "forced fallback (%s): %t\n", group.FallbackEnvVar, group.ForcedFallback())
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "type\tlanes")
			laneRow[int8](w, "int8")
			laneRow[int16](w, "int16")
			laneRow[int32](w, "int32")
			laneRow[int64](w, "int64")
			laneRow[float32](w, "float32")
			laneRow[float64](w, "float64")
			return w.Flush()
		},
	}
}

func laneRow[T hwy.Lanes](w io.Writer, name string) {
	fmt.Fprintf(w, "%s\t%d\n", name, hwy.MaxLanes[T]())
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify",
		Short: "Print the implementation path of each element type and operator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "type\tcategory\tadd\tmin\tand\tfunc")
			classifyInts[int32](w, "int32")
			classifyInts[uint64](w, "uint64")
			classifyFloats[float32](w, "float32")
			classifyFloats[float64](w, "float64")
			classifyVector[float32](w, "vec4<float32>")
			fmt.Fprintf(w, "string\t%s\t-\t-\t-\t%s\n", group.CategoryOf[string](), group.Classify[string](group.Func[string](nil)))
			return w.Flush()
		},
	}
}

func classifyInts[T hwy.Integers](w io.Writer, name string) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", name, group.CategoryOf[T](),
		group.Classify[T](group.Plus[T]{}), group.Classify[T](group.Minimum[T]{}),
		group.Classify[T](group.BitAnd[T]{}), group.Classify[T](group.Func[T](nil)))
}

func classifyFloats[T hwy.Floats](w io.Writer, name string) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t-\t%s\n", name, group.CategoryOf[T](),
		group.Classify[T](group.Plus[T]{}), group.Classify[T](group.Minimum[T]{}),
		group.Classify[T](group.Func[T](nil)))
}

func classifyVector[E hwy.Floats](w io.Writer, name string) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t-\t%s\n", name, group.CategoryOf[group.Vec4[E]](),
		group.ClassifyVector[E](group.Plus[E]{}), group.ClassifyVector[E](group.Minimum[E]{}),
		group.ClassifyVector[E](group.Func[E](nil)))
}
