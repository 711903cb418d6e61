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

// Command lanegroup runs lane-group collectives over values given on the
// command line and reports which implementation path they take.
//
// Usage:
//
//	lanegroup info
//	lanegroup classify
//	lanegroup reduce --size 4 --init 100 1 2 3 4 5 6 7          # 128
//	lanegroup scan --size 4 --exclusive --init 100 1 2 3 4 5 6 7
//	lanegroup scan --type string --op concat --size 3 a b c d
//	lanegroup broadcast --size 4 --lane 2 10 20 30 40           # 30
//	lanegroup scan --size 3 -- -3 1 -2 5                         # -3 -2 -4 1
//
// Flags must come before the values. A leading negative value needs "--" in
// front of it.
//
// Set -v=1 to log the dispatch level and the selected path.
package main

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

// options are the flags shared by the collective subcommands.
type options struct {
	size      int
	maxLocal  int
	typ       string
	op        string
	init      string
	exclusive bool
	lane      int
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lanegroup",
		Short:         "Run lock-step lane-group collectives",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	root.PersistentFlags().AddGoFlagSet(klogFlags)

	root.AddCommand(newInfoCmd(), newClassifyCmd())
	for _, kind := range []string{kindReduce, kindScan, kindBroadcast} {
		root.AddCommand(newCollectiveCmd(kind))
	}
	return root
}

func newCollectiveCmd(kind string) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   kind + " [flags] values...",
		Short: collectiveHelp[kind],
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollective(cmd, opts, kind, args)
		},
	}
	addCollectiveFlags(cmd.Flags(), opts, kind)
	// Flags end at the first value so negative values after it are not
	// taken for shorthand flags.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func addCollectiveFlags(flags *pflag.FlagSet, opts *options, kind string) {
	flags.IntVar(&opts.size, "size", 8, "number of lanes in the sub-group")
	flags.IntVar(&opts.maxLocal, "max", 0, "maximum local range the sub-group is carved from (default: --size)")
	flags.StringVar(&opts.typ, "type", "int64", "element type: "+typeNames())
	if kind != kindBroadcast {
		flags.StringVar(&opts.op, "op", "add", "operator: add, mul, min, max, and, or, xor, or concat for strings")
		flags.StringVar(&opts.init, "init", "", "initial value, folded in exactly once")
	}
	if kind == kindScan {
		flags.BoolVar(&opts.exclusive, "exclusive", false, "exclusive instead of inclusive scan")
	}
	if kind == kindBroadcast {
		flags.IntVar(&opts.lane, "lane", 0, "source lane")
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
