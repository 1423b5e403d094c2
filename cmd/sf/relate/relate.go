// Copyright 2025 the original author or authors.
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

// Package relate implements the subcommand computing a spatial predicate
// matrix between two datasets.
package relate

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/madronegeo/sf"
	"github.com/madronegeo/sf/cmd/sf/cli"
	"github.com/madronegeo/sf/geom"
)

func init() {
	cli.RootCmd.AddCommand(relateCmd)

	flags := relateCmd.Flags()
	flags.StringP("predicate", "p", "intersects", "spatial predicate (intersects, within)")
	flags.Bool("sparse", false, "write matching row,col pairs instead of a dense 0/1 matrix")
	flags.Uint16P("cpu", "c", sf.DefaultNCpu(), "number of CPUs to use")
	flags.Bool("no-prefilter", false, "skip the bounding-box index and test every pair")
	flags.StringP("output", "o", "", "output file (stdout when omitted)")
}

var relateCmd = &cobra.Command{
	Use:   "relate <dataset> <against>",
	Short: "Relate two datasets by a spatial predicate",
	Long:  "Evaluate a spatial predicate between every feature of one dataset and every feature of another, and write the resulting matrix as CSV",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		predicate, err := flags.GetString("predicate")
		if err != nil {
			log.Fatal(err)
		}

		sparse, err := flags.GetBool("sparse")
		if err != nil {
			log.Fatal(err)
		}

		ncpu, err := flags.GetUint16("cpu")
		if err != nil {
			log.Fatal(err)
		}

		noPrefilter, err := flags.GetBool("no-prefilter")
		if err != nil {
			log.Fatal(err)
		}

		output, err := flags.GetString("output")
		if err != nil {
			log.Fatal(err)
		}

		rows, err := cli.OpenDataset(args[0])
		if err != nil {
			log.Fatal(err)
		}

		cols, err := cli.OpenDataset(args[1])
		if err != nil {
			log.Fatal(err)
		}

		opts := []sf.MatrixOption{sf.WithWorkers(ncpu)}
		if noPrefilter {
			opts = append(opts, sf.WithoutPrefilter())
		}

		r, err := runRelate(rows.Collection, cols.Collection, predicate, opts...)
		if err != nil {
			log.Fatal(err)
		}

		w, done, err := cli.CreateOutput(output)
		if err != nil {
			log.Fatal(err)
		}

		if sparse {
			err = r.WritePairsCSV(w)
		} else {
			err = r.WriteCSV(w)
		}
		if err != nil {
			log.Fatal(err)
		}

		if err := done(); err != nil {
			log.Fatal(err)
		}
	},
}

func runRelate(rows, cols geom.FeatureCollection, predicate string, opts ...sf.MatrixOption) (*sf.Relation, error) {
	switch predicate {
	case "intersects":
		return sf.IntersectsMatrix(rows, cols, opts...)
	case "within":
		return sf.WithinMatrix(rows, cols, opts...)
	default:
		return nil, fmt.Errorf("unknown predicate %q", predicate)
	}
}
