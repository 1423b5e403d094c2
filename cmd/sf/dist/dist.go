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

// Package dist implements the subcommand exporting pairwise distances.
package dist

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/madronegeo/sf"
	"github.com/madronegeo/sf/cmd/sf/cli"
	"github.com/madronegeo/sf/unit"
)

var against *os.File

func init() {
	cli.RootCmd.AddCommand(distCmd)

	flags := distCmd.Flags()
	flags.VarP(cli.NewReaderValue(nil, &against, "file"), "against", "a",
		"dataset forming the matrix columns (the input itself when omitted)")
	flags.StringP("unit", "u", "", "length unit for distances (CRS unit when omitted)")
	flags.Float64P("within", "w", 0, "write only row,col,distance pairs within this distance")
	flags.Uint16P("cpu", "c", sf.DefaultNCpu(), "number of CPUs to use")
	flags.StringP("output", "o", "", "output file (stdout when omitted)")
}

var distCmd = &cobra.Command{
	Use:     "dist <dataset>",
	Aliases: []string{"nearest"},
	Short:   "Export pairwise distances between features",
	Long: `Compute the distance from every feature of a dataset to every feature of
another (or to every other feature of the same dataset) and write the result
as CSV: a dense matrix, or row,col,distance pairs when --within caps the
distance of interest.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		unitName, err := flags.GetString("unit")
		if err != nil {
			log.Fatal(err)
		}

		within, err := flags.GetFloat64("within")
		if err != nil {
			log.Fatal(err)
		}

		ncpu, err := flags.GetUint16("cpu")
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

		cols := rows.Collection
		if against != nil {
			ds, err := cli.OpenDatasetFile(against)
			if err != nil {
				log.Fatal(err)
			}

			cols = ds.Collection
		}

		m, err := sf.DistanceMatrix(rows.Collection, cols, sf.WithWorkers(ncpu))
		if err != nil {
			log.Fatal(err)
		}

		if unitName != "" {
			target, err := unit.ParseUnit(unitName)
			if err != nil {
				log.Fatal(err)
			}

			m, err = m.Convert(target)
			if err != nil {
				log.Fatal(err)
			}
		}

		w, done, err := cli.CreateOutput(output)
		if err != nil {
			log.Fatal(err)
		}

		if within > 0 {
			err = writePairsWithin(w, m, within)
		} else {
			err = m.WriteCSV(w)
		}
		if err != nil {
			log.Fatal(err)
		}

		if err := done(); err != nil {
			log.Fatal(err)
		}
	},
}

// writePairsWithin writes the row,col,distance triples no farther apart than
// the limit, in row-major order.
func writePairsWithin(w io.Writer, m *sf.Distances, limit float64) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"row", "col", "distance"}); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}

	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v := m.At(i, j)
			if v > limit {
				continue
			}

			record := []string{
				strconv.Itoa(i),
				strconv.Itoa(j),
				strconv.FormatFloat(v, 'f', -1, 64),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("could not write pair %d,%d: %w", i, j, err)
			}
		}
	}

	cw.Flush()

	return cw.Error()
}
