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

// Package reproject implements the subcommand transforming a dataset into
// another coordinate reference system.
package reproject

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/madronegeo/sf/cmd/sf/cli"
	"github.com/madronegeo/sf/crs"
	"github.com/madronegeo/sf/geom"
)

func init() {
	cli.RootCmd.AddCommand(reprojectCmd)

	flags := reprojectCmd.Flags()
	flags.Int32P("to", "t", 0, "EPSG code of the target coordinate reference system")
	flags.StringP("output", "o", "", "output file (stdout GeoJSON when omitted)")

	if err := reprojectCmd.MarkFlagRequired("to"); err != nil {
		panic(err)
	}
}

var reprojectCmd = &cobra.Command{
	Use:   "reproject [<dataset>]",
	Short: "Transform a dataset into another CRS",
	Long:  "Transform every feature of a dataset into the target coordinate reference system, preserving order and attributes",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		to, err := flags.GetInt32("to")
		if err != nil {
			log.Fatal(err)
		}

		output, err := flags.GetString("output")
		if err != nil {
			log.Fatal(err)
		}

		var path string
		if len(args) == 1 {
			path = args[0]
		}

		ds, err := cli.OpenDatasetOrStdin(path)
		if err != nil {
			log.Fatal(err)
		}

		projected, err := crs.TransformCollection(ds.Collection, geom.SRID(to))
		if err != nil {
			log.Fatal(err)
		}

		if err := cli.WriteCollection(output, projected); err != nil {
			log.Fatal(err)
		}
	},
}
