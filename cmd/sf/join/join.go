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

// Package join implements the subcommand turning coordinate tables into
// point datasets.
package join

import (
	"log"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/madronegeo/sf"
	"github.com/madronegeo/sf/cmd/sf/cli"
	"github.com/madronegeo/sf/geom"
)

func init() {
	cli.RootCmd.AddCommand(joinCmd)

	flags := joinCmd.Flags()
	flags.String("lon", sf.DefaultLongitudeColumn, "column holding the x ordinate")
	flags.String("lat", sf.DefaultLatitudeColumn, "column holding the y ordinate")
	flags.Int32("srid", int32(sf.DefaultSRID), "EPSG code the coordinates are expressed in")
	flags.Bool("skip-invalid", false, "drop rows with missing or malformed coordinates instead of failing")
	flags.StringP("output", "o", "", "output file (stdout GeoJSON when omitted)")
}

var joinCmd = &cobra.Command{
	Use:   "join [<table>]",
	Short: "Turn a coordinate table into a point dataset",
	Long:  "Read a delimited table with coordinate columns and write a point dataset carrying the remaining columns as attributes",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		lon, err := flags.GetString("lon")
		if err != nil {
			log.Fatal(err)
		}

		lat, err := flags.GetString("lat")
		if err != nil {
			log.Fatal(err)
		}

		srid, err := flags.GetInt32("srid")
		if err != nil {
			log.Fatal(err)
		}

		skipInvalid, err := flags.GetBool("skip-invalid")
		if err != nil {
			log.Fatal(err)
		}

		output, err := flags.GetString("output")
		if err != nil {
			log.Fatal(err)
		}

		opts := []sf.DatasetOption{
			sf.WithFormat(sf.CSV),
			sf.WithCoordinateColumns(lon, lat),
			sf.WithSRID(geom.SRID(srid)),
		}
		if skipInvalid {
			opts = append(opts, sf.WithSkipInvalid())
		}

		var path string
		if len(args) == 1 {
			path = args[0]
		}

		ds, err := cli.OpenDatasetOrStdin(path, opts...)
		if err != nil {
			log.Fatal(err)
		}

		if ds.Skipped > 0 {
			slog.Warn("dropped rows with invalid coordinates", "count", ds.Skipped)
		}

		if err := cli.WriteCollection(output, ds.Collection); err != nil {
			log.Fatal(err)
		}
	},
}
