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

// Package buffer implements the subcommand dilating every feature by a
// distance.
package buffer

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/madronegeo/sf"
	"github.com/madronegeo/sf/cmd/sf/cli"
	"github.com/madronegeo/sf/geom"
)

func init() {
	cli.RootCmd.AddCommand(bufferCmd)

	flags := bufferCmd.Flags()
	flags.Float64P("distance", "d", 0, "buffer distance in CRS units")
	flags.Int("segments", sf.DefaultSegments, "arc segments per full circle")
	flags.StringP("output", "o", "", "output file (stdout GeoJSON when omitted)")

	if err := bufferCmd.MarkFlagRequired("distance"); err != nil {
		panic(err)
	}
}

var bufferCmd = &cobra.Command{
	Use:   "buffer [<dataset>]",
	Short: "Buffer every feature by a distance",
	Long:  "Replace every feature's geometry with the polygon covering everything within the given distance of it",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		distance, err := flags.GetFloat64("distance")
		if err != nil {
			log.Fatal(err)
		}

		segments, err := flags.GetInt("segments")
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

		buffered, err := runBuffer(ds.Collection, distance, segments)
		if err != nil {
			log.Fatal(err)
		}

		if err := cli.WriteCollection(output, buffered); err != nil {
			log.Fatal(err)
		}
	},
}

func runBuffer(fc geom.FeatureCollection, distance float64, segments int) (geom.FeatureCollection, error) {
	features := fc.Features()

	for i, f := range features {
		poly, err := sf.Buffer(f.Geometry(), distance, sf.WithSegments(segments))
		if err != nil {
			return geom.FeatureCollection{}, fmt.Errorf("feature %d: %w", i, err)
		}

		features[i] = geom.NewFeature(poly, f.Properties())
	}

	return geom.NewFeatureCollection(fc.SRID(), features...)
}
