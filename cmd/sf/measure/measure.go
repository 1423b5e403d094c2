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

// Package measure implements the subcommand appending polygon areas as
// attributes.
package measure

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/madronegeo/sf"
	"github.com/madronegeo/sf/cmd/sf/cli"
	"github.com/madronegeo/sf/geom"
	"github.com/madronegeo/sf/unit"
)

func init() {
	cli.RootCmd.AddCommand(measureCmd)

	flags := measureCmd.Flags()
	flags.StringP("unit", "u", "m2", "area unit (m2, km2, ha, acre)")
	flags.StringP("property", "p", "area", "attribute name to store the area under")
	flags.StringP("output", "o", "", "output file (stdout GeoJSON when omitted)")
}

var measureCmd = &cobra.Command{
	Use:   "measure [<dataset>]",
	Short: "Append polygon areas as an attribute",
	Long:  "Compute the area of every polygon feature and append it as an attribute; point features pass through untouched",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		name, err := flags.GetString("unit")
		if err != nil {
			log.Fatal(err)
		}

		target, err := unit.ParseUnit(name)
		if err != nil {
			log.Fatal(err)
		}

		property, err := flags.GetString("property")
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

		measured, err := runMeasure(ds.Collection, target, property)
		if err != nil {
			log.Fatal(err)
		}

		if err := cli.WriteCollection(output, measured); err != nil {
			log.Fatal(err)
		}
	},
}

func runMeasure(fc geom.FeatureCollection, target unit.Unit, property string) (geom.FeatureCollection, error) {
	features := fc.Features()

	for i, f := range features {
		poly, ok := f.Geometry().(geom.Polygon)
		if !ok {
			continue
		}

		a, err := sf.Area(poly)
		if err != nil {
			return geom.FeatureCollection{}, fmt.Errorf("feature %d: %w", i, err)
		}

		m, err := a.Convert(target)
		if err != nil {
			return geom.FeatureCollection{}, err
		}

		features[i] = f.WithProperty(property, m.Value)
	}

	return geom.NewFeatureCollection(fc.SRID(), features...)
}
