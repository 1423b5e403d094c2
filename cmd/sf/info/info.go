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

// Package info implements the subcommand summarizing a dataset.
package info

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/madronegeo/sf"
	"github.com/madronegeo/sf/cmd/sf/cli"
	"github.com/madronegeo/sf/crs"
	"github.com/madronegeo/sf/geom"
)

var out io.Writer = os.Stdout

type summary struct {
	Features   int       `json:"features"`
	Points     int       `json:"points"`
	Polygons   int       `json:"polygons"`
	SRID       geom.SRID `json:"srid"`
	CRS        string    `json:"crs,omitempty"`
	Bound      []float64 `json:"bound,omitempty"`
	Attributes []string  `json:"attributes,omitempty"`
	Skipped    int       `json:"skipped,omitempty"`
}

func init() {
	cli.RootCmd.AddCommand(infoCmd)

	flags := infoCmd.Flags()
	flags.BoolP("json", "j", false, "format the summary as JSON")
	flags.String("format", "geojson", "format of a dataset read from stdin")
}

var infoCmd = &cobra.Command{
	Use:   "info [<dataset>]",
	Short: "Summarize a dataset",
	Long:  "Print the feature counts, coordinate reference system, extent and attribute columns of a dataset",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		name, err := flags.GetString("format")
		if err != nil {
			log.Fatal(err)
		}

		format, err := sf.ParseFormat(name)
		if err != nil {
			log.Fatal(err)
		}

		var path string
		if len(args) == 1 {
			path = args[0]
		}

		// tabular rows that fail to parse are counted, not fatal
		var ds *sf.Dataset
		if path == "" {
			ds, err = sf.ReadDataset(os.Stdin, sf.WithFormat(format), sf.WithSkipInvalid())
		} else {
			ds, err = cli.OpenDataset(path, sf.WithSkipInvalid())
		}
		if err != nil {
			log.Fatal(err)
		}

		info := runInfo(ds)

		jsonfmt, err := flags.GetBool("json")
		if err != nil {
			log.Fatal(err)
		}

		if jsonfmt {
			renderJSON(info)
		} else {
			renderTxt(info)
		}
	},
}

func runInfo(ds *sf.Dataset) *summary {
	fc := ds.Collection

	info := &summary{
		Features: fc.Len(),
		SRID:     fc.SRID(),
		Skipped:  ds.Skipped,
	}

	if c, err := crs.Lookup(fc.SRID()); err == nil {
		info.CRS = c.Name
	}

	columns := make(map[string]struct{})

	for _, f := range fc.Features() {
		switch f.Geometry().Type() {
		case geom.POINT:
			info.Points++
		case geom.POLYGON:
			info.Polygons++
		}

		for k := range f.Properties() {
			columns[k] = struct{}{}
		}
	}

	for k := range columns {
		info.Attributes = append(info.Attributes, k)
	}

	sort.Strings(info.Attributes)

	if b := fc.Bound(); !b.IsEmpty() {
		info.Bound = []float64{b.MinX, b.MinY, b.MaxX, b.MaxY}
	}

	return info
}

func renderJSON(info *summary) {
	b, err := json.Marshal(info)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintln(out, string(b))
}

func renderTxt(info *summary) {
	fmt.Fprintf(out, "Features: %s\n", humanize.Comma(int64(info.Features)))
	fmt.Fprintf(out, "Points: %s\n", humanize.Comma(int64(info.Points)))
	fmt.Fprintf(out, "Polygons: %s\n", humanize.Comma(int64(info.Polygons)))

	if info.CRS != "" {
		fmt.Fprintf(out, "CRS: %s (EPSG:%d)\n", info.CRS, info.SRID)
	} else {
		fmt.Fprintf(out, "CRS: EPSG:%d (unregistered)\n", info.SRID)
	}

	if len(info.Bound) == 4 {
		fmt.Fprintf(out, "Bound: [%g, %g, %g, %g]\n", info.Bound[0], info.Bound[1], info.Bound[2], info.Bound[3])
	}

	fmt.Fprintf(out, "Attributes: %s\n", strings.Join(info.Attributes, ", "))

	if info.Skipped > 0 {
		fmt.Fprintf(out, "Skipped: %s\n", humanize.Comma(int64(info.Skipped)))
	}
}
