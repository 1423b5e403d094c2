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

package sf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/madronegeo/sf/geom"
)

// FromTable converts tabular rows into a point feature collection. The
// lonCol and latCol columns become each point's ordinates and every other
// column is carried as a string attribute.
//
// A row whose coordinate is missing, empty, or non-numeric rejects the whole
// input by default, so a silently thinned dataset can never masquerade as a
// complete one. WithSkipInvalid switches to dropping such rows; the second
// result reports how many were dropped.
func FromTable(rows []map[string]string, lonCol, latCol string, srid geom.SRID, opts ...DatasetOption) (geom.FeatureCollection, int, error) {
	cfg := defaultDatasetConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	features := make([]geom.Feature, 0, len(rows))
	skipped := 0

	for i, row := range rows {
		f, err := rowFeature(row, lonCol, latCol, srid)
		if err != nil {
			if cfg.skipInvalid {
				skipped++
				continue
			}

			return geom.FeatureCollection{}, 0, fmt.Errorf("row %d: %w", i, err)
		}

		features = append(features, f)
	}

	fc, err := geom.NewFeatureCollection(srid, features...)
	if err != nil {
		return geom.FeatureCollection{}, 0, err
	}

	return fc, skipped, nil
}

// rowFeature converts one tabular row into a point feature, carrying the
// non-coordinate columns as attributes.
func rowFeature(row map[string]string, lonCol, latCol string, srid geom.SRID) (geom.Feature, error) {
	x, err := coordinate(row, lonCol)
	if err != nil {
		return geom.Feature{}, err
	}

	y, err := coordinate(row, latCol)
	if err != nil {
		return geom.Feature{}, err
	}

	props := make(map[string]any, len(row))

	for k, v := range row {
		if k == lonCol || k == latCol {
			continue
		}

		props[k] = v
	}

	return geom.NewFeature(geom.NewPoint(x, y, srid), props), nil
}

// coordinate reads one ordinate from a row.
func coordinate(row map[string]string, col string) (float64, error) {
	s, ok := row[col]
	if !ok || strings.TrimSpace(s) == "" {
		return 0, fmt.Errorf("%w: column %q", ErrMissingCoordinate, col)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: column %q value %q", ErrMissingCoordinate, col, s)
	}

	return v, nil
}
