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

package sf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madronegeo/sf"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want sf.Format
	}{
		{"perimeters.geojson", sf.GeoJSON},
		{"perimeters.json", sf.GeoJSON},
		{"perimeters.GeoJSON", sf.GeoJSON},
		{"campgrounds.csv", sf.CSV},
		{"perimeters.geojson.gz", sf.GeoJSON},
		{"perimeters.geojson.zst", sf.GeoJSON},
		{"campgrounds.csv.lz4", sf.CSV},
		{"campgrounds.csv.xz", sf.CSV},
		{"/var/data/2020/perimeters.json.gz", sf.GeoJSON},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := sf.DetectFormat(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormatUnknown(t *testing.T) {
	for _, path := range []string{"perimeters.parquet", "perimeters", "perimeters.gz"} {
		t.Run(path, func(t *testing.T) {
			_, err := sf.DetectFormat(path)
			assert.ErrorIs(t, err, sf.ErrUnknownFormat)
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want sf.Format
	}{
		{"geojson", sf.GeoJSON},
		{"json", sf.GeoJSON},
		{"csv", sf.CSV},
		{"CSV", sf.CSV},
	}
	for _, tt := range tests {
		got, err := sf.ParseFormat(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := sf.ParseFormat("shapefile")
	assert.ErrorIs(t, err, sf.ErrUnknownFormat)
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "geojson", sf.GeoJSON.String())
	assert.Equal(t, "csv", sf.CSV.String())
}
