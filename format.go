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
	"path/filepath"
	"strings"

	"github.com/madronegeo/sf/internal/packers"
)

// Format is an enumeration of dataset serialization formats.
type Format int32

const (
	// GeoJSON denotes an RFC 7946 feature collection document, with the
	// legacy named-CRS member honored when present.
	GeoJSON Format = iota

	// CSV denotes delimited tabular data with one coordinate pair per row.
	CSV
)

func (f Format) String() string {
	switch f {
	case GeoJSON:
		return "geojson"
	case CSV:
		return "csv"
	default:
		return fmt.Sprintf("Format(%d)", int32(f))
	}
}

// ParseFormat converts a format name, as accepted on the command line, to a
// Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "geojson", "json":
		return GeoJSON, nil
	case "csv":
		return CSV, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// DetectFormat infers the dataset format from a file name, looking through
// any recognized compression suffix, so "fires.geojson.gz" is GeoJSON.
func DetectFormat(path string) (Format, error) {
	if c := packers.ForPath(path); c != packers.None {
		path = strings.TrimSuffix(path, filepath.Ext(path))
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return GeoJSON, nil
	case ".csv":
		return CSV, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}
