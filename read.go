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
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/madronegeo/sf/geom"
	"github.com/madronegeo/sf/internal/packers"
)

// Dataset is the result of reading a dataset stream: the features plus how
// they arrived.
type Dataset struct {
	// Collection holds the features in input order.
	Collection geom.FeatureCollection

	// Format is the serialization format the dataset was read from.
	Format Format

	// Skipped counts tabular rows dropped under the skip-invalid policy.
	Skipped int
}

// ReadDataset reads a feature dataset from a stream. The format defaults to
// GeoJSON and the stream is assumed uncompressed; both are configurable by
// option. Reading from a file path with ReadDatasetFile infers them instead.
func ReadDataset(r io.Reader, opts ...DatasetOption) (*Dataset, error) {
	cfg := defaultDatasetConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	rc, err := packers.NewReader(r, cfg.compression)
	if err != nil {
		return nil, fmt.Errorf("could not open %s reader: %w", cfg.compression, err)
	}
	defer rc.Close()

	switch cfg.format {
	case GeoJSON:
		fc, err := readGeoJSON(rc, cfg)
		if err != nil {
			return nil, err
		}

		return &Dataset{Collection: fc, Format: GeoJSON}, nil

	case CSV:
		rows, err := readCSVRows(rc)
		if err != nil {
			return nil, err
		}

		fc, skipped, err := FromTable(rows, cfg.lonCol, cfg.latCol, cfg.srid, opts...)
		if err != nil {
			return nil, err
		}

		return &Dataset{Collection: fc, Format: CSV, Skipped: skipped}, nil

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, cfg.format)
	}
}

// ReadDatasetFile reads a feature dataset from a file, inferring the format
// and compression from the file name unless options override them.
func ReadDatasetFile(path string, opts ...DatasetOption) (*Dataset, error) {
	cfg := defaultDatasetConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	inferred := []DatasetOption{WithCompression(packers.ForPath(path))}

	if !cfg.formatSet {
		format, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}

		inferred = append(inferred, WithFormat(format))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open dataset: %w", err)
	}
	defer f.Close()

	return ReadDataset(f, append(inferred, opts...)...)
}

// readCSVRows reads delimited records with a header line into one map per
// row, keyed by column name.
func readCSVRows(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("could not read header: %w", err)
	}

	var rows []map[string]string

	for {
		record, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		} else if err != nil {
			return nil, fmt.Errorf("could not read row %d: %w", len(rows), err)
		}

		row := make(map[string]string, len(header))
		for i, col := range header {
			row[col] = record[i]
		}

		rows = append(rows, row)
	}
}
