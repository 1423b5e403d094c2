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
	"sort"
	"strconv"

	"github.com/madronegeo/sf/geom"
	"github.com/madronegeo/sf/internal/packers"
)

// WriteDataset writes a feature collection to a stream. The format defaults
// to GeoJSON and the stream is left uncompressed; both are configurable by
// option. Writing to a file path with WriteDatasetFile infers them instead.
//
// CSV output is for point collections: one row per feature with coordinate
// columns plus the union of attribute columns. Polygons only serialize as
// GeoJSON.
func WriteDataset(w io.Writer, fc geom.FeatureCollection, opts ...DatasetOption) error {
	cfg := defaultDatasetConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	wc, err := packers.NewWriter(w, cfg.compression)
	if err != nil {
		return fmt.Errorf("could not open %s writer: %w", cfg.compression, err)
	}

	switch cfg.format {
	case GeoJSON:
		err = writeGeoJSON(wc, fc)
	case CSV:
		err = writeCSV(wc, fc, cfg)
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownFormat, cfg.format)
	}

	if err != nil {
		wc.Close()

		return err
	}

	// closing flushes the codec frame
	if err := wc.Close(); err != nil {
		return fmt.Errorf("could not flush %s writer: %w", cfg.compression, err)
	}

	return nil
}

// WriteDatasetFile writes a feature collection to a file, inferring the
// format and compression from the file name unless options override them.
func WriteDatasetFile(path string, fc geom.FeatureCollection, opts ...DatasetOption) error {
	cfg := defaultDatasetConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	inferred := []DatasetOption{WithCompression(packers.ForPath(path))}

	if !cfg.formatSet {
		format, err := DetectFormat(path)
		if err != nil {
			return err
		}

		inferred = append(inferred, WithFormat(format))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create dataset: %w", err)
	}

	if err := WriteDataset(f, fc, append(inferred, opts...)...); err != nil {
		f.Close()

		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close dataset: %w", err)
	}

	return nil
}

// writeCSV writes a point collection as delimited rows: the coordinate
// columns first, then the union of attribute columns in sorted order.
func writeCSV(w io.Writer, fc geom.FeatureCollection, cfg datasetOptions) error {
	columns := make(map[string]struct{})

	for i := 0; i < fc.Len(); i++ {
		f := fc.At(i)

		if _, ok := f.Geometry().(geom.Point); !ok {
			return fmt.Errorf("feature %d: %w: CSV holds point features, not %v", i, geom.ErrInvalidGeometry, f.Geometry().Type())
		}

		for k := range f.Properties() {
			columns[k] = struct{}{}
		}
	}

	attrs := make([]string, 0, len(columns))
	for k := range columns {
		attrs = append(attrs, k)
	}

	sort.Strings(attrs)

	cw := csv.NewWriter(w)

	header := append([]string{cfg.lonCol, cfg.latCol}, attrs...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}

	record := make([]string, len(header))

	for i := 0; i < fc.Len(); i++ {
		f := fc.At(i)
		p := f.Geometry().(geom.Point)

		record[0] = strconv.FormatFloat(p.X(), 'f', -1, 64)
		record[1] = strconv.FormatFloat(p.Y(), 'f', -1, 64)

		for k, col := range attrs {
			record[k+2] = attributeString(f, col)
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write row %d: %w", i, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// attributeString renders one attribute for delimited output; absent
// attributes render empty.
func attributeString(f geom.Feature, key string) string {
	v, ok := f.Property(key)
	if !ok || v == nil {
		return ""
	}

	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
