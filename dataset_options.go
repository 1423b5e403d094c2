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
	"github.com/madronegeo/sf/geom"
	"github.com/madronegeo/sf/internal/packers"
)

const (
	// DefaultLongitudeColumn names the tabular column read as longitude or
	// easting when no option overrides it.
	DefaultLongitudeColumn = "longitude"

	// DefaultLatitudeColumn names the tabular column read as latitude or
	// northing when no option overrides it.
	DefaultLatitudeColumn = "latitude"

	// DefaultSRID is assigned to datasets that do not declare a coordinate
	// reference system.
	DefaultSRID = geom.NAD83
)

// Stream compression codecs accepted by WithCompression. File-based readers
// and writers select these from the file name instead.
const (
	// NoCompression leaves the dataset stream unwrapped.
	NoCompression = packers.None

	// GzipCompression wraps the dataset stream in gzip.
	GzipCompression = packers.Gzip

	// ZstdCompression wraps the dataset stream in Zstandard.
	ZstdCompression = packers.Zstd

	// Lz4Compression wraps the dataset stream in LZ4 frames.
	Lz4Compression = packers.Lz4

	// XzCompression wraps the dataset stream in xz.
	XzCompression = packers.Xz
)

// datasetOptions provides optional configuration parameters for dataset
// reading and writing.
type datasetOptions struct {
	format      Format
	formatSet   bool // distinguishes an explicit choice from the default
	compression packers.Compression
	srid        geom.SRID
	lonCol      string
	latCol      string
	skipInvalid bool
}

// DatasetOption configures how datasets are read and written.
type DatasetOption func(*datasetOptions)

// WithFormat forces the dataset serialization format instead of inferring it
// from the file name.
func WithFormat(f Format) DatasetOption {
	return func(o *datasetOptions) {
		o.format = f
		o.formatSet = true
	}
}

// WithCompression lets you set the stream compression codec for readers and
// writers that have no file name to inspect. The default is no compression.
func WithCompression(c packers.Compression) DatasetOption {
	return func(o *datasetOptions) {
		o.compression = c
	}
}

// WithSRID sets the coordinate reference system assigned to datasets that do
// not declare one. The default is NAD83 longitude/latitude.
func WithSRID(srid geom.SRID) DatasetOption {
	return func(o *datasetOptions) {
		o.srid = srid
	}
}

// WithCoordinateColumns names the tabular columns holding the longitude and
// latitude (or easting and northing) ordinates.
func WithCoordinateColumns(lon, lat string) DatasetOption {
	return func(o *datasetOptions) {
		o.lonCol = lon
		o.latCol = lat
	}
}

// WithSkipInvalid switches tabular conversion from rejecting the whole input
// on the first missing or malformed coordinate to skipping the bad rows and
// counting them.
func WithSkipInvalid() DatasetOption {
	return func(o *datasetOptions) {
		o.skipInvalid = true
	}
}

// defaultDatasetConfig provides a default configuration for dataset readers
// and writers.
var defaultDatasetConfig = datasetOptions{
	format:      GeoJSON,
	compression: packers.None,
	srid:        DefaultSRID,
	lonCol:      DefaultLongitudeColumn,
	latCol:      DefaultLatitudeColumn,
}
