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

// Package sf is a planar simple-features toolkit. It measures, buffers, and
// relates point and polygon features that carry explicit coordinate
// reference system tags, and reads and writes them as GeoJSON or delimited
// tabular datasets.
//
// Every measurement returns a unit.Measure, never a bare float with an
// implied unit, and every operation that combines two geometries requires
// them to share a coordinate reference system; nothing is reprojected
// silently. Reprojection is always an explicit crs.Transform call.
package sf

import (
	"errors"
)

// ErrUnprojectedGeometry is returned when a planar operation, such as an
// area or distance measurement, receives a geometry in a geographic
// longitude/latitude system. Reproject first with crs.Transform.
var ErrUnprojectedGeometry = errors.New("geometry is not in a projected coordinate system")

// ErrNonPositiveDistance is returned when a buffer distance is zero or
// negative.
var ErrNonPositiveDistance = errors.New("buffer distance must be positive")

// ErrMissingCoordinate is returned when a tabular row lacks a coordinate
// column or holds a value that does not parse as a number.
var ErrMissingCoordinate = errors.New("missing or malformed coordinate")

// ErrUnknownFormat is returned when a dataset format is neither declared by
// option nor recognizable from the file name.
var ErrUnknownFormat = errors.New("unknown dataset format")
