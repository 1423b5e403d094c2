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

// Package geom contains the planar geometry model shared by the sf toolkit:
// points, polygons made of linear rings, features carrying attributes, and
// the coordinate reference system tags that tie bare coordinates to a
// geographic or projected system.
package geom

import (
	"errors"
	"fmt"
)

// SRID is a spatial reference identifier. All coordinates are stored as bare
// float64 pairs; the SRID ties them to a geographic or projected coordinate
// system, allowing them to be interpreted and compared.
//
// The zero value is special and means an unknown coordinate system.
type SRID int32

const (
	// UnknownSRID is the default SRID when none is declared.
	UnknownSRID = SRID(0)

	// NAD83 (aka 4269) is the geographic longitude/latitude system carried
	// by most North American federal vector datasets. Coordinates are
	// (longitude, latitude) in decimal degrees.
	NAD83 = SRID(4269)

	// CaliforniaAlbers (aka 3310) is NAD83 / California Albers, an
	// equal-area conic projection in meters.
	CaliforniaAlbers = SRID(3310)
)

// ErrInvalidGeometry is returned when raw coordinate data does not form a
// valid geometry, e.g. an unclosed ring or a ring with fewer than three
// distinct vertices.
var ErrInvalidGeometry = errors.New("invalid geometry")

// ErrCRSMismatch is returned when two geometries with different coordinate
// reference systems are combined without an explicit reprojection.
var ErrCRSMismatch = errors.New("coordinate reference system mismatch")

// GeometryType is an enumeration of geometry variants.
type GeometryType int32

const (
	// POINT denotes a single coordinate pair.
	POINT GeometryType = iota

	// POLYGON denotes one outer ring plus zero or more hole rings.
	POLYGON
)

func (t GeometryType) String() string {
	switch t {
	case POINT:
		return "Point"
	case POLYGON:
		return "Polygon"
	default:
		return fmt.Sprintf("GeometryType(%d)", int32(t))
	}
}

// XY is a bare coordinate pair. Its interpretation (degrees or meters, and
// axis order) is fixed by the SRID of the geometry holding it.
type XY struct {
	X float64
	Y float64
}

// Geometry is the tagged variant over the supported geometry types. Every
// geometry carries exactly one SRID.
type Geometry interface {
	isGeometry() // prevents extensions

	// Type reports the variant.
	Type() GeometryType

	// SRID reports the coordinate reference system tag.
	SRID() SRID

	// Bound reports the axis-aligned bounding box.
	Bound() Bound
}

// Point is a single coordinate pair in some coordinate reference system.
type Point struct {
	xy   XY
	srid SRID
}

var _ Geometry = Point{}

// NewPoint constructs a Point from a raw coordinate pair.
func NewPoint(x, y float64, srid SRID) Point {
	return Point{xy: XY{X: x, Y: y}, srid: srid}
}

func (p Point) isGeometry() {}

// Type reports POINT.
func (p Point) Type() GeometryType { return POINT }

// SRID reports the coordinate reference system tag.
func (p Point) SRID() SRID { return p.srid }

// X is the first ordinate (longitude or easting).
func (p Point) X() float64 { return p.xy.X }

// Y is the second ordinate (latitude or northing).
func (p Point) Y() float64 { return p.xy.Y }

// XY is the coordinate pair.
func (p Point) XY() XY { return p.xy }

// Bound reports the degenerate bounding box covering just the point.
func (p Point) Bound() Bound {
	return Bound{MinX: p.xy.X, MinY: p.xy.Y, MaxX: p.xy.X, MaxY: p.xy.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("POINT (%s %s)", ftoa(p.xy.X), ftoa(p.xy.Y))
}

// Ring is an ordered, closed sequence of coordinate pairs. The first and
// last pairs are equal, and at least three distinct vertices are present.
// Rings are immutable after construction.
type Ring struct {
	coords []XY
}

// NewRing constructs a Ring from raw coordinate pairs, validating closure
// and non-degeneracy. The closing pair must be present in the input.
func NewRing(coords []XY) (Ring, error) {
	if len(coords) < 4 {
		return Ring{}, fmt.Errorf("%w: ring has %d coordinates, need at least 4 including closure", ErrInvalidGeometry, len(coords))
	}

	if coords[0] != coords[len(coords)-1] {
		return Ring{}, fmt.Errorf("%w: ring not closed, first %v != last %v", ErrInvalidGeometry, coords[0], coords[len(coords)-1])
	}

	distinct := make(map[XY]struct{}, len(coords))
	for _, c := range coords[:len(coords)-1] {
		distinct[c] = struct{}{}
	}

	if len(distinct) < 3 {
		return Ring{}, fmt.Errorf("%w: ring has %d distinct vertices, need at least 3", ErrInvalidGeometry, len(distinct))
	}

	cp := make([]XY, len(coords))
	copy(cp, coords)

	return Ring{coords: cp}, nil
}

// Len is the number of coordinate pairs, including the closing duplicate.
func (r Ring) Len() int { return len(r.coords) }

// At reports the i-th coordinate pair.
func (r Ring) At(i int) XY { return r.coords[i] }

// Coords reports a copy of the ring's coordinate pairs.
func (r Ring) Coords() []XY {
	cp := make([]XY, len(r.coords))
	copy(cp, r.coords)

	return cp
}

// SignedArea is the shoelace sum of signed trapezoid contributions across
// the ring's edges. Counterclockwise rings are positive.
func (r Ring) SignedArea() float64 {
	var sum float64

	for i := 0; i < len(r.coords)-1; i++ {
		a, b := r.coords[i], r.coords[i+1]
		sum += (b.X - a.X) * (b.Y + a.Y)
	}

	return -sum / 2
}

// Bound reports the axis-aligned bounding box of the ring.
func (r Ring) Bound() Bound {
	b := EmptyBound()
	for _, c := range r.coords {
		b.ExpandWithXY(c.X, c.Y)
	}

	return *b
}

// Polygon is an ordered sequence of one or more linear rings in some
// coordinate reference system. The first ring is the outer boundary and any
// subsequent rings are holes. Polygons are immutable after construction.
type Polygon struct {
	rings []Ring
	srid  SRID
}

var _ Geometry = Polygon{}

// NewPolygon constructs a Polygon from validated rings. At least the outer
// ring must be present.
func NewPolygon(srid SRID, rings ...Ring) (Polygon, error) {
	if len(rings) == 0 {
		return Polygon{}, fmt.Errorf("%w: polygon has no rings", ErrInvalidGeometry)
	}

	for i, r := range rings {
		if len(r.coords) == 0 {
			return Polygon{}, fmt.Errorf("%w: polygon ring %d is empty", ErrInvalidGeometry, i)
		}
	}

	cp := make([]Ring, len(rings))
	copy(cp, rings)

	return Polygon{rings: cp, srid: srid}, nil
}

func (p Polygon) isGeometry() {}

// Type reports POLYGON.
func (p Polygon) Type() GeometryType { return POLYGON }

// SRID reports the coordinate reference system tag.
func (p Polygon) SRID() SRID { return p.srid }

// NumRings is the total ring count, outer boundary included.
func (p Polygon) NumRings() int { return len(p.rings) }

// Ring reports the i-th ring; index 0 is the outer boundary.
func (p Polygon) Ring(i int) Ring { return p.rings[i] }

// Outer reports the outer boundary ring.
func (p Polygon) Outer() Ring { return p.rings[0] }

// Holes reports the hole rings, possibly empty.
func (p Polygon) Holes() []Ring {
	cp := make([]Ring, len(p.rings)-1)
	copy(cp, p.rings[1:])

	return cp
}

// Bound reports the axis-aligned bounding box of the outer ring.
func (p Polygon) Bound() Bound {
	return p.rings[0].Bound()
}
