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
	"math"

	"github.com/madronegeo/sf/crs"
	"github.com/madronegeo/sf/geom"
	"github.com/madronegeo/sf/internal/planar"
	"github.com/madronegeo/sf/unit"
)

// Area measures the planar area of a polygon: the shoelace area of the outer
// ring minus the area of every hole. The polygon must be in a projected
// coordinate reference system; measuring raw longitude/latitude would yield
// meaningless square degrees, so geographic input fails with
// ErrUnprojectedGeometry. The result is tagged with the square of the
// system's length unit.
func Area(p geom.Polygon) (unit.Measure, error) {
	c, err := requirePlanar(p.SRID())
	if err != nil {
		return unit.Measure{}, err
	}

	sq, ok := c.Unit.Square()
	if !ok {
		return unit.Measure{}, fmt.Errorf("%w: SRID %d has no area unit for %s", crs.ErrUnsupportedCRS, p.SRID(), c.Unit)
	}

	area := math.Abs(p.Outer().SignedArea())
	for _, h := range p.Holes() {
		area -= math.Abs(h.SignedArea())
	}

	return unit.New(area, sq), nil
}

// Distance measures the Euclidean closest-point distance between two
// geometries sharing one projected coordinate reference system. Geometries
// that touch or overlap are at distance zero. The result is tagged with the
// system's length unit.
func Distance(a, b geom.Geometry) (unit.Measure, error) {
	if a.SRID() != b.SRID() {
		return unit.Measure{}, fmt.Errorf("%w: SRID %d vs %d", geom.ErrCRSMismatch, a.SRID(), b.SRID())
	}

	c, err := requirePlanar(a.SRID())
	if err != nil {
		return unit.Measure{}, err
	}

	return unit.New(planarDistance(a, b), c.Unit), nil
}

// requirePlanar resolves srid and rejects geographic systems.
func requirePlanar(srid geom.SRID) (crs.CRS, error) {
	c, err := crs.Lookup(srid)
	if err != nil {
		return crs.CRS{}, err
	}

	if c.Kind != crs.Projected {
		return crs.CRS{}, fmt.Errorf("%w: SRID %d (%s)", ErrUnprojectedGeometry, srid, c.Name)
	}

	return c, nil
}

// planarDistance dispatches closest-point distance over the geometry
// variants. Both arguments are assumed to share one planar system.
func planarDistance(a, b geom.Geometry) float64 {
	switch ga := a.(type) {
	case geom.Point:
		switch gb := b.(type) {
		case geom.Point:
			return math.Hypot(ga.X()-gb.X(), ga.Y()-gb.Y())
		case geom.Polygon:
			return pointPolygonDistance(ga, gb)
		}

	case geom.Polygon:
		switch gb := b.(type) {
		case geom.Point:
			return pointPolygonDistance(gb, ga)
		case geom.Polygon:
			return polygonsDistance(ga, gb)
		}
	}

	return math.NaN()
}

// pointPolygonDistance is zero when the point lies in the polygon's closed
// region, otherwise the distance to the nearest boundary ring, holes
// included.
func pointPolygonDistance(p geom.Point, poly geom.Polygon) float64 {
	if planar.PointInPolygon(p.XY(), poly) != planar.Outside {
		return 0
	}

	d := math.Inf(1)
	for i := 0; i < poly.NumRings(); i++ {
		d = min(d, planar.PointRingDistance(p.XY(), poly.Ring(i)))
	}

	return d
}

// polygonsDistance is zero when the polygons touch or overlap, otherwise the
// minimum distance over all boundary ring pairs.
func polygonsDistance(a, b geom.Polygon) float64 {
	if intersects(a, b) {
		return 0
	}

	d := math.Inf(1)

	for i := 0; i < a.NumRings(); i++ {
		for j := 0; j < b.NumRings(); j++ {
			d = min(d, planar.RingsDistance(a.Ring(i), b.Ring(j)))

			if d == 0 {
				return 0
			}
		}
	}

	return d
}
