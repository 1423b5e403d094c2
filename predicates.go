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

	"github.com/madronegeo/sf/geom"
	"github.com/madronegeo/sf/internal/planar"
)

// Intersects reports whether two geometries share at least one point.
// Boundaries are included: geometries that merely touch intersect.
//
// Both geometries must carry the same coordinate reference system; a
// mismatch fails with ErrCRSMismatch rather than reprojecting silently.
func Intersects(a, b geom.Geometry) (bool, error) {
	if err := requireSameCRS(a, b); err != nil {
		return false, err
	}

	return intersects(a, b), nil
}

// Within reports whether every point of a lies in the closed region of b.
// Boundaries are included: a geometry lying exactly on b's boundary is
// within b, and every geometry is within itself.
//
// Both geometries must carry the same coordinate reference system; a
// mismatch fails with ErrCRSMismatch rather than reprojecting silently.
func Within(a, b geom.Geometry) (bool, error) {
	if err := requireSameCRS(a, b); err != nil {
		return false, err
	}

	return within(a, b), nil
}

func requireSameCRS(a, b geom.Geometry) error {
	if a.SRID() != b.SRID() {
		return fmt.Errorf("%w: SRID %d vs %d", geom.ErrCRSMismatch, a.SRID(), b.SRID())
	}

	return nil
}

// intersects dispatches the boundary-inclusive intersection test. Both
// arguments are assumed to share one coordinate reference system.
func intersects(a, b geom.Geometry) bool {
	switch ga := a.(type) {
	case geom.Point:
		switch gb := b.(type) {
		case geom.Point:
			return planar.Coincident(ga.XY(), gb.XY())
		case geom.Polygon:
			return planar.PointInPolygon(ga.XY(), gb) != planar.Outside
		}

	case geom.Polygon:
		switch gb := b.(type) {
		case geom.Point:
			return planar.PointInPolygon(gb.XY(), ga) != planar.Outside
		case geom.Polygon:
			return polygonsIntersect(ga, gb)
		}
	}

	return false
}

// polygonsIntersect checks every boundary ring pair for contact, then covers
// full nesting: with no edge contact, one polygon lies entirely inside or
// entirely outside the other, so testing a single vertex of each suffices.
func polygonsIntersect(a, b geom.Polygon) bool {
	if !a.Bound().Intersects(b.Bound()) {
		return false
	}

	for i := 0; i < a.NumRings(); i++ {
		for j := 0; j < b.NumRings(); j++ {
			if planar.RingsIntersect(a.Ring(i), b.Ring(j)) {
				return true
			}
		}
	}

	if planar.PointInPolygon(a.Outer().At(0), b) != planar.Outside {
		return true
	}

	return planar.PointInPolygon(b.Outer().At(0), a) != planar.Outside
}

// within dispatches the boundary-inclusive containment test. Both arguments
// are assumed to share one coordinate reference system.
func within(a, b geom.Geometry) bool {
	switch ga := a.(type) {
	case geom.Point:
		switch gb := b.(type) {
		case geom.Point:
			return planar.Coincident(ga.XY(), gb.XY())
		case geom.Polygon:
			return planar.PointInPolygon(ga.XY(), gb) != planar.Outside
		}

	case geom.Polygon:
		if gb, ok := b.(geom.Polygon); ok {
			return polygonWithin(ga, gb)
		}

		// a polygon has positive extent; it cannot fit in a point
		return false
	}

	return false
}

// polygonWithin reports whether polygon a lies in the closed region of b.
// a's boundary may touch b's boundary but must not cross it, every vertex
// and edge midpoint of a must avoid b's exterior, and no hole of b may
// reach into a's interior.
func polygonWithin(a, b geom.Polygon) bool {
	if !b.Bound().Covers(a.Bound()) {
		return false
	}

	for i := 0; i < a.NumRings(); i++ {
		for j := 0; j < b.NumRings(); j++ {
			if planar.RingsCross(a.Ring(i), b.Ring(j)) {
				return false
			}
		}
	}

	// vertices and edge midpoints of a stay out of b's exterior; the
	// midpoints catch edges that leave through a touch point and return
	for i := 0; i < a.NumRings(); i++ {
		r := a.Ring(i)

		for k := 0; k < r.Len()-1; k++ {
			v, w := r.At(k), r.At(k+1)

			if planar.PointInPolygon(v, b) == planar.Outside {
				return false
			}

			mid := geom.XY{X: (v.X + w.X) / 2, Y: (v.Y + w.Y) / 2}
			if planar.PointInPolygon(mid, b) == planar.Outside {
				return false
			}
		}
	}

	// a hole of b strictly inside a's interior would carve territory out
	// of a's cover
	for _, h := range b.Holes() {
		for k := 0; k < h.Len()-1; k++ {
			v, w := h.At(k), h.At(k+1)

			if planar.PointInPolygon(v, a) == planar.Inside {
				return false
			}

			mid := geom.XY{X: (v.X + w.X) / 2, Y: (v.Y + w.Y) / 2}
			if planar.PointInPolygon(mid, a) == planar.Inside {
				return false
			}
		}
	}

	return true
}
