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

// Buffer constructs the polygon of all points within the given distance of a
// geometry, in the units of its projected coordinate reference system. The
// distance must be positive and the geometry planar.
//
// A point buffers to a regular polygon circumscribing the radius-distance
// disc, so every point within the distance is inside the result, boundary
// included. A polygon buffers to its offset boundary: edges move outward by
// the distance, convex vertices are joined by circumscribed arcs, reflex
// vertices by edge-intersection miters, and holes shrink inward, vanishing
// once the offset consumes them. The polygon case is exact for convex input
// and a documented approximation for concave input; in both cases the area
// strictly increases.
//
// WithSegments trades arc fidelity for vertex count; the default keeps the
// area error of a point buffer under one percent.
func Buffer(g geom.Geometry, distance float64, opts ...BufferOption) (geom.Polygon, error) {
	cfg := defaultBufferConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	if distance <= 0 {
		return geom.Polygon{}, fmt.Errorf("%w: %v", ErrNonPositiveDistance, distance)
	}

	if _, err := requirePlanar(g.SRID()); err != nil {
		return geom.Polygon{}, err
	}

	switch v := g.(type) {
	case geom.Point:
		ring, err := geom.NewRing(planar.CirclePoints(v.XY(), distance, cfg.segments))
		if err != nil {
			return geom.Polygon{}, err
		}

		return geom.NewPolygon(g.SRID(), ring)

	case geom.Polygon:
		return bufferPolygon(v, distance, cfg.segments)

	default:
		return geom.Polygon{}, fmt.Errorf("%w: cannot buffer geometry type %v", geom.ErrInvalidGeometry, g.Type())
	}
}

// bufferPolygon expands the outer boundary outward and deflates each hole
// inward, dropping holes the offset consumes.
func bufferPolygon(p geom.Polygon, distance float64, segments int) (geom.Polygon, error) {
	expanded := planar.OffsetRing(planar.CCW(p.Outer().Coords()), distance, segments)
	if expanded == nil {
		return geom.Polygon{}, fmt.Errorf("%w: outer ring has no offset boundary", geom.ErrInvalidGeometry)
	}

	outer, err := geom.NewRing(expanded)
	if err != nil {
		return geom.Polygon{}, err
	}

	rings := []geom.Ring{outer}

	for _, h := range p.Holes() {
		deflated := planar.OffsetRing(planar.CCW(h.Coords()), -distance, segments)
		if deflated == nil {
			continue
		}

		ring, err := geom.NewRing(deflated)
		if err != nil {
			continue
		}

		// an inverted ring means the offset consumed the hole
		if ring.SignedArea() <= 0 {
			continue
		}

		rings = append(rings, ring)
	}

	return geom.NewPolygon(p.SRID(), rings...)
}
