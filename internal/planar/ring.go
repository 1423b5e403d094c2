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

package planar

import (
	"fmt"
	"math"

	"github.com/madronegeo/sf/geom"
)

// Location places a point relative to a closed region.
type Location int32

const (
	// Outside denotes a point in the exterior.
	Outside Location = iota

	// OnBoundary denotes a point on a boundary ring, within boundaryEps.
	OnBoundary

	// Inside denotes a point in the interior.
	Inside
)

func (l Location) String() string {
	switch l {
	case Outside:
		return "outside"
	case OnBoundary:
		return "boundary"
	case Inside:
		return "inside"
	default:
		return fmt.Sprintf("Location(%d)", int32(l))
	}
}

// PointInRing locates p relative to the ring using an even-odd ray cast.
// Points within boundaryEps of a ring edge are OnBoundary.
func PointInRing(p geom.XY, r geom.Ring) Location {
	n := r.Len()

	for i := 0; i < n-1; i++ {
		if PointSegmentDistance(p, r.At(i), r.At(i+1)) <= boundaryEps {
			return OnBoundary
		}
	}

	// cast a ray toward +x and count strict edge crossings
	inside := false

	for i := 0; i < n-1; i++ {
		a, b := r.At(i), r.At(i+1)

		if (a.Y > p.Y) != (b.Y > p.Y) {
			xint := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < xint {
				inside = !inside
			}
		}
	}

	if inside {
		return Inside
	}

	return Outside
}

// PointInPolygon locates p relative to the polygon's closed region. Boundary
// points of any ring, hole rings included, are OnBoundary. Interior parity is
// even-odd across all rings, so a point inside a hole is Outside.
func PointInPolygon(p geom.XY, poly geom.Polygon) Location {
	parity := 0

	for i := 0; i < poly.NumRings(); i++ {
		switch PointInRing(p, poly.Ring(i)) {
		case OnBoundary:
			return OnBoundary
		case Inside:
			parity++
		}
	}

	if parity%2 == 1 {
		return Inside
	}

	return Outside
}

// RingsIntersect reports whether any edge of a touches or crosses any edge
// of b.
func RingsIntersect(a, b geom.Ring) bool {
	if !a.Bound().Intersects(b.Bound()) {
		return false
	}

	for i := 0; i < a.Len()-1; i++ {
		for j := 0; j < b.Len()-1; j++ {
			if SegmentsIntersect(a.At(i), a.At(i+1), b.At(j), b.At(j+1)) {
				return true
			}
		}
	}

	return false
}

// RingsCross reports whether any edge of a strictly crosses any edge of b.
// Touching endpoints and collinear overlap do not count.
func RingsCross(a, b geom.Ring) bool {
	if !a.Bound().Intersects(b.Bound()) {
		return false
	}

	for i := 0; i < a.Len()-1; i++ {
		for j := 0; j < b.Len()-1; j++ {
			if SegmentsCross(a.At(i), a.At(i+1), b.At(j), b.At(j+1)) {
				return true
			}
		}
	}

	return false
}

// PointRingDistance is the minimum distance from p to the ring's boundary.
func PointRingDistance(p geom.XY, r geom.Ring) float64 {
	d := math.Inf(1)

	for i := 0; i < r.Len()-1; i++ {
		d = min(d, PointSegmentDistance(p, r.At(i), r.At(i+1)))
	}

	return d
}

// RingsDistance is the minimum distance between the boundaries of two rings,
// zero when they touch or cross.
func RingsDistance(a, b geom.Ring) float64 {
	d := math.Inf(1)

	for i := 0; i < a.Len()-1; i++ {
		for j := 0; j < b.Len()-1; j++ {
			d = min(d, SegmentsDistance(a.At(i), a.At(i+1), b.At(j), b.At(j+1)))

			if d == 0 {
				return 0
			}
		}
	}

	return d
}
