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

// Package planar implements the raw geometric algorithms behind the public
// measurement, buffering, and spatial predicate operations: segment
// intersection, point-in-polygon tests, closest-point distances, and ring
// offsetting. All inputs are assumed to share one planar coordinate space;
// coordinate reference system checks happen in the callers.
package planar

import (
	"math"

	"github.com/madronegeo/sf/geom"
)

// boundaryEps is the absolute distance under which a point is treated as
// lying on a boundary.
const boundaryEps = 1e-9

// Coincident reports whether two points lie within boundaryEps of each
// other.
func Coincident(p, q geom.XY) bool {
	return math.Hypot(p.X-q.X, p.Y-q.Y) <= boundaryEps
}

// cross is the z component of (b−a)×(c−a); positive when c lies left of the
// directed line a→b.
func cross(a, b, c geom.XY) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// onSegment reports whether c, already known to be collinear with [a,b],
// lies between a and b.
func onSegment(a, b, c geom.XY) bool {
	return math.Min(a.X, b.X) <= c.X && c.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= c.Y && c.Y <= math.Max(a.Y, b.Y)
}

// SegmentsIntersect reports whether segments [p1,p2] and [q1,q2] share at
// least one point. Endpoint touches and collinear overlap count.
func SegmentsIntersect(p1, p2, q1, q2 geom.XY) bool {
	if SegmentsCross(p1, p2, q1, q2) {
		return true
	}

	switch {
	case cross(q1, q2, p1) == 0 && onSegment(q1, q2, p1):
		return true
	case cross(q1, q2, p2) == 0 && onSegment(q1, q2, p2):
		return true
	case cross(p1, p2, q1) == 0 && onSegment(p1, p2, q1):
		return true
	case cross(p1, p2, q2) == 0 && onSegment(p1, p2, q2):
		return true
	default:
		return false
	}
}

// SegmentsCross reports whether the interiors of the two segments cross at a
// single point. Endpoint touches and collinear overlap do not count.
func SegmentsCross(p1, p2, q1, q2 geom.XY) bool {
	d1 := cross(q1, q2, p1)
	d2 := cross(q1, q2, p2)
	d3 := cross(p1, p2, q1)
	d4 := cross(p1, p2, q2)

	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// PointSegmentDistance is the Euclidean distance from p to the closest point
// of segment [a,b].
func PointSegmentDistance(p, a, b geom.XY) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y

	if dx == 0 && dy == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)

	switch {
	case t < 0:
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	case t > 1:
		return math.Hypot(p.X-b.X, p.Y-b.Y)
	default:
		return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
	}
}

// SegmentsDistance is the minimum distance between two segments, zero when
// they intersect.
func SegmentsDistance(p1, p2, q1, q2 geom.XY) float64 {
	if SegmentsIntersect(p1, p2, q1, q2) {
		return 0
	}

	d := PointSegmentDistance(p1, q1, q2)
	d = min(d, PointSegmentDistance(p2, q1, q2))
	d = min(d, PointSegmentDistance(q1, p1, p2))
	d = min(d, PointSegmentDistance(q2, p1, p2))

	return d
}
