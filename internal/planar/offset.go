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
	"math"

	"github.com/madronegeo/sf/geom"
)

const (
	// straightEps is the turn magnitude under which two consecutive edges
	// are treated as collinear.
	straightEps = 1e-12

	// miterLimit caps the miter join length, in multiples of the offset
	// distance; joins beyond it fall back to a bevel.
	miterLimit = 8.0
)

// CirclePoints approximates a disc of the given radius around c as a closed,
// counterclockwise regular polygon with segs edges. The polygon circumscribes
// the circle, with every edge tangent to it, so the full closed disc is
// contained in the result.
func CirclePoints(c geom.XY, radius float64, segs int) []geom.XY {
	r := radius / math.Cos(math.Pi/float64(segs))

	pts := make([]geom.XY, 0, segs+1)

	for k := 0; k < segs; k++ {
		theta := 2 * math.Pi * (float64(k) + 0.5) / float64(segs)
		pts = append(pts, geom.XY{X: c.X + r*math.Cos(theta), Y: c.Y + r*math.Sin(theta)})
	}

	return append(pts, pts[0])
}

// CCW returns the coordinates in counterclockwise order, reversing the input
// when it winds clockwise. The input must be closed; the result is a copy.
func CCW(coords []geom.XY) []geom.XY {
	cp := make([]geom.XY, len(coords))
	copy(cp, coords)

	var sum float64
	for i := 0; i < len(cp)-1; i++ {
		sum += (cp[i+1].X - cp[i].X) * (cp[i+1].Y + cp[i].Y)
	}

	if sum > 0 { // clockwise
		for i, j := 0, len(cp)-1; i < j; i, j = i+1, j-1 {
			cp[i], cp[j] = cp[j], cp[i]
		}
	}

	return cp
}

// OffsetRing offsets the boundary of a closed, counterclockwise ring by d.
// Positive d moves every edge outward, away from the interior, joining the
// offset edges with circular arcs at convex vertices and edge-intersection
// miters at reflex vertices. Negative d moves the boundary inward, shrinking
// the ring. The arc step is 2π/arcSegs.
//
// The result is exact for convex rings; for concave rings with offsets large
// relative to the local feature size it is an approximation that may
// self-touch. The result is closed, or nil when the input degenerates.
func OffsetRing(coords []geom.XY, d float64, arcSegs int) []geom.XY {
	if len(coords) < 4 || d == 0 {
		return nil
	}

	verts := dropClosingAndDuplicates(coords)
	n := len(verts)

	if n < 3 {
		return nil
	}

	out := make([]geom.XY, 0, 2*n)

	for i := 0; i < n; i++ {
		prev := verts[(i-1+n)%n]
		cur := verts[i]
		next := verts[(i+1)%n]

		dpX, dpY := unit(cur.X-prev.X, cur.Y-prev.Y)
		dqX, dqY := unit(next.X-cur.X, next.Y-cur.Y)

		// outward normals for a counterclockwise ring point right of travel
		np := geom.XY{X: cur.X + dpY*d, Y: cur.Y - dpX*d}
		nq := geom.XY{X: cur.X + dqY*d, Y: cur.Y - dqX*d}

		turn := dpX*dqY - dpY*dqX

		switch {
		case math.Abs(turn) <= straightEps && dpX*dqX+dpY*dqY > 0:
			out = appendPoint(out, np)

		case (turn > 0) == (d > 0):
			// the offset edges diverge around the vertex; join with an arc
			out = appendArc(out, cur, np, nq, d > 0, arcSegs)

		default:
			// the offset edges converge; join at their intersection
			m, ok := lineIntersection(
				geom.XY{X: prev.X + dpY*d, Y: prev.Y - dpX*d}, np,
				nq, geom.XY{X: next.X + dqY*d, Y: next.Y - dqX*d})

			if ok && math.Hypot(m.X-cur.X, m.Y-cur.Y) <= miterLimit*math.Abs(d) {
				out = appendPoint(out, m)
			} else {
				out = appendPoint(out, np)
				out = appendPoint(out, nq)
			}
		}
	}

	if len(out) < 3 {
		return nil
	}

	return append(out, out[0])
}

// dropClosingAndDuplicates strips the closing coordinate and merges
// consecutive duplicate vertices, which would otherwise produce zero-length
// edges with no offset direction.
func dropClosingAndDuplicates(coords []geom.XY) []geom.XY {
	verts := make([]geom.XY, 0, len(coords)-1)

	for _, c := range coords[:len(coords)-1] {
		if len(verts) > 0 && verts[len(verts)-1] == c {
			continue
		}

		verts = append(verts, c)
	}

	if len(verts) > 1 && verts[0] == verts[len(verts)-1] {
		verts = verts[:len(verts)-1]
	}

	return verts
}

func unit(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}

	return x / l, y / l
}

func appendPoint(out []geom.XY, p geom.XY) []geom.XY {
	if len(out) > 0 && out[len(out)-1] == p {
		return out
	}

	return append(out, p)
}

// appendArc emits points along the circle centered on c from point a to
// point b, sweeping counterclockwise when ccw is true, endpoints included.
func appendArc(out []geom.XY, c, a, b geom.XY, ccw bool, arcSegs int) []geom.XY {
	radius := math.Hypot(a.X-c.X, a.Y-c.Y)

	a0 := math.Atan2(a.Y-c.Y, a.X-c.X)
	a1 := math.Atan2(b.Y-c.Y, b.X-c.X)

	if ccw {
		for a1 < a0 {
			a1 += 2 * math.Pi
		}
	} else {
		for a1 > a0 {
			a1 -= 2 * math.Pi
		}
	}

	sweep := a1 - a0

	steps := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi / float64(arcSegs))))
	if steps < 1 {
		steps = 1
	}

	for s := 0; s <= steps; s++ {
		theta := a0 + sweep*float64(s)/float64(steps)
		out = appendPoint(out, geom.XY{X: c.X + radius*math.Cos(theta), Y: c.Y + radius*math.Sin(theta)})
	}

	return out
}

// lineIntersection reports the intersection of the infinite lines through
// [a1,a2] and [b1,b2], false when they are near parallel.
func lineIntersection(a1, a2, b1, b2 geom.XY) (geom.XY, bool) {
	rX, rY := a2.X-a1.X, a2.Y-a1.Y
	sX, sY := b2.X-b1.X, b2.Y-b1.Y

	den := rX*sY - rY*sX
	if math.Abs(den) < 1e-12 {
		return geom.XY{}, false
	}

	t := ((b1.X-a1.X)*sY - (b1.Y-a1.Y)*sX) / den

	return geom.XY{X: a1.X + t*rX, Y: a1.Y + t*rY}, true
}
