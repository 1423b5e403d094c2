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

package crs

import (
	"math"
)

const (
	// maxIterations bounds the Newton iteration of the inverse projection.
	maxIterations = 15

	// iterTolerance stops the inverse iteration; 1e-12 rad is well below
	// the 1e-6 degree round-trip guarantee.
	iterTolerance = 1e-12

	// poleTolerance decides when an authalic latitude is pinned to a pole.
	poleTolerance = 1e-11
)

// albers holds the precomputed constants of one Albers equal-area conic
// projection in its ellipsoidal form (Snyder, Map Projections: A Working
// Manual, 1987, eqs. 14-1..14-21 and 3-12/3-16). All angles are radians.
type albers struct {
	a  float64 // semi-major axis, meters
	e  float64 // first eccentricity
	e2 float64 // first eccentricity squared

	n      float64 // cone constant
	c      float64 // Snyder's C
	rho0   float64 // radius at the latitude of origin
	qPolar float64 // authalic q at the pole
	lon0   float64 // central meridian
	fe     float64 // false easting, meters
	fn     float64 // false northing, meters
}

func newAlbers(ell Ellipsoid, p AlbersParams) *albers {
	al := &albers{
		a:    ell.SemiMajor,
		e2:   ell.EccentricitySquared(),
		lon0: p.LongitudeOrigin.Radians(),
		fe:   p.FalseEasting,
		fn:   p.FalseNorthing,
	}
	al.e = math.Sqrt(al.e2)

	phi1 := p.StandardParallel1.Radians()
	phi2 := p.StandardParallel2.Radians()
	phi0 := p.LatitudeOrigin.Radians()

	m1 := al.m(phi1)
	m2 := al.m(phi2)
	q1 := al.q(math.Sin(phi1))
	q2 := al.q(math.Sin(phi2))
	q0 := al.q(math.Sin(phi0))

	if math.Abs(phi1-phi2) < iterTolerance {
		al.n = math.Sin(phi1)
	} else {
		al.n = (m1*m1 - m2*m2) / (q2 - q1)
	}

	al.c = m1*m1 + al.n*q1
	al.rho0 = al.a * math.Sqrt(al.c-al.n*q0) / al.n
	al.qPolar = al.q(1)

	return al
}

// m is Snyder 14-15, the radius of a parallel over a·cosφ.
func (al *albers) m(phi float64) float64 {
	sinPhi := math.Sin(phi)

	return math.Cos(phi) / math.Sqrt(1-al.e2*sinPhi*sinPhi)
}

// q is Snyder 3-12, twice the authalic latitude sine scaled to the ellipsoid.
func (al *albers) q(sinPhi float64) float64 {
	es := al.e * sinPhi

	return (1 - al.e2) * (sinPhi/(1-es*es) - math.Log((1-es)/(1+es))/(2*al.e))
}

// forward maps geographic (lon, lat) radians to projected (E, N) meters.
func (al *albers) forward(lon, lat float64) (east, north float64, err error) {
	r := al.c - al.n*al.q(math.Sin(lat))
	if r < 0 {
		return 0, 0, ErrOutsideDomain
	}

	rho := al.a * math.Sqrt(r) / al.n
	theta := al.n * wrapLon(lon-al.lon0)

	return al.fe + rho*math.Sin(theta), al.fn + al.rho0 - rho*math.Cos(theta), nil
}

// inverse maps projected (E, N) meters back to geographic (lon, lat) radians
// using Snyder's 3-16 iteration on the authalic latitude.
func (al *albers) inverse(east, north float64) (lon, lat float64, err error) {
	dx := east - al.fe
	dy := al.rho0 - (north - al.fn)

	rho := math.Hypot(dx, dy)
	theta := math.Atan2(dx, dy)

	if al.n < 0 {
		rho = -rho
		theta = math.Atan2(-dx, -dy)
	}

	q := (al.c - rho*rho*al.n*al.n/(al.a*al.a)) / al.n

	switch {
	case math.Abs(q) > al.qPolar+poleTolerance:
		return 0, 0, ErrOutsideDomain
	case math.Abs(q) >= al.qPolar-poleTolerance:
		lat = math.Copysign(math.Pi/2, q)
	default:
		lat = math.Asin(clamp(q/2, -1, 1))

		for i := 0; i < maxIterations; i++ {
			sinPhi := math.Sin(lat)
			cosPhi := math.Cos(lat)

			if math.Abs(cosPhi) < poleTolerance {
				break
			}

			es := al.e * sinPhi
			one := 1 - es*es
			delta := one * one / (2 * cosPhi) *
				(q/(1-al.e2) - sinPhi/one + math.Log((1-es)/(1+es))/(2*al.e))

			lat += delta
			if math.Abs(delta) < iterTolerance {
				break
			}
		}
	}

	return wrapLon(al.lon0 + theta/al.n), lat, nil
}

// wrapLon normalizes a longitude difference into (−π, π].
func wrapLon(lon float64) float64 {
	for lon > math.Pi {
		lon -= 2 * math.Pi
	}

	for lon <= -math.Pi {
		lon += 2 * math.Pi
	}

	return lon
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
