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

// Package crs resolves spatial reference identifiers to coordinate reference
// system definitions and reprojects geometries between them.
//
// The registry is deliberately narrow compared to a full geodesy library: it
// holds geographic (longitude/latitude) systems and Albers equal-area conic
// projections only. Adding a further system means registering another
// parameter entry, not adding a code path; identifiers outside the registry
// fail with ErrUnsupportedCRS.
package crs

import (
	"errors"
	"fmt"
	"sync"

	"github.com/madronegeo/sf/geom"
	"github.com/madronegeo/sf/unit"
)

// ErrUnsupportedCRS is returned when a spatial reference identifier has no
// registered projection parameters.
var ErrUnsupportedCRS = errors.New("unsupported coordinate reference system")

// ErrOutsideDomain is returned when a coordinate falls outside the valid
// region of a projection, e.g. a planar point that maps beyond the poles.
var ErrOutsideDomain = errors.New("coordinate outside projection domain")

// Kind distinguishes geographic from projected coordinate systems.
type Kind int32

const (
	// Geographic systems carry (longitude, latitude) in decimal degrees.
	Geographic Kind = iota

	// Projected systems carry (easting, northing) in a length unit.
	Projected
)

func (k Kind) String() string {
	switch k {
	case Geographic:
		return "geographic"
	case Projected:
		return "projected"
	default:
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
}

// Ellipsoid is a reference ellipsoid given by its semi-major axis in meters
// and inverse flattening.
type Ellipsoid struct {
	SemiMajor         float64 `yaml:"semi_major"`
	InverseFlattening float64 `yaml:"inverse_flattening"`
}

// GRS80 is the ellipsoid underlying the NAD83 datum.
var GRS80 = Ellipsoid{SemiMajor: 6378137.0, InverseFlattening: 298.257222101}

// Flattening is the ellipsoid flattening f.
func (e Ellipsoid) Flattening() float64 { return 1 / e.InverseFlattening }

// EccentricitySquared is the first eccentricity squared, e² = 2f − f².
func (e Ellipsoid) EccentricitySquared() float64 {
	f := e.Flattening()

	return 2*f - f*f
}

// AlbersParams parameterizes an Albers equal-area conic projection: two
// standard parallels, the latitude and longitude of origin, and false
// easting/northing offsets in meters.
type AlbersParams struct {
	StandardParallel1 geom.Degrees
	StandardParallel2 geom.Degrees
	LatitudeOrigin    geom.Degrees
	LongitudeOrigin   geom.Degrees
	FalseEasting      float64
	FalseNorthing     float64
}

// CRS is one coordinate reference system definition: an identifier, a kind,
// the unit its coordinates are expressed in, the reference ellipsoid, and,
// for projected systems, the Albers parameter block.
type CRS struct {
	SRID      geom.SRID
	Name      string
	Kind      Kind
	Unit      unit.Unit // length unit of projected coordinates; unused for geographic
	Ellipsoid Ellipsoid
	Albers    *AlbersParams
}

// entry pairs a registered CRS with its memoized projection constants. The
// constants are computed once at registration and read-only afterwards.
type entry struct {
	crs  CRS
	proj *albers
}

var (
	mu       sync.RWMutex
	registry = make(map[geom.SRID]entry)
)

func init() {
	MustRegister(CRS{
		SRID:      geom.NAD83,
		Name:      "NAD83",
		Kind:      Geographic,
		Ellipsoid: GRS80,
	})

	MustRegister(CRS{
		SRID:      geom.CaliforniaAlbers,
		Name:      "NAD83 / California Albers",
		Kind:      Projected,
		Unit:      unit.Meter,
		Ellipsoid: GRS80,
		Albers: &AlbersParams{
			StandardParallel1: 34,
			StandardParallel2: 40.5,
			LatitudeOrigin:    0,
			LongitudeOrigin:   -120,
			FalseEasting:      0,
			FalseNorthing:     -4000000,
		},
	})
}

// Register adds a coordinate reference system to the registry. Projected
// systems must carry an Albers parameter block, geographic systems must not.
// Registering an SRID twice fails.
func Register(c CRS) error {
	if c.SRID == geom.UnknownSRID {
		return fmt.Errorf("%w: SRID 0 is reserved for unknown", ErrUnsupportedCRS)
	}

	switch c.Kind {
	case Geographic:
		if c.Albers != nil {
			return fmt.Errorf("%w: geographic SRID %d must not carry projection parameters", ErrUnsupportedCRS, c.SRID)
		}
	case Projected:
		if c.Albers == nil {
			return fmt.Errorf("%w: projected SRID %d lacks projection parameters", ErrUnsupportedCRS, c.SRID)
		}
	default:
		return fmt.Errorf("%w: SRID %d has unknown kind %v", ErrUnsupportedCRS, c.SRID, c.Kind)
	}

	if c.Ellipsoid == (Ellipsoid{}) {
		c.Ellipsoid = GRS80
	}

	e := entry{crs: c}
	if c.Kind == Projected {
		e.proj = newAlbers(c.Ellipsoid, *c.Albers)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, dup := registry[c.SRID]; dup {
		return fmt.Errorf("%w: SRID %d already registered", ErrUnsupportedCRS, c.SRID)
	}

	registry[c.SRID] = e

	return nil
}

// MustRegister is Register, panicking on failure. Intended for registering
// well-known systems at init time.
func MustRegister(c CRS) {
	if err := Register(c); err != nil {
		panic(err)
	}
}

// Lookup reports the coordinate reference system registered for srid.
func Lookup(srid geom.SRID) (CRS, error) {
	e, err := lookup(srid)
	if err != nil {
		return CRS{}, err
	}

	return e.crs, nil
}

func lookup(srid geom.SRID) (entry, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := registry[srid]
	if !ok {
		return entry{}, fmt.Errorf("%w: SRID %d", ErrUnsupportedCRS, srid)
	}

	return e, nil
}

// IsPlanar reports whether srid names a projected, length-unit system.
func IsPlanar(srid geom.SRID) (bool, error) {
	c, err := Lookup(srid)
	if err != nil {
		return false, err
	}

	return c.Kind == Projected, nil
}

// IsGeographic reports whether srid names an unprojected longitude/latitude
// system.
func IsGeographic(srid geom.SRID) (bool, error) {
	c, err := Lookup(srid)
	if err != nil {
		return false, err
	}

	return c.Kind == Geographic, nil
}
