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
	"fmt"

	"github.com/madronegeo/sf/geom"
)

// Transform reprojects a geometry into the target coordinate reference
// system, pointwise. The input is returned unchanged when it already carries
// the target SRID. Both systems must be registered.
//
// Geographic-to-geographic transforms are the identity: the registry carries
// systems of one datum family, so no datum shift is applied.
func Transform(g geom.Geometry, target geom.SRID) (geom.Geometry, error) {
	if g.SRID() == target {
		return g, nil
	}

	src, err := lookup(g.SRID())
	if err != nil {
		return nil, err
	}

	dst, err := lookup(target)
	if err != nil {
		return nil, err
	}

	tr := transformer{src: src, dst: dst}

	switch v := g.(type) {
	case geom.Point:
		x, y, err := tr.xy(v.X(), v.Y())
		if err != nil {
			return nil, err
		}

		return geom.NewPoint(x, y, target), nil

	case geom.Polygon:
		rings := make([]geom.Ring, v.NumRings())

		for i := 0; i < v.NumRings(); i++ {
			coords := v.Ring(i).Coords()

			for j, c := range coords {
				x, y, err := tr.xy(c.X, c.Y)
				if err != nil {
					return nil, err
				}

				coords[j] = geom.XY{X: x, Y: y}
			}

			// reprojection is a continuous bijection on the valid
			// region, so validated rings stay valid
			r, err := geom.NewRing(coords)
			if err != nil {
				return nil, err
			}

			rings[i] = r
		}

		return geom.NewPolygon(target, rings...)

	default:
		return nil, fmt.Errorf("%w: cannot transform geometry type %v", ErrUnsupportedCRS, g.Type())
	}
}

// TransformCollection reprojects every feature of a collection into the
// target system, preserving order and attributes.
func TransformCollection(fc geom.FeatureCollection, target geom.SRID) (geom.FeatureCollection, error) {
	if fc.SRID() == target {
		return fc, nil
	}

	features := make([]geom.Feature, fc.Len())

	for i := 0; i < fc.Len(); i++ {
		f := fc.At(i)

		g, err := Transform(f.Geometry(), target)
		if err != nil {
			return geom.FeatureCollection{}, fmt.Errorf("feature %d: %w", i, err)
		}

		features[i] = geom.NewFeature(g, f.Properties())
	}

	return geom.NewFeatureCollection(target, features...)
}

// transformer maps one coordinate pair between two registered systems via
// geographic radians.
type transformer struct {
	src entry
	dst entry
}

func (t transformer) xy(x, y float64) (float64, float64, error) {
	var lon, lat float64

	switch t.src.crs.Kind {
	case Geographic:
		lon = geom.Degrees(x).Radians()
		lat = geom.Degrees(y).Radians()
	case Projected:
		var err error

		lon, lat, err = t.src.proj.inverse(x, y)
		if err != nil {
			return 0, 0, fmt.Errorf("SRID %d: %w", t.src.crs.SRID, err)
		}
	}

	switch t.dst.crs.Kind {
	case Projected:
		east, north, err := t.dst.proj.forward(lon, lat)
		if err != nil {
			return 0, 0, fmt.Errorf("SRID %d: %w", t.dst.crs.SRID, err)
		}

		return east, north, nil
	default:
		return float64(geom.Radian) * lon, float64(geom.Radian) * lat, nil
	}
}
