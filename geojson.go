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
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/madronegeo/sf/crs"
	"github.com/madronegeo/sf/geom"
)

// readGeoJSON decodes a GeoJSON feature collection into geom features. The
// coordinate reference system comes from the document's legacy named-CRS
// member when present, else from the configured default. MultiPolygon
// features are exploded into one polygon feature each, sharing the original
// attributes, so that downstream operations see only the two supported
// geometry variants.
func readGeoJSON(r io.Reader, cfg datasetOptions) (geom.FeatureCollection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return geom.FeatureCollection{}, fmt.Errorf("could not read GeoJSON document: %w", err)
	}

	ofc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return geom.FeatureCollection{}, fmt.Errorf("could not unmarshal GeoJSON document: %w", err)
	}

	srid := cfg.srid

	if s, ok, err := crsMember(ofc.ExtraMembers); err != nil {
		return geom.FeatureCollection{}, err
	} else if ok {
		srid = s
	}

	features := make([]geom.Feature, 0, len(ofc.Features))

	for i, of := range ofc.Features {
		props := map[string]any(of.Properties)

		switch g := of.Geometry.(type) {
		case orb.Point:
			features = append(features, geom.NewFeature(geom.NewPoint(g[0], g[1], srid), props))

		case orb.Polygon:
			poly, err := polygonFromOrb(g, srid)
			if err != nil {
				return geom.FeatureCollection{}, fmt.Errorf("feature %d: %w", i, err)
			}

			features = append(features, geom.NewFeature(poly, props))

		case orb.MultiPolygon:
			for k, member := range g {
				poly, err := polygonFromOrb(member, srid)
				if err != nil {
					return geom.FeatureCollection{}, fmt.Errorf("feature %d polygon %d: %w", i, k, err)
				}

				features = append(features, geom.NewFeature(poly, props))
			}

		default:
			return geom.FeatureCollection{}, fmt.Errorf("feature %d: %w: GeoJSON %s geometry", i, geom.ErrInvalidGeometry, of.Geometry.GeoJSONType())
		}
	}

	return geom.NewFeatureCollection(srid, features...)
}

// writeGeoJSON encodes a feature collection as a GeoJSON document. A known
// coordinate reference system is always declared with the legacy named-CRS
// member; spatial data with an implied CRS is how datasets get misread.
func writeGeoJSON(w io.Writer, fc geom.FeatureCollection) error {
	ofc := geojson.NewFeatureCollection()

	if fc.SRID() != geom.UnknownSRID {
		ofc.ExtraMembers = geojson.Properties{"crs": namedCRS(fc.SRID())}
	}

	for i := 0; i < fc.Len(); i++ {
		f := fc.At(i)

		var og orb.Geometry

		switch g := f.Geometry().(type) {
		case geom.Point:
			og = orb.Point{g.X(), g.Y()}
		case geom.Polygon:
			og = polygonToOrb(g)
		default:
			return fmt.Errorf("feature %d: %w: cannot encode %v", i, geom.ErrInvalidGeometry, f.Geometry().Type())
		}

		of := geojson.NewFeature(og)
		of.Properties = geojson.Properties(f.Properties())
		ofc.Append(of)
	}

	data, err := json.Marshal(ofc)
	if err != nil {
		return fmt.Errorf("could not marshal GeoJSON document: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("could not write GeoJSON document: %w", err)
	}

	return nil
}

// polygonFromOrb validates and converts one GeoJSON polygon. Rings missing
// their closing coordinate are closed; everything else must already be
// valid.
func polygonFromOrb(p orb.Polygon, srid geom.SRID) (geom.Polygon, error) {
	rings := make([]geom.Ring, len(p))

	for i, ring := range p {
		coords := make([]geom.XY, 0, len(ring)+1)
		for _, pt := range ring {
			coords = append(coords, geom.XY{X: pt[0], Y: pt[1]})
		}

		if len(coords) > 0 && coords[0] != coords[len(coords)-1] {
			coords = append(coords, coords[0])
		}

		r, err := geom.NewRing(coords)
		if err != nil {
			return geom.Polygon{}, fmt.Errorf("ring %d: %w", i, err)
		}

		rings[i] = r
	}

	return geom.NewPolygon(srid, rings...)
}

func polygonToOrb(p geom.Polygon) orb.Polygon {
	op := make(orb.Polygon, p.NumRings())

	for i := 0; i < p.NumRings(); i++ {
		coords := p.Ring(i).Coords()

		ring := make(orb.Ring, len(coords))
		for k, c := range coords {
			ring[k] = orb.Point{c.X, c.Y}
		}

		op[i] = ring
	}

	return op
}

// namedCRS builds the legacy GeoJSON named-CRS member for an EPSG code.
func namedCRS(srid geom.SRID) map[string]any {
	return map[string]any{
		"type": "name",
		"properties": map[string]any{
			"name": fmt.Sprintf("urn:ogc:def:crs:EPSG::%d", srid),
		},
	}
}

// crsMember extracts the EPSG code from a document's legacy named-CRS
// member. The member is optional; a present member that cannot be resolved
// is an error rather than a silent fallback to the default system.
func crsMember(extra geojson.Properties) (geom.SRID, bool, error) {
	raw, ok := extra["crs"]
	if !ok {
		return geom.UnknownSRID, false, nil
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return geom.UnknownSRID, false, fmt.Errorf("%w: malformed crs member", crs.ErrUnsupportedCRS)
	}

	props, ok := m["properties"].(map[string]any)
	if !ok {
		return geom.UnknownSRID, false, fmt.Errorf("%w: malformed crs member", crs.ErrUnsupportedCRS)
	}

	name, ok := props["name"].(string)
	if !ok {
		return geom.UnknownSRID, false, fmt.Errorf("%w: malformed crs member", crs.ErrUnsupportedCRS)
	}

	srid, err := parseCRSName(name)
	if err != nil {
		return geom.UnknownSRID, false, err
	}

	return srid, true, nil
}

// parseCRSName resolves "urn:ogc:def:crs:EPSG::3310" or "EPSG:3310" style
// names to an SRID.
func parseCRSName(name string) (geom.SRID, error) {
	last := name
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		last = name[i+1:]
	}

	code, err := strconv.ParseInt(last, 10, 32)
	if err != nil || code <= 0 {
		return geom.UnknownSRID, fmt.Errorf("%w: crs member %q", crs.ErrUnsupportedCRS, name)
	}

	prefix := strings.ToUpper(name[:len(name)-len(last)])
	if prefix != "" && !strings.Contains(prefix, "EPSG") {
		return geom.UnknownSRID, fmt.Errorf("%w: crs member %q names a non-EPSG authority", crs.ErrUnsupportedCRS, name)
	}

	return geom.SRID(code), nil
}
