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

package sf_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madronegeo/sf"
	"github.com/madronegeo/sf/crs"
	"github.com/madronegeo/sf/geom"
)

func TestReadDatasetFileGeoJSON(t *testing.T) {
	ds, err := sf.ReadDatasetFile("testdata/fire_perimeters.geojson")
	require.NoError(t, err)

	assert.Equal(t, sf.GeoJSON, ds.Format)
	assert.Zero(t, ds.Skipped)

	fires := ds.Collection
	assert.Equal(t, geom.CaliforniaAlbers, fires.SRID())

	// The MultiPolygon perimeter arrives as one feature per part.
	require.Equal(t, 4, fires.Len())

	names := make([]string, fires.Len())
	for i := range names {
		names[i] = fires.At(i).StringProperty("name")
	}
	assert.Equal(t, []string{"Butte", "Cedar", "Marsh Complex", "Marsh Complex"}, names)

	cedar := fires.At(1)
	assert.Equal(t, 2021.0, cedar.FloatProperty("year"))
	perimeter, ok := cedar.Geometry().(geom.Polygon)
	require.True(t, ok)
	assert.Equal(t, 2, perimeter.NumRings())
}

func TestReadDatasetFileCSV(t *testing.T) {
	ds, err := sf.ReadDatasetFile("testdata/campgrounds.csv")
	require.NoError(t, err)

	assert.Equal(t, sf.CSV, ds.Format)
	require.Equal(t, 3, ds.Collection.Len())
	assert.Equal(t, geom.NAD83, ds.Collection.SRID())

	point, ok := ds.Collection.At(0).Geometry().(geom.Point)
	require.True(t, ok)
	assert.Equal(t, -120.5, point.X())
	assert.Equal(t, 38.2, point.Y())
	assert.Equal(t, "Pine Flat", ds.Collection.At(0).StringProperty("name"))
}

func TestReadDatasetFileCSVInvalidRows(t *testing.T) {
	_, err := sf.ReadDatasetFile("testdata/campgrounds_bad.csv")
	assert.ErrorIs(t, err, sf.ErrMissingCoordinate)

	ds, err := sf.ReadDatasetFile("testdata/campgrounds_bad.csv", sf.WithSkipInvalid())
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Skipped)
	assert.Equal(t, 2, ds.Collection.Len())
}

func TestReadDatasetDefaultSRID(t *testing.T) {
	ds, err := sf.ReadDatasetFile("testdata/smoke_plumes.geojson")
	require.NoError(t, err)
	assert.Equal(t, geom.NAD83, ds.Collection.SRID())
	assert.Equal(t, 2, ds.Collection.Len())

	// Without a crs member in the document, the declared SRID wins.
	ds, err = sf.ReadDatasetFile("testdata/smoke_plumes.geojson", sf.WithSRID(geom.CaliforniaAlbers))
	require.NoError(t, err)
	assert.Equal(t, geom.CaliforniaAlbers, ds.Collection.SRID())
}

func TestGeoJSONRoundTrip(t *testing.T) {
	camp := geom.NewFeature(
		geom.NewPoint(-2000.5, 150000.25, geom.CaliforniaAlbers),
		map[string]any{"name": "Pine Flat", "sites": 42.0})
	outer := ringOf(t, xy(0, 0), xy(20, 0), xy(20, 20), xy(0, 20), xy(0, 0))
	hole := ringOf(t, xy(5, 5), xy(10, 5), xy(10, 10), xy(5, 10), xy(5, 5))
	perimeter := geom.NewFeature(
		polygonOf(t, geom.CaliforniaAlbers, outer, hole),
		map[string]any{"name": "Butte"})

	fc, err := geom.NewFeatureCollection(geom.CaliforniaAlbers, camp, perimeter)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, sf.WriteDataset(&buf, fc))

	ds, err := sf.ReadDataset(&buf)
	require.NoError(t, err)

	got := ds.Collection
	assert.Equal(t, geom.CaliforniaAlbers, got.SRID())
	require.Equal(t, 2, got.Len())

	point, ok := got.At(0).Geometry().(geom.Point)
	require.True(t, ok)
	assert.Equal(t, -2000.5, point.X())
	assert.Equal(t, 150000.25, point.Y())
	assert.Equal(t, "Pine Flat", got.At(0).StringProperty("name"))
	assert.Equal(t, 42.0, got.At(0).FloatProperty("sites"))

	poly, ok := got.At(1).Geometry().(geom.Polygon)
	require.True(t, ok)
	require.Equal(t, 2, poly.NumRings())
	assert.Equal(t, outer.Coords(), poly.Outer().Coords())
	assert.Equal(t, hole.Coords(), poly.Ring(1).Coords())
}

func TestWriteGeoJSONDeclaresCRS(t *testing.T) {
	fc := pointCollection(t, geom.CaliforniaAlbers, xy(0, 0))

	var buf bytes.Buffer
	require.NoError(t, sf.WriteDataset(&buf, fc))

	var doc struct {
		CRS struct {
			Type       string `json:"type"`
			Properties struct {
				Name string `json:"name"`
			} `json:"properties"`
		} `json:"crs"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "name", doc.CRS.Type)
	assert.Equal(t, "urn:ogc:def:crs:EPSG::3310", doc.CRS.Properties.Name)
}

func TestDatasetCompressedRoundTrip(t *testing.T) {
	fc := pointCollection(t, geom.CaliforniaAlbers, xy(1, 2), xy(3, 4))

	var buf bytes.Buffer
	require.NoError(t, sf.WriteDataset(&buf, fc, sf.WithCompression(sf.GzipCompression)))

	// Gzip magic; the stream really is compressed.
	require.GreaterOrEqual(t, buf.Len(), 2)
	assert.Equal(t, []byte{0x1f, 0x8b}, buf.Bytes()[:2])

	ds, err := sf.ReadDataset(&buf, sf.WithCompression(sf.GzipCompression))
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Collection.Len())
	assert.Equal(t, geom.CaliforniaAlbers, ds.Collection.SRID())
}

func TestDatasetFileRoundTrip(t *testing.T) {
	fc := pointCollection(t, geom.CaliforniaAlbers, xy(1, 2), xy(3, 4), xy(5, 6))

	path := filepath.Join(t.TempDir(), "sites.geojson.zst")
	require.NoError(t, sf.WriteDatasetFile(path, fc))

	ds, err := sf.ReadDatasetFile(path)
	require.NoError(t, err)
	assert.Equal(t, sf.GeoJSON, ds.Format)
	assert.Equal(t, 3, ds.Collection.Len())
	assert.Equal(t, geom.CaliforniaAlbers, ds.Collection.SRID())
}

func TestDatasetFileCSVRoundTrip(t *testing.T) {
	camp := geom.NewFeature(
		geom.NewPoint(-120.5, 38.2, geom.NAD83),
		map[string]any{"name": "Pine Flat"})
	fc, err := geom.NewFeatureCollection(geom.NAD83, camp)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "campgrounds.csv.gz")
	require.NoError(t, sf.WriteDatasetFile(path, fc))

	ds, err := sf.ReadDatasetFile(path)
	require.NoError(t, err)
	assert.Equal(t, sf.CSV, ds.Format)
	require.Equal(t, 1, ds.Collection.Len())
	assert.Equal(t, "Pine Flat", ds.Collection.At(0).StringProperty("name"))
}

func TestReadDatasetUnknownFormat(t *testing.T) {
	_, err := sf.ReadDataset(strings.NewReader("{}"), sf.WithFormat(sf.Format(9)))
	assert.ErrorIs(t, err, sf.ErrUnknownFormat)

	_, err = sf.ReadDatasetFile("testdata/perimeters.parquet")
	assert.ErrorIs(t, err, sf.ErrUnknownFormat)
}

func TestReadGeoJSONClosesOpenRings(t *testing.T) {
	const doc = `{
		"type": "FeatureCollection",
		"features": [{
			"type": "Feature",
			"properties": {},
			"geometry": {
				"type": "Polygon",
				"coordinates": [[[0, 0], [10, 0], [10, 10], [0, 10]]]
			}
		}]
	}`

	ds, err := sf.ReadDataset(strings.NewReader(doc))
	require.NoError(t, err)

	poly := ds.Collection.At(0).Geometry().(geom.Polygon)
	ring := poly.Outer()
	assert.Equal(t, 5, ring.Len())
	assert.Equal(t, ring.At(0), ring.At(ring.Len()-1))
}

func TestReadGeoJSONRejectsUnknownCRS(t *testing.T) {
	const doc = `{
		"type": "FeatureCollection",
		"crs": {"type": "name", "properties": {"name": "urn:ogc:def:crs:OGC:1.3:CRS84"}},
		"features": []
	}`

	_, err := sf.ReadDataset(strings.NewReader(doc))
	assert.ErrorIs(t, err, crs.ErrUnsupportedCRS)
}

func TestReadGeoJSONRejectsUnsupportedGeometry(t *testing.T) {
	const doc = `{
		"type": "FeatureCollection",
		"features": [{
			"type": "Feature",
			"properties": {},
			"geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 1]]}
		}]
	}`

	_, err := sf.ReadDataset(strings.NewReader(doc))
	assert.ErrorIs(t, err, geom.ErrInvalidGeometry)
}

func TestWriteCSV(t *testing.T) {
	first := geom.NewFeature(
		geom.NewPoint(-120.5, 38.2, geom.NAD83),
		map[string]any{"name": "Pine Flat", "sites": 42.0})
	second := geom.NewFeature(
		geom.NewPoint(-121.1, 39, geom.NAD83),
		map[string]any{"name": "Deer Creek"})
	fc, err := geom.NewFeatureCollection(geom.NAD83, first, second)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, sf.WriteDataset(&buf, fc, sf.WithFormat(sf.CSV)))

	want := "longitude,latitude,name,sites\n" +
		"-120.5,38.2,Pine Flat,42\n" +
		"-121.1,39,Deer Creek,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVRejectsPolygons(t *testing.T) {
	fc := collectionOf(t, geom.NAD83, square(t, geom.NAD83, 0, 0, 10))

	var buf bytes.Buffer
	err := sf.WriteDataset(&buf, fc, sf.WithFormat(sf.CSV))
	assert.ErrorIs(t, err, geom.ErrInvalidGeometry)
}
