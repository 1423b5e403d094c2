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

package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madronegeo/sf/geom"
)

func TestFeatureCopiesProperties(t *testing.T) {
	props := map[string]any{"name": "Pine Flat"}
	f := geom.NewFeature(geom.NewPoint(1, 2, geom.NAD83), props)

	props["name"] = "clobbered"
	assert.Equal(t, "Pine Flat", f.StringProperty("name"))

	got := f.Properties()
	got["name"] = "clobbered again"
	assert.Equal(t, "Pine Flat", f.StringProperty("name"))
}

func TestFeatureWithProperty(t *testing.T) {
	f := geom.NewFeature(geom.NewPoint(1, 2, geom.NAD83), map[string]any{"name": "Pine Flat"})

	g := f.WithProperty("area_m2", 100.0)

	assert.Equal(t, 1, f.NumProperties())
	assert.Equal(t, 2, g.NumProperties())
	assert.Equal(t, 100.0, g.FloatProperty("area_m2"))

	_, ok := f.Property("area_m2")
	assert.False(t, ok)

	// Replacing keeps the count.
	h := g.WithProperty("area_m2", 250.0)
	assert.Equal(t, 2, h.NumProperties())
	assert.Equal(t, 250.0, h.FloatProperty("area_m2"))
}

func TestFeatureTypedProperties(t *testing.T) {
	f := geom.NewFeature(geom.NewPoint(1, 2, geom.NAD83), map[string]any{
		"name":  "Pine Flat",
		"sites": 42,
		"ratio": float32(0.5),
		"big":   int64(7),
	})

	assert.Equal(t, "Pine Flat", f.StringProperty("name"))
	assert.Equal(t, "", f.StringProperty("sites"))
	assert.Equal(t, "", f.StringProperty("absent"))

	assert.Equal(t, 42.0, f.FloatProperty("sites"))
	assert.Equal(t, 0.5, f.FloatProperty("ratio"))
	assert.Equal(t, 7.0, f.FloatProperty("big"))
	assert.Zero(t, f.FloatProperty("name"))
}

func TestNewFeatureCollectionValidatesSRID(t *testing.T) {
	ok := geom.NewFeature(geom.NewPoint(1, 2, geom.NAD83), nil)
	other := geom.NewFeature(geom.NewPoint(1, 2, geom.CaliforniaAlbers), nil)

	_, err := geom.NewFeatureCollection(geom.NAD83, ok, other)
	assert.ErrorIs(t, err, geom.ErrCRSMismatch)

	fc, err := geom.NewFeatureCollection(geom.NAD83, ok)
	require.NoError(t, err)
	assert.Equal(t, geom.NAD83, fc.SRID())
	assert.Equal(t, 1, fc.Len())
}

func TestNewFeatureCollectionRejectsMissingGeometry(t *testing.T) {
	_, err := geom.NewFeatureCollection(geom.NAD83, geom.Feature{})
	assert.ErrorIs(t, err, geom.ErrInvalidGeometry)
}

func TestFeatureCollectionAppend(t *testing.T) {
	fc, err := geom.NewFeatureCollection(geom.NAD83,
		geom.NewFeature(geom.NewPoint(1, 2, geom.NAD83), nil))
	require.NoError(t, err)

	grown, err := fc.Append(
		geom.NewFeature(geom.NewPoint(3, 4, geom.NAD83), nil),
		geom.NewFeature(geom.NewPoint(5, 6, geom.NAD83), nil))
	require.NoError(t, err)

	assert.Equal(t, 3, grown.Len())
	assert.Equal(t, geom.NAD83, grown.SRID())
	assert.Equal(t, geom.NewPoint(5, 6, geom.NAD83), grown.At(2).Geometry())

	// The receiver is left untouched.
	assert.Equal(t, 1, fc.Len())

	_, err = fc.Append(geom.NewFeature(geom.NewPoint(0, 0, geom.CaliforniaAlbers), nil))
	assert.ErrorIs(t, err, geom.ErrCRSMismatch)

	_, err = fc.Append(geom.Feature{})
	assert.ErrorIs(t, err, geom.ErrInvalidGeometry)
}

func TestFeatureCollectionFilter(t *testing.T) {
	features := []geom.Feature{
		geom.NewFeature(geom.NewPoint(1, 2, geom.NAD83), map[string]any{"sites": 42.0}),
		geom.NewFeature(geom.NewPoint(3, 4, geom.NAD83), map[string]any{"sites": 3.0}),
		geom.NewFeature(geom.NewPoint(5, 6, geom.NAD83), map[string]any{"sites": 15.0}),
	}
	fc, err := geom.NewFeatureCollection(geom.NAD83, features...)
	require.NoError(t, err)

	big := fc.Filter(func(f geom.Feature) bool { return f.FloatProperty("sites") >= 15 })

	require.Equal(t, 2, big.Len())
	assert.Equal(t, geom.NAD83, big.SRID())
	assert.Equal(t, 42.0, big.At(0).FloatProperty("sites"))
	assert.Equal(t, 15.0, big.At(1).FloatProperty("sites"))

	assert.Equal(t, 3, fc.Len())
}

func TestFeatureCollectionBound(t *testing.T) {
	fc, err := geom.NewFeatureCollection(geom.NAD83,
		geom.NewFeature(geom.NewPoint(-120.5, 38.2, geom.NAD83), nil),
		geom.NewFeature(geom.NewPoint(-119.9, 37.7, geom.NAD83), nil))
	require.NoError(t, err)

	b := fc.Bound()
	assert.Equal(t, -120.5, b.MinX)
	assert.Equal(t, 37.7, b.MinY)
	assert.Equal(t, -119.9, b.MaxX)
	assert.Equal(t, 38.2, b.MaxY)
}

func TestEmptyFeatureCollection(t *testing.T) {
	fc, err := geom.NewFeatureCollection(geom.CaliforniaAlbers)
	require.NoError(t, err)

	assert.Zero(t, fc.Len())
	assert.Empty(t, fc.Features())
	assert.True(t, fc.Bound().IsEmpty())
}
