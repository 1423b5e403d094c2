package crs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madronegeo/sf/geom"
)

func californiaAlbers(t *testing.T) *albers {
	t.Helper()

	e, err := lookup(geom.CaliforniaAlbers)
	require.NoError(t, err)
	require.NotNil(t, e.proj)

	return e.proj
}

func TestAlbersForwardOrigin(t *testing.T) {
	al := californiaAlbers(t)

	// on the central meridian at the latitude of origin the projection
	// reduces to the false offsets
	east, north, err := al.forward(geom.Degrees(-120).Radians(), 0)
	require.NoError(t, err)

	assert.InDelta(t, 0, east, 1e-6)
	assert.InDelta(t, -4000000, north, 1e-6)
}

func TestAlbersForwardSymmetry(t *testing.T) {
	al := californiaAlbers(t)

	lat := geom.Degrees(38).Radians()

	eastW, northW, err := al.forward(geom.Degrees(-121).Radians(), lat)
	require.NoError(t, err)

	eastE, northE, err := al.forward(geom.Degrees(-119).Radians(), lat)
	require.NoError(t, err)

	assert.InDelta(t, eastW, -eastE, 1e-6)
	assert.InDelta(t, northW, northE, 1e-6)
	assert.Negative(t, eastW)
	assert.Positive(t, eastE)
}

func TestAlbersNorthingMonotonic(t *testing.T) {
	al := californiaAlbers(t)

	lon := geom.Degrees(-120).Radians()

	var prev float64 = math.Inf(-1)

	for _, lat := range []geom.Degrees{32, 34, 36, 38, 40, 42} {
		_, north, err := al.forward(lon, lat.Radians())
		require.NoError(t, err)

		assert.Greater(t, north, prev, "northing must increase with latitude")
		prev = north
	}
}

func TestAlbersMeridianScale(t *testing.T) {
	al := californiaAlbers(t)

	lon := geom.Degrees(-120).Radians()

	_, n36, err := al.forward(lon, geom.Degrees(36).Radians())
	require.NoError(t, err)

	_, n37, err := al.forward(lon, geom.Degrees(37).Radians())
	require.NoError(t, err)

	// one degree of latitude is close to 111 km on the ellipsoid; between
	// the standard parallels the conic scale distortion is under 1%
	arc := n37 - n36
	assert.Greater(t, arc, 110000.0)
	assert.Less(t, arc, 112500.0)
}

func TestAlbersRoundTrip(t *testing.T) {
	al := californiaAlbers(t)

	lons := []geom.Degrees{-124.4, -122, -120, -118.5, -116, -114.1}
	lats := []geom.Degrees{32.5, 34, 36.75, 38.5816, 40.5, 42}

	for _, lon := range lons {
		for _, lat := range lats {
			east, north, err := al.forward(lon.Radians(), lat.Radians())
			require.NoError(t, err)

			gotLon, gotLat, err := al.inverse(east, north)
			require.NoError(t, err)

			assert.InDelta(t, float64(lon), float64(geom.Radian)*gotLon, 1e-7,
				"lon %v lat %v", lon, lat)
			assert.InDelta(t, float64(lat), float64(geom.Radian)*gotLat, 1e-7,
				"lon %v lat %v", lon, lat)
		}
	}
}

func TestAlbersInverseOutsideDomain(t *testing.T) {
	al := californiaAlbers(t)

	_, _, err := al.inverse(1e9, 1e9)
	assert.ErrorIs(t, err, ErrOutsideDomain)
}

func TestAlbersPole(t *testing.T) {
	al := californiaAlbers(t)

	east, north, err := al.forward(geom.Degrees(-120).Radians(), geom.Degrees(90).Radians())
	require.NoError(t, err)

	_, lat, err := al.inverse(east, north)
	require.NoError(t, err)

	assert.InDelta(t, math.Pi/2, lat, 1e-9)
}

func TestWrapLon(t *testing.T) {
	assert.InDelta(t, 0, wrapLon(2*math.Pi), 1e-15)
	assert.InDelta(t, math.Pi, wrapLon(math.Pi), 1e-15)
	assert.InDelta(t, -math.Pi/2, wrapLon(3*math.Pi/2), 1e-15)
}
