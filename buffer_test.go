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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madronegeo/sf"
	"github.com/madronegeo/sf/geom"
)

func TestBufferPoint(t *testing.T) {
	center := geom.NewPoint(0, 0, geom.CaliforniaAlbers)

	buffered, err := sf.Buffer(center, 5)
	require.NoError(t, err)
	require.Equal(t, 1, buffered.NumRings())

	// The disc boundary is covered, so a point at exactly radius distance
	// still falls within the buffer.
	rim := geom.NewPoint(3, 4, geom.CaliforniaAlbers)
	within, err := sf.Within(rim, buffered)
	require.NoError(t, err)
	assert.True(t, within)

	a, err := sf.Area(buffered)
	require.NoError(t, err)
	assert.InEpsilon(t, math.Pi*25, a.Value, 0.01)
	assert.Greater(t, a.Value, math.Pi*25)
}

func TestBufferSegments(t *testing.T) {
	center := geom.NewPoint(0, 0, geom.CaliforniaAlbers)

	coarse, err := sf.Buffer(center, 5, sf.WithSegments(8))
	require.NoError(t, err)
	fine, err := sf.Buffer(center, 5)
	require.NoError(t, err)

	coarseArea, err := sf.Area(coarse)
	require.NoError(t, err)
	fineArea, err := sf.Area(fine)
	require.NoError(t, err)

	// Fewer segments overshoot the disc more, but never undershoot it.
	assert.Greater(t, coarseArea.Value, fineArea.Value)
	assert.Greater(t, fineArea.Value, math.Pi*25)

	clamped, err := sf.Buffer(center, 5, sf.WithSegments(2))
	require.NoError(t, err)
	clampedArea, err := sf.Area(clamped)
	require.NoError(t, err)
	assert.Equal(t, coarseArea.Value, clampedArea.Value)
}

func TestBufferPolygon(t *testing.T) {
	p := square(t, geom.CaliforniaAlbers, 0, 0, 10)

	buffered, err := sf.Buffer(p, 2)
	require.NoError(t, err)

	a, err := sf.Area(buffered)
	require.NoError(t, err)
	assert.InEpsilon(t, 100+4*10*2+math.Pi*4, a.Value, 0.01)

	within, err := sf.Within(p, buffered)
	require.NoError(t, err)
	assert.True(t, within)
}

func TestBufferGrowsMonotonically(t *testing.T) {
	p := square(t, geom.CaliforniaAlbers, 0, 0, 10)

	near, err := sf.Buffer(p, 2)
	require.NoError(t, err)
	far, err := sf.Buffer(p, 4)
	require.NoError(t, err)

	nearArea, err := sf.Area(near)
	require.NoError(t, err)
	farArea, err := sf.Area(far)
	require.NoError(t, err)
	assert.Greater(t, farArea.Value, nearArea.Value)

	within, err := sf.Within(near, far)
	require.NoError(t, err)
	assert.True(t, within)
}

func TestBufferShrinksHoles(t *testing.T) {
	outer := ringOf(t, xy(0, 0), xy(20, 0), xy(20, 20), xy(0, 20), xy(0, 0))
	hole := ringOf(t, xy(8, 8), xy(12, 8), xy(12, 12), xy(8, 12), xy(8, 8))
	p := polygonOf(t, geom.CaliforniaAlbers, outer, hole)

	buffered, err := sf.Buffer(p, 1)
	require.NoError(t, err)
	require.Equal(t, 2, buffered.NumRings())

	shrunk := buffered.Holes()[0]
	assert.InDelta(t, 4.0, math.Abs(shrunk.SignedArea()), 1e-9)
}

func TestBufferConsumesHole(t *testing.T) {
	outer := ringOf(t, xy(0, 0), xy(20, 0), xy(20, 20), xy(0, 20), xy(0, 0))
	hole := ringOf(t, xy(8, 8), xy(12, 8), xy(12, 12), xy(8, 12), xy(8, 8))
	p := polygonOf(t, geom.CaliforniaAlbers, outer, hole)

	buffered, err := sf.Buffer(p, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, buffered.NumRings())
}

func TestBufferNonPositiveDistance(t *testing.T) {
	center := geom.NewPoint(0, 0, geom.CaliforniaAlbers)

	_, err := sf.Buffer(center, 0)
	assert.ErrorIs(t, err, sf.ErrNonPositiveDistance)

	_, err = sf.Buffer(center, -2)
	assert.ErrorIs(t, err, sf.ErrNonPositiveDistance)
}

func TestBufferRejectsGeographicCRS(t *testing.T) {
	center := geom.NewPoint(-121, 38, geom.NAD83)

	_, err := sf.Buffer(center, 5)
	assert.ErrorIs(t, err, sf.ErrUnprojectedGeometry)
}
