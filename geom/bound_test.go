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

	"github.com/madronegeo/sf/geom"
)

func TestEmptyBound(t *testing.T) {
	b := geom.EmptyBound()

	assert.True(t, b.IsEmpty())

	b.ExpandWithXY(3, 4)
	assert.False(t, b.IsEmpty())
	assert.Equal(t, 3.0, b.MinX)
	assert.Equal(t, 3.0, b.MaxX)
	assert.Equal(t, 4.0, b.MinY)
	assert.Equal(t, 4.0, b.MaxY)
}

func TestBound_ContainsXY(t *testing.T) {
	b := geom.Bound{MinX: -0.511482, MinY: 51.28554, MaxX: 0.335437, MaxY: 51.69344}

	testCases := []struct {
		name     string
		x        float64
		y        float64
		expected bool
	}{
		{"bottom/left corner", b.MinX, b.MinY, true},
		{"top/right corner", b.MaxX, b.MaxY, true},
		{"center", 0, 51.5, true},
		{"west of bound", b.MinX - 1e-5, 51.5, false},
		{"north of bound", 0, b.MaxY + 1e-5, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, b.ContainsXY(tc.x, tc.y))
		})
	}
}

func TestBound_Intersects(t *testing.T) {
	base := geom.Bound{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}

	testCases := []struct {
		name     string
		other    geom.Bound
		expected bool
	}{
		{"overlapping", geom.Bound{MinX: 5, MinY: 5, MaxX: 15, MaxY: 15}, true},
		{"touching edge", geom.Bound{MinX: 10, MinY: 0, MaxX: 20, MaxY: 10}, true},
		{"touching corner", geom.Bound{MinX: 10, MinY: 10, MaxX: 20, MaxY: 20}, true},
		{"disjoint east", geom.Bound{MinX: 11, MinY: 0, MaxX: 20, MaxY: 10}, false},
		{"disjoint north", geom.Bound{MinX: 0, MinY: 11, MaxX: 10, MaxY: 20}, false},
		{"contained", geom.Bound{MinX: 2, MinY: 2, MaxX: 8, MaxY: 8}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, base.Intersects(tc.other))
			assert.Equal(t, tc.expected, tc.other.Intersects(base))
		})
	}
}

func TestBound_Covers(t *testing.T) {
	base := geom.Bound{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}

	assert.True(t, base.Covers(geom.Bound{MinX: 2, MinY: 2, MaxX: 8, MaxY: 8}))
	assert.True(t, base.Covers(base))
	assert.False(t, base.Covers(geom.Bound{MinX: 2, MinY: 2, MaxX: 11, MaxY: 8}))
	assert.False(t, base.Covers(geom.Bound{MinX: -1, MinY: 2, MaxX: 8, MaxY: 8}))
}

func TestBound_WidthHeight(t *testing.T) {
	b := geom.Bound{MinX: 2, MinY: -3, MaxX: 12, MaxY: 4}

	assert.Equal(t, 10.0, b.Width())
	assert.Equal(t, 7.0, b.Height())
}

func TestBound_Center(t *testing.T) {
	b := geom.Bound{MinX: 2, MinY: -3, MaxX: 12, MaxY: 4}

	assert.Equal(t, geom.XY{X: 7, Y: 0.5}, b.Center())
	assert.True(t, b.ContainsXY(b.Center().X, b.Center().Y))
}

func TestBound_ExpandWithBound(t *testing.T) {
	b := geom.EmptyBound()
	b.ExpandWithBound(geom.Bound{MinX: 70, MinY: 20, MaxX: 90, MaxY: 45})
	b.ExpandWithBound(geom.Bound{MinX: -20, MinY: -20, MaxX: 20, MaxY: 20})
	b.ExpandWithBound(geom.Bound{MinX: -90, MinY: -45, MaxX: -70, MaxY: -25})

	assert.Equal(t, -90.0, b.MinX)
	assert.Equal(t, -45.0, b.MinY)
	assert.Equal(t, 90.0, b.MaxX)
	assert.Equal(t, 45.0, b.MaxY)

	assert.True(t, b.ContainsXY(90, 45))
	assert.True(t, b.ContainsXY(-90, -45))
	assert.False(t, b.ContainsXY(91, 0))
}

func TestBound_EqualWithin(t *testing.T) {
	a := geom.Bound{MinX: -0.511482, MinY: 51.28554, MaxX: 0.335437, MaxY: 51.69344}
	o := geom.Bound{MinX: a.MinX + 1e-6, MinY: a.MinY + 1e-6, MaxX: a.MaxX + 1e-6, MaxY: a.MaxY + 1e-6}

	assert.True(t, a.EqualWithin(o, 1e-5))
	assert.False(t, a.EqualWithin(o, 1e-7))
}

func TestBound_String(t *testing.T) {
	b := geom.Bound{MinX: -0.511482, MinY: 51.28554, MaxX: 0.335437, MaxY: 51.69344}
	assert.Equal(t, "[(-0.511482, 51.28554) (0.335437, 51.69344)]", b.String())
}
