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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/madronegeo/sf/geom"
)

func TestDegreesAngle(t *testing.T) {
	assert.True(t, geom.Angle(0.78539816).EqualWithin(geom.Degrees(45.0).Angle(), geom.E7))
}

func TestDegreesRadians(t *testing.T) {
	assert.InDelta(t, math.Pi, geom.Degrees(180).Radians(), 1e-15)
	assert.InDelta(t, -math.Pi/2, geom.Degrees(-90).Radians(), 1e-15)
}

func TestDegreesParse(t *testing.T) {
	d, err := geom.ParseDegrees("53.123450")
	if err != nil {
		t.Error(err)
	}

	assert.True(t, geom.Degrees(53.123450).EqualWithin(d, geom.E5))

	_, err = geom.ParseDegrees("abc")
	if err == nil {
		t.Error("Parsing should have failed")
	}
}

func TestDegreesEqualWithin(t *testing.T) {
	assert.True(t, geom.Degrees(53.123450).EqualWithin(geom.Degrees(53.123454), geom.E5))
	assert.False(t, geom.Degrees(53.123450).EqualWithin(geom.Degrees(53.123455), geom.E5))
}

func TestDegreesString(t *testing.T) {
	assert.Equal(t, "53° 7' 24.42\"", geom.Degrees(53.123450).String())
	assert.Equal(t, "-120° 0' 0\"", geom.Degrees(-120).String())
}
