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

// Package unit pairs scalar measurements with explicit unit tags so that a
// converted value can never silently keep the wrong label. Every measurement
// produced by the toolkit is a Measure, never a bare float with an implied
// unit.
package unit

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnitMismatch is returned when converting a Measure across dimensions,
// e.g. an area into a length.
var ErrUnitMismatch = errors.New("unit dimension mismatch")

// ErrUnknownUnit is returned when parsing an unrecognized unit name.
var ErrUnknownUnit = errors.New("unknown unit")

// Dimension is the physical dimension of a Unit.
type Dimension int32

const (
	// Length units measure planar distance.
	Length Dimension = iota

	// Area units measure planar surface.
	Area
)

func (d Dimension) String() string {
	switch d {
	case Length:
		return "length"
	case Area:
		return "area"
	default:
		return fmt.Sprintf("Dimension(%d)", int32(d))
	}
}

// Unit is an enumeration of the measurement units understood by the toolkit.
type Unit int32

const (
	// Meter is the SI base length unit, the native unit of the supported
	// projected coordinate reference systems.
	Meter Unit = iota

	// Kilometer is 1000 meters.
	Kilometer

	// Foot is the international foot, exactly 0.3048 m.
	Foot

	// Mile is the international mile, exactly 1609.344 m.
	Mile

	// SquareMeter is the native area unit of meter-based projections.
	SquareMeter

	// SquareKilometer is 1e6 square meters.
	SquareKilometer

	// Hectare is 10,000 square meters.
	Hectare

	// Acre is exactly 4046.8564224 square meters, the international acre.
	Acre
)

// factors convert each unit to its dimension's base unit (meter, square
// meter). The constants are exact by international definition.
var factors = map[Unit]float64{
	Meter:           1,
	Kilometer:       1000,
	Foot:            0.3048,
	Mile:            1609.344,
	SquareMeter:     1,
	SquareKilometer: 1e6,
	Hectare:         10000,
	Acre:            4046.8564224,
}

// Dimension reports the physical dimension of the unit.
func (u Unit) Dimension() Dimension {
	if u >= SquareMeter {
		return Area
	}

	return Length
}

// Square reports the area unit corresponding to a length unit, e.g. Meter to
// SquareMeter. It reports false for length units with no named square and
// for units that are already areas.
func (u Unit) Square() (Unit, bool) {
	switch u {
	case Meter:
		return SquareMeter, true
	case Kilometer:
		return SquareKilometer, true
	default:
		return u, false
	}
}

func (u Unit) String() string {
	switch u {
	case Meter:
		return "m"
	case Kilometer:
		return "km"
	case Foot:
		return "ft"
	case Mile:
		return "mi"
	case SquareMeter:
		return "m2"
	case SquareKilometer:
		return "km2"
	case Hectare:
		return "ha"
	case Acre:
		return "acre"
	default:
		return fmt.Sprintf("Unit(%d)", int32(u))
	}
}

// ParseUnit converts a unit name, as accepted on the command line, to a Unit.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "m", "meter", "meters":
		return Meter, nil
	case "km", "kilometer", "kilometers":
		return Kilometer, nil
	case "ft", "foot", "feet":
		return Foot, nil
	case "mi", "mile", "miles":
		return Mile, nil
	case "m2", "sqm":
		return SquareMeter, nil
	case "km2", "sqkm":
		return SquareKilometer, nil
	case "ha", "hectare", "hectares":
		return Hectare, nil
	case "acre", "acres":
		return Acre, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

// Measure is a scalar paired with its unit.
type Measure struct {
	Value float64
	Unit  Unit
}

// New constructs a Measure.
func New(value float64, unit Unit) Measure {
	return Measure{Value: value, Unit: unit}
}

// Convert returns the measure expressed in another unit of the same
// dimension. Converting across dimensions fails with ErrUnitMismatch.
func (m Measure) Convert(to Unit) (Measure, error) {
	if m.Unit.Dimension() != to.Dimension() {
		return Measure{}, fmt.Errorf("%w: cannot convert %s to %s", ErrUnitMismatch, m.Unit, to)
	}

	return Measure{Value: m.Value * factors[m.Unit] / factors[to], Unit: to}, nil
}

func (m Measure) String() string {
	return strconv.FormatFloat(m.Value, 'f', -1, 64) + " " + m.Unit.String()
}
