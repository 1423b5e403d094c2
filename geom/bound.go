package geom

import (
	"fmt"
	"math"
)

// Bound is an axis-aligned bounding box in the same coordinate space as the
// geometry it covers.
type Bound struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// EmptyBound creates a Bound that is meant to be expanded.
func EmptyBound() *Bound {
	return &Bound{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// IsEmpty checks if the bound has never been expanded.
func (b Bound) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// ContainsXY checks if the bound contains the coordinate pair.
func (b Bound) ContainsXY(x, y float64) bool {
	return b.MinX <= x && x <= b.MaxX && b.MinY <= y && y <= b.MaxY
}

// Intersects checks if two bounds share at least one point.
func (b Bound) Intersects(o Bound) bool {
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX && b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

// Covers checks if the bound contains another bound entirely, boundary
// included.
func (b Bound) Covers(o Bound) bool {
	return b.MinX <= o.MinX && o.MaxX <= b.MaxX && b.MinY <= o.MinY && o.MaxY <= b.MaxY
}

// Width is the horizontal extent.
func (b Bound) Width() float64 { return b.MaxX - b.MinX }

// Height is the vertical extent.
func (b Bound) Height() float64 { return b.MaxY - b.MinY }

// Center is the midpoint of the bound.
func (b Bound) Center() XY {
	return XY{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// EqualWithin checks if two bounds are within a specific epsilon.
func (b Bound) EqualWithin(o Bound, eps float64) bool {
	return math.Abs(b.MinX-o.MinX) <= eps &&
		math.Abs(b.MinY-o.MinY) <= eps &&
		math.Abs(b.MaxX-o.MaxX) <= eps &&
		math.Abs(b.MaxY-o.MaxY) <= eps
}

// ExpandWithXY grows the bound to cover the coordinate pair.
func (b *Bound) ExpandWithXY(x, y float64) {
	if b.MinX > x {
		b.MinX = x
	}

	if b.MaxX < x {
		b.MaxX = x
	}

	if b.MinY > y {
		b.MinY = y
	}

	if b.MaxY < y {
		b.MaxY = y
	}
}

// ExpandWithBound grows the bound to cover another bound.
func (b *Bound) ExpandWithBound(o Bound) {
	if b.MinX > o.MinX {
		b.MinX = o.MinX
	}

	if b.MaxX < o.MaxX {
		b.MaxX = o.MaxX
	}

	if b.MinY > o.MinY {
		b.MinY = o.MinY
	}

	if b.MaxY < o.MaxY {
		b.MaxY = o.MaxY
	}
}

// Min reports the lower-left corner as an array, ready for index keys.
func (b Bound) Min() [2]float64 { return [2]float64{b.MinX, b.MinY} }

// Max reports the upper-right corner as an array, ready for index keys.
func (b Bound) Max() [2]float64 { return [2]float64{b.MaxX, b.MaxY} }

func (b Bound) String() string {
	return fmt.Sprintf("[(%s, %s) (%s, %s)]",
		ftoa(b.MinX), ftoa(b.MinY),
		ftoa(b.MaxX), ftoa(b.MaxY))
}
