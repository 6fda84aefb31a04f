package camgen

import "math"

// Curve is a 2D curve parametrized by arc length. Implementations are
// immutable after construction.
//
// Value returns the position at arc length s from the start of the curve,
// relative to that start, together with the unit tangent direction. It is
// defined for 0 <= s <= Length(); the composite curve clamps s into range
// before delegating.
type Curve interface {
	Length() float64
	Value(s float64) (Point, Point)
}

////////////////////////////////////////////////////////////////

// Line is a straight curve segment given by its displacement from start to
// end. A zero-length line is legal but its direction is undefined; the
// segment conversion step elides degenerate closing lines so that they never
// enter a composite curve.
type Line struct {
	Displacement Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.Displacement.Length()
}

// Value returns the position at arc length s along the line and its constant
// unit direction.
func (l Line) Value(s float64) (Point, Point) {
	dir := l.Displacement.Norm(1.0)
	return dir.Mul(s), dir
}

////////////////////////////////////////////////////////////////

// CircleArc is a circular arc of the given radius between two angles in
// radians. The sweep Theta1-Theta0 is signed; a negative sweep runs
// clockwise. The arc's own start point is the local origin.
type CircleArc struct {
	Radius         float64
	Theta0, Theta1 float64
}

// Length returns the arc length, ie. radius times the absolute sweep.
func (a CircleArc) Length() float64 {
	return a.Radius * math.Abs(a.Theta1-a.Theta0)
}

// Value returns the position at arc length s along the arc, relative to the
// arc's start point, and the unit tangent signed by the sweep direction.
func (a CircleArc) Value(s float64) (Point, Point) {
	sign := 1.0
	if a.Theta1 < a.Theta0 {
		sign = -1.0
	}
	theta := a.Theta0 + sign*s/a.Radius
	sintheta, costheta := math.Sincos(theta)
	sintheta0, costheta0 := math.Sincos(a.Theta0)
	pos := Point{a.Radius * (costheta - costheta0), a.Radius * (sintheta - sintheta0)}
	dir := Point{-sintheta, costheta}.Mul(sign)
	return pos, dir
}

// Center returns the arc's center relative to its start point.
func (a CircleArc) Center() Point {
	sintheta0, costheta0 := math.Sincos(a.Theta0)
	return Point{-a.Radius * costheta0, -a.Radius * sintheta0}
}
