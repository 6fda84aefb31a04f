package camgen

import "sort"

// bezierTableN is the number of uniform parameter intervals used to build the
// arc length table of a Bezier. Each interval is integrated with n=5
// Gauss-Legendre quadrature, keeping the relative arc length error well below
// 1e-4 for the smooth curves that occur in practice.
const bezierTableN = 128

// Bezier is a cubic Bezier curve pinned at the local origin, with two control
// points and an end point relative to its start.
//
// Cubic arc length has no closed form. The constructor integrates the speed
// |B'(t)| once into a monotonic cumulative table; Value inverts the table by
// binary search with linear refinement and never re-integrates. Construct
// with NewBezier, the zero value has an empty table.
type Bezier struct {
	CP1, CP2, End Point

	cum []float64 // cumulative arc length at t = i/bezierTableN
}

// NewBezier returns the cubic Bezier curve from the local origin to end with
// control points cp1 and cp2, all relative to the curve's start, and computes
// its arc length parametrization.
func NewBezier(cp1, cp2, end Point) *Bezier {
	b := &Bezier{CP1: cp1, CP2: cp2, End: end}
	speed := func(t float64) float64 {
		return b.deriv(t).Length()
	}
	b.cum = make([]float64, bezierTableN+1)
	for i := 1; i <= bezierTableN; i++ {
		t0 := float64(i-1) / bezierTableN
		t1 := float64(i) / bezierTableN
		b.cum[i] = b.cum[i-1] + gaussLegendre5(speed, t0, t1)
	}
	return b
}

// pos evaluates the curve position at native parameter t in [0,1].
func (b *Bezier) pos(t float64) Point {
	u := 1.0 - t
	p := b.CP1.Mul(3.0 * u * u * t)
	p = p.Add(b.CP2.Mul(3.0 * u * t * t))
	return p.Add(b.End.Mul(t * t * t))
}

// deriv evaluates the curve derivative at native parameter t in [0,1].
func (b *Bezier) deriv(t float64) Point {
	u := 1.0 - t
	p := b.CP1.Mul(3.0 * u * u)
	p = p.Add(b.CP2.Sub(b.CP1).Mul(6.0 * u * t))
	return p.Add(b.End.Sub(b.CP2).Mul(3.0 * t * t))
}

// Length returns the approximated arc length of the curve.
func (b *Bezier) Length() float64 {
	if len(b.cum) == 0 {
		return 0.0
	}
	return b.cum[len(b.cum)-1]
}

// param recovers the native parameter t corresponding to arc length s by a
// monotonic lookup in the cumulative table.
func (b *Bezier) param(s float64) float64 {
	if s <= 0.0 {
		return 0.0
	} else if s >= b.Length() {
		return 1.0
	}
	i := sort.SearchFloat64s(b.cum, s)
	if i == 0 {
		i = 1
	}
	t := float64(i-1) / bezierTableN
	if ds := b.cum[i] - b.cum[i-1]; ds > 0.0 {
		t += (s - b.cum[i-1]) / ds / bezierTableN
	}
	return t
}

// Value returns the position at arc length s relative to the curve's start
// and the normalized tangent direction.
func (b *Bezier) Value(s float64) (Point, Point) {
	t := b.param(s)
	return b.pos(t), b.deriv(t).Norm(1.0)
}
