package camgen

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnreachable is returned when a sampled cam point falls outside the range
// the linkage arms can reach, which makes the circle-circle intersection
// degenerate. This is a configuration defect and is never clamped away.
var ErrUnreachable = errors.New("cam point out of linkage reach")

// Mechanism holds the fixed constants of the four-bar linkage. Offset is the
// distance from the cam origin to the follower reference frame and at the
// same time the length of both intersecting links; Arm and ArmOffset shape
// the output arm; Pivot positions the output arm's fixed end on the x-axis.
// FollowerRadius is the contact radius of the physical follower that rides
// the profile, and Steps the number of uniform angular samples per full
// revolution.
type Mechanism struct {
	Offset         float64
	Arm            float64
	ArmOffset      float64
	Pivot          float64
	FollowerRadius float64
	Steps          int
}

// DefaultMechanism is dimensioned in an 8mm base unit.
var DefaultMechanism = Mechanism{
	Offset:         8.0 * 8.0,
	Arm:            6.0 * 8.0,
	ArmOffset:      3.0 * 8.0,
	Pivot:          7.0 * 8.0,
	FollowerRadius: 0.5 * 8.0,
	Steps:          400,
}

// Synthesize samples the composite curve at Steps uniform arc length steps
// over one revolution and derives the two follower profile curves through the
// four-bar linkage inverse construction. Each returned profile holds Steps
// points; the first and last point are not repeated, serializers close the
// loop.
func Synthesize(curve *ConcatCurve, mech Mechanism) ([]Point, []Point, error) {
	if mech.Steps <= 0 {
		return nil, nil, fmt.Errorf("mechanism step count %d must be positive", mech.Steps)
	}
	length := curve.Length()
	pivot := Point{mech.Pivot, 0.0}
	path1 := make([]Point, 0, mech.Steps)
	path2 := make([]Point, 0, mech.Steps)
	var prev1, prev2 Point
	for i := 0; i <= mech.Steps; i++ {
		s := float64(i) * length / float64(mech.Steps)
		pos, _ := curve.Value(s)

		// translate the cam point into the follower frame and intersect the
		// two circles of radius Offset around the frame ends; b is the half
		// base of the isoceles triangle, a its height
		p10 := pos.Add(Point{mech.Offset, 0.0})
		b := p10.Length() * 0.5
		a := math.Sqrt(mech.Offset*mech.Offset - b*b)
		if math.IsNaN(a) {
			return nil, nil, fmt.Errorf("%w: sample %d at %v", ErrUnreachable, i, pos)
		}
		ccw := p10.Mul(-0.5).Add(p10.Rot90CCW().Norm(a)).Norm(1.0)
		cw := p10.Mul(-0.5).Add(p10.Rot90CW().Norm(a)).Norm(1.0)

		p2 := ccw.Mul(mech.Arm).Add(ccw.Rot90CCW().Mul(mech.ArmOffset)).Add(pivot)
		p3 := cw.Mul(mech.Arm).Add(cw.Rot90CW().Mul(mech.ArmOffset)).Add(pivot)

		rot := Identity.Rotate(float64(i) * 360.0 / float64(mech.Steps))
		p2r := rot.Dot(p2)
		p3r := rot.Dot(p3)

		if 0 < i {
			// shift the raw curve towards the center to compensate for the
			// follower radius
			c1 := p2r.Sub(prev1).Rot90CCW().Norm(mech.FollowerRadius).Add(p2r.Add(prev1).Mul(0.5))
			c2 := p3r.Sub(prev2).Rot90CCW().Norm(mech.FollowerRadius).Add(p3r.Add(prev2).Mul(0.5))
			path1 = append(path1, c1)
			path2 = append(path2, c2)
		}
		prev1, prev2 = p2r, p3r
	}
	return path1, path2, nil
}
