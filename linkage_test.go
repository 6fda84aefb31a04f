package camgen

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func synthesizeCurve(t *testing.T, d string, mech Mechanism) ([]Point, []Point) {
	t.Helper()
	segs, err := ParsePathData(d)
	test.Error(t, err)
	curve, _, err := BuildCurve(segs)
	test.Error(t, err)
	path1, path2, err := Synthesize(curve, mech)
	test.Error(t, err)
	return path1, path2
}

func finitePoints(pts []Point) bool {
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}

func TestSynthesizeSquare(t *testing.T) {
	path1, path2 := synthesizeCurve(t, "M -4,-4 L 4,-4 L 4,4 L -4,4 Z", DefaultMechanism)
	test.T(t, len(path1), DefaultMechanism.Steps)
	test.T(t, len(path2), DefaultMechanism.Steps)
	test.That(t, finitePoints(path1))
	test.That(t, finitePoints(path2))
}

func TestSynthesizeCircle(t *testing.T) {
	mech := DefaultMechanism
	mech.Steps = 16
	path1, path2 := synthesizeCurve(t, "M 6,0 A 6,6 0 0 1 -6,0 A 6,6 0 0 1 6,0", mech)
	test.T(t, len(path1), 16)
	test.T(t, len(path2), 16)
	test.That(t, finitePoints(path1))
	test.That(t, finitePoints(path2))

	// every output point stays within the mechanical envelope around the pivot
	reach := mech.Arm + mech.ArmOffset + mech.Pivot
	for _, p := range append(append([]Point{}, path1...), path2...) {
		test.That(t, p.Length() <= reach+mech.FollowerRadius+Epsilon, "point", p, "outside reach", reach)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	a1, a2 := synthesizeCurve(t, "M -4,-4 L 4,-4 L 4,4 L -4,4 Z", DefaultMechanism)
	b1, b2 := synthesizeCurve(t, "M -4,-4 L 4,-4 L 4,4 L -4,4 Z", DefaultMechanism)
	test.T(t, a1, b1)
	test.T(t, a2, b2)
}

func TestSynthesizeUnreachable(t *testing.T) {
	// a cam curve further out than the link length cannot be traced
	segs, err := ParsePathData("M 200,0 L 210,0")
	test.Error(t, err)
	curve, _, err := BuildCurve(segs)
	test.Error(t, err)
	_, _, err = Synthesize(curve, DefaultMechanism)
	test.That(t, errors.Is(err, ErrUnreachable), "expected unreachable, got", err)
}

func TestSynthesizeBadSteps(t *testing.T) {
	curve, _, err := BuildCurve(nil)
	test.Error(t, err)
	mech := DefaultMechanism
	mech.Steps = 0
	_, _, err = Synthesize(curve, mech)
	test.That(t, err != nil, "zero steps must fail")
}

func TestSynthesizeConstantCurve(t *testing.T) {
	// an empty curve samples the origin at every step; the profiles then are
	// pure rotations of a single solution and keep a constant radius
	mech := DefaultMechanism
	mech.Steps = 8
	mech.FollowerRadius = 0.0
	path1, path2, err := Synthesize(&ConcatCurve{}, mech)
	test.Error(t, err)
	test.T(t, len(path1), 8)
	r1 := path1[0].Length()
	for _, p := range path1[1:] {
		test.That(t, math.Abs(p.Length()-r1) < 1e-9, "radius", p.Length(), "want", r1)
	}
	r2 := path2[0].Length()
	for _, p := range path2[1:] {
		test.That(t, math.Abs(p.Length()-r2) < 1e-9, "radius", p.Length(), "want", r2)
	}
}
