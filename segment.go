package camgen

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnsupportedGeometry is returned when a segment cannot be represented by
// the curve primitives, such as an arc with unequal radii. The condition is
// fatal to the run; no partial curve is returned.
var ErrUnsupportedGeometry = errors.New("unsupported geometry")

// SegmentKind discriminates the segment descriptor variants.
type SegmentKind int

const (
	MoveTo SegmentKind = iota // new subpath start, no curve drawn
	LineTo
	CloseTo // line back to the subpath start
	CurveTo // cubic Bezier
	ArcTo   // arc in center/angle form
)

func (kind SegmentKind) String() string {
	switch kind {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case CloseTo:
		return "CloseTo"
	case CurveTo:
		return "CurveTo"
	case ArcTo:
		return "ArcTo"
	}
	return "Invalid"
}

// Segment is a path segment descriptor with absolute coordinates. End is the
// segment's end point for every kind; CP1 and CP2 are the control points of a
// CurveTo; Rx, Ry, Theta0, Theta1 (radians) and Rot (radians) describe an
// ArcTo reduced to center parameterization. Segments are produced once by
// path extraction and consumed once by BuildCurve.
type Segment struct {
	Kind           SegmentKind
	End            Point
	CP1, CP2       Point
	Rx, Ry         float64
	Theta0, Theta1 float64
	Rot            float64
}

func (seg Segment) String() string {
	switch seg.Kind {
	case CurveTo:
		return fmt.Sprintf("CurveTo(%v, %v, %v)", seg.End, seg.CP1, seg.CP2)
	case ArcTo:
		return fmt.Sprintf("ArcTo(%g, %g, %g, %g, %g)", seg.Rx, seg.Ry, seg.Theta0, seg.Theta1, seg.Rot)
	}
	return fmt.Sprintf("%v(%v)", seg.Kind, seg.End)
}

// arcToCenter changes between the SVG arc format and the center and angles
// format, with angles in radians. The radii are corrected upward when they
// cannot span the distance between both end points.
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func arcToCenter(x1, y1, rx, ry, phi float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64, float64, float64) {
	if x1 == x2 && y1 == y2 {
		return x1, y1, rx, ry, 0.0, 0.0
	}

	sinphi, cosphi := math.Sincos(phi)
	x1p := cosphi*(x1-x2)/2.0 + sinphi*(y1-y2)/2.0
	y1p := -sinphi*(x1-x2)/2.0 + cosphi*(y1-y2)/2.0

	// reduce rounding errors
	radiiCheck := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if radiiCheck > 1.0 {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := cosphi*cxp - sinphi*cyp + (x1+x2)/2.0
	cy := sinphi*cxp + cosphi*cyp + (y1+y2)/2.0

	// specify U and V vectors; theta = arccos(U*V / sqrt(U*U + V*V))
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Acos(ux / math.Sqrt(ux*ux+uy*uy))
	if uy < 0.0 {
		theta = -theta
	}

	delta := math.Acos((ux*vx + uy*vy) / math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy)))
	if ux*vy-uy*vx < 0.0 {
		delta = -delta
	}
	if !sweep && delta > 0.0 {
		delta -= 2.0 * math.Pi
	} else if sweep && delta < 0.0 {
		delta += 2.0 * math.Pi
	}
	return cx, cy, rx, ry, theta, theta + delta
}

// closeEpsilon is the absolute tolerance under which a closing segment is
// considered degenerate and dropped, so that no zero-length line with an
// undefined direction enters the composite curve.
const closeEpsilon = 1e-6

// BuildCurve converts the segment descriptors, in order, into curve
// primitives chained on a running absolute cursor and concatenates them into
// a composite curve. It returns the composite and the current subpath start
// point. An arc with unequal radii fails with ErrUnsupportedGeometry.
func BuildCurve(segs []Segment) (*ConcatCurve, Point, error) {
	curve := &ConcatCurve{}
	var cursor, start Point
	for _, seg := range segs {
		switch seg.Kind {
		case MoveTo:
			cursor = seg.End
			start = cursor
		case LineTo, CloseTo:
			if seg.Kind == CloseTo && seg.End.Sub(cursor).Length() < closeEpsilon {
				// skip short closing lines
				cursor = seg.End
				continue
			}
			curve.Add(Line{seg.End.Sub(cursor)}, cursor)
			cursor = seg.End
		case CurveTo:
			bez := NewBezier(seg.CP1.Sub(cursor), seg.CP2.Sub(cursor), seg.End.Sub(cursor))
			curve.Add(bez, cursor)
			cursor = seg.End
		case ArcTo:
			if math.Abs(seg.Rx-seg.Ry) > 1e-9*math.Max(seg.Rx, seg.Ry) {
				return nil, Point{}, fmt.Errorf("%w: arc with unequal radii %g and %g", ErrUnsupportedGeometry, seg.Rx, seg.Ry)
			}
			// the center form angles are in the arc's rotated frame; for a
			// circle the x-axis rotation is a plain angle offset
			arc := CircleArc{Radius: seg.Rx, Theta0: seg.Theta0 + seg.Rot, Theta1: seg.Theta1 + seg.Rot}
			curve.Add(arc, cursor)
			end, _ := arc.Value(arc.Length())
			cursor = cursor.Add(end)
		default:
			return nil, Point{}, fmt.Errorf("%w: segment kind %v", ErrUnsupportedGeometry, seg.Kind)
		}
	}
	return curve, start, nil
}
