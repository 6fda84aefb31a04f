package camgen

import "sort"

// concatSegment couples a curve primitive with the absolute position of its
// start point and the cumulative arc length at which it begins.
type concatSegment struct {
	curve  Curve
	anchor Point
	start  float64
}

// ConcatCurve concatenates curve primitives end-to-end into a single curve
// addressed by global arc length. It is append-only: build it up with Add,
// then query it with Value; the two phases never interleave.
type ConcatCurve struct {
	segs  []concatSegment
	total float64
}

// Add appends a curve primitive. The anchor is the absolute position of the
// primitive's start point; the caller advances it consistently using each
// primitive's end displacement.
func (c *ConcatCurve) Add(curve Curve, anchor Point) {
	c.segs = append(c.segs, concatSegment{curve, anchor, c.total})
	c.total += curve.Length()
}

// Empty returns true if no primitives have been added.
func (c *ConcatCurve) Empty() bool {
	return len(c.segs) == 0
}

// Len returns the number of primitives.
func (c *ConcatCurve) Len() int {
	return len(c.segs)
}

// Length returns the total arc length over all primitives.
func (c *ConcatCurve) Length() float64 {
	return c.total
}

// Value returns the absolute position and unit tangent at global arc length
// s. The primitive containing s is found by binary search; s == Length()
// resolves to the final point of the last primitive. Out of range s is
// clamped.
func (c *ConcatCurve) Value(s float64) (Point, Point) {
	if len(c.segs) == 0 {
		return Point{}, Point{}
	}
	if s < 0.0 {
		s = 0.0
	} else if s > c.total {
		s = c.total
	}
	i := sort.Search(len(c.segs), func(i int) bool {
		return s < c.segs[i].start
	}) - 1
	seg := c.segs[i]
	local := s - seg.start
	if max := seg.curve.Length(); local > max {
		local = max
	}
	pos, dir := seg.curve.Value(local)
	return seg.anchor.Add(pos), dir
}
