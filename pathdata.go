package camgen

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

type pathDataParser struct {
	path []byte
	i    int
	err  error
}

func (p *pathDataParser) num() float64 {
	if p.err != nil {
		return 0.0
	}
	p.i += skipCommaWhitespace(p.path[p.i:])
	f, n := strconv.ParseFloat(p.path[p.i:])
	if n == 0 {
		p.err = fmt.Errorf("bad number in path data at position %d", p.i)
		return 0.0
	}
	p.i += n
	return f
}

// flag parses an arc flag, which is a single 0 or 1 that may be followed
// directly by the next number without a separator.
func (p *pathDataParser) flag() bool {
	if p.err != nil {
		return false
	}
	p.i += skipCommaWhitespace(p.path[p.i:])
	if p.i < len(p.path) && (p.path[p.i] == '0' || p.path[p.i] == '1') {
		f := p.path[p.i] == '1'
		p.i++
		return f
	}
	p.err = fmt.Errorf("bad arc flag in path data at position %d", p.i)
	return false
}

// ParsePathData parses an SVG path data string into an ordered sequence of
// segment descriptors with absolute coordinates. Relative commands are
// resolved against the running cursor position. Quadratic Beziers are
// elevated to cubics and elliptical arc parameters are converted to center
// form; horizontal, vertical and smooth shorthands are expanded.
func ParsePathData(d string) ([]Segment, error) {
	p := pathDataParser{path: []byte(d)}
	var segs []Segment
	var cursor, start Point
	var cp Point // last control point for smooth commands
	var prevCmd byte
	for {
		p.i += skipCommaWhitespace(p.path[p.i:])
		if len(p.path) <= p.i || p.err != nil {
			break
		}
		cmd := prevCmd
		if 'A' <= p.path[p.i] {
			cmd = p.path[p.i]
			p.i++
		} else if cmd == 'M' {
			// subsequent coordinate pairs of a moveto are implicit linetos
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
			return segs, fmt.Errorf("expected command in path data at position %d", p.i)
		}
		switch cmd {
		case 'M', 'm':
			end := Point{p.num(), p.num()}
			if cmd == 'm' {
				end = end.Add(cursor)
			}
			segs = append(segs, Segment{Kind: MoveTo, End: end})
			cursor, start = end, end
		case 'Z', 'z':
			segs = append(segs, Segment{Kind: CloseTo, End: start})
			cursor = start
		case 'L', 'l':
			end := Point{p.num(), p.num()}
			if cmd == 'l' {
				end = end.Add(cursor)
			}
			segs = append(segs, Segment{Kind: LineTo, End: end})
			cursor = end
		case 'H', 'h':
			end := Point{p.num(), cursor.Y}
			if cmd == 'h' {
				end.X += cursor.X
			}
			segs = append(segs, Segment{Kind: LineTo, End: end})
			cursor = end
		case 'V', 'v':
			end := Point{cursor.X, p.num()}
			if cmd == 'v' {
				end.Y += cursor.Y
			}
			segs = append(segs, Segment{Kind: LineTo, End: end})
			cursor = end
		case 'C', 'c', 'S', 's':
			var cp1 Point
			if cmd == 'C' || cmd == 'c' {
				cp1 = Point{p.num(), p.num()}
				if cmd == 'c' {
					cp1 = cp1.Add(cursor)
				}
			} else if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				cp1 = cursor.Mul(2.0).Sub(cp)
			} else {
				cp1 = cursor
			}
			cp2 := Point{p.num(), p.num()}
			end := Point{p.num(), p.num()}
			if cmd == 'c' || cmd == 's' {
				cp2 = cp2.Add(cursor)
				end = end.Add(cursor)
			}
			segs = append(segs, Segment{Kind: CurveTo, End: end, CP1: cp1, CP2: cp2})
			cursor, cp = end, cp2
		case 'Q', 'q', 'T', 't':
			var q1 Point
			if cmd == 'Q' || cmd == 'q' {
				q1 = Point{p.num(), p.num()}
				if cmd == 'q' {
					q1 = q1.Add(cursor)
				}
			} else if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				q1 = cursor.Mul(2.0).Sub(cp)
			} else {
				q1 = cursor
			}
			end := Point{p.num(), p.num()}
			if cmd == 'q' || cmd == 't' {
				end = end.Add(cursor)
			}
			// elevate the quadratic to a cubic
			cp1 := cursor.Interpolate(q1, 2.0/3.0)
			cp2 := end.Interpolate(q1, 2.0/3.0)
			segs = append(segs, Segment{Kind: CurveTo, End: end, CP1: cp1, CP2: cp2})
			cursor, cp = end, q1
		case 'A', 'a':
			rx := math.Abs(p.num())
			ry := math.Abs(p.num())
			phi := p.num() * math.Pi / 180.0
			large := p.flag()
			sweep := p.flag()
			end := Point{p.num(), p.num()}
			if cmd == 'a' {
				end = end.Add(cursor)
			}
			if p.err != nil {
				break
			}
			if end.Equals(cursor) {
				break // the arc is omitted entirely
			}
			if rx == 0.0 || ry == 0.0 {
				// a zero radius collapses the arc to a line
				segs = append(segs, Segment{Kind: LineTo, End: end})
				cursor = end
				break
			}
			_, _, rx, ry, theta0, theta1 := arcToCenter(cursor.X, cursor.Y, rx, ry, phi, large, sweep, end.X, end.Y)
			segs = append(segs, Segment{Kind: ArcTo, End: end, Rx: rx, Ry: ry, Theta0: theta0, Theta1: theta1, Rot: phi})
			cursor = end
		default:
			return segs, fmt.Errorf("unknown command '%c' in path data at position %d", cmd, p.i)
		}
		prevCmd = cmd
	}
	return segs, p.err
}
