package camgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
	"github.com/tdewolff/parse/v2/xml"
)

// IncludeFunc decides whether a path element takes part in the extracted
// curve, based on its attributes. A nil IncludeFunc accepts every path.
type IncludeFunc func(attrs map[string]string) bool

type docParser struct {
	z   *parse.Input
	err error
}

func (svg *docParser) parsePoints(v string) []float64 {
	vals := []float64{}
	b := []byte(v)
	i := 0
	for i < len(b) {
		i += skipCommaWhitespace(b[i:])
		if len(b) <= i {
			break
		}
		f, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			if svg.err == nil {
				svg.err = parse.NewErrorLexer(svg.z, "bad number array: %s", v)
			}
			break
		}
		vals = append(vals, f)
		i += n
	}
	return vals
}

// parseTransform parses an SVG transform attribute into a Matrix.
func (svg *docParser) parseTransform(v string) Matrix {
	i, j := 0, 0
	m := Identity
	var fun string
	for i < len(v) {
		if v[i] == '(' {
			fun = strings.ToLower(strings.TrimSpace(v[j:i]))
			j = i + 1
		} else if v[i] == ')' {
			d := svg.parsePoints(v[j:i])
			switch fun {
			case "matrix":
				if len(d) != 6 {
					svg.err = parse.NewErrorLexer(svg.z, "bad transform matrix")
				} else {
					m = m.Mul(Matrix{{d[0], d[2], d[4]}, {d[1], d[3], d[5]}})
				}
			case "translate":
				if len(d) != 1 && len(d) != 2 {
					svg.err = parse.NewErrorLexer(svg.z, "bad transform translate")
				} else if len(d) == 1 {
					m = m.Translate(d[0], 0.0)
				} else {
					m = m.Translate(d[0], d[1])
				}
			case "scale":
				if len(d) != 1 && len(d) != 2 {
					svg.err = parse.NewErrorLexer(svg.z, "bad transform scale")
				} else if len(d) == 1 {
					m = m.Scale(d[0], d[0])
				} else {
					m = m.Scale(d[0], d[1])
				}
			case "rotate":
				if len(d) != 1 && len(d) != 3 {
					svg.err = parse.NewErrorLexer(svg.z, "bad transform rotate")
				} else if len(d) == 1 {
					m = m.Rotate(d[0])
				} else {
					m = m.RotateAbout(d[0], d[1], d[2])
				}
			}
			j = i + 1
		}
		i++
	}
	return m
}

// transformSegments maps the absolute coordinates of the segments through m.
// Arc segments keep their radii and shift their frame rotation, which is only
// valid for rigid transforms; anything else on an arc is unsupported
// geometry.
func transformSegments(segs []Segment, m Matrix) ([]Segment, error) {
	if m == Identity {
		return segs, nil
	}
	phi := m.theta()
	for i, seg := range segs {
		seg.End = m.Dot(seg.End)
		switch seg.Kind {
		case CurveTo:
			seg.CP1 = m.Dot(seg.CP1)
			seg.CP2 = m.Dot(seg.CP2)
		case ArcTo:
			if !m.IsRigid() {
				return nil, fmt.Errorf("%w: arc under non-rigid transform %v", ErrUnsupportedGeometry, m)
			}
			seg.Rot += phi
		}
		segs[i] = seg
	}
	return segs, nil
}

// ParseDocument reads an SVG document and extracts the path elements that
// pass the include predicate into an ordered sequence of segment descriptors,
// mapped through the given transform. Transform attributes on path elements
// and enclosing groups compose under m. Elements other than paths draw
// nothing.
func ParseDocument(r io.Reader, m Matrix, include IncludeFunc) ([]Segment, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	l := xml.NewLexer(z)
	svg := docParser{z: z}
	var segs []Segment
	views := []Matrix{m}
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return segs, l.Err()
			}
			return segs, svg.err
		case xml.StartTagToken:
			attrs := map[string]string{}
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				val = val[1 : len(val)-1]
				attrs[string(l.Text())] = string(val)
			}

			view := views[len(views)-1]
			if v, ok := attrs["transform"]; ok {
				view = view.Mul(svg.parseTransform(v))
			}
			if tt != xml.StartTagCloseVoidToken {
				views = append(views, view)
			}

			if string(data[1:]) != "path" {
				break
			}
			if include != nil && !include(attrs) {
				break
			}
			pathSegs, err := ParsePathData(attrs["d"])
			if err != nil {
				return segs, parse.NewErrorLexer(svg.z, "bad path: %w", err)
			}
			pathSegs, err = transformSegments(pathSegs, view)
			if err != nil {
				return segs, err
			}
			segs = append(segs, pathSegs...)
		case xml.EndTagToken:
			if 1 < len(views) {
				views = views[:len(views)-1]
			}
		}
	}
}
