package camgen

import (
	"fmt"
	"io"
)

// LDraw geometry constants: each profile becomes a radial wall between the
// hub radius and the profile curve, from z=0 up to z=20 LDU, with the profile
// scaled from mm into LDraw units.
const (
	ldrawLower  = 0.0
	ldrawUpper  = 20.0
	ldrawScale  = 20.0 / 8.0
	ldrawRadius = 6.0
)

func ldrawCoord(p Point, z float64) string {
	return fmt.Sprintf("%.3f %.3f %.3f", p.X, p.Y, z)
}

// WriteLDraw writes the profile as LDraw part geometry: a BFC winding
// directive followed by four quadrilateral records per consecutive vertex
// pair, forming the outer wall, the top and bottom caps, and the inner wall.
// The profile pairs its last vertex with its first to close the loop.
func WriteLDraw(w io.Writer, profile []Point) error {
	if _, err := fmt.Fprintln(w, "0 BFC CERTIFY CCW"); err != nil {
		return err
	}
	if len(profile) == 0 {
		return nil
	}
	prev := profile[len(profile)-1].Mul(ldrawScale)
	for _, q := range profile {
		p := q.Mul(ldrawScale)
		c := p.Mul(ldrawRadius / p.Length())
		prevC := prev.Mul(ldrawRadius / prev.Length())
		quads := [4][4]string{{
			ldrawCoord(prev, ldrawUpper),
			ldrawCoord(p, ldrawUpper),
			ldrawCoord(p, ldrawLower),
			ldrawCoord(prev, ldrawLower),
		}, {
			ldrawCoord(prev, ldrawUpper),
			ldrawCoord(prevC, ldrawUpper),
			ldrawCoord(c, ldrawUpper),
			ldrawCoord(p, ldrawUpper),
		}, {
			ldrawCoord(prev, ldrawLower),
			ldrawCoord(prevC, ldrawLower),
			ldrawCoord(c, ldrawLower),
			ldrawCoord(p, ldrawLower),
		}, {
			ldrawCoord(prevC, ldrawUpper),
			ldrawCoord(prevC, ldrawLower),
			ldrawCoord(c, ldrawLower),
			ldrawCoord(c, ldrawUpper),
		}}
		for _, quad := range quads {
			if _, err := fmt.Fprintf(w, "4 16 %s %s %s %s\n", quad[0], quad[1], quad[2], quad[3]); err != nil {
				return err
			}
		}
		prev = p
	}
	return nil
}
