package camgen

import (
	"encoding/binary"
	"io"
	"math"
)

// STL geometry constants: the wall spans z=0 to z=8 mm between the hub radius
// and the unscaled profile curve.
const (
	stlLower  = 0.0
	stlUpper  = 8.0
	stlRadius = 6.0
)

type stlVertex struct {
	xy Point
	z  float64
}

type stlWriter struct {
	w   io.Writer
	err error
}

func (s *stlWriter) vertex(v stlVertex) {
	if s.err != nil {
		return
	}
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(float32(v.xy.X)))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(float32(v.xy.Y)))
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(float32(v.z)))
	_, s.err = s.w.Write(buf[:])
}

func (s *stlWriter) triangle(normal, v0, v1, v2 stlVertex) {
	s.vertex(normal)
	s.vertex(v0)
	s.vertex(v1)
	s.vertex(v2)
	if s.err == nil {
		_, s.err = s.w.Write([]byte{0, 0}) // attribute byte count
	}
}

func (s *stlWriter) quad(normal stlVertex, v [4]stlVertex) {
	s.triangle(normal, v[0], v[1], v[2])
	s.triangle(normal, v[2], v[3], v[0])
}

// WriteSTL writes the profile as a binary STL mesh: a blank 80 byte header, a
// little-endian triangle count, then per consecutive vertex pair one
// quadrilateral for the vertical wall and one for the top cap, each split
// into two triangles. The profile pairs its last vertex with its first to
// close the loop.
func WriteSTL(w io.Writer, profile []Point) error {
	var header [80]byte
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(2*2*len(profile)))
	if _, err := w.Write(count[:]); err != nil {
		return err
	}
	if len(profile) == 0 {
		return nil
	}
	s := &stlWriter{w: w}
	prev := profile[len(profile)-1]
	for _, p := range profile {
		c := p.Mul(stlRadius / p.Length())
		prevC := prev.Mul(stlRadius / prev.Length())
		s.quad(stlVertex{p, 0.0}, [4]stlVertex{
			{prev, stlLower}, {p, stlLower}, {p, stlUpper}, {prev, stlUpper},
		})
		s.quad(stlVertex{Point{}, 1.0}, [4]stlVertex{
			{p, stlUpper}, {c, stlUpper}, {prevC, stlUpper}, {prev, stlUpper},
		})
		prev = p
	}
	return s.err
}
