package camgen

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// Precision is the number of significant digits written for coordinates in
// SVG output.
const Precision = 8

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", Precision, float64(f))
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), Precision))
}

// svgPrologue opens a document with a fixed 100x100 mm viewport centered at
// the origin.
func svgPrologue(w io.Writer) error {
	_, err := fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<svg xmlns="http://www.w3.org/2000/svg"
     width="100mm" height="100mm" viewBox="-50 -50 100 100">
`)
	return err
}

func svgEpilogue(w io.Writer) error {
	_, err := fmt.Fprint(w, "</svg>\n")
	return err
}

// WriteSVG writes the profile curves as an SVG document, one closed unfilled
// black path per profile.
func WriteSVG(w io.Writer, profiles ...[]Point) error {
	if err := svgPrologue(w); err != nil {
		return err
	}
	for _, profile := range profiles {
		if _, err := fmt.Fprint(w, `<path style="fill:none;stroke:black" d="M`); err != nil {
			return err
		}
		for _, p := range profile {
			if _, err := fmt.Fprintf(w, " %v, %v", num(p.X), num(p.Y)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, " z\"/>\n"); err != nil {
			return err
		}
	}
	return svgEpilogue(w)
}

// WriteSVGTemplate writes an empty document to draw a cam curve in.
func WriteSVGTemplate(w io.Writer) error {
	if err := svgPrologue(w); err != nil {
		return err
	}
	return svgEpilogue(w)
}
