package camgen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestWriteSVG(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteSVG(buf, []Point{{1, 0}, {0, 1}, {-1, 0}})
	test.Error(t, err)
	test.String(t, buf.String(), `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<svg xmlns="http://www.w3.org/2000/svg"
     width="100mm" height="100mm" viewBox="-50 -50 100 100">
<path style="fill:none;stroke:black" d="M 1, 0 0, 1 -1, 0 z"/>
</svg>
`)
}

func TestWriteSVGTwoProfiles(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteSVG(buf, []Point{{1, 0}}, []Point{{2, 0}})
	test.Error(t, err)
	test.T(t, strings.Count(buf.String(), "<path"), 2)
}

func TestWriteSVGTemplate(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteSVGTemplate(buf)
	test.Error(t, err)
	test.String(t, buf.String(), `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<svg xmlns="http://www.w3.org/2000/svg"
     width="100mm" height="100mm" viewBox="-50 -50 100 100">
</svg>
`)
}

func TestWriteSVGRoundTrip(t *testing.T) {
	// written profile documents parse back through the extraction layer
	buf := &bytes.Buffer{}
	err := WriteSVG(buf, []Point{{8, 0}, {0, 8}, {-8, 0}, {0, -8}})
	test.Error(t, err)
	segs, err := ParseDocument(buf, Identity, nil)
	test.Error(t, err)
	curve, _, err := BuildCurve(segs)
	test.Error(t, err)
	test.T(t, curve.Len(), 4)
}

func TestNumFormatting(t *testing.T) {
	test.String(t, num(1.0).String(), "1")
	test.String(t, num(-12.5).String(), "-12.5")
	test.String(t, num(0.0).String(), "0")
	test.String(t, num(1.0/3.0).String(), ".33333333")
}
