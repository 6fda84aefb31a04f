package camgen

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestWriteSTL(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteSTL(buf, []Point{{8, 0}, {0, 8}})
	test.Error(t, err)
	b := buf.Bytes()

	// header, triangle count, then 50 bytes per triangle
	test.T(t, len(b), 80+4+8*50)
	for _, c := range b[:80] {
		test.T(t, c, byte(0))
	}
	test.T(t, binary.LittleEndian.Uint32(b[80:84]), uint32(8))

	// the first triangle belongs to the wall at the first vertex; its normal
	// is the vertex direction with zero z
	normalX := math.Float32frombits(binary.LittleEndian.Uint32(b[84:88]))
	normalY := math.Float32frombits(binary.LittleEndian.Uint32(b[88:92]))
	normalZ := math.Float32frombits(binary.LittleEndian.Uint32(b[92:96]))
	test.T(t, normalX, float32(8))
	test.T(t, normalY, float32(0))
	test.T(t, normalZ, float32(0))

	// attribute byte count after the 4 vectors of the first triangle
	test.T(t, b[84+48], byte(0))
	test.T(t, b[84+49], byte(0))

	// the cap normal of the second quad points up
	capOff := 84 + 2*50
	test.T(t, math.Float32frombits(binary.LittleEndian.Uint32(b[capOff:capOff+4])), float32(0))
	test.T(t, math.Float32frombits(binary.LittleEndian.Uint32(b[capOff+8:capOff+12])), float32(1))
}

func TestWriteSTLEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteSTL(buf, nil)
	test.Error(t, err)
	b := buf.Bytes()
	test.T(t, len(b), 84)
	test.T(t, binary.LittleEndian.Uint32(b[80:84]), uint32(0))
}
