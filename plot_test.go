package camgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/test"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotArcLengthParametrization draws t over s for the table-driven
// parametrization against a dense polyline reference, to eyeball the
// interpolation error.
func plotArcLengthParametrization(filename string, b *Bezier) {
	n := 200
	modelData := make(plotter.XYs, n+1)
	realData := make(plotter.XYs, n+1)
	length := 0.0
	prev := Point{}
	j := 0
	for i := 0; i <= n; i++ {
		s := b.Length() * float64(i) / float64(n)
		modelData[i].X = s
		modelData[i].Y = b.param(s)

		for length < s && j < 100000 {
			j++
			t := float64(j) / 100000.0
			p := b.pos(t)
			length += p.Sub(prev).Length()
			prev = p
		}
		realData[i].X = s
		realData[i].Y = float64(j) / 100000.0
	}

	line, err := plotter.NewLine(modelData)
	if err != nil {
		panic(err)
	}
	line.LineStyle.Width = 2.0

	scatter, err := plotter.NewScatter(realData)
	if err != nil {
		panic(err)
	}

	p := plot.New()
	p.X.Label.Text = "s"
	p.Y.Label.Text = "t"
	p.Add(scatter, line)
	p.Legend.Add("polyline", scatter)
	p.Legend.Add("table", line)

	if err := p.Save(7*vg.Inch, 4*vg.Inch, filename); err != nil {
		panic(err)
	}
}

func plotProfiles(filename string, path1, path2 []Point) {
	data1 := make(plotter.XYs, len(path1))
	for i, pt := range path1 {
		data1[i].X, data1[i].Y = pt.X, pt.Y
	}
	data2 := make(plotter.XYs, len(path2))
	for i, pt := range path2 {
		data2[i].X, data2[i].Y = pt.X, pt.Y
	}

	line1, err := plotter.NewLine(data1)
	if err != nil {
		panic(err)
	}
	line2, err := plotter.NewLine(data2)
	if err != nil {
		panic(err)
	}
	line2.LineStyle.Width = 2.0

	p := plot.New()
	p.Add(line1, line2)
	p.Legend.Add("profile 1", line1)
	p.Legend.Add("profile 2", line2)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, filename); err != nil {
		panic(err)
	}
}

func TestPlotDiagnostics(t *testing.T) {
	if !testing.Verbose() {
		t.SkipNow()
		return
	}
	_ = os.Mkdir("test", 0755)

	b := NewBezier(Point{10.0, 0.0}, Point{10.0, 2.0}, Point{8.0, 2.0})
	plotArcLengthParametrization(filepath.Join("test", "len_param_cube.png"), b)

	segs, err := ParsePathData("M 6,0 A 6,6 0 0 1 -6,0 A 6,6 0 0 1 6,0")
	test.Error(t, err)
	curve, _, err := BuildCurve(segs)
	test.Error(t, err)
	path1, path2, err := Synthesize(curve, DefaultMechanism)
	test.Error(t, err)
	plotProfiles(filepath.Join("test", "profiles.png"), path1, path2)
}
