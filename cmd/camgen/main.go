package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/camgen/camgen"
	"github.com/tdewolff/argp"
)

type Generate struct {
	SVGOutput   string `short:"o" name:"svg-output" desc:"SVG output file"`
	LdrawOutput string `short:"l" name:"ldraw-output" desc:"LDraw output file"`
	STLOutput   string `short:"s" name:"stl-output" desc:"STL output file"`
	SVGTemplate string `name:"svg-template" desc:"Write an empty SVG template for the curve and exit"`
	Input       string `index:"0" desc:"SVG file defining the curve (default stdin)"`
}

func main() {
	root := argp.NewCmd(&Generate{}, "Cam and follower profile generator for four-bar linkage mechanisms")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Generate) Run() error {
	if cmd.SVGTemplate != "" {
		return writeOutput(cmd.SVGTemplate, camgen.WriteSVGTemplate)
	}

	var in io.Reader = os.Stdin
	if cmd.Input != "" && cmd.Input != "-" {
		f, err := os.Open(cmd.Input)
		if err != nil {
			return fmt.Errorf("failed to open '%s': %w", cmd.Input, err)
		}
		defer f.Close()
		in = f
	}

	segs, err := camgen.ParseDocument(in, camgen.Identity, nil)
	if err != nil {
		return err
	}
	curve, _, err := camgen.BuildCurve(segs)
	if err != nil {
		return err
	}
	if curve.Empty() {
		return fmt.Errorf("no curve found in input")
	}
	path1, path2, err := camgen.Synthesize(curve, camgen.DefaultMechanism)
	if err != nil {
		return err
	}

	switch {
	case cmd.SVGOutput != "":
		return writeOutput(cmd.SVGOutput, func(w io.Writer) error {
			return camgen.WriteSVG(w, path1, path2)
		})
	case cmd.LdrawOutput != "":
		return writeSuffixed(cmd.LdrawOutput, camgen.WriteLDraw, path1, path2)
	case cmd.STLOutput != "":
		return writeSuffixed(cmd.STLOutput, camgen.WriteSTL, path1, path2)
	}
	return argp.ShowUsage
}

// writeSuffixed writes both profiles to a pair of files suffixed _1 and _2.
func writeSuffixed(filename string, write func(io.Writer, []camgen.Point) error, path1, path2 []camgen.Point) error {
	for i, profile := range [][]camgen.Point{path1, path2} {
		name, err := camgen.AddFileSuffix(filename, fmt.Sprintf("_%d", i+1))
		if err != nil {
			return err
		}
		if err := writeOutput(name, func(w io.Writer) error {
			return write(w, profile)
		}); err != nil {
			return err
		}
	}
	return nil
}

// writeOutput opens filename for writing, with "-" meaning stdout, and runs
// write against it.
func writeOutput(filename string, write func(io.Writer) error) error {
	if filename == "-" {
		w := bufio.NewWriter(os.Stdout)
		if err := write(w); err != nil {
			return err
		}
		return w.Flush()
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create '%s': %w", filename, err)
	}
	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		return fmt.Errorf("failed to write '%s': %w", filename, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write '%s': %w", filename, err)
	}
	return f.Close()
}
