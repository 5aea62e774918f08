package main

import (
	"flag"
	"fmt"
	"os"

	"tikzdraw/terminal"
)

func main() {
	var (
		output   = flag.String("o", "", "TikZ output file written on export/quit")
		gridStep = flag.Float64("step", 4, "Snap grid step in cells")
		noSnap   = flag.Bool("no-snap", false, "Disable snapping to the grid")
		noGrid   = flag.Bool("no-grid", false, "Hide the grid")
		help     = flag.Bool("help", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "An interactive terminal editor for composing TikZ drawings.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  c cursor   l line   a arrow   b bézier   r rect\n")
		fmt.Fprintf(os.Stderr, "  e ellipse  o circle t text    d dot     p arc\n")
		fmt.Fprintf(os.Stderr, "  u/Ctrl+Z undo   x clear (press twice)   Del delete selection\n")
		fmt.Fprintf(os.Stderr, "  Tab color  [ ] width  f fill  s snap  g grid  w write TikZ  q quit\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -o drawing.tex     # edit, then export to drawing.tex\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -step 2 -no-grid\n", os.Args[0])
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	opts := terminal.Options{
		GridStep:   *gridStep,
		Snap:       !*noSnap,
		ShowGrid:   !*noGrid,
		OutputFile: *output,
	}
	if err := terminal.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
