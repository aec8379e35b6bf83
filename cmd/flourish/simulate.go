package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/phanxgames/flourish"
)

const maxSimulatedSeconds = 120

func runSimulate(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	scriptPath := fs.String("script", "", "JSON script of flourish/wither/toggle/wait/sample steps")
	fps := fs.Int("fps", 60, "simulated frames per second")
	debug := fs.Bool("debug", false, "print every directive to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("simulate: need exactly one document")
	}
	if *scriptPath == "" {
		return errors.New("simulate: -script is required")
	}
	if *fps <= 0 {
		return errors.New("simulate: -fps must be positive")
	}
	flourish.SetDebug(*debug)

	data, err := os.ReadFile(*scriptPath)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	script, err := flourish.LoadScript(data)
	if err != nil {
		return err
	}
	doc, err := flourish.LoadDocument(fs.Arg(0))
	if err != nil {
		return err
	}

	scene := flourish.NewScene()
	stage, err := scene.Build(doc)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LABEL\tTIME\tVIEW\tPRESENT\tOPACITY\tX\tY\tROTATE\tSCALE")
	script.OnSample = func(s flourish.Sample) {
		present := stage.Group.Present()
		for _, v := range stage.Views {
			e := v.Node.Effect
			fmt.Fprintf(tw, "%s\t%.3f\t%s\t%t\t%.3f\t%.2f\t%.2f\t%.3f\t%.3f\n",
				s.Label, s.Time, v.Node.Name, present,
				e.Opacity, e.TranslateX, e.TranslateY, e.Rotate, e.Scale)
		}
	}

	frames := script.Run(scene, stage.Group, *fps, maxSimulatedSeconds*(*fps))
	if err := tw.Flush(); err != nil {
		return err
	}
	if !script.Done() {
		return fmt.Errorf("simulate: script unfinished after %d frames", frames)
	}
	fmt.Fprintf(out, "%d frames, %.3fs\n", frames, scene.Clock().Now())
	return nil
}
