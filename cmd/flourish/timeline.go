package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/phanxgames/flourish"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentLoads bounds the documents decoded at once.
const maxConcurrentLoads = 8

// loadDocuments decodes every path concurrently and returns the documents in
// argument order.
func loadDocuments(paths []string) ([]flourish.Document, error) {
	docs := make([]flourish.Document, len(paths))
	var g errgroup.Group
	g.SetLimit(maxConcurrentLoads)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			doc, err := flourish.LoadDocument(path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func runTimeline(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("timeline", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("timeline: no documents")
	}
	docs, err := loadDocuments(fs.Args())
	if err != nil {
		return err
	}
	for i, doc := range docs {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := writeTimeline(out, doc); err != nil {
			return fmt.Errorf("%s: %w", fs.Arg(i), err)
		}
	}
	return nil
}

// writeTimeline prints the flattened triggers of every view in doc.
func writeTimeline(out io.Writer, doc flourish.Document) error {
	env := flourish.Env{}.Delay(doc.DelayIn, doc.DelayOut)
	var total flourish.Durations

	fmt.Fprintf(out, "# %s\n", doc.Name)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VIEW\tDIR\tPROPERTY\tVALUE\tTIME\tDURATION\tCURVE")
	for _, vd := range doc.Views {
		in, err := vd.In.Build()
		if err != nil {
			return fmt.Errorf("view %s: %w", vd.Name, err)
		}
		viewEnv := env.Delay(vd.DelayIn, vd.DelayOut)
		f := flourish.New(nil, in, viewEnv)
		writeTriggers(tw, vd.Name, "in", in.Triggers(), viewEnv.DelayFlourish)

		if vd.Out != nil {
			wither, err := vd.Out.Build()
			if err != nil {
				return fmt.Errorf("view %s: %w", vd.Name, err)
			}
			f = flourish.NewAsymmetric(nil, in, wither, viewEnv)
			writeTriggers(tw, vd.Name, "out", wither.Triggers(), viewEnv.DelayWither)
		}
		total = total.Max(f.Durations())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "flourish %.3fs, wither %.3fs\n", total.Flourish, total.Wither)
	return nil
}

func writeTriggers(w io.Writer, view, dir string, triggers []flourish.Trigger, delay float64) {
	for _, t := range triggers {
		c := t.Curve
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%.3f\t%.3f\t(%g, %g, %g, %g)\n",
			view, dir, t.Property, t.Value, t.Time+delay, t.Duration(),
			c.C0X, c.C0Y, c.C1X, c.C1Y)
	}
}
