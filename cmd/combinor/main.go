// Command combinor joins a directory of PNG frames into one looping GIF,
// in file name order.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/darkautism/verygif"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		color.New(color.FgRed).Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	def := verygif.DefaultCombineOptions()

	var input, out, filter string
	opts := def

	fs := flag.NewFlagSet("combinor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&input, "input", "", "Path to the source directory for the images")
	fs.StringVar(&input, "i", "", "shorthand for -input")
	fs.IntVar(&opts.Size, "size", def.Size, "Size of GIF in pixels (will always be square)")
	fs.IntVar(&opts.Delay, "delay", def.Delay, "Duration of each frame in milliseconds")
	fs.StringVar(&filter, "filter", string(def.Filter), "Resampling filter: nearest, bilinear, catmullrom or lanczos")
	fs.StringVar(&out, "out", "out.gif", "Output file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if input == "" {
		return errors.New("Please supply a source directory with -input")
	}
	f, err := verygif.ParseFilter(filter)
	if err != nil {
		return err
	}
	opts.Filter = f

	g, err := verygif.Combine(input, opts)
	if err != nil {
		return err
	}
	if err := verygif.WriteGIF(out, g); err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(stdout, "wrote %s (%d frames)\n", out, len(g.Image))
	return nil
}
