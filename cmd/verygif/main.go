// Command verygif animates a single sprite into a looping GIF.
//
// Usage:
//
//	verygif -f sprite.png [-m bob-shake-up] [-i 20-10-0] [-o 0] [-n 12] [-v 10] [-s 128] [-c]
//
// The result is written to gifs/very_<sprite>.gif.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/darkautism/verygif"
)

const modeUsage = `Mode of animation. Supported types are:
-   [spin/spinccw]          Spins the image clockwise or counter-clockwise respectively.
-   [right/left/up/down]    Pans the image in the specified direction.
-   [bob]                   Oscillates the image rotation.
-   [shake/bounce]          Oscillates the image position side-to-side or up-and-down, respectively.
-   [zoom/zoomout]          Pulses the image scale.

Combine multiple modes with a hyphen, e.g. -mode bob-shake-up.`

const intensityUsage = `Intensity of animation, depending on mode.
For rotational modes, supply angle in degrees.
For translational modes, supply a distance in pixels.
If there are multiple modes combined with hyphens, supply the same number of
intensity values separated by hyphens, e.g. "-mode bob-shake-up -intensity 20-10-0".
The spin and pan modes ignore intensity values.`

const offsetUsage = `Offset of animation, depending on mode.
Same units and shape as -intensity, e.g. "-mode bob-shake-up -offset 20-10-0".
Write a negative value with a double hyphen, e.g. "10--5".`

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
	def := verygif.DefaultOptions()

	var (
		file, mode, intensity, offset string
		outDir, filter                string
		fps, frames, size, jobs       int
		crop, verbose                 bool
	)

	fs := flag.NewFlagSet("verygif", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&file, "file", "", "Path to the source image for the GIF")
	fs.StringVar(&file, "f", "", "shorthand for -file")
	fs.StringVar(&mode, "mode", "bob", modeUsage)
	fs.StringVar(&mode, "m", "bob", "shorthand for -mode")
	fs.StringVar(&intensity, "intensity", "10", intensityUsage)
	fs.StringVar(&intensity, "i", "10", "shorthand for -intensity")
	fs.StringVar(&offset, "offset", "0", offsetUsage)
	fs.StringVar(&offset, "o", "0", "shorthand for -offset")
	fs.IntVar(&fps, "fps", def.FPS, "Framerate of GIF")
	fs.IntVar(&fps, "v", def.FPS, "shorthand for -fps")
	fs.IntVar(&frames, "frames", def.Frames, "Number of frames in GIF")
	fs.IntVar(&frames, "n", def.Frames, "shorthand for -frames")
	fs.IntVar(&size, "size", def.Size, "Size of GIF in pixels (will always be square)")
	fs.IntVar(&size, "s", def.Size, "shorthand for -size")
	fs.BoolVar(&crop, "crop", false, "Crop off-screen images. By default, images tessellate")
	fs.BoolVar(&crop, "c", false, "shorthand for -crop")
	fs.StringVar(&outDir, "out", "gifs", "Output directory, created when missing")
	fs.StringVar(&filter, "filter", string(def.Filter), "Resampling filter: nearest, bilinear, catmullrom or lanczos")
	fs.IntVar(&jobs, "j", 0, "Frames rendered in parallel, 0 for one per CPU")
	fs.BoolVar(&verbose, "verbose", false, "Log the transform of every frame")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if file == "" {
		return errors.New("Please supply a source file with -file")
	}
	if !verygif.IsPNG(file) {
		return errors.Errorf("Please supply a PNG source file, got %q", file)
	}

	spec, err := verygif.ParseModeSpec(mode, intensity, offset)
	if err != nil {
		return err
	}
	f, err := verygif.ParseFilter(filter)
	if err != nil {
		return err
	}

	opts := verygif.Options{
		Frames:      frames,
		FPS:         fps,
		Size:        size,
		Crop:        crop,
		Modes:       spec,
		Filter:      f,
		Parallelism: jobs,
	}
	if verbose {
		opts.Logger = log.New(stderr, "verygif: ", 0)
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	out, err := verygif.MakeGIF(file, outDir, opts)
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(stdout, "wrote %s (%d frames)\n", out, frames)
	return nil
}
