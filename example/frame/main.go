package main

import (
	"image/png"
	"os"

	"github.com/darkautism/verygif"
)

// Renders the middle frame of a spinning zoom as a PNG preview.
func main() {
	src, err := verygif.LoadSprite("idle.png")
	if err != nil {
		panic(err)
	}
	opts := verygif.DefaultOptions()
	opts.Modes = []verygif.ModeParam{
		{Mode: verygif.ModeSpin},
		{Mode: verygif.ModeZoom, Intensity: 1.5},
	}
	img := verygif.RenderFrame(src, opts.Frames/2, opts)
	f, err := os.Create("img.png")
	if err != nil {
		panic(err)
	}
	defer f.Close()
	png.Encode(f, img)
}
