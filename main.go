package verygif

import (
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/mandykoh/prism"
	"github.com/pkg/errors"
)

// IsPNG reports whether filename has a .png extension.
func IsPNG(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".png")
}

// Load sprite from a PNG file
func LoadSprite(filename string) (*image.NRGBA, error) {
	if !IsPNG(filename) {
		return nil, errors.Errorf("Please supply a PNG source file, got %q", filename)
	}
	if f, err := os.Open(filename); err != nil {
		return nil, err
	} else {
		defer f.Close()
		img, err := png.Decode(f)
		if err != nil {
			return nil, errors.Wrapf(err, "decode %s", filename)
		}
		return toNRGBA(prism.ConvertImageToNRGBA(img, runtime.NumCPU())), nil
	}
}

// RenderFrame builds frame f of the animation described by opts.
func RenderFrame(src image.Image, f int, opts Options) *image.Paletted {
	m := ComputeMotion(f, opts.Frames, opts.Size, opts.Modes)
	if opts.Logger != nil {
		opts.Logger.Printf("frame %d/%d: angle=%.2f x=%.2f y=%.2f scale=%.3f", f+1, opts.Frames, m.Angle, m.X, m.Y, m.Scale)
	}

	x := PixelShift(m.X, opts.Size, opts.Crop)
	y := PixelShift(m.Y, opts.Size, opts.Crop)

	frame := SquareScale(src, m.Scale, opts.Size, opts.Filter)
	if opts.Crop {
		frame = SquareCrop(frame, x, y)
	}
	frame = Offset(Rotate(frame, m.Angle), x, y)

	return PaletteFrame(frame)
}

// Generate renders all frames of the animation, in order.
func Generate(src image.Image, opts Options) ([]*image.Paletted, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	workers := opts.Parallelism
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > opts.Frames {
		workers = opts.Frames
	}

	frames := make([]*image.Paletted, opts.Frames)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range jobs {
				frames[f] = RenderFrame(src, f, opts)
			}
		}()
	}
	for f := range frames {
		jobs <- f
	}
	close(jobs)
	wg.Wait()

	return frames, nil
}

// FrameDelay is the duration of one frame in milliseconds.
func FrameDelay(fps int) int {
	if fps <= 0 {
		return 0
	}
	return 1000 / fps
}

// Animation assembles frames into an endlessly looping GIF. Every frame is
// cleared to the transparent background before the next one is drawn.
func Animation(frames []*image.Paletted, delayMs int) *gif.GIF {
	var ret gif.GIF
	for _, frame := range frames {
		ret.Image = append(ret.Image, frame)
		ret.Delay = append(ret.Delay, delayMs/10)
		ret.Disposal = append(ret.Disposal, gif.DisposalBackground)
	}
	ret.LoopCount = 0
	ret.BackgroundIndex = TransparentIndex
	return &ret
}

// WriteGIF encodes g to path. Nothing is left behind when encoding fails.
func WriteGIF(path string, g *gif.GIF) error {
	if len(g.Image) == 0 {
		return errors.New("Animation has no frames")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, g); err != nil {
		f.Close()
		os.Remove(path)
		return errors.Wrapf(err, "encode %s", path)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// OutputName is the file name the generator writes for a source sprite,
// e.g. "very_cat.gif" for "sprites/cat.png".
func OutputName(source string) string {
	base := filepath.Base(source)
	return fmt.Sprintf("very_%s.gif", strings.TrimSuffix(base, filepath.Ext(base)))
}

// MakeGIF loads the sprite at file, animates it and writes the result into
// dir. It returns the path of the written file.
func MakeGIF(file, dir string, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	src, err := LoadSprite(file)
	if err != nil {
		return "", err
	}
	frames, err := Generate(src, opts)
	if err != nil {
		return "", err
	}
	out := filepath.Join(dir, OutputName(file))
	if err := WriteGIF(out, Animation(frames, FrameDelay(opts.FPS))); err != nil {
		return "", err
	}
	return out, nil
}
