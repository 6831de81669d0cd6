package verygif

import (
	"bytes"
	"image"
	"image/gif"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writePNG(t testing.TB, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func visible(pm *image.Paletted) int {
	n := 0
	for _, idx := range pm.Pix {
		if idx != TransparentIndex {
			n++
		}
	}
	return n
}

func transparencyMask(pm *image.Paletted) []bool {
	mask := make([]bool, len(pm.Pix))
	for i, idx := range pm.Pix {
		mask[i] = idx == TransparentIndex
	}
	return mask
}

func TestGenerateSpin(t *testing.T) {
	opts := DefaultOptions()
	opts.Frames = 4
	opts.Modes = []ModeParam{{Mode: ModeSpin, Intensity: 10}}

	frames, err := Generate(sprite(64, 64, red), opts)
	require.NoError(t, err)
	require.Len(t, frames, 4)
	for i, pm := range frames {
		require.Equal(t, image.Rect(0, 0, 128, 128), pm.Bounds(), "frame %d", i)
		require.NotZero(t, visible(pm), "frame %d", i)
	}

	// -360° lands back on the unrotated sprite.
	require.Equal(t, visible(frames[0]), visible(frames[3]))
	require.Equal(t, 128*128, visible(frames[0]))
	require.Less(t, visible(frames[1]), 128*128)
}

func TestGenerateOrderIndependentOfParallelism(t *testing.T) {
	src := sprite(40, 24, blue)
	src.SetNRGBA(0, 0, red)

	opts := DefaultOptions()
	opts.Modes = []ModeParam{
		{Mode: ModeBob, Intensity: 20},
		{Mode: ModeShake, Intensity: 10},
		{Mode: ModeZoom, Intensity: 1.5},
	}

	opts.Parallelism = 1
	sequential, err := Generate(src, opts)
	require.NoError(t, err)

	opts.Parallelism = 4
	parallel, err := Generate(src, opts)
	require.NoError(t, err)

	require.Len(t, parallel, len(sequential))
	for i := range sequential {
		require.Equal(t, transparencyMask(sequential[i]), transparencyMask(parallel[i]), "frame %d", i)
	}
	// Frames differ from each other, so a swapped pair would show up above.
	require.NotEqual(t, transparencyMask(sequential[1]), transparencyMask(sequential[2]))
}

func TestGenerateCropHidesWrap(t *testing.T) {
	opts := DefaultOptions()
	opts.Frames = 1
	opts.Filter = FilterNearest
	opts.Modes = []ModeParam{{Mode: ModeRight, Offset: 32}}

	wrapped, err := Generate(sprite(64, 64, red), opts)
	require.NoError(t, err)
	require.Equal(t, 128*128, visible(wrapped[0]))

	opts.Crop = true
	cropped, err := Generate(sprite(64, 64, red), opts)
	require.NoError(t, err)
	require.Equal(t, 96*128, visible(cropped[0]))
	require.Equal(t, uint8(TransparentIndex), cropped[0].ColorIndexAt(0, 0))
	require.NotEqual(t, uint8(TransparentIndex), cropped[0].ColorIndexAt(32, 0))
}

func TestGenerateCropFarOffScreen(t *testing.T) {
	opts := DefaultOptions()
	opts.Frames = 2
	opts.Crop = true
	opts.Filter = FilterNearest
	for _, mode := range []Mode{ModeRight, ModeLeft, ModeUp, ModeDown} {
		for _, o := range []float64{1e15, 1e19, math.Inf(1)} {
			opts.Modes = []ModeParam{{Mode: mode, Offset: o}}
			frames, err := Generate(sprite(64, 64, red), opts)
			require.NoError(t, err)
			for i, pm := range frames {
				require.Zero(t, visible(pm), "%s offset %v frame %d", mode, o, i)
			}
		}
	}
}

func TestGenerateHugeZoom(t *testing.T) {
	opts := DefaultOptions()
	opts.Frames = 2
	opts.Modes = []ModeParam{{Mode: ModeZoom, Intensity: 1e6}}

	frames, err := Generate(sprite(8, 8, red), opts)
	require.NoError(t, err)
	require.Equal(t, 128*128, visible(frames[1]))
}

func TestGenerateLogsFrames(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Frames = 3
	opts.Size = 16
	opts.Parallelism = 1
	opts.Logger = log.New(&buf, "", 0)

	_, err := Generate(sprite(8, 8, red), opts)
	require.NoError(t, err)
	require.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("\n")))
	require.Contains(t, buf.String(), "frame 1/3")
}

func TestGenerateRejectsBadOptions(t *testing.T) {
	src := sprite(8, 8, red)
	tests := map[string]func(*Options){
		"frames": func(o *Options) { o.Frames = 0 },
		"fps":    func(o *Options) { o.FPS = -1 },
		"size":   func(o *Options) { o.Size = 0 },
		"modes":  func(o *Options) { o.Modes = nil },
		"mode":   func(o *Options) { o.Modes = []ModeParam{{Mode: 0}} },
		"filter": func(o *Options) { o.Filter = "box" },
	}
	for name, mutate := range tests {
		opts := DefaultOptions()
		mutate(&opts)
		_, err := Generate(src, opts)
		require.Error(t, err, name)
	}
}

func TestAnimation(t *testing.T) {
	require.Equal(t, 100, FrameDelay(10))
	require.Equal(t, 33, FrameDelay(30))
	require.Equal(t, 0, FrameDelay(0))

	frames := []*image.Paletted{
		PaletteFrame(sprite(4, 4, red)),
		PaletteFrame(sprite(4, 4, blue)),
	}
	g := Animation(frames, FrameDelay(10))
	require.Equal(t, 0, g.LoopCount)
	require.Equal(t, []int{10, 10}, g.Delay)
	require.Equal(t, []byte{gif.DisposalBackground, gif.DisposalBackground}, g.Disposal)
	require.Equal(t, byte(TransparentIndex), g.BackgroundIndex)
}

func TestOutputName(t *testing.T) {
	require.Equal(t, "very_cat.gif", OutputName("cat.png"))
	require.Equal(t, "very_cat.gif", OutputName(filepath.Join("sprites", "cat.png")))
	require.Equal(t, "very_my.sprite.gif", OutputName("my.sprite.PNG"))
}

func TestMakeGIF(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "cat.png")
	writePNG(t, src, sprite(48, 32, red))

	opts := DefaultOptions()
	opts.Size = 64
	out, err := MakeGIF(src, dir, opts)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "very_cat.gif"), out)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	g, err := gif.DecodeAll(f)
	require.NoError(t, err)

	require.Len(t, g.Image, 12)
	require.Equal(t, 0, g.LoopCount)
	for i, pm := range g.Image {
		require.Equal(t, image.Rect(0, 0, 64, 64), pm.Bounds())
		require.Equal(t, 10, g.Delay[i])
		require.Equal(t, byte(gif.DisposalBackground), g.Disposal[i])
		_, _, _, a := pm.Palette[TransparentIndex].RGBA()
		require.Zero(t, a)
	}
}

func TestMakeGIFRejectsNonPNG(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "cat.jpg")
	require.NoError(t, os.WriteFile(src, []byte("not an image"), 0o644))

	_, err := MakeGIF(src, dir, DefaultOptions())
	require.ErrorContains(t, err, "PNG")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestLoadSpriteCorrupt(t *testing.T) {
	src := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(src, []byte("not an image"), 0o644))

	_, err := LoadSprite(src)
	require.ErrorContains(t, err, "broken.png")
}

func TestLoadSpriteNormalizes(t *testing.T) {
	src := filepath.Join(t.TempDir(), "gray.png")
	gray := image.NewGray(image.Rect(0, 0, 5, 3))
	gray.Pix[0] = 0x80
	writePNG(t, src, gray)

	m, err := LoadSprite(src)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 5, 3), m.Bounds())
	require.Equal(t, uint8(0xff), m.NRGBAAt(0, 0).A)
	require.Equal(t, uint8(0x80), m.NRGBAAt(0, 0).R)
}
