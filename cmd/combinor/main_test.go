package main

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFrame(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	frames := filepath.Join(dir, "frames")
	require.NoError(t, os.Mkdir(frames, 0o755))
	writeFrame(t, filepath.Join(frames, "02.png"), color.NRGBA{B: 0xff, A: 0xff})
	writeFrame(t, filepath.Join(frames, "01.png"), color.NRGBA{R: 0xff, A: 0xff})
	writeFrame(t, filepath.Join(frames, "03.png"), color.NRGBA{G: 0xff, A: 0xff})
	out := filepath.Join(dir, "out.gif")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-i", frames, "-size", "20", "-out", out}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "3 frames")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	g, err := gif.DecodeAll(f)
	require.NoError(t, err)
	require.Len(t, g.Image, 3)
	require.Equal(t, []int{7, 7, 7}, g.Delay)

	r, _, b, _ := g.Image[0].At(10, 10).RGBA()
	require.Greater(t, r, b)
	r, _, b, _ = g.Image[1].At(10, 10).RGBA()
	require.Greater(t, b, r)
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.gif")

	for name, args := range map[string][]string{
		"missing input": {"-out", out},
		"empty dir":     {"-i", dir, "-out", out},
		"bad filter":    {"-i", dir, "-filter", "box", "-out", out},
	} {
		var stdout, stderr bytes.Buffer
		require.Error(t, run(args, &stdout, &stderr), name)
		_, err := os.Stat(out)
		require.True(t, os.IsNotExist(err), name)
	}
}
