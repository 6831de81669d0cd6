package verygif

import (
	"image"
	"image/gif"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// CombineOptions controls how pre-made frames are joined into an animation.
type CombineOptions struct {
	Size   int // canvas side every frame is scaled onto
	Delay  int // per frame, in milliseconds
	Filter Filter
}

func DefaultCombineOptions() CombineOptions {
	return CombineOptions{
		Size:   128,
		Delay:  70,
		Filter: FilterLanczos,
	}
}

// FrameFiles lists the PNG files of dir sorted by name.
func FrameFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !IsPNG(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	files := make([]string, len(names))
	for i, name := range names {
		files[i] = filepath.Join(dir, name)
	}
	return files, nil
}

// Combine turns every PNG in dir into one frame of a looping animation,
// ordered by file name.
func Combine(dir string, opts CombineOptions) (*gif.GIF, error) {
	if opts.Size <= 0 {
		return nil, errors.Errorf("Size must be positive, got %d", opts.Size)
	}
	if _, err := ParseFilter(string(opts.Filter)); err != nil {
		return nil, err
	}

	files, err := FrameFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.Errorf("No PNG frames found in %s", dir)
	}

	var frames []*image.Paletted
	for _, file := range files {
		src, err := LoadSprite(file)
		if err != nil {
			return nil, err
		}
		frames = append(frames, PaletteFrame(SquareScale(src, 1, opts.Size, opts.Filter)))
	}
	return Animation(frames, opts.Delay), nil
}
