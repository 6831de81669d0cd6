package verygif

import (
	"image"
	"strings"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Filter selects the resampling kernel used when the sprite is scaled onto
// the canvas.
type Filter string

const (
	FilterNearest    Filter = "nearest"
	FilterBilinear   Filter = "bilinear"
	FilterCatmullRom Filter = "catmullrom"
	FilterLanczos    Filter = "lanczos"
)

// ParseFilter accepts the filter names used on the command line.
func ParseFilter(name string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case FilterNearest, FilterBilinear, FilterCatmullRom, FilterLanczos:
		return f, nil
	}
	return "", errors.Errorf("Unknown filter %q, supported filters are: nearest, bilinear, catmullrom, lanczos", name)
}

// Resize resamples src to exactly w×h pixels.
func (f Filter) Resize(src image.Image, w, h int) *image.NRGBA {
	switch f {
	case FilterNearest:
		return scaleWith(draw.NearestNeighbor, src, w, h)
	case FilterBilinear:
		return scaleWith(draw.ApproxBiLinear, src, w, h)
	case FilterCatmullRom:
		return scaleWith(draw.CatmullRom, src, w, h)
	default:
		return toNRGBA(resize.Resize(uint(w), uint(h), src, resize.Lanczos3))
	}
}

// clipScaler scales straight into a larger destination. Unlike the
// resampling kernels, these only touch the destination pixels inside the
// clip, so memory does not grow with the target size.
func (f Filter) clipScaler() draw.Scaler {
	if f == FilterNearest {
		return draw.NearestNeighbor
	}
	return draw.ApproxBiLinear
}

func scaleWith(s draw.Scaler, src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	s.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// toNRGBA returns img as a zero-origin NRGBA image, copying only when needed.
func toNRGBA(img image.Image) *image.NRGBA {
	if m, ok := img.(*image.NRGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	b := img.Bounds()
	ret := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(ret, ret.Bounds(), img, b.Min, draw.Src)
	return ret
}
