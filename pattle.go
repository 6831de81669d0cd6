package verygif

import (
	"image"
	"image/color"
	"sort"

	"github.com/andybons/gogif"
)

const (
	// TransparentIndex is the palette slot reserved for transparent pixels.
	// The quantizer only ever fills the slots below it.
	TransparentIndex = 255

	// AlphaThreshold is the highest alpha value still treated as transparent.
	AlphaThreshold = 128
)

// PaletteFrame converts img into a 256 color paletted image. Pixels with
// alpha at or below AlphaThreshold become TransparentIndex, the rest is mapped
// onto an adaptive palette of at most 255 opaque colors.
func PaletteFrame(img image.Image) *image.Paletted {
	src := toNRGBA(img)
	r := src.Rect
	w, h := r.Dx(), r.Dy()

	opaque := image.NewNRGBA(r)
	mask := make([]bool, w*h)
	for y := 0; y < h; y++ {
		s := src.Pix[src.PixOffset(0, y):][:w*4]
		d := opaque.Pix[opaque.PixOffset(0, y):][:w*4]
		for x := 0; x < w; x++ {
			copy(d[x*4:x*4+3], s[x*4:x*4+3])
			d[x*4+3] = 0xff
			mask[y*w+x] = s[x*4+3] <= AlphaThreshold
		}
	}

	pm := image.NewPaletted(r, nil)
	q := &gogif.MedianCutQuantizer{NumColor: TransparentIndex}
	q.Quantize(pm, r, opaque, image.Point{})
	sortPalette(pm)

	pm.Palette = reservePalette(pm.Palette)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask[y*w+x] {
				pm.Pix[pm.PixOffset(x, y)] = TransparentIndex
			}
		}
	}
	return pm
}

// sortPalette orders the quantized colors by packed RGB and remaps the pixels
// to match, since the quantizer hands out its colors in map order. Pixels of
// duplicate colors all point at the first copy.
func sortPalette(pm *image.Paletted) {
	n := len(pm.Palette)
	keys := make([]uint32, n)
	order := make([]int, n)
	for i, c := range pm.Palette {
		nc := color.NRGBAModel.Convert(c).(color.NRGBA)
		keys[i] = uint32(nc.R)<<16 | uint32(nc.G)<<8 | uint32(nc.B)
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return keys[order[a]] < keys[order[b]] })

	var remap [256]uint8
	sorted := make(color.Palette, n)
	for i, old := range order {
		sorted[i] = pm.Palette[old]
		remap[old] = uint8(i)
		if i > 0 && keys[old] == keys[order[i-1]] {
			remap[old] = remap[order[i-1]]
		}
	}
	for i, idx := range pm.Pix {
		pm.Pix[i] = remap[idx]
	}
	pm.Palette = sorted
}

// reservePalette pads pal with opaque black up to TransparentIndex entries
// and appends the transparent color, so the GIF encoder picks index 255 as
// the transparent one.
func reservePalette(pal color.Palette) color.Palette {
	ret := make(color.Palette, TransparentIndex+1)
	for i := 0; i < TransparentIndex; i++ {
		c := color.NRGBA{A: 0xff}
		if i < len(pal) {
			c = color.NRGBAModel.Convert(pal[i]).(color.NRGBA)
			c.A = 0xff
		}
		ret[i] = c
	}
	ret[TransparentIndex] = color.NRGBA{}
	return ret
}
