package verygif

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// SquareScale draws img on a transparent size×size canvas, scaled so that its
// longer side spans scale*size pixels and centered. Whatever overflows the
// canvas is clipped. A non-positive or NaN scale gives an empty canvas.
func SquareScale(img image.Image, scale float64, size int, filter Filter) *image.NRGBA {
	back := image.NewNRGBA(image.Rect(0, 0, size, size))

	b := img.Bounds()
	if b.Empty() || !(scale > 0) || size <= 0 {
		return back
	}
	if scale*float64(size) > maxScaledSide {
		scale = maxScaledSide / float64(size)
	}

	aspect := float64(b.Dx()) / float64(b.Dy())
	w, h := float64(size), float64(size)
	if aspect >= 1 {
		h = float64(size) / aspect
	} else {
		w = float64(size) * aspect
	}

	dw, dh := int(math.Round(scale*w)), int(math.Round(scale*h))
	if dw <= 0 || dh <= 0 {
		return back
	}

	// The long side sits at the edge, the short one is centered against it.
	edge := int(math.Round((1 - scale) * float64(size) / 2))
	long := dw
	if dh > long {
		long = dh
	}
	at := image.Pt(edge+(long-dw)/2, edge+(long-dh)/2)

	dr := image.Rectangle{Min: at, Max: at.Add(image.Pt(dw, dh))}

	// Past twice the canvas the sprite is scaled into the canvas directly,
	// so only the visible part is ever computed.
	if dw > 2*size || dh > 2*size {
		filter.clipScaler().Scale(back, dr, img, b, draw.Over, nil)
		return back
	}

	cpy := filter.Resize(img, dw, dh)
	draw.Draw(back, dr, cpy, image.Point{}, draw.Over)
	return back
}

// maxScaledSide caps the long side of a scaled sprite. Beyond it the canvas
// shows the inside of a single source pixel anyway.
const maxScaledSide = 1 << 24

// SquareCrop keeps only the part of img that is still on the canvas after a
// shift by (x, y), everything else becomes transparent. Applied before Offset
// it stops the shifted sprite from wrapping around the edges.
func SquareCrop(img *image.NRGBA, x, y int) *image.NRGBA {
	b := img.Bounds()
	back := image.NewNRGBA(b)

	w, h := b.Dx(), b.Dy()
	if abs(x) >= w || abs(y) >= h {
		return back
	}

	box := image.Rect(0, 0, w, h)
	if x < 0 {
		box.Min.X = -x
	} else {
		box.Max.X = w - x
	}
	if y < 0 {
		box.Min.Y = -y
	} else {
		box.Max.Y = h - y
	}
	box = box.Add(b.Min)

	draw.Draw(back, box, img, box.Min, draw.Src)
	return back
}

// Rotate turns img counter-clockwise by degrees around its center, keeping the
// canvas size. Corners that leave the canvas are lost, uncovered pixels are
// transparent.
func Rotate(img *image.NRGBA, degrees float64) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	if math.Mod(degrees, 360) == 0 {
		draw.Draw(dst, b, img, b.Min, draw.Src)
		return dst
	}

	sin, cos := math.Sincos(degrees * math.Pi / 180)
	cx := float64(b.Min.X) + float64(b.Dx())/2
	cy := float64(b.Min.Y) + float64(b.Dy())/2

	// y grows downwards, so a counter-clockwise turn on screen maps
	// (dx, dy) to (cos*dx + sin*dy, -sin*dx + cos*dy) around the center.
	s2d := f64.Aff3{
		cos, sin, cx - cos*cx - sin*cy,
		-sin, cos, cy + sin*cx - cos*cy,
	}
	draw.NearestNeighbor.Transform(dst, s2d, img, b, draw.Src, nil)
	return dst
}

// Offset translates img by (dx, dy) with wraparound: pixels leaving one edge
// come back in on the opposite one.
func Offset(img *image.NRGBA, dx, dy int) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return dst
	}
	dx, dy = mod(dx, w), mod(dy, h)

	for y := 0; y < h; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):][:w*4]
		row := dst.Pix[dst.PixOffset(b.Min.X, b.Min.Y+(y+dy)%h):][:w*4]
		copy(row[dx*4:], src[:(w-dx)*4])
		copy(row[:dx*4], src[(w-dx)*4:])
	}
	return dst
}

// PixelShift rounds a translation to whole pixels on a canvas of the given
// size. Without crop the shift wraps, so it is reduced modulo size first.
// With crop anything a full canvas away is off screen, so it is clamped to
// ±size, which SquareCrop still blanks.
func PixelShift(v float64, size int, crop bool) int {
	s := float64(size)
	if crop {
		v = math.Max(-s, math.Min(s, v))
	} else {
		v = math.Mod(v, s)
	}
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
