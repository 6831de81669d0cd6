package verygif

import "math"

// Motion is the transform of a single frame: rotation in degrees
// (counter-clockwise), translation in pixels and a scale factor relative to
// the canvas.
type Motion struct {
	Angle float64
	X     float64
	Y     float64
	Scale float64
}

// Still is the transform every frame starts from.
var Still = Motion{Scale: 1}

// ComputeMotion folds spec into the transform of frame f out of n frames on a
// canvas of the given size. Frames do not depend on each other.
func ComputeMotion(f, n, size int, spec []ModeParam) Motion {
	m := Still
	for _, p := range spec {
		m = p.Apply(m, f, n, size)
	}
	return m
}

// Apply adds the contribution of p for frame f of n to m. Zoom modes replace
// the scale instead of adding to it.
func (p ModeParam) Apply(m Motion, f, n, size int) Motion {
	i, o := p.Intensity, p.Offset
	cosFactor, sinFactor := pulse(f, n)

	switch p.Mode {
	case ModeSpinCCW:
		m.Angle += spinAngle(f, n) + o
	case ModeSpin:
		m.Angle -= spinAngle(f, n) + o

	case ModeRight:
		m.X += pan(p, f, n, size)
	case ModeLeft:
		m.X -= pan(p, f, n, size)
	case ModeUp:
		m.Y -= pan(p, f, n, size)
	case ModeDown:
		m.Y += pan(p, f, n, size)

	case ModeBob:
		m.Angle += (sinFactor-0.5)*2*i + o
	case ModeShake:
		m.X += (cosFactor-0.5)*2*i + o
	case ModeBounce:
		m.Y += (cosFactor-0.5)*2*i + o

	case ModeZoom:
		m.Scale = (1 - cosFactor) + cosFactor*i + o
	case ModeZoomOut:
		m.Scale = (1 - cosFactor) + cosFactor*i - o
	}
	return m
}

// pulse returns the two periodic factors of frame f. cosFactor goes 0→1→0
// over the cycle, sinFactor starts at 0.5.
func pulse(f, n int) (cosFactor, sinFactor float64) {
	if n <= 0 {
		return 0, 0.5
	}
	t := 2 * math.Pi * float64(f) / float64(n)
	return (1 - math.Cos(t)) / 2, (math.Sin(t) + 1) / 2
}

// spinAngle spreads a full turn over frames 0..n-1, so the last frame lands
// on 360°. A single frame animation does not spin.
func spinAngle(f, n int) float64 {
	if n <= 1 {
		return 0
	}
	return 360 / float64(n-1) * float64(f)
}

// pan moves a full canvas width over the cycle. Zero intensity pins the
// position to the offset.
func pan(p ModeParam, f, n, size int) float64 {
	if p.Intensity == 0 || n <= 0 {
		return p.Offset
	}
	return float64(size)/float64(n)*float64(f) + p.Offset
}
