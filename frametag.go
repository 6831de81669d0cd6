package verygif

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Mode is one named animation behavior. Several modes can be combined, their
// contributions are folded in list order.
type Mode uint8

const (
	ModeSpin Mode = iota + 1 // clockwise, also spelled "spincw"
	ModeSpinCCW
	ModeRight
	ModeLeft
	ModeUp
	ModeDown
	ModeBob
	ModeShake
	ModeBounce
	ModeZoom
	ModeZoomOut
)

var modeNames = map[string]Mode{
	"spin":    ModeSpin,
	"spincw":  ModeSpin,
	"spinccw": ModeSpinCCW,
	"right":   ModeRight,
	"left":    ModeLeft,
	"up":      ModeUp,
	"down":    ModeDown,
	"bob":     ModeBob,
	"shake":   ModeShake,
	"bounce":  ModeBounce,
	"zoom":    ModeZoom,
	"zoomout": ModeZoomOut,
}

func (m Mode) String() string {
	switch m {
	case ModeSpin:
		return "spin"
	case ModeSpinCCW:
		return "spinccw"
	case ModeRight:
		return "right"
	case ModeLeft:
		return "left"
	case ModeUp:
		return "up"
	case ModeDown:
		return "down"
	case ModeBob:
		return "bob"
	case ModeShake:
		return "shake"
	case ModeBounce:
		return "bounce"
	case ModeZoom:
		return "zoom"
	case ModeZoomOut:
		return "zoomout"
	default:
		return strconv.Itoa(int(m))
	}
}

// ModeNames returns every accepted mode name, aliases included, sorted.
func ModeNames() []string {
	names := make([]string, 0, len(modeNames))
	for name := range modeNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseMode looks up a mode by name. Unknown names are an error.
func ParseMode(name string) (Mode, error) {
	if m, ok := modeNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m, nil
	}
	return 0, errors.Errorf("Unknown mode %q, supported modes are: %s", name, strings.Join(ModeNames(), ", "))
}

// ModeParam is a single mode with its amplitude and constant bias.
type ModeParam struct {
	Mode      Mode
	Intensity float64
	Offset    float64
}

// ParseModeSpec turns the hyphen-joined command line lists into an ordered
// list of mode parameters. A single intensity or offset value is shared by
// all modes.
func ParseModeSpec(mode, intensity, offset string) ([]ModeParam, error) {
	var modes []Mode
	for _, name := range strings.Split(mode, "-") {
		m, err := ParseMode(name)
		if err != nil {
			return nil, err
		}
		modes = append(modes, m)
	}

	intensities, err := splitNumbers(intensity)
	if err != nil {
		return nil, errors.Wrap(err, "intensity")
	}
	if intensities, err = broadcast(intensities, len(modes)); err != nil {
		return nil, errors.Wrap(err, "Supplied number of modes does not match number of intensity values")
	}

	offsets, err := splitNumbers(offset)
	if err != nil {
		return nil, errors.Wrap(err, "offset")
	}
	if offsets, err = broadcast(offsets, len(modes)); err != nil {
		return nil, errors.Wrap(err, "Supplied number of modes does not match number of offset values")
	}

	spec := make([]ModeParam, len(modes))
	for i, m := range modes {
		spec[i] = ModeParam{Mode: m, Intensity: intensities[i], Offset: offsets[i]}
	}
	return spec, nil
}

// splitNumbers splits a hyphen-joined number list. Since the hyphen is also
// the separator, an empty token negates the number that follows it:
// "10--5" is [10 -5] and "-5" is [-5].
func splitNumbers(s string) ([]float64, error) {
	var ret []float64
	negate := false
	for _, tok := range strings.Split(strings.TrimSpace(s), "-") {
		if tok == "" {
			if negate {
				return nil, errors.Errorf("Malformed number list %q", s)
			}
			negate = true
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Malformed number list %q", s)
		}
		if negate {
			v = -v
			negate = false
		}
		ret = append(ret, v)
	}
	if negate || len(ret) == 0 {
		return nil, errors.Errorf("Malformed number list %q", s)
	}
	return ret, nil
}

func broadcast(values []float64, n int) ([]float64, error) {
	if len(values) == n {
		return values, nil
	}
	if len(values) != 1 {
		return nil, errors.Errorf("got %d values for %d modes", len(values), n)
	}
	ret := make([]float64, n)
	for i := range ret {
		ret[i] = values[0]
	}
	return ret, nil
}
