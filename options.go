package verygif

import (
	"log"

	"github.com/pkg/errors"
)

// Options controls one generator run.
type Options struct {
	Frames int // number of frames in the loop
	FPS    int
	Size   int // canvas side in pixels, the output is always square
	Crop   bool

	// Modes is folded in order for every frame.
	Modes []ModeParam

	Filter Filter

	// Parallelism is the number of frames rendered at once. Zero or less
	// means one per CPU.
	Parallelism int

	// Logger, when set, receives one line per rendered frame.
	Logger *log.Logger
}

// DefaultOptions mirrors the command line defaults: a 12 frame, 10 FPS
// bobbing sprite on a 128 pixel canvas.
func DefaultOptions() Options {
	return Options{
		Frames: 12,
		FPS:    10,
		Size:   128,
		Modes:  []ModeParam{{Mode: ModeBob, Intensity: 10}},
		Filter: FilterLanczos,
	}
}

func (o Options) Validate() error {
	if o.Frames <= 0 {
		return errors.Errorf("Frame count must be positive, got %d", o.Frames)
	}
	if o.FPS <= 0 {
		return errors.Errorf("FPS must be positive, got %d", o.FPS)
	}
	if o.Size <= 0 {
		return errors.Errorf("Size must be positive, got %d", o.Size)
	}
	if len(o.Modes) == 0 {
		return errors.New("At least one mode is required")
	}
	for _, p := range o.Modes {
		if _, ok := modeNames[p.Mode.String()]; !ok {
			return errors.Errorf("Unknown mode %v", p.Mode)
		}
	}
	if _, err := ParseFilter(string(o.Filter)); err != nil {
		return err
	}
	return nil
}
