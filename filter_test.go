package verygif

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	for _, name := range []string{"nearest", "bilinear", "CatmullRom", " lanczos "} {
		_, err := ParseFilter(name)
		require.NoError(t, err, name)
	}
	_, err := ParseFilter("box")
	require.ErrorContains(t, err, "box")
}

func TestFilterResize(t *testing.T) {
	src := sprite(30, 20, blue)
	for _, f := range []Filter{FilterNearest, FilterBilinear, FilterCatmullRom, FilterLanczos} {
		m := f.Resize(src, 45, 7)
		require.Equal(t, image.Rect(0, 0, 45, 7), m.Bounds(), string(f))
		require.Greater(t, m.NRGBAAt(22, 3).B, uint8(0xf0), string(f))
	}
}
