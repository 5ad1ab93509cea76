package frame

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(c color.Color) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(m, m.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return m
}

func gradientImage() *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, Width, Height))
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			m.SetRGBA(x, y, color.RGBA{
				uint8(x),
				uint8(y),
				uint8(x + y),
				0xff,
			})
		}
	}
	return m
}

func TestDitherWrongSize(t *testing.T) {
	t.Parallel()

	m := image.NewRGBA(image.Rect(0, 0, 300, 200))
	_, err := Dither(m)
	assert.Equal(t, errWrongSize, err)
}

func TestDitherPaletteColors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		index uint8
	}{
		{"black", 0},
		{"white", 1},
		{"green", 2},
		{"blue", 3},
		{"red", 4},
		{"yellow", 5},
		{"orange", 6},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pm, err := Dither(solidImage(Palette[tt.index]))
			require.NoError(t, err)

			// A color already on the palette carries no quantization
			// error, so every pixel maps straight to its index.
			for _, p := range pm.Pix {
				if p != tt.index {
					t.Fatalf("expected index %d, got %d", tt.index, p)
				}
			}
		})
	}
}

func TestDitherOutput(t *testing.T) {
	t.Parallel()

	pm, err := Dither(gradientImage())
	require.NoError(t, err)

	assert.Len(t, pm.Pix, numPixels)
	for _, p := range pm.Pix {
		if p >= numColors {
			t.Fatalf("palette index %d out of range", p)
		}
	}
}

func TestDitherDeterministic(t *testing.T) {
	t.Parallel()

	first, err := Dither(gradientImage())
	require.NoError(t, err)

	second, err := Dither(gradientImage())
	require.NoError(t, err)

	assert.Equal(t, first.Pix, second.Pix)
}

func TestDitherOffsetBounds(t *testing.T) {
	t.Parallel()

	// Same pixels, translated bounds; the result must not depend on
	// where the rectangle sits.
	m := gradientImage()
	shifted := image.NewRGBA(image.Rect(10, 20, 10+Width, 20+Height))
	draw.Draw(shifted, shifted.Bounds(), m, image.Point{}, draw.Src)

	want, err := Dither(m)
	require.NoError(t, err)

	got, err := Dither(shifted)
	require.NoError(t, err)

	assert.Equal(t, want.Pix, got.Pix)
}
