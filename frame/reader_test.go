package frame

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNotEnough(t *testing.T) {
	t.Parallel()

	_, err := Decode(bytes.NewReader(make([]byte, pixelBytes-1)))
	assert.Equal(t, errNotEnough, err)
}

func TestDecodeTooMuch(t *testing.T) {
	t.Parallel()

	_, err := Decode(bytes.NewReader(make([]byte, pixelBytes+1)))
	assert.Equal(t, errTooMuch, err)
}

func TestDecodeBadPixel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		b    byte
	}{
		{"upper nibble", 0x70},
		{"lower nibble", 0x07},
		{"both nibbles", 0xff},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := make([]byte, pixelBytes)
			data[pixelBytes/2] = tt.b

			_, err := Decode(bytes.NewReader(data))
			assert.Equal(t, errBadPixel, err)
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	data := make([]byte, pixelBytes)
	data[0] = 0x12
	data[1] = 0x34

	img, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)

	pm, ok := img.(*image.Paletted)
	require.True(t, ok)

	assert.Equal(t, image.Rect(0, 0, Width, Height), pm.Bounds())
	assert.Equal(t, []uint8{1, 2, 3, 4, 0, 0}, pm.Pix[:6])
}

func TestDecodeConfig(t *testing.T) {
	t.Parallel()

	config, err := DecodeConfig(bytes.NewReader(make([]byte, pixelBytes)))
	require.NoError(t, err)

	assert.Equal(t, Width, config.Width)
	assert.Equal(t, Height, config.Height)
	assert.Equal(t, Palette, config.ColorModel)
}
