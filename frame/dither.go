package frame

import (
	"errors"
	"image"
)

var errWrongSize = errors.New("frame: image is wrong size")

// Dither remaps m onto Palette using Floyd-Steinberg error diffusion. The
// quantization error at each pixel is propagated 7/16 right, 3/16 below
// left, 5/16 below and 1/16 below right; shares falling outside the image
// are dropped. Given the same input the result is always the same.
func Dither(m image.Image) (*image.Paletted, error) {
	b := m.Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		return nil, errWrongSize
	}

	pm := image.NewPaletted(image.Rect(0, 0, Width, Height), Palette)

	// Accumulated error for the current and the next row.
	cur := make([]colorf, Width)
	next := make([]colorf, Width)

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			c := tof(m.At(b.Min.X+x, b.Min.Y+y)).add(cur[x]).clamp()
			i := nearest(c)
			pm.SetColorIndex(x, y, i)

			e := c.sub(palettef[i])
			if x+1 < Width {
				cur[x+1] = cur[x+1].add(e.scale(7.0 / 16))
			}
			if y+1 < Height {
				if x > 0 {
					next[x-1] = next[x-1].add(e.scale(3.0 / 16))
				}
				next[x] = next[x].add(e.scale(5.0 / 16))
				if x+1 < Width {
					next[x+1] = next[x+1].add(e.scale(1.0 / 16))
				}
			}
		}

		cur, next = next, cur
		for i := range next {
			next[i] = colorf{}
		}
	}

	return pm, nil
}
