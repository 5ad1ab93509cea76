package frame

import (
	"image/color"
	"math"
)

// Palette is the fixed set of colors the display panel can show. The order
// matters; encoded pixel values index into it.
var Palette = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xff}, // black
	color.RGBA{0xff, 0xff, 0xff, 0xff}, // white
	color.RGBA{0x43, 0x8a, 0x1c, 0xff}, // green
	color.RGBA{0x64, 0x40, 0xff, 0xff}, // blue
	color.RGBA{0xbf, 0x00, 0x00, 0xff}, // red
	color.RGBA{0xff, 0xf3, 0x38, 0xff}, // yellow
	color.RGBA{0xe8, 0x7e, 0x00, 0xff}, // orange
}

// colorf is a color in dither space; each channel is gamma corrected and
// scaled to [0, 1].
type colorf struct {
	r, g, b float64
}

var palettef [numColors]colorf

func init() {
	for i, c := range Palette {
		palettef[i] = tof(c)
	}
}

func transfer(c uint32) float64 {
	return math.Pow(float64(c)/0xffff, ditherGamma)
}

func tof(c color.Color) colorf {
	r, g, b, _ := c.RGBA()
	return colorf{transfer(r), transfer(g), transfer(b)}
}

func (c colorf) add(d colorf) colorf {
	return colorf{c.r + d.r, c.g + d.g, c.b + d.b}
}

func (c colorf) sub(d colorf) colorf {
	return colorf{c.r - d.r, c.g - d.g, c.b - d.b}
}

func (c colorf) scale(f float64) colorf {
	return colorf{c.r * f, c.g * f, c.b * f}
}

func clamp(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

func (c colorf) clamp() colorf {
	return colorf{clamp(c.r), clamp(c.g), clamp(c.b)}
}

func distance(a, b colorf) float64 {
	dr, dg, db := a.r-b.r, a.g-b.g, a.b-b.b
	return dr*dr + dg*dg + db*db
}

// nearest returns the index of the palette entry closest to c in dither
// space.
func nearest(c colorf) uint8 {
	var best uint8
	bestDist := math.MaxFloat64
	for i, p := range palettef {
		if d := distance(c, p); d < bestDist {
			best, bestDist = uint8(i), d
		}
	}
	return best
}
