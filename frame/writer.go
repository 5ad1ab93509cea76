package frame

import (
	"image"
	"io"
)

type encoder struct {
	w io.Writer
}

func (e *encoder) encode(m *image.Paletted) error {
	var row [Width >> 1]byte
	for y := 0; y < Height; y++ {
		for x := 0; x < Width>>1; x++ {
			// This is masking off any bits leaving a 0-15 value
			row[x] = m.ColorIndexAt(x<<1, y)&0x0f<<4 | m.ColorIndexAt(x<<1+1, y)&0x0f
		}
		if _, err := e.w.Write(row[:]); err != nil {
			return err
		}
	}
	return nil
}

func onPalette(m *image.Paletted) bool {
	if len(m.Palette) != len(Palette) {
		return false
	}
	for i, c := range m.Palette {
		if c != Palette[i] {
			return false
		}
	}
	return true
}

// Encode writes the Image m to w in e-paper frame format, dithering it onto
// Palette first unless it is already indexed on it.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		return errWrongSize
	}

	pm, _ := m.(*image.Paletted)
	if pm == nil || !onPalette(pm) {
		var err error
		if pm, err = Dither(m); err != nil {
			return err
		}
	}

	// Adjust image so that top-left corner is at (0, 0)
	if pm.Rect.Min != (image.Point{}) {
		dup := *pm
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		pm = &dup
	}

	e := encoder{w: w}

	return e.encode(pm)
}
