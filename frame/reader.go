package frame

import (
	"errors"
	"image"
	"io"
)

var (
	errNotEnough = errors.New("frame: not enough image data")
	errTooMuch   = errors.New("frame: too much image data")
	errBadPixel  = errors.New("frame: invalid palette index")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

func upperNibble(b byte) byte {
	return b >> 4
}

func lowerNibble(b byte) byte {
	return b & 0x0f
}

type decoder struct {
	r io.Reader

	image *image.Paletted

	tmp [pixelBytes]byte
}

func (d *decoder) readPixels() error {
	if err := readFull(d.r, d.tmp[:]); err != nil {
		return err
	}

	for _, b := range d.tmp {
		if upperNibble(b) >= numColors || lowerNibble(b) >= numColors {
			return errBadPixel
		}
	}

	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	if err := d.readPixels(); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	var extra [1]byte
	if n, err := r.Read(extra[:]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil && n == 0 {
			return err
		}
		return errTooMuch
	}

	if configOnly {
		return nil
	}

	d.image = image.NewPaletted(image.Rect(0, 0, Width, Height), Palette)

	for i, b := range d.tmp {
		d.image.Pix[i<<1] = upperNibble(b)
		d.image.Pix[i<<1+1] = lowerNibble(b)
	}

	return nil
}

// Decode reads an e-paper frame from r and returns it as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of an e-paper frame
// without decoding the pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: Palette,
		Width:      Width,
		Height:     Height,
	}, nil
}
