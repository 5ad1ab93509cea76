/*
Package frame implements an encoder and decoder for the 7-color e-paper
display frame format.

The format is defined as 600 by 448 pixels exactly. Each pixel is a 4-bit
index into a palette of 7 colors fixed by the display hardware; two pixels
are packed per byte in row-major order so a frame is always 134400 bytes.
There is no header, no compression and no palette stored in the file; the
palette order is part of the format.
*/
package frame

const (
	// Width and Height are the only dimensions the display accepts.
	Width  = 600
	Height = 448

	numColors  = 7
	numPixels  = Width * Height
	pixelBytes = numPixels >> 1

	// Default is 2.2, but bumping it up slightly gets a bit more contrast.
	ditherGamma = 2.3
)
