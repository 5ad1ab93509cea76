/*
Package epaper converts images for display on a WaveShare 5.65" 7-color
e-paper frame. Input images must be 600 by 448 pixels exactly.
*/
package epaper

import "log"

type EPaper struct {
	logger *log.Logger
}

func New(logger *log.Logger) *EPaper {
	return &EPaper{
		logger: logger,
	}
}
