package epaper

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/bodgit/epaper/frame"
)

func (e *EPaper) findImages(mappings []mapping) <-chan mapping {
	out := make(chan mapping)
	go func() {
		defer close(out)
		for _, m := range mappings {
			out <- m
		}
	}()
	return out
}

func (e *EPaper) convertWorker(in <-chan mapping, preview bool) <-chan error {
	errc := make(chan error)
	go func() {
		defer close(errc)
		for m := range in {
			if err := e.convertImage(m, preview); err != nil {
				errc <- err
			}
		}
	}()
	return errc
}

func (e *EPaper) convertImage(m mapping, preview bool) error {
	f, err := os.Open(m.source)
	if err != nil {
		return fmt.Errorf("failed to open image %q: %v", m.source, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode image %q: %v", m.source, err)
	}

	pm, err := frame.Dither(img)
	if err != nil {
		b := img.Bounds()
		return fmt.Errorf("skipping %q with dimensions %dx%d", m.source, b.Dx(), b.Dy())
	}

	out, err := os.Create(m.target)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %v", m.target, err)
	}

	if err := frame.Encode(out, pm); err != nil {
		out.Close()
		return fmt.Errorf("failed to write output file %q: %v", m.target, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write output file %q: %v", m.target, err)
	}

	// The preview is written after the frame so a preview failure never
	// costs us the binary.
	if preview {
		return e.writePreview(m.target, pm)
	}

	return nil
}

// writePreview maps the dithered frame back through the palette and saves
// it as a PNG next to the binary, so the result can be inspected without
// loading it on the display.
func (e *EPaper) writePreview(target string, pm *image.Paletted) error {
	name := strings.TrimSuffix(target, filepath.Ext(target)) + ".png"

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create preview file %q: %v", name, err)
	}

	if err := png.Encode(f, pm); err != nil {
		f.Close()
		return fmt.Errorf("failed to write preview file %q: %v", name, err)
	}

	return f.Close()
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Convert dithers each source image onto the display palette and writes the
// packed result into the destination directory. Individual file failures
// are logged as warnings and the rest of the batch carries on; only a
// failure to list the destination directory itself aborts the run.
func (e *EPaper) Convert(sources []string, destination string, preview, random bool) error {
	mappings, err := e.mappings(sources, destination, random)
	if err != nil {
		return err
	}

	in := e.findImages(mappings)

	var errcList []<-chan error
	for i := 0; i < runtime.NumCPU(); i++ {
		errcList = append(errcList, e.convertWorker(in, preview))
	}

	for err := range mergeErrors(errcList...) {
		e.logger.Printf("Warning: %v\n", err)
	}

	return nil
}
