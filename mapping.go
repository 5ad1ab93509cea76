package epaper

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

// mapping associates one input image with its target file in the
// destination directory.
type mapping struct {
	source string
	target string
}

// counter hands out slot indices for files not already present in the
// destination directory. It is only ever advanced during the sequential
// assignment phase, so indices are unique within a run.
type counter struct {
	next uint64
}

func newCounter(last uint64) *counter {
	return &counter{next: last + 1}
}

func (c *counter) take() uint64 {
	n := c.next
	c.next++
	return n
}

// leadingIndex parses the run of decimal digits prefixing name.
func leadingIndex(name string) (uint64, bool) {
	i := 0
	for i < len(name) && name[i] >= '0' && name[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.ParseUint(name[:i], 10, 32)
	if err != nil {
		return 0, false
	}
	return n, true
}

// matchesStem reports whether name is of the form NNNN-<stem>.bin for the
// given stem. Comparing the pieces structurally avoids having to build a
// pattern out of an arbitrary stem.
func matchesStem(name, stem string) bool {
	i := 0
	for i < len(name) && name[i] >= '0' && name[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(name) || name[i] != '-' {
		return false
	}
	return name[i+1:] == stem+".bin"
}

// mappings assigns each source image a target filename in the destination
// directory. A source whose stem already has a numbered file there reuses
// that exact filename; anything else is numbered from one past the highest
// index currently in use, which keeps the existing ordering intact no
// matter what is added. Randomizing shuffles only the order in which new
// slots are handed out.
func (e *EPaper) mappings(sources []string, destination string, random bool) ([]mapping, error) {
	files := make([]string, 0, len(sources))
	for _, source := range sources {
		if _, err := os.Stat(source); err != nil {
			e.logger.Printf("Warning: source file %q does not exist\n", source)
			continue
		}
		files = append(files, source)
	}

	if random {
		rand.Shuffle(len(files), func(i, j int) {
			files[i], files[j] = files[j], files[i]
		})
	}

	d, err := os.Open(destination)
	if err != nil {
		return nil, fmt.Errorf("failed to open destination directory %q: %v", destination, err)
	}
	defer d.Close()

	entries, err := d.Readdirnames(0)
	if err != nil {
		return nil, fmt.Errorf("failed to read destination directory %q: %v", destination, err)
	}

	// Drop any names that aren't valid UTF-8 so everything below is a
	// plain string comparison.
	names := entries[:0]
	for _, name := range entries {
		if !utf8.ValidString(name) {
			e.logger.Printf("Warning: unsupported filename %q\n", name)
			continue
		}
		names = append(names, name)
	}

	var last uint64
	for _, name := range names {
		if n, ok := leadingIndex(name); ok && n > last {
			last = n
		}
	}
	c := newCounter(last)

	mappings := make([]mapping, 0, len(files))
	for _, source := range files {
		stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
		if stem == "" {
			e.logger.Printf("Warning: failed to get filename for %q\n", source)
			continue
		}

		var target string
		for _, name := range names {
			if matchesStem(name, stem) {
				target = name
				break
			}
		}
		if target == "" {
			target = fmt.Sprintf("%04d-%s.bin", c.take(), stem)
		}

		mappings = append(mappings, mapping{
			source: source,
			target: filepath.Join(destination, target),
		})
	}

	return mappings, nil
}
