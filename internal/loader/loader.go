// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/machine"
)

// Loader handles loading ROM files from disk.
type Loader struct {
	maxSize int
}

// New creates a new ROM loader that accepts ROMs fitting into the machine
// program space.
func New() *Loader {
	return &Loader{
		maxSize: machine.MaxROMSize,
	}
}

// Load reads the ROM file. Files larger than the program space are rejected
// with machine.ErrROMTooLarge before their content is read.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading file info %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("opening file %s: is a directory", path)
	}
	if info.Size() > int64(l.maxSize) {
		return nil, fmt.Errorf("loading file %s: %w: %d bytes exceeds the maximum of %d bytes",
			path, machine.ErrROMTooLarge, info.Size(), l.maxSize)
	}

	return l.LoadFromReader(file)
}

// LoadFromReader reads a ROM from the reader, reading at most one byte more
// than the allowed size to detect oversized input.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(reader, int64(l.maxSize)+1))
	if err != nil {
		return nil, fmt.Errorf("reading rom: %w", err)
	}
	if len(data) > l.maxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", machine.ErrROMTooLarge, l.maxSize)
	}
	return data, nil
}
