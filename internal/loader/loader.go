// Package loader handles program image loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrEmptyProgram is returned for program images without any content.
var ErrEmptyProgram = errors.New("program image is empty")

// Loader handles loading program images from disk.
type Loader struct{}

// New creates a new program image loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a raw program image file. CHIP-8 images have no header, the
// complete file content is returned.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := l.LoadReader(file)
	if err != nil {
		return nil, fmt.Errorf("loading file %s: %w", path, err)
	}
	return data, nil
}

// LoadReader reads a raw program image from the reader.
func (l *Loader) LoadReader(reader io.Reader) ([]byte, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading program image: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyProgram
	}
	return data, nil
}
