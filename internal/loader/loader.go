// Package loader handles cartridge image loading operations.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/retroenv/gbrandomizer/internal/errs"
)

// MaxImageSize is the largest cartridge image that the supported memory bank
// controllers can address.
const MaxImageSize = 8 << 20

// Loader handles loading cartridge images from disk.
type Loader struct{}

// New creates a new cartridge loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the complete cartridge image of the given file.
func (l *Loader) Load(path string) ([]byte, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	image, err := l.LoadFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("loading image %s: %w", path, err)
	}
	return image, nil
}

// LoadFromReader reads a cartridge image from the reader. Images larger than
// MaxImageSize are rejected.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	image, err := io.ReadAll(io.LimitReader(reader, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	if len(image) > MaxImageSize {
		return nil, fmt.Errorf("%w: image exceeds the maximum size of %s",
			errs.ErrUnsupportedImage, humanize.IBytes(MaxImageSize))
	}
	return image, nil
}

// ExpandPath replaces a leading ~ of the path with the home directory of the
// current user.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding path %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
