// Package detector identifies the game of a cartridge image from its header.
package detector

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/retroenv/gbrandomizer/internal/catalog"
	"github.com/retroenv/gbrandomizer/internal/errs"
	"github.com/retroenv/retrogolib/log"
)

const (
	titleStart = 0x134
	titleEnd   = 0x144

	// HeaderSize is the minimum size of an image that contains a complete
	// cartridge header.
	HeaderSize = 0x150

	titleCutset = "\x00\xff "
)

// Detector handles game detection from the cartridge header title.
type Detector struct {
	logger *log.Logger
}

// New creates a new game detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect returns the supported game of the image. Images with a short
// header or an unknown title return an errs.ErrUnsupportedImage error.
func (d *Detector) Detect(image []byte) (catalog.Game, error) {
	title, err := Title(image)
	if err != nil {
		return catalog.Game{}, err
	}

	game, ok := catalog.Lookup(title)
	if !ok {
		if hint := nearestTitle(title); hint != "" {
			return catalog.Game{}, fmt.Errorf("%w: unknown header title '%s', closest supported title is '%s'",
				errs.ErrUnsupportedImage, title, hint)
		}
		return catalog.Game{}, fmt.Errorf("%w: unknown header title '%s'", errs.ErrUnsupportedImage, title)
	}

	d.logger.Debug("Detected game",
		log.String("header_title", title),
		log.String("game", game.Title),
		log.Int("generation", game.Generation.Number))
	return game, nil
}

// Title returns the trimmed header title of the image.
func Title(image []byte) (string, error) {
	if len(image) < HeaderSize {
		return "", fmt.Errorf("%w: image size %d is smaller than the cartridge header", errs.ErrUnsupportedImage, len(image))
	}

	raw := string(image[titleStart:titleEnd])
	return strings.Trim(raw, titleCutset), nil
}

// nearestTitle returns the supported title prefix with the smallest edit
// distance to the title, or an empty string if none is close enough to be
// a useful hint.
func nearestTitle(title string) string {
	if title == "" {
		return ""
	}

	best := ""
	bestDistance := 0
	for _, known := range catalog.KnownTitles() {
		distance := levenshtein.ComputeDistance(strings.ToUpper(title), known)
		if best == "" || distance < bestDistance {
			best = known
			bestDistance = distance
		}
	}

	if bestDistance > len(best)/2 {
		return ""
	}
	return best
}
