package detector

import (
	"errors"
	"testing"

	"github.com/retroenv/gbrandomizer/internal/errs"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func imageWithTitle(title string) []byte {
	image := make([]byte, 0x8000)
	copy(image[titleStart:titleEnd], title)
	return image
}

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name           string
		title          string
		wantGame       string
		wantGeneration int
	}{
		{name: "red", title: "POKEMON RED", wantGame: "Pokémon Red", wantGeneration: 1},
		{name: "blue", title: "POKEMON BLUE", wantGame: "Pokémon Blue", wantGeneration: 1},
		{name: "yellow", title: "POKEMON YELLOW", wantGame: "Pokémon Yellow", wantGeneration: 1},
		{name: "gold with product code", title: "POKEMON_GLDAAUE", wantGame: "", wantGeneration: 0},
		{name: "gold", title: "POKEMON GOLD", wantGame: "Pokémon Gold", wantGeneration: 2},
		{name: "silver", title: "POKEMON SILVER", wantGame: "Pokémon Silver", wantGeneration: 2},
		{name: "crystal", title: "PM_CRYSTAL", wantGame: "", wantGeneration: 0},
		{name: "padded with spaces", title: "  POKEMON RED", wantGame: "Pokémon Red", wantGeneration: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, err := d.Detect(imageWithTitle(tt.title))
			if tt.wantGame == "" {
				assert.True(t, errors.Is(err, errs.ErrUnsupportedImage))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantGame, game.Title)
			assert.Equal(t, tt.wantGeneration, game.Generation.Number)
		})
	}
}

func TestDetectUnsupported(t *testing.T) {
	d := New(log.NewTestLogger(t))

	_, err := d.Detect(make([]byte, HeaderSize-1))
	assert.True(t, errors.Is(err, errs.ErrUnsupportedImage))
	assert.ErrorContains(t, err, "smaller than the cartridge header")

	_, err = d.Detect(imageWithTitle("TETRIS"))
	assert.True(t, errors.Is(err, errs.ErrUnsupportedImage))
	assert.ErrorContains(t, err, "unknown header title 'TETRIS'")

	_, err = d.Detect(imageWithTitle("POKEMON PED"))
	assert.True(t, errors.Is(err, errs.ErrUnsupportedImage))
	assert.ErrorContains(t, err, "closest supported title is 'POKEMON RED'")
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name  string
		raw   []byte
		title string
	}{
		{name: "nul padded", raw: []byte("POKEMON RED\x00\x00\x00\x00\x00"), title: "POKEMON RED"},
		{name: "ff padded", raw: []byte("POKEMON BLUE\xff\xff\xff\xff"), title: "POKEMON BLUE"},
		{name: "mixed padding", raw: []byte("\x00 POKEMON Y \xff\x00"), title: "POKEMON Y"},
		{name: "empty", raw: []byte{}, title: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			image := make([]byte, HeaderSize)
			copy(image[titleStart:titleEnd], tt.raw)

			title, err := Title(image)
			assert.NoError(t, err)
			assert.Equal(t, tt.title, title)
		})
	}
}

func TestNearestTitle(t *testing.T) {
	assert.Equal(t, "POKEMON RED", nearestTitle("pokemon red"))
	assert.Equal(t, "POKEMON GREEN", nearestTitle("POKEMON GREEM"))
	assert.Equal(t, "", nearestTitle("ZELDA"))
	assert.Equal(t, "", nearestTitle(""))
}
