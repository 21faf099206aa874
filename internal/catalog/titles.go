package catalog

import "strings"

// Game is a supported cartridge.
type Game struct {
	Title      string
	Generation *Generation
}

type titleEntry struct {
	prefix string
	game   Game
}

// titles are matched by prefix in declaration order, so longer titles have
// to precede titles that are a prefix of them.
var titles = []titleEntry{
	{"POKEMON RED", Game{"Pokémon Red", Generation1}},
	{"POKEMON BLUE", Game{"Pokémon Blue", Generation1}},
	{"POKEMON BL", Game{"Pokémon Blue", Generation1}},
	{"POKEMON GREEN", Game{"Pokémon Green", Generation1}},
	{"POKEMON Y", Game{"Pokémon Yellow", Generation1}},
	{"POKEMON G", Game{"Pokémon Gold", Generation2}},
	{"POKEMON S", Game{"Pokémon Silver", Generation2}},
	{"POKEMON C", Game{"Pokémon Crystal", Generation2}},
}

// Lookup returns the game for a trimmed header title.
func Lookup(title string) (Game, bool) {
	for _, entry := range titles {
		if strings.HasPrefix(title, entry.prefix) {
			return entry.game, true
		}
	}
	return Game{}, false
}

// KnownTitles returns the header title prefixes of all supported games.
func KnownTitles() []string {
	prefixes := make([]string, len(titles))
	for i, entry := range titles {
		prefixes[i] = entry.prefix
	}
	return prefixes
}
