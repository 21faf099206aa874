// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	Output string `flag:"o" usage:"output ROM file (default: <input>.randomized<ext>)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.gbc)"`
}

// Flags contains behavior options.
type Flags struct {
	Debug bool `flag:"debug" usage:"enable debug logging"`
	Quiet bool `flag:"q" usage:"quiet mode"`
}

// Features contains the randomization switches.
type Features struct {
	Seed             string `flag:"seed" usage:"random seed, numbers or arbitrary strings are accepted"`
	AllowLegendaries bool   `flag:"allow-legendaries" usage:"permit legendary species in randomized slots"`
	NoWild           bool   `flag:"no-wild" usage:"disable wild encounter randomization"`

	Trainers          bool   `flag:"trainers" usage:"randomize trainer parties"`
	TrainerTheme      string `flag:"trainer-theme" usage:"trainer type theme: off, monotype" default:"off"`
	Starters          bool   `flag:"starters" usage:"randomize starters"`
	Statics           bool   `flag:"static" usage:"randomize static encounters"`
	Items             bool   `flag:"items" usage:"randomize items and shops"`
	NoItemSafeguard   bool   `flag:"unsafe-items" usage:"allow progression items to be randomized"`
	Movesets          bool   `flag:"movesets" usage:"randomize movesets"`
	Typings           bool   `flag:"typings" usage:"randomize typings"`
	Evolutions        bool   `flag:"evolutions" usage:"randomize evolutions"`
	EvolutionConsists bool   `flag:"evolution-consistency" usage:"never evolve into a species with a lower base stat total"`
	TMHM              bool   `flag:"tmhm" usage:"randomize TM/HM compatibility"`
	BaseStats         bool   `flag:"stats" usage:"randomize base stats"`
	MinBST            string `flag:"min-bst" usage:"minimum base stat total of the species pool"`
	MaxBST            string `flag:"max-bst" usage:"maximum base stat total of the species pool"`
}

// Program options of the randomizer.
type Program struct {
	Parameters
	Flags
	Features
}
