package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/gbrandomizer/internal/errs"
)

// Randomization converts the command line features to a validated
// randomization configuration.
func (p Program) Randomization() (Randomization, error) {
	cfg := NewRandomization().WithSeed(p.Seed)

	cfg.Wild = !p.NoWild
	cfg.AllowLegendaries = p.AllowLegendaries
	cfg.Trainers = p.Trainers
	cfg.TrainerTheme = TrainerTheme(strings.ToLower(strings.TrimSpace(p.TrainerTheme)))
	if cfg.TrainerTheme == "" {
		cfg.TrainerTheme = ThemeOff
	}
	cfg.Starters = p.Starters
	cfg.Statics = p.Statics
	cfg.Items = p.Items
	cfg.SafeguardProgression = !p.NoItemSafeguard
	cfg.Movesets = p.Movesets
	cfg.Typings = p.Typings
	cfg.Evolutions = p.Evolutions
	cfg.EvolutionConsistency = p.EvolutionConsists
	cfg.TMHM = p.TMHM
	cfg.BaseStats = p.BaseStats

	var err error
	if cfg.MinBST, err = parseOptionalInt("min-bst", p.MinBST); err != nil {
		return Randomization{}, err
	}
	if cfg.MaxBST, err = parseOptionalInt("max-bst", p.MaxBST); err != nil {
		return Randomization{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Randomization{}, err
	}
	return cfg, nil
}

// parseOptionalInt returns nil for blank values.
func parseOptionalInt(name, value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a whole number, got '%s'", errs.ErrInvalidConfiguration, name, value)
	}
	return &i, nil
}
