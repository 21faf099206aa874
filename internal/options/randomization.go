package options

import (
	"fmt"
	"strings"

	"github.com/retroenv/gbrandomizer/internal/errs"
)

// TrainerTheme selects how trainer party pools are themed.
type TrainerTheme string

const (
	ThemeOff      TrainerTheme = "off"
	ThemeMonotype TrainerTheme = "monotype"
)

// Randomization is the configuration of a single randomization run. It is
// not modified while the run is executing.
type Randomization struct {
	Seed    string // empty if no seed was given
	HasSeed bool

	Wild       bool
	Trainers   bool
	Starters   bool
	Statics    bool
	Items      bool
	Movesets   bool
	Typings    bool
	Evolutions bool
	TMHM       bool
	BaseStats  bool

	AllowLegendaries     bool
	MinBST               *int
	MaxBST               *int
	TrainerTheme         TrainerTheme
	SafeguardProgression bool
	EvolutionConsistency bool
}

// NewRandomization returns the default configuration: wild encounters are
// randomized and progression items are safeguarded.
func NewRandomization() Randomization {
	return Randomization{
		Wild:                 true,
		TrainerTheme:         ThemeOff,
		SafeguardProgression: true,
	}
}

// WithSeed returns a copy of the configuration using the normalized seed.
// Blank seeds are treated as absent.
func (r Randomization) WithSeed(seed string) Randomization {
	seed = strings.TrimSpace(seed)
	r.Seed = seed
	r.HasSeed = seed != ""
	return r
}

// Validate checks the configuration for inconsistent values.
func (r Randomization) Validate() error {
	switch r.TrainerTheme {
	case ThemeOff, ThemeMonotype:
	default:
		return fmt.Errorf("%w: unknown trainer theme '%s', valid options: %s, %s",
			errs.ErrInvalidConfiguration, r.TrainerTheme, ThemeOff, ThemeMonotype)
	}

	if r.MinBST != nil && *r.MinBST < 0 {
		return fmt.Errorf("%w: minimum BST %d is negative", errs.ErrInvalidConfiguration, *r.MinBST)
	}
	if r.MaxBST != nil && *r.MaxBST < 0 {
		return fmt.Errorf("%w: maximum BST %d is negative", errs.ErrInvalidConfiguration, *r.MaxBST)
	}
	if r.MinBST != nil && r.MaxBST != nil && *r.MinBST > *r.MaxBST {
		return fmt.Errorf("%w: minimum BST %d is larger than maximum BST %d",
			errs.ErrInvalidConfiguration, *r.MinBST, *r.MaxBST)
	}
	return nil
}

// EnabledFeatures returns the names of all enabled features in pass order.
func (r Randomization) EnabledFeatures() []string {
	features := []struct {
		enabled bool
		name    string
	}{
		{r.BaseStats, "base stats"},
		{r.Typings, "typings"},
		{r.Wild, "wild encounters"},
		{r.Trainers, "trainer parties"},
		{r.Starters, "starters"},
		{r.Statics, "static encounters"},
		{r.Items, "items and shops"},
		{r.Movesets, "movesets"},
		{r.Evolutions, "evolutions"},
		{r.TMHM, "TM/HM compatibility"},
	}

	var names []string
	for _, feature := range features {
		if feature.enabled {
			names = append(names, feature.name)
		}
	}
	return names
}

// Summary returns a human readable list of the enabled features.
func (r Randomization) Summary() string {
	names := r.EnabledFeatures()
	if len(names) == 0 {
		return "no features"
	}
	return strings.Join(names, ", ")
}
