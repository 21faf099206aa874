// Package randomizer implements the randomization engine that rewrites the
// data tables of a cartridge image in place.
package randomizer

import (
	"fmt"

	"github.com/retroenv/gbrandomizer/internal/catalog"
	"github.com/retroenv/gbrandomizer/internal/mapper"
	"github.com/retroenv/gbrandomizer/internal/options"
	"github.com/retroenv/gbrandomizer/internal/rng"
	"github.com/retroenv/gbrandomizer/internal/species"
	"github.com/retroenv/retrogolib/log"
)

// Randomizer is the context of a single randomization run. It owns the
// species model whose overrides let earlier passes influence later ones.
type Randomizer struct {
	logger *log.Logger
	gen    *catalog.Generation
	cfg    options.Randomization
	rnd    *rng.Source
	model  *species.Model

	image  []byte
	mapper *mapper.Mapper
	pool   []int
}

type pass struct {
	name    string
	enabled bool
	run     func() error
}

// New returns a randomizer for one run over the tables of the generation.
func New(logger *log.Logger, gen *catalog.Generation, cfg options.Randomization, rnd *rng.Source) *Randomizer {
	return &Randomizer{
		logger: logger,
		gen:    gen,
		cfg:    cfg,
		rnd:    rnd,
		model:  species.New(gen.TypeNames()),
	}
}

// Model returns the species model of the run.
func (r *Randomizer) Model() *species.Model {
	return r.model
}

// Pool returns the species pool of the run, it is available after Run
// started.
func (r *Randomizer) Pool() []int {
	return r.pool
}

// Run executes all enabled passes in their fixed order and mutates the image
// in place. The first failing pass aborts the run.
func (r *Randomizer) Run(image []byte) error {
	if err := r.cfg.Validate(); err != nil {
		return err
	}

	m, err := mapper.New(image)
	if err != nil {
		return fmt.Errorf("mapping image: %w", err)
	}
	r.image = image
	r.mapper = m
	r.pool = r.buildPool()

	r.logger.Debug("Species pool built",
		log.Int("species", len(r.pool)),
		log.Int("max_species", r.gen.MaxSpecies))

	// base stats and typings run first, later passes see their overrides
	passes := []pass{
		{"base stats", r.cfg.BaseStats, r.randomizeBaseStats},
		{"typings", r.cfg.Typings, r.randomizeTypings},
		{"wild encounters", r.cfg.Wild, r.randomizeWild},
		{"trainer parties", r.cfg.Trainers, r.randomizeTrainers},
		{"starters", r.cfg.Starters, r.randomizeStarters},
		{"static encounters", r.cfg.Statics, r.randomizeStatics},
		{"items", r.cfg.Items, r.randomizeItems},
		{"movesets", r.cfg.Movesets, r.randomizeMovesets},
		{"evolutions", r.cfg.Evolutions, r.randomizeEvolutions},
		{"TM/HM compatibility", r.cfg.TMHM, r.randomizeTMHM},
	}

	for _, p := range passes {
		if !p.enabled {
			continue
		}
		r.logger.Debug("Running pass", log.String("pass", p.name))
		if err := p.run(); err != nil {
			return fmt.Errorf("randomizing %s: %w", p.name, err)
		}
	}
	return nil
}
