// Package pipeline orchestrates the randomization workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/retroenv/gbrandomizer/internal/catalog"
	"github.com/retroenv/gbrandomizer/internal/detector"
	"github.com/retroenv/gbrandomizer/internal/loader"
	"github.com/retroenv/gbrandomizer/internal/options"
	"github.com/retroenv/gbrandomizer/internal/randomizer"
	"github.com/retroenv/gbrandomizer/internal/rng"
	"github.com/retroenv/gbrandomizer/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete randomization workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// Result is the outcome of a successful randomization run.
type Result struct {
	Game     catalog.Game
	Seed     string
	Features []string
	Image    []byte // randomized image
	Report   verification.Report
}

// Summary returns the human readable description of the run.
func (r Result) Summary() string {
	features := "no features"
	if len(r.Features) > 0 {
		features = strings.Join(r.Features, ", ")
	}
	return fmt.Sprintf("Randomized %s (Generation %d) using seed %s. Modified features: %s.",
		r.Game.Title, r.Game.Generation.Number, r.Seed, features)
}

// New creates a new randomization pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute loads the input image of the options and runs the complete
// randomization pipeline on it. The input file is never modified.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, cfg options.Randomization) (Result, error) {
	image, err := p.loader.Load(opts.Input)
	if err != nil {
		return Result{}, fmt.Errorf("loading image: %w", err)
	}

	if !opts.Quiet {
		p.logger.Info("Processing Game Boy ROM",
			log.String("file", opts.Input),
			log.String("size", humanize.IBytes(uint64(len(image)))))
	}

	return p.ExecuteWithImage(ctx, image, cfg)
}

// ExecuteWithImage runs the randomization pipeline on an image that is
// already in memory. The passed image is not modified, the randomized copy
// is returned as part of the result.
func (p *Pipeline) ExecuteWithImage(ctx context.Context, image []byte, cfg options.Randomization) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	game, err := p.detector.Detect(image)
	if err != nil {
		return Result{}, fmt.Errorf("detecting game: %w", err)
	}

	if !cfg.HasSeed {
		cfg = cfg.WithSeed(uuid.NewString())
		p.logger.Info("No seed given, generated a new one", log.String("seed", cfg.Seed))
	}

	p.logger.Info("Detected game",
		log.String("game", game.Title),
		log.Int("generation", game.Generation.Number),
		log.String("seed", cfg.Seed))

	randomized := slices.Clone(image)
	engine := randomizer.New(p.logger, game.Generation, cfg, rng.New(cfg.Seed))
	if err := engine.Run(randomized); err != nil {
		return Result{}, fmt.Errorf("randomizing: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	report, err := verification.Verify(p.logger, image, randomized)
	if err != nil {
		return Result{}, fmt.Errorf("verification failed: %w", err)
	}

	return Result{
		Game:     game,
		Seed:     cfg.Seed,
		Features: cfg.EnabledFeatures(),
		Image:    randomized,
		Report:   report,
	}, nil
}
