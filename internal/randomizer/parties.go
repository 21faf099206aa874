package randomizer

import (
	"github.com/retroenv/retrogolib/log"
)

// randomizeTrainers draws every party slot independently from the themed
// pool of its trainer.
func (r *Randomizer) randomizeTrainers() error {
	table := r.gen.Trainers
	records, err := table.Records(r.image)
	if err != nil {
		return err
	}

	for _, record := range records {
		pool := r.applyTrainerTheme(r.pool, r.cfg.TrainerTheme)
		for _, field := range table.Fields {
			id, err := r.pickOne(pool)
			if err != nil {
				return err
			}
			r.image[record+field] = byte(id)
		}
	}

	r.logger.Debug("Randomized trainer parties",
		log.Int("trainers", len(records)),
		log.String("theme", string(r.cfg.TrainerTheme)))
	return nil
}

// randomizeStarters replaces the starters by distinct species if the pool
// is large enough.
func (r *Randomizer) randomizeStarters() error {
	table := r.gen.Starters
	records, err := table.Records(r.image)
	if err != nil {
		return err
	}

	positions := make([]int, 0, len(records)*len(table.Fields))
	for _, record := range records {
		for _, field := range table.Fields {
			positions = append(positions, record+field)
		}
	}

	starters, err := r.sampleDistinct(r.pool, len(positions))
	if err != nil {
		return err
	}
	for i, pos := range positions {
		r.image[pos] = byte(starters[i])
	}

	r.logger.Debug("Randomized starters", log.Int("starters", len(positions)))
	return nil
}

// randomizeStatics replaces the species of all static encounters.
func (r *Randomizer) randomizeStatics() error {
	table := r.gen.Statics
	records, err := table.Records(r.image)
	if err != nil {
		return err
	}

	for _, record := range records {
		for _, field := range table.Fields {
			id, err := r.pickOne(r.pool)
			if err != nil {
				return err
			}
			r.image[record+field] = byte(id)
		}
	}

	r.logger.Debug("Randomized static encounters", log.Int("encounters", len(records)))
	return nil
}
