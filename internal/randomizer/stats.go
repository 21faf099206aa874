package randomizer

import (
	"fmt"

	"github.com/retroenv/gbrandomizer/internal/species"
	"github.com/retroenv/retrogolib/log"
)

// randomizeTMHM replaces the compatibility flag byte of every species.
func (r *Randomizer) randomizeTMHM() error {
	table := r.gen.TMHM
	records, err := table.Records(r.image)
	if err != nil {
		return err
	}

	for _, record := range records {
		for _, field := range table.Fields {
			r.image[record+field] = byte(r.rnd.IntRange(1, 255))
		}
	}

	r.logger.Debug("Randomized TM/HM compatibility", log.Int("species", len(records)))
	return nil
}

// randomizeBaseStats shuffles the base stats of every species while keeping
// its base stat total.
func (r *Randomizer) randomizeBaseStats() error {
	table := r.gen.BaseStats
	records, err := table.Records(r.image)
	if err != nil {
		return err
	}
	if len(table.Fields) != species.StatCount {
		return fmt.Errorf("base stats table has %d stat fields, expected %d", len(table.Fields), species.StatCount)
	}

	for _, record := range records {
		var original species.Stats
		for i := range original {
			original[i] = int(r.image[record+table.Fields[i]])
		}

		stats := r.redistributeStats(original.Total())
		for i, v := range stats {
			r.image[record+table.Fields[i]] = byte(v)
		}

		id := int(r.image[record+table.Species])
		r.model.SetStatsOverride(id, stats)
	}

	r.logger.Debug("Randomized base stats", log.Int("species", len(records)))
	return nil
}
