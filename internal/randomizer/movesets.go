package randomizer

import (
	"github.com/retroenv/retrogolib/log"
)

// randomizeMovesets replaces the move slots of every species with distinct
// moves. The species id byte is kept.
func (r *Randomizer) randomizeMovesets() error {
	table := r.gen.Movesets
	records, err := table.Records(r.image)
	if err != nil {
		return err
	}

	for _, record := range records {
		moves := r.pickUniqueMoves(len(table.Fields))
		for i, field := range table.Fields {
			r.image[record+field] = byte(moves[i])
		}
	}

	r.logger.Debug("Randomized movesets", log.Int("species", len(records)))
	return nil
}
