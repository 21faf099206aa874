package randomizer

import (
	"fmt"

	"github.com/retroenv/gbrandomizer/internal/species"
	"github.com/retroenv/retrogolib/log"
)

// randomizeTypings assigns every species a random primary and an optional
// secondary type. Single typed species store the primary type twice.
func (r *Randomizer) randomizeTypings() error {
	table := r.gen.Typings
	records, err := table.Records(r.image)
	if err != nil {
		return err
	}
	if len(table.Fields) != 2 {
		return fmt.Errorf("typings table has %d type fields, expected 2", len(table.Fields))
	}

	types := r.model.Types()
	if len(types) == 0 {
		return fmt.Errorf("generation %d has no types", r.gen.Number)
	}

	for _, record := range records {
		primary := types[r.rnd.IntN(len(types))]
		secondary := ""
		// index 0 selects no secondary type
		if i := r.rnd.IntN(len(types) + 1); i > 0 {
			secondary = types[i-1]
		}
		pair := species.Pair(primary, secondary)

		first, _ := r.gen.TypeID(pair[0])
		second := first
		if len(pair) > 1 {
			second, _ = r.gen.TypeID(pair[1])
		}
		r.image[record+table.Fields[0]] = first
		r.image[record+table.Fields[1]] = second

		id := int(r.image[record+table.Species])
		r.model.SetTypesOverride(id, pair)
	}

	r.logger.Debug("Randomized typings", log.Int("species", len(records)))
	return nil
}
