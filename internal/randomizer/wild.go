package randomizer

import (
	"fmt"

	"github.com/retroenv/gbrandomizer/internal/locator"
	"github.com/retroenv/gbrandomizer/internal/mapper"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// randomizeWild locates every wild table of the generation and replaces
// the species of all used encounter slots. Level bytes are not modified.
func (r *Randomizer) randomizeWild() error {
	tables, err := r.locateWildTables(r.mapper)
	if err != nil {
		return err
	}

	for _, table := range tables {
		if err := r.randomizeWildTable(table); err != nil {
			return err
		}
	}
	return nil
}

// locateWildTables locates the wild tables in declaration order. Records
// claimed by a table are not available to the following tables.
func (r *Randomizer) locateWildTables(m *mapper.Mapper) ([]locator.WildTable, error) {
	used := set.New[int]()
	tables := make([]locator.WildTable, 0, len(r.gen.WildTables))

	for _, definition := range r.gen.WildTables {
		table, err := locator.Locate(m, definition, r.gen.MaxSpecies, used)
		if err != nil {
			return nil, fmt.Errorf("locating wild table: %w", err)
		}
		for _, entry := range table.EntryOffsets {
			used.Add(entry)
		}

		r.logger.Debug("Located wild table",
			log.String("table", definition.Name),
			log.Int("bank", table.Bank),
			log.Hex("offset", table.PointerOffset),
			log.Int("entries", len(table.EntryOffsets)))
		tables = append(tables, table)
	}
	return tables, nil
}

func (r *Randomizer) randomizeWildTable(table locator.WildTable) error {
	for _, pos := range table.SpeciesPositions() {
		if locator.IsEmptySlot(r.image[pos-1], r.image[pos]) {
			continue
		}

		id, err := r.pickOne(r.pool)
		if err != nil {
			return err
		}
		r.image[pos] = byte(id)
	}
	return nil
}
