// Package locator finds pointer indexed wild encounter tables inside a
// banked cartridge image without knowing their offsets in advance.
package locator

const (
	// DefaultMinLevel is the lowest level accepted for an encounter slot.
	DefaultMinLevel = 1
	// DefaultMaxLevel is the highest level accepted for an encounter slot.
	DefaultMaxLevel = 100
)

// WildEntryDefinition describes the layout of a single encounter record.
// Every species byte is preceded by its level byte.
type WildEntryDefinition struct {
	Length         int   // byte length of one record
	SpeciesOffsets []int // offsets relative to the record start holding a species id
	MinLevel       int
	MaxLevel       int
}

// WildTableDefinition describes a pointer table of encounter records.
type WildTableDefinition struct {
	Name         string
	PointerCount int
	Entry        WildEntryDefinition
}

// WildTable is a located table.
type WildTable struct {
	Definition    WildTableDefinition
	Bank          int
	PointerOffset int   // absolute offset of the pointer table
	EntryOffsets  []int // absolute offsets of all referenced records
}

// IsEmptySlot returns whether the level and species pair marks an unused slot.
func IsEmptySlot(level, species byte) bool {
	return level == 0 && species == 0
}

// Validate returns whether the record at the absolute offset is structurally
// a valid encounter record. Empty slots are always accepted.
func (d WildEntryDefinition) Validate(image []byte, offset, maxSpecies int) bool {
	if offset < 0 || offset+d.Length > len(image) {
		return false
	}

	for _, rel := range d.SpeciesOffsets {
		speciesPos := offset + rel
		species := image[speciesPos]
		level := image[speciesPos-1]

		if IsEmptySlot(level, species) {
			continue
		}
		if int(level) < d.MinLevel || int(level) > d.MaxLevel {
			return false
		}
		if species < 1 || int(species) > maxSpecies {
			return false
		}
	}
	return true
}

// SpeciesPositions returns the absolute species byte positions of the record
// starting at the absolute offset.
func (d WildEntryDefinition) SpeciesPositions(offset int) []int {
	positions := make([]int, 0, len(d.SpeciesOffsets))
	for _, rel := range d.SpeciesOffsets {
		positions = append(positions, offset+rel)
	}
	return positions
}

// SpeciesPositions returns the absolute species byte positions of all
// records of the table in table order.
func (t WildTable) SpeciesPositions() []int {
	var positions []int
	for _, offset := range t.EntryOffsets {
		positions = append(positions, t.Definition.Entry.SpeciesPositions(offset)...)
	}
	return positions
}
