package locator

import (
	"fmt"

	"github.com/retroenv/gbrandomizer/internal/errs"
	"github.com/retroenv/gbrandomizer/internal/mapper"
	"github.com/retroenv/retrogolib/set"
)

// Locate scans all switchable banks for a pointer table matching the
// definition. Candidates are tried by increasing bank and offset, the first
// accepted candidate is returned. Records already listed in used are not
// accepted, which keeps tables of one run from overlapping.
func Locate(m *mapper.Mapper, definition WildTableDefinition, maxSpecies int,
	used set.Set[int]) (WildTable, error) {

	tableBytes := definition.PointerCount * 2

	for _, bnk := range m.SwitchableBanks() {
		for offset := bnk.Start(); offset+tableBytes <= bnk.End(); offset++ {
			entries, ok := readCandidate(m, bnk, offset, definition, maxSpecies, used)
			if !ok {
				continue
			}
			if extendsTable(m, bnk, offset+tableBytes, definition, maxSpecies) {
				continue
			}

			return WildTable{
				Definition:    definition,
				Bank:          bnk.ID(),
				PointerOffset: offset,
				EntryOffsets:  entries,
			}, nil
		}
	}

	return WildTable{}, fmt.Errorf("%w: could not locate %s pointer table", errs.ErrTableNotFound, definition.Name)
}

// readCandidate decodes and validates all pointers of a candidate table.
func readCandidate(m *mapper.Mapper, bnk mapper.Bank, offset int, definition WildTableDefinition,
	maxSpecies int, used set.Set[int]) ([]int, bool) {

	image := m.Image()
	entries := make([]int, 0, definition.PointerCount)

	for i := range definition.PointerCount {
		pointer := m.ReadWord(offset + i*2)
		if !mapper.InWindow(pointer) {
			return nil, false
		}

		entry := mapper.ToAbsolute(bnk.ID(), pointer)
		if used != nil && used.Contains(entry) {
			return nil, false
		}
		if !definition.Entry.Validate(image, entry, maxSpecies) {
			return nil, false
		}
		entries = append(entries, entry)
	}
	return entries, true
}

// extendsTable reports whether the word following an accepted candidate is
// itself a valid pointer to a valid record. Such a candidate is only a part
// of a larger adjacent table or sits at a spurious offset of the real one.
func extendsTable(m *mapper.Mapper, bnk mapper.Bank, next int, definition WildTableDefinition,
	maxSpecies int) bool {

	if next+1 >= bnk.End() {
		return false
	}

	pointer := m.ReadWord(next)
	if !mapper.InWindow(pointer) {
		return false
	}
	entry := mapper.ToAbsolute(bnk.ID(), pointer)
	return definition.Entry.Validate(m.Image(), entry, maxSpecies)
}
