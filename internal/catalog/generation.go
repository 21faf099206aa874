package catalog

import (
	"github.com/retroenv/gbrandomizer/internal/locator"
)

// TypeID maps a type name to its in-game id.
type TypeID struct {
	Name string
	ID   byte
}

// Generation describes all tables of one console generation.
type Generation struct {
	Number      int
	MaxSpecies  int
	Legendaries []int
	Types       []TypeID

	WildTables []locator.WildTableDefinition

	Trainers   StructuredTable // class byte followed by the party species slots
	Starters   StructuredTable // one species per record
	Statics    StructuredTable // species followed by its level
	Shops      StructuredTable // fixed count of item slots per shop
	Movesets   StructuredTable // species followed by its move slots
	Typings    StructuredTable // species followed by two type ids
	Evolutions StructuredTable // source species followed by the target species
	TMHM       StructuredTable // species followed by one compatibility flag byte
	BaseStats  StructuredTable // species followed by six stat bytes

	ProgressionItems []int
}

// TypeNames returns the ordered list of type names.
func (g *Generation) TypeNames() []string {
	names := make([]string, len(g.Types))
	for i, typ := range g.Types {
		names[i] = typ.Name
	}
	return names
}

// TypeID returns the in-game id of a type name.
func (g *Generation) TypeID(name string) (byte, bool) {
	for _, typ := range g.Types {
		if typ.Name == name {
			return typ.ID, true
		}
	}
	return 0, false
}

// TypeName returns the type name of an in-game id.
func (g *Generation) TypeName(id byte) (string, bool) {
	for _, typ := range g.Types {
		if typ.ID == id {
			return typ.Name, true
		}
	}
	return "", false
}

// fieldRange returns count consecutive field positions starting at first.
func fieldRange(first, count int) []int {
	fields := make([]int, count)
	for i := range fields {
		fields[i] = first + i
	}
	return fields
}
