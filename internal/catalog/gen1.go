package catalog

import (
	"github.com/retroenv/gbrandomizer/internal/locator"
)

var gen1Types = []TypeID{
	{"NORMAL", 0x00},
	{"FIGHTING", 0x01},
	{"FLYING", 0x02},
	{"POISON", 0x03},
	{"GROUND", 0x04},
	{"ROCK", 0x05},
	{"BUG", 0x07},
	{"GHOST", 0x08},
	{"FIRE", 0x14},
	{"WATER", 0x15},
	{"GRASS", 0x16},
	{"ELECTRIC", 0x17},
	{"PSYCHIC", 0x18},
	{"ICE", 0x19},
	{"DRAGON", 0x1a},
}

// Generation1 covers Red, Blue, Green and Yellow.
var Generation1 = &Generation{
	Number:      1,
	MaxSpecies:  151,
	Legendaries: []int{144, 145, 146, 150, 151},
	Types:       gen1Types,

	WildTables: []locator.WildTableDefinition{
		{
			Name:         "Kanto wild encounters",
			PointerCount: 249,
			Entry: locator.WildEntryDefinition{
				Length:         21,
				SpeciesOffsets: gen1SpeciesOffsets(),
				MinLevel:       locator.DefaultMinLevel,
				MaxLevel:       locator.DefaultMaxLevel,
			},
		},
	},

	Trainers:   StructuredTable{Name: "trainer parties", Offset: 0x39400, Stride: 7, Species: NoField, Fields: fieldRange(1, 6)},
	Starters:   StructuredTable{Name: "starters", Offset: 0x3a600, Stride: 1, Species: NoField, Fields: []int{0}},
	Statics:    StructuredTable{Name: "static encounters", Offset: 0x3a700, Stride: 2, Species: NoField, Fields: []int{0}},
	Shops:      StructuredTable{Name: "shops", Offset: 0x39c00, Stride: 9, Species: NoField, Fields: fieldRange(0, 9)},
	Movesets:   StructuredTable{Name: "movesets", Offset: 0x38c00, Stride: 5, Species: 0, Fields: fieldRange(1, 4)},
	Typings:    StructuredTable{Name: "typings", Offset: 0x38800, Stride: 3, Species: 0, Fields: []int{1, 2}},
	Evolutions: StructuredTable{Name: "evolutions", Offset: 0x39200, Stride: 2, Species: 0, Fields: []int{1}},
	TMHM:       StructuredTable{Name: "TM/HM compatibility", Offset: 0x39000, Stride: 2, Species: 0, Fields: []int{1}},
	BaseStats:  StructuredTable{Name: "base stats", Offset: 0x38000, Stride: 7, Species: 0, Fields: fieldRange(1, 6)},

	ProgressionItems: []int{
		0x06, // bicycle
		0x2b, // secret key
		0x2d, // bike voucher
		0x30, // card key
		0x3f, // s.s. ticket
		0x40, // gold teeth
		0x45, // coin case
		0x46, // oak's parcel
		0x48, // silph scope
		0x49, // poke flute
		0x4a, // lift key
		0xc4, // HM01
		0xc5, // HM02
		0xc6, // HM03
		0xc7, // HM04
		0xc8, // HM05
	},
}

// gen1SpeciesOffsets returns the species positions of an encounter record:
// one rate byte followed by ten level and species pairs.
func gen1SpeciesOffsets() []int {
	offsets := make([]int, 10)
	for i := range offsets {
		offsets[i] = 2 + i*2
	}
	return offsets
}
