package catalog

import (
	"github.com/retroenv/gbrandomizer/internal/locator"
)

var gen2Types = []TypeID{
	{"NORMAL", 0x00},
	{"FIGHTING", 0x01},
	{"FLYING", 0x02},
	{"POISON", 0x03},
	{"GROUND", 0x04},
	{"ROCK", 0x05},
	{"BUG", 0x07},
	{"GHOST", 0x08},
	{"STEEL", 0x09},
	{"FIRE", 0x14},
	{"WATER", 0x15},
	{"GRASS", 0x16},
	{"ELECTRIC", 0x17},
	{"PSYCHIC", 0x18},
	{"ICE", 0x19},
	{"DRAGON", 0x1a},
	{"DARK", 0x1b},
}

const (
	grassEntryLength = 45
	waterEntryLength = 7
)

var (
	gen2Grass = locator.WildEntryDefinition{
		Length:         grassEntryLength,
		SpeciesOffsets: grassSpeciesOffsets(),
		MinLevel:       locator.DefaultMinLevel,
		MaxLevel:       locator.DefaultMaxLevel,
	}
	gen2Water = locator.WildEntryDefinition{
		Length:         waterEntryLength,
		SpeciesOffsets: []int{2, 4, 6},
		MinLevel:       locator.DefaultMinLevel,
		MaxLevel:       locator.DefaultMaxLevel,
	}
)

// Generation2 covers Gold, Silver and Crystal.
var Generation2 = &Generation{
	Number:      2,
	MaxSpecies:  251,
	Legendaries: []int{144, 145, 146, 150, 151, 243, 244, 245, 249, 250, 251},
	Types:       gen2Types,

	WildTables: []locator.WildTableDefinition{
		{Name: "Johto grass encounters", PointerCount: 61, Entry: gen2Grass},
		{Name: "Kanto grass encounters", PointerCount: 30, Entry: gen2Grass},
		{Name: "Johto water encounters", PointerCount: 38, Entry: gen2Water},
		{Name: "Kanto water encounters", PointerCount: 24, Entry: gen2Water},
	},

	Trainers:   StructuredTable{Name: "trainer parties", Offset: 0x39a00, Stride: 7, Species: NoField, Fields: fieldRange(1, 6)},
	Starters:   StructuredTable{Name: "starters", Offset: 0x1800, Stride: 1, Species: NoField, Fields: []int{0}},
	Statics:    StructuredTable{Name: "static encounters", Offset: 0x1900, Stride: 2, Species: NoField, Fields: []int{0}},
	Shops:      StructuredTable{Name: "shops", Offset: 0x162fe, Stride: 9, Species: NoField, Fields: fieldRange(0, 9)},
	Movesets:   StructuredTable{Name: "movesets", Offset: 0x425b1, Stride: 5, Species: 0, Fields: fieldRange(1, 4)},
	Typings:    StructuredTable{Name: "typings", Offset: 0x51424, Stride: 3, Species: 0, Fields: []int{1, 2}},
	Evolutions: StructuredTable{Name: "evolutions", Offset: 0x42c00, Stride: 2, Species: 0, Fields: []int{1}},
	TMHM:       StructuredTable{Name: "TM/HM compatibility", Offset: 0x51800, Stride: 2, Species: 0, Fields: []int{1}},
	BaseStats:  StructuredTable{Name: "base stats", Offset: 0x51c00, Stride: 7, Species: 0, Fields: fieldRange(1, 6)},

	ProgressionItems: []int{
		0x07, // bicycle
		0x3a, // old rod
		0x3b, // good rod
		0x3d, // super rod
		0x43, // secret potion
		0x44, // s.s. ticket
		0x45, // mystery egg
		0x7f, // card key
		0x80, // machine part
		0x82, // lost item
		0x85, // basement key
		0x86, // pass
		0xaf, // squirtbottle
		0xf3, // HM01
		0xf4, // HM02
		0xf5, // HM03
		0xf6, // HM04
		0xf7, // HM05
		0xf8, // HM06
		0xf9, // HM07
	},
}

// grassSpeciesOffsets returns the species positions of a grass record: three
// rate bytes followed by morning, day and night blocks of seven level and
// species pairs.
func grassSpeciesOffsets() []int {
	const (
		base        = 3
		blockLength = 14
		slots       = 7
	)

	offsets := make([]int, 0, 3*slots)
	for block := range 3 {
		blockBase := base + block*blockLength
		for slot := range slots {
			offsets = append(offsets, blockBase+slot*2+1)
		}
	}
	return offsets
}
