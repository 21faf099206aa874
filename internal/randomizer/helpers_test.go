package randomizer

import (
	"testing"

	"github.com/retroenv/gbrandomizer/internal/catalog"
	"github.com/retroenv/gbrandomizer/internal/locator"
	"github.com/retroenv/gbrandomizer/internal/mapper"
	"github.com/retroenv/gbrandomizer/internal/options"
	"github.com/retroenv/gbrandomizer/internal/rng"
	"github.com/retroenv/retrogolib/log"
)

const (
	testSpecies   = 20
	testTrainers  = 10
	testShops     = 4
	testStarters  = 3
	testStatics   = 5
	testWildTable = mapper.BankSize
)

var testWild = locator.WildTableDefinition{
	Name:         "test wild encounters",
	PointerCount: 4,
	Entry: locator.WildEntryDefinition{
		Length:         5,
		SpeciesOffsets: []int{2, 4},
		MinLevel:       locator.DefaultMinLevel,
		MaxLevel:       locator.DefaultMaxLevel,
	},
}

func testGeneration() *catalog.Generation {
	return &catalog.Generation{
		Number:      1,
		MaxSpecies:  testSpecies,
		Legendaries: []int{19, 20},
		Types: []catalog.TypeID{
			{Name: "NORMAL", ID: 0x00},
			{Name: "FIRE", ID: 0x14},
			{Name: "WATER", ID: 0x15},
		},
		WildTables: []locator.WildTableDefinition{testWild},

		BaseStats:  catalog.StructuredTable{Name: "base stats", Offset: 0x400, Stride: 7, Species: 0, Fields: []int{1, 2, 3, 4, 5, 6}},
		Typings:    catalog.StructuredTable{Name: "typings", Offset: 0x600, Stride: 3, Species: 0, Fields: []int{1, 2}},
		Movesets:   catalog.StructuredTable{Name: "movesets", Offset: 0x800, Stride: 5, Species: 0, Fields: []int{1, 2, 3, 4}},
		TMHM:       catalog.StructuredTable{Name: "tmhm", Offset: 0xa00, Stride: 2, Species: 0, Fields: []int{1}},
		Evolutions: catalog.StructuredTable{Name: "evolutions", Offset: 0xc00, Stride: 2, Species: 0, Fields: []int{1}},
		Trainers:   catalog.StructuredTable{Name: "trainers", Offset: 0xe00, Stride: 7, Species: catalog.NoField, Fields: []int{1, 2, 3, 4, 5, 6}},
		Shops:      catalog.StructuredTable{Name: "shops", Offset: 0x1000, Stride: 9, Species: catalog.NoField, Fields: []int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
		Starters:   catalog.StructuredTable{Name: "starters", Offset: 0x1400, Stride: 1, Species: catalog.NoField, Fields: []int{0}},
		Statics:    catalog.StructuredTable{Name: "statics", Offset: 0x1500, Stride: 2, Species: catalog.NoField, Fields: []int{0}},

		ProgressionItems: []int{1, 2, 3, 4, 5},
	}
}

// buildTestImage returns a two bank image containing all tables of the
// test generation.
func buildTestImage(gen *catalog.Generation) []byte {
	image := make([]byte, 2*mapper.BankSize)

	image[gen.BaseStats.Offset] = testSpecies
	image[gen.Typings.Offset] = testSpecies
	image[gen.Movesets.Offset] = testSpecies
	image[gen.TMHM.Offset] = testSpecies
	image[gen.Evolutions.Offset] = testSpecies
	for i := range testSpecies {
		id := byte(i + 1)

		record := gen.BaseStats.Offset + 1 + i*gen.BaseStats.Stride
		image[record] = id
		for j, v := range []byte{40, 50, 60, 70, 80, 90} {
			image[record+1+j] = v + id
		}

		image[gen.Typings.Offset+1+i*gen.Typings.Stride] = id
		record = gen.Movesets.Offset + 1 + i*gen.Movesets.Stride
		image[record] = id
		for j := range 4 {
			image[record+1+j] = byte(j + 1)
		}
		image[gen.TMHM.Offset+1+i*gen.TMHM.Stride] = id

		record = gen.Evolutions.Offset + 1 + i*gen.Evolutions.Stride
		image[record] = id
		if id%2 == 1 {
			image[record+1] = id + 1
		}
	}

	image[gen.Trainers.Offset] = testTrainers
	for i := range testTrainers {
		record := gen.Trainers.Offset + 1 + i*gen.Trainers.Stride
		image[record] = byte(i)
		for j := 1; j < gen.Trainers.Stride; j++ {
			image[record+j] = 1
		}
	}

	image[gen.Shops.Offset] = testShops
	for i := range testShops {
		for j := range gen.Shops.Stride {
			image[gen.Shops.Offset+1+i*gen.Shops.Stride+j] = byte((i*gen.Shops.Stride+j)%12 + 1)
		}
	}

	image[gen.Starters.Offset] = testStarters
	for i := range testStarters {
		image[gen.Starters.Offset+1+i] = byte(1 + i*3)
	}

	image[gen.Statics.Offset] = testStatics
	for i := range testStatics {
		image[gen.Statics.Offset+1+i*2] = 10
		image[gen.Statics.Offset+2+i*2] = 50
	}

	placeWildTable(image, testWildTable, testWild)
	return image
}

// placeWildTable writes a wild pointer table into bank 1 followed directly
// by its records.
func placeWildTable(image []byte, offset int, definition locator.WildTableDefinition) {
	m, _ := mapper.New(image)
	bnk := m.Bank(1)

	data := offset + definition.PointerCount*2
	for i := range definition.PointerCount {
		entry := data + i*definition.Entry.Length
		m.WriteWord(offset+i*2, bnk.Address(entry))

		image[entry] = 10
		for slot, rel := range definition.Entry.SpeciesOffsets {
			image[entry+rel-1] = byte(5 + slot)
			image[entry+rel] = byte(1 + (i+slot)%18)
		}
	}
}

// wildSpeciesPositions returns the species positions of the test wild table.
func wildSpeciesPositions() []int {
	var positions []int
	data := testWildTable + testWild.PointerCount*2
	for i := range testWild.PointerCount {
		entry := data + i*testWild.Entry.Length
		positions = append(positions, testWild.Entry.SpeciesPositions(entry)...)
	}
	return positions
}

func allFeatures(seed string) options.Randomization {
	cfg := options.NewRandomization().WithSeed(seed)
	cfg.Trainers = true
	cfg.TrainerTheme = options.ThemeMonotype
	cfg.Starters = true
	cfg.Statics = true
	cfg.Items = true
	cfg.Movesets = true
	cfg.Typings = true
	cfg.Evolutions = true
	cfg.EvolutionConsistency = true
	cfg.TMHM = true
	cfg.BaseStats = true
	return cfg
}

func newTestRandomizer(t *testing.T, gen *catalog.Generation, cfg options.Randomization) *Randomizer {
	t.Helper()
	return New(log.NewTestLogger(t), gen, cfg, rng.New(cfg.Seed))
}
