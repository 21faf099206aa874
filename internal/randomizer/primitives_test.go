package randomizer

import (
	"errors"
	"testing"

	"github.com/retroenv/gbrandomizer/internal/errs"
	"github.com/retroenv/gbrandomizer/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/set"
)

func TestPickOne(t *testing.T) {
	r := newTestRandomizer(t, testGeneration(), options.NewRandomization().WithSeed("one"))

	for range 100 {
		id, err := r.pickOne([]int{7, 8, 9})
		assert.NoError(t, err)
		assert.True(t, id >= 7 && id <= 9)
	}

	_, err := r.pickOne(nil)
	assert.True(t, errors.Is(err, errs.ErrEmptyPool))
}

func TestSampleDistinct(t *testing.T) {
	r := newTestRandomizer(t, testGeneration(), options.NewRandomization().WithSeed("sample"))

	t.Run("distinct", func(t *testing.T) {
		pool := []int{1, 2, 3, 4, 5, 6}
		for range 50 {
			sample, err := r.sampleDistinct(pool, 6)
			assert.NoError(t, err)
			assert.Len(t, sample, 6)

			seen := set.New[int]()
			for _, id := range sample {
				assert.False(t, seen.Contains(id))
				seen.Add(id)
			}
		}
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, pool)
	})

	t.Run("pool too small", func(t *testing.T) {
		sample, err := r.sampleDistinct([]int{4, 5}, 5)
		assert.NoError(t, err)
		assert.Len(t, sample, 5)
		for _, id := range sample {
			assert.True(t, id == 4 || id == 5)
		}
	})

	t.Run("empty pool", func(t *testing.T) {
		_, err := r.sampleDistinct(nil, 3)
		assert.True(t, errors.Is(err, errs.ErrEmptyPool))
	})
}

func TestPickUniqueMoves(t *testing.T) {
	r := newTestRandomizer(t, testGeneration(), options.NewRandomization().WithSeed("moves"))

	for _, count := range []int{1, 4, 50, 250} {
		moves := r.pickUniqueMoves(count)
		assert.Len(t, moves, count)

		seen := set.New[int]()
		for _, move := range moves {
			assert.True(t, move >= 1 && move <= maxMoveID)
			assert.False(t, seen.Contains(move))
			seen.Add(move)
		}
	}
}

func TestRedistributeStats(t *testing.T) {
	r := newTestRandomizer(t, testGeneration(), options.NewRandomization().WithSeed("stats"))

	tests := []struct {
		total    int
		expected int
	}{
		{0, fallbackStatTotal},
		{-5, fallbackStatTotal},
		{1, 6},
		{6, 6},
		{300, 300},
		{457, 457},
		{1529, 1529},
		{1530, 1530},
		{2000, 1530},
	}

	for _, tt := range tests {
		for range 20 {
			stats := r.redistributeStats(tt.total)
			assert.Equal(t, tt.expected, stats.Total())
			for _, v := range stats {
				assert.True(t, v >= minStat && v <= maxStat)
			}
		}
	}
}

func TestPickItem(t *testing.T) {
	r := newTestRandomizer(t, testGeneration(), options.NewRandomization().WithSeed("items"))
	progression := set.New[int]()
	for item := 1; item <= 200; item++ {
		progression.Add(item)
	}

	for range 200 {
		item := r.pickItem(210, true, progression)
		assert.True(t, item > 200 && item <= maxItemID)
		assert.True(t, item != 210)
	}

	sawProgression := false
	for range 200 {
		item := r.pickItem(3, false, progression)
		assert.True(t, item >= 1 && item <= maxItemID)
		assert.True(t, item != 3)
		if progression.Contains(item) {
			sawProgression = true
		}
	}
	assert.True(t, sawProgression)
}

func TestApplyTrainerTheme(t *testing.T) {
	r := newTestRandomizer(t, testGeneration(), options.NewRandomization().WithSeed("theme"))
	pool := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	assert.Equal(t, pool, r.applyTrainerTheme(pool, options.ThemeOff))

	for range 20 {
		themed := r.applyTrainerTheme(pool, options.ThemeMonotype)
		assert.True(t, len(themed) > 0)

		found := false
		for _, typ := range r.model.Types() {
			if len(r.model.ByType(typ, themed)) == len(themed) {
				found = true
			}
		}
		assert.True(t, found)
	}

	// no type has any species in an empty pool, the pool is returned as is
	assert.Len(t, r.applyTrainerTheme(nil, options.ThemeMonotype), 0)
}

func TestBuildPool(t *testing.T) {
	gen := testGeneration()

	t.Run("legendaries excluded", func(t *testing.T) {
		r := newTestRandomizer(t, gen, options.NewRandomization())
		pool := r.buildPool()
		assert.Len(t, pool, testSpecies-2)
		assert.Equal(t, 1, pool[0])
		assert.Equal(t, 18, pool[len(pool)-1])
	})

	t.Run("legendaries allowed", func(t *testing.T) {
		cfg := options.NewRandomization()
		cfg.AllowLegendaries = true
		pool := newTestRandomizer(t, gen, cfg).buildPool()
		assert.Len(t, pool, testSpecies)
	})

	t.Run("bst bounds", func(t *testing.T) {
		minBST, maxBST := 300, 420
		cfg := options.NewRandomization()
		cfg.MinBST = &minBST
		cfg.MaxBST = &maxBST
		r := newTestRandomizer(t, gen, cfg)

		var expected []int
		for id := 1; id <= 18; id++ {
			if bst := r.model.BST(id); bst >= minBST && bst <= maxBST {
				expected = append(expected, id)
			}
		}
		if len(expected) == 0 {
			t.Skip("baseline stats of the test species are outside of the bounds")
		}
		assert.Equal(t, expected, r.buildPool())
	})

	t.Run("empty filter falls back to all species", func(t *testing.T) {
		minBST := 10000
		cfg := options.NewRandomization()
		cfg.MinBST = &minBST
		pool := newTestRandomizer(t, gen, cfg).buildPool()
		assert.Len(t, pool, testSpecies)
		assert.Equal(t, 20, pool[len(pool)-1])
	})
}
