package randomizer

import (
	"fmt"
	"slices"

	"github.com/retroenv/gbrandomizer/internal/errs"
	"github.com/retroenv/gbrandomizer/internal/options"
	"github.com/retroenv/gbrandomizer/internal/species"
	"github.com/retroenv/retrogolib/set"
)

const (
	maxMoveID = 250
	maxItemID = 250

	minStat = 1
	maxStat = 255

	fallbackStatTotal = 300
)

// pickOne returns a uniformly chosen species of the pool.
func (r *Randomizer) pickOne(pool []int) (int, error) {
	if len(pool) == 0 {
		return 0, fmt.Errorf("%w: no species available", errs.ErrEmptyPool)
	}
	return pool[r.rnd.IntN(len(pool))], nil
}

// sampleDistinct returns count distinct species in random order. If the pool
// is smaller than count, the species are drawn independently with
// replacement instead.
func (r *Randomizer) sampleDistinct(pool []int, count int) ([]int, error) {
	if len(pool) < count {
		result := make([]int, count)
		for i := range result {
			id, err := r.pickOne(pool)
			if err != nil {
				return nil, err
			}
			result[i] = id
		}
		return result, nil
	}

	candidates := slices.Clone(pool)
	for i := range count {
		j := i + r.rnd.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	return candidates[:count], nil
}

// pickUniqueMoves returns count distinct move ids in [1, maxMoveID].
func (r *Randomizer) pickUniqueMoves(count int) []int {
	count = min(count, maxMoveID)

	seen := set.New[int]()
	moves := make([]int, 0, count)
	for len(moves) < count {
		move := r.rnd.IntRange(1, maxMoveID)
		if seen.Contains(move) {
			continue
		}
		seen.Add(move)
		moves = append(moves, move)
	}
	return moves
}

// redistributeStats returns species.StatCount stats in [minStat, maxStat]
// that sum up exactly to total. Non positive totals are replaced by a
// fallback total, totals that can not be represented are clamped.
func (r *Randomizer) redistributeStats(total int) species.Stats {
	if total <= 0 {
		total = fallbackStatTotal
	}
	total = max(total, species.StatCount*minStat)
	total = min(total, species.StatCount*maxStat)

	var weights [species.StatCount]float64
	weightSum := 0.0
	for i := range weights {
		weights[i] = r.rnd.Float64()
		weightSum += weights[i]
	}

	var stats species.Stats
	for i := range stats {
		share := 1.0 / float64(species.StatCount)
		if weightSum > 0 {
			share = weights[i] / weightSum
		}
		stats[i] = clampStat(int(float64(total) * share))
	}

	for sum := stats.Total(); sum != total; sum = stats.Total() {
		i := r.rnd.IntN(species.StatCount)
		switch {
		case sum < total && stats[i] < maxStat:
			stats[i]++
		case sum > total && stats[i] > minStat:
			stats[i]--
		}
	}
	return stats
}

func clampStat(v int) int {
	return min(max(v, minStat), maxStat)
}

// pickItem returns an item id in [1, maxItemID] that differs from current.
// With safeguarding enabled progression items are never returned.
func (r *Randomizer) pickItem(current int, safeguard bool, progression set.Set[int]) int {
	for {
		item := r.rnd.IntRange(1, maxItemID)
		if item == current {
			continue
		}
		if safeguard && progression.Contains(item) {
			continue
		}
		return item
	}
}

// applyTrainerTheme returns the pool of a trainer. The monotype theme picks
// the species of the first type in random order that has any species in
// the pool.
func (r *Randomizer) applyTrainerTheme(pool []int, theme options.TrainerTheme) []int {
	if theme != options.ThemeMonotype {
		return pool
	}

	types := slices.Clone(r.model.Types())
	r.rnd.Shuffle(len(types), func(i, j int) {
		types[i], types[j] = types[j], types[i]
	})

	for _, typ := range types {
		if themed := r.model.ByType(typ, pool); len(themed) > 0 {
			return themed
		}
	}
	return pool
}
