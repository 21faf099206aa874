package randomizer

import (
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// buildPool returns the eligible species ids in increasing order. If the
// filters exclude every species, the unfiltered range is used instead.
func (r *Randomizer) buildPool() []int {
	legendaries := set.New[int]()
	if !r.cfg.AllowLegendaries {
		for _, id := range r.gen.Legendaries {
			legendaries.Add(id)
		}
	}

	all := make([]int, 0, r.gen.MaxSpecies)
	pool := make([]int, 0, r.gen.MaxSpecies)
	for id := 1; id <= r.gen.MaxSpecies; id++ {
		all = append(all, id)

		if legendaries.Contains(id) {
			continue
		}
		if !r.inBSTBounds(id) {
			continue
		}
		pool = append(pool, id)
	}

	if len(pool) == 0 {
		r.logger.Warn("Species filters exclude every species, using all species",
			log.Int("max_species", r.gen.MaxSpecies))
		return all
	}
	return pool
}

func (r *Randomizer) inBSTBounds(id int) bool {
	if r.cfg.MinBST == nil && r.cfg.MaxBST == nil {
		return true
	}

	bst := r.model.BST(id)
	if r.cfg.MinBST != nil && bst < *r.cfg.MinBST {
		return false
	}
	if r.cfg.MaxBST != nil && bst > *r.cfg.MaxBST {
		return false
	}
	return true
}
