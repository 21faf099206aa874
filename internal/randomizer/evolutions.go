package randomizer

import (
	"github.com/retroenv/retrogolib/log"
)

// randomizeEvolutions replaces the target of every evolution. A zero target
// marks a species that does not evolve and is kept. With evolution
// consistency enabled targets never have a lower base stat total than the
// source, records without such a candidate are kept unchanged.
func (r *Randomizer) randomizeEvolutions() error {
	table := r.gen.Evolutions
	records, err := table.Records(r.image)
	if err != nil {
		return err
	}

	var changed, skipped int
	for _, record := range records {
		targetPos := record + table.Fields[0]
		if r.image[targetPos] == 0 {
			continue
		}

		source := int(r.image[record+table.Species])
		candidates := make([]int, 0, len(r.pool))
		for _, id := range r.pool {
			if id != source {
				candidates = append(candidates, id)
			}
		}

		if r.cfg.EvolutionConsistency {
			candidates = r.atLeastBST(candidates, r.model.BST(source))
			if len(candidates) == 0 {
				skipped++
				continue
			}
		}

		target, err := r.pickOne(candidates)
		if err != nil {
			return err
		}
		r.image[targetPos] = byte(target)
		changed++
	}

	r.logger.Debug("Randomized evolutions",
		log.Int("changed", changed),
		log.Int("skipped", skipped))
	return nil
}

// atLeastBST returns the candidates with a base stat total of at least bst.
func (r *Randomizer) atLeastBST(candidates []int, bst int) []int {
	var result []int
	for _, id := range candidates {
		if r.model.BST(id) >= bst {
			result = append(result, id)
		}
	}
	return result
}
