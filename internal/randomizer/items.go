package randomizer

import (
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// randomizeItems replaces all shop item slots. Protected progression items
// keep their slot when safeguarding is enabled.
func (r *Randomizer) randomizeItems() error {
	table := r.gen.Shops
	records, err := table.Records(r.image)
	if err != nil {
		return err
	}

	progression := set.New[int]()
	for _, item := range r.gen.ProgressionItems {
		progression.Add(item)
	}
	safeguard := r.cfg.SafeguardProgression

	var kept int
	for _, record := range records {
		for _, field := range table.Fields {
			pos := record + field
			current := int(r.image[pos])
			if safeguard && progression.Contains(current) {
				kept++
				continue
			}
			r.image[pos] = byte(r.pickItem(current, safeguard, progression))
		}
	}

	r.logger.Debug("Randomized shops",
		log.Int("shops", len(records)),
		log.Int("protected", kept))
	return nil
}
