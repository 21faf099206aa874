// Package species models the type pair and base stats of every species
// during a randomization run.
package species

import (
	"slices"
	"strconv"

	"github.com/retroenv/gbrandomizer/internal/rng"
)

const (
	// StatCount is the number of base stats of a species.
	StatCount = 6

	baselineStatMin = 30
	baselineStatMax = 100
)

// Stats is the base stat vector of a species.
type Stats [StatCount]int

// Total returns the base stat total.
func (s Stats) Total() int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}

// Model answers type and stat queries. Values written by an earlier pass of
// the same run are installed as overrides and take precedence over the
// deterministic baseline derivation.
type Model struct {
	types []string

	typeOverrides map[int][]string
	statOverrides map[int]Stats
	baseline      map[int]Stats // cached baseline derivations
}

// New returns a model using the ordered list of type names.
func New(types []string) *Model {
	return &Model{
		types:         types,
		typeOverrides: make(map[int][]string),
		statOverrides: make(map[int]Stats),
		baseline:      make(map[int]Stats),
	}
}

// Types returns the ordered list of type names.
func (m *Model) Types() []string {
	return m.types
}

// TypesOf returns the one or two types of the species.
func (m *Model) TypesOf(id int) []string {
	if types, ok := m.typeOverrides[id]; ok {
		return types
	}

	n := len(m.types)
	if n == 0 {
		return nil
	}
	index := id - 1
	if index < 0 {
		index = 0
	}
	primary := m.types[index%n]
	secondary := m.types[(index/n)%n]
	return Pair(primary, secondary)
}

// BaseStatsOf returns the base stat vector of the species.
func (m *Model) BaseStatsOf(id int) Stats {
	if stats, ok := m.statOverrides[id]; ok {
		return stats
	}
	if stats, ok := m.baseline[id]; ok {
		return stats
	}

	// every species derives its stats from its own stream, independent of
	// the random source of the run.
	src := rng.New("species:" + strconv.Itoa(id))
	var stats Stats
	for i := range stats {
		stats[i] = src.IntRange(baselineStatMin, baselineStatMax)
	}
	m.baseline[id] = stats
	return stats
}

// BST returns the base stat total of the species.
func (m *Model) BST(id int) int {
	return m.BaseStatsOf(id).Total()
}

// SetTypesOverride installs the types of a species for the rest of the run.
func (m *Model) SetTypesOverride(id int, types []string) {
	m.typeOverrides[id] = slices.Clone(types)
}

// SetStatsOverride installs the base stats of a species for the rest of the run.
func (m *Model) SetStatsOverride(id int, stats Stats) {
	m.statOverrides[id] = stats
}

// HasType returns whether the species has the given type.
func (m *Model) HasType(id int, typeName string) bool {
	return slices.Contains(m.TypesOf(id), typeName)
}

// ByType returns the species of the pool that have the given type,
// preserving the pool order.
func (m *Model) ByType(typeName string, pool []int) []int {
	var result []int
	for _, id := range pool {
		if m.HasType(id, typeName) {
			result = append(result, id)
		}
	}
	return result
}

// Pair returns a type pair, collapsed to a single type if both are equal.
// An empty secondary type results in a single type.
func Pair(primary, secondary string) []string {
	if secondary == "" || primary == secondary {
		return []string{primary}
	}
	return []string{primary, secondary}
}
