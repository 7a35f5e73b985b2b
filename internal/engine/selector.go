package engine

import (
	"math/rand"

	"github.com/alexanderramin/lessonsmith/internal/domain"
)

// SelectModifiers draws between 1 and maxCount modifiers from pool. The
// first pass takes at most one modifier per type, visiting types in random
// order; a second pass over the shuffled pool fills any remaining places.
// A modifier is never combined with one that lists it, or that it lists, in
// IncompatibleWith. It returns nil when the pool is empty or maxCount <= 0.
func SelectModifiers(pool []domain.Modifier, maxCount int, rng *rand.Rand) []domain.Modifier {
	if len(pool) == 0 || maxCount <= 0 {
		return nil
	}
	target := 1 + rng.Intn(maxCount)

	var types []string
	byType := make(map[string][]domain.Modifier)
	for _, m := range pool {
		if _, ok := byType[m.Type]; !ok {
			types = append(types, m.Type)
		}
		byType[m.Type] = append(byType[m.Type], m)
	}
	rng.Shuffle(len(types), func(i, j int) { types[i], types[j] = types[j], types[i] })

	var selected []domain.Modifier
	chosen := make(map[string]bool)
	excluded := make(map[string]bool)

	allowed := func(m domain.Modifier) bool {
		if chosen[m.ID] || excluded[m.ID] {
			return false
		}
		for _, id := range m.IncompatibleWith {
			if chosen[id] {
				return false
			}
		}
		return true
	}
	take := func(m domain.Modifier) {
		selected = append(selected, m)
		chosen[m.ID] = true
		for _, id := range m.IncompatibleWith {
			excluded[id] = true
		}
	}

	// First pass: type diversity.
	for _, t := range types {
		if len(selected) >= target {
			break
		}
		var options []domain.Modifier
		for _, m := range byType[t] {
			if allowed(m) {
				options = append(options, m)
			}
		}
		if len(options) == 0 {
			continue
		}
		take(options[rng.Intn(len(options))])
	}

	// Second pass: fill from the whole pool.
	if len(selected) < target {
		rest := append([]domain.Modifier(nil), pool...)
		rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
		for _, m := range rest {
			if len(selected) >= target {
				break
			}
			if allowed(m) {
				take(m)
			}
		}
	}

	return selected
}
