package engine

import (
	"sort"

	"github.com/alexanderramin/lessonsmith/internal/app"
	"github.com/alexanderramin/lessonsmith/internal/domain"
)

// CanonicalSort orders candidates deterministically:
// 1. Score: higher first
// 2. Duplicate penalty: lower first
// 3. Duration: shorter first
// 4. Title: lexical ascending
func CanonicalSort(candidates []*domain.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.DuplicatePenalty != b.DuplicatePenalty {
			return a.DuplicatePenalty < b.DuplicatePenalty
		}
		if a.EstimatedDurationMin != b.EstimatedDurationMin {
			return a.EstimatedDurationMin < b.EstimatedDurationMin
		}
		return a.Title < b.Title
	})
}

// topFailures returns the n most frequent failure reasons, ties broken by
// reason text.
func topFailures(counts map[string]int, n int) []app.FailureCount {
	out := make([]app.FailureCount, 0, len(counts))
	for reason, count := range counts {
		out = append(out, app.FailureCount{Reason: reason, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Reason < out[j].Reason
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
