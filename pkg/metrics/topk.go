package metrics

import (
	"cmp"
	"slices"
)

// Ranked is a node and its score.
type Ranked struct {
	ID    int64
	Score float64
}

// TopK returns the k highest scores in descending order. Equal scores
// keep ascending ID order. k <= 0 or k > len(scores) returns all.
func TopK(scores map[int64]float64, k int) []Ranked {
	ranked := make([]Ranked, 0, len(scores))
	for id, s := range scores {
		ranked = append(ranked, Ranked{ID: id, Score: s})
	}

	slices.SortFunc(ranked, func(a, b Ranked) int {
		return cmp.Compare(a.ID, b.ID)
	})
	slices.SortStableFunc(ranked, func(a, b Ranked) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if k > 0 && k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}
