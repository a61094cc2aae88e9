package metrics

import (
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/graph"
)

// Sampling selects which nodes a metric visits. A Size of zero or less
// means every node; otherwise Size distinct nodes are drawn uniformly
// from the node IDs in ascending order, so a fixed Seed always picks
// the same nodes.
type Sampling struct {
	Size int
	Seed uint64
}

// Exhaustive reports whether sampling n nodes visits all of them.
func (s Sampling) Exhaustive(n int) bool {
	return s.Size <= 0 || s.Size >= n
}

// Rand returns the generator backing this sampling strategy.
func (s Sampling) Rand() *rand.Rand {
	return rand.New(rand.NewPCG(s.Seed, s.Seed))
}

// Pick returns the sampled subset of ids, which must be sorted.
func (s Sampling) Pick(ids []int64) []int64 {
	if s.Exhaustive(len(ids)) {
		return ids
	}
	perm := s.Rand().Perm(len(ids))
	picked := make([]int64, s.Size)
	for i := range picked {
		picked[i] = ids[perm[i]]
	}
	return picked
}

// SortedIDs returns the IDs of every node in g in ascending order.
func SortedIDs(g graph.Graph) []int64 {
	nodes := g.Nodes()
	ids := make([]int64, 0, nodes.Len())
	for nodes.Next() {
		ids = append(ids, nodes.Node().ID())
	}
	slices.Sort(ids)
	return ids
}
