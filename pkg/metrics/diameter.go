package metrics

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/traverse"
)

// DefaultDiameterPairs is the pair count used when Sampling.Size is unset.
const DefaultDiameterPairs = 100

// EstimateDiameter returns the longest shortest path among randomly drawn
// pairs of distinct nodes. Pairs with no connecting path are skipped.
// Graphs with fewer than two nodes have diameter 0.
func EstimateDiameter(g graph.Undirected, s Sampling) int {
	ids := SortedIDs(g)
	n := len(ids)
	if n < 2 {
		return 0
	}

	pairs := s.Size
	if pairs <= 0 {
		pairs = DefaultDiameterPairs
	}

	rnd := s.Rand()
	diameter := 0
	for range pairs {
		i := rnd.IntN(n)
		j := rnd.IntN(n - 1)
		if j >= i {
			j++
		}
		if d, ok := hops(g, ids[i], ids[j]); ok {
			diameter = max(diameter, d)
		}
	}
	return diameter
}

// hops returns the BFS path length from src to dst.
func hops(g graph.Graph, src, dst int64) (int, bool) {
	var (
		bf    traverse.BreadthFirst
		depth = -1
	)
	bf.Walk(g, g.Node(src), func(n graph.Node, d int) bool {
		if n.ID() == dst {
			depth = d
			return true
		}
		return false
	})
	return depth, depth >= 0
}
