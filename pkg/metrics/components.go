package metrics

import (
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// LargestComponent returns a new graph induced by the largest connected
// component of g. Of equally sized components the one holding the smallest
// node ID wins.
func LargestComponent(g graph.Undirected) *simple.UndirectedGraph {
	sub := simple.NewUndirectedGraph()

	var (
		best    []graph.Node
		bestMin int64
	)
	for _, cc := range topo.ConnectedComponents(g) {
		lo := minID(cc)
		if len(cc) > len(best) || (len(cc) == len(best) && lo < bestMin) {
			best, bestMin = cc, lo
		}
	}

	ids := make([]int64, len(best))
	for i, n := range best {
		ids[i] = n.ID()
	}
	slices.Sort(ids)
	for _, id := range ids {
		sub.AddNode(simple.Node(id))
	}
	for _, id := range ids {
		to := g.From(id)
		for to.Next() {
			tid := to.Node().ID()
			if id < tid {
				sub.SetEdge(simple.Edge{F: simple.Node(id), T: simple.Node(tid)})
			}
		}
	}
	return sub
}

func minID(nodes []graph.Node) int64 {
	lo := nodes[0].ID()
	for _, n := range nodes[1:] {
		lo = min(lo, n.ID())
	}
	return lo
}
