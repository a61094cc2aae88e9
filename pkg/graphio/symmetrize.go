package graphio

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Symmetrize returns a new undirected graph with an edge between every
// pair connected in either direction. Reciprocal edges collapse into one.
func Symmetrize(g graph.Directed) *simple.UndirectedGraph {
	u := simple.NewUndirectedGraph()
	nodes := g.Nodes()
	for nodes.Next() {
		u.AddNode(simple.Node(nodes.Node().ID()))
	}

	nodes.Reset()
	for nodes.Next() {
		from := nodes.Node().ID()
		to := g.From(from)
		for to.Next() {
			tid := to.Node().ID()
			if tid == from || u.HasEdgeBetween(from, tid) {
				continue
			}
			u.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(tid)})
		}
	}
	return u
}
