package metrics

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/gilchrisn/netsci-analysis/pkg/graphio"
)

// PageRank computes PageRank scores for g. Undirected graphs are walked
// as if every edge were a reciprocal pair of directed edges.
func PageRank(g graph.Graph, damping, tolerance float64) (map[int64]float64, error) {
	if g.Nodes().Len() == 0 {
		return nil, graphio.ErrEmptyGraph
	}

	directed, ok := g.(graph.Directed)
	if !ok {
		directed = reciprocal(g)
	}
	return network.PageRank(directed, damping, tolerance), nil
}

// reciprocal converts an undirected graph to directed by adding both edge
// directions.
func reciprocal(g graph.Graph) *simple.DirectedGraph {
	directed := simple.NewDirectedGraph()

	nodes := g.Nodes()
	for nodes.Next() {
		directed.AddNode(simple.Node(nodes.Node().ID()))
	}

	nodes.Reset()
	for nodes.Next() {
		from := nodes.Node().ID()
		to := g.From(from)
		for to.Next() {
			directed.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to.Node().ID())})
		}
	}
	return directed
}
