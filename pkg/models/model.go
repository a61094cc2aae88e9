package models

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/graph/simple"
)

// Model generates a random undirected graph. Generation is deterministic
// for a given parameter set and random source.
type Model interface {
	Name() string
	Generate(src rand.Source) (*simple.UndirectedGraph, error)
}

// NewSource returns the random source used for a model seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed)
}

// emptyGraph returns a graph holding nodes 0..n-1 and no edges.
func emptyGraph(n int) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := range n {
		g.AddNode(simple.Node(i))
	}
	return g
}

func setEdge(g *simple.UndirectedGraph, u, v int64) {
	g.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
}
