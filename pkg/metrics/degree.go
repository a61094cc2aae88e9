package metrics

import (
	"fmt"

	"github.com/gilchrisn/netsci-analysis/pkg/graphio"
	"gonum.org/v1/gonum/graph"
)

// DegreeSummary holds the degree extremes of a directed graph.
type DegreeSummary struct {
	MaxUndirected int
	MaxIn         int
	MaxOut        int
}

// Degrees returns the number of neighbours of every node.
func Degrees(g graph.Undirected) map[int64]int {
	return countBy(g, g.From)
}

// InDegrees returns the number of predecessors of every node.
func InDegrees(g graph.Directed) map[int64]int {
	return countBy(g, g.To)
}

// OutDegrees returns the number of successors of every node.
func OutDegrees(g graph.Directed) map[int64]int {
	return countBy(g, g.From)
}

func countBy(g graph.Graph, adj func(int64) graph.Nodes) map[int64]int {
	nodes := g.Nodes()
	deg := make(map[int64]int, nodes.Len())
	for nodes.Next() {
		id := nodes.Node().ID()
		deg[id] = adj(id).Len()
	}
	return deg
}

// MaxDegree returns the largest value in deg.
func MaxDegree(deg map[int64]int) (int, error) {
	if len(deg) == 0 {
		return 0, graphio.ErrEmptyGraph
	}
	best := 0
	for _, d := range deg {
		best = max(best, d)
	}
	return best, nil
}

// SummarizeDegrees computes the in, out and symmetrized degree maxima of g.
func SummarizeDegrees(g graph.Directed) (DegreeSummary, error) {
	var s DegreeSummary
	var err error

	if s.MaxIn, err = MaxDegree(InDegrees(g)); err != nil {
		return s, fmt.Errorf("in-degree: %w", err)
	}
	if s.MaxOut, err = MaxDegree(OutDegrees(g)); err != nil {
		return s, fmt.Errorf("out-degree: %w", err)
	}
	if s.MaxUndirected, err = MaxDegree(Degrees(graphio.Symmetrize(g))); err != nil {
		return s, fmt.Errorf("undirected degree: %w", err)
	}
	return s, nil
}
