package metrics

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/stat"

	"github.com/gilchrisn/netsci-analysis/pkg/graphio"
)

// LocalClustering returns the fraction of pairs of neighbours of id that
// are themselves adjacent. Nodes with fewer than two neighbours score 0.
func LocalClustering(g graph.Undirected, id int64) float64 {
	nbrs := graph.NodesOf(g.From(id))
	k := len(nbrs)
	if k < 2 {
		return 0
	}

	links := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if g.HasEdgeBetween(nbrs[i].ID(), nbrs[j].ID()) {
				links++
			}
		}
	}
	return 2 * float64(links) / float64(k*(k-1))
}

// AverageClustering returns the mean local clustering coefficient over
// the nodes chosen by s.
func AverageClustering(g graph.Undirected, s Sampling) (float64, error) {
	ids := SortedIDs(g)
	if len(ids) == 0 {
		return 0, graphio.ErrEmptyGraph
	}

	picked := s.Pick(ids)
	values := make([]float64, len(picked))
	for i, id := range picked {
		values[i] = LocalClustering(g, id)
	}
	return stat.Mean(values, nil), nil
}
