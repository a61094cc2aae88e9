package metrics

import (
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/network"
)

// Betweenness returns the normalized betweenness centrality of every node
// in g, zeros included. Exhaustive sampling delegates to gonum; otherwise
// shortest paths are accumulated from s.Size pivot sources and the result
// is extrapolated by n/s.Size. Scores are normalized by 1/((n-1)(n-2))
// when n > 2.
func Betweenness(g graph.Graph, s Sampling) map[int64]float64 {
	ids := SortedIDs(g)
	n := len(ids)

	scores := make(map[int64]float64, n)
	for _, id := range ids {
		scores[id] = 0
	}
	if n == 0 {
		return scores
	}

	var raw map[int64]float64
	scale := 1.0
	if s.Exhaustive(n) {
		raw = network.Betweenness(g)
	} else {
		pivots := s.Pick(ids)
		raw = pivotBetweenness(g, ids, pivots)
		scale = float64(n) / float64(len(pivots))
	}
	if n > 2 {
		scale /= float64(n-1) * float64(n-2)
	}

	for id, v := range raw {
		scores[id] = v * scale
	}
	return scores
}

// pivotBetweenness runs Brandes' dependency accumulation from each pivot
// only. ids must hold every node of g. Neighbours are visited in ascending
// ID order so a fixed pivot set always sums in the same order.
func pivotBetweenness(g graph.Graph, ids, pivots []int64) map[int64]float64 {
	n := len(ids)
	pos := make(map[int64]int, n)
	for i, id := range ids {
		pos[id] = i
	}
	adj := make([][]int, n)
	for i, id := range ids {
		to := g.From(id)
		adj[i] = make([]int, 0, to.Len())
		for to.Next() {
			adj[i] = append(adj[i], pos[to.Node().ID()])
		}
		slices.Sort(adj[i])
	}

	var (
		cb    = make([]float64, n)
		sigma = make([]float64, n)
		delta = make([]float64, n)
		dist  = make([]int, n)
		preds = make([][]int, n)
		stack = make([]int, 0, n)
		queue = make([]int, 0, n)
	)

	for _, pivot := range pivots {
		src := pos[pivot]
		for i := range n {
			sigma[i] = 0
			delta[i] = 0
			dist[i] = -1
			preds[i] = preds[i][:0]
		}
		sigma[src] = 1
		dist[src] = 0
		stack = stack[:0]
		queue = append(queue[:0], src)

		for head := 0; head < len(queue); head++ {
			v := queue[head]
			stack = append(stack, v)
			for _, w := range adj[v] {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					preds[w] = append(preds[w], v)
				}
			}
		}

		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range preds[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != src {
				cb[w] += delta[w]
			}
		}
	}

	raw := make(map[int64]float64, n)
	for i, v := range cb {
		if v != 0 {
			raw[ids[i]] = v
		}
	}
	return raw
}
