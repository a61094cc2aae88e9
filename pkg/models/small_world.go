package models

import (
	"fmt"
	"math/bits"
	"math/rand/v2"

	"gonum.org/v1/gonum/graph/graphs/gen"
	"gonum.org/v1/gonum/graph/simple"
)

// DefaultRewireProbability is the rewiring probability.
const DefaultRewireProbability = 0.1

// Small world construction algorithms.
const (
	AlgorithmWattsStrogatz   = "watts-strogatz"
	AlgorithmBatageljBrandes = "batagelj-brandes"
)

// WattsStrogatz is a ring lattice where every node is joined to its K/2
// nearest neighbours on each side, after which each lattice edge is
// rewired with probability P.
type WattsStrogatz struct {
	N int
	K int
	P float64

	// Algorithm selects the construction. Empty means AlgorithmWattsStrogatz.
	Algorithm string
}

// NewWattsStrogatz uses a lattice degree of max(2, floor(log2 n)).
func NewWattsStrogatz(n int, p float64) WattsStrogatz {
	return WattsStrogatz{N: n, K: latticeDegree(n), P: p}
}

func latticeDegree(n int) int {
	if n < 1 {
		return 2
	}
	return max(2, bits.Len(uint(n))-1)
}

func (m WattsStrogatz) Name() string { return "Small world Model" }

func (m WattsStrogatz) Generate(src rand.Source) (*simple.UndirectedGraph, error) {
	switch m.Algorithm {
	case "", AlgorithmWattsStrogatz:
		return m.rewire(src)
	case AlgorithmBatageljBrandes:
		g := simple.NewUndirectedGraph()
		if err := gen.SmallWorldsBB(g, m.N, m.K/2, m.P, src); err != nil {
			return nil, fmt.Errorf("small world: %w", err)
		}
		return g, nil
	default:
		return nil, fmt.Errorf("small world: unknown algorithm %q", m.Algorithm)
	}
}

func (m WattsStrogatz) rewire(src rand.Source) (*simple.UndirectedGraph, error) {
	n, k := m.N, m.K
	if k > n {
		return nil, fmt.Errorf("watts-strogatz: k=%d exceeds n=%d", k, n)
	}
	if m.P < 0 || m.P > 1 {
		return nil, fmt.Errorf("watts-strogatz: bad probability p=%v", m.P)
	}

	g := emptyGraph(n)
	if k == n {
		for u := range n {
			for v := u + 1; v < n; v++ {
				setEdge(g, int64(u), int64(v))
			}
		}
		return g, nil
	}

	for j := 1; j <= k/2; j++ {
		for u := range n {
			setEdge(g, int64(u), int64((u+j)%n))
		}
	}

	rnd := rand.New(src)
	for j := 1; j <= k/2; j++ {
		for u := range n {
			if rnd.Float64() >= m.P {
				continue
			}
			uid, vid := int64(u), int64((u+j)%n)
			if g.From(uid).Len() >= n-1 {
				continue
			}
			w := int64(rnd.IntN(n))
			for w == uid || g.HasEdgeBetween(uid, w) {
				w = int64(rnd.IntN(n))
			}
			g.RemoveEdge(uid, vid)
			setEdge(g, uid, w)
		}
	}
	return g, nil
}
