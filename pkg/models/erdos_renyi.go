package models

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/graph/graphs/gen"
	"gonum.org/v1/gonum/graph/simple"
)

// DefaultEdgeProbability is the G(n, p) probability.
const DefaultEdgeProbability = 0.5

// ErdosRenyi is the G(n, p) model: every pair of the N nodes is joined
// independently with probability P.
type ErdosRenyi struct {
	N int
	P float64
}

func (m ErdosRenyi) Name() string { return "ER Model" }

func (m ErdosRenyi) Generate(src rand.Source) (*simple.UndirectedGraph, error) {
	if m.N < 0 {
		return nil, fmt.Errorf("erdos-renyi: negative order %d", m.N)
	}
	g := simple.NewUndirectedGraph()
	if err := gen.Gnp(g, m.N, m.P, src); err != nil {
		return nil, fmt.Errorf("erdos-renyi: %w", err)
	}
	return g, nil
}
