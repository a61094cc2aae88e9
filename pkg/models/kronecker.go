package models

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// DefaultInitiator is the 2x2 initiator.
var DefaultInitiator = [][]float64{{0.9, 0.5}, {0.5, 0.3}}

// Kronecker is the stochastic Kronecker model. For an initiator of order b
// the graph has b^k nodes with k = floor(log_b N). Nodes i < j are joined
// with probability equal to the product, over the k base-b digit positions,
// of Initiator[digit of i][digit of j].
type Kronecker struct {
	N         int
	Initiator *mat.Dense
}

// NewKronecker builds a Kronecker model from initiator rows.
func NewKronecker(n int, rows [][]float64) (Kronecker, error) {
	if len(rows) == 0 {
		return Kronecker{}, fmt.Errorf("kronecker: empty initiator")
	}
	b := len(rows)
	data := make([]float64, 0, b*b)
	for i, row := range rows {
		if len(row) != b {
			return Kronecker{}, fmt.Errorf("kronecker: initiator row %d has %d entries, want %d", i, len(row), b)
		}
		data = append(data, row...)
	}
	m := Kronecker{N: n, Initiator: mat.NewDense(b, b, data)}
	return m, m.validate()
}

func (m Kronecker) Name() string { return "Kronecker Model" }

func (m Kronecker) validate() error {
	if m.Initiator == nil {
		return fmt.Errorf("kronecker: missing initiator")
	}
	r, c := m.Initiator.Dims()
	if r != c {
		return fmt.Errorf("kronecker: initiator is %dx%d, want square", r, c)
	}
	if r < 2 {
		return fmt.Errorf("kronecker: initiator order %d, want at least 2", r)
	}
	for i := range r {
		for j := range c {
			if v := m.Initiator.At(i, j); v < 0 || v > 1 {
				return fmt.Errorf("kronecker: initiator entry (%d,%d)=%v outside [0, 1]", i, j, v)
			}
		}
	}
	return nil
}

// Power returns k, the number of Kronecker products taken. An order below
// b gives k = 0, a single node.
func (m Kronecker) Power() int {
	b, _ := m.Initiator.Dims()
	k := 0
	for size := b; size <= m.N; size *= b {
		k++
	}
	return k
}

func (m Kronecker) Generate(src rand.Source) (*simple.UndirectedGraph, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	if m.N < 0 {
		return nil, fmt.Errorf("kronecker: negative order %d", m.N)
	}
	if m.N == 0 {
		return emptyGraph(0), nil
	}

	b, _ := m.Initiator.Dims()
	k := m.Power()
	n := 1
	for range k {
		n *= b
	}

	digits := make([][]int, n)
	for i := range digits {
		digits[i] = make([]int, k)
		for t, v := 0, i; t < k; t++ {
			digits[i][t] = v % b
			v /= b
		}
	}

	g := emptyGraph(n)
	rnd := rand.New(src)
	for i := range n {
		for j := i + 1; j < n; j++ {
			p := 1.0
			for t := range k {
				p *= m.Initiator.At(digits[i][t], digits[j][t])
			}
			if rnd.Float64() < p {
				setEdge(g, int64(i), int64(j))
			}
		}
	}
	return g, nil
}
