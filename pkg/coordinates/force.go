package coordinates

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/layout"
)

// ForceCalculator computes a force-directed layout with the Eades spring
// embedder.
type ForceCalculator struct {
	iterations int
	repulsion  float64
	rate       float64
	theta      float64
	seed       uint64
}

// NewForceCalculator creates a new force-directed layout calculator
func NewForceCalculator() *ForceCalculator {
	return &ForceCalculator{
		iterations: 50,
		repulsion:  1,
		rate:       0.05,
		theta:      0.2,
		seed:       42,
	}
}

// WithIterations sets the number of layout updates (default: 50)
func (fc *ForceCalculator) WithIterations(n int) *ForceCalculator {
	fc.iterations = n
	return fc
}

// WithRepulsion sets the global repulsion strength (default: 1)
func (fc *ForceCalculator) WithRepulsion(r float64) *ForceCalculator {
	fc.repulsion = r
	return fc
}

// WithRate sets the gradient descent rate (default: 0.05)
func (fc *ForceCalculator) WithRate(rate float64) *ForceCalculator {
	fc.rate = rate
	return fc
}

// WithTheta sets the Barnes-Hut approximation constant (default: 0.2)
func (fc *ForceCalculator) WithTheta(theta float64) *ForceCalculator {
	fc.theta = theta
	return fc
}

// WithSeed sets the seed of the initial placement
func (fc *ForceCalculator) WithSeed(seed uint64) *ForceCalculator {
	fc.seed = seed
	return fc
}

// Calculate lays out g. Initial positions are drawn in ascending node ID
// order so the result only depends on the graph and the seed.
func (fc *ForceCalculator) Calculate(g graph.Graph) (*Layout, error) {
	if g.Nodes().Len() == 0 {
		return nil, fmt.Errorf("graph has no nodes")
	}

	eades := layout.EadesR2{
		Updates:   fc.iterations,
		Repulsion: fc.repulsion,
		Rate:      fc.rate,
		Theta:     fc.theta,
		Src:       rand.NewPCG(fc.seed, fc.seed),
	}
	ordered := orderedGraph{Graph: g}
	o := layout.NewOptimizerR2(ordered, eades.Update)
	for o.Update() {
	}

	coords := make(map[int64]Position, g.Nodes().Len())
	nodes := ordered.Nodes()
	for nodes.Next() {
		id := nodes.Node().ID()
		v := o.Coord2(id)
		coords[id] = Position{X: v.X, Y: v.Y}
	}
	return NewLayout(coords), nil
}

// orderedGraph presents the nodes of the wrapped graph in ID order.
type orderedGraph struct {
	graph.Graph
}

func (g orderedGraph) Nodes() graph.Nodes {
	nodes := graph.NodesOf(g.Graph.Nodes())
	slices.SortFunc(nodes, func(a, b graph.Node) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return iterator.NewOrderedNodes(nodes)
}
