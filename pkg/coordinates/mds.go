package coordinates

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/traverse"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/mds"
)

// MDSCalculator computes 2D coordinates using Multidimensional Scaling
// over hop distances.
type MDSCalculator struct {
	maxDistance float64 // Distance assigned to unreachable pairs
}

// NewMDSCalculator creates a new MDS calculator
func NewMDSCalculator() *MDSCalculator {
	return &MDSCalculator{
		maxDistance: 10.0,
	}
}

// WithMaxDistance sets the distance used for unreachable pairs
func (mdsc *MDSCalculator) WithMaxDistance(maxDist float64) *MDSCalculator {
	mdsc.maxDistance = maxDist
	return mdsc
}

// Calculate computes 2D coordinates using classical MDS (Torgerson scaling)
func (mdsc *MDSCalculator) Calculate(g graph.Graph) (*Layout, error) {
	if g.Nodes().Len() == 0 {
		return nil, fmt.Errorf("graph has no nodes")
	}

	nodeList := make([]int64, 0, g.Nodes().Len())
	nodes := g.Nodes()
	for nodes.Next() {
		nodeList = append(nodeList, nodes.Node().ID())
	}
	slices.Sort(nodeList)

	if len(nodeList) == 1 {
		return NewLayout(map[int64]Position{nodeList[0]: {}}), nil
	}

	distMatrix := mdsc.distanceMatrix(g, nodeList)

	var coordinates mat.Dense
	k, _ := mds.TorgersonScaling(&coordinates, nil, distMatrix)
	if k == 0 {
		return nil, fmt.Errorf("no positive eigenvalues found in MDS")
	}
	_, cols := coordinates.Dims()

	coords := make(map[int64]Position, len(nodeList))
	for i, nodeID := range nodeList {
		var p Position
		p.X = coordinates.At(i, 0)
		if cols > 1 {
			p.Y = coordinates.At(i, 1)
		}
		coords[nodeID] = p
	}
	return NewLayout(coords), nil
}

// distanceMatrix computes hop distances between all node pairs. The
// matrix is symmetrized by taking the shorter direction.
func (mdsc *MDSCalculator) distanceMatrix(g graph.Graph, nodeList []int64) *mat.SymDense {
	n := len(nodeList)
	index := make(map[int64]int, n)
	for i, id := range nodeList {
		index[id] = i
	}

	dist := mat.NewDense(n, n, nil)
	for i, src := range nodeList {
		for j := range n {
			if i != j {
				dist.Set(i, j, mdsc.maxDistance)
			}
		}
		var bf traverse.BreadthFirst
		bf.Walk(g, g.Node(src), func(nd graph.Node, depth int) bool {
			dist.Set(i, index[nd.ID()], float64(depth))
			return false
		})
	}

	sym := mat.NewSymDense(n, nil)
	for i := range n {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, min(dist.At(i, j), dist.At(j, i)))
		}
	}
	return sym
}
