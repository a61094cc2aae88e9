package coordinates

import (
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/graph"
)

// Layout algorithms
const (
	AlgorithmEades = "eades"
	AlgorithmMDS   = "mds"
)

// Generator orchestrates coordinate generation for rendering.
type Generator struct {
	forceCalc *ForceCalculator
	mdsCalc   *MDSCalculator
	logger    zerolog.Logger
}

// NewGenerator creates a new coordinate generator
func NewGenerator(force *ForceCalculator, mdsc *MDSCalculator, logger zerolog.Logger) *Generator {
	if force == nil {
		force = NewForceCalculator()
	}
	if mdsc == nil {
		mdsc = NewMDSCalculator()
	}
	return &Generator{forceCalc: force, mdsCalc: mdsc, logger: logger}
}

// Generate lays out g with the named algorithm. An empty name selects eades.
func (gen *Generator) Generate(g graph.Graph, algorithm string) (*Layout, error) {
	gen.logger.Debug().
		Str("algorithm", algorithm).
		Int("nodes", g.Nodes().Len()).
		Msg("Computing layout")

	var (
		l   *Layout
		err error
	)
	switch algorithm {
	case "", AlgorithmEades:
		l, err = gen.forceCalc.Calculate(g)
	case AlgorithmMDS:
		l, err = gen.mdsCalc.Calculate(g)
	default:
		return nil, fmt.Errorf("unknown layout algorithm %q", algorithm)
	}
	if err != nil {
		return nil, fmt.Errorf("%s layout failed: %w", algorithm, err)
	}

	gen.logger.Debug().
		Int("coordinates_generated", l.Len()).
		Msg("Layout complete")
	return l, nil
}
