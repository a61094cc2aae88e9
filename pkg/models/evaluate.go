package models

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gilchrisn/netsci-analysis/pkg/metrics"
)

// Default sample sizes for model evaluation.
const (
	DefaultDiameterSamples   = 100
	DefaultClusteringSamples = 1000
)

// Result summarizes one generated graph.
type Result struct {
	Model      string
	Nodes      int
	Edges      int
	LCCNodes   int
	Diameter   int
	Clustering float64
	Elapsed    time.Duration
}

// Evaluator generates model graphs and measures them over their largest
// connected component.
type Evaluator struct {
	DiameterSamples   int
	ClusteringSamples int

	logger zerolog.Logger
}

func NewEvaluator(logger zerolog.Logger) *Evaluator {
	return &Evaluator{
		DiameterSamples:   DefaultDiameterSamples,
		ClusteringSamples: DefaultClusteringSamples,
		logger:            logger,
	}
}

// Evaluate generates a graph from m seeded with seed. Elapsed covers
// generation only.
func (e *Evaluator) Evaluate(ctx context.Context, m Model, seed uint64) (Result, error) {
	res := Result{Model: m.Name()}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	start := time.Now()
	g, err := m.Generate(NewSource(seed))
	res.Elapsed = time.Since(start)
	if err != nil {
		return res, fmt.Errorf("failed to generate %s graph: %w", m.Name(), err)
	}
	res.Nodes = g.Nodes().Len()
	res.Edges = g.Edges().Len()

	lcc := metrics.LargestComponent(g)
	res.LCCNodes = lcc.Nodes().Len()
	res.Diameter = metrics.EstimateDiameter(lcc, metrics.Sampling{Size: e.DiameterSamples, Seed: seed})

	if res.LCCNodes > 0 {
		res.Clustering, err = metrics.AverageClustering(lcc, metrics.Sampling{Size: e.ClusteringSamples, Seed: seed})
		if err != nil {
			return res, fmt.Errorf("clustering of %s graph: %w", m.Name(), err)
		}
	}

	e.logger.Info().
		Str("model", res.Model).
		Int("nodes", res.Nodes).
		Int("edges", res.Edges).
		Int("lcc_nodes", res.LCCNodes).
		Int("diameter", res.Diameter).
		Float64("clustering", res.Clustering).
		Dur("elapsed", res.Elapsed).
		Msg("Evaluated model")

	return res, nil
}

// EvaluateAll evaluates every model in order, stopping at the first error
// or when ctx is cancelled.
func (e *Evaluator) EvaluateAll(ctx context.Context, ms []Model, seed uint64) ([]Result, error) {
	results := make([]Result, 0, len(ms))
	for _, m := range ms {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		res, err := e.Evaluate(ctx, m, seed)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
