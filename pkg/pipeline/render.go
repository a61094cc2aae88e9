package pipeline

import (
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/graph"

	"github.com/gilchrisn/netsci-analysis/pkg/config"
	"github.com/gilchrisn/netsci-analysis/pkg/coordinates"
	"github.com/gilchrisn/netsci-analysis/pkg/report"
)

// renderGraph lays out g and writes it to the configured image path.
// scores may be nil.
func renderGraph(cfg *config.Config, logger zerolog.Logger, g graph.Graph, scores map[int64]float64) (string, error) {
	path := cfg.ImagePath()
	if path == "" {
		return "", fmt.Errorf("output.image_path is empty")
	}

	force := coordinates.NewForceCalculator().
		WithIterations(cfg.LayoutIterations()).
		WithRepulsion(cfg.LayoutRepulsion()).
		WithRate(cfg.LayoutRate()).
		WithTheta(cfg.LayoutTheta()).
		WithSeed(cfg.Seed())
	mdsc := coordinates.NewMDSCalculator().WithMaxDistance(cfg.LayoutMaxDistance())

	layout, err := coordinates.NewGenerator(force, mdsc, logger).Generate(g, cfg.LayoutAlgorithm())
	if err != nil {
		return "", err
	}

	r := report.NewRenderer(cfg.ImageWidthCM(), cfg.ImageHeightCM(), logger)
	if err := r.Render(path, g, layout, scores); err != nil {
		return "", err
	}
	return path, nil
}
