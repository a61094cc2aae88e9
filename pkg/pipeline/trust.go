package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/gilchrisn/netsci-analysis/pkg/config"
	"github.com/gilchrisn/netsci-analysis/pkg/graphio"
	"github.com/gilchrisn/netsci-analysis/pkg/metrics"
	"github.com/gilchrisn/netsci-analysis/pkg/report"
)

// TrustReport contains the trust network analysis output
type TrustReport struct {
	Nodes      int
	Edges      int
	Degrees    metrics.DegreeSummary
	Clustering float64
	ImagePath  string // empty when rendering is disabled
	Runtime    time.Duration
}

// RunTrust loads the trust CSV named by input.path, prints its degree and
// clustering summary to w and renders the network.
func RunTrust(ctx context.Context, cfg *config.Config, logger zerolog.Logger, w io.Writer) (*TrustReport, error) {
	start := time.Now()

	tn, err := graphio.LoadTrustCSV(cfg.InputPath(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load trust network: %w", err)
	}
	res := &TrustReport{Nodes: tn.Index.Len(), Edges: tn.Edges()}

	logger.Info().
		Str("path", cfg.InputPath()).
		Str("nodes", humanize.Comma(int64(res.Nodes))).
		Str("edges", humanize.Comma(int64(res.Edges))).
		Msg("Loaded trust network")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res.Degrees, err = metrics.SummarizeDegrees(tn.Graph)
	if err != nil {
		return nil, fmt.Errorf("degree summary failed: %w", err)
	}

	undirected := graphio.Symmetrize(tn.Graph)
	res.Clustering, err = metrics.AverageClustering(undirected, metrics.Sampling{
		Size: cfg.ClusteringSamples(),
		Seed: cfg.Seed(),
	})
	if err != nil {
		return nil, fmt.Errorf("clustering failed: %w", err)
	}

	if err := report.WriteTrustSummary(w, res.Degrees, res.Clustering); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if cfg.Render() {
		res.ImagePath, err = renderGraph(cfg, logger, undirected, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to render trust network: %w", err)
		}
		if _, err := fmt.Fprintf(w, "\nVisualization has been saved as '%s'\n", res.ImagePath); err != nil {
			return nil, err
		}
	}

	res.Runtime = time.Since(start)
	logger.Info().Dur("runtime", res.Runtime).Msg("Trust analysis complete")
	return res, nil
}
