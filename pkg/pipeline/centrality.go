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

// Centrality measures
const (
	MeasureBetweenness = "betweenness"
	MeasurePageRank    = "pagerank"
)

var measureTitles = map[string]string{
	MeasureBetweenness: "Betweenness Centrality",
	MeasurePageRank:    "PageRank",
}

// CentralityReport contains the centrality analysis output
type CentralityReport struct {
	Nodes     int
	Edges     int
	Measure   string
	Scores    map[int64]float64
	Top       []metrics.Ranked
	Labels    *graphio.NodeIndex
	ImagePath string // empty when rendering is disabled
	Runtime   time.Duration
}

// RunCentrality loads the edge list named by input.path, scores every node
// with the configured centrality measure, prints the top nodes to w and
// renders the graph with node size and colour encoding the score.
func RunCentrality(ctx context.Context, cfg *config.Config, logger zerolog.Logger, w io.Writer) (*CentralityReport, error) {
	start := time.Now()

	measure := cfg.CentralityMeasure()
	title, ok := measureTitles[measure]
	if !ok {
		return nil, fmt.Errorf("unknown centrality measure %q", measure)
	}

	list, err := graphio.LoadEdgeList(cfg.InputPath(), graphio.EdgeListOptions{
		Directed:      cfg.Directed(),
		CommentPrefix: cfg.CommentPrefix(),
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load edge list: %w", err)
	}
	res := &CentralityReport{
		Nodes:   list.Index.Len(),
		Edges:   list.Edges,
		Measure: measure,
		Labels:  list.Index,
	}

	logger.Info().
		Str("path", cfg.InputPath()).
		Str("nodes", humanize.Comma(int64(res.Nodes))).
		Str("edges", humanize.Comma(int64(res.Edges))).
		Bool("directed", list.Directed).
		Msg("Loaded edge list")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch measure {
	case MeasureBetweenness:
		sampling := metrics.Sampling{Size: cfg.BetweennessSamples(), Seed: cfg.Seed()}
		logger.Info().
			Bool("exact", sampling.Exhaustive(res.Nodes)).
			Int("samples", sampling.Size).
			Msg("Computing betweenness centrality")
		res.Scores = metrics.Betweenness(list.Graph, sampling)
	case MeasurePageRank:
		res.Scores, err = metrics.PageRank(list.Graph, cfg.Damping(), cfg.Tolerance())
		if err != nil {
			return nil, fmt.Errorf("pagerank failed: %w", err)
		}
	}

	res.Top = metrics.TopK(res.Scores, cfg.TopK())
	if err := report.WriteTopK(w, title, res.Top, list.Index.Label, cfg.Precision()); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if cfg.Render() {
		res.ImagePath, err = renderGraph(cfg, logger, list.Graph, res.Scores)
		if err != nil {
			return nil, fmt.Errorf("failed to render centrality: %w", err)
		}
	}

	res.Runtime = time.Since(start)
	logger.Info().Dur("runtime", res.Runtime).Msg("Centrality analysis complete")
	return res, nil
}
