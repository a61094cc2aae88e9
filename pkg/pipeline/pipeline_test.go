package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gilchrisn/netsci-analysis/pkg/config"
	"github.com/gilchrisn/netsci-analysis/pkg/graphio"
	"github.com/gilchrisn/netsci-analysis/pkg/metrics"
)

func testConfig(t *testing.T, input string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(input), 0o644))

	cfg := config.NewConfig("test")
	cfg.Set("logging.level", "error")
	cfg.Set("input.path", path)
	cfg.Set("output.image_path", filepath.Join(dir, "out.png"))
	cfg.Set("output.width_cm", 8.0)
	cfg.Set("output.height_cm", 6.0)
	return cfg
}

func TestRunTrustToy(t *testing.T) {
	cfg := testConfig(t, "A,1,B,100\nB,1,C,101\nC,1,A,102\nA,1,C,103\n")

	var out bytes.Buffer
	res, err := RunTrust(context.Background(), cfg, zerolog.Nop(), &out)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Nodes)
	assert.Equal(t, 4, res.Edges)
	assert.Equal(t, metrics.DegreeSummary{MaxUndirected: 2, MaxIn: 2, MaxOut: 2}, res.Degrees)
	assert.Equal(t, 1.0, res.Clustering)

	assert.Contains(t, out.String(), "Average clustering coefficient: 1.0000")
	assert.Contains(t, out.String(), "Visualization has been saved")
	assert.FileExists(t, res.ImagePath)
}

func TestRunTrustLogsToGivenLogger(t *testing.T) {
	cfg := testConfig(t, "A,1,B,100\nB,1,C,101\n")
	cfg.Set("output.render", false)
	logFile := filepath.Join(t.TempDir(), "trust.log")
	cfg.Set("logging.file", logFile)

	var logs bytes.Buffer
	_, err := RunTrust(context.Background(), cfg, zerolog.New(&logs), &bytes.Buffer{})
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "Loaded trust network")
	assert.Contains(t, logs.String(), "Trust analysis complete")
	assert.NoFileExists(t, logFile, "only the caller's logger is written to")
}

func TestRunTrustNoRender(t *testing.T) {
	cfg := testConfig(t, "A,1,B,100\n")
	cfg.Set("output.render", false)

	var out bytes.Buffer
	res, err := RunTrust(context.Background(), cfg, zerolog.Nop(), &out)
	require.NoError(t, err)
	assert.Empty(t, res.ImagePath)
	assert.NotContains(t, out.String(), "Visualization")
}

// failingWriter accepts ok writes and fails every later one.
type failingWriter struct {
	ok int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.ok == 0 {
		return 0, errors.New("write refused")
	}
	w.ok--
	return len(p), nil
}

func TestRunTrustSaveNoticeWriteError(t *testing.T) {
	cfg := testConfig(t, "A,1,B,100\nB,1,C,101\n")

	_, err := RunTrust(context.Background(), cfg, zerolog.Nop(), &failingWriter{ok: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write refused")
}

func TestRunTrustEmpty(t *testing.T) {
	cfg := testConfig(t, "")

	_, err := RunTrust(context.Background(), cfg, zerolog.Nop(), &bytes.Buffer{})
	assert.ErrorIs(t, err, graphio.ErrEmptyGraph)
	assert.Contains(t, err.Error(), "empty graph")
}

func TestRunTrustCancelled(t *testing.T) {
	cfg := testConfig(t, "A,1,B,100\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunTrust(ctx, cfg, zerolog.Nop(), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

const starEdges = "# hub and spokes\n10 11\n10 12\n10 13\n10 14\n13 14\n"

func TestRunCentrality(t *testing.T) {
	cfg := testConfig(t, starEdges)
	cfg.Set("input.comment_prefix", "#")
	cfg.Set("betweenness.top_k", 2)

	var out bytes.Buffer
	res, err := RunCentrality(context.Background(), cfg, zerolog.Nop(), &out)
	require.NoError(t, err)

	assert.Equal(t, 5, res.Nodes)
	assert.Equal(t, 5, res.Edges)
	require.Len(t, res.Top, 2)
	assert.Equal(t, "10", res.Labels.Label(res.Top[0].ID))
	assert.FileExists(t, res.ImagePath)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Top 2 Nodes by Betweenness Centrality:", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Node 10: "))
}

func TestRunCentralityPageRank(t *testing.T) {
	cfg := testConfig(t, starEdges)
	cfg.Set("input.comment_prefix", "#")
	cfg.Set("centrality.measure", MeasurePageRank)
	cfg.Set("output.render", false)
	cfg.Set("layout.algorithm", "mds")

	var out bytes.Buffer
	res, err := RunCentrality(context.Background(), cfg, zerolog.Nop(), &out)
	require.NoError(t, err)
	assert.Equal(t, "10", res.Labels.Label(res.Top[0].ID))
	assert.Contains(t, out.String(), "Top 5 Nodes by PageRank:")
}

func TestRunCentralityErrors(t *testing.T) {
	cfg := testConfig(t, starEdges)
	_, err := RunCentrality(context.Background(), cfg, zerolog.Nop(), &bytes.Buffer{})
	assert.ErrorIs(t, err, graphio.ErrMalformedLine, "comments disabled by default")

	cfg = testConfig(t, starEdges)
	cfg.Set("centrality.measure", "closeness")
	_, err = RunCentrality(context.Background(), cfg, zerolog.Nop(), &bytes.Buffer{})
	assert.Error(t, err)

	cfg = testConfig(t, "")
	cfg.Set("input.path", filepath.Join(t.TempDir(), "missing.txt"))
	_, err = RunCentrality(context.Background(), cfg, zerolog.Nop(), &bytes.Buffer{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunModels(t *testing.T) {
	cfg := config.NewConfig("test")
	cfg.Set("logging.level", "error")
	cfg.Set("models.vertices", 64)
	cfg.Set("models.seed", 42)

	var out bytes.Buffer
	results, err := RunModels(context.Background(), cfg, zerolog.Nop(), &out)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, 64, results[0].Nodes)
	assert.Equal(t, 64, results[1].Nodes)
	assert.Equal(t, 64, results[2].Nodes)

	table := out.String()
	assert.Contains(t, table, "ER Model")
	assert.Contains(t, table, "Small world Model")
	assert.Contains(t, table, "Kronecker Model")

	again, err := RunModels(context.Background(), cfg, zerolog.Nop(), &bytes.Buffer{})
	require.NoError(t, err)
	for i := range results {
		assert.Equal(t, results[i].Edges, again[i].Edges, "seeded runs repeat")
		assert.Equal(t, results[i].Diameter, again[i].Diameter)
	}
}

func TestRunModelsBadInitiator(t *testing.T) {
	cfg := config.NewConfig("test")
	cfg.Set("logging.level", "error")
	cfg.Set("models.vertices", 16)
	cfg.Set("models.initiator", [][]float64{{0.9, 2}, {0.5, 0.3}})

	_, err := RunModels(context.Background(), cfg, zerolog.Nop(), &bytes.Buffer{})
	assert.Error(t, err)
}
