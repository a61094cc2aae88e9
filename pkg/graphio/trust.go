package graphio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/graph/simple"
)

const trustColumns = 4

// TrustNetwork is a directed trust-rating graph. Edge weights carry the
// trust value; rating timestamps are kept beside the graph.
type TrustNetwork struct {
	Graph      *simple.WeightedDirectedGraph
	Index      *NodeIndex
	Timestamps map[[2]int64]float64

	Records    int
	Duplicates int
	SelfLoops  int
}

// Edges returns the number of distinct directed edges.
func (t *TrustNetwork) Edges() int { return t.Graph.Edges().Len() }

// LoadTrustCSV reads a headerless CSV of source,trust,target,timestamp
// records into a directed graph.
func LoadTrustCSV(path string, logger zerolog.Logger) (*TrustNetwork, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trust network: %w", err)
	}
	defer file.Close()

	tn := &TrustNetwork{
		Graph:      simple.NewWeightedDirectedGraph(0, 0),
		Index:      NewNodeIndex(),
		Timestamps: make(map[[2]int64]float64),
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %v", path, ErrMalformedLine, err)
		}
		line, _ := reader.FieldPos(0)

		if len(record) != trustColumns {
			return nil, fmt.Errorf("%s:%d: %w: expected %d columns, got %d",
				path, line, ErrMalformedLine, trustColumns, len(record))
		}

		trust, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w: trust value %q", path, line, ErrMalformedLine, record[1])
		}
		stamp, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w: timestamp %q", path, line, ErrMalformedLine, record[3])
		}

		tn.Records++
		from := internNode(tn.Graph, tn.Index, strings.TrimSpace(record[0]))
		to := internNode(tn.Graph, tn.Index, strings.TrimSpace(record[2]))

		if from == to {
			tn.SelfLoops++
			logger.Warn().
				Str("file", path).
				Int("line", line).
				Str("node", record[0]).
				Msg("Skipping self-loop")
			continue
		}
		if tn.Graph.HasEdgeFromTo(from, to) {
			tn.Duplicates++
		}
		tn.Graph.SetWeightedEdge(tn.Graph.NewWeightedEdge(
			simple.Node(from), simple.Node(to), trust))
		tn.Timestamps[[2]int64{from, to}] = stamp
	}

	if tn.Graph.Edges().Len() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyGraph)
	}

	logger.Debug().
		Str("file", path).
		Int("records", tn.Records).
		Int("nodes", tn.Index.Len()).
		Int("duplicates", tn.Duplicates).
		Int("self_loops", tn.SelfLoops).
		Msg("Loaded trust network")

	return tn, nil
}
