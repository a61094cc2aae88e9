package graphio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// EdgeListOptions controls how LoadEdgeList interprets its input.
type EdgeListOptions struct {
	Directed bool

	// CommentPrefix marks lines to skip. Empty disables comments.
	CommentPrefix string
}

// EdgeList is a graph read from a whitespace-delimited edge list.
// Graph is a *simple.WeightedDirectedGraph when Directed is set and a
// *simple.WeightedUndirectedGraph otherwise.
type EdgeList struct {
	Graph    graph.Graph
	Index    *NodeIndex
	Directed bool

	// Edges is the number of distinct edges in Graph.
	Edges int

	Lines      int
	Duplicates int
	SelfLoops  int
}

// Undirected returns the graph as undirected, symmetrizing directed input.
func (e *EdgeList) Undirected() graph.Undirected {
	if d, ok := e.Graph.(graph.Directed); ok && e.Directed {
		return Symmetrize(d)
	}
	return e.Graph.(graph.Undirected)
}

type weightedBuilder interface {
	graph.Graph
	AddNode(graph.Node)
	NewWeightedEdge(from, to graph.Node, weight float64) graph.WeightedEdge
	SetWeightedEdge(graph.WeightedEdge)
}

// LoadEdgeList reads "src dst [weight]" records, one per line.
func LoadEdgeList(path string, opts EdgeListOptions, logger zerolog.Logger) (*EdgeList, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open edge list: %w", err)
	}
	defer file.Close()

	var g weightedBuilder
	if opts.Directed {
		g = simple.NewWeightedDirectedGraph(0, 0)
	} else {
		g = simple.NewWeightedUndirectedGraph(0, 0)
	}
	list := &EdgeList{Graph: g, Index: NewNodeIndex(), Directed: opts.Directed}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if opts.CommentPrefix != "" && strings.HasPrefix(line, opts.CommentPrefix) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("%s:%d: %w: expected 2 or 3 fields, got %d",
				path, lineNum, ErrMalformedLine, len(fields))
		}
		weight := 1.0
		if len(fields) == 3 {
			weight, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w: weight %q", path, lineNum, ErrMalformedLine, fields[2])
			}
		}

		list.Lines++
		from := internNode(g, list.Index, fields[0])
		to := internNode(g, list.Index, fields[1])
		if from == to {
			list.SelfLoops++
			logger.Warn().
				Str("file", path).
				Int("line", lineNum).
				Str("node", fields[0]).
				Msg("Skipping self-loop")
			continue
		}
		if g.Edge(from, to) != nil {
			list.Duplicates++
		} else {
			list.Edges++
		}
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(from), simple.Node(to), weight))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if list.Edges == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyGraph)
	}

	logger.Debug().
		Str("file", path).
		Int("nodes", list.Index.Len()).
		Int("edges", list.Edges).
		Int("duplicates", list.Duplicates).
		Int("self_loops", list.SelfLoops).
		Bool("directed", opts.Directed).
		Msg("Loaded edge list")

	return list, nil
}

// internNode resolves label to an ID and makes sure the node exists in g.
func internNode(g interface {
	Node(int64) graph.Node
	AddNode(graph.Node)
}, index *NodeIndex, label string) int64 {
	id, _ := index.Intern(label)
	if g.Node(id) == nil {
		g.AddNode(simple.Node(id))
	}
	return id
}
