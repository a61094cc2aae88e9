package graphio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// edgeCount returns the number of edges of g through its Edges iterator.
func edgeCount(t *testing.T, g graph.Graph) int {
	t.Helper()
	e, ok := g.(interface{ Edges() graph.Edges })
	require.True(t, ok, "%T has no edge iterator", g)
	return e.Edges().Len()
}

func TestLoadTrustCSV(t *testing.T) {
	path := writeFile(t, "toy.csv", "A,1,B,100\nB,1,C,101\nC,1,A,102\nA,1,C,103\n")

	tn, err := LoadTrustCSV(path, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 3, tn.Index.Len())
	assert.Equal(t, 4, tn.Edges())
	assert.Equal(t, 4, tn.Records)

	a, ok := tn.Index.ID("A")
	require.True(t, ok)
	c, ok := tn.Index.ID("C")
	require.True(t, ok)
	assert.Equal(t, int64(0), a)
	assert.Equal(t, int64(2), c)
	assert.True(t, tn.Graph.HasEdgeFromTo(a, c))
	assert.True(t, tn.Graph.HasEdgeFromTo(c, a))
	assert.Equal(t, 103.0, tn.Timestamps[[2]int64{a, c}])

	w, ok := tn.Graph.Weight(a, c)
	assert.True(t, ok)
	assert.Equal(t, 1.0, w)
}

func TestLoadTrustCSVNegativeTrustAndDuplicates(t *testing.T) {
	path := writeFile(t, "dup.csv", "1,-10,2,5\n\n1,4,2,6\n3,2,3,7\n")

	tn, err := LoadTrustCSV(path, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 1, tn.Edges())
	assert.Equal(t, 1, tn.Duplicates)
	assert.Equal(t, 1, tn.SelfLoops)
	assert.Equal(t, 3, tn.Index.Len(), "self-loop endpoint is still a node")

	w, _ := tn.Graph.Weight(0, 1)
	assert.Equal(t, 4.0, w, "later records win")
	assert.Equal(t, 6.0, tn.Timestamps[[2]int64{0, 1}])
}

func TestLoadTrustCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"empty", "", ErrEmptyGraph},
		{"only self loops", "A,1,A,1\n", ErrEmptyGraph},
		{"three columns", "A,1,B\n", ErrMalformedLine},
		{"five columns", "A,1,B,1,extra\n", ErrMalformedLine},
		{"bad trust", "A,high,B,1\n", ErrMalformedLine},
		{"bad timestamp", "A,1,B,yesterday\n", ErrMalformedLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "in.csv", tt.content)
			_, err := LoadTrustCSV(path, zerolog.Nop())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadTrustCSVReportsLine(t *testing.T) {
	path := writeFile(t, "in.csv", "A,1,B,1\nB,1,C\n")
	_, err := LoadTrustCSV(path, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in.csv:2")
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")

	_, err := LoadTrustCSV(missing, zerolog.Nop())
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = LoadEdgeList(missing, EdgeListOptions{}, zerolog.Nop())
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadEdgeListUndirected(t *testing.T) {
	path := writeFile(t, "edges.txt", "0 1\n1 2\n\n2 0\n1 0\n2 3 0.5\n")

	list, err := LoadEdgeList(path, EdgeListOptions{}, zerolog.Nop())
	require.NoError(t, err)

	assert.False(t, list.Directed)
	assert.Equal(t, 4, list.Index.Len())
	assert.Equal(t, 1, list.Duplicates)
	assert.Equal(t, 5, list.Lines)

	assert.Equal(t, 4, list.Edges)
	u := list.Undirected()
	assert.Equal(t, 4, edgeCount(t, u))

	id, ok := list.Index.ID("3")
	require.True(t, ok)
	assert.Equal(t, "3", list.Index.Label(id))
	w, _ := list.Graph.(graph.Weighted).Weight(2, id)
	assert.Equal(t, 0.5, w)
}

func TestLoadEdgeListDirected(t *testing.T) {
	path := writeFile(t, "edges.txt", "a b\nb a\nb c\n")

	list, err := LoadEdgeList(path, EdgeListOptions{Directed: true}, zerolog.Nop())
	require.NoError(t, err)

	d, ok := list.Graph.(graph.Directed)
	require.True(t, ok)
	assert.True(t, d.HasEdgeFromTo(0, 1))
	assert.True(t, d.HasEdgeFromTo(1, 0))
	assert.Equal(t, 0, list.Duplicates)

	assert.Equal(t, 3, list.Edges)
	u := list.Undirected()
	assert.Equal(t, 2, edgeCount(t, u))
}

func TestLoadEdgeListComments(t *testing.T) {
	content := "# Nodes: 3 Edges: 2\n0 1\n1 2\n"

	list, err := LoadEdgeList(writeFile(t, "snap.txt", content), EdgeListOptions{CommentPrefix: "#"}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 3, list.Index.Len())

	_, err = LoadEdgeList(writeFile(t, "snap.txt", content), EdgeListOptions{}, zerolog.Nop())
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestLoadEdgeListErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"empty", "", ErrEmptyGraph},
		{"blank lines", "\n\n   \n", ErrEmptyGraph},
		{"self loop only", "7 7\n", ErrEmptyGraph},
		{"one token", "0 1\n2\n", ErrMalformedLine},
		{"four tokens", "0 1 2 3\n", ErrMalformedLine},
		{"bad weight", "0 1 heavy\n", ErrMalformedLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadEdgeList(writeFile(t, "edges.txt", tt.content), EdgeListOptions{}, zerolog.Nop())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSymmetrize(t *testing.T) {
	path := writeFile(t, "toy.csv", "A,1,B,100\nB,1,C,101\nC,1,A,102\nA,1,C,103\n")
	tn, err := LoadTrustCSV(path, zerolog.Nop())
	require.NoError(t, err)

	u := Symmetrize(tn.Graph)
	assert.Equal(t, 3, u.Nodes().Len())
	assert.Equal(t, 3, u.Edges().Len(), "A->C and C->A collapse")
	assert.True(t, u.HasEdgeBetween(0, 2))

	// The source graph is untouched.
	assert.Equal(t, 4, tn.Edges())
}
