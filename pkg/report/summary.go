package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gilchrisn/netsci-analysis/pkg/metrics"
)

// WriteTrustSummary prints the degree extremes and clustering of a trust
// network.
func WriteTrustSummary(w io.Writer, s metrics.DegreeSummary, clustering float64) error {
	_, err := fmt.Fprintf(w,
		"a. Maximum undirected degree: %d\n"+
			"\nb. Directed graph metrics:\n"+
			"   - Maximum in-degree: %d\n"+
			"   - Maximum out-degree: %d\n"+
			"\nc. Average clustering coefficient: %.4f\n",
		s.MaxUndirected, s.MaxIn, s.MaxOut, clustering)
	return err
}

// WriteTopK prints ranked nodes under a "Top k Nodes by <measure>" header.
// label maps node IDs back to their input labels; precision is the number
// of decimals printed.
func WriteTopK(w io.Writer, measure string, ranked []metrics.Ranked, label func(int64) string, precision int) error {
	if _, err := fmt.Fprintf(w, "Top %d Nodes by %s:\n", len(ranked), measure); err != nil {
		return err
	}
	for _, r := range ranked {
		name := strconv.FormatInt(r.ID, 10)
		if label != nil {
			name = label(r.ID)
		}
		if _, err := fmt.Fprintf(w, "Node %s: %.*f\n", name, precision, r.Score); err != nil {
			return err
		}
	}
	return nil
}
