package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/gilchrisn/netsci-analysis/pkg/models"
)

var modelColumnWidths = []int{20, 18, 20, 20}

// Headers are split over two lines so each fits its column.
var modelHeaders = []string{
	"Random graph\nmodel",
	"Diameter",
	"Avg. Clustering\ncoefficient",
	"Time taken to\nconstruct the graph",
}

// ModelTable renders model results as a fixed-width ASCII table.
func ModelTable(results []models.Result) string {
	t := table.New().
		Border(lipgloss.ASCIIBorder()).
		BorderRow(true).
		Headers(modelHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Width(modelColumnWidths[col]).Align(lipgloss.Left)
		})

	for _, r := range results {
		t.Row(
			r.Model,
			fmt.Sprintf("%d", r.Diameter),
			fmt.Sprintf("%.4f", r.Clustering),
			fmt.Sprintf("%.4f", r.Elapsed.Seconds()),
		)
	}
	return t.Render()
}
