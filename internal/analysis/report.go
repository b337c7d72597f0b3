package analysis

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/rmarchetti/pcalab/internal/pca"
)

// WriteVarianceTable renders the explained-variance summary as a text
// table, one row per component: eigenvalue, proportion of variance and
// the running cumulative proportion.
func WriteVarianceTable(w io.Writer, title string, cvs []pca.ComponentVariance) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if title != "" {
		t.SetTitle(title)
	}
	t.AppendHeader(table.Row{"Component", "Eigenvalue", "Proportion", "Cumulative"})
	for _, cv := range cvs {
		t.AppendRow(table.Row{
			fmt.Sprintf("PC%d", cv.Component),
			fmt.Sprintf("%.4f", cv.Eigenvalue),
			fmt.Sprintf("%.4f", cv.Proportion),
			fmt.Sprintf("%.4f", cv.Cumulative),
		})
	}
	t.Render()
}
