package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/rmarchetti/pcalab/internal/pca"
)

// WriteScores exports a group's projection onto the first k components as
// CSV: the label columns followed by one score column per component. This
// is the augment-style view of a decomposition, one line per county.
func WriteScores(w io.Writer, g Group, d *pca.Decomposition, k int) error {
	if k < 1 || k > d.Cols {
		return fmt.Errorf("dataset: write scores: %w", pca.ErrComponentRange)
	}
	if len(g.Counties) != d.Rows {
		return fmt.Errorf("dataset: write scores: %w", pca.ErrShapeMismatch)
	}

	cw := csv.NewWriter(w)

	header := make([]string, 0, 2+k)
	header = append(header, "state", "county")
	for j := 1; j <= k; j++ {
		header = append(header, fmt.Sprintf("pc%d", j))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("dataset: write scores header: %w", err)
	}

	record := make([]string, 2+k)
	for i := 0; i < d.Rows; i++ {
		record[0] = g.Key
		record[1] = g.Counties[i]
		for j := 0; j < k; j++ {
			record[2+j] = strconv.FormatFloat(d.Scores.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("dataset: write scores row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
