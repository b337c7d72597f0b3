package analysis

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarchetti/pcalab/internal/pca"
)

func TestWriteVarianceTable(t *testing.T) {
	g := randomGroup("AA", 20, 3, 61)
	d, err := pca.Decompose(g.Matrix)
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteVarianceTable(&buf, "Explained variance", d.ExplainedVariance())

	out := buf.String()
	assert.Contains(t, out, "Explained variance")
	assert.Contains(t, out, "PC1")
	assert.Contains(t, out, "PC3")
	assert.Contains(t, out, "Cumulative")
	// Full-rank cumulative reaches 1.
	assert.Contains(t, out, "1.0000")
}
