package plotting

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/rmarchetti/pcalab/internal/analysis"
	"github.com/rmarchetti/pcalab/internal/pca"
)

func testDecomposition(t *testing.T) (*pca.Decomposition, *mat.Dense) {
	t.Helper()
	rng := rand.New(rand.NewSource(17))
	data := make([]float64, 20*4)
	for i := range data {
		data[i] = rng.Float64()
	}
	m := mat.NewDense(20, 4, data)
	d, err := pca.Decompose(m)
	require.NoError(t, err)
	return d, m
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestScree(t *testing.T) {
	d, _ := testDecomposition(t)
	path := filepath.Join(t.TempDir(), "scree.png")

	require.NoError(t, Scree(path, d.ExplainedVariance()))
	assertNonEmptyFile(t, path)
}

func TestScatter(t *testing.T) {
	d, _ := testDecomposition(t)
	labels := make([]string, d.Rows)
	for i := range labels {
		labels[i] = "obs"
	}
	path := filepath.Join(t.TempDir(), "scores.png")

	require.NoError(t, Scatter(path, d, labels, 1, 2))
	assertNonEmptyFile(t, path)

	err := Scatter(filepath.Join(t.TempDir(), "bad.png"), d, nil, 0, 2)
	require.Error(t, err)
	assert.True(t, pca.IsComponentRange(err))
}

func TestErrorCurve(t *testing.T) {
	d, m := testDecomposition(t)
	points, err := analysis.Sweep(d, m, []int{1, 2, 3, 4})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "error.png")
	require.NoError(t, ErrorCurve(path, points))
	assertNonEmptyFile(t, path)
}
