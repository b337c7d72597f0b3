package pca_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarchetti/pcalab/internal/pca"
)

func TestReconstructRoundTrip(t *testing.T) {
	m := randomMatrix(20, 6, 42)

	d, err := pca.Decompose(m)
	require.NoError(t, err)

	recon, err := d.Reconstruct(6)
	require.NoError(t, err)

	rows, cols := recon.Dims()
	require.Equal(t, 20, rows)
	require.Equal(t, 6, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.InDelta(t, m.At(i, j), recon.At(i, j), 1e-6)
		}
	}
}

func TestReconstructMonotoneError(t *testing.T) {
	m := randomMatrix(25, 8, 42)

	d, err := pca.Decompose(m)
	require.NoError(t, err)

	prev := 0.0
	for k := d.Cols; k >= 1; k-- {
		errK, err := d.ReconstructionError(m, k)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, errK+1e-9, prev,
			"error must not grow when k rises from %d to %d", k, k+1)
		prev = errK
	}
}

func TestReconstructComponentRange(t *testing.T) {
	m := randomMatrix(10, 4, 1)
	d, err := pca.Decompose(m)
	require.NoError(t, err)

	for _, k := range []int{0, -1, 5} {
		_, err := d.Reconstruct(k)
		require.Error(t, err, "k=%d", k)
		assert.ErrorIs(t, err, pca.ErrComponentRange)
		assert.True(t, pca.IsComponentRange(err))
	}
}

func TestReconstructShapes(t *testing.T) {
	m := randomMatrix(15, 5, 9)
	d, err := pca.Decompose(m)
	require.NoError(t, err)

	for k := 1; k <= d.Cols; k++ {
		recon, err := d.Reconstruct(k)
		require.NoError(t, err)
		rows, cols := recon.Dims()
		assert.Equal(t, 15, rows)
		assert.Equal(t, 5, cols)
	}
}

// A noisy square matrix behaves like a grayscale image: full-rank
// reconstruction is exact and more components mean less error.
func TestReconstructImageLike(t *testing.T) {
	m := randomMatrix(10, 10, 42)

	d, err := pca.Decompose(m)
	require.NoError(t, err)

	full, err := d.ReconstructionError(m, 10)
	require.NoError(t, err)
	assert.Less(t, full, 1e-9)

	err1, err := d.ReconstructionError(m, 1)
	require.NoError(t, err)
	err5, err := d.ReconstructionError(m, 5)
	require.NoError(t, err)
	assert.Greater(t, err1, err5)
	assert.Greater(t, err5, full)
}

func TestReconstructionErrorShapeMismatch(t *testing.T) {
	m := randomMatrix(10, 4, 2)
	d, err := pca.Decompose(m)
	require.NoError(t, err)

	other := randomMatrix(10, 5, 2)
	_, err = d.ReconstructionError(other, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, pca.ErrShapeMismatch)
}
