package pca

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Reconstruct approximates the original matrix using only the first k
// components, then reverses the scaling and centering so values are back
// in the input's measurement units. With k equal to Cols the input is
// recovered up to floating-point precision; for smaller k this is the
// rank-k approximation of the standardized data.
func (d *Decomposition) Reconstruct(k int) (*mat.Dense, error) {
	if k < 1 || k > d.Cols {
		return nil, newError("reconstruct", ErrComponentRange,
			fmt.Sprintf("k=%d, want 1..%d", k, d.Cols))
	}

	scores := d.Scores.Slice(0, d.Rows, 0, k)
	comps := d.Components.Slice(0, d.Cols, 0, k)

	var z mat.Dense
	z.Mul(scores, comps.T())

	recon := mat.NewDense(d.Rows, d.Cols, nil)
	for i := 0; i < d.Rows; i++ {
		for j := 0; j < d.Cols; j++ {
			recon.Set(i, j, z.At(i, j)*d.Stddevs[j]+d.Means[j])
		}
	}
	return recon, nil
}

// ReconstructionError returns the sum of squared element-wise differences
// between Reconstruct(k) and original. More components can only capture
// more variance, so the error is non-increasing in k.
func (d *Decomposition) ReconstructionError(original mat.Matrix, k int) (float64, error) {
	rows, cols := original.Dims()
	if rows != d.Rows || cols != d.Cols {
		return 0, newError("reconstruction_error", ErrShapeMismatch,
			fmt.Sprintf("got %dx%d, decomposition is %dx%d", rows, cols, d.Rows, d.Cols))
	}

	recon, err := d.Reconstruct(k)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			diff := recon.At(i, j) - original.At(i, j)
			sum += diff * diff
		}
	}
	return sum, nil
}
