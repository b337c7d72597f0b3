// Package pca implements principal component analysis on dense matrices:
// standardization, correlation-matrix eigendecomposition, projection onto
// the components, and rank-k reconstruction back in the original units.
package pca

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// degenerateStddev is the smallest sample standard deviation a column may
// have before it is treated as constant. Exact zero is not reliable here:
// a constant column can standardize to a stddev on the order of 1e-17
// through rounding of the mean.
const degenerateStddev = 1e-12

// Decomposition holds the output of Decompose. All fields are read-only
// once returned; concurrent Reconstruct calls against the same
// Decomposition are safe.
type Decomposition struct {
	Rows int // observations in the input
	Cols int // variables in the input

	// Means and Stddevs are the per-column scaling parameters. Stddevs are
	// sample standard deviations (n-1), so the covariance of the
	// standardized data equals the correlation matrix of the input.
	Means   []float64
	Stddevs []float64

	// Eigenvalues of the correlation matrix, sorted descending. Their sum
	// approximates Cols.
	Eigenvalues []float64

	// Components is the cols x cols eigenvector matrix, one component per
	// column, orthonormal, ordered to match Eigenvalues. Each column is
	// sign-canonicalized: its largest-magnitude entry is non-negative.
	Components *mat.Dense

	// Scores is the rows x cols projection of the standardized input onto
	// Components. Column j holds every observation's coordinate along
	// component j.
	Scores *mat.Dense
}

// Decompose runs PCA on m, where rows are observations and columns are
// variables. It is a pure function of its input: the returned
// Decomposition owns fresh storage and m is never modified.
func Decompose(m mat.Matrix) (*Decomposition, error) {
	rows, cols := m.Dims()
	if rows < 2 || cols < 2 {
		return nil, newError("decompose", ErrInsufficientData,
			fmt.Sprintf("got %dx%d, need at least 2x2", rows, cols))
	}

	means := make([]float64, cols)
	stddevs := make([]float64, cols)
	z := mat.NewDense(rows, cols, nil)
	for j := 0; j < cols; j++ {
		col := mat.Col(nil, j, m)
		mean, std := stat.MeanStdDev(col, nil)
		if !(std > degenerateStddev) {
			return nil, newError("decompose", ErrZeroVariance,
				fmt.Sprintf("column %d", j))
		}
		means[j] = mean
		stddevs[j] = std
		for i := 0; i < rows; i++ {
			z.Set(i, j, (col[i]-mean)/std)
		}
	}

	// Covariance of the standardized data. By construction this is the
	// correlation matrix of the input, so its trace is cols.
	var cov mat.Dense
	cov.Mul(z.T(), z)
	cov.Scale(1/float64(rows-1), &cov)

	sym := mat.NewSymDense(cols, nil)
	for i := 0; i < cols; i++ {
		for j := i; j < cols; j++ {
			sym.SetSym(i, j, cov.At(i, j))
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return nil, newError("decompose", ErrEigenFailure, "")
	}

	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	// EigenSym reports eigenvalues in ascending order; components are
	// wanted largest-variance first.
	order := make([]int, cols)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return values[order[a]] > values[order[b]]
	})

	eigenvalues := make([]float64, cols)
	components := mat.NewDense(cols, cols, nil)
	for rank, idx := range order {
		eigenvalues[rank] = values[idx]
		v := mat.Col(nil, idx, &vectors)
		canonicalizeSign(v)
		components.SetCol(rank, v)
	}

	scores := mat.NewDense(rows, cols, nil)
	scores.Mul(z, components)

	return &Decomposition{
		Rows:        rows,
		Cols:        cols,
		Means:       means,
		Stddevs:     stddevs,
		Eigenvalues: eigenvalues,
		Components:  components,
		Scores:      scores,
	}, nil
}

// NewMatrix builds a dense matrix from row slices, checking that every row
// has the same length.
func NewMatrix(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, newError("new_matrix", ErrInsufficientData, "empty input")
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, newError("new_matrix", ErrRaggedRows,
				fmt.Sprintf("row %d has %d values, want %d", i, len(row), cols))
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// canonicalizeSign flips v when its largest-magnitude entry is negative.
// An eigensolver may return either v or -v for the same eigenvalue; pinning
// the sign makes repeated runs and alternate solvers agree. Ties keep the
// lowest index.
func canonicalizeSign(v []float64) {
	pivot := 0
	for i, x := range v {
		if math.Abs(x) > math.Abs(v[pivot]) {
			pivot = i
		}
	}
	if v[pivot] < 0 {
		floats.Scale(-1, v)
	}
}
