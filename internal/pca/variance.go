package pca

import "gonum.org/v1/gonum/floats"

// ComponentVariance describes how much of the total variance one principal
// component accounts for.
type ComponentVariance struct {
	Component  int     // 1-based component index
	Eigenvalue float64 // variance along the component
	Proportion float64 // Eigenvalue / sum of all eigenvalues
	Cumulative float64 // running sum of Proportion, ends at 1.0
}

// ExplainedVariance summarizes the decomposition one component at a time,
// in the same descending order as Eigenvalues. Proportions sum to 1 and
// the cumulative column is non-decreasing.
func (d *Decomposition) ExplainedVariance() []ComponentVariance {
	total := floats.Sum(d.Eigenvalues)
	out := make([]ComponentVariance, len(d.Eigenvalues))
	cumulative := 0.0
	for i, ev := range d.Eigenvalues {
		proportion := ev / total
		cumulative += proportion
		out[i] = ComponentVariance{
			Component:  i + 1,
			Eigenvalue: ev,
			Proportion: proportion,
			Cumulative: cumulative,
		}
	}
	return out
}
