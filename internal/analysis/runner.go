// Package analysis runs decompositions over partitioned datasets and
// summarizes the results. A failed group is recorded, not fatal: the run
// continues with the remaining groups so one degenerate state cannot sink
// a whole-table walkthrough.
package analysis

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/rmarchetti/pcalab/internal/dataset"
	"github.com/rmarchetti/pcalab/internal/pca"
)

// GroupResult pairs one group's decomposition with the labels that belong
// to its rows. Err is set when the group could not be decomposed; the
// other fields are then zero.
type GroupResult struct {
	Key           string
	Labels        []string
	Decomposition *pca.Decomposition
	Err           error
}

// SweepPoint is the reconstruction error measured at one component count.
type SweepPoint struct {
	K   int
	Err float64
}

// RunGroups decomposes every group, at most cfg.Parallelism at a time.
// Results come back in input order regardless of completion order. Groups
// are independent, so a failure is captured in its GroupResult and the
// rest of the run proceeds. Cancelling ctx stops scheduling new groups;
// unscheduled groups report the context error.
func RunGroups(ctx context.Context, cfg Config, groups []dataset.Group) []GroupResult {
	if cfg.Parallelism < 1 {
		cfg.Parallelism = 1
	}

	results := make([]GroupResult, len(groups))

	var g errgroup.Group
	g.SetLimit(cfg.Parallelism)
	for i, group := range groups {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(groups); j++ {
				results[j] = GroupResult{Key: groups[j].Key, Err: err}
			}
			break
		}

		i, group := i, group
		g.Go(func() error {
			start := time.Now()
			d, err := pca.Decompose(group.Matrix)
			if err != nil {
				DecompositionsTotal.WithLabelValues("error").Inc()
				GroupsSkippedTotal.Inc()
				cfg.Logger.Warn().
					Err(err).
					Str("group", group.Key).
					Msg("Skipping group")
				results[i] = GroupResult{Key: group.Key, Err: err}
				return nil
			}

			DecompositionsTotal.WithLabelValues("success").Inc()
			DecompositionDuration.Observe(time.Since(start).Seconds())
			cfg.Logger.Debug().
				Str("group", group.Key).
				Int("rows", d.Rows).
				Int("cols", d.Cols).
				Dur("duration", time.Since(start)).
				Msg("Decomposed group")

			results[i] = GroupResult{
				Key:           group.Key,
				Labels:        group.Counties,
				Decomposition: d,
			}
			return nil
		})
	}
	g.Wait()

	return results
}

// Sweep measures the reconstruction error of d against original at each
// requested component count. Component counts are validated by the
// reconstruction itself, so an out-of-range k aborts the sweep.
func Sweep(d *pca.Decomposition, original mat.Matrix, ks []int) ([]SweepPoint, error) {
	points := make([]SweepPoint, 0, len(ks))
	for _, k := range ks {
		errSq, err := d.ReconstructionError(original, k)
		if err != nil {
			return nil, err
		}
		ReconstructionsTotal.Inc()
		points = append(points, SweepPoint{K: k, Err: errSq})
	}
	return points, nil
}
