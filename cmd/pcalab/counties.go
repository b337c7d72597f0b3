package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmarchetti/pcalab/internal/analysis"
	"github.com/rmarchetti/pcalab/internal/dataset"
	"github.com/rmarchetti/pcalab/internal/plotting"
)

// go run ./cmd/pcalab counties midwest.csv --by-state --components 2 --out out
var countiesCmd = &cobra.Command{
	Use:   "counties <csv>",
	Short: "run PCA over county statistics, optionally one state at a time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		columns, err := cmd.Flags().GetStringSlice("columns")
		if err != nil {
			return err
		}
		byState, err := cmd.Flags().GetBool("by-state")
		if err != nil {
			return err
		}
		k, err := cmd.Flags().GetInt("components")
		if err != nil {
			return err
		}
		outDir, err := cmd.Flags().GetString("out")
		if err != nil {
			return err
		}
		withPlots, err := cmd.Flags().GetBool("plots")
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open csv: %w", err)
		}
		defer f.Close()

		table, err := dataset.ReadTable(f)
		if err != nil {
			return err
		}
		if len(columns) > 0 {
			if table, err = table.Select(columns...); err != nil {
				return err
			}
		}
		log.Info().
			Int("rows", len(table.Rows)).
			Strs("columns", table.Columns).
			Msg("Loaded table")

		var groups []dataset.Group
		if byState {
			groups = table.GroupByState()
		} else {
			all := dataset.Group{Key: "all", Matrix: table.Matrix()}
			for _, row := range table.Rows {
				all.Counties = append(all.Counties, row.County)
			}
			groups = []dataset.Group{all}
		}

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}

		cfg := analysis.DefaultConfig()
		cfg.Logger = log
		results := analysis.RunGroups(context.Background(), cfg, groups)

		succeeded := 0
		for _, res := range results {
			if res.Err != nil {
				// Already logged by the runner; keep going with the rest.
				continue
			}
			succeeded++

			d := res.Decomposition
			analysis.WriteVarianceTable(cmd.OutOrStdout(),
				fmt.Sprintf("Explained variance: %s", res.Key), d.ExplainedVariance())

			kk := k
			if kk > d.Cols {
				kk = d.Cols
			}
			slug := strings.ToLower(strings.ReplaceAll(res.Key, " ", "_"))
			scoresPath := filepath.Join(outDir, fmt.Sprintf("scores_%s.csv", slug))
			out, err := os.Create(scoresPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", scoresPath, err)
			}
			g := dataset.Group{Key: res.Key, Counties: res.Labels, Matrix: nil}
			if err := dataset.WriteScores(out, g, d, kk); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return fmt.Errorf("close %s: %w", scoresPath, err)
			}
			log.Info().Str("group", res.Key).Int("k", kk).Str("path", scoresPath).Msg("Wrote scores")

			if withPlots {
				if err := plotting.Scree(
					filepath.Join(outDir, fmt.Sprintf("scree_%s.png", slug)),
					d.ExplainedVariance()); err != nil {
					return err
				}
				if d.Cols >= 2 {
					if err := plotting.Scatter(
						filepath.Join(outDir, fmt.Sprintf("scores_%s.png", slug)),
						d, res.Labels, 1, 2); err != nil {
						return err
					}
				}
			}
		}

		if succeeded == 0 {
			return errors.New("no group could be decomposed")
		}
		log.Info().Int("groups", len(results)).Int("succeeded", succeeded).Msg("Done")
		return nil
	},
}

func init() {
	countiesCmd.Flags().StringSlice("columns", nil, "numeric columns to analyze (default: all)")
	countiesCmd.Flags().Bool("by-state", false, "decompose each state separately")
	countiesCmd.Flags().Int("components", 2, "score columns to export")
	countiesCmd.Flags().String("out", "out", "directory for score CSVs and plots")
	countiesCmd.Flags().Bool("plots", false, "also write scree and scatter plots")
	rootCmd.AddCommand(countiesCmd)
}
