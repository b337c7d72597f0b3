package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rmarchetti/pcalab/internal/analysis"
	"github.com/rmarchetti/pcalab/internal/imaging"
	"github.com/rmarchetti/pcalab/internal/pca"
	"github.com/rmarchetti/pcalab/internal/plotting"
)

// go run ./cmd/pcalab image photo.png --components 1,5,20 --out out --plots
var imageCmd = &cobra.Command{
	Use:   "image <input>",
	Short: "decompose a grayscale image and reconstruct it from k components",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		components, err := cmd.Flags().GetIntSlice("components")
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
			return fmt.Errorf("open image: %w", err)
		}
		defer f.Close()

		m, err := imaging.Decode(f)
		if err != nil {
			return err
		}
		w, h := m.Dims()
		log.Info().Int("width", w).Int("height", h).Msg("Decoded image")

		d, err := pca.Decompose(m)
		if err != nil {
			return fmt.Errorf("decompose image: %w", err)
		}

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}

		// An image has one component per pixel row; the leading few carry
		// the story, so the table stops there.
		cvs := d.ExplainedVariance()
		if len(cvs) > 10 {
			cvs = cvs[:10]
		}
		analysis.WriteVarianceTable(cmd.OutOrStdout(), "Explained variance (top components)", cvs)

		for _, k := range components {
			recon, err := d.Reconstruct(k)
			if err != nil {
				return fmt.Errorf("reconstruct k=%d: %w", k, err)
			}
			path := filepath.Join(outDir, fmt.Sprintf("recon_k%03d.png", k))
			out, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create %s: %w", path, err)
			}
			if err := imaging.Encode(out, recon); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return fmt.Errorf("close %s: %w", path, err)
			}
			log.Info().Int("k", k).Str("path", path).Msg("Wrote reconstruction")
		}

		points, err := analysis.Sweep(d, m, components)
		if err != nil {
			return err
		}
		for _, p := range points {
			log.Info().Int("k", p.K).Float64("sq_error", p.Err).Msg("Reconstruction error")
		}

		if withPlots {
			screePath := filepath.Join(outDir, "scree.png")
			if err := plotting.Scree(screePath, cvs); err != nil {
				return err
			}
			errPath := filepath.Join(outDir, "error_curve.png")
			if err := plotting.ErrorCurve(errPath, points); err != nil {
				return err
			}
			log.Info().Str("scree", screePath).Str("error_curve", errPath).Msg("Wrote plots")
		}
		return nil
	},
}

func init() {
	imageCmd.Flags().IntSlice("components", []int{1, 5, 20}, "component counts to reconstruct with")
	imageCmd.Flags().String("out", "out", "directory for reconstructions and plots")
	imageCmd.Flags().Bool("plots", false, "also write scree and error-curve plots")
	rootCmd.AddCommand(imageCmd)
}
