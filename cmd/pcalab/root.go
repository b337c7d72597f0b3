package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagDebug   bool
	flagNoColor bool

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pcalab",
	Short: "principal component analysis walkthroughs on images and county data",
	Long: `pcalab decomposes a dataset into its principal components and
reconstructs approximations from a chosen number of them.

Two datasets are supported: a grayscale image, treated as a matrix of
pixel intensities, and a CSV of county statistics, optionally analyzed
one state at a time.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		console := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
			NoColor:    flagNoColor,
		}
		log = zerolog.New(console).With().Timestamp().Logger()
		if flagDebug {
			log = log.Level(zerolog.DebugLevel)
		} else {
			log = log.Level(zerolog.InfoLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored log output")
}
