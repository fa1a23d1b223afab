package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/p1xelfault/guesslab/lib/bench"
)

var benchDuration time.Duration //nolint:gochecknoglobals // Bound to bench command flag

// benchCmd measures local digest throughput per algorithm.
var benchCmd = &cobra.Command{ //nolint:gochecknoglobals // Cobra command
	Use:   "bench",
	Short: "Measure local digest throughput per algorithm",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := bench.RunAll(cmd.Context(), benchDuration)
		return err
	},
}

//nolint:gochecknoinits // Cobra command registration
func init() {
	benchCmd.Flags().DurationVar(&benchDuration, "duration", 2*time.Second, "Measurement duration per algorithm")

	rootCmd.AddCommand(benchCmd)
}
