package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/p1xelfault/guesslab/lib/oracle"
)

//nolint:gochecknoglobals // Bound to corpus command flags
var (
	corpusCount     int
	corpusAlgorithm string
)

// corpusCmd prints a demonstration corpus of weak passwords and their digests.
var corpusCmd = &cobra.Command{ //nolint:gochecknoglobals // Cobra command
	Use:   "corpus",
	Short: "Generate a fake password corpus for demonstrations",
	RunE:  runCorpus,
}

//nolint:gochecknoinits // Cobra command registration
func init() {
	corpusCmd.Flags().IntVar(&corpusCount, "count", 10, "Number of corpus entries")
	corpusCmd.Flags().StringVar(&corpusAlgorithm, "algorithm", string(oracle.SHA256), "Digest algorithm: sha256, sha1, md5")

	rootCmd.AddCommand(corpusCmd)
}

func runCorpus(cmd *cobra.Command, _ []string) error {
	algorithm, err := oracle.ParseAlgorithm(corpusAlgorithm)
	if err != nil {
		return err
	}

	entries, err := oracle.FakeCorpus(corpusCount, algorithm)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))

	return nil
}
