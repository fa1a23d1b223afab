package cmd

import (
	"path"

	"github.com/spf13/cobra"

	"github.com/p1xelfault/guesslab/lib/wordlist"
	"github.com/p1xelfault/guesslab/simstate"
)

//nolint:gochecknoglobals // Bound to wordlist command flags
var (
	wordlistURL      string
	wordlistChecksum string
)

// wordlistCmd downloads a word list into the data directory for the
// dictionary method.
var wordlistCmd = &cobra.Command{ //nolint:gochecknoglobals // Cobra command
	Use:   "wordlist",
	Short: "Download a word list into the data directory",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dest := path.Join(simstate.State.DataPath, path.Base(wordlistURL))
		return wordlist.Fetch(cmd.Context(), wordlistURL, dest, wordlistChecksum)
	},
}

//nolint:gochecknoinits // Cobra command registration
func init() {
	wordlistCmd.Flags().StringVar(&wordlistURL, "url", "", "Word list URL (required)")
	wordlistCmd.Flags().StringVar(&wordlistChecksum, "checksum", "", "Expected MD5 checksum (optional)")
	cobra.CheckErr(wordlistCmd.MarkFlagRequired("url"))

	rootCmd.AddCommand(wordlistCmd)
}
