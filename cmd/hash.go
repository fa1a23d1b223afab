package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/p1xelfault/guesslab/lib/oracle"
	"github.com/p1xelfault/guesslab/simstate"
)

//nolint:gochecknoglobals // Bound to hash command flags
var (
	hashPassword  string
	hashAlgorithm string
)

// hashCmd generates a synthetic digest to practice against.
var hashCmd = &cobra.Command{ //nolint:gochecknoglobals // Cobra command
	Use:   "hash",
	Short: "Generate a synthetic digest for practice",
	Long: "Hash a supplied password, or a random 8-character one, under the chosen algorithm.\n" +
		"The output digest is synthetic and safe to attack with the crack command.",
	RunE: runHash,
}

//nolint:gochecknoinits // Cobra command registration
func init() {
	hashCmd.Flags().StringVar(&hashPassword, "password", "", "Password to hash (random when omitted)")
	hashCmd.Flags().StringVar(&hashAlgorithm, "algorithm", string(oracle.SHA256), "Digest algorithm: sha256, sha1, md5")

	rootCmd.AddCommand(hashCmd)
}

func runHash(cmd *cobra.Command, _ []string) error {
	algorithm, err := oracle.ParseAlgorithm(hashAlgorithm)
	if err != nil {
		return err
	}

	digest, plaintext, err := oracle.Synthetic(hashPassword, algorithm)
	if err != nil {
		return err
	}

	simstate.Logger.Info("Generated synthetic digest", "algorithm", algorithm, "password_length", len(plaintext))
	fmt.Fprintln(cmd.OutOrStdout(), digest.Hex)

	if hashPassword == "" {
		// The random plaintext has to be shown once or the digest is unusable.
		fmt.Fprintln(cmd.OutOrStdout(), plaintext)
	}

	return nil
}
