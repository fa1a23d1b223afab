package cmd

import (
	"github.com/spf13/cobra"

	"github.com/p1xelfault/guesslab/lib/advisor"
	"github.com/p1xelfault/guesslab/lib/attack"
	"github.com/p1xelfault/guesslab/lib/display"
	"github.com/p1xelfault/guesslab/lib/generator"
	"github.com/p1xelfault/guesslab/lib/oracle"
	"github.com/p1xelfault/guesslab/lib/wordlist"
	"github.com/p1xelfault/guesslab/simstate"
)

//nolint:gochecknoglobals // Bound to crack command flags
var (
	crackHash      string
	crackAlgorithm string
	crackMethod    string
	crackMaxLength int
	crackContext   string
	crackWordlist  string
)

// crackCmd runs one attack against a synthetic target digest.
var crackCmd = &cobra.Command{ //nolint:gochecknoglobals // Cobra command
	Use:   "crack",
	Short: "Run a guessing strategy against a synthetic digest",
	Long: "Run one of the guessing strategies (brute_force, dictionary, rule_based, ai) against a\n" +
		"synthetic digest. Targets that look like real credential hashes are rejected before any\n" +
		"candidate is generated.",
	RunE: runCrack,
}

//nolint:gochecknoinits // Cobra command registration
func init() {
	crackCmd.Flags().StringVar(&crackHash, "hash", "", "Target digest in hex (required)")
	crackCmd.Flags().StringVar(&crackAlgorithm, "algorithm", "", "Digest algorithm: sha256, sha1, md5 (detected from length when omitted)")
	crackCmd.Flags().StringVar(&crackMethod, "method", "dictionary", "Attack method: brute_force, dictionary, rule_based, ai")
	crackCmd.Flags().IntVar(&crackMaxLength, "max-length", 0, "Maximum candidate length for brute_force, clamped to 1-8 (default from config)")
	crackCmd.Flags().StringVar(&crackContext, "context", "", "Free-text context for the ai method")
	crackCmd.Flags().StringVar(&crackWordlist, "wordlist", "", "Word list path or URL for the dictionary method")
	cobra.CheckErr(crackCmd.MarkFlagRequired("hash"))

	rootCmd.AddCommand(crackCmd)
}

func runCrack(cmd *cobra.Command, _ []string) error {
	display.Startup(Version)
	defer display.ShuttingDown()

	method, err := generator.ParseMethod(crackMethod)
	if err != nil {
		return err
	}

	maxLength := crackMaxLength
	if !cmd.Flags().Changed("max-length") && simstate.State.MaxBruteForceLength > 0 {
		maxLength = simstate.State.MaxBruteForceLength
	}

	algorithm, err := resolveAlgorithm(crackHash, crackAlgorithm)
	if err != nil {
		return err
	}

	request := attack.Request{
		RawTarget: crackHash,
		Algorithm: algorithm,
		Method:    method,
		MaxLength: maxLength,
		Context:   crackContext,
	}

	if method == generator.Dictionary {
		source := crackWordlist
		if source == "" {
			source = simstate.State.WordlistPath
		}

		words, err := wordlist.Load(source)
		if err != nil {
			return err
		}

		request.Words = words
	}

	var service advisor.Service
	if method == generator.Advisory {
		service = advisor.NewClient(
			simstate.State.AdvisorURL,
			simstate.State.AdvisorModel,
			simstate.State.AdvisorAPIKey,
			simstate.State.AdvisorTimeout,
			simstate.State.AdvisorMaxRetries,
		)
	}

	runner := attack.NewRunner(service)

	outcome, err := runner.Run(cmd.Context(), request)
	if err != nil {
		return err
	}

	stats := attack.Summarize(outcome)
	display.RunStats(stats.Method, stats.Attempts, stats.Elapsed, stats.AttemptsPerSecond, stats.Success)

	if outcome.Analysis != nil {
		simstate.Logger.Info("Advisory analysis",
			"recommendation", outcome.Analysis.Recommendation,
			"probability", outcome.Analysis.Probability,
			"degraded", outcome.Degraded)
	}

	return nil
}

// resolveAlgorithm parses an explicit algorithm tag or detects one from the
// digest length.
func resolveAlgorithm(rawHash, tag string) (oracle.Algorithm, error) {
	if tag != "" {
		return oracle.ParseAlgorithm(tag)
	}

	return oracle.Detect(rawHash)
}
