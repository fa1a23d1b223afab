package cmd

import (
	"errors"
	"net/url"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/p1xelfault/guesslab/simstate"
)

// initCmd writes an initial configuration interactively.
var initCmd = &cobra.Command{ //nolint:gochecknoglobals // Cobra command
	Use:   "init",
	Short: "Initialize the simulator configuration",
	Long: "Initialize the simulator configuration.\n" +
		"This command should be run only once, unless you want to reset the advisor settings.",
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra command registration
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	if err := promptForAdvisorURL(); err != nil {
		return err
	}

	if err := promptForAPIKey(); err != nil {
		return err
	}

	if err := viper.SafeWriteConfig(); err != nil && err.Error() != "config file already exists" {
		if err := viper.WriteConfig(); err != nil {
			return err
		}
	}

	simstate.Logger.Info("Configuration written", "config_file", viper.ConfigFileUsed())

	return nil
}

// promptForAdvisorURL prompts for the advisory service base URL and validates it.
func promptForAdvisorURL() error {
	urlPrompt := promptui.Prompt{
		Label:   "Enter the advisory service base URL",
		Default: viper.GetString("advisor_api_url"),
		Validate: func(input string) error {
			if len(input) == 0 {
				return errors.New("invalid URL")
			}

			_, err := url.Parse(input)

			return err
		},
	}

	apiURL, err := urlPrompt.Run()
	if err != nil {
		return err
	}

	viper.Set("advisor_api_url", apiURL)

	return nil
}

// promptForAPIKey prompts for the advisory service API key. An empty key is
// allowed; the advisory method then degrades to its local fallback list.
func promptForAPIKey() error {
	keyPrompt := promptui.Prompt{
		Label: "Enter the advisory service API key (leave empty for offline use)",
		Mask:  '*',
	}

	key, err := keyPrompt.Run()
	if err != nil {
		return err
	}

	viper.Set("advisor_api_key", key)

	return nil
}
