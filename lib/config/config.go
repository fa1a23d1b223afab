// Package config provides configuration management for the GuessLab simulator.
package config

import (
	"os"
	"path"
	"time"

	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/p1xelfault/guesslab/lib/advisor"
	"github.com/p1xelfault/guesslab/lib/generator"
	"github.com/p1xelfault/guesslab/simstate"
)

const (
	// Default configuration values.
	defaultAdvisorTimeout    = 30 * time.Second // Default per-call timeout for the advisory service
	defaultAdvisorMaxRetries = 3                // Default retry ceiling for advisory calls
	defaultProgressInterval  = 1000             // Default attempt count between progress log lines
)

var scope = gap.NewScope(gap.User, "GuessLab") //nolint:gochecknoglobals // Configuration scope

// InitConfig initializes the configuration from various sources.
func InitConfig(cfgFile string) {
	simstate.ErrorLogger.SetReportCaller(true)

	home, err := os.UserConfigDir()
	cobra.CheckErr(err)

	cwd, err := os.Getwd()
	cobra.CheckErr(err)
	viper.AddConfigPath(cwd)

	configDirs, err := scope.ConfigDirs()
	cobra.CheckErr(err)

	for _, dir := range configDirs {
		viper.AddConfigPath(dir)
	}

	viper.AddConfigPath(home)
	viper.SetConfigType("yaml")
	viper.SetConfigName("guesslab")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		simstate.Logger.Info("Using config file", "config_file", viper.ConfigFileUsed())
	} else {
		simstate.Logger.Debug("No config file found, proceeding with defaults")
	}
}

// SetupSharedState configures the shared state from configuration values.
func SetupSharedState() {
	simstate.State.DataPath = viper.GetString("data_path")
	simstate.State.WordlistPath = viper.GetString("wordlist_path")
	simstate.State.AdvisorURL = viper.GetString("advisor_api_url")
	simstate.State.AdvisorAPIKey = viper.GetString("advisor_api_key")
	simstate.State.AdvisorModel = viper.GetString("advisor_model")
	simstate.State.AdvisorTimeout = viper.GetDuration("advisor_timeout")
	simstate.State.AdvisorMaxRetries = viper.GetInt("advisor_max_retries")
	simstate.State.MaxBruteForceLength = viper.GetInt("max_brute_force_length")
	simstate.State.ProgressInterval = viper.GetUint64("progress_update_interval")
	simstate.State.ShowProgressBar = viper.GetBool("show_progress_bar")
	simstate.State.Debug = viper.GetBool("debug")
	simstate.State.ExtraDebugging = viper.GetBool("extra_debugging")
}

// SetDefaultConfigValues sets default configuration values.
func SetDefaultConfigValues() {
	cwd, err := os.Getwd()
	cobra.CheckErr(err)

	viper.SetDefault("data_path", path.Join(cwd, "data"))
	viper.SetDefault("wordlist_path", path.Join(viper.GetString("data_path"), "wordlist.txt"))
	viper.SetDefault("advisor_api_url", advisor.DefaultBaseURL)
	viper.SetDefault("advisor_model", advisor.DefaultModel)
	viper.SetDefault("advisor_timeout", defaultAdvisorTimeout)
	viper.SetDefault("advisor_max_retries", defaultAdvisorMaxRetries)
	viper.SetDefault("max_brute_force_length", generator.MaxBruteForceLength)
	viper.SetDefault("progress_update_interval", defaultProgressInterval)
	viper.SetDefault("show_progress_bar", false)
	viper.SetDefault("extra_debugging", false)
}
