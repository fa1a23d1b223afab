// Package cmd wires the GuessLab commands together.
package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/p1xelfault/guesslab/lib/config"
	"github.com/p1xelfault/guesslab/simstate"
)

// Version is the simulator version reported at startup.
const Version = "1.0.0"

var cfgFile string //nolint:gochecknoglobals // Bound to the persistent --config flag

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{ //nolint:gochecknoglobals // Cobra root command
	Use:     "guesslab",
	Version: Version,
	Short:   "GuessLab educational password-guessing simulator",
	Long: "GuessLab illustrates password-guessing strategies against synthetic SHA-256/MD5/SHA-1 hashes.\n" +
		"It refuses to operate on anything resembling a real credential hash.",
}

// Execute runs the root command for the simulator.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra command registration
func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/guesslab.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode")
	err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	cobra.CheckErr(err)

	config.SetDefaultConfigValues()
}

// initConfig reads configuration, populates shared state, and sets log levels.
func initConfig() {
	config.InitConfig(cfgFile)
	config.SetupSharedState()
	initLogger()
}

// initLogger initializes the logging configuration based on the current debug state.
func initLogger() {
	if simstate.State.Debug {
		simstate.Logger.SetLevel(log.DebugLevel)
		simstate.Logger.SetReportCaller(true)
	} else {
		simstate.Logger.SetLevel(log.InfoLevel)
	}
}
