// Package simstate provides common state and configuration structures used across GuessLab.
package simstate

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// State represents the configuration and runtime state of the simulator.
var State = simState{} //nolint:gochecknoglobals // Global simulator state

// simState holds the process-wide configuration of the simulator. All fields
// are set once during command initialization, before any attack runs start,
// and are read-only afterwards. Per-run mutable state (attempt counters,
// timers) lives on each attack.Runner instance instead.
type simState struct {
	DataPath            string        // DataPath is the directory holding downloaded word lists and generated corpora.
	WordlistPath        string        // WordlistPath is the default word list used by the dictionary method.
	AdvisorURL          string        // AdvisorURL is the base URL of the external text-generation service.
	AdvisorAPIKey       string        // AdvisorAPIKey authenticates against the text-generation service.
	AdvisorModel        string        // AdvisorModel is the model identifier requested from the service.
	AdvisorTimeout      time.Duration // AdvisorTimeout bounds each call to the text-generation service.
	AdvisorMaxRetries   int           // AdvisorMaxRetries is the retry ceiling for advisor calls.
	MaxBruteForceLength int           // MaxBruteForceLength clamps the exhaustive method's candidate length.
	ProgressInterval    uint64        // ProgressInterval is the attempt count between progress log lines.
	ShowProgressBar     bool          // ShowProgressBar enables the terminal progress bar for exhaustive runs.
	Debug               bool          // Debug specifies whether the simulator is running in debug mode.
	ExtraDebugging      bool          // ExtraDebugging enables very chatty per-candidate logging.
}

// Logger is a shared logging instance configured to output logs at InfoLevel with timestamps to os.Stdout.
var Logger = log.NewWithOptions(os.Stdout, log.Options{ //nolint:gochecknoglobals // Shared logger
	Level:           log.InfoLevel,
	ReportTimestamp: true,
})

// ErrorLogger is a logger instance for logging critical errors with detailed error information.
var ErrorLogger = Logger.With() //nolint:gochecknoglobals // Shared error logger
