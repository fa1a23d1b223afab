// Package display provides output and logging functions for the GuessLab
// simulator. The matched plaintext is never logged at Info level or above;
// outward-facing lines carry only its masked form and length.
package display

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"

	"github.com/p1xelfault/guesslab/lib/progress"
	"github.com/p1xelfault/guesslab/simstate"
)

// Startup logs an informational message with host metadata at simulator start.
func Startup(version string) {
	simstate.Logger.Info("Starting GuessLab", "version", version)

	info, err := host.Info()
	if err != nil {
		simstate.Logger.Debug("Could not read host info", "error", err)
		return
	}

	cores, err := cpu.Counts(true)
	if err != nil {
		cores = 0
	}

	simstate.Logger.Info("Host", "platform", info.Platform, "os", info.OS, "logical_cores", cores)
}

// AttackStarted logs the start of an attack run.
func AttackStarted(method, algorithm string) {
	simstate.Logger.Info("Starting attack", "method", method, "algorithm", algorithm)
}

// Progress logs a periodic progress line during a run. A non-zero keyspace
// adds a completion percentage; the current candidate is only shown with
// extra debugging enabled.
func Progress(attempts, keyspace uint64, current string) {
	logger := simstate.Logger.With("attempts", humanize.Comma(int64(attempts))) //nolint:gosec // Attempt counts stay far below int64 range

	if keyspace > 0 {
		logger = logger.With("percent", progress.CalculatePercentage(float64(attempts), float64(keyspace)))
	}

	if simstate.State.ExtraDebugging {
		logger.Debug("Progress", "current", current)
		return
	}

	logger.Info("Progress")
}

// Found logs a successful run. The candidate itself is masked; the plaintext
// only appears at Debug level for local inspection.
func Found(candidate string, attempts uint64, elapsed time.Duration) {
	simstate.Logger.Info("Password found",
		"candidate", Mask(candidate),
		"length", len(candidate),
		"attempts", humanize.Comma(int64(attempts)), //nolint:gosec // Attempt counts stay far below int64 range
		"elapsed", elapsed.Round(time.Millisecond))
	simstate.Logger.Debug("Matched candidate", "plaintext", candidate)
}

// Exhausted logs an unsuccessful run.
func Exhausted(attempts uint64, elapsed time.Duration) {
	simstate.Logger.Info("Password not found",
		"attempts", humanize.Comma(int64(attempts)), //nolint:gosec // Attempt counts stay far below int64 range
		"elapsed", elapsed.Round(time.Millisecond))
}

// Rejected logs a safety-gate rejection. The raw target is shown truncated so
// real-looking material never lands in logs wholesale.
func Rejected(rawTarget string, err error) {
	const previewLen = 8

	preview := rawTarget
	if len(preview) > previewLen {
		preview = preview[:previewLen] + "..."
	}

	simstate.Logger.Error("Target rejected, not a synthetic hash", "target", preview, "error", err)
}

// RunStats logs the derived statistics of a completed run.
func RunStats(method string, attempts uint64, elapsed time.Duration, rate float64, success bool) {
	simstate.Logger.Info("Run statistics",
		"method", method,
		"attempts", humanize.Comma(int64(attempts)), //nolint:gosec // Attempt counts stay far below int64 range
		"elapsed", elapsed.Round(time.Millisecond),
		"rate", progress.FormatRate(rate),
		"success", success)
}

// ShuttingDown logs an informational message at simulator shutdown.
func ShuttingDown() {
	simstate.Logger.Info("Shutting down GuessLab")
}

// Mask replaces every character of a candidate with an asterisk. Outward
// layers use this instead of the plaintext.
func Mask(candidate string) string {
	return strings.Repeat("*", len(candidate))
}
