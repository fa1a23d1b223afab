// Package attack drives a candidate generator against the hash oracle: it
// gates the target through the safety check, pulls candidates strictly once
// each, counts every comparison, and stops at first match or exhaustion. One
// Runner instance owns one run; nothing here is shared across concurrent runs.
package attack

import (
	"time"

	"github.com/p1xelfault/guesslab/lib/advisor"
	"github.com/p1xelfault/guesslab/lib/generator"
	"github.com/p1xelfault/guesslab/lib/oracle"
)

// State is the runner's lifecycle state.
type State int

// Runner lifecycle states.
const (
	StateIdle State = iota
	StateRunning
	StateTerminated
)

// TerminalReason records how a run ended.
type TerminalReason string

// Terminal reasons.
const (
	ReasonFound     TerminalReason = "found"
	ReasonExhausted TerminalReason = "exhausted"
	ReasonRejected  TerminalReason = "rejected"
)

// Request describes one attack run. Constructed once per invocation and read
// only afterwards.
type Request struct {
	RawTarget string            // RawTarget is the target digest exactly as supplied; safety-gated before parsing.
	Algorithm oracle.Algorithm  // Algorithm is the digest algorithm the target was declared with.
	Method    generator.Method  // Method selects the candidate generator.
	MaxLength int               // MaxLength bounds the exhaustive method; clamped to [1,8].
	Alphabet  string            // Alphabet overrides the exhaustive method's default character set.
	Words     []string          // Words is the loaded word list for the dictionary method.
	Context   string            // Context is caller-supplied free text for the advisory method.
}

// Outcome is the immutable result of one completed run. Attempts always
// equals the number of oracle comparisons actually performed, including the
// comparison that matched.
type Outcome struct {
	SessionID   string            // SessionID uniquely identifies this run.
	Method      generator.Method  // Method is the generator that produced the run.
	Reason      TerminalReason    // Reason records how the run terminated.
	Found       bool              // Found reports whether a candidate matched.
	Candidate   string            // Candidate is the matched plaintext. Local consumption only; outward layers must mask it.
	Attempts    uint64            // Attempts is the number of oracle comparisons performed.
	Elapsed     time.Duration     // Elapsed is the wall-clock duration of the run.
	ErrorDetail string            // ErrorDetail carries a description of any failure converted into an exhausted outcome.
	Analysis    *advisor.Analysis // Analysis is the advisory method's structured analysis, nil for other methods.
	Degraded    bool              // Degraded reports that the advisory method fell back to its fixed list.
}
