package attack

import (
	"strconv"
	"time"
)

// Stats is the derived view of a completed run used for reporting.
type Stats struct {
	Method            string            `json:"method"`
	Success           bool              `json:"success"`
	Attempts          uint64            `json:"attempts"`
	Elapsed           time.Duration     `json:"elapsed"`
	AttemptsPerSecond float64           `json:"attempts_per_second"`
	Metadata          map[string]string `json:"metadata,omitempty"`
}

// Summarize derives reporting statistics from a completed outcome.
func Summarize(outcome *Outcome) Stats {
	stats := Stats{
		Method:   outcome.Method.String(),
		Success:  outcome.Found,
		Attempts: outcome.Attempts,
		Elapsed:  outcome.Elapsed,
		Metadata: map[string]string{},
	}

	if seconds := outcome.Elapsed.Seconds(); seconds > 0 {
		stats.AttemptsPerSecond = float64(outcome.Attempts) / seconds
	}

	if outcome.ErrorDetail != "" {
		stats.Metadata["error"] = outcome.ErrorDetail
	}

	if outcome.Analysis != nil {
		stats.Metadata["recommendation"] = outcome.Analysis.Recommendation
		stats.Metadata["probability"] = outcome.Analysis.Probability
		stats.Metadata["degraded"] = strconv.FormatBool(outcome.Degraded)
	}

	return stats
}

// Session is an append-only aggregation of outcomes from one interactive
// session.
type Session struct {
	outcomes []*Outcome
}

// Append records a completed outcome.
func (s *Session) Append(outcome *Outcome) {
	s.outcomes = append(s.outcomes, outcome)
}

// Outcomes returns the recorded outcomes in append order.
func (s *Session) Outcomes() []*Outcome {
	return s.outcomes
}

// Totals reports the aggregate attempt count, number of successful runs, and
// summed elapsed time across the session.
func (s *Session) Totals() (attempts uint64, found int, elapsed time.Duration) {
	for _, o := range s.outcomes {
		attempts += o.Attempts
		elapsed += o.Elapsed

		if o.Found {
			found++
		}
	}

	return attempts, found, elapsed
}
