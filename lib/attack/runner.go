package attack

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/google/uuid"

	"github.com/p1xelfault/guesslab/lib/advisor"
	"github.com/p1xelfault/guesslab/lib/display"
	"github.com/p1xelfault/guesslab/lib/generator"
	"github.com/p1xelfault/guesslab/lib/oracle"
	"github.com/p1xelfault/guesslab/lib/safety"
	"github.com/p1xelfault/guesslab/simstate"
)

// ErrRunnerReused indicates Run was called on a runner that already ran.
var ErrRunnerReused = errors.New("attack runner instances are single-use; construct a new one per run")

// Runner owns the mutable state of exactly one attack run: the attempt
// counter, the timer, and the lifecycle state. Never share a Runner (or its
// generator) across concurrent runs.
type Runner struct {
	service  advisor.Service
	state    State
	reason   TerminalReason
	attempts uint64
}

// NewRunner builds a runner. The service is only consulted for advisory runs
// and may be nil for the other methods.
func NewRunner(service advisor.Service) *Runner {
	return &Runner{service: service, state: StateIdle}
}

// State returns the runner's lifecycle state.
func (r *Runner) State() State {
	return r.state
}

// Reason returns how the run terminated; meaningful only once the runner is
// in StateTerminated.
func (r *Runner) Reason() TerminalReason {
	return r.reason
}

// Run executes the request to completion. Only a rejected target prevents an
// Outcome from being produced; every other failure path still yields a
// well-formed Outcome, possibly with an ErrorDetail.
func (r *Runner) Run(ctx context.Context, req Request) (*Outcome, error) {
	if r.state != StateIdle {
		return nil, ErrRunnerReused
	}

	if err := safety.AssertSynthetic(req.RawTarget); err != nil {
		r.state = StateTerminated
		r.reason = ReasonRejected
		display.Rejected(req.RawTarget, err)

		return nil, err
	}

	r.state = StateRunning
	started := time.Now()

	outcome := &Outcome{
		SessionID: uuid.NewString(),
		Method:    req.Method,
	}

	target, err := oracle.NewDigest(req.RawTarget, req.Algorithm)
	if err != nil {
		return r.terminate(outcome, started, ReasonExhausted, err), nil
	}

	gen, err := r.buildGenerator(ctx, req, target, outcome)
	if err != nil {
		return r.terminate(outcome, started, ReasonExhausted, err), nil
	}

	display.AttackStarted(req.Method.String(), string(target.Algorithm))

	found, candidate, err := r.iterate(ctx, gen, target, req.Method)
	if err != nil {
		return r.terminate(outcome, started, ReasonExhausted, err), nil
	}

	if found {
		outcome.Found = true
		outcome.Candidate = candidate

		return r.terminate(outcome, started, ReasonFound, nil), nil
	}

	return r.terminate(outcome, started, ReasonExhausted, nil), nil
}

// iterate pulls candidates strictly once each, incrementing the attempt
// counter for every comparison performed, including the one that matches.
func (r *Runner) iterate(ctx context.Context, gen generator.Generator, target oracle.Digest, method generator.Method) (bool, string, error) {
	bar := r.startProgressBar(gen, method)
	if bar != nil {
		defer bar.Finish()
	}

	var keyspace uint64
	if bf, ok := gen.(*generator.BruteForceGenerator); ok {
		keyspace = bf.Keyspace()
	}

	for {
		if err := ctx.Err(); err != nil {
			return false, "", fmt.Errorf("run abandoned: %w", err)
		}

		candidate, ok := gen.Next()
		if !ok {
			return false, "", nil
		}

		r.attempts++

		if bar != nil {
			bar.Increment()
		}

		if interval := simstate.State.ProgressInterval; interval > 0 && r.attempts%interval == 0 {
			display.Progress(r.attempts, keyspace, candidate)
		}

		matched, err := oracle.Matches(candidate, target)
		if err != nil {
			return false, "", err
		}

		if matched {
			return true, candidate, nil
		}
	}
}

// buildGenerator constructs the candidate generator for the request's method.
func (r *Runner) buildGenerator(ctx context.Context, req Request, target oracle.Digest, outcome *Outcome) (generator.Generator, error) {
	switch req.Method {
	case generator.BruteForce:
		return generator.NewBruteForce(req.Alphabet, req.MaxLength), nil
	case generator.Dictionary:
		return generator.NewDictionary(req.Words), nil
	case generator.RuleBased:
		return generator.NewRuleBased(), nil
	case generator.Advisory:
		if r.service == nil {
			return nil, errors.New("advisory method requires an advisor service")
		}

		adv := generator.NewAdvisory(ctx, r.service, target, req.Context)
		analysis := adv.Analysis()
		outcome.Analysis = &analysis
		outcome.Degraded = adv.Degraded()

		return adv, nil
	default:
		return nil, fmt.Errorf("no generator for method %v", req.Method)
	}
}

// startProgressBar attaches a terminal progress bar for exhaustive runs when
// enabled. Other methods have no precomputable keyspace worth a bar.
func (r *Runner) startProgressBar(gen generator.Generator, method generator.Method) *pb.ProgressBar {
	if method != generator.BruteForce || !simstate.State.ShowProgressBar {
		return nil
	}

	bf, ok := gen.(*generator.BruteForceGenerator)
	if !ok {
		return nil
	}

	return pb.Start64(int64(bf.Keyspace())) //nolint:gosec // Keyspace is clamped well below int64 range
}

// terminate stamps the final state onto the outcome and transitions the
// runner to Terminated. A non-nil err is recorded as detail, never escalated.
func (r *Runner) terminate(outcome *Outcome, started time.Time, reason TerminalReason, err error) *Outcome {
	r.state = StateTerminated
	r.reason = reason

	outcome.Reason = reason
	outcome.Attempts = r.attempts
	outcome.Elapsed = time.Since(started)

	if err != nil {
		outcome.ErrorDetail = err.Error()
		simstate.ErrorLogger.Error("Run ended early", "error", err, "attempts", r.attempts)
	}

	switch reason {
	case ReasonFound:
		display.Found(outcome.Candidate, outcome.Attempts, outcome.Elapsed)
	case ReasonExhausted:
		display.Exhausted(outcome.Attempts, outcome.Elapsed)
	case ReasonRejected:
	}

	return outcome
}
