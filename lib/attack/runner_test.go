package attack

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p1xelfault/guesslab/lib/advisor"
	"github.com/p1xelfault/guesslab/lib/generator"
	"github.com/p1xelfault/guesslab/lib/oracle"
	"github.com/p1xelfault/guesslab/lib/safety"
	"github.com/p1xelfault/guesslab/lib/testhelpers"
)

func TestRunner_RejectsRealWorldTarget(t *testing.T) {
	svc := &testhelpers.StubService{}
	runner := NewRunner(svc)

	outcome, err := runner.Run(context.Background(), Request{
		RawTarget: "$2b$10$abcdefghijklmnopqrstuv",
		Algorithm: oracle.SHA256,
		Method:    generator.Advisory,
	})

	var unsafeErr *safety.UnsafeTargetError
	require.ErrorAs(t, err, &unsafeErr)
	assert.Nil(t, outcome)

	assert.Equal(t, StateTerminated, runner.State())
	assert.Equal(t, ReasonRejected, runner.Reason())

	// Nothing runs after rejection: no generator, no service calls.
	assert.Zero(t, svc.StructuredCalls)
	assert.Zero(t, svc.ListCalls)
}

func TestRunner_DictionaryFindsMutation(t *testing.T) {
	target := testhelpers.MustDigest(t, "cat123", oracle.SHA256)

	runner := NewRunner(nil)

	outcome, err := runner.Run(context.Background(), Request{
		RawTarget: target.Hex,
		Algorithm: oracle.SHA256,
		Method:    generator.Dictionary,
		Words:     []string{"cat"},
	})

	require.NoError(t, err)
	assert.True(t, outcome.Found)
	assert.Equal(t, "cat123", outcome.Candidate)
	assert.Equal(t, ReasonFound, outcome.Reason)

	// cat, Cat, cat123: the matching comparison is counted too.
	assert.Equal(t, uint64(3), outcome.Attempts)
}

func TestRunner_BruteForceFindsTarget(t *testing.T) {
	target := testhelpers.MustDigest(t, "ab", oracle.MD5)

	runner := NewRunner(nil)

	outcome, err := runner.Run(context.Background(), Request{
		RawTarget: target.Hex,
		Algorithm: oracle.MD5,
		Method:    generator.BruteForce,
		Alphabet:  "ab",
		MaxLength: 2,
	})

	require.NoError(t, err)
	assert.True(t, outcome.Found)
	assert.Equal(t, "ab", outcome.Candidate)

	// a, b, aa, ab.
	assert.Equal(t, uint64(4), outcome.Attempts)
}

func TestRunner_BruteForceExhausts(t *testing.T) {
	target := testhelpers.MustDigest(t, "zzz", oracle.SHA1)

	runner := NewRunner(nil)

	outcome, err := runner.Run(context.Background(), Request{
		RawTarget: target.Hex,
		Algorithm: oracle.SHA1,
		Method:    generator.BruteForce,
		Alphabet:  "ab",
		MaxLength: 2,
	})

	require.NoError(t, err)
	assert.False(t, outcome.Found)
	assert.Empty(t, outcome.Candidate)
	assert.Equal(t, ReasonExhausted, outcome.Reason)
	assert.Equal(t, uint64(6), outcome.Attempts, "full keyspace of ab up to length 2")
}

func TestRunner_RuleBasedFindsKeyboardPattern(t *testing.T) {
	target := testhelpers.MustDigest(t, "qwerty", oracle.SHA256)

	runner := NewRunner(nil)

	outcome, err := runner.Run(context.Background(), Request{
		RawTarget: target.Hex,
		Algorithm: oracle.SHA256,
		Method:    generator.RuleBased,
	})

	require.NoError(t, err)
	assert.True(t, outcome.Found)
	assert.Equal(t, "qwerty", outcome.Candidate)
	assert.Positive(t, outcome.Attempts)
}

func TestRunner_AttemptCountIdempotent(t *testing.T) {
	target := testhelpers.MustDigest(t, "qwerty", oracle.SHA256)

	req := Request{
		RawTarget: target.Hex,
		Algorithm: oracle.SHA256,
		Method:    generator.RuleBased,
	}

	first, err := NewRunner(nil).Run(context.Background(), req)
	require.NoError(t, err)

	second, err := NewRunner(nil).Run(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Attempts, second.Attempts, "repeated runs of a deterministic method must agree")
	assert.Equal(t, first.Candidate, second.Candidate)
	assert.NotEqual(t, first.SessionID, second.SessionID, "each run gets its own session")
}

func TestRunner_AdvisoryDegradedStaysOffline(t *testing.T) {
	target := testhelpers.MustDigest(t, "nosuchpassword", oracle.SHA256)

	svc := &testhelpers.StubService{AnalysisErr: advisor.ErrUnavailable}
	runner := NewRunner(svc)

	outcome, err := runner.Run(context.Background(), Request{
		RawTarget: target.Hex,
		Algorithm: oracle.SHA256,
		Method:    generator.Advisory,
		Context:   "anything",
	})

	require.NoError(t, err)
	assert.False(t, outcome.Found)
	assert.True(t, outcome.Degraded)
	assert.LessOrEqual(t, outcome.Attempts, uint64(10), "degraded runs use the fixed ten-entry list")

	require.NotNil(t, outcome.Analysis)
	assert.Equal(t, advisor.DefaultAnalysis(), *outcome.Analysis)

	assert.Equal(t, 1, svc.StructuredCalls)
	assert.Zero(t, svc.ListCalls, "no second service call after the first failure")
}

func TestRunner_AdvisoryFindsInHybridPhase(t *testing.T) {
	target := testhelpers.MustDigest(t, "gym123", oracle.SHA256)

	svc := &testhelpers.StubService{
		Analysis:   advisor.DefaultAnalysis(),
		Candidates: []string{"notit"},
	}
	runner := NewRunner(svc)

	outcome, err := runner.Run(context.Background(), Request{
		RawTarget: target.Hex,
		Algorithm: oracle.SHA256,
		Method:    generator.Advisory,
		Context:   "gym",
	})

	require.NoError(t, err)
	assert.True(t, outcome.Found)
	assert.Equal(t, "gym123", outcome.Candidate)
	assert.False(t, outcome.Degraded)

	// notit, gym, Gym, GYM, gym123: one counter across both phases.
	assert.Equal(t, uint64(5), outcome.Attempts)
}

func TestRunner_AdvisoryWithoutService(t *testing.T) {
	target := testhelpers.MustDigest(t, "whatever", oracle.SHA256)

	runner := NewRunner(nil)

	outcome, err := runner.Run(context.Background(), Request{
		RawTarget: target.Hex,
		Algorithm: oracle.SHA256,
		Method:    generator.Advisory,
	})

	require.NoError(t, err)
	assert.False(t, outcome.Found)
	assert.Equal(t, ReasonExhausted, outcome.Reason)
	assert.Contains(t, outcome.ErrorDetail, "advisor service")
	assert.Zero(t, outcome.Attempts)
}

func TestRunner_MalformedDigest(t *testing.T) {
	runner := NewRunner(nil)

	outcome, err := runner.Run(context.Background(), Request{
		RawTarget: "not-a-digest",
		Algorithm: oracle.SHA256,
		Method:    generator.BruteForce,
	})

	require.NoError(t, err)
	assert.False(t, outcome.Found)
	assert.Equal(t, ReasonExhausted, outcome.Reason)
	assert.NotEmpty(t, outcome.ErrorDetail)
	assert.Zero(t, outcome.Attempts)
}

func TestRunner_CancelledContext(t *testing.T) {
	target := testhelpers.MustDigest(t, "unfindable", oracle.SHA256)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(nil)

	outcome, err := runner.Run(ctx, Request{
		RawTarget: target.Hex,
		Algorithm: oracle.SHA256,
		Method:    generator.RuleBased,
	})

	require.NoError(t, err)
	assert.False(t, outcome.Found)
	assert.Zero(t, outcome.Attempts, "cancellation before the first pull produces no comparisons")
	assert.True(t, strings.Contains(outcome.ErrorDetail, context.Canceled.Error()))
}

func TestRunner_SingleUse(t *testing.T) {
	target := testhelpers.MustDigest(t, "cat", oracle.SHA256)

	req := Request{
		RawTarget: target.Hex,
		Algorithm: oracle.SHA256,
		Method:    generator.Dictionary,
		Words:     []string{"cat"},
	}

	runner := NewRunner(nil)

	_, err := runner.Run(context.Background(), req)
	require.NoError(t, err)

	outcome, err := runner.Run(context.Background(), req)
	assert.ErrorIs(t, err, ErrRunnerReused)
	assert.Nil(t, outcome)
}
