package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p1xelfault/guesslab/lib/advisor"
	"github.com/p1xelfault/guesslab/lib/oracle"
	"github.com/p1xelfault/guesslab/lib/testhelpers"
)

func TestAdvisory_TwoPhaseSequence(t *testing.T) {
	target := testhelpers.MustDigest(t, "password", oracle.SHA256)

	svc := &testhelpers.StubService{
		Analysis: advisor.Analysis{
			Recommendation: "dictionary",
			Reasoning:      "looks like a common word",
			Probability:    "high",
			Patterns:       []string{"lowercase"},
		},
		Candidates: []string{"password", "passw0rd"},
	}

	g := NewAdvisory(context.Background(), svc, target, "office worker")

	assert.False(t, g.Degraded())
	assert.Equal(t, "dictionary", g.Analysis().Recommendation)
	assert.Equal(t, 1, svc.StructuredCalls)
	assert.Equal(t, 1, svc.ListCalls)

	// Phase 1 yields the suggested list in order.
	first, ok := g.Next()
	require.True(t, ok)
	assert.Equal(t, "password", first)
	assert.Equal(t, 1, g.Phase())

	second, ok := g.Next()
	require.True(t, ok)
	assert.Equal(t, "passw0rd", second)

	// Phase 2 starts with the first context-token variant.
	third, ok := g.Next()
	require.True(t, ok)
	assert.Equal(t, "office", third)
	assert.Equal(t, 2, g.Phase())
}

func TestAdvisory_HybridFallbackShape(t *testing.T) {
	target := testhelpers.MustDigest(t, "password", oracle.SHA256)

	svc := &testhelpers.StubService{
		Analysis: advisor.Analysis{
			Recommendation: "hybrid",
			Probability:    "medium",
			Patterns:       []string{"year suffix", "no"},
		},
		Candidates: []string{"seed"},
	}

	g := NewAdvisory(context.Background(), svc, target, "gym in 2020")

	candidates := drain(g)

	// Seed, then each token's seven variants, then the long-enough pattern,
	// then the common tail. "in" and "no" are below the length floor; case
	// variants of an all-digit token collapse to the token itself.
	expected := []string{
		"seed",
		"gym", "Gym", "GYM", "gym123", "123gym", "gym!", "!gym",
		"2020", "2020", "2020", "2020123", "1232020", "2020!", "!2020",
		"year suffix",
		"password", "admin", "123456", "qwerty", "letmein",
	}
	assert.Equal(t, expected, candidates)
}

func TestAdvisory_StructuredFailureDegrades(t *testing.T) {
	target := testhelpers.MustDigest(t, "password", oracle.SHA256)

	svc := &testhelpers.StubService{AnalysisErr: advisor.ErrUnavailable}

	g := NewAdvisory(context.Background(), svc, target, "any context")

	assert.True(t, g.Degraded())
	assert.Equal(t, advisor.DefaultAnalysis(), g.Analysis())
	assert.Equal(t, 1, svc.StructuredCalls)
	assert.Zero(t, svc.ListCalls, "no further service calls after the first failure")

	candidates := drain(g)
	assert.Len(t, candidates, 10)
	assert.Equal(t, "password", candidates[0])
	assert.Equal(t, "freedom", candidates[9])
}

func TestAdvisory_ListFailureDegrades(t *testing.T) {
	target := testhelpers.MustDigest(t, "password", oracle.SHA256)

	svc := &testhelpers.StubService{
		Analysis:      advisor.Analysis{Recommendation: "dictionary", Probability: "high"},
		CandidatesErr: advisor.ErrUnavailable,
	}

	g := NewAdvisory(context.Background(), svc, target, "any context")

	assert.True(t, g.Degraded())
	// The analysis arrived before the list call failed, so it is kept.
	assert.Equal(t, "dictionary", g.Analysis().Recommendation)
	assert.Len(t, drain(g), 10)
}

func TestAdvisory_EmptySuggestionsStillHybrid(t *testing.T) {
	target := testhelpers.MustDigest(t, "password", oracle.SHA256)

	svc := &testhelpers.StubService{
		Analysis:   advisor.DefaultAnalysis(),
		Candidates: nil,
	}

	g := NewAdvisory(context.Background(), svc, target, "")

	assert.False(t, g.Degraded())

	// No context tokens and no patterns: only the common tail remains.
	assert.Equal(t, []string{"password", "admin", "123456", "qwerty", "letmein"}, drain(g))
}
