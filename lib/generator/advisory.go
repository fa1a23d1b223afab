package generator

import (
	"context"
	"strings"

	"github.com/duke-git/lancet/v2/strutil"

	"github.com/p1xelfault/guesslab/lib/advisor"
	"github.com/p1xelfault/guesslab/lib/oracle"
	"github.com/p1xelfault/guesslab/simstate"
)

const minTokenLength = 3 // Context tokens shorter than this carry no signal

// minimalFallback is the fixed candidate list used when the advisory service
// is entirely unreachable. Exactly ten entries.
var minimalFallback = []string{ //nolint:gochecknoglobals // Fixed fallback list
	"password", "123456", "qwerty", "admin", "letmein",
	"welcome", "monkey", "dragon", "master", "freedom",
}

// hybridCommon is the short common-password tail of the hybrid fallback list.
var hybridCommon = []string{"password", "admin", "123456", "qwerty", "letmein"} //nolint:gochecknoglobals // Fixed list

// AdvisoryGenerator yields candidates suggested by the external
// text-generation service, then a deterministic hybrid fallback list built
// from the caller-supplied context. Both external calls happen once at
// construction; iteration itself never touches the network. When the service
// is unreachable the generator degrades to the fixed ten-password list and
// makes no further network calls.
type AdvisoryGenerator struct {
	analysis advisor.Analysis
	phase1   []string
	phase2   []string
	pos      int
	degraded bool
}

// NewAdvisory consults the service for an analysis and a candidate list and
// builds the two-phase sequence. It never fails: every service failure path
// degrades to a local list. Only the target digest and the caller-supplied
// context are ever included in prompts.
func NewAdvisory(ctx context.Context, svc advisor.Service, target oracle.Digest, callerContext string) *AdvisoryGenerator {
	g := &AdvisoryGenerator{}

	analysis, err := svc.GenerateStructured(ctx, advisor.AnalysisPrompt(target.Hex, callerContext))
	if err != nil {
		simstate.Logger.Warn("Advisory service unreachable, degrading to fixed fallback list", "error", err)
		g.analysis = advisor.DefaultAnalysis()
		g.degraded = true
		g.phase1 = minimalFallback

		return g
	}

	g.analysis = analysis

	candidates, err := svc.GenerateList(ctx, advisor.CandidatesPrompt(target.Hex, callerContext))
	if err != nil {
		simstate.Logger.Warn("Advisory candidate call unreachable, degrading to fixed fallback list", "error", err)
		g.degraded = true
		g.phase1 = minimalFallback

		return g
	}

	simstate.Logger.Info("Advisory analysis received",
		"recommendation", g.analysis.Recommendation, "probability", g.analysis.Probability,
		"suggested_candidates", len(candidates))

	g.phase1 = candidates
	g.phase2 = hybridCandidates(callerContext, g.analysis)

	return g
}

// Analysis returns the structured analysis backing this run. When the service
// response was unusable this is the fixed default record.
func (g *AdvisoryGenerator) Analysis() advisor.Analysis {
	return g.analysis
}

// Degraded reports whether the generator fell back to the fixed list because
// the service was unreachable.
func (g *AdvisoryGenerator) Degraded() bool {
	return g.degraded
}

// Phase returns 1 while service-suggested candidates are being produced and 2
// during the hybrid fallback. Attempt counters accumulate across phases.
func (g *AdvisoryGenerator) Phase() int {
	if g.pos > len(g.phase1) {
		return 2
	}

	return 1
}

// Next yields the next candidate: phase 1 (suggested list) first, then
// phase 2 (hybrid fallback).
func (g *AdvisoryGenerator) Next() (string, bool) {
	if g.pos < len(g.phase1) {
		candidate := g.phase1[g.pos]
		g.pos++

		return candidate, true
	}

	idx := g.pos - len(g.phase1)
	if idx < len(g.phase2) {
		g.pos++

		return g.phase2[idx], true
	}

	return "", false
}

// hybridCandidates derives candidates from whitespace-split context tokens,
// the analysis's noticed patterns, and a short common-password tail. Fully
// deterministic for a given context and analysis.
func hybridCandidates(callerContext string, analysis advisor.Analysis) []string {
	var candidates []string

	for _, token := range strings.Fields(strings.ToLower(callerContext)) {
		if len(token) < minTokenLength {
			continue
		}

		candidates = append(candidates,
			token,
			strutil.Capitalize(token),
			strings.ToUpper(token),
			token+"123",
			"123"+token,
			token+"!",
			"!"+token,
		)
	}

	for _, pattern := range analysis.Patterns {
		if len(pattern) >= minTokenLength {
			candidates = append(candidates, pattern)
		}
	}

	candidates = append(candidates, hybridCommon...)

	return candidates
}
