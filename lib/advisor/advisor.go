// Package advisor abstracts the external text-generation service behind a
// narrow two-call interface so the concrete provider is swappable and all
// fallback logic stays provider-agnostic. Service failures of any kind
// (unreachable, timeout, rate limited) are reported uniformly as
// ErrUnavailable; malformed-but-received responses are repaired locally and
// never surfaced as errors.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnavailable indicates the text-generation service could not be used at
// all: network failure, authentication failure, timeout, or rate limiting.
var ErrUnavailable = errors.New("advisory service unavailable")

const maxCandidates = 15 // Upper bound on the service-suggested candidate list

// Analysis is the structured response requested from the service: a
// recommended strategy, its rationale, a coarse probability band, and any
// textual patterns the service noticed.
type Analysis struct {
	Recommendation string   `json:"recommendation"`
	Reasoning      string   `json:"reasoning"`
	Probability    string   `json:"probability"`
	Patterns       []string `json:"patterns"`
}

// DefaultAnalysis is the fixed record substituted when the structured
// response cannot be parsed. Analysis parsing is best-effort and must never
// abort a run.
func DefaultAnalysis() Analysis {
	return Analysis{
		Recommendation: "hybrid",
		Reasoning:      "AI analysis unavailable, using fallback",
		Probability:    "medium",
		Patterns:       []string{},
	}
}

// Service is the narrow contract every provider implements.
type Service interface {
	// GenerateStructured asks for an Analysis of the target. Unparseable
	// responses are replaced by DefaultAnalysis; the returned error is
	// non-nil only for service failures.
	GenerateStructured(ctx context.Context, prompt string) (Analysis, error)

	// GenerateList asks for a short plaintext candidate list, one per line,
	// capped at 15 entries.
	GenerateList(ctx context.Context, prompt string) ([]string, error)
}

// AnalysisPrompt builds the structured-analysis prompt. Only the target
// digest and the caller-supplied context are ever sent to the service.
func AnalysisPrompt(targetDigest, callerContext string) string {
	if callerContext == "" {
		callerContext = "No specific context provided"
	}

	return fmt.Sprintf(`You are a cybersecurity expert analyzing a password hash for educational purposes.

Hash: %s
Context: %s

Based on this information, provide:
1. Recommended attack strategy (brute force, dictionary, rule-based, or hybrid)
2. Reasoning for the recommendation
3. Estimated success probability
4. Any patterns you notice

Respond in JSON format:
{
    "recommendation": "attack_type",
    "reasoning": "explanation",
    "probability": "high/medium/low",
    "patterns": ["pattern1", "pattern2"]
}

IMPORTANT: This is for educational simulation only. Only provide general security insights.`,
		targetDigest, callerContext)
}

// CandidatesPrompt builds the candidate-list prompt.
func CandidatesPrompt(targetDigest, callerContext string) string {
	if callerContext == "" {
		callerContext = "No specific context"
	}

	return fmt.Sprintf(`Generate 10-15 password candidates based on this context:

Hash: %s
Context: %s

Consider:
- Common password patterns
- Context-appropriate words
- Common variations (numbers, symbols, capitalization)
- Keyboard patterns

Return only the passwords, one per line, no explanations.`,
		targetDigest, callerContext)
}

// ParseAnalysis extracts an Analysis from raw model text. Models often wrap
// JSON in code fences or prose, so it scans for the outermost JSON object.
// Any parse failure falls back to DefaultAnalysis.
func ParseAnalysis(text string) Analysis {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start < 0 || end <= start {
		return DefaultAnalysis()
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(text[start:end+1]), &analysis); err != nil {
		return DefaultAnalysis()
	}

	if analysis.Recommendation == "" {
		return DefaultAnalysis()
	}

	if analysis.Patterns == nil {
		analysis.Patterns = []string{}
	}

	return analysis
}

// ParseCandidateList splits raw model text into candidate lines, trimming
// whitespace and list markers, and capping the result at 15 entries.
func ParseCandidateList(text string) []string {
	lines := strings.Split(text, "\n")
	candidates := make([]string, 0, len(lines))

	for _, line := range lines {
		candidate := strings.TrimSpace(line)
		candidate = strings.TrimLeft(candidate, "-*0123456789. ")

		if candidate == "" {
			continue
		}

		candidates = append(candidates, candidate)
		if len(candidates) == maxCandidates {
			break
		}
	}

	return candidates
}
