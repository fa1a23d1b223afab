// Package generator implements the candidate generators behind the four
// guessing methods: exhaustive enumeration, dictionary with mutations,
// rule-based patterns, and the advisory (service-suggested) method. All
// generators produce deterministic, reproducible sequences except the
// network-backed advisory path. A generator instance carries iteration state
// and must not be shared across concurrent runs.
package generator

import "fmt"

// Method is the closed set of guessing strategies.
type Method int

// Guessing strategies.
const (
	BruteForce Method = iota
	Dictionary
	RuleBased
	Advisory
)

// Wire tokens accepted from callers.
const (
	tokenBruteForce = "brute_force"
	tokenDictionary = "dictionary"
	tokenRuleBased  = "rule_based"
	tokenAdvisory   = "ai"
)

// ParseMethod converts a caller-supplied method token into a Method.
func ParseMethod(token string) (Method, error) {
	switch token {
	case tokenBruteForce:
		return BruteForce, nil
	case tokenDictionary:
		return Dictionary, nil
	case tokenRuleBased:
		return RuleBased, nil
	case tokenAdvisory:
		return Advisory, nil
	default:
		return 0, fmt.Errorf("unknown attack method: %q", token)
	}
}

// Token returns the wire token for the method.
func (m Method) Token() string {
	switch m {
	case BruteForce:
		return tokenBruteForce
	case Dictionary:
		return tokenDictionary
	case RuleBased:
		return tokenRuleBased
	case Advisory:
		return tokenAdvisory
	default:
		return "unknown"
	}
}

// String returns a human-readable method name.
func (m Method) String() string {
	switch m {
	case BruteForce:
		return "Brute Force"
	case Dictionary:
		return "Dictionary"
	case RuleBased:
		return "Rule-Based"
	case Advisory:
		return "AI-Advised"
	default:
		return "Unknown"
	}
}

// Generator produces candidate strings one at a time. Next returns the next
// candidate and true, or the zero value and false once the sequence is
// exhausted. Implementations are single-use iterators; construct a fresh
// instance to restart a sequence.
type Generator interface {
	Next() (string, bool)
}
