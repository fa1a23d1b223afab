// Package safety implements the gate that refuses to operate on anything
// resembling a real credential hash. The check is a heuristic prefix and
// substring scan over known real-world hash format markers, not a guarantee;
// it exists to keep the simulator pointed at synthetic digests only.
package safety

import (
	"fmt"
	"strings"
)

// suspiciousPrefixes are markers that real credential stores put at the start
// of a hash string (bcrypt and crypt variants).
var suspiciousPrefixes = []string{ //nolint:gochecknoglobals // Fixed rejection list
	"$2a$", // bcrypt
	"$2b$", // bcrypt
	"$1$",  // MD5 crypt
	"$5$",  // SHA-256 crypt
	"$6$",  // SHA-512 crypt
}

// suspiciousSubstrings are markers that may appear anywhere in a serialized
// real-world hash. Matched case-sensitively, as given.
var suspiciousSubstrings = []string{ //nolint:gochecknoglobals // Fixed rejection list
	"pbkdf2",
	"scrypt",
}

// UnsafeTargetError is returned when a target matches a real-world hash
// format marker. The attack runner must not produce any candidates for such
// a target.
type UnsafeTargetError struct {
	Marker string
}

func (e *UnsafeTargetError) Error() string {
	return fmt.Sprintf("target matches real-world hash marker %q; only synthetic hashes are allowed", e.Marker)
}

// AssertSynthetic rejects raw targets that carry a real-world hash format
// marker. It runs once per attack request, before any generator executes.
func AssertSynthetic(rawTarget string) error {
	for _, prefix := range suspiciousPrefixes {
		if strings.HasPrefix(rawTarget, prefix) {
			return &UnsafeTargetError{Marker: prefix}
		}
	}

	for _, marker := range suspiciousSubstrings {
		if strings.Contains(rawTarget, marker) {
			return &UnsafeTargetError{Marker: marker}
		}
	}

	return nil
}
