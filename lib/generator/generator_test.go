package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected Method
		wantErr  bool
	}{
		{name: "brute force token", token: "brute_force", expected: BruteForce},
		{name: "dictionary token", token: "dictionary", expected: Dictionary},
		{name: "rule based token", token: "rule_based", expected: RuleBased},
		{name: "advisory token", token: "ai", expected: Advisory},
		{name: "unknown token rejected", token: "rainbow_table", wantErr: true},
		{name: "empty token rejected", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method, err := ParseMethod(tt.token)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, method)
		})
	}
}

func TestMethod_TokenRoundTrip(t *testing.T) {
	for _, method := range []Method{BruteForce, Dictionary, RuleBased, Advisory} {
		parsed, err := ParseMethod(method.Token())
		require.NoError(t, err)
		assert.Equal(t, method, parsed)
	}
}

// drain pulls every remaining candidate from a generator.
func drain(g Generator) []string {
	var out []string
	for candidate, ok := g.Next(); ok; candidate, ok = g.Next() {
		out = append(out, candidate)
	}

	return out
}
