package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		expected  string
	}{
		{name: "plain word", candidate: "password", expected: "********"},
		{name: "single character", candidate: "a", expected: "*"},
		{name: "empty string", candidate: "", expected: ""},
		{name: "symbols masked too", candidate: "p@ss!", expected: "*****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Mask(tt.candidate))
		})
	}
}

func TestMask_RevealsOnlyLength(t *testing.T) {
	masked := Mask("hunter2")

	assert.NotContains(t, masked, "hunter")
	assert.Len(t, masked, 7)
}
