package safety

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssertSynthetic_RejectsRealWorldMarkers(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedMarker string
	}{
		{
			name:           "bcrypt 2b prefix",
			target:         "$2b$10$abcdefghijklmnopqrstuv",
			expectedMarker: "$2b$",
		},
		{
			name:           "bcrypt 2a prefix",
			target:         "$2a$12$N9qo8uLOickgx2ZMRZoMye",
			expectedMarker: "$2a$",
		},
		{
			name:           "md5 crypt prefix",
			target:         "$1$salt$qJH7.N4xYta3aEG/dfqo/0",
			expectedMarker: "$1$",
		},
		{
			name:           "sha256 crypt prefix",
			target:         "$5$rounds=5000$salt$hashhashhash",
			expectedMarker: "$5$",
		},
		{
			name:           "sha512 crypt prefix",
			target:         "$6$salt$longhashvalue",
			expectedMarker: "$6$",
		},
		{
			name:           "pbkdf2 anywhere in the string",
			target:         "pbkdf2_sha256$600000$salt$hash",
			expectedMarker: "pbkdf2",
		},
		{
			name:           "scrypt anywhere in the string",
			target:         "prefix-scrypt-suffix",
			expectedMarker: "scrypt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AssertSynthetic(tt.target)

			var unsafeErr *UnsafeTargetError
			require.ErrorAs(t, err, &unsafeErr)
			assert.Equal(t, tt.expectedMarker, unsafeErr.Marker)
		})
	}
}

func TestAssertSynthetic_AcceptsSyntheticTargets(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "md5 hex digest", target: "5f4dcc3b5aa765d61d8327deb882cf99"},
		{name: "sha1 hex digest", target: "5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8"},
		{name: "sha256 hex digest", target: strings.Repeat("ab", 32)},
		{name: "empty string", target: ""},
		{name: "marker prefix mid-string is not a prefix match", target: "aa$2b$bb"},
		{name: "uppercase PBKDF2 is not matched", target: "PBKDF2-style-string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, AssertSynthetic(tt.target))
		})
	}
}
