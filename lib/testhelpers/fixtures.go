package testhelpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/p1xelfault/guesslab/lib/advisor"
	"github.com/p1xelfault/guesslab/lib/oracle"
)

// Known digests of the string "password", used as stable test vectors.
const (
	PasswordSHA256 = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"
	PasswordSHA1   = "5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8"
	PasswordMD5    = "5f4dcc3b5aa765d61d8327deb882cf99"
)

// MustDigest computes a digest or fails the test.
func MustDigest(t *testing.T, candidate string, algorithm oracle.Algorithm) oracle.Digest {
	t.Helper()

	digest, err := oracle.Compute(candidate, algorithm)
	require.NoError(t, err, "computing %s digest of %q", algorithm, candidate)

	return digest
}

// StubService is a canned advisor.Service implementation for generator and
// runner tests that must not touch the network.
type StubService struct {
	Analysis      advisor.Analysis
	AnalysisErr   error
	Candidates    []string
	CandidatesErr error

	StructuredCalls int
	ListCalls       int
}

// Compile-time interface compliance check.
var _ advisor.Service = (*StubService)(nil)

// GenerateStructured returns the canned analysis or error.
func (s *StubService) GenerateStructured(_ context.Context, _ string) (advisor.Analysis, error) {
	s.StructuredCalls++

	if s.AnalysisErr != nil {
		return advisor.Analysis{}, s.AnalysisErr
	}

	return s.Analysis, nil
}

// GenerateList returns the canned candidate list or error.
func (s *StubService) GenerateList(_ context.Context, _ string) ([]string, error) {
	s.ListCalls++

	if s.CandidatesErr != nil {
		return nil, s.CandidatesErr
	}

	return s.Candidates, nil
}
