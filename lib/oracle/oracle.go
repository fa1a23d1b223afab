// Package oracle implements the hash oracle: computing digests of candidate
// strings under a named algorithm and comparing them against a target digest.
// It also generates synthetic digests and a small fake-password corpus for
// demonstrations. Comparison is plain string equality, not constant-time;
// every digest handled here is synthetic, never a real authentication boundary.
package oracle

import (
	"crypto/md5"  //nolint:gosec // Weak hashes are the point of the simulation
	"crypto/rand"
	"crypto/sha1" //nolint:gosec // Weak hashes are the point of the simulation
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// Algorithm identifies one of the supported digest algorithms.
type Algorithm string

// Supported algorithms.
const (
	SHA256 Algorithm = "sha256"
	SHA1   Algorithm = "sha1"
	MD5    Algorithm = "md5"
)

// Digest hex lengths per algorithm.
const (
	md5HexLen    = 32
	sha1HexLen   = 40
	sha256HexLen = 64
)

const randomPasswordLength = 8

// UnsupportedAlgorithmError indicates an algorithm tag outside the supported
// set. This is a programming error on the caller's side, not a user input
// problem.
type UnsupportedAlgorithmError struct {
	Tag string
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported hash algorithm: %q", e.Tag)
}

// ParseAlgorithm converts a string tag to an Algorithm, case-insensitively.
func ParseAlgorithm(tag string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(tag)) {
	case SHA256:
		return SHA256, nil
	case SHA1:
		return SHA1, nil
	case MD5:
		return MD5, nil
	default:
		return "", &UnsupportedAlgorithmError{Tag: tag}
	}
}

// HexLength returns the number of hex characters a digest of this algorithm has.
func (a Algorithm) HexLength() int {
	switch a {
	case MD5:
		return md5HexLen
	case SHA1:
		return sha1HexLen
	case SHA256:
		return sha256HexLen
	default:
		return 0
	}
}

// Digest is an immutable, lowercase hexadecimal fingerprint tagged with the
// algorithm that produced it. A digest is only ever compared against
// candidates hashed under its own algorithm.
type Digest struct {
	Hex       string
	Algorithm Algorithm
}

// String returns the hex form of the digest.
func (d Digest) String() string {
	return d.Hex
}

// NewDigest validates a raw hex string against the given algorithm's expected
// length and returns the case-normalized Digest.
func NewDigest(raw string, algorithm Algorithm) (Digest, error) {
	if algorithm.HexLength() == 0 {
		return Digest{}, &UnsupportedAlgorithmError{Tag: string(algorithm)}
	}

	normalized := strings.ToLower(strings.TrimSpace(raw))
	if len(normalized) != algorithm.HexLength() {
		return Digest{}, fmt.Errorf("digest length %d does not match %s (want %d)",
			len(normalized), algorithm, algorithm.HexLength())
	}

	if _, err := hex.DecodeString(normalized); err != nil {
		return Digest{}, fmt.Errorf("digest is not valid hex: %w", err)
	}

	return Digest{Hex: normalized, Algorithm: algorithm}, nil
}

// Detect guesses the algorithm of a raw digest string from its length.
func Detect(raw string) (Algorithm, error) {
	switch len(strings.TrimSpace(raw)) {
	case md5HexLen:
		return MD5, nil
	case sha1HexLen:
		return SHA1, nil
	case sha256HexLen:
		return SHA256, nil
	default:
		return "", fmt.Errorf("cannot detect algorithm from digest length %d", len(raw))
	}
}

// Compute hashes a candidate string under the given algorithm and returns the
// resulting Digest. Deterministic, no side effects.
func Compute(candidate string, algorithm Algorithm) (Digest, error) {
	var sum []byte

	switch algorithm {
	case SHA256:
		h := sha256.Sum256([]byte(candidate))
		sum = h[:]
	case SHA1:
		h := sha1.Sum([]byte(candidate)) //nolint:gosec // Simulation only
		sum = h[:]
	case MD5:
		h := md5.Sum([]byte(candidate)) //nolint:gosec // Simulation only
		sum = h[:]
	default:
		return Digest{}, &UnsupportedAlgorithmError{Tag: string(algorithm)}
	}

	return Digest{Hex: hex.EncodeToString(sum), Algorithm: algorithm}, nil
}

// Matches reports whether the candidate hashes to the target digest under the
// target's algorithm.
func Matches(candidate string, target Digest) (bool, error) {
	computed, err := Compute(candidate, target.Algorithm)
	if err != nil {
		return false, err
	}

	return computed.Hex == target.Hex, nil
}

// Synthetic generates a synthetic digest for demonstrations. If password is
// empty, a random 8-character alphanumeric password is generated. It returns
// the digest together with the plaintext it was derived from.
func Synthetic(password string, algorithm Algorithm) (Digest, string, error) {
	if password == "" {
		random, err := randomPassword(randomPasswordLength)
		if err != nil {
			return Digest{}, "", err
		}
		password = random
	}

	digest, err := Compute(password, algorithm)
	if err != nil {
		return Digest{}, "", err
	}

	return digest, password, nil
}

// randomPassword builds a random password over letters and digits using
// crypto/rand, matching the synthetic-corpus generation used elsewhere.
func randomPassword(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	var b strings.Builder
	for range length {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("generating random password: %w", err)
		}
		b.WriteByte(charset[n.Int64()])
	}

	return b.String(), nil
}
