package oracle

import "fmt"

// CorpusEntry pairs a known-weak plaintext with its synthetic digest.
type CorpusEntry struct {
	Password    string `json:"password"`
	Digest      string `json:"hash"`
	Algorithm   string `json:"algorithm"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
}

// commonWeakPasswords is the fixed demonstration corpus, in rank order.
var commonWeakPasswords = []string{ //nolint:gochecknoglobals // Fixed corpus
	"password", "123456", "qwerty", "admin", "letmein",
	"welcome", "monkey", "dragon", "master", "freedom",
	"hello", "world", "test", "demo", "guest",
}

// FakeCorpus returns up to count deterministic demonstration entries built
// from the fixed weak-password list, hashed under the given algorithm. Any
// count beyond the fixed list is padded with random 6-character lowercase
// alphanumeric passwords, so only the fixed prefix is deterministic.
func FakeCorpus(count int, algorithm Algorithm) ([]CorpusEntry, error) {
	entries := make([]CorpusEntry, 0, count)

	for i := 0; i < count && i < len(commonWeakPasswords); i++ {
		digest, err := Compute(commonWeakPasswords[i], algorithm)
		if err != nil {
			return nil, err
		}

		entries = append(entries, CorpusEntry{
			Password:    commonWeakPasswords[i],
			Digest:      digest.Hex,
			Algorithm:   string(algorithm),
			Description: fmt.Sprintf("Common password #%d", i+1),
			Difficulty:  "easy",
		})
	}

	for i := len(entries); i < count; i++ {
		password, err := randomPassword(6)
		if err != nil {
			return nil, err
		}

		digest, err := Compute(password, algorithm)
		if err != nil {
			return nil, err
		}

		entries = append(entries, CorpusEntry{
			Password:    password,
			Digest:      digest.Hex,
			Algorithm:   string(algorithm),
			Description: fmt.Sprintf("Random password #%d", i-len(commonWeakPasswords)+1),
			Difficulty:  "medium",
		})
	}

	return entries, nil
}
