package generator

// DefaultAlphabet is the exhaustive method's default character set: lowercase
// letters followed by digits, 36 symbols. Alphabet order defines candidate
// order.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Exhaustive length bounds. The caller-facing max length is clamped to this
// range to bound runtime; the generator itself never watches the clock.
const (
	MinBruteForceLength = 1
	MaxBruteForceLength = 8
)

// ClampLength forces a requested max length into the supported range.
func ClampLength(maxLength int) int {
	if maxLength < MinBruteForceLength {
		return MinBruteForceLength
	}

	if maxLength > MaxBruteForceLength {
		return MaxBruteForceLength
	}

	return maxLength
}

// BruteForceGenerator enumerates every string over its alphabet from length 1
// up to maxLength, in strict length-then-lexicographic order. The enumeration
// is equivalent to counting in base-|alphabet| with the alphabet as the digit
// set, so the same alphabet and maxLength always yield the identical sequence.
type BruteForceGenerator struct {
	alphabet  []rune
	maxLength int
	length    int
	odometer  []int
	done      bool
}

// NewBruteForce builds an exhaustive generator over the given alphabet. An
// empty alphabet falls back to DefaultAlphabet; maxLength is clamped to
// [1,8].
func NewBruteForce(alphabet string, maxLength int) *BruteForceGenerator {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}

	return &BruteForceGenerator{
		alphabet:  []rune(alphabet),
		maxLength: ClampLength(maxLength),
		length:    0,
	}
}

// Keyspace returns the total number of candidates the generator will produce:
// the sum of |alphabet|^len for len in [1, maxLength].
func (g *BruteForceGenerator) Keyspace() uint64 {
	var total uint64

	power := uint64(1)
	for range g.maxLength {
		power *= uint64(len(g.alphabet))
		total += power
	}

	return total
}

// Length returns the candidate length currently being enumerated.
func (g *BruteForceGenerator) Length() int {
	return g.length
}

// Next yields the next candidate in length-then-lexicographic order.
func (g *BruteForceGenerator) Next() (string, bool) {
	if g.done {
		return "", false
	}

	if g.length == 0 {
		// First pull starts the odometer at the shortest candidate.
		g.length = 1
		g.odometer = make([]int, 1)

		return g.current(), true
	}

	if !g.increment() {
		if g.length == g.maxLength {
			g.done = true
			return "", false
		}

		g.length++
		g.odometer = make([]int, g.length)
	}

	return g.current(), true
}

// increment advances the odometer by one within the current length, returning
// false on wraparound past the last candidate of this length.
func (g *BruteForceGenerator) increment() bool {
	for i := g.length - 1; i >= 0; i-- {
		g.odometer[i]++
		if g.odometer[i] < len(g.alphabet) {
			return true
		}

		g.odometer[i] = 0
	}

	return false
}

func (g *BruteForceGenerator) current() string {
	runes := make([]rune, g.length)
	for i, digit := range g.odometer {
		runes[i] = g.alphabet[digit]
	}

	return string(runes)
}
