package generator

import "github.com/duke-git/lancet/v2/strutil"

// Mutation building blocks, in the order they are applied per word. The order
// is fixed: tests and demos depend on exact attempt indices.
var (
	numberAffixes = []string{"123", "1234", "12345", "123456", "1", "2", "3"} //nolint:gochecknoglobals // Fixed mutation order
	symbolAffixes = []string{"!", "@", "#", "$", "%", "&", "*"}               //nolint:gochecknoglobals // Fixed mutation order
)

// DictionaryGenerator walks a word list in order, yielding each word verbatim
// and then its fixed set of deterministic mutations: capitalized form, number
// suffix/prefix pairs, then symbol suffix/prefix pairs.
type DictionaryGenerator struct {
	words   []string
	wordIdx int
	pending []string
	pendIdx int
}

// NewDictionary builds a dictionary generator over the given word list. The
// generator does not copy the list; callers must not mutate it mid-run.
func NewDictionary(words []string) *DictionaryGenerator {
	return &DictionaryGenerator{words: words}
}

// WordCount returns the number of base words loaded.
func (g *DictionaryGenerator) WordCount() int {
	return len(g.words)
}

// Next yields the next candidate: the current word's remaining mutations, or
// the next word verbatim once a mutation block is drained.
func (g *DictionaryGenerator) Next() (string, bool) {
	if g.pendIdx < len(g.pending) {
		candidate := g.pending[g.pendIdx]
		g.pendIdx++

		return candidate, true
	}

	if g.wordIdx >= len(g.words) {
		return "", false
	}

	word := g.words[g.wordIdx]
	g.wordIdx++
	g.pending = mutations(word)
	g.pendIdx = 0

	return word, true
}

// mutations returns the fixed mutation sequence for one word.
func mutations(word string) []string {
	variants := make([]string, 0, 1+2*len(numberAffixes)+2*len(symbolAffixes))

	variants = append(variants, strutil.Capitalize(word))

	for _, num := range numberAffixes {
		variants = append(variants, word+num, num+word)
	}

	for _, symbol := range symbolAffixes {
		variants = append(variants, word+symbol, symbol+word)
	}

	return variants
}
