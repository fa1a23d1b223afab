package generator

import (
	"strconv"
	"strings"

	"github.com/duke-git/lancet/v2/strutil"
)

// Rule family inputs. All fixed; enumeration order inside each family and the
// family order itself is load-bearing for attempt-count determinism.
//nolint:gochecknoglobals // Fixed rule inputs
var (
	repeatChars  = []string{"1", "2", "3", "a", "b", "c"}
	commonWords  = []string{"password", "admin", "user", "test", "demo"}
	qwertyRows   = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}
	commonYears  = []string{"2024", "2023", "2022", "2021", "2020", "1990", "1980"}
	commonNames  = []string{"john", "jane", "admin", "user", "test", "demo", "guest"}
	nameSymbols  = []string{"!", "@", "#", "$", "%"}
	leetWords    = []string{"password", "admin", "user", "test"}
	leetReplacer = strings.NewReplacer("a", "4", "e", "3", "i", "1", "o", "0", "s", "5", "t", "7")
)

const numpadRow = "1234567890"

// RuleBasedGenerator concatenates five pattern families in fixed order:
// common patterns (numeric sequences, repeats, common-word+number), keyboard
// rows, date combinations, name combinations, and leet-speak substitutions.
// Each family is materialized lazily when the previous one drains.
type RuleBasedGenerator struct {
	families  []func() []string
	familyIdx int
	buf       []string
	pos       int
}

// NewRuleBased builds a rule-based generator.
func NewRuleBased() *RuleBasedGenerator {
	return &RuleBasedGenerator{
		families: []func() []string{
			commonPatterns,
			keyboardPatterns,
			datePatterns,
			namePatterns,
			leetPatterns,
		},
	}
}

// FamilyCount returns the number of rule families.
func (g *RuleBasedGenerator) FamilyCount() int {
	return len(g.families)
}

// Next yields the next candidate, advancing to the next family when the
// current one is exhausted.
func (g *RuleBasedGenerator) Next() (string, bool) {
	for g.pos >= len(g.buf) {
		if g.familyIdx >= len(g.families) {
			return "", false
		}

		g.buf = g.families[g.familyIdx]()
		g.pos = 0
		g.familyIdx++
	}

	candidate := g.buf[g.pos]
	g.pos++

	return candidate, true
}

// commonPatterns generates ascending digit runs, single-character repeats,
// and common words with 0-99 appended and prepended.
func commonPatterns() []string {
	var patterns []string

	// Ascending digit runs of length 4-9 that fit before wrapping past 9.
	for length := 4; length <= 9; length++ {
		for start := 0; start+length <= 10; start++ {
			var b strings.Builder
			for digit := start; digit < start+length; digit++ {
				b.WriteString(strconv.Itoa(digit))
			}
			patterns = append(patterns, b.String())
		}
	}

	for _, char := range repeatChars {
		for length := 4; length <= 8; length++ {
			patterns = append(patterns, strings.Repeat(char, length))
		}
	}

	for _, word := range commonWords {
		for num := range 100 {
			n := strconv.Itoa(num)
			patterns = append(patterns, word+n, n+word)
		}
	}

	return patterns
}

// keyboardPatterns generates contiguous row substrings of length >= 4. Letter
// rows also yield each substring's reversal; the numeric pad row does not,
// and only runs lengths 4-6.
func keyboardPatterns() []string {
	var patterns []string

	for _, row := range qwertyRows {
		for length := 4; length <= len(row); length++ {
			for start := 0; start+length <= len(row); start++ {
				sub := row[start : start+length]
				patterns = append(patterns, sub, strutil.Reverse(sub))
			}
		}
	}

	for length := 4; length <= 6; length++ {
		for start := 0; start+length <= len(numpadRow); start++ {
			patterns = append(patterns, numpadRow[start:start+length])
		}
	}

	return patterns
}

// datePatterns generates year, month+year, and month-day-year combinations.
// Days run 01-31 for every month with no calendar validation; combinations
// like 02/30 are produced on purpose so attempt counts stay stable.
func datePatterns() []string {
	var patterns []string

	months := make([]string, 0, 12)
	for m := 1; m <= 12; m++ {
		months = append(months, twoDigits(m))
	}

	days := make([]string, 0, 31)
	for d := 1; d <= 31; d++ {
		days = append(days, twoDigits(d))
	}

	for _, year := range commonYears {
		patterns = append(patterns, year)
		for _, month := range months {
			patterns = append(patterns, month+year, year+month)
			for _, day := range days {
				patterns = append(patterns, month+day+year, year+month+day)
			}
		}
	}

	return patterns
}

// namePatterns generates bare, capitalized, and uppercased name forms plus
// numeric and symbol affixes.
func namePatterns() []string {
	var patterns []string

	for _, name := range commonNames {
		patterns = append(patterns, name, strutil.Capitalize(name), strings.ToUpper(name))

		for num := range 100 {
			n := strconv.Itoa(num)
			patterns = append(patterns, name+n, n+name)
		}

		for _, symbol := range nameSymbols {
			patterns = append(patterns, name+symbol, symbol+name)
		}
	}

	return patterns
}

// leetPatterns generates each word bare, then with one simultaneous
// substitution pass over the whole word. Single pass only, never iterative.
func leetPatterns() []string {
	patterns := make([]string, 0, 2*len(leetWords))

	for _, word := range leetWords {
		patterns = append(patterns, word, leetReplacer.Replace(word))
	}

	return patterns
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}

	return strconv.Itoa(n)
}
