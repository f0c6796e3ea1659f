// Package corpus builds syllable statistics from a list of place names.
//
// Decompose runs every name through the grapheme encoding, the syllable
// rule cascade, and the grapheme decoding, producing one row per syllable
// tagged with its position in the source word. Frequencies and
// WordLengths aggregate those rows into the two tables the namegen
// package samples from.
//
// Invariant: for every source word, concatenating its syllable texts in
// index order reproduces the lowercase, article-reordered form of the
// word exactly.
//
// All returned tables are read-only after construction and safe for
// concurrent use by multiple goroutines.
package corpus

import (
	"fmt"

	"github.com/iberia-nlp/toponym/grapheme"
	"github.com/iberia-nlp/toponym/syllable"
)

// syllablesPerWordEstimate pre-allocates the row slice in Decompose.
const syllablesPerWordEstimate = 4

// Position classifies where a syllable occurs in its source word.
type Position int

const (
	Start  Position = iota // first syllable; a one-syllable word is Start, never End
	Middle                 // neither first nor last
	End                    // last syllable of a word with two or more
)

// String returns the name of the position.
func (p Position) String() string {
	switch p {
	case Start:
		return "start"
	case Middle:
		return "middle"
	case End:
		return "end"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// Syllable is one decomposition row: a decoded syllable of a source word.
type Syllable struct {
	Word  string   // source word as given
	Text  string   // decoded syllable text
	Index int      // 0-based position in the word
	Pos   Position // position classification
}

// Decompose decomposes every word into tagged syllable rows using the
// default rule set. Empty words are skipped.
func Decompose(words []string) ([]Syllable, error) {
	return DecomposeRules(words, syllable.DefaultRules())
}

// DecomposeRules is Decompose with a caller-supplied rule set.
func DecomposeRules(words []string, rules []syllable.Rule) ([]Syllable, error) {
	rows := make([]Syllable, 0, len(words)*syllablesPerWordEstimate)
	for _, w := range words {
		fragments, err := syllable.SplitRules(grapheme.Encode(w), rules)
		if err != nil {
			return nil, fmt.Errorf("corpus: decomposing %q: %w", w, err)
		}
		n := len(fragments)
		for i, f := range fragments {
			rows = append(rows, Syllable{
				Word:  w,
				Text:  grapheme.Decode(f),
				Index: i,
				Pos:   positionFor(i, n),
			})
		}
	}
	return rows, nil
}

// positionFor tags syllable i of n. The first-row check wins, so a
// one-syllable word is Start.
func positionFor(i, n int) Position {
	switch {
	case i == 0:
		return Start
	case i == n-1:
		return End
	default:
		return Middle
	}
}

// WordLengths returns the syllable count of each source word, one entry
// per word in row order. Sampling an entry uniformly at random is
// sampling a word uniformly and taking its length, which is exactly the
// empirical length distribution namegen needs.
func WordLengths(rows []Syllable) []int {
	var lengths []int
	for _, row := range rows {
		if row.Index == 0 {
			lengths = append(lengths, 0)
		}
		if len(lengths) > 0 {
			lengths[len(lengths)-1]++
		}
	}
	return lengths
}
