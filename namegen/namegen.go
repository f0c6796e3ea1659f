// Package namegen synthesizes new place names from syllable statistics.
//
// A Generator draws, per name, a syllable count from the corpus length
// distribution (each source word contributes one equally weighted entry),
// then one syllable per slot: the first slot from Start-tagged syllables,
// the last from End, anything between from Middle. A one-slot name draws
// from Start — the first-slot check wins, matching how the corpus tags a
// one-syllable word. Within a position, a syllable's probability is
// proportional to its corpus count; draws are independent, so a syllable
// may repeat within one name and names may repeat across calls.
//
// All randomness comes from a single source seeded at construction, and
// draws happen in a fixed order: the length draw, then one syllable draw
// per slot, name after name in request order. The same seed over the same
// tables therefore reproduces the same output exactly. To keep the
// cumulative weight arrays deterministic even though the frequency table
// iterates in map order, the Generator sorts each position's entries by
// syllable text at construction.
//
// Generate fails fast with a descriptive error when a required position
// has no recorded syllables; silently emitting a malformed name would
// corrupt every output after it.
//
// A Generator is not safe for concurrent use: draws share one rand.Rand.
package namegen

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iberia-nlp/toponym/corpus"
)

// Generator produces names from a frequency table and a length
// distribution, both fixed at construction.
type Generator struct {
	rng     *rand.Rand
	lengths []int
	byPos   map[corpus.Position]*sampler
}

// New builds a Generator over table and lengths, seeding its random
// source with seed. lengths must be non-empty and positive; the table's
// positions are only checked when a draw actually needs them.
func New(table *corpus.FreqTable, lengths []int, seed int64) (*Generator, error) {
	if table == nil {
		return nil, fmt.Errorf("namegen: nil frequency table")
	}
	if len(lengths) == 0 {
		return nil, fmt.Errorf("namegen: empty length distribution")
	}
	for _, k := range lengths {
		if k < 1 {
			return nil, fmt.Errorf("namegen: invalid syllable count %d in length distribution", k)
		}
	}

	byPos := make(map[corpus.Position]*sampler, 3)
	for _, pos := range []corpus.Position{corpus.Start, corpus.Middle, corpus.End} {
		if s := newSampler(table.Entries(pos)); s != nil {
			byPos[pos] = s
		}
	}

	return &Generator{
		rng:     rand.New(rand.NewSource(seed)),
		lengths: append([]int(nil), lengths...),
		byPos:   byPos,
	}, nil
}

// Generate returns n synthesized names with no prefix.
func (g *Generator) Generate(n int) ([]string, error) {
	return g.GenerateNames(n, "")
}

// GenerateNames returns n synthesized names, each starting with prefix.
// Returns nil for n <= 0.
func (g *Generator) GenerateNames(n int, prefix string) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}

	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name, err := g.generateOne(prefix)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// generateOne draws one name: the syllable count first, then one
// syllable per slot, in slot order.
func (g *Generator) generateOne(prefix string) (string, error) {
	k := g.lengths[g.rng.Intn(len(g.lengths))]

	var b strings.Builder
	b.WriteString(prefix)
	for i := 1; i <= k; i++ {
		pos := slotPosition(i, k)
		s, ok := g.byPos[pos]
		if !ok {
			return "", fmt.Errorf("namegen: no syllables recorded for position %s", pos)
		}
		b.WriteString(s.pick(g.rng))
	}
	return titleCase(b.String()), nil
}

// slotPosition classifies slot i of k. The first-slot check wins, so a
// one-slot name is Start.
func slotPosition(i, k int) corpus.Position {
	switch {
	case i == 1:
		return corpus.Start
	case i == k:
		return corpus.End
	default:
		return corpus.Middle
	}
}

// titleCase uppercases the first rune and lowercases the rest.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
