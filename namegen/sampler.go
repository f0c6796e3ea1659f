package namegen

import (
	"math/rand"
	"sort"

	"github.com/iberia-nlp/toponym/corpus"
)

// sampler draws syllables of one position with probability proportional
// to their corpus count, by binary search over cumulative weights.
// Entries are sorted by text so the cumulative array — and with it the
// draw sequence for a given seed — does not depend on map iteration
// order.
type sampler struct {
	texts []string
	cum   []int // cum[i] = total count of texts[0..i]
	total int
}

// newSampler builds a sampler from a position's entries. Returns nil if
// no entry carries positive weight.
func newSampler(entries []corpus.Entry) *sampler {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Text < entries[j].Text })

	s := &sampler{
		texts: make([]string, 0, len(entries)),
		cum:   make([]int, 0, len(entries)),
	}
	for _, e := range entries {
		if e.Count <= 0 {
			continue
		}
		s.total += e.Count
		s.texts = append(s.texts, e.Text)
		s.cum = append(s.cum, s.total)
	}
	if s.total == 0 {
		return nil
	}
	return s
}

// pick draws one syllable. The target is uniform in [1, total]; the
// first cumulative weight reaching it selects the syllable.
func (s *sampler) pick(rng *rand.Rand) string {
	target := rng.Intn(s.total) + 1
	i := sort.SearchInts(s.cum, target)
	return s.texts[i]
}
