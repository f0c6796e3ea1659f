package corpus

// FreqTable counts syllable occurrences per position across a corpus.
// Read-only after Frequencies returns. Iteration order of Entries is
// deliberately unspecified; consumers needing determinism must sort.
type FreqTable struct {
	counts map[Position]map[string]int
}

// Entry is one (syllable, count) pair of a position slot.
type Entry struct {
	Text  string
	Count int
}

// Frequencies tallies rows into a (position, syllable) count table.
func Frequencies(rows []Syllable) *FreqTable {
	t := &FreqTable{counts: make(map[Position]map[string]int, 3)}
	for _, row := range rows {
		m := t.counts[row.Pos]
		if m == nil {
			m = make(map[string]int)
			t.counts[row.Pos] = m
		}
		m[row.Text]++
	}
	return t
}

// Count returns the recorded occurrences of syllable text at pos.
func (t *FreqTable) Count(pos Position, text string) int {
	return t.counts[pos][text]
}

// Entries returns all (syllable, count) pairs recorded for pos, in
// unspecified order. Returns nil if the position has no syllables.
func (t *FreqTable) Entries(pos Position) []Entry {
	m := t.counts[pos]
	if len(m) == 0 {
		return nil
	}
	entries := make([]Entry, 0, len(m))
	for text, count := range m {
		entries = append(entries, Entry{Text: text, Count: count})
	}
	return entries
}

// Len returns the number of distinct syllables recorded for pos.
func (t *FreqTable) Len(pos Position) int {
	return len(t.counts[pos])
}
