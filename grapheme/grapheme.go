// Package grapheme reversibly maps multi-letter graphemes in Spanish and
// Valencian place names to single placeholder runes.
//
// The syllable rule engine works with single-rune character classes.
// Digraphs such as "ch", "ll", "rr", "qu" are one consonant sound each, so
// Encode collapses them to one placeholder rune; Decode restores the
// original letters. The hard c (c before a, o, u) is likewise marked with
// a placeholder so rules can tell it apart from the soft c, with the vowel
// left in place.
//
// Encode also normalizes list conventions: "Nucia, la" (municipal
// registers put the article after a comma) becomes "la nucia", and spaces
// become a joiner rune so a multi-word name stays a single string through
// the rule cascade.
//
// Decode(Encode(w)) equals the lowercase, article-reordered form of w for
// any w free of placeholder runes. Input already containing a placeholder
// rune is undefined behavior; the corpus is controlled.
//
// All functions are pure and safe for concurrent use by multiple goroutines.
package grapheme

import "strings"

// Encode lowercases word, moves a trailing ", article" part to the front,
// replaces spaces with the joiner rune, strips remaining commas, and
// substitutes placeholder runes for the multi-letter graphemes.
func Encode(word string) string {
	s := strings.ToLower(word)

	if i := strings.IndexByte(s, ','); i >= 0 {
		name := strings.TrimSpace(s[:i])
		article := strings.TrimSpace(s[i+1:])
		if article != "" && name != "" {
			s = article + " " + name
		} else {
			s = strings.TrimSpace(name + article)
		}
	}

	s = strings.ReplaceAll(s, " ", string(SymJoin))
	s = strings.ReplaceAll(s, ",", "")

	return encodeGraphemes(s)
}

// Decode restores letters from placeholder runes in fragment, applying
// the inverse substitutions in reverse encoding order. The joiner rune
// becomes a space.
func Decode(fragment string) string {
	return decoder.Replace(fragment)
}

// encodeGraphemes substitutes placeholder runes in a single left-to-right
// pass. Digraphs win over the hard-c check at the same offset.
func encodeGraphemes(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if i+1 < len(rs) {
			if sym, ok := digraphSym[string(rs[i:i+2])]; ok {
				b.WriteRune(sym)
				i++
				continue
			}
			if rs[i] == 'c' && hardCVowels[rs[i+1]] {
				b.WriteRune(SymHardC)
				continue
			}
		}
		b.WriteRune(rs[i])
	}

	return b.String()
}
