package grapheme

import "strings"

// Placeholder runes for multi-letter graphemes. Digits are disjoint from
// the natural alphabet and from each other, which is all the rule engine
// needs: each placeholder behaves as a single consonant.
const (
	SymCh    = '1' // ch
	SymLl    = '2' // ll
	SymRr    = '3' // rr
	SymQu    = '4' // qu
	SymHardC = '5' // c before a, o, u (the vowel is kept)
	SymJoin  = '_' // word joiner, decoded back to a space
)

// digraphSym maps two-letter graphemes to their placeholder runes.
// Checked before the hard-c substitution so that "ch" is never mistaken
// for a hard c.
var digraphSym = map[string]rune{
	"ch": SymCh,
	"ll": SymLl,
	"rr": SymRr,
	"qu": SymQu,
}

// hardCVowels is the set of vowels that make a preceding c hard (/k/).
// Accented forms included: they occur in place names ("Alcalá").
var hardCVowels = map[rune]bool{
	'a': true, 'á': true, 'à': true,
	'o': true, 'ó': true, 'ò': true,
	'u': true, 'ú': true, 'ü': true,
}

// decoder applies the inverse substitutions in reverse encoding order.
var decoder = strings.NewReplacer(
	string(SymHardC), "c",
	string(SymQu), "qu",
	string(SymRr), "rr",
	string(SymLl), "ll",
	string(SymCh), "ch",
	string(SymJoin), " ",
)
