// Package wordlist reads the raw name lists the pipeline consumes.
//
// A word list is UTF-8 text with one name per line; blank lines and lines
// starting with # are skipped. Lines are NFC-normalized on read: the rule
// engine's character classes match composed accented vowels only, so a
// decomposed "e" + combining acute must be folded into "é" before
// decomposition.
//
// Default returns the embedded list of Alicante-province municipalities,
// the corpus the default rule set was tuned against.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

//go:embed municipios.txt
var municipiosRaw string

// defaultWords is parsed from the embedded list in init, read-only after.
var defaultWords []string

func init() {
	words, err := Parse(strings.NewReader(municipiosRaw))
	if err != nil {
		panic("wordlist: embedded municipios.txt: " + err.Error())
	}
	defaultWords = words
}

// Parse reads a word list from r: one name per line, blank lines and
// # comments skipped, each name NFC-normalized.
func Parse(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, norm.NFC.String(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: reading: %w", err)
	}
	return words, nil
}

// Default returns the embedded municipality list. The returned slice is
// a copy.
func Default() []string {
	return append([]string(nil), defaultWords...)
}
