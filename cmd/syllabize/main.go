// Command syllabize decomposes a word list into tagged syllables.
//
//	go run ./cmd/syllabize -input names.txt
//
// Without -input the embedded Alicante-province municipality list is
// used. One row per syllable is written to stdout as tab-separated
// word, index, position, syllable; a corpus summary goes to stderr.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/iberia-nlp/toponym/corpus"
	"github.com/iberia-nlp/toponym/syllable"
	"github.com/iberia-nlp/toponym/wordlist"
)

func main() {
	input := flag.String("input", "", "word list path (default: embedded municipality list)")
	rulesPath := flag.String("rules", "", "YAML rule set path (default: built-in rules)")
	flag.Parse()

	words, err := loadWords(*input)
	if err != nil {
		fatal(err)
	}
	rules, err := loadRules(*rulesPath)
	if err != nil {
		fatal(err)
	}

	rows, err := corpus.DecomposeRules(words, rules)
	if err != nil {
		fatal(err)
	}

	out := bufio.NewWriter(os.Stdout)
	for _, row := range rows {
		fmt.Fprintf(out, "%s\t%d\t%s\t%s\n", row.Word, row.Index, row.Pos, row.Text)
	}
	if err := out.Flush(); err != nil {
		fatal(err)
	}

	freq := corpus.Frequencies(rows)
	fmt.Fprintf(os.Stderr, "%d words, %d syllables\n", len(words), len(rows))
	for _, pos := range []corpus.Position{corpus.Start, corpus.Middle, corpus.End} {
		fmt.Fprintf(os.Stderr, "  %-6s %d distinct\n", pos, freq.Len(pos))
	}
}

func loadWords(path string) ([]string, error) {
	if path == "" {
		return wordlist.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return wordlist.Parse(f)
}

func loadRules(path string) ([]syllable.Rule, error) {
	if path == "" {
		return syllable.DefaultRules(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return syllable.LoadRules(f)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "syllabize: %v\n", err)
	os.Exit(1)
}
