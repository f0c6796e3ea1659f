// Command namegen synthesizes new place names from a word list.
//
//	go run ./cmd/namegen -n 20 -seed 42
//	go run ./cmd/namegen -input names.txt -rules custom.yaml -prefix beni
//
// Without -input the embedded Alicante-province municipality list is
// used; without -rules the built-in rule set. One name is written per
// line to stdout. A fixed -seed reproduces the same names.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/iberia-nlp/toponym/corpus"
	"github.com/iberia-nlp/toponym/namegen"
	"github.com/iberia-nlp/toponym/syllable"
	"github.com/iberia-nlp/toponym/wordlist"
)

func main() {
	n := flag.Int("n", 10, "number of names to generate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	prefix := flag.String("prefix", "", "prefix prepended to every name before casing")
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

	gen, err := namegen.New(corpus.Frequencies(rows), corpus.WordLengths(rows), *seed)
	if err != nil {
		fatal(err)
	}

	names, err := gen.GenerateNames(*n, *prefix)
	if err != nil {
		fatal(err)
	}
	for _, name := range names {
		fmt.Println(name)
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
	fmt.Fprintf(os.Stderr, "namegen: %v\n", err)
	os.Exit(1)
}
