// Package syllable decomposes encoded place names into syllables by
// applying an ordered cascade of boundary rules.
//
// A rule is an anchored regular expression with exactly two capture
// groups. When a rule matches a fragment, the fragment is replaced by its
// two capture groups, in place; fragments a rule does not match pass
// through unchanged. Each rule is applied repeatedly until the fragment
// count stops changing (its fixed point), then the next rule runs on the
// result. A fragment no rule ever matches remains a single syllable —
// that is the base case, not an error.
//
// The default rule set is embedded as rules.yaml and encodes a linguistic
// priority: word separators first, then consonant-vowel boundaries, then
// consonant clusters, then vowel hiatus. Rule order is part of the
// contract; later rules only see fragments earlier rules produced.
//
// Termination of the fixed-point loop relies on every rule strictly
// shrinking the fragments it matches. That holds for the shipped set but
// is not provable for arbitrary rules, so ApplyFixed carries an iteration
// bound and reports an error instead of looping forever.
//
// All functions are safe for concurrent use by multiple goroutines.
package syllable

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var rulesRaw []byte

// defaultRules is parsed from the embedded rules.yaml in init and is
// read-only afterwards.
var defaultRules []Rule

func init() {
	rules, err := LoadRules(bytes.NewReader(rulesRaw))
	if err != nil {
		panic("syllable: embedded rules.yaml: " + err.Error())
	}
	defaultRules = rules
}

// Rule is one syllable boundary rule: an anchored pattern with exactly
// two capture groups, the left and the right fragment of the split.
type Rule struct {
	ID          string
	Description string

	re *regexp.Regexp
}

// Pattern returns the rule's regular expression source.
func (r Rule) Pattern() string {
	return r.re.String()
}

// String returns a debug representation, e.g. Rule(word-separator).
func (r Rule) String() string {
	return fmt.Sprintf("Rule(%s)", r.ID)
}

// DefaultRules returns the embedded default rule set, in application
// order. The returned slice is a copy and may be reordered or extended by
// the caller, though a changed order needs revalidation against the
// corpus it is used on.
func DefaultRules() []Rule {
	return append([]Rule(nil), defaultRules...)
}

// ruleSpec is the YAML form of a rule.
type ruleSpec struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Pattern     string `yaml:"pattern"`
}

// LoadRules reads an ordered rule list from YAML. Every rule must have a
// unique non-empty id and a pattern that compiles with exactly two
// capture groups. An empty document is an error: a cascade with no rules
// decomposes nothing.
func LoadRules(r io.Reader) ([]Rule, error) {
	var specs []ruleSpec
	if err := yaml.NewDecoder(r).Decode(&specs); err != nil {
		return nil, fmt.Errorf("syllable: parsing rules: %w", err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("syllable: rule list is empty")
	}

	seen := make(map[string]bool, len(specs))
	rules := make([]Rule, 0, len(specs))
	for i, spec := range specs {
		if spec.ID == "" {
			return nil, fmt.Errorf("syllable: rule %d has no id", i)
		}
		if seen[spec.ID] {
			return nil, fmt.Errorf("syllable: duplicate rule id %q", spec.ID)
		}
		seen[spec.ID] = true

		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("syllable: rule %q: %w", spec.ID, err)
		}
		if n := re.NumSubexp(); n != 2 {
			return nil, fmt.Errorf("syllable: rule %q has %d capture groups, want 2", spec.ID, n)
		}

		rules = append(rules, Rule{ID: spec.ID, Description: spec.Description, re: re})
	}

	return rules, nil
}
