package syllable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Encoded forms of real municipality names (see the grapheme package for
// the placeholder alphabet).
var encodedCorpus = []string{
	"ali5ante",     // Alicante
	"el1e",         // Elche
	"denia",        // Denia
	"5alpe",        // Calpe
	"altea",        // Altea
	"polop",        // Polop
	"to3evieja",    // Torrevieja
	"4atretondeta", // Quatretondeta
	"el_5ampe2o",   // el Campello
	"orihuela",     // Orihuela
	"la_nucia",     // la Nucia
	"san_vicente_del_raspeig",
}

func mustRule(t *testing.T, yaml string) Rule {
	t.Helper()
	rules, err := LoadRules(strings.NewReader(yaml))
	require.NoError(t, err)
	require.Len(t, rules, 1)
	return rules[0]
}

func TestApply(t *testing.T) {
	hyphen := mustRule(t, `
- id: hyphen
  pattern: ^([^-]+-)(.+)$
`)

	t.Run("splits matching fragments in place", func(t *testing.T) {
		got := Apply([]string{"a-b-c", "x", "d-e"}, hyphen)
		assert.Equal(t, []string{"a-", "b-c", "x", "d-", "e"}, got)
	})

	t.Run("non-matching fragments pass through", func(t *testing.T) {
		got := Apply([]string{"abc", "def"}, hyphen)
		assert.Equal(t, []string{"abc", "def"}, got)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		in := []string{"a-b", "c"}
		Apply(in, hyphen)
		assert.Equal(t, []string{"a-b", "c"}, in)
	})

	t.Run("empty match groups are not a split", func(t *testing.T) {
		optional := mustRule(t, `
- id: optional-groups
  pattern: ^(x*)(.*)$
`)
		got := Apply([]string{"y"}, optional)
		assert.Equal(t, []string{"y"}, got)
	})
}

func TestApplyFixed(t *testing.T) {
	hyphen := mustRule(t, `
- id: hyphen
  pattern: ^([^-]+-)(.+)$
`)

	got, err := ApplyFixed([]string{"a-b-c-d"}, hyphen)
	require.NoError(t, err)
	assert.Equal(t, []string{"a-", "b-", "c-", "d"}, got)
}

// TestFixedPointConvergence feeds the whole encoded corpus through the
// cascade and requires every rule to stabilize within 20 passes — far
// below the engine's own bound, so a regressing rule fails loudly here
// long before it could time out.
func TestFixedPointConvergence(t *testing.T) {
	const maxPasses = 20

	fragments := append([]string(nil), encodedCorpus...)
	for _, r := range DefaultRules() {
		converged := false
		for i := 0; i < maxPasses; i++ {
			next := Apply(fragments, r)
			if len(next) == len(fragments) {
				converged = true
				break
			}
			fragments = next
		}
		require.True(t, converged, "rule %s did not converge within %d passes", r.ID, maxPasses)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		want    []string
	}{
		{"empty", "", nil},
		{"single letter", "a", []string{"a"}},
		{"no rule matches", "de", []string{"de"}},
		{"vowel consonant vowel", "denia", []string{"de", "nia"}},
		{"hard c", "ali5ante", []string{"a", "li", "5an", "te"}},
		{"digraph pair split", "el1e", []string{"el", "1e"}},
		{"consonant pair", "5alpe", []string{"5al", "pe"}},
		{"hiatus", "altea", []string{"al", "te", "a"}},
		{"final consonant stays", "polop", []string{"po", "lop"}},
		{"diphthong kept", "to3evieja", []string{"to", "3e", "vie", "ja"}},
		{"onset cluster", "4atretondeta", []string{"4a", "tre", "ton", "de", "ta"}},
		{"word separator", "el_5ampe2o", []string{"el_", "5am", "pe", "2o"}},
		{"function words stay whole", "va2_de_ebo", []string{"va2_", "de_", "e", "bo"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Split(tc.encoded)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestSplitConcatenation checks the partition invariant: fragments always
// concatenate back to the input.
func TestSplitConcatenation(t *testing.T) {
	for _, enc := range encodedCorpus {
		frags, err := Split(enc)
		require.NoError(t, err)
		assert.Equal(t, enc, strings.Join(frags, ""), "fragments of %q", enc)
		for i, f := range frags {
			assert.NotEmpty(t, f, "fragment %d of %q", i, enc)
		}
	}
}

func TestSplitRulesCustomSet(t *testing.T) {
	hyphen := mustRule(t, `
- id: hyphen
  pattern: ^([^-]+-)(.+)$
`)
	got, err := SplitRules("cala-mar", []Rule{hyphen})
	require.NoError(t, err)
	assert.Equal(t, []string{"cala-", "mar"}, got)
}
