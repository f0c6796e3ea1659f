package syllable

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzSplit checks the partition invariant for arbitrary input: whatever
// the cascade does, the fragments concatenate back to the input and none
// of them is empty.
func FuzzSplit(f *testing.F) {
	f.Add("ali5ante")
	f.Add("el_5ampe2o")
	f.Add("4atretondeta")
	f.Add("aeoae")
	f.Add("___")
	f.Add("")

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			return
		}
		frags, err := Split(s)
		if err != nil {
			t.Skip("fixed point bound hit")
		}
		if s == "" {
			if frags != nil {
				t.Fatalf("Split(%q) = %v, want nil", s, frags)
			}
			return
		}
		if got := strings.Join(frags, ""); got != s {
			t.Errorf("fragments %q concatenate to %q, want %q", frags, got, s)
		}
		for i, frag := range frags {
			if frag == "" {
				t.Errorf("fragment %d of %q is empty", i, s)
			}
		}
	})
}
