package syllable

import "fmt"

// maxFixedPointIters bounds the fixed-point loop. The shipped rules
// converge in a handful of iterations even on long names; hitting the
// bound means a rule does not strictly reduce its matches.
const maxFixedPointIters = 1000

// Apply runs one pass of rule r over fragments. Every fragment the rule
// matches is replaced, in place, by the rule's two capture groups; the
// rest pass through unchanged. A match with an empty capture group is
// ignored — a split must produce two non-empty parts. Apply always
// returns a new slice; the input is never mutated.
func Apply(fragments []string, r Rule) []string {
	out := make([]string, 0, len(fragments)+1)
	for _, f := range fragments {
		m := r.re.FindStringSubmatch(f)
		if m != nil && m[1] != "" && m[2] != "" {
			out = append(out, m[1], m[2])
		} else {
			out = append(out, f)
		}
	}
	return out
}

// ApplyFixed applies rule r repeatedly until the fragment count stops
// changing between passes, then returns the result. If the count is
// still changing after maxFixedPointIters passes the rule is assumed
// non-terminating and an error is returned.
func ApplyFixed(fragments []string, r Rule) ([]string, error) {
	cur := fragments
	for i := 0; i < maxFixedPointIters; i++ {
		next := Apply(cur, r)
		if len(next) == len(cur) {
			return next, nil
		}
		cur = next
	}
	return nil, fmt.Errorf("syllable: rule %q did not reach a fixed point within %d iterations", r.ID, maxFixedPointIters)
}

// Split decomposes one encoded word into syllable fragments using the
// default rule set. Returns nil for empty input.
func Split(encoded string) ([]string, error) {
	return SplitRules(encoded, defaultRules)
}

// SplitRules decomposes one encoded word by running each rule in order to
// its fixed point, feeding each rule's output to the next. Concatenating
// the returned fragments always reproduces the input exactly.
func SplitRules(encoded string, rules []Rule) ([]string, error) {
	if encoded == "" {
		return nil, nil
	}

	fragments := []string{encoded}
	for _, r := range rules {
		var err error
		fragments, err = ApplyFixed(fragments, r)
		if err != nil {
			return nil, err
		}
	}
	return fragments, nil
}
