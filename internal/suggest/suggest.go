// Package suggest finds the closest known name to an unresolved one, for
// "did you mean" hints on undefined variables, fields, and methods.
package suggest

import "github.com/lithammer/fuzzysearch/fuzzy"

// Closest returns the best fuzzy match for target among candidates, or ""
// if candidates is empty or nothing ranks.
func Closest(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}
