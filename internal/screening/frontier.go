package screening

import (
	"cmp"
	"slices"
	"strings"
)

// Frontier returns the entries not dominated on (energy, cost): another entry
// dominates when it is at least as stable and at least as cheap, and strictly
// better on one of the two. The result is ordered by ratio, best first.
//
// O(n^2) dominance check; screening sets are small.
func Frontier(entries []Entry, b Basis) []Entry {
	var frontier []Entry
	for i := range entries {
		dominated := false
		for j := range entries {
			if i == j {
				continue
			}
			if dominates(entries[j], entries[i], b) {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, entries[i])
		}
	}
	slices.SortStableFunc(frontier, func(x, y Entry) int {
		if c := cmp.Compare(y.Ratio(b), x.Ratio(b)); c != 0 {
			return c
		}
		return strings.Compare(x.System, y.System)
	})
	return frontier
}

// dominates reports whether a dominates b. Lower energy and lower cost are
// better.
func dominates(a, b Entry, basis Basis) bool {
	ea, eb := a.Energy(basis), b.Energy(basis)
	if ea > eb || a.Cost() > b.Cost() {
		return false
	}
	return ea < eb || a.Cost() < b.Cost()
}

// Top returns at most n frontier systems on the observed basis: the
// shortlist recommended for experimental follow-up.
func Top(entries []Entry, n int) []Entry {
	f := Frontier(entries, BasisObserved)
	if n > 0 && len(f) > n {
		f = f[:n]
	}
	return f
}
