package morph

import "sort"

// candidate is one possible (source, target) pairing for a single rune
// value, costed by how far the character would travel.
type candidate struct {
	cost   int
	source int
	target int
}

// matchSurvivors pairs each kept source index with a target position that
// needs the same rune, minimizing displacement per rune value.
//
// For every rune value, all candidate pairs are generated, sorted ascending
// by cost, and accepted greedily while both sides are unclaimed. The
// matching is greedy per rune rather than a global assignment across the
// whole word; different rune values never compete for the same slot, so
// this stays minimal where it matters and cheap everywhere. The returned
// pairs are sorted by target index.
func matchSurvivors(a alignment, source, target []rune) []SurvivorPair {
	// Target positions that are not insertions are the slots survivors must
	// fill.
	inserted := make(map[int]bool, len(a.insertions))
	for _, ins := range a.insertions {
		inserted[ins.Position] = true
	}

	srcByRune := make(map[rune][]int)
	for _, i := range a.keptSource {
		r := source[i]
		srcByRune[r] = append(srcByRune[r], i)
	}
	tgtByRune := make(map[rune][]int)
	for j, r := range target {
		if !inserted[j] {
			tgtByRune[r] = append(tgtByRune[r], j)
		}
	}

	var pairs []SurvivorPair
	for r, sources := range srcByRune {
		targets := tgtByRune[r]

		candidates := make([]candidate, 0, len(sources)*len(targets))
		for _, s := range sources {
			for _, t := range targets {
				candidates = append(candidates, candidate{cost: abs(t - s), source: s, target: t})
			}
		}
		sort.Slice(candidates, func(i, j int) bool {
			if candidates[i].cost != candidates[j].cost {
				return candidates[i].cost < candidates[j].cost
			}
			if candidates[i].source != candidates[j].source {
				return candidates[i].source < candidates[j].source
			}
			return candidates[i].target < candidates[j].target
		})

		claimedSource := make(map[int]bool, len(sources))
		claimedTarget := make(map[int]bool, len(targets))
		for _, c := range candidates {
			if claimedSource[c.source] || claimedTarget[c.target] {
				continue
			}
			claimedSource[c.source] = true
			claimedTarget[c.target] = true
			pairs = append(pairs, SurvivorPair{
				SourceIndex: c.source,
				TargetIndex: c.target,
				Char:        string(r),
			})
		}
	}

	// Map iteration order is random; sorting by target index restores
	// determinism (each target index appears at most once).
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].TargetIndex < pairs[j].TargetIndex
	})
	return pairs
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
