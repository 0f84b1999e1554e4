package morph

// alignment is the survivor/delete/insert split of a word pair, before any
// pairing between the two sides has been decided.
type alignment struct {
	keptSource []int
	deletions  []int // ascending; the plan stores them descending
	insertions []Insertion
}

// resolveAlignment decides which source runes survive and which target
// positions need a fresh character. Two multiset counting scans replace the
// classic LCS table: each is O(n), there is no backtracking, and repeated
// characters resolve greedily toward their earliest occurrence.
func resolveAlignment(source, target []rune) alignment {
	var a alignment

	// How many of each rune the target still needs. A source rune survives
	// while its need is positive; surplus occurrences are deleted.
	need := make(map[rune]int, len(target))
	for _, r := range target {
		need[r]++
	}
	for i, r := range source {
		if need[r] > 0 {
			need[r]--
			a.keptSource = append(a.keptSource, i)
		} else {
			a.deletions = append(a.deletions, i)
		}
	}

	// How many of each rune the source can supply at all. Scanning the
	// target left to right, a position whose rune has exhausted its supply
	// must be freshly inserted. The full source counts are used, not just
	// the kept ones: a rune kept above is exactly a rune supplied here.
	supply := make(map[rune]int, len(source))
	for _, r := range source {
		supply[r]++
	}
	for j, r := range target {
		if supply[r] > 0 {
			supply[r]--
		} else {
			a.insertions = append(a.insertions, Insertion{Char: string(r), Position: j})
		}
	}

	return a
}
