package morph

import "strconv"

// Arena-style letter IDs. They are plain strings so any consumer can key on
// them without reference-equality tricks, and they survive serialization.
// Renderers match on them to track letters across phases.

// SourceID is the stable ID of the source letter at index i.
func SourceID(i int) string {
	return "src-" + strconv.Itoa(i)
}

// InsertionID is the ID of a freshly inserted letter at target index j.
func InsertionID(j int) string {
	return "ins-" + strconv.Itoa(j)
}

// PlaceholderID is the ID of the sentinel slot a replacement of source
// index i occupies between its deletion and its insertion.
func PlaceholderID(i int) string {
	return "placeholder-" + strconv.Itoa(i)
}

// buildLetters constructs the four phase snapshots. Surviving letters carry
// the same src-{i} ID from idle through final; replacement slots hold a
// placeholder letter between their deletion and their insertion; fresh
// insertions first appear in final with ins-{j} IDs.
func buildLetters(source, target []rune, a alignment, pairs []SurvivorPair, replacements []Replacement) PhaseLetters {
	var letters PhaseLetters

	replacedSource := make(map[int]bool, len(replacements))
	replacedTarget := make(map[int]Replacement, len(replacements))
	for _, r := range replacements {
		replacedSource[r.SourceIndex] = true
		replacedTarget[r.TargetIndex] = r
	}
	deleted := make(map[int]bool, len(a.deletions))
	for _, d := range a.deletions {
		deleted[d] = true
	}
	targetToSource := make(map[int]int, len(pairs))
	for _, p := range pairs {
		targetToSource[p.TargetIndex] = p.SourceIndex
	}

	// idle: the source word as-is.
	letters.Idle = make([]Letter, 0, len(source))
	for i, r := range source {
		letters.Idle = append(letters.Idle, Letter{ID: SourceID(i), Char: string(r)})
	}

	// afterDelete: pure deletions vanish; replaced slots persist as
	// placeholders so the gap stays visible until the new letter arrives.
	letters.AfterDelete = make([]Letter, 0, len(source))
	for i, r := range source {
		switch {
		case replacedSource[i]:
			letters.AfterDelete = append(letters.AfterDelete, Letter{ID: PlaceholderID(i)})
		case deleted[i]:
			// gone
		default:
			letters.AfterDelete = append(letters.AfterDelete, Letter{ID: SourceID(i), Char: string(r)})
		}
	}

	// moving: the post-delete letters reordered into target order, with
	// replacement placeholders sitting at their target gap. Fresh
	// insertions are still absent.
	letters.Moving = make([]Letter, 0, len(target))
	for j, r := range target {
		if s, ok := targetToSource[j]; ok {
			letters.Moving = append(letters.Moving, Letter{ID: SourceID(s), Char: string(r)})
		} else if rep, ok := replacedTarget[j]; ok {
			letters.Moving = append(letters.Moving, Letter{ID: PlaceholderID(rep.SourceIndex)})
		}
	}

	// final: the target word; survivors keep their source-derived IDs.
	letters.Final = make([]Letter, 0, len(target))
	for j, r := range target {
		if s, ok := targetToSource[j]; ok {
			letters.Final = append(letters.Final, Letter{ID: SourceID(s), Char: string(r)})
		} else {
			letters.Final = append(letters.Final, Letter{ID: InsertionID(j), Char: string(r)})
		}
	}

	return letters
}
