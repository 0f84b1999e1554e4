package morph

import "sort"

// detectMoves returns the survivor pairs that genuinely reorder: a pair
// (s, t) is a move when it crosses some other pair (s', t'), i.e.
// s < s' && t > t' or s > s' && t < t'. Pairs with no crossing partner stay
// in relative place even when s != t numerically; the index shift from
// deletions before them is not a move.
func detectMoves(pairs []SurvivorPair) []Move {
	var moves []Move
	for i, p := range pairs {
		crossing := false
		for j, q := range pairs {
			if i == j {
				continue
			}
			if (p.SourceIndex < q.SourceIndex && p.TargetIndex > q.TargetIndex) ||
				(p.SourceIndex > q.SourceIndex && p.TargetIndex < q.TargetIndex) {
				crossing = true
				break
			}
		}
		if crossing {
			moves = append(moves, Move{FromIndex: p.SourceIndex, ToIndex: p.TargetIndex})
		}
	}
	return moves
}

// trueMovers selects the moves short enough to emphasize and returns their
// source indices, ascending. Long jumps read as teleportation on screen, so
// only small positional corrections get the highlight treatment.
func trueMovers(moves []Move, threshold int) []int {
	var indices []int
	for _, m := range moves {
		if abs(m.ToIndex-m.FromIndex) <= threshold {
			indices = append(indices, m.FromIndex)
		}
	}
	sort.Ints(indices)
	return indices
}

// pairReplacements matches deletions with insertions that land in the same
// logical gap. A deletion at source index d leaves a gap after
// survivorsBefore(d) surviving letters; an insertion at exactly that
// position fills the same gap, so the two animate as one replaced slot.
// Each insertion is consumed at most once.
func pairReplacements(a alignment, pairs []SurvivorPair, source []rune) []Replacement {
	used := make(map[int]bool, len(a.insertions))

	var replacements []Replacement
	for _, d := range a.deletions {
		survivorsBefore := 0
		for _, p := range pairs {
			if p.SourceIndex < d {
				survivorsBefore++
			}
		}
		for i, ins := range a.insertions {
			if used[i] || ins.Position != survivorsBefore {
				continue
			}
			used[i] = true
			replacements = append(replacements, Replacement{
				SourceIndex:  d,
				TargetIndex:  ins.Position,
				DeletedChar:  string(source[d]),
				InsertedChar: ins.Char,
			})
			break
		}
	}
	return replacements
}
