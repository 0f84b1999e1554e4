package morph

import (
	"sort"
	"sync"
)

// DefaultHighlightThreshold is the largest displacement (in character slots)
// a move may have and still be visually emphasized.
const DefaultHighlightThreshold = 1

// Options tunes plan computation.
type Options struct {
	// HighlightThreshold caps the displacement of emphasized moves.
	// Zero or negative means DefaultHighlightThreshold.
	HighlightThreshold int
}

func (o Options) threshold() int {
	if o.HighlightThreshold > 0 {
		return o.HighlightThreshold
	}
	return DefaultHighlightThreshold
}

// ComputePlan builds the edit plan that morphs source into target, using
// the default highlight threshold. Unicode code points are treated as
// atomic characters; no grapheme-cluster segmentation is performed.
func ComputePlan(source, target string) *EditPlan {
	return ComputePlanWith(source, target, Options{})
}

// ComputePlanWith is ComputePlan with explicit options.
//
// The pipeline runs alignment (who survives), matching (which slot each
// survivor fills), classification (moves, highlights, replacements), then
// assembles the snapshots and phase flags. Every step is pure; calling this
// twice with the same inputs yields structurally identical plans.
func ComputePlanWith(source, target string, opts Options) *EditPlan {
	src := []rune(source)
	tgt := []rune(target)

	a := resolveAlignment(src, tgt)
	pairs := matchSurvivors(a, src, tgt)
	moves := detectMoves(pairs)
	highlights := trueMovers(moves, opts.threshold())
	replacements := pairReplacements(a, pairs, src)

	targetToSource := make(map[int]int, len(pairs))
	for _, p := range pairs {
		targetToSource[p.TargetIndex] = p.SourceIndex
	}

	deletions := make([]int, len(a.deletions))
	copy(deletions, a.deletions)
	sort.Sort(sort.Reverse(sort.IntSlice(deletions)))

	return &EditPlan{
		Source:           source,
		Target:           target,
		Deletions:        deletions,
		Insertions:       a.insertions,
		SurvivorPairs:    pairs,
		Moves:            moves,
		HighlightIndices: highlights,
		Replacements:     replacements,
		TargetToSource:   targetToSource,
		Letters:          buildLetters(src, tgt, a, pairs, replacements),
		ShouldDelete:     len(a.deletions) > 0,
		ShouldMove:       len(pairs) > 0 && source != target,
		ShouldInsert:     len(a.insertions) > 0,
	}
}

// Planner memoizes plans per (source, target) pair. Plans are immutable, so
// cached pointers are shared freely; the zero Planner is not usable, call
// NewPlanner. Safe for concurrent use.
type Planner struct {
	opts  Options
	cache sync.Map // plannerKey -> *EditPlan
}

type plannerKey struct {
	source string
	target string
}

// NewPlanner returns a Planner that computes plans with the given options.
func NewPlanner(opts Options) *Planner {
	return &Planner{opts: opts}
}

// Plan returns the memoized plan for the pair, computing it on first use.
func (p *Planner) Plan(source, target string) *EditPlan {
	key := plannerKey{source: source, target: target}
	if cached, ok := p.cache.Load(key); ok {
		return cached.(*EditPlan)
	}
	plan := ComputePlanWith(source, target, p.opts)
	actual, _ := p.cache.LoadOrStore(key, plan)
	return actual.(*EditPlan)
}
