// Package morph computes edit plans for animating one word into another.
//
// Given a source word and a target word it derives the character-level
// operations (deletions, insertions, repositionings) needed to morph the
// first into the second, annotated with everything a renderer needs to show
// the change as a continuous animation: stable letter identities across
// phases, moves worth emphasizing, and deletion/insertion pairs collapsed
// into single replaced slots.
//
// Everything in this package is pure and deterministic: the same word pair
// always produces a structurally identical plan, and nothing here performs
// I/O or blocks.
package morph

// Letter is one on-screen character slot. IDs are stable across phases for
// surviving letters, so a renderer can animate continuity instead of
// destroying one node and creating another.
type Letter struct {
	ID   string `json:"id"`
	Char string `json:"char"`
}

// IsPlaceholder reports whether the letter is the sentinel slot a
// replacement occupies between its deletion and its insertion.
func (l Letter) IsPlaceholder() bool {
	return l.Char == ""
}

// Insertion places Char at Position, an index into the target word.
type Insertion struct {
	Char     string `json:"char"`
	Position int    `json:"position"`
}

// SurvivorPair links a kept source character to the target slot it fills.
type SurvivorPair struct {
	SourceIndex int    `json:"sourceIndex"`
	TargetIndex int    `json:"targetIndex"`
	Char        string `json:"char"`
}

// Move records a survivor whose relative order among the other survivors
// changes between the two words.
type Move struct {
	FromIndex int `json:"fromIndex"`
	ToIndex   int `json:"toIndex"`
}

// Replacement is a deletion and an insertion that occupy the same logical
// gap. The pair animates as one slot whose letter changes rather than as two
// unrelated delete/insert events.
type Replacement struct {
	SourceIndex  int    `json:"sourceIndex"`
	TargetIndex  int    `json:"targetIndex"`
	DeletedChar  string `json:"deletedChar"`
	InsertedChar string `json:"insertedChar"`
}

// PhaseLetters holds the four letter snapshots, one per phase start.
type PhaseLetters struct {
	Idle        []Letter `json:"idle"`
	AfterDelete []Letter `json:"afterDelete"`
	Moving      []Letter `json:"moving"`
	Final       []Letter `json:"final"`
}

// EditPlan is the full, immutable description of how Source morphs into
// Target. A plan is built once per word pair and never mutated; a new pair
// gets a brand-new plan.
type EditPlan struct {
	Source string `json:"source"`
	Target string `json:"target"`

	// Deletions lists removed source indices in descending order, so a
	// renderer can delete them in place without reindexing.
	Deletions []int `json:"deletions"`

	// Insertions lists target positions that need a fresh character,
	// ascending by position. Replaced slots are included: Deletions and
	// Insertions together always round-trip Source into Target, and
	// Replacements is an annotation layer over them.
	Insertions []Insertion `json:"insertions"`

	// SurvivorPairs maps every kept source character to its target slot,
	// ascending by target index.
	SurvivorPairs []SurvivorPair `json:"survivorPairs"`

	// Moves is the subset of SurvivorPairs that genuinely reorder: pairs
	// crossing at least one other pair. Survivors that merely shift because
	// of deletions before them are not moves.
	Moves []Move `json:"moves"`

	// HighlightIndices holds the source indices of moves small enough to
	// emphasize, ascending. Large jumps read as teleportation and stay
	// unhighlighted.
	HighlightIndices []int `json:"highlightIndices"`

	// Replacements pairs deletions with insertions that land in the same
	// logical gap.
	Replacements []Replacement `json:"replacements"`

	// TargetToSource maps each survivor's target index back to its source
	// index.
	TargetToSource map[int]int `json:"targetToSourceMap"`

	Letters PhaseLetters `json:"letters"`

	ShouldDelete bool `json:"shouldDelete"`
	ShouldMove   bool `json:"shouldMove"`
	ShouldInsert bool `json:"shouldInsert"`
}
