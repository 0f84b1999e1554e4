package morph

import "encoding/json"

// Phase is one stage of the four-phase animation.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDeleting
	PhaseMoving
	PhaseInserting
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDeleting:
		return "deleting"
	case PhaseMoving:
		return "moving"
	case PhaseInserting:
		return "inserting"
	case PhaseComplete:
		return "complete"
	}
	return "unknown"
}

// MarshalJSON encodes the phase by name so serialized frames stay readable.
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// Event drives the phase machine. Events arrive from the renderer; the
// machine owns no timers.
type Event int

const (
	EventStart Event = iota
	EventDonePhase
	EventReset
	EventRestart
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "START"
	case EventDonePhase:
		return "DONE_PHASE"
	case EventReset:
		return "RESET"
	case EventRestart:
		return "RESTART"
	}
	return "UNKNOWN"
}

// PhaseCounts holds the per-phase operation counts a machine skips on.
type PhaseCounts struct {
	Deletions  int
	Moves      int
	Insertions int
}

// countsFor derives the skip counts from a plan. The moving phase skips on
// genuine moves, not on the broader ShouldMove flag: a word that only
// shifts left after deletions has no moving phase of its own.
func countsFor(plan *EditPlan) PhaseCounts {
	return PhaseCounts{
		Deletions:  len(plan.Deletions),
		Moves:      len(plan.Moves),
		Insertions: len(plan.Insertions),
	}
}

// transitions is the explicit (phase, event) -> next phase table. Pairs not
// present are no-ops, never errors. EventReset is handled before the table
// lookup since it applies everywhere.
var transitions = map[Phase]map[Event]Phase{
	PhaseIdle: {
		EventStart: PhaseDeleting,
	},
	PhaseDeleting: {
		EventDonePhase: PhaseMoving,
	},
	PhaseMoving: {
		EventDonePhase: PhaseInserting,
	},
	PhaseInserting: {
		EventDonePhase: PhaseComplete,
	},
	PhaseComplete: {
		EventRestart: PhaseIdle,
	},
}

// phaseCount returns the operation count gating the given phase, and
// whether the phase is skippable at all.
func phaseCount(p Phase, counts PhaseCounts) (int, bool) {
	switch p {
	case PhaseDeleting:
		return counts.Deletions, true
	case PhaseMoving:
		return counts.Moves, true
	case PhaseInserting:
		return counts.Insertions, true
	}
	return 0, false
}

// skipForward advances past consecutive phases whose count is zero,
// stopping at the first phase with work or at complete.
func skipForward(p Phase, counts PhaseCounts) Phase {
	for {
		n, skippable := phaseCount(p, counts)
		if !skippable || n > 0 {
			return p
		}
		p++
	}
}

// Machine sequences the phases for one plan. It is owned by exactly one
// animation session; concurrent sessions each get their own machine.
type Machine struct {
	phase  Phase
	counts PhaseCounts
}

// NewMachine returns an idle machine bound to the plan's counts.
func NewMachine(plan *EditPlan) *Machine {
	return &Machine{counts: countsFor(plan)}
}

// Bind re-derives the counts from a (possibly new) plan and returns the
// machine to idle. Use it after EventRestart when the word pair changed.
func (m *Machine) Bind(plan *EditPlan) {
	m.counts = countsFor(plan)
	m.phase = PhaseIdle
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Counts returns the per-phase operation counts the machine skips on.
func (m *Machine) Counts() PhaseCounts {
	return m.counts
}

// Dispatch applies an event and returns the resulting phase. Events that do
// not apply to the current phase leave the machine unchanged.
func (m *Machine) Dispatch(ev Event) Phase {
	if ev == EventReset {
		m.phase = PhaseIdle
		return m.phase
	}
	next, ok := transitions[m.phase][ev]
	if !ok {
		return m.phase
	}
	if ev == EventStart || ev == EventDonePhase {
		next = skipForward(next, m.counts)
	}
	m.phase = next
	return m.phase
}

// PhaseSequence drives a fresh machine from START to completion and returns
// the phases visited, beginning with idle. It is the event-driven view of a
// plan: empty phases never appear.
func PhaseSequence(plan *EditPlan) []Phase {
	m := NewMachine(plan)
	sequence := []Phase{m.Phase()}
	for ev := EventStart; m.Phase() != PhaseComplete; ev = EventDonePhase {
		sequence = append(sequence, m.Dispatch(ev))
	}
	return sequence
}
