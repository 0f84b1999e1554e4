package morph

import "time"

// Durations configures how long the player dwells in each phase.
type Durations struct {
	Idle      time.Duration `json:"idle"`
	Deleting  time.Duration `json:"deleting"`
	Moving    time.Duration `json:"moving"`
	Inserting time.Duration `json:"inserting"`
	Final     time.Duration `json:"final"`
}

// ScriptConfig feeds BuildScript. DeletionHold is the pause on the
// post-removal deleting frame, separate from the pre-removal highlight.
type ScriptConfig struct {
	Durations    Durations     `json:"durations"`
	DeletionHold time.Duration `json:"deletionHoldMs"`
}

// DefaultScriptConfig returns timings tuned for word-length animations.
func DefaultScriptConfig() ScriptConfig {
	return ScriptConfig{
		Durations: Durations{
			Idle:      600 * time.Millisecond,
			Deleting:  500 * time.Millisecond,
			Moving:    650 * time.Millisecond,
			Inserting: 500 * time.Millisecond,
			Final:     800 * time.Millisecond,
		},
		DeletionHold: 250 * time.Millisecond,
	}
}

// Frame is one timed step of the animation script.
type Frame struct {
	Phase       Phase         `json:"phase"`
	Letters     []Letter      `json:"letters"`
	DeletingIDs []string      `json:"deletingIds,omitempty"`
	Duration    time.Duration `json:"duration"`
}

// BuildScript flattens a plan into an ordered frame list, the pre-timed
// alternative to driving a Machine with events. Phases with nothing to do
// contribute no frames:
//
//	idle                      always
//	deleting (highlight+hold) only when ShouldDelete
//	moving                    only when ShouldMove
//	inserting                 only when ShouldInsert
//	final                     always
//
// The moving frame keys on ShouldMove rather than on the move count: even
// without genuine reordering, surviving letters slide into their target
// slots once deletions free the space.
func BuildScript(plan *EditPlan, cfg ScriptConfig) []Frame {
	frames := []Frame{{
		Phase:    PhaseIdle,
		Letters:  plan.Letters.Idle,
		Duration: cfg.Durations.Idle,
	}}

	if plan.ShouldDelete {
		ids := make([]string, 0, len(plan.Deletions))
		for i := len(plan.Deletions) - 1; i >= 0; i-- {
			ids = append(ids, SourceID(plan.Deletions[i]))
		}
		frames = append(frames,
			Frame{
				Phase:       PhaseDeleting,
				Letters:     plan.Letters.Idle,
				DeletingIDs: ids,
				Duration:    cfg.Durations.Deleting,
			},
			Frame{
				Phase:    PhaseDeleting,
				Letters:  plan.Letters.AfterDelete,
				Duration: cfg.DeletionHold,
			},
		)
	}

	if plan.ShouldMove {
		frames = append(frames, Frame{
			Phase:    PhaseMoving,
			Letters:  plan.Letters.Moving,
			Duration: cfg.Durations.Moving,
		})
	}

	if plan.ShouldInsert {
		frames = append(frames, Frame{
			Phase:    PhaseInserting,
			Letters:  plan.Letters.Final,
			Duration: cfg.Durations.Inserting,
		})
	}

	return append(frames, Frame{
		Phase:    PhaseComplete,
		Letters:  plan.Letters.Final,
		Duration: cfg.Durations.Final,
	})
}
