package morph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func framePhases(frames []Frame) []Phase {
	phases := make([]Phase, len(frames))
	for i, f := range frames {
		phases[i] = f.Phase
	}
	return phases
}

func TestBuildScriptFrameSelection(t *testing.T) {
	cfg := DefaultScriptConfig()

	tests := []struct {
		name   string
		source string
		target string
		want   []Phase
	}{
		{
			name:   "identical words",
			source: "same",
			target: "same",
			want:   []Phase{PhaseIdle, PhaseComplete},
		},
		{
			name:   "pure append still slides survivors",
			source: "cat",
			target: "cats",
			want:   []Phase{PhaseIdle, PhaseMoving, PhaseInserting, PhaseComplete},
		},
		{
			name:   "pure deletion emits both deleting frames",
			source: "hello",
			target: "helo",
			want:   []Phase{PhaseIdle, PhaseDeleting, PhaseDeleting, PhaseMoving, PhaseComplete},
		},
		{
			name:   "anagram",
			source: "recieve",
			target: "receive",
			want:   []Phase{PhaseIdle, PhaseMoving, PhaseComplete},
		},
		{
			name:   "everything at once",
			source: "repetative",
			target: "repetitive",
			want:   []Phase{PhaseIdle, PhaseDeleting, PhaseDeleting, PhaseMoving, PhaseInserting, PhaseComplete},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frames := BuildScript(ComputePlan(tc.source, tc.target), cfg)
			assert.Equal(t, tc.want, framePhases(frames))
		})
	}
}

func TestBuildScriptDeletingFrames(t *testing.T) {
	cfg := DefaultScriptConfig()
	frames := BuildScript(ComputePlan("hello", "helo"), cfg)

	require.Len(t, frames, 5)

	highlight := frames[1]
	assert.Equal(t, []string{"src-3"}, highlight.DeletingIDs)
	assert.Len(t, highlight.Letters, 5, "pre-removal frame still shows every letter")
	assert.Equal(t, cfg.Durations.Deleting, highlight.Duration)

	hold := frames[2]
	assert.Empty(t, hold.DeletingIDs)
	assert.Len(t, hold.Letters, 4, "post-removal frame drops the deleted letter")
	assert.Equal(t, cfg.DeletionHold, hold.Duration)
}

func TestBuildScriptDeletingIDsAscending(t *testing.T) {
	frames := BuildScript(ComputePlan("aaab", "ab"), DefaultScriptConfig())
	require.GreaterOrEqual(t, len(frames), 2)
	assert.Equal(t, []string{"src-1", "src-2"}, frames[1].DeletingIDs)
}

func TestBuildScriptDurations(t *testing.T) {
	cfg := ScriptConfig{
		Durations: Durations{
			Idle:      10 * time.Millisecond,
			Deleting:  20 * time.Millisecond,
			Moving:    30 * time.Millisecond,
			Inserting: 40 * time.Millisecond,
			Final:     50 * time.Millisecond,
		},
		DeletionHold: 5 * time.Millisecond,
	}

	frames := BuildScript(ComputePlan("repetative", "repetitive"), cfg)
	require.Len(t, frames, 6)
	assert.Equal(t, 10*time.Millisecond, frames[0].Duration)
	assert.Equal(t, 20*time.Millisecond, frames[1].Duration)
	assert.Equal(t, 5*time.Millisecond, frames[2].Duration)
	assert.Equal(t, 30*time.Millisecond, frames[3].Duration)
	assert.Equal(t, 40*time.Millisecond, frames[4].Duration)
	assert.Equal(t, 50*time.Millisecond, frames[5].Duration)
}

func TestBuildScriptFinalFrameShowsTarget(t *testing.T) {
	frames := BuildScript(ComputePlan("teh", "the"), DefaultScriptConfig())
	last := frames[len(frames)-1]

	var word string
	for _, l := range last.Letters {
		word += l.Char
	}
	assert.Equal(t, "the", word)
}
