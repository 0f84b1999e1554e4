// Package ui hosts the terminal animation player. It consumes the
// pre-timed frame script; the engine's event-driven phase machine is the
// other, equivalent way to drive a renderer.
package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsnanigans/respell/pkg/morph"
)

// frameMsg advances the player to the frame at this index.
type frameMsg int

// PlayerModel steps through an animation script frame by frame.
type PlayerModel struct {
	plan        *morph.EditPlan
	frames      []morph.Frame
	index       int
	playing     bool
	highlighted map[string]bool
	progress    progress.Model
	styles      Styles
}

// NewPlayer builds a player for the plan and its frames. The frame list
// must come from morph.BuildScript for the same plan.
func NewPlayer(plan *morph.EditPlan, frames []morph.Frame) PlayerModel {
	highlighted := make(map[string]bool, len(plan.HighlightIndices))
	for _, i := range plan.HighlightIndices {
		highlighted[morph.SourceID(i)] = true
	}
	return PlayerModel{
		plan:        plan,
		frames:      frames,
		playing:     true,
		highlighted: highlighted,
		progress:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(32)),
		styles:      DefaultStyles(),
	}
}

func (m PlayerModel) Init() tea.Cmd {
	return advanceAfter(1, m.frames[0].Duration)
}

func advanceAfter(next int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return frameMsg(next) })
}

func (m PlayerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.index = 0
			m.playing = true
			return m, advanceAfter(1, m.frames[0].Duration)
		}

	case frameMsg:
		next := int(msg)
		if next != m.index+1 {
			// Stale tick from before a restart.
			return m, nil
		}
		if next >= len(m.frames) {
			m.playing = false
			return m, nil
		}
		m.index = next
		if next == len(m.frames)-1 {
			m.playing = false
			return m, nil
		}
		return m, advanceAfter(next+1, m.frames[next].Duration)
	}
	return m, nil
}

func (m PlayerModel) View() string {
	frame := m.frames[m.index]

	deleting := make(map[string]bool, len(frame.DeletingIDs))
	for _, id := range frame.DeletingIDs {
		deleting[id] = true
	}

	var word strings.Builder
	for _, l := range frame.Letters {
		word.WriteString(m.renderLetter(frame, l, deleting))
	}

	var b strings.Builder
	b.WriteString(m.styles.PhaseLabel.Render(frame.Phase.String()))
	b.WriteString("\n")
	b.WriteString(m.styles.Word.Render(word.String()))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.percent()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("r restart · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m PlayerModel) renderLetter(frame morph.Frame, l morph.Letter, deleting map[string]bool) string {
	switch {
	case l.IsPlaceholder():
		return m.styles.Placeholder.Render("·")
	case deleting[l.ID]:
		return m.styles.Deleting.Render(l.Char)
	case strings.HasPrefix(l.ID, "ins-"):
		return m.styles.Inserted.Render(l.Char)
	case m.highlighted[l.ID] && frame.Phase == morph.PhaseMoving:
		return m.styles.Highlighted.Render(l.Char)
	default:
		return m.styles.Letter.Render(l.Char)
	}
}

func (m PlayerModel) percent() float64 {
	if len(m.frames) <= 1 {
		return 1
	}
	return float64(m.index) / float64(len(m.frames)-1)
}
