package morph

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ANSI color codes
const (
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	bold   = "\033[1m"
	reset  = "\033[0m"
)

// VisualizePlan renders the plan's two words with its operations
// highlighted: deleted source letters red, inserted target letters green,
// movers yellow (bold when the move is emphasized). Intended for terminals.
func VisualizePlan(plan *EditPlan) string {
	deleted := make(map[int]bool, len(plan.Deletions))
	for _, d := range plan.Deletions {
		deleted[d] = true
	}
	moving := make(map[int]bool, len(plan.Moves))
	for _, m := range plan.Moves {
		moving[m.FromIndex] = true
	}
	highlighted := make(map[int]bool, len(plan.HighlightIndices))
	for _, i := range plan.HighlightIndices {
		highlighted[i] = true
	}
	inserted := make(map[int]bool, len(plan.Insertions))
	for _, ins := range plan.Insertions {
		inserted[ins.Position] = true
	}

	var builder strings.Builder
	builder.WriteString("source: ")
	for i, r := range []rune(plan.Source) {
		switch {
		case deleted[i]:
			builder.WriteString(red)
			builder.WriteRune(r)
			builder.WriteString(reset)
		case highlighted[i]:
			builder.WriteString(bold + yellow)
			builder.WriteRune(r)
			builder.WriteString(reset)
		case moving[i]:
			builder.WriteString(yellow)
			builder.WriteRune(r)
			builder.WriteString(reset)
		default:
			builder.WriteRune(r)
		}
	}
	builder.WriteString("\ntarget: ")
	for j, r := range []rune(plan.Target) {
		if inserted[j] {
			builder.WriteString(green)
			builder.WriteRune(r)
			builder.WriteString(reset)
		} else {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// DiffPreview renders an inline character diff of the two words, an
// independent second view of the same edit for eyeballing plans.
func DiffPreview(source, target string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(source, target, false)
	return dmp.DiffPrettyText(diffs)
}
