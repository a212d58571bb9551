package app

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/zjrosen/extedit/internal/ui/styles"
)

// RenderDiff renders the changes from before to after inline: removed text is
// struck through in the removed color, inserted text uses the added color.
func RenderDiff(before, after string) string {
	var b strings.Builder
	for _, d := range diffs(before, after) {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			b.WriteString(renderLines(styles.DiffAddedStyle, d.Text))
		case diffmatchpatch.DiffDelete:
			b.WriteString(renderLines(styles.DiffRemovedStyle, d.Text))
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// DiffStats counts the runes inserted and removed going from before to after.
func DiffStats(before, after string) (added, removed int) {
	for _, d := range diffs(before, after) {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += utf8.RuneCountInString(d.Text)
		case diffmatchpatch.DiffDelete:
			removed += utf8.RuneCountInString(d.Text)
		}
	}
	return added, removed
}

func diffs(before, after string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	return dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))
}

// renderLines styles each line on its own so lipgloss does not pad
// multi-line segments to a common width.
func renderLines(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
