// Package textfield provides a multi-line text field that owns its own rune
// buffer and cursor. It is the base field for extended inputs that need
// newlines; single-line inputs use bubbles/textinput instead.
package textfield

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/zjrosen/extedit/internal/textedit"
	"github.com/zjrosen/extedit/internal/ui/styles"
)

// Model is a multi-line text field.
type Model struct {
	value       []rune
	cursor      int // rune offset, 0 = before first rune
	focused     bool
	width       int
	placeholder string

	// Styles
	textStyle        lipgloss.Style
	placeholderStyle lipgloss.Style
}

// New creates a new text field model.
func New() Model {
	return Model{
		width:            40,
		textStyle:        styles.TextStyle,
		placeholderStyle: styles.PlaceholderStyle,
	}
}

// Value returns the current text value.
func (m Model) Value() string {
	return string(m.value)
}

// SetValue sets the text value and clamps cursor.
func (m *Model) SetValue(v string) {
	m.value = []rune(v)
	if m.cursor > len(m.value) {
		m.cursor = len(m.value)
	}
}

// Position returns the cursor offset in runes.
func (m Model) Position() int {
	return m.cursor
}

// SetCursor sets the cursor position (clamped to valid range).
func (m *Model) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(m.value) {
		pos = len(m.value)
	}
	m.cursor = pos
}

// Focused returns whether the field is focused.
func (m Model) Focused() bool {
	return m.focused
}

// Focus focuses the field.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes focus from the field.
func (m *Model) Blur() {
	m.focused = false
}

// SetWidth sets the display width.
func (m *Model) SetWidth(w int) {
	if w < 1 {
		w = 1
	}
	m.width = w
}

// Width returns the display width.
func (m Model) Width() int {
	return m.width
}

// SetPlaceholder sets the placeholder text.
func (m *Model) SetPlaceholder(p string) {
	m.placeholder = p
}

// Height returns the number of display lines View produces.
func (m Model) Height() int {
	return strings.Count(m.View(), "\n") + 1
}

// Update handles key messages. Keys it does not know are ignored.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyRunes:
		// Alt+rune combinations are commands, not text.
		if !keyMsg.Alt {
			m.insert(keyMsg.Runes)
		}
	case tea.KeySpace:
		m.insert([]rune{' '})
	case tea.KeyEnter:
		m.insert([]rune{'\n'})
	case tea.KeyBackspace:
		m.deleteRange(prevBoundary(m.value, m.cursor), m.cursor)
	case tea.KeyDelete:
		m.deleteRange(m.cursor, nextBoundary(m.value, m.cursor))
	case tea.KeyLeft:
		m.cursor = prevBoundary(m.value, m.cursor)
	case tea.KeyRight:
		m.cursor = nextBoundary(m.value, m.cursor)
	case tea.KeyUp:
		m.cursor = m.verticalMove(-1)
	case tea.KeyDown:
		m.cursor = m.verticalMove(1)
	case tea.KeyHome:
		m.apply(m.state().MoveToStartOfLine())
	case tea.KeyEnd:
		m.apply(m.state().MoveToEndOfLine())
	}

	return m, nil
}

func (m Model) state() textedit.State {
	return textedit.State{Value: string(m.value), Cursor: m.cursor}
}

func (m *Model) apply(s textedit.State) {
	m.value = []rune(s.Value)
	m.SetCursor(s.Cursor)
}

// deleteRange removes value[from:to] and leaves the cursor at from.
func (m *Model) deleteRange(from, to int) {
	if from >= to {
		return
	}
	m.apply(textedit.State{
		Value:  string(m.value[:from]) + string(m.value[to:]),
		Cursor: from,
	})
}

func (m *Model) insert(r []rune) {
	m.apply(m.state().Insert(string(r)))
}

// verticalMove returns the cursor offset one line up (dir < 0) or down,
// keeping the display column where the target line is long enough. On the
// first or last line the cursor stays put.
func (m Model) verticalMove(dir int) int {
	lineStart := textedit.StartOfLine(string(m.value[:m.cursor]))
	column := columnOf(m.value, lineStart, m.cursor)

	var targetStart int
	if dir < 0 {
		if lineStart == 0 {
			return m.cursor
		}
		targetStart = textedit.StartOfLine(string(m.value[:lineStart-1]))
	} else {
		lineEnd := m.cursor + textedit.EndOfLine(string(m.value[m.cursor:]))
		if lineEnd >= len(m.value) {
			return m.cursor
		}
		targetStart = lineEnd + 1
	}
	targetEnd := targetStart + textedit.EndOfLine(string(m.value[targetStart:]))

	return offsetAtColumn(m.value, targetStart, targetEnd, column)
}

// ANSI codes for cursor - only toggle reverse, don't reset other styles
const (
	cursorOn  = "\x1b[7m"  // reverse video on
	cursorOff = "\x1b[27m" // reverse video off (not full reset)
)

// View renders the field, word wrapping each logical line to the width.
func (m Model) View() string {
	if len(m.value) == 0 {
		if m.focused {
			return cursorOn + " " + cursorOff
		}
		if m.placeholder != "" {
			return m.placeholderStyle.Render(m.placeholder)
		}
		return ""
	}

	lines := strings.Split(m.withCursor(), "\n")
	for i, line := range lines {
		lines[i] = m.textStyle.Render(wrapLine(line, m.width))
	}
	return strings.Join(lines, "\n")
}

// withCursor returns the value with the cursor cell marked in reverse video.
// A cursor on a newline or past the end is drawn as a highlighted space.
func (m Model) withCursor() string {
	if !m.focused {
		return string(m.value)
	}

	var b strings.Builder
	b.WriteString(string(m.value[:m.cursor]))
	switch {
	case m.cursor >= len(m.value):
		b.WriteString(cursorOn + " " + cursorOff)
		return b.String()
	case m.value[m.cursor] == '\n':
		b.WriteString(cursorOn + " " + cursorOff + "\n")
		b.WriteString(string(m.value[m.cursor+1:]))
	default:
		// The whole cluster under the cursor is highlighted.
		end := nextBoundary(m.value, m.cursor)
		b.WriteString(cursorOn + string(m.value[m.cursor:end]) + cursorOff)
		b.WriteString(string(m.value[end:]))
	}
	return b.String()
}

// wrapLine breaks at word boundaries first, then hard wraps words longer than
// the width. Both passes are ANSI aware, so the cursor codes survive.
func wrapLine(line string, width int) string {
	if width <= 0 {
		return line
	}
	return wrap.String(wordwrap.String(line, width), width)
}
