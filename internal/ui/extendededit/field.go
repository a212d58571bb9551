package extendededit

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/extedit/internal/ui/styles"
	"github.com/zjrosen/extedit/internal/ui/textfield"
)

// Field is the base text field an extended input wraps: something that owns
// a text value and a cursor and can render and update itself. Update mutates
// the field in place.
type Field interface {
	Value() string
	Position() int
	SetValue(string)
	SetCursor(int)
	Update(tea.Msg) tea.Cmd
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	SetWidth(int)
	SetPlaceholder(string)
}

// SingleLine adapts bubbles/textinput to Field. Newlines and tabs in values
// are replaced with spaces by textinput.
type SingleLine struct {
	Input textinput.Model
}

// NewSingleLine returns a single-line field styled with the current theme.
func NewSingleLine(prompt string) *SingleLine {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = styles.PromptStyle
	ti.TextStyle = styles.TextStyle
	ti.PlaceholderStyle = styles.PlaceholderStyle
	ti.Cursor.Style = styles.CursorStyle
	return &SingleLine{Input: ti}
}

func (f *SingleLine) Value() string           { return f.Input.Value() }
func (f *SingleLine) Position() int           { return f.Input.Position() }
func (f *SingleLine) SetValue(v string)       { f.Input.SetValue(v) }
func (f *SingleLine) SetCursor(pos int)       { f.Input.SetCursor(pos) }
func (f *SingleLine) View() string            { return f.Input.View() }
func (f *SingleLine) Focus() tea.Cmd          { return f.Input.Focus() }
func (f *SingleLine) Blur()                   { f.Input.Blur() }
func (f *SingleLine) Focused() bool           { return f.Input.Focused() }
func (f *SingleLine) SetWidth(w int)          { f.Input.Width = w }
func (f *SingleLine) SetPlaceholder(p string) { f.Input.Placeholder = p }

func (f *SingleLine) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.Input, cmd = f.Input.Update(msg)
	return cmd
}

// MultiLine adapts textfield.Model to Field.
type MultiLine struct {
	Area textfield.Model
}

// NewMultiLine returns a multi-line field.
func NewMultiLine() *MultiLine {
	return &MultiLine{Area: textfield.New()}
}

func (f *MultiLine) Value() string           { return f.Area.Value() }
func (f *MultiLine) Position() int           { return f.Area.Position() }
func (f *MultiLine) SetValue(v string)       { f.Area.SetValue(v) }
func (f *MultiLine) SetCursor(pos int)       { f.Area.SetCursor(pos) }
func (f *MultiLine) View() string            { return f.Area.View() }
func (f *MultiLine) Blur()                   { f.Area.Blur() }
func (f *MultiLine) Focused() bool           { return f.Area.Focused() }
func (f *MultiLine) SetWidth(w int)          { f.Area.SetWidth(w) }
func (f *MultiLine) SetPlaceholder(p string) { f.Area.SetPlaceholder(p) }

func (f *MultiLine) Focus() tea.Cmd {
	f.Area.Focus()
	return nil
}

func (f *MultiLine) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.Area, cmd = f.Area.Update(msg)
	return cmd
}
