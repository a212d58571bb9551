// Package extendededit provides a text input that adds emacs-style line
// editing commands (ctrl+w, ctrl+u, ctrl+k, ctrl+a, ctrl+e, ctrl+d, plus
// alt+b/alt+f word motion and a ctrl+y kill ring) on top of a base Field.
//
// Keys bound to a command are handled here and never reach the base field.
// Every other message is forwarded to the field untouched, so insertion,
// arrows and the like keep the field's own behaviour.
package extendededit

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/extedit/internal/keys"
	"github.com/zjrosen/extedit/internal/log"
	"github.com/zjrosen/extedit/internal/textedit"
)

// Model is an extended text input.
//
// The field and kill ring are shared by copies of a Model, so use the value
// returned from Update rather than keeping old copies around.
type Model struct {
	field  Field
	keymap keys.EditKeyMap
	kills  *textedit.KillRing

	lastCmd  keys.Command
	lastYank string // text the previous yank inserted, replaced by yank-pop
}

// Option configures a Model.
type Option func(*Model)

// WithKillRingSize sets how many kills are remembered.
func WithKillRingSize(n int) Option {
	return func(m *Model) {
		m.kills = textedit.NewKillRing(n)
	}
}

// WithKeyMap replaces the editing keymap.
func WithKeyMap(km keys.EditKeyMap) Option {
	return func(m *Model) {
		m.keymap = km
	}
}

// New wraps field with the editing commands.
func New(field Field, opts ...Option) Model {
	m := Model{
		field:  field,
		keymap: keys.Edit,
		kills:  textedit.NewKillRing(textedit.DefaultKillRingSize),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update dispatches bound keys to their commands and forwards everything
// else to the base field, returning the field's command unchanged.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if cmd := m.command(keyMsg); cmd != keys.CmdNone {
			m.Apply(cmd)
			return m, nil
		}
		m.lastCmd = keys.CmdNone
		m.kills.Break()
	}
	return m, m.field.Update(msg)
}

// Handles reports whether msg would be consumed by an editing command.
// Hosts use it to decide whether a key should also propagate to them.
func (m Model) Handles(msg tea.Msg) bool {
	keyMsg, ok := msg.(tea.KeyMsg)
	return ok && m.command(keyMsg) != keys.CmdNone
}

// Keypress runs the command bound to a key identifier such as "ctrl w" or
// "ctrl+w". It reports false, and changes nothing, when the identifier is not
// bound; the caller then hands the key to the base field itself.
func (m *Model) Keypress(id string) bool {
	cmd := m.keymap.Resolve(id)
	if cmd == keys.CmdNone || !m.field.Focused() {
		return false
	}
	m.Apply(cmd)
	return true
}

func (m Model) command(msg tea.KeyMsg) keys.Command {
	if !m.field.Focused() {
		return keys.CmdNone
	}
	return m.keymap.Lookup(msg)
}

// Apply runs one editing command against the field.
func (m *Model) Apply(cmd keys.Command) {
	before := m.State()

	var after textedit.State
	switch cmd {
	case keys.CmdDeleteWordBackward:
		after = before.DeleteWordBackward(1)
	case keys.CmdDeleteToStartOfLine:
		after = before.DeleteToStartOfLine()
	case keys.CmdDeleteToEndOfLine:
		after = before.DeleteToEndOfLine()
	case keys.CmdMoveToStartOfLine:
		after = before.MoveToStartOfLine()
	case keys.CmdMoveToEndOfLine:
		after = before.MoveToEndOfLine()
	case keys.CmdDeleteForwardChar:
		after = before.DeleteForwardChar()
	case keys.CmdMoveWordBackward:
		after = before.MoveWordBackward()
	case keys.CmdMoveWordForward:
		after = before.MoveWordForward()
	case keys.CmdYank:
		after = m.yank(before)
	case keys.CmdYankPop:
		after = m.yankPop(before)
	default:
		return
	}

	switch {
	case cmd.IsKill():
		dir := textedit.KillBackward
		if cmd == keys.CmdDeleteToEndOfLine {
			dir = textedit.KillForward
		}
		m.kills.Record(textedit.Removed(before, after), dir)
	case cmd == keys.CmdYank || cmd == keys.CmdYankPop:
		// Yank and Rotate end the chain themselves.
	default:
		m.kills.Break()
	}

	m.setState(after)
	m.lastCmd = cmd

	log.Debug(log.CatEdit, "command applied", "cmd", cmd, "cursor", after.Cursor, "len", after.Len())
}

func (m *Model) yank(s textedit.State) textedit.State {
	text, ok := m.kills.Yank()
	if !ok {
		m.lastYank = ""
		return s
	}
	m.lastYank = text
	return s.Insert(text)
}

// yankPop replaces the text the previous yank inserted with the next older
// kill. It only works right after a yank and when the yanked text is still
// directly before the cursor.
func (m *Model) yankPop(s textedit.State) textedit.State {
	if (m.lastCmd != keys.CmdYank && m.lastCmd != keys.CmdYankPop) || m.lastYank == "" {
		return s
	}
	n := len([]rune(m.lastYank))
	before := []rune(s.Before())
	if n > len(before) || string(before[len(before)-n:]) != m.lastYank {
		return s
	}

	text, ok := m.kills.Rotate()
	if !ok {
		return s
	}
	trimmed := textedit.State{Value: string(before[:len(before)-n]) + s.After(), Cursor: len(before) - n}
	m.lastYank = text
	return trimmed.Insert(text)
}

// State returns the field's text and cursor.
func (m Model) State() textedit.State {
	return textedit.New(m.field.Value(), m.field.Position())
}

// setState writes s back to the field in one step.
func (m *Model) setState(s textedit.State) {
	if s.Value != m.field.Value() {
		m.field.SetValue(s.Value)
	}
	m.field.SetCursor(s.Cursor)
}

// Value returns the current text.
func (m Model) Value() string {
	return m.field.Value()
}

// SetValue replaces the text, keeping the cursor in range.
func (m *Model) SetValue(v string) {
	m.field.SetValue(v)
	m.field.SetCursor(m.State().Cursor)
}

// Position returns the cursor offset in runes.
func (m Model) Position() int {
	return m.field.Position()
}

// SetCursor moves the cursor, clamped to the text.
func (m *Model) SetCursor(pos int) {
	m.field.SetCursor(textedit.New(m.field.Value(), pos).Cursor)
}

// Field returns the wrapped base field.
func (m Model) Field() Field {
	return m.field
}

// KillRing returns the kill ring shared by this input.
func (m Model) KillRing() *textedit.KillRing {
	return m.kills
}

// Focus focuses the field.
func (m *Model) Focus() tea.Cmd {
	return m.field.Focus()
}

// Blur removes focus from the field.
func (m *Model) Blur() {
	m.field.Blur()
}

// Focused returns whether the field is focused.
func (m Model) Focused() bool {
	return m.field.Focused()
}

// SetWidth sets the display width of the field.
func (m *Model) SetWidth(w int) {
	m.field.SetWidth(w)
}

// SetPlaceholder sets the text shown while the field is empty.
func (m *Model) SetPlaceholder(p string) {
	m.field.SetPlaceholder(p)
}

// View renders the field.
func (m Model) View() string {
	return m.field.View()
}
