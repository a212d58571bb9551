// Package keys contains keybinding definitions.
package keys

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Command is one of the editing commands the extended input understands.
// The set is closed; CmdNone means the key belongs to the base field.
type Command int

const (
	CmdNone Command = iota
	CmdDeleteWordBackward
	CmdDeleteToStartOfLine
	CmdDeleteToEndOfLine
	CmdMoveToStartOfLine
	CmdMoveToEndOfLine
	CmdDeleteForwardChar
	CmdMoveWordBackward
	CmdMoveWordForward
	CmdYank
	CmdYankPop
)

var commandNames = map[Command]string{
	CmdNone:                "none",
	CmdDeleteWordBackward:  "delete-word-backward",
	CmdDeleteToStartOfLine: "delete-to-start-of-line",
	CmdDeleteToEndOfLine:   "delete-to-end-of-line",
	CmdMoveToStartOfLine:   "move-to-start-of-line",
	CmdMoveToEndOfLine:     "move-to-end-of-line",
	CmdDeleteForwardChar:   "delete-forward-char",
	CmdMoveWordBackward:    "move-word-backward",
	CmdMoveWordForward:     "move-word-forward",
	CmdYank:                "yank",
	CmdYankPop:             "yank-pop",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// IsKill reports whether the command deletes text that should be saved for yanking.
func (c Command) IsKill() bool {
	switch c {
	case CmdDeleteWordBackward, CmdDeleteToStartOfLine, CmdDeleteToEndOfLine:
		return true
	default:
		return false
	}
}

// EditKeyMap binds the extended input's editing commands.
type EditKeyMap struct {
	DeleteWordBackward  key.Binding
	DeleteToStartOfLine key.Binding
	DeleteToEndOfLine   key.Binding
	MoveToStartOfLine   key.Binding
	MoveToEndOfLine     key.Binding
	DeleteForwardChar   key.Binding
	MoveWordBackward    key.Binding
	MoveWordForward     key.Binding
	Yank                key.Binding
	YankPop             key.Binding
}

// DefaultEditKeyMap returns the fixed emacs-style editing bindings.
func DefaultEditKeyMap() EditKeyMap {
	return EditKeyMap{
		DeleteWordBackward: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "delete word"),
		),
		DeleteToStartOfLine: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "delete to line start"),
		),
		DeleteToEndOfLine: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "delete to line end"),
		),
		MoveToStartOfLine: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "line start"),
		),
		MoveToEndOfLine: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "line end"),
		),
		DeleteForwardChar: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete char"),
		),
		MoveWordBackward: key.NewBinding(
			key.WithKeys("alt+b"),
			key.WithHelp("alt+b", "word back"),
		),
		MoveWordForward: key.NewBinding(
			key.WithKeys("alt+f"),
			key.WithHelp("alt+f", "word forward"),
		),
		Yank: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "yank"),
		),
		YankPop: key.NewBinding(
			key.WithKeys("alt+y"),
			key.WithHelp("alt+y", "yank previous"),
		),
	}
}

// Edit is the editing keymap shared by every extended input.
var Edit = DefaultEditKeyMap()

type entry struct {
	cmd     Command
	binding key.Binding
}

// table lists the bindings in dispatch order.
func (k EditKeyMap) table() []entry {
	return []entry{
		{CmdDeleteWordBackward, k.DeleteWordBackward},
		{CmdDeleteToStartOfLine, k.DeleteToStartOfLine},
		{CmdDeleteToEndOfLine, k.DeleteToEndOfLine},
		{CmdMoveToStartOfLine, k.MoveToStartOfLine},
		{CmdMoveToEndOfLine, k.MoveToEndOfLine},
		{CmdDeleteForwardChar, k.DeleteForwardChar},
		{CmdMoveWordBackward, k.MoveWordBackward},
		{CmdMoveWordForward, k.MoveWordForward},
		{CmdYank, k.Yank},
		{CmdYankPop, k.YankPop},
	}
}

// Lookup returns the command bound to msg, or CmdNone.
func (k EditKeyMap) Lookup(msg tea.KeyMsg) Command {
	for _, e := range k.table() {
		if key.Matches(msg, e.binding) {
			return e.cmd
		}
	}
	return CmdNone
}

// Resolve returns the command bound to a key identifier. Both the
// bubbletea form ("ctrl+w") and the space separated form ("ctrl w") work.
func (k EditKeyMap) Resolve(id string) Command {
	id = Normalize(id)
	for _, e := range k.table() {
		if !e.binding.Enabled() {
			continue
		}
		for _, bound := range e.binding.Keys() {
			if bound == id {
				return e.cmd
			}
		}
	}
	return CmdNone
}

// ShortHelp returns keybindings for the short help view.
func (k EditKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.DeleteWordBackward, k.DeleteToStartOfLine, k.DeleteToEndOfLine}
}

// FullHelp returns keybindings for the full help view.
func (k EditKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.DeleteWordBackward, k.DeleteToStartOfLine, k.DeleteToEndOfLine, k.DeleteForwardChar},
		{k.MoveToStartOfLine, k.MoveToEndOfLine, k.MoveWordBackward, k.MoveWordForward},
		{k.Yank, k.YankPop},
	}
}

// Normalize rewrites a space separated key identifier such as "ctrl w" or
// "meta b" into bubbletea's "ctrl+w" / "alt+b" form. Identifiers already in
// that form, and the bare space key, come back unchanged.
func Normalize(id string) string {
	fields := strings.Fields(id)
	if len(fields) < 2 {
		return id
	}
	// Only the modifiers are case-folded; the last field is the key itself.
	for i := 0; i < len(fields)-1; i++ {
		mod := strings.ToLower(fields[i])
		if mod == "meta" {
			mod = "alt"
		}
		fields[i] = mod
	}
	return strings.Join(fields, "+")
}

// AppKeyMap defines the keybindings of the editing host.
type AppKeyMap struct {
	Accept key.Binding
	Cancel key.Binding
	Help   key.Binding
}

// DefaultAppKeyMap returns the default host keybindings.
func DefaultAppKeyMap() AppKeyMap {
	return AppKeyMap{
		Accept: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "toggle help"),
		),
	}
}

// App is the host keymap.
var App = DefaultAppKeyMap()

// ShortHelp returns keybindings for the short help view.
func (k AppKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Cancel, k.Help}
}

// FullHelp returns keybindings for the full help view, including the
// editing commands.
func (k AppKeyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{k.Accept, k.Cancel, k.Help}}, Edit.FullHelp()...)
}
