package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Edit Keybinding Tests
// ============================================================================

func TestEdit_KeyAssignments(t *testing.T) {
	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{"DeleteWordBackward uses ctrl+w", Edit.DeleteWordBackward, []string{"ctrl+w"}},
		{"DeleteToStartOfLine uses ctrl+u", Edit.DeleteToStartOfLine, []string{"ctrl+u"}},
		{"DeleteToEndOfLine uses ctrl+k", Edit.DeleteToEndOfLine, []string{"ctrl+k"}},
		{"MoveToStartOfLine uses ctrl+a", Edit.MoveToStartOfLine, []string{"ctrl+a"}},
		{"MoveToEndOfLine uses ctrl+e", Edit.MoveToEndOfLine, []string{"ctrl+e"}},
		{"DeleteForwardChar uses ctrl+d", Edit.DeleteForwardChar, []string{"ctrl+d"}},
		{"MoveWordBackward uses alt+b", Edit.MoveWordBackward, []string{"alt+b"}},
		{"MoveWordForward uses alt+f", Edit.MoveWordForward, []string{"alt+f"}},
		{"Yank uses ctrl+y", Edit.Yank, []string{"ctrl+y"}},
		{"YankPop uses alt+y", Edit.YankPop, []string{"alt+y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
			require.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestEdit_LookupKeyMsg(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want Command
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlW}, CmdDeleteWordBackward},
		{tea.KeyMsg{Type: tea.KeyCtrlU}, CmdDeleteToStartOfLine},
		{tea.KeyMsg{Type: tea.KeyCtrlK}, CmdDeleteToEndOfLine},
		{tea.KeyMsg{Type: tea.KeyCtrlA}, CmdMoveToStartOfLine},
		{tea.KeyMsg{Type: tea.KeyCtrlE}, CmdMoveToEndOfLine},
		{tea.KeyMsg{Type: tea.KeyCtrlD}, CmdDeleteForwardChar},
		{tea.KeyMsg{Type: tea.KeyCtrlY}, CmdYank},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}, Alt: true}, CmdMoveWordBackward},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}, Alt: true}, CmdMoveWordForward},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}, Alt: true}, CmdYankPop},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}, CmdNone},
		{tea.KeyMsg{Type: tea.KeyEnter}, CmdNone},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, CmdNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			require.Equal(t, tt.want, Edit.Lookup(tt.msg))
		})
	}
}

func TestEdit_ResolveIdentifiers(t *testing.T) {
	require.Equal(t, CmdDeleteWordBackward, Edit.Resolve("ctrl w"))
	require.Equal(t, CmdDeleteWordBackward, Edit.Resolve("ctrl+w"))
	require.Equal(t, CmdDeleteToStartOfLine, Edit.Resolve("ctrl u"))
	require.Equal(t, CmdDeleteToEndOfLine, Edit.Resolve("ctrl k"))
	require.Equal(t, CmdMoveToStartOfLine, Edit.Resolve("ctrl a"))
	require.Equal(t, CmdMoveToEndOfLine, Edit.Resolve("ctrl e"))
	require.Equal(t, CmdDeleteForwardChar, Edit.Resolve("ctrl d"))
	require.Equal(t, CmdMoveWordBackward, Edit.Resolve("meta b"))
	require.Equal(t, CmdNone, Edit.Resolve("ctrl x"))
	require.Equal(t, CmdNone, Edit.Resolve("w"))
	require.Equal(t, CmdNone, Edit.Resolve(""))
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "ctrl+w", Normalize("ctrl w"))
	require.Equal(t, "ctrl+w", Normalize("CTRL w"))
	require.Equal(t, "alt+b", Normalize("meta b"))
	require.Equal(t, "ctrl+w", Normalize("ctrl+w"))
	require.Equal(t, " ", Normalize(" "))
	require.Equal(t, "enter", Normalize("enter"))
}

func TestCommand_String(t *testing.T) {
	require.Equal(t, "none", CmdNone.String())
	require.Equal(t, "delete-word-backward", CmdDeleteWordBackward.String())
	require.Equal(t, "yank-pop", CmdYankPop.String())
	require.Equal(t, "unknown", Command(99).String())
}

func TestCommand_IsKill(t *testing.T) {
	require.True(t, CmdDeleteWordBackward.IsKill())
	require.True(t, CmdDeleteToStartOfLine.IsKill())
	require.True(t, CmdDeleteToEndOfLine.IsKill())
	require.False(t, CmdDeleteForwardChar.IsKill(), "ctrl+d is not saved for yanking")
	require.False(t, CmdMoveToEndOfLine.IsKill())
	require.False(t, CmdNone.IsKill())
}

// ============================================================================
// App Keybinding Tests
// ============================================================================

func TestApp_KeyAssignments(t *testing.T) {
	require.Equal(t, []string{"ctrl+s"}, App.Accept.Keys())
	require.Equal(t, []string{"esc", "ctrl+c"}, App.Cancel.Keys())
	require.Equal(t, []string{"f1"}, App.Help.Keys())
}

func TestApp_FullHelpIncludesEditKeys(t *testing.T) {
	groups := App.FullHelp()
	require.Len(t, groups, 1+len(Edit.FullHelp()))
	require.Equal(t, Edit.DeleteWordBackward.Keys(), groups[1][0].Keys())
}

func TestApp_NoConflictWithEditKeys(t *testing.T) {
	for _, b := range []key.Binding{App.Accept, App.Cancel, App.Help} {
		for _, k := range b.Keys() {
			require.Equal(t, CmdNone, Edit.Resolve(k), "host key %q shadows an edit command", k)
		}
	}
}
