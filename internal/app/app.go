// Package app contains the root application model: a single extended input
// with a help footer, accepted with ctrl+s or cancelled with esc.
package app

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/extedit/internal/config"
	"github.com/zjrosen/extedit/internal/keys"
	"github.com/zjrosen/extedit/internal/log"
	"github.com/zjrosen/extedit/internal/ui/extendededit"
	"github.com/zjrosen/extedit/internal/ui/styles"
)

// ErrCancelled is returned by Result when the user left without accepting.
var ErrCancelled = errors.New("edit cancelled")

// Model is the root application state.
type Model struct {
	input    extendededit.Model
	help     help.Model
	keymap   keys.AppKeyMap
	focusCmd tea.Cmd

	title    string
	original string
	maxWidth int

	width  int
	height int

	accepted  bool
	cancelled bool
}

// New creates the application model editing value.
// title is shown above the input when non-empty.
func New(cfg config.EditorConfig, value, title string) Model {
	var field extendededit.Field
	if cfg.Multiline {
		field = extendededit.NewMultiLine()
	} else {
		field = extendededit.NewSingleLine(cfg.Prompt)
	}

	input := extendededit.New(field, extendededit.WithKillRingSize(cfg.KillRingSize))
	input.SetWidth(cfg.Width)
	input.SetPlaceholder(cfg.Placeholder)
	input.SetValue(value)
	// Start with the cursor at the end of the text.
	input.SetCursor(len([]rune(value)))
	focusCmd := input.Focus()

	h := help.New()
	h.Styles.ShortKey = styles.HelpStyle.Bold(true)
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.HelpStyle
	h.Styles.FullKey = styles.HelpStyle.Bold(true)
	h.Styles.FullDesc = styles.HelpStyle
	h.Styles.FullSeparator = styles.HelpStyle

	return Model{
		input:    input,
		help:     h,
		keymap:   keys.App,
		focusCmd: focusCmd,
		title:    title,
		original: value,
		maxWidth: cfg.Width,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.focusCmd
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		w := m.maxWidth
		if msg.Width > 0 && msg.Width < w {
			w = msg.Width
		}
		m.input.SetWidth(w)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Accept):
			m.accepted = true
			log.Info(log.CatApp, "edit accepted", "changed", m.Changed())
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Cancel):
			m.cancelled = true
			log.Info(log.CatApp, "edit cancelled")
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(styles.PromptStyle.Render(m.title))
		b.WriteString("\n\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keymap))
	return b.String()
}

// Value returns the current text.
func (m Model) Value() string {
	return m.input.Value()
}

// Original returns the text the model started with.
func (m Model) Original() string {
	return m.original
}

// Changed reports whether the text differs from the original.
func (m Model) Changed() bool {
	return m.input.Value() != m.original
}

// Result returns the accepted text, or ErrCancelled when the program ended
// any other way.
func (m Model) Result() (string, error) {
	if !m.accepted || m.cancelled {
		return "", ErrCancelled
	}
	return m.input.Value(), nil
}
