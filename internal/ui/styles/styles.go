package styles

import "github.com/charmbracelet/lipgloss"

var (
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"} // Field text
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Input placeholders
	PromptColor          = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"} // Single-line prompt
	CursorColor          = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"} // textinput cursor
	HelpColor            = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#696969"} // Footer help
	DiffAddedColor       = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	DiffRemovedColor     = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	StatusErrorColor     = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	TextStyle        = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	PlaceholderStyle = lipgloss.NewStyle().Foreground(TextPlaceholderColor)
	PromptStyle      = lipgloss.NewStyle().Foreground(PromptColor).Bold(true)
	CursorStyle      = lipgloss.NewStyle().Foreground(CursorColor)
	HelpStyle        = lipgloss.NewStyle().Foreground(HelpColor)
	DiffAddedStyle   = lipgloss.NewStyle().Foreground(DiffAddedColor)
	DiffRemovedStyle = lipgloss.NewStyle().Foreground(DiffRemovedColor).Strikethrough(true)
	ErrorStyle       = lipgloss.NewStyle().Foreground(StatusErrorColor)
)

// rebuildStyles recreates the Style values from the current colors.
func rebuildStyles() {
	TextStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	PlaceholderStyle = lipgloss.NewStyle().Foreground(TextPlaceholderColor)
	PromptStyle = lipgloss.NewStyle().Foreground(PromptColor).Bold(true)
	CursorStyle = lipgloss.NewStyle().Foreground(CursorColor)
	HelpStyle = lipgloss.NewStyle().Foreground(HelpColor)
	DiffAddedStyle = lipgloss.NewStyle().Foreground(DiffAddedColor)
	DiffRemovedStyle = lipgloss.NewStyle().Foreground(DiffRemovedColor).Strikethrough(true)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)

	for _, fn := range styleRebuilders {
		fn()
	}
}
