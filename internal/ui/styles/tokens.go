// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens users can override in their config.
const (
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextPlaceholder ColorToken = "text.placeholder"
	TokenPrompt          ColorToken = "input.prompt"
	TokenCursor          ColorToken = "input.cursor"
	TokenHelp            ColorToken = "help"
	TokenDiffAdded       ColorToken = "diff.added"
	TokenDiffRemoved     ColorToken = "diff.removed"
	TokenStatusError     ColorToken = "status.error"
)

// AllTokens lists every token in display order.
var AllTokens = []ColorToken{
	TokenTextPrimary,
	TokenTextPlaceholder,
	TokenPrompt,
	TokenCursor,
	TokenHelp,
	TokenDiffAdded,
	TokenDiffRemoved,
	TokenStatusError,
}

func isValidToken(t ColorToken) bool {
	for _, known := range AllTokens {
		if t == known {
			return true
		}
	}
	return false
}
