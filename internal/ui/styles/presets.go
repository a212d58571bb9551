package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":       DefaultPreset,
	"high-contrast": HighContrastPreset,
}

// DefaultPreset matches the colors declared in styles.go (Dark values).
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default extedit theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CCCCCC",
		TokenTextPlaceholder: "#777777",
		TokenPrompt:          "#54A0FF",
		TokenCursor:          "#FFFFFF",
		TokenHelp:            "#696969",
		TokenDiffAdded:       "#73F59F",
		TokenDiffRemoved:     "#FF8787",
		TokenStatusError:     "#FF8787",
	},
}

// HighContrastPreset trades subtlety for legibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "Maximum contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#FFFFFF",
		TokenTextPlaceholder: "#AAAAAA",
		TokenPrompt:          "#FFFF00",
		TokenCursor:          "#FFFF00",
		TokenHelp:            "#FFFFFF",
		TokenDiffAdded:       "#00FF00",
		TokenDiffRemoved:     "#FF0000",
		TokenStatusError:     "#FF0000",
	},
}
