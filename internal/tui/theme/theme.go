// Package theme defines color themes for the vowbudget TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Highlighted surface (active tab, selected row)
	SurfaceBright lipgloss.Color // Extra bright surface for emphasis
	Border        lipgloss.Color // Subtle borders
	BorderBright  lipgloss.Color // Prominent borders (cards, focus)
	BorderAccent  lipgloss.Color // Accent-colored borders for focus states
	TextDim       lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted     lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Primary accent (links, active states)
	AccentBright  lipgloss.Color // Brighter accent for emphasis
	AccentDim     lipgloss.Color // Dimmed accent for backgrounds
	Green         lipgloss.Color
	GreenBright   lipgloss.Color
	Orange        lipgloss.Color
	Red           lipgloss.Color
	Blue          lipgloss.Color
	BlueBright    lipgloss.Color
	Yellow        lipgloss.Color
	Magenta       lipgloss.Color
	Cyan          lipgloss.Color
}

// Active is the currently selected theme.
var Active = Blush

// Blush is the default theme - dusty rose on a deep plum background.
var Blush = Theme{
	Name:          "blush",
	Background:    lipgloss.Color("#1A1216"),
	Surface:       lipgloss.Color("#251A1F"),
	SurfaceHover:  lipgloss.Color("#33242B"),
	SurfaceBright: lipgloss.Color("#402E36"),
	Border:        lipgloss.Color("#4A3A40"),
	BorderBright:  lipgloss.Color("#6E5A62"),
	BorderAccent:  lipgloss.Color("#E8799A"),
	TextDim:       lipgloss.Color("#6E5A62"),
	TextMuted:     lipgloss.Color("#9C8790"),
	TextPrimary:   lipgloss.Color("#FFF5F7"),
	Accent:        lipgloss.Color("#E8799A"),
	AccentBright:  lipgloss.Color("#F4A3BB"),
	AccentDim:     lipgloss.Color("#3D2230"),
	Green:         lipgloss.Color("#8FBF7F"),
	GreenBright:   lipgloss.Color("#AEDB9E"),
	Orange:        lipgloss.Color("#E9A66B"),
	Red:           lipgloss.Color("#E26D6D"),
	Blue:          lipgloss.Color("#8AA9E0"),
	BlueBright:    lipgloss.Color("#AFC6F0"),
	Yellow:        lipgloss.Color("#E6C170"),
	Magenta:       lipgloss.Color("#B49BDB"),
	Cyan:          lipgloss.Color("#7CC6C0"),
}

// Champagne is a warm gold and ivory theme.
var Champagne = Theme{
	Name:          "champagne",
	Background:    lipgloss.Color("#17140F"),
	Surface:       lipgloss.Color("#221E17"),
	SurfaceHover:  lipgloss.Color("#2F2A20"),
	SurfaceBright: lipgloss.Color("#3C362A"),
	Border:        lipgloss.Color("#4D4535"),
	BorderBright:  lipgloss.Color("#6F6550"),
	BorderAccent:  lipgloss.Color("#D9B45A"),
	TextDim:       lipgloss.Color("#6F6550"),
	TextMuted:     lipgloss.Color("#A89C80"),
	TextPrimary:   lipgloss.Color("#FBF6EA"),
	Accent:        lipgloss.Color("#D9B45A"),
	AccentBright:  lipgloss.Color("#EDCF84"),
	AccentDim:     lipgloss.Color("#3A3020"),
	Green:         lipgloss.Color("#A3B86C"),
	GreenBright:   lipgloss.Color("#C0D48A"),
	Orange:        lipgloss.Color("#DE8F4E"),
	Red:           lipgloss.Color("#D0645A"),
	Blue:          lipgloss.Color("#7FA3C8"),
	BlueBright:    lipgloss.Color("#A4C0DD"),
	Yellow:        lipgloss.Color("#E8C65A"),
	Magenta:       lipgloss.Color("#C88AA8"),
	Cyan:          lipgloss.Color("#78B5A8"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderBright:  lipgloss.Color("7"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	AccentDim:     lipgloss.Color("0"),
	Green:         lipgloss.Color("2"),
	GreenBright:   lipgloss.Color("10"),
	Orange:        lipgloss.Color("3"),
	Red:           lipgloss.Color("1"),
	Blue:          lipgloss.Color("4"),
	BlueBright:    lipgloss.Color("12"),
	Yellow:        lipgloss.Color("3"),
	Magenta:       lipgloss.Color("5"),
	Cyan:          lipgloss.Color("6"),
}

// All available themes.
var All = []Theme{Blush, Champagne, Terminal}

// ByName returns a theme by its name, defaulting to Blush.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Blush
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
