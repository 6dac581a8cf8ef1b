package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named pair of colors used for styled console text.
type Theme struct {
	Name string
	// Accent colors verse headings.
	Accent lipgloss.TerminalColor
	// Error colors error messages.
	Error lipgloss.TerminalColor
}

var (
	// DarkTheme suits dark terminal backgrounds. It is the default.
	DarkTheme = Theme{
		Name:   "dark",
		Accent: lipgloss.Color("#FF8C00"),
		Error:  lipgloss.Color("196"),
	}

	// LightTheme suits light terminal backgrounds.
	LightTheme = Theme{
		Name:   "light",
		Accent: lipgloss.Color("#AF0000"),
		Error:  lipgloss.Color("124"),
	}

	// NoColorTheme leaves text unstyled.
	NoColorTheme = Theme{
		Name:   "none",
		Accent: lipgloss.NoColor{},
		Error:  lipgloss.NoColor{},
	}

	themes = []Theme{DarkTheme, LightTheme, NoColorTheme}

	mu      sync.RWMutex
	current = DarkTheme
)

// ThemeNames lists the names accepted by SetTheme.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetTheme activates the theme called name. Unknown names select DarkTheme.
func SetTheme(name string) {
	t := DarkTheme
	for _, candidate := range themes {
		if candidate.Name == name {
			t = candidate
			break
		}
	}

	mu.Lock()
	current = t
	mu.Unlock()
}

// InitTheme activates the theme called name, unless noColor is true or the
// NO_COLOR environment variable is present (https://no-color.org/), in which
// case NoColorTheme wins.
func InitTheme(name string, noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		name = NoColorTheme.Name
	}
	SetTheme(name)
}
