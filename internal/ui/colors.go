package ui

import "github.com/charmbracelet/lipgloss"

// HeaderStyle returns the bold accent style used for headings.
func HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(GetCurrentTheme().Accent)
}

// ErrorStyle returns the style used for error messages.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(GetCurrentTheme().Error)
}

// StyleHeader renders s with HeaderStyle. Without colors s is returned as is.
func StyleHeader(s string) string {
	return render(HeaderStyle(), s)
}

// StyleError renders s with ErrorStyle. Without colors s is returned as is.
func StyleError(s string) string {
	return render(ErrorStyle(), s)
}

func render(style lipgloss.Style, s string) string {
	if GetCurrentTheme().Name == NoColorTheme.Name {
		return s
	}
	return style.Render(s)
}
