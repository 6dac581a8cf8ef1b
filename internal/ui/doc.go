// Package ui holds the color themes of the console programs and the lipgloss
// styles derived from them. Presentation packages ask it for styled text
// rather than building escape codes themselves.
package ui
