package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	parchment = "#F3E9D2"
	ink       = "#2B1D0E"
	sepia     = "#704214"
	muted     = "#8A7F6A"
	gold      = "#C9A227"
)

func theme() *huh.Theme {
	t := huh.ThemeBase()

	var (
		fg     = lipgloss.AdaptiveColor{Light: ink, Dark: parchment}
		bg     = lipgloss.AdaptiveColor{Light: parchment, Dark: ink}
		border = lipgloss.AdaptiveColor{Light: sepia, Dark: sepia}
		faded  = lipgloss.AdaptiveColor{Light: muted, Dark: muted}
		accent = lipgloss.AdaptiveColor{Light: gold, Dark: gold}
	)

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(faded)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(bg).Background(accent).Bold(true)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(fg).Background(border)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
