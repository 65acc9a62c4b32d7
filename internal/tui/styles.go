package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/cards/internal/ui"
)

// ------- Lip Gloss styles, derived from the active ui theme -------

type styles struct {
	title, success, pending, accent, muted lipgloss.Style
	card, cardSelected                     lipgloss.Style
	optionCursor, details, empty           lipgloss.Style
}

func newStyles() styles {
	t := ui.Current()
	border := lipgloss.RoundedBorder()
	if t.Name == "mono" {
		border = lipgloss.NormalBorder()
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		pending: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Pending)),
		accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		muted:   lipgloss.NewStyle().Faint(true),

		card: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1).
			Width(cardWidth),
		cardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(0, 1).
			Width(cardWidth),

		optionCursor: lipgloss.NewStyle().Bold(true).Reverse(true),
		details: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
		empty: lipgloss.NewStyle().Faint(true).Padding(1, 2),
	}
}
