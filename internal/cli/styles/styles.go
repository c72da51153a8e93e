// Package styles holds the lipgloss styles shared by the menus and CLI verbs
package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/ledger/internal/config"
)

var (
	// Enabled reports whether Init was called with colour on
	Enabled bool

	// Text styles
	TitleStyle  = lipgloss.NewStyle()
	HeaderStyle = lipgloss.NewStyle() // Table header rows
	SubtleStyle = lipgloss.NewStyle()

	// Status styles
	SuccessStyle = lipgloss.NewStyle()
	ErrorStyle   = lipgloss.NewStyle()
	NoticeStyle  = lipgloss.NewStyle() // Outcomes such as "ID not found."
)

// Init initializes all CLI styles with the given color scheme.
// With enabled false every style renders its input unchanged.
func Init(colors config.ColorScheme, enabled bool) {
	if !enabled {
		Reset()
		return
	}
	Enabled = true

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	SuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Error))

	NoticeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent))
}

// Reset restores the plain styles
func Reset() {
	Enabled = false
	TitleStyle = lipgloss.NewStyle()
	HeaderStyle = lipgloss.NewStyle()
	SubtleStyle = lipgloss.NewStyle()
	SuccessStyle = lipgloss.NewStyle()
	ErrorStyle = lipgloss.NewStyle()
	NoticeStyle = lipgloss.NewStyle()
}
