package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Header bar (spans full width)
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	// App name in header
	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	// Pane boxes and titles
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface0).
			Padding(0, 1)

	paneTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	// List rows
	authorStyle = lipgloss.NewStyle().Foreground(colorTeal).Bold(true)
	dateStyle   = lipgloss.NewStyle().Foreground(colorOverlay1)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)

	availableGlyphStyle    = lipgloss.NewStyle().Foreground(colorAvailable)
	disconnectedGlyphStyle = lipgloss.NewStyle().Foreground(colorDisconnected)

	// Compose line
	composeLabelStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)

	// Status bar (above footer)
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0).
				Padding(0, 2)

	// Footer bar
	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorMantle).
			Bold(true)
)
