package ui

import "github.com/charmbracelet/lipgloss"

// Seat legend palette: green for available, red for occupied, amber
// for reserved, slate for the selection.
var (
	colorAvailable = lipgloss.Color("#17B722")
	colorOccupied  = lipgloss.Color("#F54545")
	colorSelected  = lipgloss.Color("#6E7272")
	colorReserved  = lipgloss.Color("#E0D952")
	colorAccent    = lipgloss.Color("#0D9488")
	colorDim       = lipgloss.Color("#6B7280")
	colorError     = lipgloss.Color("#EF4444")
	colorWhite     = lipgloss.Color("#FFFFFF")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	okStyle = lipgloss.NewStyle().
			Foreground(colorAvailable)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	// Seat cells, one style per status.
	seatAvailableStyle = lipgloss.NewStyle().Foreground(colorAvailable)
	seatSelectedStyle  = lipgloss.NewStyle().Foreground(colorWhite).Background(colorSelected).Bold(true)
	seatOccupiedStyle  = lipgloss.NewStyle().Foreground(colorOccupied)
	seatReservedStyle  = lipgloss.NewStyle().Foreground(colorReserved)
	seatCursorStyle    = lipgloss.NewStyle().Foreground(colorWhite).Background(colorAccent).Bold(true)
	serviceCellStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// cursor returns the list selection marker.
func cursor(active bool) string {
	if active {
		return lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("› ")
	}
	return "  "
}
