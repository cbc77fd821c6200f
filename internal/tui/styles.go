package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/guest-list-admin/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	badgeGoingStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	badgeNotGoingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	badgeUnconfirmedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

func badgeStyle(a models.Attendance) lipgloss.Style {
	switch a {
	case models.AttendanceGoing:
		return badgeGoingStyle
	case models.AttendanceNotGoing:
		return badgeNotGoingStyle
	default:
		return badgeUnconfirmedStyle
	}
}
