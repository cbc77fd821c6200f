package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/guest-list-admin/models"
)

const nameColumnWidth = 32

// listModel is the guest list dashboard.
type listModel struct {
	guests  []models.Guest
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	errMsg  string
	subject string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s}
}

func (m listModel) current() (models.Guest, bool) {
	if len(m.guests) == 0 || m.idx < 0 || m.idx >= len(m.guests) {
		return models.Guest{}, false
	}
	return m.guests[m.idx], true
}

// setGuests replaces the collection and keeps the cursor in range.
func (m listModel) setGuests(guests []models.Guest) listModel {
	m.guests = guests
	if m.idx >= len(m.guests) {
		m.idx = len(m.guests) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func (m listModel) View() string {
	var b strings.Builder

	if m.subject != "" {
		b.WriteString("Conectado como: ")
		b.WriteString(m.subject)
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Carregando convidados...\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	case len(m.guests) == 0:
		b.WriteString("Nenhum convidado na lista ainda.\n")
	default:
		summary := models.SummarizeAttendance(m.guests)
		fmt.Fprintf(&b, "Total: %d │ %s: %d │ %s: %d │ %s: %d\n\n",
			summary.Total,
			models.AttendanceGoing.Badge(), summary.Going,
			models.AttendanceNotGoing.Badge(), summary.NotGoing,
			models.AttendanceUnconfirmed.Badge(), summary.Unconfirmed,
		)
		for i, g := range m.guests {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s%-*s  ID: %-6s %s\n",
				cursor,
				nameColumnWidth, fitText(g.Name, nameColumnWidth),
				g.ID.String(),
				badgeStyle(g.Attendance).Render("["+g.Attendance.Badge()+"]"),
			)
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage(
		"Lista de Convidados",
		strings.TrimRight(b.String(), "\n"),
		"↑/↓ mover │ a adicionar │ e editar │ d remover │ r recarregar │ c copiar nome │ l sair da conta │ v sobre │ q fechar",
	)
}
