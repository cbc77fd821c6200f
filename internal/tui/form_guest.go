// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/guest-list-admin/models"
)

const nameCharLimit = 120

// unknownAttendance marks a stored status outside [models.Attendances]. It is
// sent back untouched until the user picks a known one.
const unknownAttendance = -1

// formGuestModel is the add/edit modal. The attendance selector is only
// offered while editing; new guests start unconfirmed.
type formGuestModel struct {
	input      textinput.Model
	editing    bool
	guestID    models.GuestID
	attendance int
	original   models.Attendance
	submitting bool
}

func newFormGuestModel(guest *models.Guest) formGuestModel {
	input := textinput.New()
	input.Placeholder = "Nome do convidado"
	input.CharLimit = nameCharLimit
	input.Width = 40
	input.Focus()

	m := formGuestModel{input: input}
	if guest == nil {
		return m
	}

	m.editing = true
	m.guestID = guest.ID
	// SetValue cuts at CharLimit
	if n := utf8.RuneCountInString(guest.Name); n > m.input.CharLimit {
		m.input.CharLimit = n
	}
	m.input.SetValue(guest.Name)

	m.original = guest.Attendance
	m.attendance = unknownAttendance
	if guest.Attendance == "" {
		m.attendance = 0
	}
	for i, a := range models.Attendances {
		if a == guest.Attendance {
			m.attendance = i
		}
	}
	return m
}

func (m formGuestModel) cycleAttendance(step int) formGuestModel {
	n := len(models.Attendances)
	if m.attendance == unknownAttendance {
		m.attendance = 0
		if step < 0 {
			m.attendance = n - 1
		}
		return m
	}
	m.attendance = (m.attendance + step + n) % n
	return m
}

func (m formGuestModel) toGuest() models.Guest {
	guest := models.Guest{
		ID:   m.guestID,
		Name: m.input.Value(),
	}
	switch {
	case !m.editing:
	case m.attendance == unknownAttendance:
		guest.Attendance = m.original
	default:
		guest.Attendance = models.Attendances[m.attendance]
	}
	return guest
}

func (m formGuestModel) View() string {
	title := "Adicionar Convidado"
	if m.editing {
		title = "Editar Convidado"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString("Nome:     [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.editing {
		b.WriteString("Presença: ")
		if m.attendance == unknownAttendance {
			b.WriteString("<" + string(m.original) + "?> ")
		}
		for i, a := range models.Attendances {
			label := a.Label()
			if i == m.attendance {
				label = "<" + label + ">"
			} else {
				label = " " + label + " "
			}
			b.WriteString(label)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\nSalvando...\n")
	}

	help := "esc cancelar  enter salvar"
	if m.editing {
		help = "esc cancelar  ←/→ presença  enter salvar"
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(help))

	return overlayBoxStyle.Render(b.String())
}
