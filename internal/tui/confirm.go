package tui

import (
	"fmt"

	"github.com/MKhiriev/guest-list-admin/internal/app"
	"github.com/MKhiriev/guest-list-admin/models"
)

type confirmModel struct {
	guest models.Guest
}

func (m confirmModel) View() string {
	content := fmt.Sprintf(app.MsgConfirmDeleteFormat, m.guest.Name) + "\n\n"
	content += helpStyle.Render("y sim    n não")
	return overlayBoxStyle.Render(content)
}
