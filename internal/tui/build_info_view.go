package tui

import (
	"fmt"

	"github.com/MKhiriev/guest-list-admin/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := fmt.Sprintf("%s\n\n%-8s %s\n%-8s %s\n%-8s %s",
		helpStyle.Render("Administração da lista de convidados"),
		"Versão:", info.Version,
		"Data:", info.Date,
		"Commit:", info.Commit,
	)
	return renderPage("SOBRE O PROGRAMA", body, "esc / v: voltar")
}
