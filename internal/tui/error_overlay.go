package tui

// errorOverlayModel blocks the screen until the user dismisses the message.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(
		errorStyle.Render("Erro: "+m.message) + "\n\n" + helpStyle.Render("enter / esc: fechar"),
	)
}
