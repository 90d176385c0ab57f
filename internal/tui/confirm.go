package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "¿Eliminar \"" + m.message + "\"?\n\n"
	content += "y sí    n no"
	return overlayBoxStyle.Render(content)
}
