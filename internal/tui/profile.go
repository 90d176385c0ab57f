package tui

import (
	"fmt"

	"github.com/Unikyri/forohub-tui/models"
)

type profileModel struct {
	user models.Usuario
}

func (m profileModel) View() string {
	out := viewTitle("Mi perfil")

	out += "\n"
	out += fmt.Sprintf("Nombre:   %s\n", m.user.Nombre)
	out += fmt.Sprintf("Correo:   %s\n", m.user.CorreoElectronico)
	if m.user.Perfil.Nombre != "" {
		out += fmt.Sprintf("Perfil:   %s\n", m.user.Perfil.Nombre)
	}
	if !m.user.FechaCreacion.IsZero() {
		out += fmt.Sprintf("Alta:     %s\n", formatFecha(m.user.FechaCreacion))
	}

	out += "\n" + helpStyle.Render("m mis tópicos · r mis respuestas · esc volver")
	return out
}
