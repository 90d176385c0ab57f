package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	correo := textinput.New()
	correo.Placeholder = "correo electrónico"
	correo.CharLimit = 100
	correo.Width = 40
	correo.Focus()

	contrasena := textinput.New()
	contrasena.Placeholder = "contraseña"
	contrasena.CharLimit = 256
	contrasena.Width = 40
	contrasena.EchoMode = textinput.EchoPassword
	contrasena.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{correo, contrasena}}
}

func (m loginModel) View() string {
	out := viewTitle("Iniciar sesión")
	for _, input := range m.inputs {
		out += "\n" + input.View()
	}
	out += "\n"
	if m.submitting {
		out += "\nEnviando...\n"
	}
	out += "\n" + helpStyle.Render("enter entrar  tab siguiente campo  esc volver")
	return out
}
