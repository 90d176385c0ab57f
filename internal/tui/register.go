package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	nombre := textinput.New()
	nombre.Placeholder = "nombre"
	nombre.CharLimit = 100
	nombre.Width = 40
	nombre.Focus()

	correo := textinput.New()
	correo.Placeholder = "correo electrónico"
	correo.CharLimit = 100
	correo.Width = 40

	contrasena := textinput.New()
	contrasena.Placeholder = "contraseña"
	contrasena.CharLimit = 256
	contrasena.Width = 40
	contrasena.EchoMode = textinput.EchoPassword
	contrasena.EchoCharacter = '*'

	repetir := textinput.New()
	repetir.Placeholder = "repetir contraseña"
	repetir.CharLimit = 256
	repetir.Width = 40
	repetir.EchoMode = textinput.EchoPassword
	repetir.EchoCharacter = '*'

	return registerModel{inputs: []textinput.Model{nombre, correo, contrasena, repetir}}
}

func (m registerModel) View() string {
	out := viewTitle("Crear cuenta")
	for _, input := range m.inputs {
		out += "\n" + input.View()
	}
	out += "\n"
	if m.submitting {
		out += "\nEnviando...\n"
	}
	out += "\n" + helpStyle.Render("enter registrarse  tab siguiente campo  esc volver")
	return out
}
