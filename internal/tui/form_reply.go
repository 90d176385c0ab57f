package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// formReplyModel covers writing a new reply and editing an existing one.
type formReplyModel struct {
	editing     bool
	topicoID    int64
	respuestaID int64

	input      textinput.Model
	submitting bool
}

func newFormReplyModel(topicoID int64) formReplyModel {
	input := textinput.New()
	input.Placeholder = "tu respuesta"
	input.CharLimit = 2000
	input.Width = 70
	input.Focus()

	return formReplyModel{topicoID: topicoID, input: input}
}

func newEditReplyModel(topicoID, respuestaID int64, mensaje string) formReplyModel {
	m := newFormReplyModel(topicoID)
	m.editing = true
	m.respuestaID = respuestaID
	m.input.SetValue(mensaje)
	return m
}

func (m formReplyModel) View() string {
	title := "Responder"
	if m.editing {
		title = "Editar respuesta"
	}
	out := viewTitle(title)
	out += "\n" + m.input.View() + "\n"
	if m.submitting {
		out += "\nEnviando...\n"
	}
	out += "\n" + helpStyle.Render("enter publicar  esc cancelar")
	return out
}
