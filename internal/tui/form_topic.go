package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/Unikyri/forohub-tui/models"
)

// formTopicModel drives both topic creation and editing. The course picker is
// part of the form: tab cycles titulo → mensaje → curso, and up/down choose a
// course while that section is focused.
type formTopicModel struct {
	editing  bool
	topicoID int64

	inputs   []textinput.Model // titulo, mensaje
	focus    int               // 0..1 inputs, 2 course picker
	cursos   []models.Curso
	cursoIdx int

	submitting bool
}

func newFormTopicModel(detail *models.DetalleTopico, cursos []models.Curso) formTopicModel {
	titulo := textinput.New()
	titulo.Placeholder = "título"
	titulo.CharLimit = 200
	titulo.Width = 60
	titulo.Focus()

	mensaje := textinput.New()
	mensaje.Placeholder = "mensaje"
	mensaje.CharLimit = 2000
	mensaje.Width = 60

	m := formTopicModel{
		inputs: []textinput.Model{titulo, mensaje},
		cursos: cursos,
	}

	if detail != nil {
		m.editing = true
		m.topicoID = detail.ID
		m.inputs[0].SetValue(detail.Titulo)
		m.inputs[1].SetValue(detail.Mensaje)
		for i, curso := range cursos {
			if curso.ID == detail.Curso.ID {
				m.cursoIdx = i
				break
			}
		}
	}

	return m
}

func (m formTopicModel) selectedCurso() (models.Curso, bool) {
	if len(m.cursos) == 0 || m.cursoIdx < 0 || m.cursoIdx >= len(m.cursos) {
		return models.Curso{}, false
	}
	return m.cursos[m.cursoIdx], true
}

func (m formTopicModel) View() string {
	title := "Nuevo tópico"
	if m.editing {
		title = "Editar tópico"
	}
	out := viewTitle(title)

	for _, input := range m.inputs {
		out += "\n" + input.View()
	}

	cursor := "  "
	if m.focus == 2 {
		cursor = "> "
	}
	if curso, ok := m.selectedCurso(); ok {
		out += fmt.Sprintf("\n%sCurso: %s (%s)", cursor, curso.Nombre, curso.Categoria)
	} else {
		out += "\n" + cursor + "Curso: cargando cursos..."
	}
	out += "\n"

	if m.submitting {
		out += "\nEnviando...\n"
	}
	out += "\n" + helpStyle.Render("enter guardar  tab siguiente campo  ↑/↓ elegir curso  esc cancelar")
	return out
}
