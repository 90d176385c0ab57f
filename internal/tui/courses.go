package tui

import (
	"fmt"

	"github.com/Unikyri/forohub-tui/models"
)

type coursesModel struct {
	cursos  []models.Curso
	idx     int
	loading bool
}

func (m coursesModel) current() (models.Curso, bool) {
	if len(m.cursos) == 0 || m.idx < 0 || m.idx >= len(m.cursos) {
		return models.Curso{}, false
	}
	return m.cursos[m.idx], true
}

func (m coursesModel) View() string {
	out := viewTitle("Cursos")

	if m.loading {
		out += "\nCargando...\n"
	} else if len(m.cursos) == 0 {
		out += "\nNo hay cursos\n"
	} else {
		out += "\n"
		for i, curso := range m.cursos {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s  (%s)\n", cursor, curso.Nombre, curso.Categoria)
		}
	}

	out += "\n" + helpStyle.Render("enter ver tópicos del curso  esc volver")
	return out
}
