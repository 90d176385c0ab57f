package tui

import (
	"fmt"

	"github.com/Unikyri/forohub-tui/models"
)

type statsModel struct {
	stats   models.Estadisticas
	loading bool
}

func (m statsModel) View() string {
	out := viewTitle("Estadísticas del foro")

	if m.loading {
		out += "\nCargando...\n"
	} else {
		s := m.stats
		out += "\n"
		out += fmt.Sprintf("Tópicos:            %d\n", s.TotalTopicos)
		out += fmt.Sprintf("  abiertos:         %d\n", s.TopicosAbiertos)
		out += fmt.Sprintf("  resueltos:        %d\n", s.TopicosResueltos)
		out += fmt.Sprintf("Respuestas:         %d\n", s.TotalRespuestas)
		out += fmt.Sprintf("Usuarios:           %d\n", s.TotalUsuarios)
		out += fmt.Sprintf("Cursos:             %d\n", s.TotalCursos)
	}

	out += "\n" + helpStyle.Render("esc volver")
	return out
}
