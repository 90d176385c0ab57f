package tui

import (
	"fmt"

	"github.com/Unikyri/forohub-tui/models"
)

type myRepliesModel struct {
	pageNum int
	page    models.Page[models.Respuesta]
	idx     int
	loading bool
}

func (m myRepliesModel) queryTag() string {
	return fmt.Sprintf("mias|%d", m.pageNum)
}

func (m myRepliesModel) View() string {
	out := viewTitle("Mis respuestas")

	switch {
	case m.loading:
		out += "\nCargando...\n"
	case m.page.IsEmpty():
		out += "\nNo has respondido todavía\n"
	default:
		out += "\n"
		for i, respuesta := range m.page.Content {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			head := cursor + formatFecha(respuesta.FechaCreacion)
			if respuesta.Solucion {
				head += "  " + solutionStyle.Render("✓ solución")
			}
			out += head + "\n"
			out += "    " + fitText(respuesta.Mensaje, 72) + "\n"
		}
		out += fmt.Sprintf("\npágina %d de %d (%d respuestas)\n",
			m.page.Number+1, max(m.page.TotalPages, 1), m.page.TotalElements)
	}

	out += "\n" + helpStyle.Render("←/→ página  esc volver")
	return out
}
