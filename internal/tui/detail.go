package tui

import (
	"fmt"

	"github.com/Unikyri/forohub-tui/models"
)

type detailModel struct {
	topicoID int64
	detail   models.DetalleTopico
	replyIdx int
	loading  bool
	status   string
}

func (m detailModel) currentReply() (models.Respuesta, bool) {
	replies := m.detail.Respuestas
	if len(replies) == 0 || m.replyIdx < 0 || m.replyIdx >= len(replies) {
		return models.Respuesta{}, false
	}
	return replies[m.replyIdx], true
}

func (m detailModel) View() string {
	if m.loading {
		return viewTitle("Tópico") + "\nCargando...\n"
	}

	d := m.detail
	out := titleStyle.Render(d.Titulo)
	if label := statusLabel(d.Status); label != "" {
		out += "  " + label
	}
	out += "\n"
	out += helpStyle.Render(fmt.Sprintf("%s · %s · %s", d.Curso.Nombre, d.Autor.Nombre, formatFecha(d.FechaCreacion)))
	out += "\n\n" + d.Mensaje + "\n\n"
	out += uiDivider + "\n"

	if len(d.Respuestas) == 0 {
		out += "\nSin respuestas todavía\n"
	} else {
		out += fmt.Sprintf("\n%d respuestas:\n\n", len(d.Respuestas))
		for i, respuesta := range d.Respuestas {
			cursor := "  "
			if i == m.replyIdx {
				cursor = "> "
			}
			head := fmt.Sprintf("%s%s · %s", cursor, respuesta.Autor.Nombre, formatFecha(respuesta.FechaCreacion))
			if respuesta.Solucion {
				head += "  " + solutionStyle.Render("✓ solución")
			}
			out += head + "\n"
			out += "    " + fitText(respuesta.Mensaje, 72) + "\n"
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	help := "↑/↓ respuesta  e editar  d eliminar  y copiar  esc volver"
	if d.PermiteRespuestas() {
		help = "a responder  " + help + "  E/D editar/eliminar respuesta  s solución"
	}
	out += "\n" + helpStyle.Render(help)
	return out
}
