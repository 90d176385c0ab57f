package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/Unikyri/forohub-tui/models"
)

// feed identifies which topic collection the list screen is showing.
type feed int

const (
	feedAll feed = iota
	feedMine
	feedSearch
	feedCourse
)

type topicsModel struct {
	feed    feed
	term    string
	curso   models.Curso
	pageNum int

	page    models.Page[models.Topico]
	idx     int
	loading bool
	stale   bool
	status  string

	searching   bool
	searchInput textinput.Model
}

// queryTag names the query the screen currently wants. A loaded message
// carrying any other tag is a leftover from an abandoned query and is
// dropped.
func (m topicsModel) queryTag() string {
	return fmt.Sprintf("%d|%s|%d|%d", m.feed, m.term, m.curso.ID, m.pageNum)
}

func newTopicsModel() topicsModel {
	search := textinput.New()
	search.Placeholder = "buscar tópicos"
	search.CharLimit = 100
	search.Width = 40
	return topicsModel{loading: true, searchInput: search}
}

func (m topicsModel) current() (models.Topico, bool) {
	if len(m.page.Content) == 0 || m.idx < 0 || m.idx >= len(m.page.Content) {
		return models.Topico{}, false
	}
	return m.page.Content[m.idx], true
}

func (m topicsModel) title() string {
	switch m.feed {
	case feedMine:
		return "Mis tópicos"
	case feedSearch:
		return fmt.Sprintf("Tópicos: \"%s\"", m.term)
	case feedCourse:
		return "Tópicos de " + m.curso.Nombre
	default:
		return "Tópicos"
	}
}

func statusLabel(s models.TopicoStatus) string {
	switch s {
	case models.StatusResuelto:
		return "[resuelto]"
	case models.StatusCerrado:
		return "[cerrado]"
	default:
		return ""
	}
}

func (m topicsModel) View() string {
	header := titleStyle.Render(m.title())
	if m.stale {
		header += "  " + staleStyle.Render("(actualizando...)")
	}
	out := header + "\n\n"

	if m.searching {
		out += m.searchInput.View() + "\n\n"
	}

	switch {
	case m.loading:
		out += "Cargando...\n"
	case m.page.IsEmpty():
		out += "No hay tópicos\n"
	default:
		for i, topico := range m.page.Content {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%s  %s · %s · %d respuestas",
				cursor,
				fitText(topico.Titulo, 48),
				topico.CursoNombre,
				topico.AutorNombre,
				topico.TotalRespuestas,
			)
			if label := statusLabel(topico.Status); label != "" {
				line += " " + label
			}
			out += line + "\n"
		}
		out += fmt.Sprintf("\npágina %d de %d (%d tópicos)\n",
			m.page.Number+1, max(m.page.TotalPages, 1), m.page.TotalElements)
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render(
		"enter abrir  ←/→ página  / buscar  n nuevo  m míos  c cursos  p perfil  t estadísticas  r refrescar  ctrl+l salir de sesión  q salir")
	return out
}
