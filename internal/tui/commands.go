package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Unikyri/forohub-tui/models"
)

func (m appModel) cmdLogin(correo, contrasena string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		return authDoneMsg{err: auth.Login(ctx, correo, contrasena)}
	}
}

func (m appModel) cmdRegister(nombre, correo, contrasena string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		return authDoneMsg{err: auth.Register(ctx, nombre, correo, contrasena)}
	}
}

// loadTopics fetches the page the topics screen currently points at. The
// pointer receiver lets it flip the loading markers on the model copy the
// caller is about to return.
func (m *appModel) loadTopics() tea.Cmd {
	if m.topics.page.IsEmpty() {
		m.topics.loading = true
	} else {
		m.topics.stale = true
	}

	ctx := m.ctx
	svc := m.services.Topics
	feed := m.topics.feed
	term := m.topics.term
	cursoID := m.topics.curso.ID
	pageNum := m.topics.pageNum
	size := m.pageSize
	tag := m.topics.queryTag()

	return func() tea.Msg {
		var (
			page models.Page[models.Topico]
			err  error
		)
		switch feed {
		case feedMine:
			page, err = svc.MisTopicos(ctx, pageNum, size)
		case feedSearch:
			page, err = svc.BuscarTopicos(ctx, term, pageNum, size)
		case feedCourse:
			page, err = svc.TopicosPorCurso(ctx, cursoID, pageNum, size)
		default:
			page, err = svc.ListTopicos(ctx, pageNum, size)
		}
		return topicsLoadedMsg{key: tag, page: page, err: err}
	}
}

func (m appModel) cmdLoadDetail(topicoID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Topics
	return func() tea.Msg {
		detail, err := svc.GetTopico(ctx, topicoID)
		return detailLoadedMsg{topicoID: topicoID, detail: detail, err: err}
	}
}

func (m appModel) cmdCreateTopic(req models.CrearTopico) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Topics
	return func() tea.Msg {
		detail, err := svc.CrearTopico(ctx, req)
		return topicSavedMsg{detail: detail, err: err}
	}
}

func (m appModel) cmdUpdateTopic(topicoID int64, req models.ActualizarTopico) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Topics
	return func() tea.Msg {
		detail, err := svc.ActualizarTopico(ctx, topicoID, req)
		return topicSavedMsg{detail: detail, err: err}
	}
}

func (m appModel) cmdDeleteTopic(topicoID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Topics
	return func() tea.Msg {
		return topicDeletedMsg{err: svc.EliminarTopico(ctx, topicoID)}
	}
}

func (m appModel) cmdCreateReply(topicoID int64, mensaje string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Topics
	return func() tea.Msg {
		_, err := svc.CrearRespuesta(ctx, topicoID, models.CrearRespuesta{Mensaje: mensaje})
		return replyMutatedMsg{topicoID: topicoID, err: err}
	}
}

func (m appModel) cmdUpdateReply(topicoID, respuestaID int64, mensaje string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Topics
	return func() tea.Msg {
		_, err := svc.ActualizarRespuesta(ctx, topicoID, respuestaID, models.ActualizarRespuesta{Mensaje: mensaje})
		return replyMutatedMsg{topicoID: topicoID, err: err}
	}
}

func (m appModel) cmdDeleteReply(topicoID, respuestaID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Topics
	return func() tea.Msg {
		return replyMutatedMsg{topicoID: topicoID, err: svc.EliminarRespuesta(ctx, topicoID, respuestaID)}
	}
}

func (m appModel) cmdToggleSolucion(topicoID, respuestaID int64, marked bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Topics
	return func() tea.Msg {
		var err error
		if marked {
			_, err = svc.QuitarSolucion(ctx, topicoID, respuestaID)
		} else {
			_, err = svc.MarcarSolucion(ctx, topicoID, respuestaID)
		}
		return replyMutatedMsg{topicoID: topicoID, err: err}
	}
}

func (m *appModel) loadMyReplies() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Topics
	pageNum := m.myReplies.pageNum
	size := m.pageSize
	tag := m.myReplies.queryTag()

	m.myReplies.loading = m.myReplies.page.IsEmpty()

	return func() tea.Msg {
		page, err := svc.MisRespuestas(ctx, pageNum, size)
		return myRepliesLoadedMsg{key: tag, page: page, err: err}
	}
}

func (m appModel) cmdLoadCourses() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Courses
	return func() tea.Msg {
		cursos, err := svc.ListCursos(ctx)
		return coursesLoadedMsg{cursos: cursos, err: err}
	}
}

func (m appModel) cmdLoadStats() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Stats
	return func() tea.Msg {
		stats, err := svc.GetEstadisticas(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return statsLoadedMsg{err: fmt.Errorf("copiar al portapapeles: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
