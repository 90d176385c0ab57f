package tui

import (
	"github.com/Unikyri/forohub-tui/models"
)

// authDoneMsg finishes the login flow. A nil err means the session is
// installed and the program can hand over to the main loop.
type authDoneMsg struct {
	err error
}

// topicsLoadedMsg carries one page of a topic collection. key names the query
// that produced it; the model discards the message if a different query has
// been requested since.
type topicsLoadedMsg struct {
	key  string
	page models.Page[models.Topico]
	err  error
}

type detailLoadedMsg struct {
	topicoID int64
	detail   models.DetalleTopico
	err      error
}

type topicSavedMsg struct {
	detail models.DetalleTopico
	err    error
}

type topicDeletedMsg struct {
	err error
}

// replyMutatedMsg covers create, edit, delete and the solution toggles. The
// owning topic is reloaded on success.
type replyMutatedMsg struct {
	topicoID int64
	err      error
}

type myRepliesLoadedMsg struct {
	key  string
	page models.Page[models.Respuesta]
	err  error
}

type coursesLoadedMsg struct {
	cursos []models.Curso
	err    error
}

type statsLoadedMsg struct {
	stats models.Estadisticas
	err   error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
