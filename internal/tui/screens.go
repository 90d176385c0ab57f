package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Unikyri/forohub-tui/models"
)

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.focus = focusNextInput(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.focus = focusPrevInput(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			correo := strings.TrimSpace(m.login.inputs[0].Value())
			contrasena := m.login.inputs[1].Value()
			if correo == "" || contrasena == "" {
				m.showErrorf("Correo y contraseña son obligatorios")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(correo, contrasena)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.focus = focusNextInput(m.register.inputs, m.register.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.focus = focusPrevInput(m.register.inputs, m.register.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			nombre := strings.TrimSpace(m.register.inputs[0].Value())
			correo := strings.TrimSpace(m.register.inputs[1].Value())
			contrasena := m.register.inputs[2].Value()
			repetir := m.register.inputs[3].Value()
			if nombre == "" || correo == "" || contrasena == "" {
				m.showErrorf("Nombre, correo y contraseña son obligatorios")
				return m, nil
			}
			if contrasena != repetir {
				m.showErrorf("Las contraseñas no coinciden")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(nombre, correo, contrasena)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateTopics(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.topics.searching {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.topics.searching = false
			m.topics.searchInput.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			term := strings.TrimSpace(m.topics.searchInput.Value())
			if term == "" {
				return m, nil
			}
			m.topics.searching = false
			m.topics.searchInput.Blur()
			m.topics.feed = feedSearch
			m.topics.term = term
			m.topics.pageNum = 0
			m.topics.idx = 0
			return m, m.loadTopics()
		}
		var cmd tea.Cmd
		m.topics.searchInput, cmd = m.topics.searchInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		if m.topics.feed != feedAll {
			m.topics.feed = feedAll
			m.topics.term = ""
			m.topics.curso = models.Curso{}
			m.topics.pageNum = 0
			m.topics.idx = 0
			return m, m.loadTopics()
		}
	case key.Matches(keyMsg, keys.up):
		if m.topics.idx > 0 {
			m.topics.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.topics.idx < len(m.topics.page.Content)-1 {
			m.topics.idx++
		}
	case key.Matches(keyMsg, keys.left):
		if m.topics.pageNum > 0 {
			m.topics.pageNum--
			m.topics.idx = 0
			return m, m.loadTopics()
		}
	case key.Matches(keyMsg, keys.right):
		if m.topics.pageNum < m.topics.page.TotalPages-1 {
			m.topics.pageNum++
			m.topics.idx = 0
			return m, m.loadTopics()
		}
	case key.Matches(keyMsg, keys.enter):
		topico, ok := m.topics.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{topicoID: topico.ID, loading: true}
		m.currentScreen = screenDetail
		return m, m.cmdLoadDetail(topico.ID)
	case key.Matches(keyMsg, keys.search):
		m.topics.searching = true
		m.topics.searchInput.SetValue("")
		m.topics.searchInput.Focus()
	case key.Matches(keyMsg, keys.newTopic):
		m.formTopic = newFormTopicModel(nil, m.cursos)
		m.currentScreen = screenFormTopic
		if len(m.cursos) == 0 {
			return m, m.cmdLoadCourses()
		}
	case key.Matches(keyMsg, keys.mine):
		if m.topics.feed == feedMine {
			m.topics.feed = feedAll
		} else {
			m.topics.feed = feedMine
		}
		m.topics.pageNum = 0
		m.topics.idx = 0
		return m, m.loadTopics()
	case key.Matches(keyMsg, keys.courses):
		m.courses.loading = len(m.courses.cursos) == 0
		m.currentScreen = screenCourses
		return m, m.cmdLoadCourses()
	case key.Matches(keyMsg, keys.profile):
		if user := m.services.Auth.Current().User; user != nil {
			m.profile.user = *user
		}
		m.currentScreen = screenProfile
	case key.Matches(keyMsg, keys.stats):
		m.stats.loading = true
		m.currentScreen = screenStats
		return m, m.cmdLoadStats()
	case key.Matches(keyMsg, keys.refresh):
		m.services.Topics.RefreshCollections()
		m.topics.stale = true
		return m, m.loadTopics()
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.detail.loading {
		if key.Matches(keyMsg, keys.esc) {
			m.currentScreen = screenTopics
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenTopics
	case key.Matches(keyMsg, keys.up):
		if m.detail.replyIdx > 0 {
			m.detail.replyIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.detail.replyIdx < len(m.detail.detail.Respuestas)-1 {
			m.detail.replyIdx++
		}
	case key.Matches(keyMsg, keys.reply):
		if !m.detail.detail.PermiteRespuestas() {
			return m, nil
		}
		m.formReply = newFormReplyModel(m.detail.topicoID)
		m.currentScreen = screenFormReply
	case key.Matches(keyMsg, keys.edit):
		detail := m.detail.detail
		m.formTopic = newFormTopicModel(&detail, m.cursos)
		m.currentScreen = screenFormTopic
		if len(m.cursos) == 0 {
			return m, m.cmdLoadCourses()
		}
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = m.detail.detail.Titulo
		m.pendingDeleteTopicID = m.detail.topicoID
	case key.Matches(keyMsg, keys.editReply):
		respuesta, ok := m.detail.currentReply()
		if !ok {
			return m, nil
		}
		m.formReply = newEditReplyModel(m.detail.topicoID, respuesta.ID, respuesta.Mensaje)
		m.currentScreen = screenFormReply
	case key.Matches(keyMsg, keys.delReply):
		respuesta, ok := m.detail.currentReply()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = fitText(respuesta.Mensaje, 40)
		m.pendingDeleteReplyID = respuesta.ID
	case key.Matches(keyMsg, keys.solution):
		respuesta, ok := m.detail.currentReply()
		if !ok {
			return m, nil
		}
		return m, m.cmdToggleSolucion(m.detail.topicoID, respuesta.ID, respuesta.Solucion)
	case key.Matches(keyMsg, keys.copy):
		if respuesta, ok := m.detail.currentReply(); ok {
			return m, cmdCopyToClipboard(respuesta.Mensaje)
		}
		return m, cmdCopyToClipboard(m.detail.detail.Mensaje)
	}

	return m, nil
}

func (m appModel) updateFormTopic(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			if m.formTopic.editing {
				m.currentScreen = screenDetail
			} else {
				m.currentScreen = screenTopics
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formTopic = focusNextFormTopic(m.formTopic)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formTopic = focusPrevFormTopic(m.formTopic)
			return m, nil
		case key.Matches(keyMsg, keys.up):
			if m.formTopic.focus == 2 && m.formTopic.cursoIdx > 0 {
				m.formTopic.cursoIdx--
				return m, nil
			}
		case key.Matches(keyMsg, keys.down):
			if m.formTopic.focus == 2 && m.formTopic.cursoIdx < len(m.formTopic.cursos)-1 {
				m.formTopic.cursoIdx++
				return m, nil
			}
		case key.Matches(keyMsg, keys.enter):
			if m.formTopic.submitting {
				return m, nil
			}
			titulo := strings.TrimSpace(m.formTopic.inputs[0].Value())
			mensaje := strings.TrimSpace(m.formTopic.inputs[1].Value())
			curso, haveCurso := m.formTopic.selectedCurso()
			if titulo == "" || mensaje == "" {
				m.showErrorf("Título y mensaje son obligatorios")
				return m, nil
			}
			if !haveCurso {
				m.showErrorf("Elige un curso")
				return m, nil
			}
			m.formTopic.submitting = true
			if m.formTopic.editing {
				return m, m.cmdUpdateTopic(m.formTopic.topicoID, models.ActualizarTopico{
					Titulo:  &titulo,
					Mensaje: &mensaje,
					CursoID: &curso.ID,
				})
			}
			return m, m.cmdCreateTopic(models.CrearTopico{
				Titulo:  titulo,
				Mensaje: mensaje,
				CursoID: curso.ID,
			})
		}
	}

	if m.formTopic.focus < len(m.formTopic.inputs) {
		var cmd tea.Cmd
		m.formTopic.inputs[m.formTopic.focus], cmd = m.formTopic.inputs[m.formTopic.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateFormReply(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenDetail
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.formReply.submitting {
				return m, nil
			}
			mensaje := strings.TrimSpace(m.formReply.input.Value())
			if mensaje == "" {
				m.showErrorf("El mensaje no puede estar vacío")
				return m, nil
			}
			m.formReply.submitting = true
			if m.formReply.editing {
				return m, m.cmdUpdateReply(m.formReply.topicoID, m.formReply.respuestaID, mensaje)
			}
			return m, m.cmdCreateReply(m.formReply.topicoID, mensaje)
		}
	}

	var cmd tea.Cmd
	m.formReply.input, cmd = m.formReply.input.Update(msg)
	return m, cmd
}

func (m appModel) updateCourses(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenTopics
	case key.Matches(keyMsg, keys.up):
		if m.courses.idx > 0 {
			m.courses.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.courses.idx < len(m.courses.cursos)-1 {
			m.courses.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		curso, ok := m.courses.current()
		if !ok {
			return m, nil
		}
		m.topics.feed = feedCourse
		m.topics.curso = curso
		m.topics.pageNum = 0
		m.topics.idx = 0
		m.currentScreen = screenTopics
		return m, m.loadTopics()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateMyReplies(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenProfile
	case key.Matches(keyMsg, keys.up):
		if m.myReplies.idx > 0 {
			m.myReplies.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.myReplies.idx < len(m.myReplies.page.Content)-1 {
			m.myReplies.idx++
		}
	case key.Matches(keyMsg, keys.left):
		if m.myReplies.pageNum > 0 {
			m.myReplies.pageNum--
			m.myReplies.idx = 0
			return m, m.loadMyReplies()
		}
	case key.Matches(keyMsg, keys.right):
		if m.myReplies.pageNum < m.myReplies.page.TotalPages-1 {
			m.myReplies.pageNum++
			m.myReplies.idx = 0
			return m, m.loadMyReplies()
		}
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenTopics
	case key.Matches(keyMsg, keys.refresh):
		m.services.Stats.Refresh()
		m.stats.loading = true
		return m, m.cmdLoadStats()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenTopics
	case key.Matches(keyMsg, keys.mine):
		m.topics.feed = feedMine
		m.topics.pageNum = 0
		m.topics.idx = 0
		m.currentScreen = screenTopics
		return m, m.loadTopics()
	case key.Matches(keyMsg, keys.refresh):
		m.myReplies = myRepliesModel{loading: true}
		m.currentScreen = screenMyReplies
		return m, m.loadMyReplies()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func focusNextFormTopic(m formTopicModel) formTopicModel {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + 1) % (len(m.inputs) + 1)
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
	return m
}

func focusPrevFormTopic(m formTopicModel) formTopicModel {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus - 1 + len(m.inputs) + 1) % (len(m.inputs) + 1)
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
	return m
}
