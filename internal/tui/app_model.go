package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Unikyri/forohub-tui/internal/adapter"
	"github.com/Unikyri/forohub-tui/internal/service"
	"github.com/Unikyri/forohub-tui/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenTopics
	screenDetail
	screenFormTopic
	screenFormReply
	screenCourses
	screenMyReplies
	screenStats
	screenProfile
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type appModel struct {
	ctx           context.Context
	services      *service.Services
	pageSize      int
	mode          appMode
	currentScreen screen

	welcome   welcomeModel
	login     loginModel
	register  registerModel
	topics    topicsModel
	detail    detailModel
	formTopic formTopicModel
	formReply formReplyModel
	courses   coursesModel
	myReplies myRepliesModel
	stats     statsModel
	profile   profileModel

	// cursos is the course catalogue, shared by the courses screen and
	// the topic form's course picker.
	cursos []models.Curso

	err          error
	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel

	pendingDeleteTopicID int64
	pendingDeleteReplyID int64

	logout bool
}

func newLoginAppModel(ctx context.Context, services *service.Services, pageSize int) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		pageSize:      pageSize,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		topics:        newTopicsModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.Services, pageSize int) appModel {
	m := newLoginAppModel(ctx, services, pageSize)
	m.mode = modeMain
	m.currentScreen = screenTopics
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return tea.Batch(m.loadTopics(), m.cmdLoadCourses())
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
				if m.logout {
					return m, tea.Quit
				}
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				switch {
				case m.pendingDeleteReplyID != 0:
					return m, m.cmdDeleteReply(m.detail.topicoID, m.pendingDeleteReplyID)
				case m.pendingDeleteTopicID != 0:
					return m, m.cmdDeleteTopic(m.pendingDeleteTopicID)
				}
				return m, nil
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDeleteTopicID = 0
				m.pendingDeleteReplyID = 0
			}
			return m, nil
		}

	case authDoneMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		return m, tea.Quit

	case topicsLoadedMsg:
		if msg.key != m.topics.queryTag() {
			return m, nil
		}
		m.topics.loading = false
		m.topics.stale = false
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.topics.page = msg.page
		if m.topics.idx >= len(msg.page.Content) {
			m.topics.idx = len(msg.page.Content) - 1
		}
		if m.topics.idx < 0 {
			m.topics.idx = 0
		}
		return m, nil

	case detailLoadedMsg:
		if msg.topicoID != m.detail.topicoID {
			return m, nil
		}
		m.detail.loading = false
		if msg.err != nil {
			m.fail(msg.err)
			m.currentScreen = screenTopics
			return m, nil
		}
		m.detail.detail = msg.detail
		if m.detail.replyIdx >= len(msg.detail.Respuestas) {
			m.detail.replyIdx = len(msg.detail.Respuestas) - 1
		}
		if m.detail.replyIdx < 0 {
			m.detail.replyIdx = 0
		}
		return m, nil

	case topicSavedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.detail = detailModel{topicoID: msg.detail.ID, detail: msg.detail}
		m.currentScreen = screenDetail
		return m, m.loadTopics()

	case topicDeletedMsg:
		m.pendingDeleteTopicID = 0
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.currentScreen = screenTopics
		return m, m.loadTopics()

	case replyMutatedMsg:
		m.setSubmitting(false)
		m.pendingDeleteReplyID = 0
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		if m.currentScreen == screenFormReply {
			m.currentScreen = screenDetail
		}
		m.detail.loading = true
		return m, tea.Batch(m.cmdLoadDetail(msg.topicoID), m.loadTopics())

	case myRepliesLoadedMsg:
		if msg.key != m.myReplies.queryTag() {
			return m, nil
		}
		m.myReplies.loading = false
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.myReplies.page = msg.page
		if m.myReplies.idx >= len(msg.page.Content) {
			m.myReplies.idx = len(msg.page.Content) - 1
		}
		if m.myReplies.idx < 0 {
			m.myReplies.idx = 0
		}
		return m, nil

	case coursesLoadedMsg:
		m.courses.loading = false
		if msg.err != nil {
			// The catalogue is also prefetched in the background; only
			// surface the failure when the user is looking at it.
			if m.currentScreen == screenCourses {
				m.fail(msg.err)
			}
			return m, nil
		}
		m.cursos = msg.cursos
		m.courses.cursos = msg.cursos
		if len(m.formTopic.cursos) == 0 {
			m.formTopic.cursos = msg.cursos
		}
		return m, nil

	case statsLoadedMsg:
		m.stats.loading = false
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.stats.stats = msg.stats
		return m, nil

	case copiedMsg:
		if m.currentScreen == screenDetail {
			m.detail.status = "¡Copiado!"
		}
		m.topics.status = "¡Copiado!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.detail.status = ""
		m.topics.status = ""
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenTopics:
		return m.updateTopics(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenFormTopic:
		return m.updateFormTopic(msg)
	case screenFormReply:
		return m.updateFormReply(msg)
	case screenCourses:
		return m.updateCourses(msg)
	case screenMyReplies:
		return m.updateMyReplies(msg)
	case screenStats:
		return m.updateStats(msg)
	case screenProfile:
		return m.updateProfile(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenTopics:
		body = m.topics.View()
	case screenDetail:
		body = m.detail.View()
	case screenFormTopic:
		body = m.formTopic.View()
	case screenFormReply:
		body = m.formReply.View()
	case screenCourses:
		body = m.courses.View()
	case screenMyReplies:
		body = m.myReplies.View()
	case screenStats:
		body = m.stats.View()
	case screenProfile:
		body = m.profile.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

// fail surfaces err as an overlay. An expired session additionally forces a
// logout once the overlay is dismissed: the token is already gone, so every
// further request would fail the same way.
func (m *appModel) fail(err error) {
	if errors.Is(err, adapter.ErrSessionExpired) && m.mode == modeMain {
		m.logout = true
	}
	m.showErrorf(humanizeError(err))
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
	m.formTopic.submitting = v
	m.formReply.submitting = v
}

func focusNextInput(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus + 1) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func focusPrevInput(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus - 1 + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}
