package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/guest-list-admin/internal/app"
	"github.com/MKhiriev/guest-list-admin/internal/logger"
	"github.com/MKhiriev/guest-list-admin/internal/service"
	"github.com/MKhiriev/guest-list-admin/models"
)

type screen int

const (
	screenLogin screen = iota
	screenList
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	currentScreen screen
	login         loginModel
	list          listModel

	showForm      bool
	form          formGuestModel
	showConfirm   bool
	confirm       confirmModel
	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	m := appModel{
		ctx:           ctx,
		services:      services,
		buildInfo:     buildInfo,
		logger:        log,
		currentScreen: screenLogin,
		login:         newLoginModel(),
		list:          newListModel(),
	}
	if services.Session.State() == models.SessionAuthenticated {
		m = m.enterList()
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenList {
		return tea.Batch(m.list.spinner.Tick, m.cmdLoadGuests())
	}
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdDeleteGuest(m.confirm.guest)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.confirm = confirmModel{}
			}
			return m, nil
		}

	case sessionChangedMsg:
		return m.applySessionChange(msg.change)

	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.errMsg = errorText(msg.err, app.MsgLoginFailed)
		}
		return m, nil

	case logoutDoneMsg:
		if text := errorText(msg.err, app.MsgLogoutIncomplete); text != "" {
			m.showErrorf(text)
		}
		return m, nil

	case guestsLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.list.errMsg = errorText(msg.err, app.MsgFetchGuestsFailed)
			return m, nil
		}
		m.list.errMsg = ""
		m.list = m.list.setGuests(msg.guests)
		return m, nil

	case guestSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			if text := errorText(msg.err, app.MsgSaveGuestFailed); text != "" && m.currentScreen == screenList {
				m.showErrorf(text)
			}
			return m, nil
		}
		m.showForm = false
		return m.reload()

	case guestDeletedMsg:
		m.confirm = confirmModel{}
		if msg.err != nil {
			if text := errorText(msg.err, app.MsgDeleteGuestFailed); text != "" && m.currentScreen == screenList {
				m.showErrorf(text)
			}
			return m, nil
		}
		return m.reload()

	case copiedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "appModel.Update").Msg("clipboard unavailable")
			m.list.status = "Não foi possível copiar"
		} else {
			m.list.status = "Copiado!"
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.list.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		return m, nil
	}

	if m.currentScreen == screenLogin {
		return m.updateLogin(msg)
	}
	if m.showForm {
		return m.updateForm(msg)
	}
	return m.updateList(msg)
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View()
	case screenList:
		body = m.list.View()
	}

	if m.showForm {
		body += "\n\n" + m.form.View()
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

// applySessionChange moves between the login screen and the dashboard.
func (m appModel) applySessionChange(change models.SessionChange) (tea.Model, tea.Cmd) {
	if change.State == models.SessionAuthenticated {
		m.login = newLoginModel()
		m = m.enterList()
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadGuests())
	}

	m.currentScreen = screenLogin
	m.showForm = false
	m.showConfirm = false
	m.confirm = confirmModel{}
	m.list = newListModel()
	m.login = m.login.reset()
	m.login.errMsg = ""
	if change.Reason == models.SessionExpired {
		m.login.errMsg = app.MsgSessionExpired
	}
	return m, textinput.Blink
}

func (m appModel) enterList() appModel {
	m.currentScreen = screenList
	m.list.loading = true
	m.list.errMsg = ""
	if credential, ok := m.services.Session.Credential(); ok {
		m.list.subject = credential.Subject()
	}
	return m
}

func (m appModel) reload() (tea.Model, tea.Cmd) {
	m.list.loading = true
	return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadGuests())
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.login = m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			identifier, secret := m.login.identifier(), m.login.secret()
			if identifier == "" || secret == "" {
				m.login.errMsg = app.MsgMissingLoginFields
				return m, nil
			}
			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdLogin(identifier, secret)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.guests)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.add):
		m.form = newFormGuestModel(nil)
		m.showForm = true
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.edit):
		guest, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.form = newFormGuestModel(&guest)
		m.showForm = true
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		guest, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.confirm = confirmModel{guest: guest}
		m.showConfirm = true
	case key.Matches(keyMsg, keys.reload):
		if m.list.loading {
			return m, nil
		}
		return m.reload()
	case key.Matches(keyMsg, keys.copy):
		guest, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(guest.Name)
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.showForm = false
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdSaveGuest(m.form.toGuest())
		case m.form.editing && key.Matches(keyMsg, keys.left):
			m.form = m.form.cycleAttendance(-1)
			return m, nil
		case m.form.editing && key.Matches(keyMsg, keys.right):
			m.form = m.form.cycleAttendance(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.form.input, cmd = m.form.input.Update(msg)
	return m, cmd
}

func (m appModel) cmdLogin(identifier, secret string) tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		_, err := session.Login(ctx, identifier, secret)
		return loginDoneMsg{err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		return logoutDoneMsg{err: session.Logout(ctx)}
	}
}

func (m appModel) cmdLoadGuests() tea.Cmd {
	ctx := m.ctx
	guests := m.services.Guests
	return func() tea.Msg {
		list, err := guests.List(ctx)
		return guestsLoadedMsg{guests: list, err: err}
	}
}

func (m appModel) cmdSaveGuest(guest models.Guest) tea.Cmd {
	ctx := m.ctx
	guests := m.services.Guests
	return func() tea.Msg {
		return guestSavedMsg{err: guests.Save(ctx, guest)}
	}
}

// cmdDeleteGuest runs after the user answered the confirmation overlay, so
// the confirm func only checks it is still the guest that was asked about.
func (m appModel) cmdDeleteGuest(target models.Guest) tea.Cmd {
	ctx := m.ctx
	guests := m.services.Guests
	confirmed := func(g models.Guest) bool {
		return g.ID == target.ID
	}
	return func() tea.Msg {
		return guestDeletedMsg{err: guests.Delete(ctx, target, confirmed)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
