package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/boosted-portal/internal/model"
	"github.com/nhle/boosted-portal/internal/router"
	"github.com/nhle/boosted-portal/internal/testutil"
	"github.com/nhle/boosted-portal/internal/ui/command"
	helpview "github.com/nhle/boosted-portal/internal/ui/help"
	"github.com/nhle/boosted-portal/internal/ui/login"
	"github.com/nhle/boosted-portal/internal/ui/notifications"
	"github.com/nhle/boosted-portal/internal/ui/notifpanel"
	"github.com/nhle/boosted-portal/internal/ui/settings"
	"github.com/nhle/boosted-portal/internal/ui/sidebar"
)

func fixedNow() time.Time {
	return time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)
}

func newShell(t *testing.T, opts Options) Model {
	t.Helper()
	opts.Now = fixedNow
	return update(t, New(opts), tea.WindowSizeMsg{Width: 120, Height: 40})
}

func signedIn(t *testing.T) Model {
	t.Helper()
	return newShell(t, Options{User: "Ana"})
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return out, cmd
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	out, _ := updateCmd(t, m, msg)
	return out
}

func press(t *testing.T, m Model, keyName string) Model {
	t.Helper()
	return update(t, m, testutil.Key(keyName))
}

func TestStartsOnLoginScreen(t *testing.T) {
	m := newShell(t, Options{})

	assert.False(t, m.session.Authenticated())
	view := m.View()
	assert.Contains(t, view, "Boosted RRHH")
	assert.Contains(t, view, "Nombre")
	assert.NotContains(t, view, "Asistente IA")
}

func TestViewBeforeFirstResize(t *testing.T) {
	m := New(Options{User: "Ana"})
	assert.Equal(t, "Cargando...", m.View())
}

func TestLoginLandsOnChatbot(t *testing.T) {
	m := newShell(t, Options{})
	m = update(t, m, login.SubmitMsg{Name: "Ana"})

	require.True(t, m.session.Authenticated())
	assert.Equal(t, model.ViewChatbot, m.router.Current())
	assert.Equal(t, "Asistente IA", router.Title(m.router.Current()))

	view := m.View()
	assert.Contains(t, view, "Asistente IA")
	assert.Contains(t, view, "viernes, 16 de octubre")
	assert.Contains(t, view, "Ana")
}

func TestStartViewOption(t *testing.T) {
	m := newShell(t, Options{User: "Ana", StartView: model.ViewSupport})
	assert.Equal(t, model.ViewSupport, m.router.Current())
	assert.Contains(t, m.View(), "Centro De Soporte")
}

func TestSidebarNavigation(t *testing.T) {
	m := signedIn(t)

	m = press(t, m, "j")
	m, cmd := updateCmd(t, m, testutil.Key("enter"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, sidebar.ChangeViewMsg{View: model.ViewUsers}, msg)

	m = update(t, m, msg)
	assert.Equal(t, model.ViewUsers, m.router.Current())
	assert.Equal(t, focusContent, m.focus)
	assert.Contains(t, m.View(), "Gestión De Usuarios")
}

func TestDashboardShowsPlaceholder(t *testing.T) {
	m := signedIn(t)
	m = update(t, m, sidebar.ChangeViewMsg{View: model.ViewDashboard})

	assert.Equal(t, "dashboard", router.Title(m.router.Current()))
	assert.Equal(t, router.ContentPlaceholder, router.Content(m.router.Current()))
	assert.Contains(t, m.View(), "Este módulo está en construcción.")
}

func TestEveryViewRenders(t *testing.T) {
	for _, v := range model.AllViewStates() {
		t.Run(string(v), func(t *testing.T) {
			m := signedIn(t)
			m = update(t, m, sidebar.ChangeViewMsg{View: v})
			assert.NotPanics(t, func() { _ = m.View() })
		})
	}
}

func TestViewChangeClosesDropdown(t *testing.T) {
	m := signedIn(t)

	m = press(t, m, "n")
	require.True(t, m.notifOpen)
	m = update(t, m, sidebar.ChangeViewMsg{View: model.ViewCRM})
	assert.False(t, m.notifOpen)

	// Re-selecting the active view still closes it.
	m = press(t, m, "esc")
	m = press(t, m, "n")
	require.True(t, m.notifOpen)
	m = update(t, m, sidebar.ChangeViewMsg{View: model.ViewCRM})
	assert.False(t, m.notifOpen)
	assert.Equal(t, model.ViewCRM, m.router.Current())
}

func TestDropdownViewAll(t *testing.T) {
	m := signedIn(t)
	m = press(t, m, "n")
	assert.Contains(t, m.View(), "Notificaciones (2 nuevas)")

	m, cmd := updateCmd(t, m, testutil.Key("v"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, notifpanel.ViewAllMsg{}, msg)

	m = update(t, m, msg)
	assert.False(t, m.notifOpen)
	assert.Equal(t, model.ViewNotifications, m.router.Current())
}

func TestDropdownTogglesAndCloses(t *testing.T) {
	m := signedIn(t)

	m = press(t, m, "n")
	assert.True(t, m.notifOpen)
	m = press(t, m, "n")
	assert.False(t, m.notifOpen)

	m = press(t, m, "n")
	m, cmd := updateCmd(t, m, testutil.Key("esc"))
	require.NotNil(t, cmd)
	m = update(t, m, cmd())
	assert.False(t, m.notifOpen)
}

func TestUnreadCountInHeader(t *testing.T) {
	m := signedIn(t)
	assert.Equal(t, 2, m.feed.UnreadCount())
	assert.Contains(t, m.View(), "🔔 2")

	m = update(t, m, notifpanel.MarkReadMsg{ID: "1"})
	assert.Equal(t, 1, m.feed.UnreadCount())
	assert.Contains(t, m.View(), "🔔 1")

	m = update(t, m, notifications.MarkAllReadMsg{})
	assert.Equal(t, 0, m.feed.UnreadCount())
	assert.NotContains(t, m.View(), "🔔 0")
}

func TestMarkAllReadFromDropdown(t *testing.T) {
	m := signedIn(t)
	m = press(t, m, "n")

	m, cmd := updateCmd(t, m, testutil.Key("a"))
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	assert.Equal(t, 0, m.feed.UnreadCount())
	assert.True(t, m.notifOpen)
	assert.NotContains(t, m.View(), "nuevas")
}

func TestMarkReadFromNotificationsView(t *testing.T) {
	m := signedIn(t)
	m = update(t, m, notifications.MarkReadMsg{ID: "2"})

	n, ok := m.feed.Find("2")
	require.True(t, ok)
	assert.True(t, n.Read)
	assert.Equal(t, 1, m.feed.UnreadCount())
}

func TestLogoutAndLoginAgain(t *testing.T) {
	m := signedIn(t)
	m = update(t, m, sidebar.ChangeViewMsg{View: model.ViewSupport})
	m = press(t, m, "tab")
	m = press(t, m, "n")

	m = update(t, m, sidebar.LogoutMsg{})
	assert.False(t, m.session.Authenticated())
	assert.False(t, m.notifOpen)
	assert.Contains(t, m.View(), "Nombre")

	m = update(t, m, login.SubmitMsg{Name: "Luis"})
	user, ok := m.session.User()
	require.True(t, ok)
	assert.Equal(t, "Luis", user.Name)
	assert.Equal(t, "luis@boosted.com", user.Email)
	assert.Equal(t, model.ViewSupport, m.router.Current())
}

func TestLogoutKey(t *testing.T) {
	m := signedIn(t)
	m = press(t, m, "L")
	assert.False(t, m.session.Authenticated())
}

func TestThemeToggleTwiceRestores(t *testing.T) {
	m := signedIn(t)
	start := m.theme.Dark()

	m = press(t, m, "t")
	assert.Equal(t, !start, m.theme.Dark())
	m = press(t, m, "t")
	assert.Equal(t, start, m.theme.Dark())
}

func TestSettingsCloseAppliesTheme(t *testing.T) {
	m := newShell(t, Options{User: "Ana", Dark: true})

	m = press(t, m, ",")
	require.True(t, m.settingsOpen)
	assert.Contains(t, m.View(), "ana@boosted.com")

	m = update(t, m, settings.CloseMsg{ToggleTheme: true})
	assert.False(t, m.settingsOpen)
	assert.False(t, m.theme.Dark())

	m = press(t, m, ",")
	m = update(t, m, settings.CloseMsg{})
	assert.False(t, m.theme.Dark())
}

func TestHelpOverlay(t *testing.T) {
	m := signedIn(t)
	m = press(t, m, "?")
	require.True(t, m.helpOpen)
	assert.Contains(t, m.View(), "Atajos de teclado")

	m = update(t, m, helpview.CloseMsg{})
	assert.False(t, m.helpOpen)
}

func TestCommandPaletteNavigates(t *testing.T) {
	m := signedIn(t)
	m = press(t, m, ":")
	require.True(t, m.commandOpen)

	for _, k := range testutil.Type("soporte") {
		m = update(t, m, k)
	}
	m, cmd := updateCmd(t, m, testutil.Key("enter"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, command.CommandMsg{Kind: command.KindNavigate, View: model.ViewSupport}, msg)

	m = update(t, m, msg)
	assert.False(t, m.commandOpen)
	assert.Equal(t, model.ViewSupport, m.router.Current())
}

func TestCommandPaletteActions(t *testing.T) {
	m := signedIn(t)
	start := m.theme.Dark()

	m = update(t, m, command.CommandMsg{Kind: command.KindToggleTheme})
	assert.Equal(t, !start, m.theme.Dark())

	m = update(t, m, command.CommandMsg{Kind: command.KindMarkAllRead})
	assert.Equal(t, 0, m.feed.UnreadCount())

	m = update(t, m, command.CommandMsg{Kind: command.KindNotifications})
	assert.True(t, m.notifOpen)

	m = update(t, m, command.CancelMsg{})
	assert.False(t, m.commandOpen)

	_, cmd := updateCmd(t, m, command.CommandMsg{Kind: command.KindQuit})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestChatInputKeepsLetters(t *testing.T) {
	m := signedIn(t)
	start := m.theme.Dark()

	m = press(t, m, "tab")
	require.Equal(t, focusContent, m.focus)

	// "t" is typed into the chat, not read as the theme key.
	m = press(t, m, "t")
	assert.Equal(t, start, m.theme.Dark())
	assert.False(t, m.notifOpen)

	m = press(t, m, "esc")
	assert.Equal(t, focusSidebar, m.focus)
}

func TestQuitOnlyFromSidebar(t *testing.T) {
	m := signedIn(t)

	_, cmd := updateCmd(t, m, testutil.Key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	m = update(t, m, sidebar.ChangeViewMsg{View: model.ViewUsers})
	_, cmd = updateCmd(t, m, testutil.Key("q"))
	if cmd != nil {
		assert.NotEqual(t, tea.QuitMsg{}, cmd())
	}
}

func TestCtrlCQuitsFromLogin(t *testing.T) {
	m := newShell(t, Options{})
	_, cmd := updateCmd(t, m, testutil.Key("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestClockTickReschedules(t *testing.T) {
	m := signedIn(t)
	before := m.View()

	m, cmd := updateCmd(t, m, clockTickMsg(fixedNow()))
	assert.NotNil(t, cmd)
	assert.Equal(t, before, m.View())
}

// sendChat types text into the chat and feeds every answer chunk back.
func sendChat(t *testing.T, m Model, text string) Model {
	t.Helper()
	if m.focus != focusContent {
		m = press(t, m, "tab")
	}
	for _, k := range testutil.Type(text) {
		m = update(t, m, k)
	}
	m, cmd := updateCmd(t, m, testutil.Key("enter"))
	for i := 0; cmd != nil && i < 100; i++ {
		m, cmd = updateCmd(t, m, cmd())
	}
	return m
}

func TestLogoutClearsConversation(t *testing.T) {
	m := signedIn(t)
	m = sendChat(t, m, "secreto de Ana")
	require.Contains(t, m.View(), "secreto de Ana")

	m = update(t, m, sidebar.LogoutMsg{})
	m = update(t, m, login.SubmitMsg{Name: "Luis"})

	assert.Equal(t, model.ViewChatbot, m.router.Current())
	assert.NotContains(t, m.View(), "secreto de Ana")
}

func TestLogoutMidAnswerDropsLateChunks(t *testing.T) {
	m := signedIn(t)
	m = press(t, m, "tab")
	for _, k := range testutil.Type("vacaciones por favor") {
		m = update(t, m, k)
	}
	m, cmd := updateCmd(t, m, testutil.Key("enter"))
	require.NotNil(t, cmd)
	late := cmd()

	m = update(t, m, sidebar.LogoutMsg{})
	m = update(t, m, login.SubmitMsg{Name: "Luis"})
	m, cmd = updateCmd(t, m, late)

	assert.Nil(t, cmd)
	assert.NotContains(t, m.View(), "vacaciones por favor")
	assert.NotContains(t, m.View(), "Tú:")
}

// drive feeds msg to the shell along with every message its commands
// produce, skipping commands that block such as cursor blinks.
func drive(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	queue := []tea.Msg{msg}
	for i := 0; len(queue) > 0 && i < 50; i++ {
		next := queue[0]
		queue = queue[1:]

		var cmd tea.Cmd
		m, cmd = updateCmd(t, m, next)
		queue = append(queue, testutil.Drain(cmd, 50*time.Millisecond)...)
	}
	return m
}

func TestLoginThroughForm(t *testing.T) {
	m := newShell(t, Options{})
	_ = m.loginView.Init()

	for _, k := range testutil.Type("Ana") {
		m = update(t, m, k)
	}
	m = drive(t, m, testutil.Key("enter"))
	require.False(t, m.session.Authenticated(), "password field still pending")

	m = drive(t, m, testutil.Key("enter"))
	require.True(t, m.session.Authenticated())

	user, ok := m.session.User()
	require.True(t, ok)
	assert.Equal(t, model.User{Name: "Ana", Email: "ana@boosted.com", Role: model.RoleAdmin}, user)
	assert.Equal(t, model.ViewChatbot, m.router.Current())
	assert.Contains(t, m.View(), "Asistente IA")
}

func TestLoginFormRejectsBlankName(t *testing.T) {
	m := newShell(t, Options{})
	_ = m.loginView.Init()

	m = drive(t, m, testutil.Key("enter"))
	m = drive(t, m, testutil.Key("enter"))

	assert.False(t, m.session.Authenticated())
	assert.Contains(t, m.View(), "ingresa tu nombre")
}
