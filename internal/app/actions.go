package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/boosted-portal/internal/model"
	"github.com/nhle/boosted-portal/internal/router"
	"github.com/nhle/boosted-portal/internal/theme"
	"github.com/nhle/boosted-portal/internal/ui/command"
)

// login signs the user in. The router keeps whatever view it held.
func (m *Model) login(name string) {
	user := m.session.Login(name)
	m.logger.Info("user signed in", "name", user.Name, "email", user.Email)
}

// logout clears the session, the conversation and every overlay, then
// rebuilds the login form.
func (m *Model) logout() tea.Cmd {
	if user, ok := m.session.User(); ok {
		m.logger.Info("user signed out", "name", user.Name)
	}
	m.session.Logout()
	m.chatView.Reset()
	m.notifOpen = false
	m.settingsOpen = false
	m.helpOpen = false
	m.commandOpen = false
	m.setFocus(focusSidebar)
	return m.loginView.Reset()
}

// changeView routes to v. Any view change, including to the current view,
// closes the notification dropdown.
func (m *Model) changeView(v model.ViewState) {
	from := m.router.Current()
	m.router.Change(v)
	m.notifOpen = false
	m.sidebarView.SetCurrent(v)
	m.logger.Debug("view changed", "from", from, "to", v)
}

// setFocus moves key input between the sidebar and the content pane.
func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.sidebarView.SetFocused(f == focusSidebar)

	if f == focusContent && router.Content(m.router.Current()) == router.ContentChat {
		return m.chatView.Focus()
	}
	m.chatView.Blur()
	return nil
}

// toggleTheme flips the theme flag and re-applies the palette.
func (m *Model) toggleTheme() {
	m.theme.Toggle()
	theme.Apply(m.theme.Dark())
	m.logger.Debug("theme toggled", "mode", m.theme.Label())
}

// markRead marks one notification read and refreshes both views.
func (m *Model) markRead(id string) tea.Cmd {
	m.feed = m.feed.MarkRead(id)
	return m.syncFeed()
}

// markAllRead marks every notification read and refreshes both views.
func (m *Model) markAllRead() tea.Cmd {
	m.feed = m.feed.MarkAllRead()
	m.logger.Debug("notifications marked read", "count", len(m.feed))
	return m.syncFeed()
}

func (m *Model) syncFeed() tea.Cmd {
	m.panelView.SetFeed(m.feed)
	return m.notifView.SetFeed(m.feed)
}

// openSettings shows the settings modal for the signed-in user.
func (m *Model) openSettings() tea.Cmd {
	user, _ := m.session.User()
	m.settingsOpen = true
	m.notifOpen = false
	return m.settingsView.Open(user, m.theme.Dark())
}

// executeCommand runs a parsed command palette entry.
func (m *Model) executeCommand(c command.Command) tea.Cmd {
	switch c.Kind {
	case command.KindNavigate:
		m.changeView(c.View)
		return m.setFocus(focusContent)
	case command.KindToggleTheme:
		m.toggleTheme()
	case command.KindMarkAllRead:
		return m.markAllRead()
	case command.KindNotifications:
		m.notifOpen = true
		m.panelView.Reset()
	case command.KindSettings:
		return m.openSettings()
	case command.KindLogout:
		return m.logout()
	case command.KindQuit:
		return m.quit()
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.logger.Info("shutting down")
	return tea.Quit
}
