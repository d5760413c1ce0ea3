package notifpanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/boosted-portal/internal/keys"
	"github.com/nhle/boosted-portal/internal/notify"
	"github.com/nhle/boosted-portal/internal/theme"
)

// MarkReadMsg asks the shell to mark one notification read.
type MarkReadMsg struct {
	ID string
}

// MarkAllReadMsg asks the shell to mark every notification read.
type MarkAllReadMsg struct{}

// ViewAllMsg asks the shell to open the notifications view.
type ViewAllMsg struct{}

// CloseMsg asks the shell to dismiss the dropdown.
type CloseMsg struct{}

// Width of the dropdown box.
const Width = 48

// maxItems caps how many notifications the dropdown lists.
const maxItems = 5

// Model is the bell dropdown. It renders the feed it is given and never
// changes it; mutations go back to the shell as messages.
type Model struct {
	keys   *keys.KeyMap
	feed   notify.Feed
	cursor int
}

// New creates the dropdown.
func New(k *keys.KeyMap) Model {
	return Model{keys: k}
}

// SetFeed replaces the notifications shown, keeping the cursor in range.
func (m *Model) SetFeed(f notify.Feed) {
	m.feed = f
	if n := m.visible(); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

// Reset moves the cursor back to the top.
func (m *Model) Reset() {
	m.cursor = 0
}

func (m Model) visible() int {
	return min(len(m.feed), maxItems)
}

// Update handles messages for the dropdown.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Back):
		return m, func() tea.Msg { return CloseMsg{} }

	case key.Matches(keyMsg, m.keys.Down):
		if n := m.visible(); n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Up):
		if n := m.visible(); n > 0 {
			m.cursor--
			if m.cursor < 0 {
				m.cursor = n - 1
			}
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.MarkRead):
		if m.visible() == 0 {
			return m, nil
		}
		id := m.feed[m.cursor].ID
		return m, func() tea.Msg { return MarkReadMsg{ID: id} }

	case key.Matches(keyMsg, m.keys.MarkAllRead):
		return m, func() tea.Msg { return MarkAllReadMsg{} }

	case key.Matches(keyMsg, m.keys.ViewAll):
		return m, func() tea.Msg { return ViewAllMsg{} }
	}

	return m, nil
}

// View renders the dropdown box.
func (m Model) View() string {
	var b strings.Builder

	unread := m.feed.UnreadCount()
	heading := "Notificaciones"
	if unread > 0 {
		heading = fmt.Sprintf("Notificaciones (%d nuevas)", unread)
	}
	b.WriteString(theme.TitleStyle.Render(heading))
	b.WriteString("\n")

	if len(m.feed) == 0 {
		b.WriteString(theme.HelpStyle.Render("No tienes notificaciones."))
	}

	for i := 0; i < m.visible(); i++ {
		n := m.feed[i]
		icon := theme.NotificationStyle(n.Type).Render(theme.NotificationIcon(n.Type))
		title := n.Title
		if !n.Read {
			title = lipgloss.NewStyle().Bold(true).Render(title) + " " + theme.UnreadDotStyle.Render("•")
		}
		line := fmt.Sprintf("%s %s  %s", icon, title, theme.DimmedStyle.Render(n.Time))
		if i == m.cursor {
			b.WriteString(theme.SelectedItemStyle.Render(line))
		} else {
			b.WriteString(theme.ListItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render("enter leer | a leer todo | v ver todas | esc cerrar"))

	return theme.PanelStyle.Width(Width).Render(b.String())
}
