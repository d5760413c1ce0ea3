package notifications

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/boosted-portal/internal/keys"
	"github.com/nhle/boosted-portal/internal/model"
	"github.com/nhle/boosted-portal/internal/notify"
	"github.com/nhle/boosted-portal/internal/theme"
)

// MarkReadMsg asks the shell to mark one notification read.
type MarkReadMsg struct {
	ID string
}

// MarkAllReadMsg asks the shell to mark every notification read.
type MarkAllReadMsg struct{}

// filters is the cycle order of the type filter; "" shows everything.
var filters = []model.NotificationType{
	"",
	model.NotificationInfo,
	model.NotificationSuccess,
	model.NotificationWarning,
	model.NotificationAlert,
}

// Model is the full notifications page.
type Model struct {
	list      list.Model
	keys      *keys.KeyMap
	feed      notify.Feed
	filterIdx int
	width     int
	height    int
}

// New creates the notifications page.
func New(k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, width, height-2)
	l.Title = "Todas las notificaciones"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("right", "l", "pgdown"))

	return Model{
		list:   l,
		keys:   k,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetFeed replaces the notifications shown.
func (m *Model) SetFeed(f notify.Feed) tea.Cmd {
	m.feed = f
	return m.refresh()
}

// Filter returns the active type filter, "" when showing every type.
func (m Model) Filter() model.NotificationType {
	return filters[m.filterIdx]
}

func (m *Model) refresh() tea.Cmd {
	shown := m.feed.OfType(m.Filter())
	items := make([]list.Item, len(shown))
	for i, n := range shown {
		items[i] = Item{Notification: n}
	}
	return m.list.SetItems(items)
}

// Update handles messages for the notifications page.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.MarkRead):
			it, ok := m.list.SelectedItem().(Item)
			if !ok {
				return m, nil
			}
			id := it.Notification.ID
			return m, func() tea.Msg { return MarkReadMsg{ID: id} }

		case key.Matches(keyMsg, m.keys.MarkAllRead):
			return m, func() tea.Msg { return MarkAllReadMsg{} }

		case key.Matches(keyMsg, m.keys.CycleFilter):
			m.filterIdx = (m.filterIdx + 1) % len(filters)
			m.list.Select(0)
			return m, m.refresh()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the page.
func (m Model) View() string {
	filter := "todas"
	if f := m.Filter(); f != "" {
		filter = string(f)
	}
	summary := fmt.Sprintf(
		"%d sin leer · filtro: %s · f filtrar | enter leer | a leer todo",
		m.feed.UnreadCount(), filter,
	)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.list.View(),
		theme.HelpStyle.Render(summary),
	)
	return lipgloss.NewStyle().Padding(0, 1).Render(content)
}

// SetSize updates the page dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width-2, max(height-2, 1))
}
