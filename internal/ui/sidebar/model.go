package sidebar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/boosted-portal/internal/keys"
	"github.com/nhle/boosted-portal/internal/model"
	"github.com/nhle/boosted-portal/internal/theme"
)

// ChangeViewMsg asks the shell to switch to View.
type ChangeViewMsg struct {
	View model.ViewState
}

// LogoutMsg asks the shell to end the session.
type LogoutMsg struct{}

// entry is a sidebar row. A zero view marks the logout row.
type entry struct {
	label string
	view  model.ViewState
}

// entries is the navigation menu, top to bottom.
var entries = []entry{
	{label: "Asistente IA", view: model.ViewChatbot},
	{label: "Usuarios", view: model.ViewUsers},
	{label: "CRM", view: model.ViewCRM},
	{label: "ERP", view: model.ViewERP},
	{label: "Soporte", view: model.ViewSupport},
	{label: "Notificaciones", view: model.ViewNotifications},
	{label: "Dashboard", view: model.ViewDashboard},
	{label: "Cerrar sesión"},
}

// Width is the rendered width of the sidebar including its border.
const Width = 24

// Model is the navigation sidebar.
type Model struct {
	keys    *keys.KeyMap
	cursor  int
	current model.ViewState
	focused bool
	height  int
}

// New creates a sidebar with the cursor on the active view.
func New(k *keys.KeyMap, current model.ViewState, height int) Model {
	m := Model{keys: k, height: height, focused: true}
	m.SetCurrent(current)
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the sidebar.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(entries)
		return m, nil

	case key.Matches(keyMsg, m.keys.Up):
		m.cursor--
		if m.cursor < 0 {
			m.cursor = len(entries) - 1
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Select):
		e := entries[m.cursor]
		if e.view == "" {
			return m, func() tea.Msg { return LogoutMsg{} }
		}
		return m, func() tea.Msg { return ChangeViewMsg{View: e.view} }
	}

	return m, nil
}

// View renders the sidebar.
func (m Model) View() string {
	var b strings.Builder

	brand := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorIndigo)
	b.WriteString(brand.Render("Boosted RRHH"))
	b.WriteString("\n\n")

	for i, e := range entries {
		label := e.label
		switch {
		case i == m.cursor && m.focused:
			b.WriteString(theme.SelectedItemStyle.Render(label))
		case e.view != "" && e.view == m.current:
			b.WriteString(theme.ActiveNavStyle.Render(label))
		default:
			b.WriteString(theme.ListItemStyle.Render(label))
		}
		b.WriteString("\n")
	}

	return theme.SidebarStyle.
		Width(Width - 1).
		Height(m.height).
		Render(b.String())
}

// SetCurrent marks v as the active view and moves the cursor onto it.
func (m *Model) SetCurrent(v model.ViewState) {
	m.current = v
	for i, e := range entries {
		if e.view == v {
			m.cursor = i
			return
		}
	}
}

// SetFocused toggles cursor highlighting.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// SetSize updates the sidebar height.
func (m *Model) SetSize(height int) {
	m.height = height
}
