package settings

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/boosted-portal/internal/model"
	"github.com/nhle/boosted-portal/internal/theme"
)

// CloseMsg asks the shell to dismiss the modal. ToggleTheme is set when
// the dark mode switch was moved before saving.
type CloseMsg struct {
	ToggleTheme bool
}

type formBindings struct {
	dark bool
}

// Model is the settings modal: the account card plus a dark mode switch.
type Model struct {
	form      *huh.Form
	fb        *formBindings
	user      model.User
	startDark bool
	width     int
}

// New creates the settings modal.
func New(width int) Model {
	return Model{fb: &formBindings{}, width: width}
}

// Open prepares the modal for user with the current theme flag.
func (m *Model) Open(user model.User, dark bool) tea.Cmd {
	m.user = user
	m.startDark = dark
	m.fb.dark = dark
	m.form = m.buildForm()
	return m.form.Init()
}

func (m Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Modo oscuro").
				Affirmative("Activado").
				Negative("Desactivado").
				Value(&m.fb.dark),
		),
	).WithWidth(m.formWidth()).WithShowHelp(false)
}

// Update handles messages for the modal.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, func() tea.Msg { return CloseMsg{} }
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m, m.finish()
	case huh.StateAborted:
		return m, func() tea.Msg { return CloseMsg{} }
	}
	return m, cmd
}

// finish closes the modal, asking for a theme flip when the switch moved.
func (m Model) finish() tea.Cmd {
	toggle := m.fb.dark != m.startDark
	return func() tea.Msg { return CloseMsg{ToggleTheme: toggle} }
}

// View renders the modal.
func (m Model) View() string {
	label := theme.DimmedStyle.Width(8)
	rows := []string{
		theme.TitleStyle.Render("Configuración"),
		label.Render("Nombre") + m.user.Name,
		label.Render("Email") + m.user.Email,
		label.Render("Rol") + m.user.Role,
		"",
	}
	if m.form != nil {
		rows = append(rows, m.form.View())
	}
	rows = append(rows, theme.HelpStyle.Render("←/→ cambiar | enter guardar | esc cerrar"))

	return theme.PanelStyle.
		Width(m.formWidth() + 4).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// SetSize updates dimensions.
func (m *Model) SetSize(width int) {
	m.width = width
}

func (m Model) formWidth() int {
	w := m.width / 2
	if w < 36 {
		w = 36
	}
	if w > 60 {
		w = 60
	}
	return w
}
