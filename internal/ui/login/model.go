package login

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/boosted-portal/internal/theme"
)

// SubmitMsg is emitted when the user signs in.
type SubmitMsg struct {
	Name string
}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	name     string
	password string
}

// Model is the sign-in screen. The password is collected for the look of
// it and never checked.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates the login screen.
func New(width, height int) Model {
	m := Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
	m.form = m.buildForm()
	return m
}

// Init starts the form.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// Reset clears the fields and rebuilds the form, e.g. after logout.
func (m *Model) Reset() tea.Cmd {
	m.fb.name = ""
	m.fb.password = ""
	m.form = m.buildForm()
	return m.form.Init()
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("ingresa tu nombre")
	}
	return nil
}

func (m Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nombre").
				Placeholder("Tu nombre").
				Value(&m.fb.name).
				Validate(validateName),
			huh.NewInput().
				Title("Contraseña").
				EchoMode(huh.EchoModePassword).
				Value(&m.fb.password),
		),
	).WithWidth(m.formWidth()).WithShowHelp(false)
}

// Update handles messages for the login screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m, m.submit()
	case huh.StateAborted:
		return m, m.Reset()
	}
	return m, cmd
}

// submit emits the trimmed name and prepares a fresh form for the next
// time the screen is shown.
func (m *Model) submit() tea.Cmd {
	name := strings.TrimSpace(m.fb.name)
	reset := m.Reset()
	return tea.Batch(
		func() tea.Msg { return SubmitMsg{Name: name} },
		reset,
	)
}

// View renders the login card centered on screen.
func (m Model) View() string {
	brand := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorIndigo).Render("Boosted RRHH")
	tagline := theme.DimmedStyle.Render("Portal de Recursos Humanos impulsado por IA")
	hint := theme.HelpStyle.Render("enter continuar")

	card := theme.PanelStyle.Width(m.formWidth() + 4).Render(
		lipgloss.JoinVertical(lipgloss.Left, brand, tagline, "", m.form.View(), hint),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.form = m.form.WithWidth(m.formWidth())
}

func (m Model) formWidth() int {
	w := m.width - 8
	if w < 30 {
		w = 30
	}
	if w > 60 {
		w = 60
	}
	return w
}
