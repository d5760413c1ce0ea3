package users

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/boosted-portal/internal/model"
	"github.com/nhle/boosted-portal/internal/theme"
)

// Roster is the static employee list shown by the view.
var Roster = []model.Employee{
	{Name: "Ana García", Email: "ana@boosted.com", Department: "Recursos Humanos", Role: "Admin", Active: true},
	{Name: "Luis Fernández", Email: "luis@boosted.com", Department: "Finanzas", Role: "Editor", Active: true},
	{Name: "Marta Ruiz", Email: "marta@boosted.com", Department: "Ventas", Role: "Viewer", Active: true},
	{Name: "Carlos Ortega", Email: "carlos@boosted.com", Department: "Tecnología", Role: "Editor", Active: false},
	{Name: "Lucía Romero", Email: "lucia@boosted.com", Department: "Operaciones", Role: "Viewer", Active: true},
}

// Model is the user management view.
type Model struct {
	table  table.Model
	width  int
	height int
}

// New creates the view.
func New(width, height int) Model {
	rows := make([]table.Row, len(Roster))
	for i, e := range Roster {
		status := "Activo"
		if !e.Active {
			status = "Inactivo"
		}
		rows[i] = table.Row{e.Name, e.Email, e.Department, e.Role, status}
	}

	t := table.New(
		table.WithColumns(columns(width)),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(height-4, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.ColorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.ColorWhite).
		Background(theme.ColorSubtle).
		Bold(true)
	t.SetStyles(s)

	return Model{table: t, width: width, height: height}
}

func columns(width int) []table.Column {
	w := max(width-12, 50)
	return []table.Column{
		{Title: "Nombre", Width: w * 22 / 100},
		{Title: "Email", Width: w * 26 / 100},
		{Title: "Departamento", Width: w * 22 / 100},
		{Title: "Rol", Width: w * 14 / 100},
		{Title: "Estado", Width: w * 16 / 100},
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update forwards navigation to the table.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Selected returns the employee under the cursor.
func (m Model) Selected() (model.Employee, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(Roster) {
		return model.Employee{}, false
	}
	return Roster[i], true
}

// View renders the roster.
func (m Model) View() string {
	active := 0
	for _, e := range Roster {
		if e.Active {
			active++
		}
	}
	summary := theme.HelpStyle.Render(fmt.Sprintf("%d empleados · %d activos", len(Roster), active))

	parts := []string{m.table.View(), summary}
	if e, ok := m.Selected(); ok {
		parts = append(parts, theme.DimmedStyle.Render(fmt.Sprintf("Seleccionado: %s <%s> · %s", e.Name, e.Email, e.Department)))
	}
	return theme.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetColumns(columns(width))
	m.table.SetHeight(max(height-4, 3))
}
