package support

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/boosted-portal/internal/keys"
	"github.com/nhle/boosted-portal/internal/model"
	"github.com/nhle/boosted-portal/internal/theme"
)

// Tickets is the static support queue.
var Tickets = []model.Ticket{
	{ID: "SUP-101", Subject: "No puedo descargar mi recibo de nómina", Requester: "Luis Fernández", Status: model.TaskInProgress, Priority: model.PriorityHigh},
	{ID: "SUP-102", Subject: "Actualizar cuenta bancaria", Requester: "Marta Ruiz", Status: model.TaskTodo, Priority: model.PriorityMedium},
	{ID: "SUP-103", Subject: "Duda sobre política de trabajo híbrido", Requester: "Lucía Romero", Status: model.TaskReview, Priority: model.PriorityLow},
	{ID: "SUP-104", Subject: "Acceso al módulo ERP", Requester: "Carlos Ortega", Status: model.TaskDone, Priority: model.PriorityMedium},
}

// Model is the support center view.
type Model struct {
	keys   *keys.KeyMap
	cursor int
	width  int
	height int
}

// New creates the view.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{keys: k, width: width, height: height}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update moves the cursor through the queue.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(Tickets)
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor--
		if m.cursor < 0 {
			m.cursor = len(Tickets) - 1
		}
	}
	return m, nil
}

// Selected returns the ticket under the cursor.
func (m Model) Selected() model.Ticket {
	return Tickets[m.cursor]
}

// Open counts tickets not yet done.
func Open(tickets []model.Ticket) int {
	n := 0
	for _, t := range tickets {
		if t.Status != model.TaskDone {
			n++
		}
	}
	return n
}

// CountByStatus tallies tickets per status.
func CountByStatus(tickets []model.Ticket) map[model.TaskStatus]int {
	counts := make(map[model.TaskStatus]int, len(model.AllTaskStatuses()))
	for _, t := range tickets {
		counts[t.Status]++
	}
	return counts
}

// legend renders one status count per workflow state, then the priority key.
func legend(tickets []model.Ticket) string {
	counts := CountByStatus(tickets)

	statuses := make([]string, 0, len(model.AllTaskStatuses()))
	for _, s := range model.AllTaskStatuses() {
		statuses = append(statuses, fmt.Sprintf("%s %d", theme.StatusStyle(s).Render(string(s)), counts[s]))
	}

	priorities := make([]string, 0, len(model.AllTaskPriorities()))
	for _, p := range model.AllTaskPriorities() {
		priorities = append(priorities, theme.PriorityStyle(p).Render(string(p)))
	}

	return strings.Join(statuses, " ") + "\n" + theme.HelpStyle.Render("Prioridad: ") + strings.Join(priorities, " ")
}

// View renders the queue.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render(fmt.Sprintf("Tickets abiertos: %d", Open(Tickets))))
	b.WriteString("\n")
	b.WriteString(legend(Tickets))
	b.WriteString("\n\n")

	for i, t := range Tickets {
		line := fmt.Sprintf(
			"%s  %s %s  %s",
			theme.DimmedStyle.Render(t.ID),
			theme.PriorityStyle(t.Priority).Render(string(t.Priority)),
			theme.StatusStyle(t.Status).Render(string(t.Status)),
			t.Subject,
		)
		if i == m.cursor {
			b.WriteString(theme.SelectedItemStyle.Render(line))
		} else {
			b.WriteString(theme.ListItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	sel := m.Selected()
	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render("Solicitante: " + sel.Requester))

	return theme.PanelStyle.Width(max(m.width-4, 20)).Render(b.String())
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
