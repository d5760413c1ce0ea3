package placeholder

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/boosted-portal/internal/theme"
)

// Model is the stand-in content for views that are not built yet.
type Model struct {
	heading string
	body    string
	width   int
	height  int
}

// New creates a placeholder with a heading and a short body.
func New(heading, body string, width, height int) Model {
	return Model{heading: heading, body: body, width: width, height: height}
}

// View renders the placeholder centered in its area.
func (m Model) View() string {
	card := theme.PanelStyle.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		theme.TitleStyle.Render(m.heading),
		theme.DimmedStyle.Render(m.body),
	))
	return lipgloss.Place(max(m.width, 1), max(m.height, 1), lipgloss.Center, lipgloss.Center, card)
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
