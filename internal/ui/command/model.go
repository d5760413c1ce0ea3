package command

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/boosted-portal/internal/model"
	"github.com/nhle/boosted-portal/internal/theme"
)

// ErrUnknownCommand is returned by Parse for input it does not recognize.
var ErrUnknownCommand = errors.New("unknown command")

// Kind is the action a command performs.
type Kind int

const (
	KindNavigate Kind = iota
	KindToggleTheme
	KindMarkAllRead
	KindNotifications
	KindSettings
	KindLogout
	KindQuit
)

// Command is a parsed palette entry. View is set for KindNavigate.
type Command struct {
	Kind Kind
	View model.ViewState
}

// CommandMsg is emitted when the user executes a command.
type CommandMsg Command

// CancelMsg is emitted when the palette is dismissed.
type CancelMsg struct{}

// aliases maps palette words to navigation targets. View identifiers
// themselves are accepted too.
var aliases = map[string]model.ViewState{
	"chat":           model.ViewChatbot,
	"asistente":      model.ViewChatbot,
	"usuarios":       model.ViewUsers,
	"users":          model.ViewUsers,
	"soporte":        model.ViewSupport,
	"notificaciones": model.ViewNotifications,
	"inicio":         model.ViewDashboard,
}

var actions = map[string]Kind{
	"tema":      KindToggleTheme,
	"theme":     KindToggleTheme,
	"leer todo": KindMarkAllRead,
	"read all":  KindMarkAllRead,
	"campana":   KindNotifications,
	"bell":      KindNotifications,
	"ajustes":   KindSettings,
	"settings":  KindSettings,
	"salir":     KindLogout,
	"logout":    KindLogout,
	"quit":      KindQuit,
	"q":         KindQuit,
}

// Parse resolves palette input to a command.
func Parse(input string) (Command, error) {
	s := strings.ToLower(strings.Join(strings.Fields(input), " "))

	if k, ok := actions[s]; ok {
		return Command{Kind: k}, nil
	}
	if v, ok := aliases[s]; ok {
		return Command{Kind: KindNavigate, View: v}, nil
	}
	if v, err := model.ParseViewState(s); err == nil && v != model.ViewLogin {
		return Command{Kind: KindNavigate, View: v}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, input)
}

// suggestions feeds the text input's completion, sorted and without
// duplicates.
func suggestions() []string {
	out := make([]string, 0, len(aliases)+len(actions))
	for k := range aliases {
		out = append(out, k)
	}
	for k := range actions {
		out = append(out, k)
	}
	for _, v := range model.AllViewStates() {
		if v != model.ViewLogin {
			out = append(out, strings.ToLower(string(v)))
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Model is the command palette view.
type Model struct {
	input  textinput.Model
	err    error
	width  int
	height int
}

// New creates a new command palette model.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "escribe un comando..."
	ti.Prompt = ": "
	ti.ShowSuggestions = true
	ti.SetSuggestions(suggestions())
	ti.Width = width - 6

	return Model{
		input:  ti,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.input.Reset()
			m.err = nil
			return m, func() tea.Msg { return CancelMsg{} }

		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			c, err := Parse(text)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.input.Reset()
			m.err = nil
			return m, func() tea.Msg { return CommandMsg(c) }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the command palette.
func (m Model) View() string {
	rows := []string{
		theme.TitleStyle.Render("Comandos"),
		m.input.View(),
	}
	if m.err != nil {
		rows = append(rows, lipgloss.NewStyle().Foreground(theme.ColorRed).Render(m.err.Error()))
	}

	return theme.PanelStyle.
		Width(max(m.width-4, 20)).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// SetSize updates the command palette dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
}

// Focus gives keyboard focus to the text input.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}
