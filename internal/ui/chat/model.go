package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/boosted-portal/internal/ai"
	"github.com/nhle/boosted-portal/internal/model"
	"github.com/nhle/boosted-portal/internal/theme"
)

// ResponseChunkMsg carries a streaming response chunk from the assistant.
type ResponseChunkMsg struct {
	Text string
	Done bool

	ch  <-chan ai.StreamChunk
	gen int
}

// displayMessage represents a message rendered in the conversation viewport.
type displayMessage struct {
	Role    model.MessageRole
	Content string
}

// Model is the assistant chat view.
type Model struct {
	assistant *ai.Assistant
	input     textarea.Model
	viewport  viewport.Model
	messages  []displayMessage
	streaming bool
	width     int
	height    int

	// gen increases on Reset; chunks from an older generation are dropped.
	gen    int
	cancel context.CancelFunc
}

// New creates the chat view.
func New(assistant *ai.Assistant, width, height int) Model {
	ta := textarea.New()
	ta.Placeholder = "Escribe tu pregunta..."
	ta.Prompt = "> "
	ta.ShowLineNumbers = false
	ta.SetWidth(width - 4)
	ta.SetHeight(3)
	ta.CharLimit = 2000

	vp := viewport.New(width-4, max(height-8, 4))
	vp.Style = lipgloss.NewStyle()

	m := Model{
		assistant: assistant,
		input:     ta,
		viewport:  vp,
		width:     width,
		height:    height,
	}
	m.loadHistory()
	m.refreshViewport()
	return m
}

func (m *Model) loadHistory() {
	m.messages = m.messages[:0]
	for _, msg := range m.assistant.History() {
		m.messages = append(m.messages, displayMessage{Role: msg.Role, Content: msg.Text})
	}
}

// Reset stops any answer in flight and starts a new conversation.
func (m *Model) Reset() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.gen++
	m.streaming = false
	m.input.Reset()
	m.assistant.Reset()
	m.messages = nil
	m.loadHistory()
	m.refreshViewport()
}

// Init returns the initial command for the chat view.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the chat view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ResponseChunkMsg:
		return m.handleResponseChunk(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmds []tea.Cmd

	var taCmd tea.Cmd
	m.input, taCmd = m.input.Update(msg)
	if taCmd != nil {
		cmds = append(cmds, taCmd)
	}

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	if vpCmd != nil {
		cmds = append(cmds, vpCmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.streaming {
			return m, nil
		}

		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}

		m.input.Reset()
		m.messages = append(m.messages, displayMessage{
			Role:    model.RoleUser,
			Content: text,
		})
		m.streaming = true
		m.refreshViewport()

		ctx, cancel := context.WithCancel(context.Background())
		m.cancel = cancel
		return m, m.sendMessage(ctx, text)

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleResponseChunk appends a chunk to the assistant message being
// streamed and waits for the next one.
func (m Model) handleResponseChunk(msg ResponseChunkMsg) (Model, tea.Cmd) {
	if msg.gen != m.gen {
		return m, nil
	}

	if msg.Text != "" {
		if n := len(m.messages); n > 0 && m.messages[n-1].Role == model.RoleModel && m.streaming {
			m.messages[n-1].Content += msg.Text
		} else {
			m.messages = append(m.messages, displayMessage{
				Role:    model.RoleModel,
				Content: msg.Text,
			})
		}
	}

	if msg.Done {
		m.streaming = false
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		m.refreshViewport()
		return m, nil
	}

	m.refreshViewport()
	if msg.ch == nil {
		return m, nil
	}
	return m, waitForNextChunk(msg.ch, msg.gen)
}

// sendMessage returns a command that sends the user's message to the
// assistant and delivers the first chunk of the answer.
func (m Model) sendMessage(ctx context.Context, text string) tea.Cmd {
	assistant := m.assistant
	gen := m.gen
	return func() tea.Msg {
		ch, err := assistant.SendMessage(ctx, text)
		if err != nil {
			return ResponseChunkMsg{Text: "Error: " + err.Error(), Done: true, gen: gen}
		}
		return waitForNextChunk(ch, gen)()
	}
}

// waitForNextChunk returns a command that waits for the next chunk from
// the streaming channel.
func waitForNextChunk(ch <-chan ai.StreamChunk, gen int) tea.Cmd {
	return func() tea.Msg {
		chunk, ok := <-ch
		if !ok {
			return ResponseChunkMsg{Done: true, gen: gen}
		}
		return ResponseChunkMsg{Text: chunk.Text, Done: chunk.Done, ch: ch, gen: gen}
	}
}

// Streaming reports whether an answer is still arriving.
func (m Model) Streaming() bool {
	return m.streaming
}

// refreshViewport re-renders the conversation content and scrolls to bottom.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderConversation())
	m.viewport.GotoBottom()
}

// renderConversation builds the conversation display string.
func (m Model) renderConversation() string {
	var sections []string

	roleStyle := lipgloss.NewStyle().Bold(true)
	userStyle := roleStyle.Foreground(theme.ColorBlue)
	modelStyle := roleStyle.Foreground(theme.ColorViolet)
	contentStyle := lipgloss.NewStyle().Foreground(theme.ColorWhite).Width(max(m.width-8, 10))

	for _, msg := range m.messages {
		var label string
		switch msg.Role {
		case model.RoleUser:
			label = userStyle.Render("Tú:")
		case model.RoleModel:
			label = modelStyle.Render("Asistente:")
		}

		sections = append(sections, label)
		sections = append(sections, contentStyle.Render(msg.Content))
		sections = append(sections, "")
	}

	if m.streaming {
		sections = append(sections, theme.HelpStyle.Render("..."))
	}

	return strings.Join(sections, "\n")
}

// View renders the chat view.
func (m Model) View() string {
	separator := lipgloss.NewStyle().Foreground(theme.ColorSubtle).Render(
		strings.Repeat("─", max(min(m.width-6, 80), 1)),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewport.View(),
		separator,
		m.input.View(),
	)

	return theme.PanelStyle.
		Width(max(m.width-4, 10)).
		Render(content)
}

// SetSize updates the chat view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.SetWidth(width - 4)
	m.viewport.Width = width - 4
	m.viewport.Height = max(height-8, 4)
	m.refreshViewport()
}

// Focus gives keyboard focus to the text input.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur releases keyboard focus.
func (m *Model) Blur() {
	m.input.Blur()
}
