package chat

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/boosted-portal/internal/ai"
	"github.com/nhle/boosted-portal/internal/model"
	"github.com/nhle/boosted-portal/internal/testutil"
)

func newChat() Model {
	m := New(ai.New(), 80, 24)
	m.Focus()
	return m
}

// drain feeds chunk messages back into the model until the answer is done.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for i := 0; cmd != nil && i < 100; i++ {
		msg, ok := cmd().(ResponseChunkMsg)
		require.True(t, ok)
		m, cmd = m.Update(msg)
	}
	return m
}

func TestStartsWithGreeting(t *testing.T) {
	m := newChat()
	require.Len(t, m.messages, 1)
	assert.Equal(t, model.RoleModel, m.messages[0].Role)
	assert.Equal(t, ai.Greeting, m.messages[0].Content)
}

func TestSendAndReceive(t *testing.T) {
	m := newChat()
	for _, k := range testutil.Type("vacaciones") {
		m, _ = m.Update(k)
	}

	m, cmd := m.Update(testutil.Key("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.Streaming())

	m = drain(t, m, cmd)
	assert.False(t, m.Streaming())

	require.Len(t, m.messages, 3)
	assert.Equal(t, displayMessage{Role: model.RoleUser, Content: "vacaciones"}, m.messages[1])
	assert.Equal(t, model.RoleModel, m.messages[2].Role)
	assert.Equal(t, ai.Answer("vacaciones"), m.messages[2].Content)
}

func TestEmptyInputIgnored(t *testing.T) {
	m := newChat()
	m, cmd := m.Update(testutil.Key("enter"))
	assert.Nil(t, cmd)
	assert.Len(t, m.messages, 1)
}

func TestResetDropsConversationAndStaleChunks(t *testing.T) {
	m := newChat()
	for _, k := range testutil.Type("vacaciones") {
		m, _ = m.Update(k)
	}
	m, cmd := m.Update(testutil.Key("enter"))
	require.NotNil(t, cmd)

	first, ok := cmd().(ResponseChunkMsg)
	require.True(t, ok)

	m.Reset()
	assert.False(t, m.Streaming())

	m, cmd = m.Update(first)
	assert.Nil(t, cmd)
	require.Len(t, m.messages, 1)
	assert.Equal(t, ai.Greeting, m.messages[0].Content)
	assert.NotContains(t, m.View(), "Tú:")
}
