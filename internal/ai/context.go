package ai

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/boosted-portal/internal/model"
)

// ConversationContext maintains an ordered history of chat messages,
// automatically trimming the oldest entries when the limit is reached.
type ConversationContext struct {
	mu          sync.Mutex
	messages    []model.ChatMessage
	maxMessages int
	now         func() time.Time

	// epoch increases on Reset.
	epoch int
}

// NewConversationContext creates a new conversation context with a default
// maximum of 20 messages.
func NewConversationContext() *ConversationContext {
	return &ConversationContext{
		messages:    make([]model.ChatMessage, 0, 20),
		maxMessages: 20,
		now:         time.Now,
	}
}

// AddMessage appends a message to the conversation history and returns it.
// If the number of messages exceeds maxMessages, the oldest messages are
// trimmed while keeping the first message (the greeting).
func (c *ConversationContext) AddMessage(role model.MessageRole, text string) model.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.add(role, text)
}

// AddMessageAt appends a message only if no Reset happened since epoch.
func (c *ConversationContext) AddMessageAt(epoch int, role model.MessageRole, text string) (model.ChatMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if epoch != c.epoch {
		return model.ChatMessage{}, false
	}
	return c.add(role, text), true
}

// Epoch identifies the current conversation.
func (c *ConversationContext) Epoch() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.epoch
}

func (c *ConversationContext) add(role model.MessageRole, text string) model.ChatMessage {
	msg := model.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: c.now(),
	}
	c.messages = append(c.messages, msg)

	if len(c.messages) > c.maxMessages {
		trimmed := make([]model.ChatMessage, 0, c.maxMessages)
		trimmed = append(trimmed, c.messages[0])
		excess := len(c.messages) - c.maxMessages
		trimmed = append(trimmed, c.messages[1+excess:]...)
		c.messages = trimmed
	}

	return msg
}

// GetMessages returns a copy of the current conversation messages.
func (c *ConversationContext) GetMessages() []model.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]model.ChatMessage, len(c.messages))
	copy(result, c.messages)
	return result
}

// Reset clears all messages from the conversation context.
func (c *ConversationContext) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = c.messages[:0]
	c.epoch++
}

// Len returns the number of messages in the conversation context.
func (c *ConversationContext) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.messages)
}
