// Package ai is the HR assistant behind the chat view. Answers come from a
// local topic table; the portal makes no network calls.
package ai

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/nhle/boosted-portal/internal/model"
)

// Greeting is the first assistant message of every conversation.
const Greeting = "¡Hola! Soy tu asistente de RRHH. Pregúntame por nómina, vacaciones, evaluaciones o políticas."

const fallbackAnswer = "No tengo información sobre eso todavía. Puedes abrir un ticket en el Centro de Soporte."

// topic maps keywords (accent-free, lower-case) to a canned answer.
type topic struct {
	keywords []string
	answer   string
}

var topics = []topic{
	{
		keywords: []string{"nomina", "pago", "salario", "sueldo"},
		answer:   "Tu nómina de Febrero fue aprobada. Los fondos estarán disponibles en 24 horas.",
	},
	{
		keywords: []string{"vacaciones", "dias libres", "permiso"},
		answer:   "Tienes 12 días de vacaciones disponibles. Solicítalos desde el módulo ERP.",
	},
	{
		keywords: []string{"evaluacion", "desempeno", "q1"},
		answer:   "Tu autoevaluación de Q1 vence este viernes. Recuerda completarla a tiempo.",
	},
	{
		keywords: []string{"politica", "hibrido", "remoto", "teletrabajo"},
		answer:   "La política de trabajo híbrido permite hasta 3 días remotos por semana.",
	},
	{
		keywords: []string{"hola", "buenos dias", "buenas"},
		answer:   "¡Hola! ¿En qué puedo ayudarte hoy?",
	},
}

// StreamChunk represents a piece of the response being streamed back.
type StreamChunk struct {
	Text string
	Done bool
}

// Assistant answers HR questions and keeps the conversation history.
type Assistant struct {
	context *ConversationContext
}

// New creates an assistant with the greeting already in its history.
func New() *Assistant {
	a := &Assistant{context: NewConversationContext()}
	a.context.AddMessage(model.RoleModel, Greeting)
	return a
}

// History returns the conversation so far.
func (a *Assistant) History() []model.ChatMessage {
	return a.context.GetMessages()
}

// Reset clears the conversation history back to the greeting.
func (a *Assistant) Reset() {
	a.context.Reset()
	a.context.AddMessage(model.RoleModel, Greeting)
}

// SendMessage records the user message and returns a channel that receives
// the answer word by word. The channel is closed after the Done chunk, or
// early when ctx is cancelled or the conversation is reset.
func (a *Assistant) SendMessage(ctx context.Context, userMsg string) (<-chan StreamChunk, error) {
	a.context.AddMessage(model.RoleUser, userMsg)
	epoch := a.context.Epoch()
	answer := Answer(userMsg)

	ch := make(chan StreamChunk, 16)

	go func() {
		defer close(ch)

		words := strings.Fields(answer)
		for i, w := range words {
			text := w
			if i < len(words)-1 {
				text += " "
			}
			select {
			case ch <- StreamChunk{Text: text}:
			case <-ctx.Done():
				return
			}
		}

		if _, ok := a.context.AddMessageAt(epoch, model.RoleModel, answer); !ok {
			return
		}
		select {
		case ch <- StreamChunk{Done: true}:
		case <-ctx.Done():
		}
	}()

	return ch, nil
}

// Answer picks the canned answer for a question.
func Answer(question string) string {
	q := fold(question)
	for _, t := range topics {
		for _, kw := range t.keywords {
			if strings.Contains(q, kw) {
				return t.answer
			}
		}
	}
	return fallbackAnswer
}

// fold lower-cases s and strips diacritics so "Nómina" matches "nomina".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
