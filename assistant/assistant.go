// Package assistant is the chat-completion boundary for the Foundrly
// persona. The wizard never calls it: wizard content is fully
// template-mocked. It backs the dashboard chat surfaces.
package assistant

import "context"

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client abstracts the completion backend so it can be mocked.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Settings configures a concrete client.
type Settings struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float64
	MaxTokens   int
}

// personaSystemPrompt frames every completion. Kept short on purpose;
// the persona lives in the product copy, not the prompt.
const personaSystemPrompt = "You are Foundrly, an upbeat content co-pilot for startup founders. " +
	"Keep replies short, concrete, and encouraging. Never mention being an AI model."

// PersonaMessages prepends the persona system prompt to a conversation.
func PersonaMessages(history []Message) []Message {
	msgs := make([]Message, 0, len(history)+1)
	msgs = append(msgs, Message{Role: "system", Content: personaSystemPrompt})
	msgs = append(msgs, history...)
	return msgs
}
