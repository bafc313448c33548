package assistant

import (
	"context"
	"strings"
)

// Mock is a stand-in client for local development and tests. It echoes
// the last user message back inside a canned reply.
type Mock struct{}

func (Mock) Complete(_ context.Context, messages []Message) (string, error) {
	last := ""
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			last = messages[i].Content
			break
		}
	}
	var sb strings.Builder
	sb.WriteString("Great question! Here's my take: ")
	sb.WriteString(last)
	return sb.String(), nil
}
