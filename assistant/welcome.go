package assistant

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// welcomeFallback ships when no completion backend is configured or
// the call fails. The dashboard must always greet.
const welcomeFallback = "Hey founder! I'm your Foundrly co-pilot. " +
	"Tell me about your brand and I'll help you turn it into posts, emails, and articles."

// Welcome returns the persona greeting for a named user, falling back
// to the stock greeting when client is nil or the completion fails.
func Welcome(ctx context.Context, client Client, displayName string, logger *zap.Logger) string {
	if logger == nil {
		logger = zap.NewNop()
	}
	if client == nil {
		return welcomeFallback
	}
	prompt := fmt.Sprintf("Greet %s in one short sentence and invite them to create their first piece of content.", displayName)
	reply, err := client.Complete(ctx, PersonaMessages([]Message{{Role: "user", Content: prompt}}))
	if err != nil || reply == "" {
		logger.Debug("welcome completion failed, using fallback", zap.Error(err))
		return welcomeFallback
	}
	return reply
}
