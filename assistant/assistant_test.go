package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIMissingKey(t *testing.T) {
	_, err := NewOpenAI(Settings{Model: "gpt-4o-mini"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key missing")
}

func TestNewOpenAIMissingModel(t *testing.T) {
	_, err := NewOpenAI(Settings{APIKey: "sk-test"})
	assert.Error(t, err)
}

func TestMockEchoesLastUserMessage(t *testing.T) {
	reply, err := Mock{}.Complete(context.Background(), []Message{
		{Role: "system", Content: "persona"},
		{Role: "user", Content: "first"},
		{Role: "assistant", Content: "ok"},
		{Role: "user", Content: "write a caption"},
	})
	require.NoError(t, err)
	assert.Contains(t, reply, "write a caption")
}

func TestPersonaMessagesPrependsSystemPrompt(t *testing.T) {
	msgs := PersonaMessages([]Message{{Role: "user", Content: "hi"}})
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].Role)
	assert.Equal(t, "user", msgs[1].Role)
}

type failingClient struct{}

func (failingClient) Complete(context.Context, []Message) (string, error) {
	return "", errors.New("upstream down")
}

func TestWelcomeFallbacks(t *testing.T) {
	// No client configured: stock greeting.
	msg := Welcome(context.Background(), nil, "Jess", nil)
	assert.Equal(t, welcomeFallback, msg)

	// Failing client: same stock greeting, never an empty string.
	msg = Welcome(context.Background(), failingClient{}, "Jess", nil)
	assert.Equal(t, welcomeFallback, msg)

	// Working client: its reply wins.
	msg = Welcome(context.Background(), Mock{}, "Jess", nil)
	assert.NotEqual(t, welcomeFallback, msg)
	assert.NotEmpty(t, msg)
}
