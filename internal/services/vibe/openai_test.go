package vibe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIGeneratorComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "cmpl-1",
			"object": "chat.completion",
			"choices": [
				{
					"index": 0,
					"message": {"role": "assistant", "content": "Song A – Artist A"},
					"finish_reason": "stop"
				}
			]
		}`))
	}))
	defer server.Close()

	generator := NewOpenAIGenerator(OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})

	got, err := generator.Complete(context.Background(), "prompt", 0.7)
	require.NoError(t, err)
	assert.Equal(t, "Song A – Artist A", got)
}

func TestOpenAIGeneratorTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	generator := NewOpenAIGenerator(OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 20 * time.Millisecond,
	})

	_, err := generator.Complete(context.Background(), "prompt", 0.7)
	assert.Error(t, err)
}
