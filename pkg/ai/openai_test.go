package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeCompletionRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newFakeOpenAIServer(t *testing.T, reply string, capture *fakeCompletionRequest) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(capture))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": reply}},
			},
		})
	}))
}

func TestCompleteSendsSystemAndUserMessages(t *testing.T) {
	var captured fakeCompletionRequest
	server := newFakeOpenAIServer(t, "  Hola desde el modelo.  ", &captured)
	defer server.Close()

	client, err := NewOpenAIClient(OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	answer, err := client.Complete(context.Background(), Exchange{
		SystemPrompt: "Eres el asistente de la EMI.",
		UserPrompt:   "¿Dónde queda la universidad?",
	})
	require.NoError(t, err)
	require.Equal(t, "Hola desde el modelo.", answer)

	require.Equal(t, "llama-3.3-70b-versatile", captured.Model)
	require.Len(t, captured.Messages, 2)
	require.Equal(t, "system", captured.Messages[0].Role)
	require.Equal(t, "Eres el asistente de la EMI.", captured.Messages[0].Content)
	require.Equal(t, "user", captured.Messages[1].Role)
	require.Equal(t, "¿Dónde queda la universidad?", captured.Messages[1].Content)
}

func TestCompleteSurfacesUpstreamErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"over capacity"}}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := NewOpenAIClient(OpenAIConfig{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), Exchange{UserPrompt: "hola"})
	require.Error(t, err)
}

func TestNewOpenAIClientRequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIClient(OpenAIConfig{})
	require.Error(t, err)
}
