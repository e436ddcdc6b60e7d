package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClient_Complete(t *testing.T) {
	var gotReq openaiRequest
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "chatcmpl-1",
			"model": "gpt-4",
			"choices": []map[string]any{
				{
					"message":       map[string]string{"role": "assistant", "content": `{"overall_score": 85}`},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]int{"prompt_tokens": 120, "completion_tokens": 30},
		})
	}))
	defer server.Close()

	client := NewOpenAIClient("test-key", "gpt-4")
	client.baseURL = server.URL

	resp, err := client.Complete(context.Background(), &Request{
		System:   "You are a reviewer",
		Messages: []Message{{Role: "user", Content: "score this"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "You are a reviewer", gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)

	assert.Equal(t, `{"overall_score": 85}`, resp.Content)
	assert.Equal(t, ProviderOpenAI, resp.Provider)
	assert.Equal(t, 120, resp.InputTokens)
	assert.Equal(t, 30, resp.OutputTokens)
	assert.Equal(t, "stop", resp.FinishReason)
	assert.False(t, resp.Cached)
}

func TestOpenAIClient_ModelOverride(t *testing.T) {
	var gotReq openaiRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(map[string]any{
			"model":   "gpt-4o",
			"choices": []map[string]any{{"message": map[string]string{"content": "ok"}}},
		})
	}))
	defer server.Close()

	client := NewOpenAIClient("key", "gpt-4")
	client.baseURL = server.URL

	_, err := client.Complete(context.Background(), &Request{
		Model:    "gpt-4o",
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", gotReq.Model)
}

func TestOpenAIClient_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewOpenAIClient("key", "gpt-4")
	client.baseURL = server.URL

	_, err := client.Complete(context.Background(), &Request{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestOpenAIClient_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"model": "gpt-4", "choices": []any{}})
	}))
	defer server.Close()

	client := NewOpenAIClient("key", "gpt-4")
	client.baseURL = server.URL

	_, err := client.Complete(context.Background(), &Request{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestOpenAIClient_Available(t *testing.T) {
	assert.True(t, NewOpenAIClient("key", "gpt-4").Available())
	assert.False(t, NewOpenAIClient("", "gpt-4").Available())
}
