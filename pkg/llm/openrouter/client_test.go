package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		assert.Equal(t, "talent", r.Header.Get("X-Title"))
		assert.Equal(t, "https://hr.example.com", r.Header.Get("HTTP-Referer"))

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-model", body.Model)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Equal(t, "write a haiku", body.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","created":1700000000,"model":"test-model",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"done"}}]}`))
	}))
	defer srv.Close()

	c := New("key", srv.URL+"/", "test-model", "talent", "https://hr.example.com", time.Second, option.WithMaxRetries(0))
	out, err := c.Ask(context.Background(), "be brief", "write a haiku")
	require.NoError(t, err)
	assert.Equal(t, "done", out)
}

func TestAskErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	_, err := New("key", srv.URL, "", "", "", 0, option.WithMaxRetries(0)).Ask(context.Background(), "", "hi")
	assert.ErrorContains(t, err, "429")

	_, err = New("", srv.URL, "", "", "", 0).Ask(context.Background(), "", "hi")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}
