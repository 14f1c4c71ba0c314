package storage

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
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4o-mini", body.Model)
		assert.Equal(t, 0.8, body.Temperature)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Equal(t, "user", body.Messages[1].Role)
		assert.Equal(t, "list dishes", body.Messages[1].Content)

		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"[]"}}]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient("sk-test", server.URL, "gpt-4o-mini", server.Client())
	content, err := client.Complete(context.Background(), "be helpful", "list dishes")

	require.NoError(t, err)
	assert.Equal(t, "[]", content)
}

func TestOpenAIClient_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		errContains string
	}{
		{
			name:        "api error",
			status:      http.StatusUnauthorized,
			body:        `{"error":{"message":"Incorrect API key provided"}}`,
			errContains: "Incorrect API key provided",
		},
		{
			name:        "no choices",
			status:      http.StatusOK,
			body:        `{"choices":[]}`,
			errContains: "no choices",
		},
		{
			name:        "gateway html",
			status:      http.StatusBadGateway,
			body:        `<html>bad gateway</html>`,
			errContains: "status 502",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(testCase.status)
				w.Write([]byte(testCase.body))
			}))
			defer server.Close()

			client := NewOpenAIClient("sk-test", server.URL, "gpt-4o-mini", server.Client())
			_, err := client.Complete(context.Background(), "s", "u")
			require.Error(t, err)
			assert.Contains(t, err.Error(), testCase.errContains)
		})
	}
}

func TestOpenAIClient_MissingKey(t *testing.T) {
	client := NewOpenAIClient("", "http://127.0.0.1:0", "gpt-4o-mini", http.DefaultClient)
	_, err := client.Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
