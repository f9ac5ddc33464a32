package azure

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerlens/internal/config"
)

func testClient(endpoint string) *Client {
	return NewClient(config.Azure{
		APIKey:              "test-key",
		Endpoint:            endpoint,
		APIVersion:          "2024-02-15-preview",
		Deployment:          "gpt-4o-mini",
		EmbeddingDeployment: "text-embedding-3-small",
	})
}

func TestChatReturnsContent(t *testing.T) {
	var gotPath string
	var gotBody chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		assert.Equal(t, "test-key", r.Header.Get("api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": `{"ok":true}`}},
			},
			"usage": map[string]int{"prompt_tokens": 100, "completion_tokens": 50},
		})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	content, err := c.Chat(context.Background(), []Message{
		{Role: "system", Content: "be terse"},
		{Role: "user", Content: "hello"},
	}, ChatOptions{Temperature: 0.2, MaxTokens: 100, JSONMode: true})

	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, content)
	assert.Equal(t, "/openai/deployments/gpt-4o-mini/chat/completions?api-version=2024-02-15-preview", gotPath)
	require.NotNil(t, gotBody.ResponseFormat)
	assert.Equal(t, "json_object", gotBody.ResponseFormat.Type)
	assert.Len(t, gotBody.Messages, 2)

	summary := c.Usage().Summary()
	assert.Equal(t, 100, summary.PromptTokens)
	assert.Equal(t, 50, summary.CompletionTokens)
	assert.Greater(t, summary.CostUSD, 0.0)
}

func TestChatRetriesOnRateLimit(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "ok"}},
			},
		})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	content, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}, ChatOptions{})
	require.NoError(t, err)
	assert.Equal(t, "ok", content)
	assert.Equal(t, 2, calls)
}

func TestChatErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad deployment", http.StatusNotFound)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}, ChatOptions{})
	assert.ErrorContains(t, err, "404")
}

func TestEmbed(t *testing.T) {
	var gotInput embeddingRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotInput))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":  []map[string]any{{"embedding": []float64{0.1, 0.2, 0.3}}},
			"usage": map[string]int{"total_tokens": 7},
		})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	vec, err := c.Embed(context.Background(), "senior go engineer")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, vec)
	assert.Equal(t, "senior go engineer", gotInput.Input)
	assert.Equal(t, 7, c.Usage().Summary().EmbeddingTokens)
}

func TestEmbedEmptyInputUsesPlaceholder(t *testing.T) {
	var gotInput embeddingRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotInput))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": []float64{0.5}}},
		})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Embed(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, "empty", gotInput.Input)
}

func TestCleanJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  {\"a\":1}  ", "{\"a\":1}"},
		{"```json\r\n{\"a\":1}```", "{\"a\":1}"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CleanJSON(tc.in), "input %q", tc.in)
	}
}
