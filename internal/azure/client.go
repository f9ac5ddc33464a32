// Package azure is a minimal Azure OpenAI REST client covering the two
// operations CareerLens needs: chat completions and embeddings.
package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"careerlens/internal/config"
	"careerlens/internal/ratelimit"
)

type Client struct {
	httpClient          *http.Client
	endpoint            string
	apiKey              string
	apiVersion          string
	deployment          string
	embeddingDeployment string

	limiter *ratelimit.Limiter
	usage   *ratelimit.TokenUsageTracker
}

func NewClient(cfg config.Azure) *Client {
	return &Client{
		httpClient:          &http.Client{Timeout: 120 * time.Second},
		endpoint:            config.CleanEndpoint(cfg.Endpoint),
		apiKey:              cfg.APIKey,
		apiVersion:          cfg.APIVersion,
		deployment:          cfg.Deployment,
		embeddingDeployment: cfg.EmbeddingDeployment,
		limiter:             ratelimit.NewPerMinute(30),
		usage:               ratelimit.NewTokenUsageTracker(),
	}
}

// WithHTTPClient swaps the underlying HTTP client. Used by tests.
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.httpClient = h
	return c
}

// WithEndpoint overrides the API endpoint. Used by tests.
func (c *Client) WithEndpoint(endpoint string) *Client {
	c.endpoint = config.CleanEndpoint(endpoint)
	return c
}

// Usage exposes the token usage tracker.
func (c *Client) Usage() *ratelimit.TokenUsageTracker {
	return c.usage
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatOptions tune a completion call.
type ChatOptions struct {
	Temperature float64
	MaxTokens   int
	JSONMode    bool
}

type chatRequest struct {
	Messages       []Message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage usage `json:"usage"`
}

// Chat runs a chat completion against the configured deployment and
// returns the assistant message content. Rate limited, retried on 429
// with growing backoff.
func (c *Client) Chat(ctx context.Context, messages []Message, opts ChatOptions) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	reqBody := chatRequest{
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}
	if opts.JSONMode {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint, c.deployment, c.apiVersion)

	raw, err := c.post(ctx, url, body)
	if err != nil {
		return "", err
	}

	var resp chatResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("api returned no choices")
	}

	c.usage.AddUsage(c.deployment, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	return resp.Choices[0].Message.Content, nil
}

type embeddingRequest struct {
	Input string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
	Usage usage `json:"usage"`
}

// Embed returns the embedding vector for text. Empty input embeds the
// literal string "empty" so callers always get a usable vector.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		text = "empty"
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(embeddingRequest{Input: text})
	if err != nil {
		return nil, fmt.Errorf("marshal embedding request: %w", err)
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/embeddings?api-version=%s",
		c.endpoint, c.embeddingDeployment, c.apiVersion)

	raw, err := c.post(ctx, url, body)
	if err != nil {
		return nil, err
	}

	var resp embeddingResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode embedding response: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("api returned no embedding data")
	}

	c.usage.AddEmbeddingTokens(resp.Usage.TotalTokens)
	return resp.Data[0].Embedding, nil
}

func (c *Client) post(ctx context.Context, url string, body []byte) ([]byte, error) {
	backoff := 0
	for {
		if backoff != 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(backoff) * time.Millisecond):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("api-key", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}

		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			if backoff == 0 {
				backoff = 500
			} else {
				backoff *= 5
			}
			if backoff > 10000 {
				return nil, fmt.Errorf("rate limited: max retries exceeded")
			}
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("request returned with code %d: %s", resp.StatusCode, truncate(string(data), 200))
		}
		return data, nil
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// CleanJSON strips markdown code fences that models sometimes wrap
// around JSON output.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
