// Package pinecone talks to a Pinecone serverless index over its REST API.
package pinecone

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
)

type Client struct {
	httpClient *http.Client
	host       string
	apiKey     string
	indexName  string
	dimension  int
}

func NewClient(cfg config.Pinecone) *Client {
	host := strings.TrimRight(cfg.IndexHost, "/")
	if host != "" && !strings.HasPrefix(host, "http") {
		host = "https://" + host
	}
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		host:       host,
		apiKey:     cfg.APIKey,
		indexName:  cfg.IndexName,
		dimension:  cfg.Dimension,
	}
}

// Vector is a single embedding with its metadata payload.
type Vector struct {
	ID       string            `json:"id"`
	Values   []float64         `json:"values"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type upsertRequest struct {
	Vectors []Vector `json:"vectors"`
}

type upsertResponse struct {
	UpsertedCount int `json:"upsertedCount"`
}

// Upsert writes vectors into the index and returns the upserted count.
// Vectors whose length disagrees with the configured index dimension are
// rejected before any request is made.
func (c *Client) Upsert(ctx context.Context, vectors []Vector) (int, error) {
	if len(vectors) == 0 {
		return 0, nil
	}
	for _, v := range vectors {
		if c.dimension > 0 && len(v.Values) != c.dimension {
			return 0, fmt.Errorf("vector %s has dimension %d, index %s expects %d", v.ID, len(v.Values), c.indexName, c.dimension)
		}
	}
	raw, err := c.post(ctx, "/vectors/upsert", upsertRequest{Vectors: vectors})
	if err != nil {
		return 0, err
	}
	var resp upsertResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return 0, fmt.Errorf("decode upsert response: %w", err)
	}
	return resp.UpsertedCount, nil
}

// Match is one query result with its cosine similarity score.
type Match struct {
	ID       string            `json:"id"`
	Score    float64           `json:"score"`
	Metadata map[string]string `json:"metadata"`
}

type queryRequest struct {
	Vector          []float64 `json:"vector"`
	TopK            int       `json:"topK"`
	IncludeMetadata bool      `json:"includeMetadata"`
}

type queryResponse struct {
	Matches []Match `json:"matches"`
}

// Query returns the topK nearest vectors with metadata.
func (c *Client) Query(ctx context.Context, vector []float64, topK int) ([]Match, error) {
	if c.dimension > 0 && len(vector) != c.dimension {
		return nil, fmt.Errorf("query vector has dimension %d, index %s expects %d", len(vector), c.indexName, c.dimension)
	}
	raw, err := c.post(ctx, "/query", queryRequest{
		Vector:          vector,
		TopK:            topK,
		IncludeMetadata: true,
	})
	if err != nil {
		return nil, err
	}
	var resp queryResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode query response: %w", err)
	}
	return resp.Matches, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pinecone %s returned %d: %s", path, resp.StatusCode, string(data[:min(len(data), 200)]))
	}
	return data, nil
}
