package pinecone

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

func testClient(host string, dimension int) *Client {
	return NewClient(config.Pinecone{
		APIKey:    "pc-key",
		IndexHost: host,
		IndexName: "job-matcher",
		Dimension: dimension,
	})
}

func TestUpsert(t *testing.T) {
	var gotReq upsertRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vectors/upsert", r.URL.Path)
		assert.Equal(t, "pc-key", r.Header.Get("Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(map[string]int{"upsertedCount": 2})
	}))
	defer srv.Close()

	c := testClient(srv.URL, 1)
	n, err := c.Upsert(context.Background(), []Vector{
		{ID: "a", Values: []float64{0.1}, Metadata: map[string]string{"title": "Engineer"}},
		{ID: "b", Values: []float64{0.2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, gotReq.Vectors, 2)
	assert.Equal(t, "Engineer", gotReq.Vectors[0].Metadata["title"])
}

func TestUpsertEmptyIsNoop(t *testing.T) {
	c := testClient("https://never-called.example", 3)
	n, err := c.Upsert(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUpsertRejectsDimensionMismatch(t *testing.T) {
	c := testClient("https://never-called.example", 3)
	_, err := c.Upsert(context.Background(), []Vector{
		{ID: "a", Values: []float64{0.1, 0.2}},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "dimension 2")
	assert.ErrorContains(t, err, "job-matcher")
}

func TestQuery(t *testing.T) {
	var gotReq queryRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/query", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"matches": []map[string]any{
				{"id": "a", "score": 0.92, "metadata": map[string]string{"title": "Data Analyst"}},
			},
		})
	}))
	defer srv.Close()

	c := testClient(srv.URL, 2)
	matches, err := c.Query(context.Background(), []float64{0.1, 0.2}, 5)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "a", matches[0].ID)
	assert.InDelta(t, 0.92, matches[0].Score, 1e-9)
	assert.Equal(t, "Data Analyst", matches[0].Metadata["title"])
	assert.Equal(t, 5, gotReq.TopK)
	assert.True(t, gotReq.IncludeMetadata)
}

func TestQueryRejectsDimensionMismatch(t *testing.T) {
	c := testClient("https://never-called.example", 3)
	_, err := c.Query(context.Background(), []float64{0.1}, 5)
	require.Error(t, err)
	assert.ErrorContains(t, err, "dimension 1")
}

func TestQueryErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"index not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := testClient(srv.URL, 0)
	_, err := c.Query(context.Background(), []float64{0.1}, 3)
	assert.ErrorContains(t, err, "404")
}

func TestNewClientNormalizesHost(t *testing.T) {
	c := testClient("idx-abc.svc.pinecone.io/", 0)
	assert.Equal(t, "https://idx-abc.svc.pinecone.io", c.host)
}
