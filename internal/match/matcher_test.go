package match

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerlens/internal/azure"
	"careerlens/internal/config"
	"careerlens/internal/jobsearch"
	"careerlens/internal/pinecone"
	"careerlens/internal/resume"
)

func fakeAzure(t *testing.T) *azure.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": []float64{0.1, 0.2, 0.3}}},
		})
	}))
	t.Cleanup(srv.Close)
	return azure.NewClient(config.Azure{
		APIKey:              "k",
		Endpoint:            srv.URL,
		APIVersion:          "v",
		EmbeddingDeployment: "emb",
	})
}

func TestJobHashStable(t *testing.T) {
	a := jobsearch.Job{Title: "Analyst", Company: "Acme", Location: "HK"}
	b := jobsearch.Job{Title: "Analyst", Company: "Acme", Location: "HK"}
	c := jobsearch.Job{Title: "Analyst", Company: "Other", Location: "HK"}

	assert.Equal(t, JobHash(a), JobHash(b))
	assert.NotEqual(t, JobHash(a), JobHash(c))
	assert.Len(t, JobHash(a), 32)
}

func TestIndexJobsUpsertsWithMetadata(t *testing.T) {
	var gotVectors []pinecone.Vector
	pcSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/vectors/upsert", r.URL.Path)
		var req struct {
			Vectors []pinecone.Vector `json:"vectors"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotVectors = req.Vectors
		_ = json.NewEncoder(w).Encode(map[string]int{"upsertedCount": len(req.Vectors)})
	}))
	defer pcSrv.Close()

	m := NewMatcher(fakeAzure(t), pinecone.NewClient(config.Pinecone{IndexHost: pcSrv.URL, APIKey: "k", Dimension: 3}))

	jobs := []jobsearch.Job{
		{
			Title:       "Data Analyst",
			Company:     "Acme",
			Location:    "Hong Kong",
			Description: strings.Repeat("d", 2000),
			URL:         "https://example.com/job/1",
			PostedDate:  "today",
		},
	}
	n, err := m.IndexJobs(context.Background(), jobs)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.Len(t, gotVectors, 1)
	v := gotVectors[0]
	assert.Equal(t, JobHash(jobs[0]), v.ID)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, v.Values)
	assert.Equal(t, "Data Analyst", v.Metadata["title"])
	assert.Len(t, v.Metadata["description"], 1000)
}

func TestIndexJobsEmpty(t *testing.T) {
	m := NewMatcher(nil, nil)
	n, err := m.IndexJobs(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSearchSimilarScalesScores(t *testing.T) {
	pcSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/query", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"matches": []map[string]any{
				{
					"id":    "abc",
					"score": 0.87,
					"metadata": map[string]string{
						"title":    "Data Analyst",
						"company":  "Acme",
						"location": "Hong Kong",
					},
				},
			},
		})
	}))
	defer pcSrv.Close()

	m := NewMatcher(fakeAzure(t), pinecone.NewClient(config.Pinecone{IndexHost: pcSrv.URL, APIKey: "k", Dimension: 3}))

	analysis := &resume.RoleAnalysis{
		PrimaryRole: "Data Analyst",
		Skills:      []string{"Python", "SQL"},
	}
	jobs, err := m.SearchSimilar(context.Background(), analysis, "resume text", 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	assert.Equal(t, "abc", jobs[0].JobID)
	assert.InDelta(t, 87.0, jobs[0].SimilarityScore, 1e-9)
	assert.Equal(t, "Data Analyst", jobs[0].Title)
	assert.Equal(t, "Acme", jobs[0].Company)
}
