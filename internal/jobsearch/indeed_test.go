package jobsearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchParsesJobs(t *testing.T) {
	var gotPayload searchPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key-123", r.Header.Get("x-rapidapi-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"returnvalue": map[string]any{
				"data": []map[string]any{
					{
						"title":       "Data Analyst",
						"companyName": "Acme Ltd",
						"location": map[string]string{
							"formattedAddressShort": "Central, Hong Kong",
						},
						"descriptionText": "Analyze data with SQL and Python.",
						"jobType":         []string{"Full-time"},
						"jobUrl":          "https://hk.indeed.com/viewjob?jk=1",
						"age":             "3 days ago",
						"rating":          map[string]float64{"rating": 4.2},
						"isRemote":        true,
					},
				},
			},
		})
	}))
	defer srv.Close()

	c := NewClient("key-123", 10).WithEndpoint(srv.URL)
	jobs, err := c.Search(context.Background(), SearchParams{Query: "data analyst"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	job := jobs[0]
	assert.Equal(t, "Data Analyst", job.Title)
	assert.Equal(t, "Acme Ltd", job.Company)
	assert.Equal(t, "Central, Hong Kong", job.Location)
	assert.Equal(t, "3 days ago", job.PostedDate)
	assert.InDelta(t, 4.2, job.CompanyRating, 1e-9)
	assert.True(t, job.IsRemote)

	// defaults applied to the outgoing payload
	assert.Equal(t, "Hong Kong", gotPayload.Scraper.Location)
	assert.Equal(t, 15, gotPayload.Scraper.MaxRows)
	assert.Equal(t, "fulltime", gotPayload.Scraper.JobType)
	assert.Equal(t, "hk", gotPayload.Scraper.Country)
}

func TestSearchEmptyQuery(t *testing.T) {
	c := NewClient("key", 10)
	_, err := c.Search(context.Background(), SearchParams{Query: "  "})
	assert.ErrorContains(t, err, "empty search query")
}

func TestSearchNon201IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"pending"}`))
	}))
	defer srv.Close()

	c := NewClient("key", 10).WithEndpoint(srv.URL)
	_, err := c.Search(context.Background(), SearchParams{Query: "engineer"})
	assert.ErrorContains(t, err, "api error 200")
}

func TestSearchRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("key", 10).WithEndpoint(srv.URL)
	_, err := c.Search(context.Background(), SearchParams{Query: "engineer"})
	assert.ErrorContains(t, err, "rate limit")
}

func TestParseJobCaps(t *testing.T) {
	r := rawJob{
		Title:           "Engineer",
		DescriptionText: strings.Repeat("x", 60000),
		Benefits:        []string{"a", "b", "c", "d", "e", "f", "g"},
		Attributes:      []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11"},
	}
	job := parseJob(r)
	assert.Len(t, job.Description, 50000)
	assert.Len(t, job.Benefits, 5)
	assert.Len(t, job.Skills, 10)
	assert.Equal(t, "Recently", job.PostedDate)
	assert.Equal(t, "Full-time", job.JobType)
}
