// Package jobsearch fetches live job postings from the Indeed Scraper
// API on RapidAPI.
package jobsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"careerlens/internal/ratelimit"
)

const defaultEndpoint = "https://indeed-scraper-api.p.rapidapi.com/api/job"

// Job is a normalized posting as returned by the search API.
type Job struct {
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	Description   string   `json:"description"`
	Salary        string   `json:"salary"`
	JobType       string   `json:"job_type"`
	URL           string   `json:"url"`
	PostedDate    string   `json:"posted_date"`
	Benefits      []string `json:"benefits,omitempty"`
	Skills        []string `json:"skills,omitempty"`
	CompanyRating float64  `json:"company_rating"`
	IsRemote      bool     `json:"is_remote"`
}

// SearchParams describe one search call. Zero values fall back to the
// defaults the upstream API expects.
type SearchParams struct {
	Query    string
	Location string
	MaxRows  int
	JobType  string
	Country  string
	Radius   string
	Sort     string
	FromDays string
}

func (p *SearchParams) applyDefaults() {
	if p.Location == "" {
		p.Location = "Hong Kong"
	}
	if p.MaxRows <= 0 {
		p.MaxRows = 15
	}
	if p.JobType == "" {
		p.JobType = "fulltime"
	}
	if p.Country == "" {
		p.Country = "hk"
	}
	if p.Radius == "" {
		p.Radius = "50"
	}
	if p.Sort == "" {
		p.Sort = "relevance"
	}
	if p.FromDays == "" {
		p.FromDays = "7"
	}
}

type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	limiter    *ratelimit.Limiter
}

func NewClient(apiKey string, maxRequestsPerMinute int) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		endpoint:   defaultEndpoint,
		apiKey:     apiKey,
		limiter:    ratelimit.NewPerMinute(maxRequestsPerMinute),
	}
}

// WithEndpoint overrides the API endpoint. Used by tests.
func (c *Client) WithEndpoint(endpoint string) *Client {
	c.endpoint = endpoint
	return c
}

type searchPayload struct {
	Scraper struct {
		MaxRows  int    `json:"maxRows"`
		Query    string `json:"query"`
		Location string `json:"location"`
		JobType  string `json:"jobType"`
		Radius   string `json:"radius"`
		Sort     string `json:"sort"`
		FromDays string `json:"fromDays"`
		Country  string `json:"country"`
	} `json:"scraper"`
}

type rawJob struct {
	Title       string `json:"title"`
	CompanyName string `json:"companyName"`
	Location    struct {
		FormattedAddressShort string `json:"formattedAddressShort"`
		City                  string `json:"city"`
	} `json:"location"`
	DescriptionText string   `json:"descriptionText"`
	JobType         []string `json:"jobType"`
	JobURL          string   `json:"jobUrl"`
	Age             string   `json:"age"`
	Benefits        []string `json:"benefits"`
	Attributes      []string `json:"attributes"`
	Rating          struct {
		Rating float64 `json:"rating"`
	} `json:"rating"`
	IsRemote bool `json:"isRemote"`
}

type searchResponse struct {
	ReturnValue struct {
		Data []rawJob `json:"data"`
	} `json:"returnvalue"`
}

// Search runs one rate-limited search and returns parsed jobs. The
// upstream API answers 201 on success.
func (c *Client) Search(ctx context.Context, params SearchParams) ([]Job, error) {
	params.applyDefaults()
	if strings.TrimSpace(params.Query) == "" {
		return nil, fmt.Errorf("empty search query")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	payload := searchPayload{}
	payload.Scraper.MaxRows = params.MaxRows
	payload.Scraper.Query = params.Query
	payload.Scraper.Location = params.Location
	payload.Scraper.JobType = params.JobType
	payload.Scraper.Radius = params.Radius
	payload.Scraper.Sort = params.Sort
	payload.Scraper.FromDays = params.FromDays
	payload.Scraper.Country = params.Country

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal search payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-rapidapi-host", "indeed-scraper-api.p.rapidapi.com")
	req.Header.Set("x-rapidapi-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 20<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("rate limit reached for Indeed API")
	}
	if resp.StatusCode != http.StatusCreated {
		detail := string(data)
		if len(detail) > 200 {
			detail = detail[:200]
		}
		return nil, fmt.Errorf("api error %d: %s", resp.StatusCode, detail)
	}

	var parsed searchResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	jobs := make([]Job, 0, len(parsed.ReturnValue.Data))
	for _, r := range parsed.ReturnValue.Data {
		jobs = append(jobs, parseJob(r))
	}
	return jobs, nil
}

func parseJob(r rawJob) Job {
	location := r.Location.FormattedAddressShort
	if location == "" {
		location = r.Location.City
	}

	jobType := "Full-time"
	if len(r.JobType) > 0 {
		jobType = strings.Join(r.JobType, ", ")
	}

	description := r.DescriptionText
	if len(description) > 50000 {
		description = description[:50000]
	}

	benefits := r.Benefits
	if len(benefits) > 5 {
		benefits = benefits[:5]
	}
	skills := r.Attributes
	if len(skills) > 10 {
		skills = skills[:10]
	}

	postedDate := r.Age
	if postedDate == "" {
		postedDate = "Recently"
	}

	return Job{
		Title:         r.Title,
		Company:       r.CompanyName,
		Location:      location,
		Description:   description,
		Salary:        "Not specified",
		JobType:       jobType,
		URL:           r.JobURL,
		PostedDate:    postedDate,
		Benefits:      benefits,
		Skills:        skills,
		CompanyRating: r.Rating.Rating,
		IsRemote:      r.IsRemote,
	}
}
