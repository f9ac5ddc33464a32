// Package match implements semantic job matching and scoring.
package match

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"careerlens/internal/azure"
	"careerlens/internal/jobsearch"
	"careerlens/internal/pinecone"
	"careerlens/internal/resume"
)

// ScoredJob is a posting annotated with matching scores. Scores are
// percentages in the 0..100 range.
type ScoredJob struct {
	jobsearch.Job

	JobID              string   `json:"job_id"`
	SimilarityScore    float64  `json:"similarity_score"`
	SemanticScore      float64  `json:"semantic_score"`
	SkillMatchPct      float64  `json:"skill_match_percentage"`
	MatchedSkills      []string `json:"matched_skills"`
	MatchedSkillsCount int      `json:"matched_skills_count"`
	CombinedScore      float64  `json:"combined_score"`
}

// Matcher indexes postings and searches them against a resume embedding.
type Matcher struct {
	azure *azure.Client
	index *pinecone.Client
}

func NewMatcher(az *azure.Client, index *pinecone.Client) *Matcher {
	return &Matcher{azure: az, index: index}
}

// JobHash derives a stable vector id from title, company and location.
func JobHash(job jobsearch.Job) string {
	sum := md5.Sum([]byte(job.Title + "|" + job.Company + "|" + job.Location))
	return hex.EncodeToString(sum[:])
}

// IndexJobs embeds each posting and upserts it into the vector index.
// Jobs that fail to embed are skipped; the count of indexed jobs is
// returned.
func (m *Matcher) IndexJobs(ctx context.Context, jobs []jobsearch.Job) (int, error) {
	if len(jobs) == 0 {
		return 0, nil
	}

	vectors := make([]pinecone.Vector, 0, len(jobs))
	for _, job := range jobs {
		jobText := fmt.Sprintf("%s %s %s", job.Title, job.Company, job.Description)
		embedding, err := m.azure.Embed(ctx, jobText)
		if err != nil {
			continue
		}

		vectors = append(vectors, pinecone.Vector{
			ID:     JobHash(job),
			Values: embedding,
			Metadata: map[string]string{
				"title":       clip(job.Title, 512),
				"company":     clip(job.Company, 512),
				"location":    clip(job.Location, 512),
				"description": clip(job.Description, 1000),
				"url":         clip(job.URL, 512),
				"posted_date": clip(job.PostedDate, 100),
			},
		})
	}

	if len(vectors) == 0 {
		return 0, fmt.Errorf("no jobs could be embedded")
	}
	return m.index.Upsert(ctx, vectors)
}

// SearchSimilar builds a query embedding from the role analysis plus a
// resume snippet and returns the topK nearest postings. Similarity is
// the cosine score scaled to 0..100.
func (m *Matcher) SearchSimilar(ctx context.Context, analysis *resume.RoleAnalysis, resumeText string, topK int) ([]ScoredJob, error) {
	if topK <= 0 {
		topK = 20
	}

	skills := analysis.Skills
	if len(skills) > 20 {
		skills = skills[:20]
	}
	snippet := resumeText
	if len(snippet) > 1000 {
		snippet = snippet[:1000]
	}
	queryText := fmt.Sprintf("%s %s %s", analysis.PrimaryRole, strings.Join(skills, " "), snippet)

	queryEmbedding, err := m.azure.Embed(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("query embedding: %w", err)
	}

	matches, err := m.index.Query(ctx, queryEmbedding, topK)
	if err != nil {
		return nil, fmt.Errorf("vector query: %w", err)
	}

	jobs := make([]ScoredJob, 0, len(matches))
	for _, match := range matches {
		job := ScoredJob{
			JobID:           match.ID,
			SimilarityScore: match.Score * 100,
		}
		job.Title = match.Metadata["title"]
		job.Company = match.Metadata["company"]
		job.Location = match.Metadata["location"]
		job.Description = match.Metadata["description"]
		job.URL = match.Metadata["url"]
		job.PostedDate = match.Metadata["posted_date"]
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
