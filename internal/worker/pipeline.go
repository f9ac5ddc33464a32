package worker

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"careerlens/internal/database"
	"careerlens/internal/jobsearch"
	"careerlens/internal/log"
	"careerlens/internal/match"
	"careerlens/internal/resume"
)

// processRequest runs the whole matching pipeline for one request:
// download the latest resume, extract a profile, search live postings,
// index and score them, and persist the matches. Failures are retried
// selectively where they are likely transient.
func (cfg *Config) processRequest(ctx context.Context, req Request) error {
	logger := log.WithComponent("pipeline").With().Str("request_id", req.ID.String()).Logger()

	stored, err := cfg.DB.GetLatestResume(ctx, req.JobSeekerID)
	if err != nil {
		return fmt.Errorf("no resume found for seeker %s: %w", req.JobSeekerID, err)
	}

	fileBytes, err := retry(3, func() ([]byte, error) {
		return cfg.Storage.Download(ctx, stored.ObjectKey)
	})
	if err != nil {
		return fmt.Errorf("file download error for %s: %w", stored.ObjectKey, err)
	}

	resumeText, err := resume.ExtractText(stored.Mime, fileBytes)
	if err != nil {
		return fmt.Errorf("text extraction error for %s: %w", stored.ObjectKey, err)
	}

	profile, err := cfg.Analyzer.ExtractProfile(ctx, resumeText, true)
	if err != nil {
		return fmt.Errorf("profile extraction: %w", err)
	}

	analysis, err := cfg.Analyzer.AnalyzeRoles(ctx, resumeText)
	if err != nil {
		return fmt.Errorf("role analysis: %w", err)
	}
	logger.Info().Str("primary_role", analysis.PrimaryRole).Float64("confidence", analysis.Confidence).Msg("resume analyzed")

	if err := cfg.saveProfile(ctx, req.JobSeekerID, profile, analysis); err != nil {
		return err
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		query = analysis.OptimalSearchQuery
	}
	if query == "" {
		query = analysis.PrimaryRole
	}
	if query == "" {
		return fmt.Errorf("no usable search query for request %s", req.ID)
	}

	location := req.Location
	if location == "" {
		location = analysis.LocationPreference
	}

	jobs, err := retry(2, func() ([]jobsearch.Job, error) {
		return cfg.Search.Search(ctx, jobsearch.SearchParams{Query: query, Location: location})
	})
	if err != nil {
		return fmt.Errorf("job search error: %w", err)
	}
	if len(jobs) == 0 {
		logger.Warn().Str("query", query).Msg("job search returned no postings")
		return nil
	}

	indexed, err := cfg.Matcher.IndexJobs(ctx, jobs)
	if err != nil {
		return fmt.Errorf("job indexing: %w", err)
	}
	logger.Info().Int("fetched", len(jobs)).Int("indexed", indexed).Msg("postings indexed")

	scored, err := cfg.Matcher.SearchSimilar(ctx, analysis, resumeText, 20)
	if err != nil {
		return fmt.Errorf("similarity search: %w", err)
	}

	scored = match.CalculateMatchScores(scored, analysis.Skills)

	if domains := targetDomains(req.Domains, profile.IndustryPreference); len(domains) > 0 {
		scored = match.FilterByDomains(scored, domains)
		logger.Info().Strs("domains", domains).Int("remaining", len(scored)).Msg("domain filter applied")
	}

	if minExpected, _, ok := match.ExtractSalaryRegex(profile.SalaryExpectation); ok {
		scored = match.FilterBySalary(ctx, cfg.Azure, scored, minExpected)
	}

	saved := 0
	for _, job := range scored {
		if err := cfg.saveMatch(ctx, req.JobSeekerID, job); err != nil {
			logger.Error().Err(err).Str("job_id", job.JobID).Msg("failed to save match")
			continue
		}
		saved++
	}
	if saved == 0 && len(scored) > 0 {
		return fmt.Errorf("failed to save any of %d matches", len(scored))
	}
	logger.Info().Int("matches", saved).Msg("matches saved")

	return nil
}

// targetDomains picks the domain filter targets: explicit request domains
// win, otherwise the seeker's stored industry preference (comma separated).
func targetDomains(requested []string, industryPreference string) []string {
	if len(requested) > 0 {
		return requested
	}
	parts := strings.Split(industryPreference, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (cfg *Config) saveProfile(ctx context.Context, jobSeekerID string, profile *resume.Profile, analysis *resume.RoleAnalysis) error {
	_, err := retry(3, func() (any, error) {
		return nil, cfg.DB.UpsertJobSeeker(ctx, database.UpsertJobSeekerParams{
			JobSeekerID:          jobSeekerID,
			Name:                 profile.Name,
			Email:                profile.Email,
			Phone:                profile.Phone,
			Linkedin:             profile.Linkedin,
			Summary:              profile.Summary,
			EducationLevel:       profile.EducationLevel,
			Major:                profile.Major,
			UniversityBackground: profile.UniversityBackground,
			Languages:            profile.Languages,
			Certificates:         profile.Certificates,
			HardSkills:           profile.HardSkills,
			SoftSkills:           profile.SoftSkills,
			WorkExperience:       profile.WorkExperience,
			ProjectExperience:    profile.ProjectExperience,
			DetailedExperience:   profile.DetailedExperience,
			LocationPreference:   profile.LocationPreference,
			IndustryPreference:   profile.IndustryPreference,
			SalaryExpectation:    profile.SalaryExpectation,
			PrimaryRole:          analysis.PrimaryRole,
			SimpleSearchTerms:    strings.Join(analysis.SimpleSearchTerms, ", "),
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save profile after retries: %w", err)
	}
	return nil
}

func (cfg *Config) saveMatch(ctx context.Context, jobSeekerID string, job match.ScoredJob) error {
	salaryMin := sql.NullFloat64{}
	salaryMax := sql.NullFloat64{}
	if lo, hi, ok := match.ExtractSalaryRegex(job.Description); ok {
		salaryMin = sql.NullFloat64{Float64: float64(lo), Valid: true}
		salaryMax = sql.NullFloat64{Float64: float64(hi), Valid: true}
	}

	_, err := retry(3, func() (any, error) {
		return nil, cfg.DB.UpsertMatchedJob(ctx, database.UpsertMatchedJobParams{
			JobSeekerID:           jobSeekerID,
			JobID:                 job.JobID,
			JobTitle:              job.Title,
			CompanyName:           job.Company,
			Location:              job.Location,
			JobDescription:        job.Description,
			RequiredSkills:        strings.Join(job.Skills, ", "),
			ExperienceRequired:    "",
			SalaryMin:             salaryMin,
			SalaryMax:             salaryMax,
			EmploymentType:        job.JobType,
			Industry:              match.ExtractDomain(job),
			PostedDate:            job.PostedDate,
			ApplicationUrl:        job.URL,
			CosineSimilarityScore: job.SimilarityScore,
			MatchPercentage:       int32(job.CombinedScore),
			SkillMatchScore:       job.SkillMatchPct,
			MatchedSkills:         strings.Join(job.MatchedSkills, ", "),
			MissingSkills:         "",
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save match after retries: %w", err)
	}
	return nil
}
