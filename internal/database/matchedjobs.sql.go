package database

import (
	"context"
	"database/sql"
	"time"
)

const upsertMatchedJob = `-- name: UpsertMatchedJob :exec
INSERT INTO matched_jobs (
    job_seeker_id, job_id, job_title, company_name, location, job_description,
    required_skills, experience_required, salary_min, salary_max,
    employment_type, industry, posted_date, application_url,
    cosine_similarity_score, match_percentage, skill_match_score,
    matched_skills, missing_skills
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
ON CONFLICT (job_seeker_id, job_id)
DO UPDATE SET
    cosine_similarity_score = EXCLUDED.cosine_similarity_score,
    match_percentage = EXCLUDED.match_percentage,
    skill_match_score = EXCLUDED.skill_match_score,
    matched_skills = EXCLUDED.matched_skills,
    missing_skills = EXCLUDED.missing_skills,
    last_updated = CURRENT_TIMESTAMP
`

type UpsertMatchedJobParams struct {
	JobSeekerID           string
	JobID                 string
	JobTitle              string
	CompanyName           string
	Location              string
	JobDescription        string
	RequiredSkills        string
	ExperienceRequired    string
	SalaryMin             sql.NullFloat64
	SalaryMax             sql.NullFloat64
	EmploymentType        string
	Industry              string
	PostedDate            string
	ApplicationUrl        string
	CosineSimilarityScore float64
	MatchPercentage       int32
	SkillMatchScore       float64
	MatchedSkills         string
	MissingSkills         string
}

func (q *Queries) UpsertMatchedJob(ctx context.Context, arg UpsertMatchedJobParams) error {
	_, err := q.db.ExecContext(ctx, upsertMatchedJob,
		arg.JobSeekerID,
		arg.JobID,
		arg.JobTitle,
		arg.CompanyName,
		arg.Location,
		arg.JobDescription,
		arg.RequiredSkills,
		arg.ExperienceRequired,
		arg.SalaryMin,
		arg.SalaryMax,
		arg.EmploymentType,
		arg.Industry,
		arg.PostedDate,
		arg.ApplicationUrl,
		arg.CosineSimilarityScore,
		arg.MatchPercentage,
		arg.SkillMatchScore,
		arg.MatchedSkills,
		arg.MissingSkills,
	)
	return err
}

const getTopMatches = `-- name: GetTopMatches :many
SELECT id, job_seeker_id, job_id, job_title, company_name, location, job_description,
       required_skills, experience_required, salary_min, salary_max,
       employment_type, industry, posted_date, application_url,
       cosine_similarity_score, match_percentage, skill_match_score,
       matched_skills, missing_skills, matched_at, last_updated
FROM matched_jobs
WHERE job_seeker_id = $1
ORDER BY match_percentage DESC, matched_at DESC
LIMIT $2
`

type GetTopMatchesParams struct {
	JobSeekerID string
	Limit       int32
}

func (q *Queries) GetTopMatches(ctx context.Context, arg GetTopMatchesParams) ([]MatchedJob, error) {
	rows, err := q.db.QueryContext(ctx, getTopMatches, arg.JobSeekerID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []MatchedJob
	for rows.Next() {
		var i MatchedJob
		if err := rows.Scan(
			&i.ID,
			&i.JobSeekerID,
			&i.JobID,
			&i.JobTitle,
			&i.CompanyName,
			&i.Location,
			&i.JobDescription,
			&i.RequiredSkills,
			&i.ExperienceRequired,
			&i.SalaryMin,
			&i.SalaryMax,
			&i.EmploymentType,
			&i.Industry,
			&i.PostedDate,
			&i.ApplicationUrl,
			&i.CosineSimilarityScore,
			&i.MatchPercentage,
			&i.SkillMatchScore,
			&i.MatchedSkills,
			&i.MissingSkills,
			&i.MatchedAt,
			&i.LastUpdated,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getMatchedJob = `-- name: GetMatchedJob :one
SELECT id, job_seeker_id, job_id, job_title, company_name, location, job_description,
       required_skills, experience_required, salary_min, salary_max,
       employment_type, industry, posted_date, application_url,
       cosine_similarity_score, match_percentage, skill_match_score,
       matched_skills, missing_skills, matched_at, last_updated
FROM matched_jobs
WHERE job_seeker_id = $1 AND job_id = $2
`

type GetMatchedJobParams struct {
	JobSeekerID string
	JobID       string
}

func (q *Queries) GetMatchedJob(ctx context.Context, arg GetMatchedJobParams) (MatchedJob, error) {
	row := q.db.QueryRowContext(ctx, getMatchedJob, arg.JobSeekerID, arg.JobID)
	var i MatchedJob
	err := row.Scan(
		&i.ID,
		&i.JobSeekerID,
		&i.JobID,
		&i.JobTitle,
		&i.CompanyName,
		&i.Location,
		&i.JobDescription,
		&i.RequiredSkills,
		&i.ExperienceRequired,
		&i.SalaryMin,
		&i.SalaryMax,
		&i.EmploymentType,
		&i.Industry,
		&i.PostedDate,
		&i.ApplicationUrl,
		&i.CosineSimilarityScore,
		&i.MatchPercentage,
		&i.SkillMatchScore,
		&i.MatchedSkills,
		&i.MissingSkills,
		&i.MatchedAt,
		&i.LastUpdated,
	)
	return i, err
}

const getMatchStatistics = `-- name: GetMatchStatistics :one
SELECT COUNT(*) AS total,
       COALESCE(AVG(match_percentage), 0) AS avg_match,
       COALESCE(MAX(match_percentage), 0) AS best_match
FROM matched_jobs
WHERE job_seeker_id = $1
`

type GetMatchStatisticsRow struct {
	Total     int64
	AvgMatch  float64
	BestMatch int32
}

func (q *Queries) GetMatchStatistics(ctx context.Context, jobSeekerID string) (GetMatchStatisticsRow, error) {
	row := q.db.QueryRowContext(ctx, getMatchStatistics, jobSeekerID)
	var i GetMatchStatisticsRow
	err := row.Scan(&i.Total, &i.AvgMatch, &i.BestMatch)
	return i, err
}

const deleteMatchesForSeeker = `-- name: DeleteMatchesForSeeker :execrows
DELETE FROM matched_jobs WHERE job_seeker_id = $1
`

func (q *Queries) DeleteMatchesForSeeker(ctx context.Context, jobSeekerID string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteMatchesForSeeker, jobSeekerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const cleanupOldMatches = `-- name: CleanupOldMatches :execrows
DELETE FROM matched_jobs WHERE matched_at < $1
`

func (q *Queries) CleanupOldMatches(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := q.db.ExecContext(ctx, cleanupOldMatches, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
