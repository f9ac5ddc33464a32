package database

import (
	"context"
)

const upsertJobSeeker = `-- name: UpsertJobSeeker :exec
INSERT INTO job_seekers (
    job_seeker_id, name, email, phone, linkedin, summary,
    education_level, major, university_background, languages, certificates,
    hard_skills, soft_skills, work_experience, project_experience,
    detailed_experience, location_preference, industry_preference,
    salary_expectation, primary_role, simple_search_terms
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
ON CONFLICT (job_seeker_id)
DO UPDATE SET
    name = EXCLUDED.name,
    email = EXCLUDED.email,
    phone = EXCLUDED.phone,
    linkedin = EXCLUDED.linkedin,
    summary = EXCLUDED.summary,
    education_level = EXCLUDED.education_level,
    major = EXCLUDED.major,
    university_background = EXCLUDED.university_background,
    languages = EXCLUDED.languages,
    certificates = EXCLUDED.certificates,
    hard_skills = EXCLUDED.hard_skills,
    soft_skills = EXCLUDED.soft_skills,
    work_experience = EXCLUDED.work_experience,
    project_experience = EXCLUDED.project_experience,
    detailed_experience = EXCLUDED.detailed_experience,
    location_preference = EXCLUDED.location_preference,
    industry_preference = EXCLUDED.industry_preference,
    salary_expectation = EXCLUDED.salary_expectation,
    primary_role = EXCLUDED.primary_role,
    simple_search_terms = EXCLUDED.simple_search_terms,
    last_updated = CURRENT_TIMESTAMP
`

type UpsertJobSeekerParams struct {
	JobSeekerID          string
	Name                 string
	Email                string
	Phone                string
	Linkedin             string
	Summary              string
	EducationLevel       string
	Major                string
	UniversityBackground string
	Languages            string
	Certificates         string
	HardSkills           string
	SoftSkills           string
	WorkExperience       string
	ProjectExperience    string
	DetailedExperience   string
	LocationPreference   string
	IndustryPreference   string
	SalaryExpectation    string
	PrimaryRole          string
	SimpleSearchTerms    string
}

func (q *Queries) UpsertJobSeeker(ctx context.Context, arg UpsertJobSeekerParams) error {
	_, err := q.db.ExecContext(ctx, upsertJobSeeker,
		arg.JobSeekerID,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Linkedin,
		arg.Summary,
		arg.EducationLevel,
		arg.Major,
		arg.UniversityBackground,
		arg.Languages,
		arg.Certificates,
		arg.HardSkills,
		arg.SoftSkills,
		arg.WorkExperience,
		arg.ProjectExperience,
		arg.DetailedExperience,
		arg.LocationPreference,
		arg.IndustryPreference,
		arg.SalaryExpectation,
		arg.PrimaryRole,
		arg.SimpleSearchTerms,
	)
	return err
}

const getJobSeeker = `-- name: GetJobSeeker :one
SELECT id, job_seeker_id, name, email, phone, linkedin, summary,
       education_level, major, university_background, languages, certificates,
       hard_skills, soft_skills, work_experience, project_experience,
       detailed_experience, location_preference, industry_preference,
       salary_expectation, primary_role, simple_search_terms, created_at, last_updated
FROM job_seekers WHERE job_seeker_id = $1
`

func (q *Queries) GetJobSeeker(ctx context.Context, jobSeekerID string) (JobSeeker, error) {
	row := q.db.QueryRowContext(ctx, getJobSeeker, jobSeekerID)
	var i JobSeeker
	err := row.Scan(
		&i.ID,
		&i.JobSeekerID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.Linkedin,
		&i.Summary,
		&i.EducationLevel,
		&i.Major,
		&i.UniversityBackground,
		&i.Languages,
		&i.Certificates,
		&i.HardSkills,
		&i.SoftSkills,
		&i.WorkExperience,
		&i.ProjectExperience,
		&i.DetailedExperience,
		&i.LocationPreference,
		&i.IndustryPreference,
		&i.SalaryExpectation,
		&i.PrimaryRole,
		&i.SimpleSearchTerms,
		&i.CreatedAt,
		&i.LastUpdated,
	)
	return i, err
}
