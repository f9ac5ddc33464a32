package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const createHeadHunterJob = `-- name: CreateHeadHunterJob :one
INSERT INTO head_hunter_jobs (
    job_title, job_description, main_responsibilities, required_skills,
    client_company, industry, work_location, employment_type,
    experience_level, min_salary, max_salary, currency, languages
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id
`

type CreateHeadHunterJobParams struct {
	JobTitle             string
	JobDescription       string
	MainResponsibilities string
	RequiredSkills       string
	ClientCompany        string
	Industry             string
	WorkLocation         string
	EmploymentType       string
	ExperienceLevel      string
	MinSalary            sql.NullFloat64
	MaxSalary            sql.NullFloat64
	Currency             string
	Languages            string
}

func (q *Queries) CreateHeadHunterJob(ctx context.Context, arg CreateHeadHunterJobParams) (uuid.UUID, error) {
	row := q.db.QueryRowContext(ctx, createHeadHunterJob,
		arg.JobTitle,
		arg.JobDescription,
		arg.MainResponsibilities,
		arg.RequiredSkills,
		arg.ClientCompany,
		arg.Industry,
		arg.WorkLocation,
		arg.EmploymentType,
		arg.ExperienceLevel,
		arg.MinSalary,
		arg.MaxSalary,
		arg.Currency,
		arg.Languages,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const listHeadHunterJobs = `-- name: ListHeadHunterJobs :many
SELECT id, job_title, job_description, main_responsibilities, required_skills,
       client_company, industry, work_location, employment_type,
       experience_level, min_salary, max_salary, currency, languages, created_at
FROM head_hunter_jobs
ORDER BY created_at DESC
`

func (q *Queries) ListHeadHunterJobs(ctx context.Context) ([]HeadHunterJob, error) {
	rows, err := q.db.QueryContext(ctx, listHeadHunterJobs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []HeadHunterJob
	for rows.Next() {
		var i HeadHunterJob
		if err := rows.Scan(
			&i.ID,
			&i.JobTitle,
			&i.JobDescription,
			&i.MainResponsibilities,
			&i.RequiredSkills,
			&i.ClientCompany,
			&i.Industry,
			&i.WorkLocation,
			&i.EmploymentType,
			&i.ExperienceLevel,
			&i.MinSalary,
			&i.MaxSalary,
			&i.Currency,
			&i.Languages,
			&i.CreatedAt,
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

const getHeadHunterJob = `-- name: GetHeadHunterJob :one
SELECT id, job_title, job_description, main_responsibilities, required_skills,
       client_company, industry, work_location, employment_type,
       experience_level, min_salary, max_salary, currency, languages, created_at
FROM head_hunter_jobs
WHERE id = $1
`

func (q *Queries) GetHeadHunterJob(ctx context.Context, id uuid.UUID) (HeadHunterJob, error) {
	row := q.db.QueryRowContext(ctx, getHeadHunterJob, id)
	var i HeadHunterJob
	err := row.Scan(
		&i.ID,
		&i.JobTitle,
		&i.JobDescription,
		&i.MainResponsibilities,
		&i.RequiredSkills,
		&i.ClientCompany,
		&i.Industry,
		&i.WorkLocation,
		&i.EmploymentType,
		&i.ExperienceLevel,
		&i.MinSalary,
		&i.MaxSalary,
		&i.Currency,
		&i.Languages,
		&i.CreatedAt,
	)
	return i, err
}
