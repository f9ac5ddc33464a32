package database

import (
	"context"
)

const createResume = `-- name: CreateResume :exec
INSERT INTO resumes (
    job_seeker_id, original_filename, mime, size_bytes,
    storage_provider, object_key, upload_status
)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreateResumeParams struct {
	JobSeekerID      string
	OriginalFilename string
	Mime             string
	SizeBytes        int64
	StorageProvider  string
	ObjectKey        string
	UploadStatus     string
}

func (q *Queries) CreateResume(ctx context.Context, arg CreateResumeParams) error {
	_, err := q.db.ExecContext(ctx, createResume,
		arg.JobSeekerID,
		arg.OriginalFilename,
		arg.Mime,
		arg.SizeBytes,
		arg.StorageProvider,
		arg.ObjectKey,
		arg.UploadStatus,
	)
	return err
}

const getLatestResume = `-- name: GetLatestResume :one
SELECT id, job_seeker_id, original_filename, mime, size_bytes,
       storage_provider, object_key, upload_status, created_at
FROM resumes
WHERE job_seeker_id = $1
ORDER BY created_at DESC
LIMIT 1
`

func (q *Queries) GetLatestResume(ctx context.Context, jobSeekerID string) (Resume, error) {
	row := q.db.QueryRowContext(ctx, getLatestResume, jobSeekerID)
	var i Resume
	err := row.Scan(
		&i.ID,
		&i.JobSeekerID,
		&i.OriginalFilename,
		&i.Mime,
		&i.SizeBytes,
		&i.StorageProvider,
		&i.ObjectKey,
		&i.UploadStatus,
		&i.CreatedAt,
	)
	return i, err
}
