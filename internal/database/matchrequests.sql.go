package database

import (
	"context"

	"github.com/google/uuid"
)

const createMatchRequest = `-- name: CreateMatchRequest :exec
INSERT INTO match_requests (id, job_seeker_id, status, query, location)
VALUES ($1, $2, $3, $4, $5)
`

type CreateMatchRequestParams struct {
	ID          uuid.UUID
	JobSeekerID string
	Status      string
	Query       string
	Location    string
}

func (q *Queries) CreateMatchRequest(ctx context.Context, arg CreateMatchRequestParams) error {
	_, err := q.db.ExecContext(ctx, createMatchRequest,
		arg.ID,
		arg.JobSeekerID,
		arg.Status,
		arg.Query,
		arg.Location,
	)
	return err
}

const updateMatchRequestStatus = `-- name: UpdateMatchRequestStatus :exec
UPDATE match_requests
SET status = $1, updated_at = CURRENT_TIMESTAMP
WHERE id = $2
`

type UpdateMatchRequestStatusParams struct {
	Status string
	ID     uuid.UUID
}

func (q *Queries) UpdateMatchRequestStatus(ctx context.Context, arg UpdateMatchRequestStatusParams) error {
	_, err := q.db.ExecContext(ctx, updateMatchRequestStatus, arg.Status, arg.ID)
	return err
}

const getMatchRequest = `-- name: GetMatchRequest :one
SELECT id, job_seeker_id, status, query, location, created_at, updated_at
FROM match_requests
WHERE id = $1
`

func (q *Queries) GetMatchRequest(ctx context.Context, id uuid.UUID) (MatchRequest, error) {
	row := q.db.QueryRowContext(ctx, getMatchRequest, id)
	var i MatchRequest
	err := row.Scan(
		&i.ID,
		&i.JobSeekerID,
		&i.Status,
		&i.Query,
		&i.Location,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
