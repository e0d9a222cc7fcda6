package applications

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new application record.
func (r *PGRepo) Create(ctx context.Context, app Application) error {
	const query = `
INSERT INTO applications (
    id,
    session_key,
    resume_filename,
    job_description,
    model,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		app.ID,
		app.SessionKey,
		app.ResumeFilename,
		app.JobDescription,
		app.Model,
		app.CreatedAt,
	)
	return err
}

// ListRecent lists application records newest-first.
func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]Application, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	const query = `
SELECT id, session_key, resume_filename, job_description, model, created_at
FROM applications
ORDER BY created_at DESC
LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Application
	for rows.Next() {
		var app Application
		if err := rows.Scan(
			&app.ID,
			&app.SessionKey,
			&app.ResumeFilename,
			&app.JobDescription,
			&app.Model,
			&app.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
