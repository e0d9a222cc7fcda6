package applications

import "context"

// Repo defines persistence operations for application history.
type Repo interface {
	Create(ctx context.Context, app Application) error
	ListRecent(ctx context.Context, limit int) ([]Application, error)
}
