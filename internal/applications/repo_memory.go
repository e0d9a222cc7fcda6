package applications

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used when no
// DATABASE_URL is configured.
type MemoryRepo struct {
	mu   sync.RWMutex
	apps []Application
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create appends an application record.
func (r *MemoryRepo) Create(ctx context.Context, app Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps = append(r.apps, app)
	return nil
}

// ListRecent returns records newest-first, honoring limit.
func (r *MemoryRepo) ListRecent(ctx context.Context, limit int) ([]Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	r.mu.RLock()
	apps := make([]Application, len(r.apps))
	copy(apps, r.apps)
	r.mu.RUnlock()

	sort.Slice(apps, func(i, j int) bool {
		return apps[i].CreatedAt.After(apps[j].CreatedAt)
	})
	if limit < len(apps) {
		apps = apps[:limit]
	}
	return apps, nil
}

var _ Repo = (*MemoryRepo)(nil)
