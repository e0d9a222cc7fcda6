package applications

import (
	"context"
	"time"

	"tailor-backend/internal/shared/storage/object"
	"tailor-backend/internal/shared/telemetry"
)

// Janitor sweeps generated documents out of the output store once their TTL
// expires, so no file outlives its usefulness.
type Janitor struct {
	Store    object.ObjectStore
	TTL      time.Duration
	Interval time.Duration
}

// Run sweeps on a ticker until the context is canceled.
func (j *Janitor) Run(ctx context.Context) {
	interval := j.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}

// Sweep deletes documents older than the TTL.
func (j *Janitor) Sweep(ctx context.Context) {
	cutoff := time.Now().Add(-j.TTL)
	removed, err := j.Store.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		telemetry.Error("applications.janitor.sweep_failed", map[string]any{"err": err.Error()})
		return
	}
	if removed > 0 {
		telemetry.Info("applications.janitor.swept", map[string]any{"removed": removed})
	}
}
