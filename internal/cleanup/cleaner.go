package cleanup

import (
	"context"
	"log/slog"
	"time"
)

// CartPurger is the slice of the storage layer the cleaner needs.
type CartPurger interface {
	DeleteCartItemsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Cleaner periodically purges abandoned cart items older than the
// retention window.
type Cleaner struct {
	purger    CartPurger
	interval  time.Duration
	retention time.Duration
}

// NewCleaner creates a new cleanup worker
func NewCleaner(purger CartPurger, interval, retention time.Duration) *Cleaner {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	if retention <= 0 {
		retention = 30 * 24 * time.Hour
	}

	return &Cleaner{
		purger:    purger,
		interval:  interval,
		retention: retention,
	}
}

// Start begins the cleanup worker in a goroutine
func (c *Cleaner) Start(ctx context.Context) {
	go c.run(ctx)
}

// run is the main loop for the cleanup worker
func (c *Cleaner) run(ctx context.Context) {
	slog.Info("cart cleanup worker started",
		"interval", c.interval,
		"retention", c.retention,
	)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	// Run immediately on start
	c.cleanup(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("cart cleanup worker stopped")
			return
		case <-ticker.C:
			c.cleanup(ctx)
		}
	}
}

// cleanup removes cart items that fell out of the retention window
func (c *Cleaner) cleanup(ctx context.Context) {
	cutoff := time.Now().Add(-c.retention)

	deleted, err := c.purger.DeleteCartItemsBefore(ctx, cutoff)
	if err != nil {
		slog.Error("failed to purge stale cart items", "error", err)
		return
	}

	if deleted > 0 {
		slog.Info("purged stale cart items", "count", deleted, "cutoff", cutoff)
	} else {
		slog.Debug("no stale cart items found")
	}
}
