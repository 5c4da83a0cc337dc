package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
	"github.com/go-co-op/gocron"
)

// Cleanup periodically purges events that have already ended, keeping the
// content tables from growing without bound.
type Cleanup struct {
	Purger datasources.OutdatedContentPurger

	// RunAt is the daily wall-clock time in UTC, "HH:MM".
	RunAt string
}

func (c *Cleanup) Run(ctx context.Context) error {
	scheduler := gocron.NewScheduler(time.UTC)

	_, err := scheduler.Every(1).Day().At(c.RunAt).Do(func() {
		c.purge(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduling content cleanup: %w", err)
	}

	scheduler.StartAsync()
	<-ctx.Done()
	scheduler.Stop()

	return nil
}

func (c *Cleanup) purge(ctx context.Context) {
	logger := domain.LoggerFromContext(ctx)

	// Events that ended yesterday survive one more day, matching the
	// grace period clients expect for "just finished" listings.
	cutoff := time.Now().UTC().AddDate(0, 0, -1)

	deleted, err := c.Purger.PurgeOutdatedContent(ctx, cutoff)
	if err != nil {
		logger.ErrorContext(ctx, "unable to purge outdated content", "error", err)
		return
	}

	logger.InfoContext(ctx, "purged outdated content", "deleted", deleted)
}
