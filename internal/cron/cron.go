package cron

import (
	"context"
	"time"

	"github.com/linskybing/project-review/internal/application"
	"go.uber.org/zap"
)

// StartObjectSweep runs the orphan object sweep once and then every interval
// until ctx is cancelled.
func StartObjectSweep(ctx context.Context, projects *application.ProjectService, interval time.Duration, log *zap.Logger) {
	go func() {
		log.Info("starting object sweep", zap.Duration("interval", interval))

		// Run immediately on startup
		sweep(ctx, projects, log)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sweep(ctx, projects, log)
			}
		}
	}()
}

func sweep(ctx context.Context, projects *application.ProjectService, log *zap.Logger) {
	n, err := projects.SweepOrphanObjects(ctx)
	if err != nil {
		log.Warn("object sweep failed", zap.Error(err))
		return
	}
	if n > 0 {
		log.Info("object sweep completed", zap.Int("removed", n))
	}
}
