package workers

import (
	"context"
	"time"

	"vagaspg_backend/internal/logger"
	"vagaspg_backend/internal/repositories"

	"gorm.io/gorm"
)

// TokenCleanupWorker purges expired refresh tokens.
type TokenCleanupWorker struct {
	db       *gorm.DB
	repo     repositories.RefreshTokenRepository
	interval time.Duration
}

func NewTokenCleanupWorker(db *gorm.DB, repo repositories.RefreshTokenRepository, interval time.Duration) *TokenCleanupWorker {
	return &TokenCleanupWorker{db: db, repo: repo, interval: interval}
}

func (w *TokenCleanupWorker) Start(ctx context.Context) {
	if w.interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info("Token cleanup worker stopped")
				return
			case <-ticker.C:
				w.RunOnce(ctx)
			}
		}
	}()
}

func (w *TokenCleanupWorker) RunOnce(ctx context.Context) int64 {
	removed, err := w.repo.CleanExpired(w.db.WithContext(ctx))
	if err != nil {
		logger.WorkerLog("token_cleanup", "clean_expired", err)
		return 0
	}
	if removed > 0 {
		logger.CtxInfo(ctx, "Cleaned expired refresh tokens", "count", removed)
	}
	return removed
}
