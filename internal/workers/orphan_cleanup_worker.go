package workers

import (
	"context"
	"time"

	"vagaspg_backend/internal/logger"
	"vagaspg_backend/internal/repositories"
	"vagaspg_backend/internal/storage"

	"gorm.io/gorm"
)

const orphanBatchSize = 50

// OrphanCleanupWorker retries deleting stored resumes whose application was never saved.
type OrphanCleanupWorker struct {
	db         *gorm.DB
	storage    storage.Storage
	orphanRepo repositories.OrphanedFileRepository
	interval   time.Duration
}

func NewOrphanCleanupWorker(
	db *gorm.DB,
	storage storage.Storage,
	orphanRepo repositories.OrphanedFileRepository,
	interval time.Duration,
) *OrphanCleanupWorker {
	return &OrphanCleanupWorker{
		db:         db,
		storage:    storage,
		orphanRepo: orphanRepo,
		interval:   interval,
	}
}

// Start runs the cleanup loop until ctx is cancelled. A non-positive interval disables it.
func (w *OrphanCleanupWorker) Start(ctx context.Context) {
	if w.interval <= 0 {
		logger.Info("Orphan cleanup worker disabled")
		return
	}
	go w.loop(ctx)
}

func (w *OrphanCleanupWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Orphan cleanup worker stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce processes one batch and returns how many objects were removed.
func (w *OrphanCleanupWorker) RunOnce(ctx context.Context) int {
	db := w.db.WithContext(ctx)

	files, err := w.orphanRepo.FindBatch(db, orphanBatchSize)
	if err != nil {
		logger.WorkerLog("orphan_cleanup", "load_batch", err)
		return 0
	}

	removed := 0
	for _, file := range files {
		if err := w.storage.Delete(ctx, file.Path); err != nil {
			logger.CtxWarn(ctx, "Orphaned file still not deletable", "path", file.Path, "attempts", file.Attempts+1, "error", err.Error())
			if markErr := w.orphanRepo.MarkAttempt(db, file.ID, err.Error()); markErr != nil {
				logger.CtxWithError(ctx, "Failed to record cleanup attempt", markErr, "id", file.ID)
			}
			continue
		}
		if err := w.orphanRepo.Delete(db, file.ID); err != nil {
			logger.CtxWithError(ctx, "Failed to drop orphaned file row", err, "id", file.ID)
			continue
		}
		removed++
	}

	if removed > 0 {
		logger.CtxInfo(ctx, "Removed orphaned files", "count", removed)
	}
	return removed
}
