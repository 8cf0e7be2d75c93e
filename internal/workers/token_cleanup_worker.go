package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"skillnet_backend/internal/logger"
	"skillnet_backend/internal/repositories"
)

// TokenCleanupWorker deletes expired refresh tokens in the background
// so the sessions table does not grow without bound.
type TokenCleanupWorker struct {
	db        *gorm.DB
	tokenRepo repositories.RefreshTokenRepository
	interval  time.Duration
}

func NewTokenCleanupWorker(db *gorm.DB, tokenRepo repositories.RefreshTokenRepository) *TokenCleanupWorker {
	return &TokenCleanupWorker{
		db:        db,
		tokenRepo: tokenRepo,
		interval:  6 * time.Hour,
	}
}

// Start runs the cleanup loop until the context is cancelled.
func (w *TokenCleanupWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *TokenCleanupWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Token cleanup worker stopped")
			return
		case <-ticker.C:
			if err := w.tokenRepo.CleanExpired(w.db); err != nil {
				logger.Error("Failed to clean expired refresh tokens", "error", err)
			}
		}
	}
}
