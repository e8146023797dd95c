package workers

import (
	"context"
	"fmt"
	"time"

	"jits_backend/internal/logger"
	"jits_backend/internal/repositories"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const resetTokenWorkerName = "reset_token_janitor"

// ResetTokenWorker обнуляет просроченные токены сброса пароля
type ResetTokenWorker struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
	schedule string
	now      func() time.Time

	cron *cron.Cron
}

func NewResetTokenWorker(db *gorm.DB, userRepo repositories.UserRepository, schedule string) *ResetTokenWorker {
	if schedule == "" {
		schedule = "@every 10m"
	}
	return &ResetTokenWorker{
		db:       db,
		userRepo: userRepo,
		schedule: schedule,
		now:      time.Now,
	}
}

// Start запускает задачу по расписанию. Останавливается по ctx.
func (w *ResetTokenWorker) Start(ctx context.Context) error {
	w.cron = cron.New()

	_, err := w.cron.AddFunc(w.schedule, func() {
		runCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		_, _ = w.RunOnce(runCtx)
	})
	if err != nil {
		return fmt.Errorf("invalid reset token cleanup schedule %q: %w", w.schedule, err)
	}

	w.cron.Start()
	logger.Info("Reset token worker started", "schedule", w.schedule)

	go func() {
		<-ctx.Done()
		<-w.cron.Stop().Done()
		logger.Info("Reset token worker stopped")
	}()
	return nil
}

// RunOnce - один проход очистки
func (w *ResetTokenWorker) RunOnce(ctx context.Context) (int64, error) {
	purged, err := w.userRepo.ClearExpiredResetTokens(w.db.WithContext(ctx), w.now())
	if err != nil {
		logger.WorkerLog(resetTokenWorkerName, "purge", err)
		return 0, err
	}
	if purged > 0 {
		logger.WorkerLog(resetTokenWorkerName, "purge", nil, "purged", purged)
	}
	return purged, nil
}
