package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"boba-pos/config"
	"boba-pos/models"
)

// AccrualWorker drains the reward-accrual outbox: checkout commits a
// pending row together with the order, and this worker applies the
// points afterwards with retry, so a worker crash loses nothing.
type AccrualWorker struct {
	db     *gorm.DB
	logger *zap.Logger
	cfg    config.AccrualConfig
}

func NewAccrualWorker(db *gorm.DB, logger *zap.Logger, cfg config.AccrualConfig) *AccrualWorker {
	return &AccrualWorker{db: db, logger: logger, cfg: cfg}
}

// Run polls until the context is cancelled.
func (w *AccrualWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	w.logger.Info("reward accrual worker started",
		zap.Duration("poll_interval", w.cfg.PollInterval))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("reward accrual worker stopped")
			return
		case <-ticker.C:
			if n, err := w.ProcessPending(ctx); err != nil {
				w.logger.Error("accrual batch failed", zap.Error(err))
			} else if n > 0 {
				w.logger.Info("applied reward accruals", zap.Int("count", n))
			}
		}
	}
}

// ProcessPending applies one batch of pending accruals and reports how
// many were marked done.
func (w *AccrualWorker) ProcessPending(ctx context.Context) (int, error) {
	var pending []models.RewardAccrual
	err := w.db.WithContext(ctx).
		Where("status = ?", models.AccrualPending).
		Order("id").
		Limit(w.cfg.BatchSize).
		Find(&pending).Error
	if err != nil {
		return 0, err
	}

	done := 0
	for i := range pending {
		if err := w.apply(ctx, &pending[i]); err != nil {
			w.logger.Warn("accrual attempt failed",
				zap.Uint("accrual_id", pending[i].ID),
				zap.Uint("customer_id", pending[i].CustomerID),
				zap.Error(err))
			continue
		}
		if pending[i].Status == models.AccrualDone {
			done++
		}
	}
	return done, nil
}

func (w *AccrualWorker) apply(ctx context.Context, accrual *models.RewardAccrual) error {
	return w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Customer{}).
			Where("id = ?", accrual.CustomerID).
			UpdateColumn("reward_points", gorm.Expr("reward_points + ?", accrual.Points))
		if res.Error != nil {
			return w.recordFailure(accrual, res.Error)
		}

		if res.RowsAffected == 0 {
			// Customer deleted since checkout; retrying won't help.
			accrual.Status = models.AccrualFailed
			accrual.Attempts++
			return tx.Model(accrual).
				Updates(map[string]interface{}{"status": accrual.Status, "attempts": accrual.Attempts}).Error
		}

		accrual.Status = models.AccrualDone
		accrual.Attempts++
		return tx.Model(accrual).
			Updates(map[string]interface{}{"status": accrual.Status, "attempts": accrual.Attempts}).Error
	})
}

// recordFailure bumps the attempt counter on the worker's own
// connection so it survives the rolled-back points update; past
// MaxAttempts the row is parked as failed instead of retrying forever.
func (w *AccrualWorker) recordFailure(accrual *models.RewardAccrual, cause error) error {
	accrual.Attempts++
	update := map[string]interface{}{"attempts": accrual.Attempts}
	if accrual.Attempts >= w.cfg.MaxAttempts {
		accrual.Status = models.AccrualFailed
		update["status"] = accrual.Status
	}
	if err := w.db.Model(accrual).Updates(update).Error; err != nil {
		return err
	}
	return cause
}
