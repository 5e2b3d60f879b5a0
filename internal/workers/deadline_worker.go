package workers

import (
	"context"
	"time"

	"phdtrack_backend/internal/logger"
	"phdtrack_backend/internal/services"

	"gorm.io/gorm"
)

// DeadlineWorker periodically runs the deadline scan. The scan itself keeps
// no memory of previous runs, so the interval should stay coarse (hours, not
// minutes) to avoid flooding the notification list with duplicates.
type DeadlineWorker struct {
	db                  *gorm.DB
	notificationService *services.NotificationService
	interval            time.Duration
	daysThreshold       int
}

func NewDeadlineWorker(
	db *gorm.DB,
	notificationService *services.NotificationService,
	interval time.Duration,
	daysThreshold int,
) *DeadlineWorker {
	return &DeadlineWorker{
		db:                  db,
		notificationService: notificationService,
		interval:            interval,
		daysThreshold:       daysThreshold,
	}
}

// Start runs the scan loop until the context is cancelled. The first scan
// fires immediately.
func (w *DeadlineWorker) Start(ctx context.Context) {
	logger.Info("deadline worker started",
		"interval", w.interval.String(),
		"days_threshold", w.daysThreshold,
	)

	w.scan()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("deadline worker stopped")
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

func (w *DeadlineWorker) scan() {
	created, err := w.notificationService.CheckUpcomingDeadlines(w.db, w.daysThreshold)
	if err != nil {
		logger.WorkerLog("deadline", "scan", err)
		return
	}

	logger.WorkerLog("deadline", "scan", nil)
	if len(created) > 0 {
		logger.Info("deadline scan created notifications", "count", len(created))
	}
}
