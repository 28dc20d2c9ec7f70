package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/SNcodeur2001/projet-final-todo/internal/core/ports"
)

// Sweeper force-completes tasks whose end date has passed. It is a
// system actor: no permission check, no audit entry. Ticks run serially
// on one goroutine, so a slow tick delays the next instead of
// overlapping it; a crash mid-batch self-heals on the next tick.
type Sweeper struct {
	tasks    ports.TaskRepository
	interval time.Duration
	logger   *zap.Logger
}

func NewSweeper(tasks ports.TaskRepository, interval time.Duration, logger *zap.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{tasks: tasks, interval: interval, logger: logger}
}

// Run ticks until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick(ctx, time.Now())
		}
	}
}

// Tick closes every overdue task. A failure on one task never aborts
// the rest of the batch.
func (s *Sweeper) Tick(ctx context.Context, now time.Time) {
	overdue, err := s.tasks.ListOverdue(ctx, now)
	if err != nil {
		s.logger.Error("sweeper: failed to list overdue tasks", zap.Error(err))
		return
	}

	for _, task := range overdue {
		if _, err := s.tasks.MarkDone(ctx, task.ID); err != nil {
			s.logger.Error("sweeper: failed to close task",
				zap.Uint64("tache_id", task.ID), zap.Error(err))
			continue
		}
		s.logger.Info("sweeper: task auto-closed",
			zap.Uint64("tache_id", task.ID),
			zap.String("previous_status", string(task.Status)),
			zap.Timep("date_fin", task.DateFin))
	}
}
