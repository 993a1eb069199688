// Package worker contains background deliveries driven by time, not requests.
package worker

import (
	"context"
	"log/slog"
	"time"

	"planner/config"
	"planner/internal/delivery"
	"planner/internal/domain/lifecycle"
	"planner/internal/domain/repository"

	"go.uber.org/fx"
)

// ReminderParams holds dependencies for the reminder worker.
type ReminderParams struct {
	fx.In
	fx.Lifecycle

	Config         *config.Config
	Logger         *slog.Logger
	AssignmentRepo repository.AssignmentRepository
}

// reminderWorker periodically scans for assignments coming due and emits a
// reminder event per hit. Delivery of the reminder itself (mail, push) is a
// separate concern; the worker's contract is the scan and the log event.
type reminderWorker struct {
	cfg      *config.ReminderConfig
	logger   *slog.Logger
	repo     repository.AssignmentRepository
	now      func() time.Time
	stopped  chan struct{}
	shutdown context.CancelFunc
}

// NewReminder creates the reminder worker delivery.
func NewReminder(params ReminderParams) delivery.Delivery {
	w := &reminderWorker{
		cfg:     params.Config.Reminder,
		logger:  params.Logger,
		repo:    params.AssignmentRepo,
		now:     time.Now,
		stopped: make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: w.stop,
	})

	return w
}

// Serve runs the scan loop until the context is cancelled.
func (w *reminderWorker) Serve(ctx context.Context) error {
	defer close(w.stopped)

	if w.cfg == nil || !w.cfg.Enabled {
		w.logger.Info("Reminder worker disabled")

		return nil
	}

	ctx, w.shutdown = context.WithCancel(ctx)

	w.logger.Info("Starting reminder worker",
		slog.Duration("interval", w.cfg.Interval),
		slog.Duration("window", w.cfg.Window),
	)

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	// First scan runs immediately so a restart never skips a window.
	w.scan(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.scan(ctx)
		}
	}
}

func (w *reminderWorker) scan(ctx context.Context) {
	from := w.now()
	to := from.Add(w.cfg.Window)

	due, err := w.repo.ListDueBetween(ctx, from, to)
	if err != nil {
		w.logger.Error("Reminder scan failed", slog.Any("error", err))

		return
	}

	for _, assignment := range due {
		w.logger.Info("Assignment due soon",
			slog.String("userID", assignment.UserID),
			slog.String("assignmentID", assignment.ID),
			slog.String("title", assignment.Title),
			slog.Time("dueDate", assignment.DueDate),
		)
	}

	w.logger.Debug("Reminder scan completed", slog.Int("due", len(due)))
}

func (w *reminderWorker) stop(ctx context.Context) error {
	if w.shutdown != nil {
		w.shutdown()
	}

	select {
	case <-w.stopped:
		return nil
	case <-time.After(lifecycle.DefaultTimeout):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
