// Package scheduler is the periodic trigger: on a fixed interval it
// selects reminders whose due time has passed and hands each one to the
// execution engine. Invocations are independent, with no ordering
// guarantee between reminders.
package scheduler

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/logger"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/models"
)

// DueSource lists the reminders eligible to run at a given instant.
type DueSource interface {
	GetDue(ctx context.Context, until time.Time) ([]*models.Reminder, error)
}

// Executor runs one reminder. It must contain its own failures.
type Executor interface {
	Execute(ctx context.Context, reminder *models.Reminder)
}

type Scheduler struct {
	due            DueSource
	executor       Executor
	clock          clockwork.Clock
	checkInterval  time.Duration
	maxConcurrency int
	notifyCh       chan struct{}
	log            *logger.Logger
}

func New(due DueSource, executor Executor, clock clockwork.Clock, checkInterval time.Duration, maxConcurrency int, log *logger.Logger) *Scheduler {
	if checkInterval <= 0 {
		checkInterval = time.Minute
	}
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}
	return &Scheduler{
		due:            due,
		executor:       executor,
		clock:          clock,
		checkInterval:  checkInterval,
		maxConcurrency: maxConcurrency,
		notifyCh:       make(chan struct{}, 1),
		log:            log,
	}
}

// Notify triggers an immediate check. Non-blocking if a check is already pending.
func (s *Scheduler) Notify() {
	select {
	case s.notifyCh <- struct{}{}:
	default:
		// Channel already has a pending notification, skip
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.log.Info("scheduler started", "check_interval", s.checkInterval)
	ticker := s.clock.NewTicker(s.checkInterval)
	defer ticker.Stop()

	s.Check(ctx)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return
		case <-ticker.Chan():
			s.Check(ctx)
		case <-s.notifyCh:
			s.log.Debug("scheduler triggered by notification")
			s.Check(ctx)
		}
	}
}

// Check selects everything currently due and executes each reminder in
// its own invocation. It returns once the whole batch has finished.
func (s *Scheduler) Check(ctx context.Context) {
	now := s.clock.Now()
	reminders, err := s.due.GetDue(ctx, now)
	if err != nil {
		s.log.Error("failed to get due reminders", "error", err)
		return
	}
	if len(reminders) == 0 {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)
	for _, reminder := range reminders {
		reminder := reminder
		g.Go(func() error {
			s.executor.Execute(gctx, reminder)
			return nil
		})
	}
	_ = g.Wait()
	s.log.Debug("processed due reminders", "count", len(reminders))
}
