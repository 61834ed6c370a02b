// Package engine executes one due reminder at a time: it decides whether
// to run, runs exactly-once best-effort, gates AI generation behind daily
// caps, persists the draft, records the outcome, and advances the
// reminder to its next occurrence.
package engine

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/logger"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/models"
)

// ExecutionStore persists and looks up execution records by identity key.
type ExecutionStore interface {
	Exists(ctx context.Context, key string) (bool, error)
	Record(ctx context.Context, record *models.ExecutionRecord) error
}

// DraftStore persists write-once drafts.
type DraftStore interface {
	Create(ctx context.Context, draft *models.Draft) error
}

// UsageStore reads and atomically increments daily AI counters.
type UsageStore interface {
	UserCount(ctx context.Context, userID int64, day string) (int, error)
	GlobalCount(ctx context.Context, day string) (int, error)
	IncrementUser(ctx context.Context, userID int64, day string) error
	IncrementGlobal(ctx context.Context, day string) error
}

// ReminderStore mutates reminder scheduling state. enabled and
// next_run_at are the only fields the engine ever writes.
type ReminderStore interface {
	SetEnabled(ctx context.Context, reminderID int64, enabled bool) error
	UpdateNextRunAt(ctx context.Context, reminderID int64, nextRunAt *time.Time) error
}

// Generator is the opaque content-generation collaborator. Any failure is
// treated identically; the engine never branches on error kind.
type Generator interface {
	Generate(ctx context.Context, content models.Content) (string, error)
}

// Notifier receives best-effort draft-ready notifications. May be nil.
type Notifier interface {
	DraftReady(userID int64, draft *models.Draft)
}

// Stores bundles the persistence collaborators the engine needs.
type Stores struct {
	Executions ExecutionStore
	Drafts     DraftStore
	Usage      UsageStore
	Reminders  ReminderStore
}

// Caps holds the daily AI generation ceilings.
type Caps struct {
	UserDaily   int
	GlobalDaily int
}

type Engine struct {
	idempotency *IdempotencyGuard
	quota       *QuotaGuard
	drafts      *DraftWriter
	recorder    *Recorder
	advancer    *Advancer
	generator   Generator
	notifier    Notifier
	log         *logger.Logger
}

func New(stores Stores, generator Generator, caps Caps, clock clockwork.Clock, notifier Notifier, log *logger.Logger) *Engine {
	return &Engine{
		idempotency: NewIdempotencyGuard(stores.Executions, log),
		quota:       NewQuotaGuard(stores.Usage, clock, caps.UserDaily, caps.GlobalDaily, log),
		drafts:      NewDraftWriter(stores.Drafts, log),
		recorder:    NewRecorder(stores.Executions, log),
		advancer:    NewAdvancer(stores.Reminders, log),
		generator:   generator,
		notifier:    notifier,
		log:         log,
	}
}

// Execute runs one reminder snapshot through the state machine. It is
// fire-and-forget: failures are contained here so one reminder can never
// take down the trigger or affect another reminder's invocation.
func (e *Engine) Execute(ctx context.Context, reminder *models.Reminder) {
	log := e.log.With(
		"reminder_id", reminder.ReminderID,
		"user_id", reminder.UserID,
	)
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic during reminder execution", "panic", r)
		}
	}()

	if reminder.NextRunAt == nil {
		log.Warn("reminder has no due time, nothing to execute")
		return
	}
	// The identity base is the time it was supposed to run, not now.
	scheduledFor := reminder.NextRunAt.UTC()
	log = log.With("scheduled_for", scheduledFor)

	if !reminder.Enabled {
		e.record(ctx, reminder, scheduledFor, models.StatusSkippedDisabled, false, nil)
		log.Info("skipped disabled reminder")
		return
	}

	if e.idempotency.AlreadyExecuted(ctx, reminder.ReminderID, scheduledFor) {
		log.Debug("execution already recorded, skipping")
		return
	}

	switch reminder.Type {
	case models.TypeSimple:
		e.executeSimple(ctx, reminder, scheduledFor, log)
	case models.TypeAI:
		e.executeAI(ctx, reminder, scheduledFor, log)
	default:
		e.record(ctx, reminder, scheduledFor, models.StatusSkippedError, false, nil)
		log.Error("unknown reminder type", "reminder_type", reminder.Type)
	}
}

func (e *Engine) executeSimple(ctx context.Context, reminder *models.Reminder, scheduledFor time.Time, log *logger.Logger) {
	draft := e.drafts.Create(ctx, reminder.UserID, reminder.ReminderID,
		reminder.Type, reminder.Content.Message, scheduledFor)
	e.record(ctx, reminder, scheduledFor, models.StatusExecuted, false, draft)
	e.advance(ctx, reminder, scheduledFor, log)
	e.notifyDraft(reminder.UserID, draft)
	log.Info("executed simple reminder", "draft", draft != nil)
}

func (e *Engine) executeAI(ctx context.Context, reminder *models.Reminder, scheduledFor time.Time, log *logger.Logger) {
	allowed, reason := e.quota.Check(ctx, reminder.UserID)
	if !allowed {
		// A denied cap is not retryable: the reminder still advances so
		// the user keeps their cadence.
		e.record(ctx, reminder, scheduledFor, models.StatusSkippedCap, false, nil)
		e.advance(ctx, reminder, scheduledFor, log)
		log.Info("skipped ai reminder, cap reached", "reason", reason)
		return
	}

	text, err := e.generate(ctx, reminder.Content)
	if err != nil {
		// No retry; the next occurrence gets a fresh attempt.
		e.record(ctx, reminder, scheduledFor, models.StatusSkippedError, false, nil)
		e.advance(ctx, reminder, scheduledFor, log)
		log.Error("generation failed", "error", err)
		return
	}

	// Charge only after the call succeeded.
	e.quota.Increment(ctx, reminder.UserID)

	draft := e.drafts.Create(ctx, reminder.UserID, reminder.ReminderID,
		reminder.Type, text, scheduledFor)
	e.record(ctx, reminder, scheduledFor, models.StatusExecuted, true, draft)
	e.advance(ctx, reminder, scheduledFor, log)
	e.notifyDraft(reminder.UserID, draft)
	log.Info("executed ai reminder", "draft", draft != nil)
}

func (e *Engine) generate(ctx context.Context, content models.Content) (string, error) {
	if e.generator == nil {
		return "", errGeneratorUnavailable
	}
	return e.generator.Generate(ctx, content)
}

// record builds and stores the audit entry. The draft write happens
// before this so the draft id can be attached.
func (e *Engine) record(ctx context.Context, reminder *models.Reminder, scheduledFor time.Time, status string, aiUsed bool, draft *models.Draft) {
	rec := &models.ExecutionRecord{
		UserID:       reminder.UserID,
		ReminderID:   reminder.ReminderID,
		ScheduledFor: scheduledFor,
		Status:       status,
		AIUsed:       aiUsed,
	}
	if draft != nil {
		rec.DraftID = &draft.DraftID
	}
	e.recorder.Record(ctx, rec)
}

func (e *Engine) advance(ctx context.Context, reminder *models.Reminder, scheduledFor time.Time, log *logger.Logger) {
	if err := e.advancer.Advance(ctx, reminder, scheduledFor); err != nil {
		// Unrecognized frequency: a programming error, fatal for this
		// invocation only.
		log.Error("advance failed", "frequency", reminder.Frequency, "error", err)
	}
}

func (e *Engine) notifyDraft(userID int64, draft *models.Draft) {
	if e.notifier == nil || draft == nil {
		return
	}
	e.notifier.DraftReady(userID, draft)
}
