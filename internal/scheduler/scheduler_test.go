package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/logger"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/models"
)

type fakeDueSource struct {
	mu        sync.Mutex
	reminders []*models.Reminder
	err       error
	calls     int
}

func (f *fakeDueSource) GetDue(_ context.Context, _ time.Time) ([]*models.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.reminders, nil
}

type fakeExecutor struct {
	mu       sync.Mutex
	executed []int64
	ch       chan int64
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{ch: make(chan int64, 32)}
}

func (f *fakeExecutor) Execute(_ context.Context, reminder *models.Reminder) {
	f.mu.Lock()
	f.executed = append(f.executed, reminder.ReminderID)
	f.mu.Unlock()
	f.ch <- reminder.ReminderID
}

func (f *fakeExecutor) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.executed)
}

func due(id int64) *models.Reminder {
	at := time.Date(2024, 3, 6, 14, 30, 0, 0, time.UTC)
	return &models.Reminder{
		ReminderID: id,
		UserID:     42,
		Enabled:    true,
		Type:       models.TypeSimple,
		Frequency:  models.FreqDaily,
		NextRunAt:  &at,
	}
}

func TestCheck_ExecutesEveryDueReminder(t *testing.T) {
	source := &fakeDueSource{reminders: []*models.Reminder{due(1), due(2), due(3)}}
	executor := newFakeExecutor()
	s := New(source, executor, clockwork.NewFakeClock(), time.Minute, 2, logger.NewNop())

	s.Check(context.Background())

	assert.Equal(t, 3, executor.count())
	assert.ElementsMatch(t, []int64{1, 2, 3}, executor.executed)
}

func TestCheck_SourceErrorIsContained(t *testing.T) {
	source := &fakeDueSource{err: errors.New("database down")}
	executor := newFakeExecutor()
	s := New(source, executor, clockwork.NewFakeClock(), time.Minute, 2, logger.NewNop())

	assert.NotPanics(t, func() {
		s.Check(context.Background())
	})
	assert.Equal(t, 0, executor.count())
}

func TestNotify_CoalescesPendingTriggers(t *testing.T) {
	source := &fakeDueSource{}
	executor := newFakeExecutor()
	s := New(source, executor, clockwork.NewFakeClock(), time.Minute, 1, logger.NewNop())

	// Multiple notifications while a check is pending fold into one.
	s.Notify()
	s.Notify()
	s.Notify()
	assert.Len(t, s.notifyCh, 1)
}

func TestStart_ChecksOnIntervalAndNotify(t *testing.T) {
	clock := clockwork.NewFakeClock()
	source := &fakeDueSource{reminders: []*models.Reminder{due(1)}}
	executor := newFakeExecutor()
	s := New(source, executor, clock, time.Minute, 1, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	// Immediate check on startup.
	waitForExecution(t, executor)

	// Ticker check after one interval.
	clock.BlockUntil(1)
	clock.Advance(time.Minute)
	waitForExecution(t, executor)

	// Manual trigger.
	s.Notify()
	waitForExecution(t, executor)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop on context cancellation")
	}
}

func waitForExecution(t *testing.T, executor *fakeExecutor) {
	t.Helper()
	select {
	case <-executor.ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an execution")
	}
	require.True(t, executor.count() > 0)
}
