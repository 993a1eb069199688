package worker

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"planner/config"
	"planner/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAssignmentRepo struct {
	due []*entity.Assignment
	err error
}

func (s *stubAssignmentRepo) Create(context.Context, *entity.Assignment) error { return nil }

func (s *stubAssignmentRepo) FindByID(context.Context, string, string) (*entity.Assignment, error) {
	return nil, nil
}

func (s *stubAssignmentRepo) ListByUser(context.Context, string, entity.AssignmentStatus) ([]*entity.Assignment, error) {
	return nil, nil
}

func (s *stubAssignmentRepo) Update(context.Context, *entity.Assignment) error { return nil }

func (s *stubAssignmentRepo) Delete(context.Context, string, string) error { return nil }

func (s *stubAssignmentRepo) ListDueBetween(context.Context, time.Time, time.Time) ([]*entity.Assignment, error) {
	return s.due, s.err
}

// syncBuffer guards the log buffer; Serve writes from its own goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func newReminderForTest(repo *stubAssignmentRepo, enabled bool, out *syncBuffer) *reminderWorker {
	return &reminderWorker{
		cfg: &config.ReminderConfig{
			Enabled:  enabled,
			Interval: 10 * time.Millisecond,
			Window:   24 * time.Hour,
		},
		logger:  slog.New(slog.NewTextHandler(out, nil)),
		repo:    repo,
		now:     time.Now,
		stopped: make(chan struct{}),
	}
}

func TestReminderWorker_EmitsDueEvents(t *testing.T) {
	t.Parallel()

	repo := &stubAssignmentRepo{due: []*entity.Assignment{{
		ID:      "assignment-1",
		UserID:  "user-1",
		Title:   "Lab Report",
		DueDate: time.Now().Add(2 * time.Hour),
		Status:  entity.AssignmentPending,
	}}}

	out := &syncBuffer{}
	w := newReminderForTest(repo, true, out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Serve(ctx) }()

	// The first scan fires immediately.
	assert.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("Assignment due soon"))
	}, time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	assert.Contains(t, out.String(), "Lab Report")
	assert.Contains(t, out.String(), "assignment-1")
}

func TestReminderWorker_SurvivesScanFailure(t *testing.T) {
	t.Parallel()

	repo := &stubAssignmentRepo{err: assert.AnError}
	out := &syncBuffer{}
	w := newReminderForTest(repo, true, out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Serve(ctx) }()

	assert.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("Reminder scan failed"))
	}, time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestReminderWorker_DisabledReturnsImmediately(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	w := newReminderForTest(&stubAssignmentRepo{}, false, out)

	require.NoError(t, w.Serve(context.Background()))
	assert.Contains(t, out.String(), "Reminder worker disabled")
}
