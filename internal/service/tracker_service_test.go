package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuhakway/tracker/internal/domain"
	errpkg "github.com/yuhakway/tracker/internal/errors"
	"github.com/yuhakway/tracker/internal/progress"
	"github.com/yuhakway/tracker/internal/repository"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

var (
	studentID = uuid.MustParse("0b7f5a4e-2f0c-4d7e-9a51-3c1e8f6d2a10")
	otherID   = uuid.MustParse("5d2c9e81-7a44-4b3f-8e02-6f1a9c3b7d55")
	appOld    = uuid.MustParse("a1111111-1111-4111-8111-111111111111")
	appNew    = uuid.MustParse("a2222222-2222-4222-8222-222222222222")
	appOther  = uuid.MustParse("a3333333-3333-4333-8333-333333333333")
	testNow   = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
)

const fixtureYAML = `
applications:
  - id: %[2]s
    student_id: %[1]s
    university: Seoul National University
    program: Computer Science
    status: under_review
    created_at: 2025-03-01T10:00:00Z
  - id: %[3]s
    student_id: %[1]s
    university: Yonsei University
    program: Business
    status: legacy_stage
    created_at: 2025-04-01T10:00:00Z
  - id: %[4]s
    student_id: %[5]s
    university: KAIST
    program: Physics
    status: completed
    created_at: 2025-05-01T10:00:00Z
calendar_events:
  - id: e1111111-1111-4111-8111-111111111111
    user_id: %[1]s
    title: TOPIK exam
    event_date: 2025-05-20T09:00:00Z
    event_type: deadline
  - id: e2222222-2222-4222-8222-222222222222
    user_id: %[1]s
    title: Interview
    event_date: 2025-06-10T09:00:00Z
    event_type: interview
  - id: e3333333-3333-4333-8333-333333333333
    user_id: %[1]s
    title: Orientation
    event_date: 2025-06-05T09:00:00Z
    event_type: orientation
profiles:
  - id: %[1]s
    full_name: Aziz Karimov
    email: aziz@example.uz
    created_at: 2025-01-01T00:00:00Z
`

func newFixtureService(t *testing.T) *TrackerService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	content := fmt.Sprintf(fixtureYAML, studentID, appOld, appNew, appOther, otherID)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store, err := repository.NewFixtureStore(path)
	require.NoError(t, err)

	svc := NewTrackerService(store, newTestLogger())
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestTrackerService_Dashboard(t *testing.T) {
	svc := newFixtureService(t)

	apps, err := svc.Dashboard(context.Background(), studentID)
	require.NoError(t, err)
	require.Len(t, apps, 2)

	assert.Equal(t, appNew, apps[0].ID, "newest first")
	assert.False(t, apps[0].Progress.Known)
	assert.Equal(t, "Legacy Stage", apps[0].Progress.Label)
	assert.Equal(t, progress.NeutralColor, apps[0].Progress.Color)

	assert.Equal(t, appOld, apps[1].ID)
	assert.True(t, apps[1].Progress.Known)
	assert.Equal(t, 50, apps[1].Progress.Percentage)
}

func TestTrackerService_Application(t *testing.T) {
	svc := newFixtureService(t)

	detail, err := svc.Application(context.Background(), studentID, appOld)
	require.NoError(t, err)
	assert.Equal(t, "Seoul National University", detail.University)
	assert.Equal(t, 50, detail.Progress.Percentage)
	assert.Equal(t, progress.DocumentsVerifying, detail.Documents.Stage)

	require.Len(t, detail.Steps, len(progress.Steps()))
	for _, step := range detail.Steps {
		assert.Equal(t, step.Status == domain.StatusUnderReview, step.Current, step.Status)
	}
}

func TestTrackerService_ApplicationOfAnotherStudent(t *testing.T) {
	svc := newFixtureService(t)

	_, err := svc.Application(context.Background(), studentID, appOther)
	assert.ErrorIs(t, err, errpkg.ErrNotFound)
}

func TestTrackerService_Calendar(t *testing.T) {
	svc := newFixtureService(t)

	events, err := svc.Calendar(context.Background(), studentID)
	require.NoError(t, err)
	require.Len(t, events, 2, "past events are excluded")

	assert.Equal(t, "Orientation", events[0].Title)
	assert.False(t, events[0].Style.Known)
	assert.Equal(t, progress.NeutralColor, events[0].Style.Color)

	assert.Equal(t, "Interview", events[1].Title)
	assert.Equal(t, "people", events[1].Style.Icon)
}

func TestTrackerService_Overview(t *testing.T) {
	svc := newFixtureService(t)

	ov, err := svc.Overview(context.Background(), studentID)
	require.NoError(t, err)
	require.NotNil(t, ov.Profile)
	assert.Equal(t, "Aziz Karimov", ov.Profile.FullName)
	assert.Len(t, ov.Applications, 2)
	assert.Len(t, ov.Events, 2)
}

func TestTrackerService_OverviewMissingProfile(t *testing.T) {
	svc := newFixtureService(t)

	ov, err := svc.Overview(context.Background(), otherID)
	assert.Nil(t, ov)
	assert.ErrorIs(t, err, errpkg.ErrNotFound)
}

type failingStore struct {
	repository.Store
	err error
}

func (f failingStore) ListApplications(ctx context.Context, _ uuid.UUID) ([]domain.Application, error) {
	return nil, f.err
}

func (f failingStore) ListUpcomingEvents(ctx context.Context, _ uuid.UUID, _ time.Time) ([]domain.CalendarEvent, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (f failingStore) GetProfile(ctx context.Context, _ uuid.UUID) (*domain.Profile, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestTrackerService_OverviewFirstErrorCancelsRest(t *testing.T) {
	boom := errors.New("boom")
	svc := NewTrackerService(failingStore{err: boom}, newTestLogger())

	done := make(chan error, 1)
	go func() {
		_, err := svc.Overview(context.Background(), studentID)
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
	case <-time.After(5 * time.Second):
		t.Fatal("overview did not return after the first failure")
	}
}
