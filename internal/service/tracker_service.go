package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yuhakway/tracker/internal/domain"
	"github.com/yuhakway/tracker/internal/metrics"
	"github.com/yuhakway/tracker/internal/progress"
	"github.com/yuhakway/tracker/internal/repository"
)

// TrackerService serves the read screens: dashboard, application detail,
// calendar and profile.
type TrackerService struct {
	store  repository.Store
	logger *slog.Logger
	now    func() time.Time
}

func NewTrackerService(store repository.Store, logger *slog.Logger) *TrackerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TrackerService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Dashboard returns the student's applications, newest first, each with its
// status projection.
func (s *TrackerService) Dashboard(ctx context.Context, studentID uuid.UUID) ([]ApplicationSummary, error) {
	apps, err := s.store.ListApplications(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	summaries := make([]ApplicationSummary, 0, len(apps))
	for _, app := range apps {
		summary := summarize(app)
		s.observe(summary)
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Application returns one of the student's applications with its step track
// and document state.
func (s *TrackerService) Application(ctx context.Context, studentID, id uuid.UUID) (*ApplicationDetail, error) {
	app, err := s.store.GetApplication(ctx, studentID, id)
	if err != nil {
		return nil, fmt.Errorf("get application %s: %w", id, err)
	}

	summary := summarize(*app)
	s.observe(summary)

	status := string(app.Status)
	return &ApplicationDetail{
		ApplicationSummary: summary,
		Steps:              progress.Track(status),
		Documents:          progress.DocumentStatusFor(status),
	}, nil
}

// Calendar returns the user's events that have not happened yet, earliest first.
func (s *TrackerService) Calendar(ctx context.Context, userID uuid.UUID) ([]EventView, error) {
	events, err := s.store.ListUpcomingEvents(ctx, userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}

	views := make([]EventView, 0, len(events))
	for _, ev := range events {
		views = append(views, eventView(ev))
	}
	return views, nil
}

func (s *TrackerService) Profile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// Overview loads the profile, dashboard and calendar concurrently. The first
// failure cancels the remaining reads.
func (s *TrackerService) Overview(ctx context.Context, userID uuid.UUID) (*Overview, error) {
	var out Overview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		profile, err := s.Profile(gctx, userID)
		if err != nil {
			return err
		}
		out.Profile = profile
		return nil
	})
	g.Go(func() error {
		apps, err := s.Dashboard(gctx, userID)
		if err != nil {
			return err
		}
		out.Applications = apps
		return nil
	})
	g.Go(func() error {
		events, err := s.Calendar(gctx, userID)
		if err != nil {
			return err
		}
		out.Events = events
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("overview failed", "user_id", userID, "error", err)
		return nil, err
	}
	return &out, nil
}

func (s *TrackerService) observe(summary ApplicationSummary) {
	metrics.ObserveProjection(string(summary.Status), summary.Progress.Known)
	if !summary.Progress.Known {
		s.logger.Warn("application has unknown status",
			"application_id", summary.ID,
			"status", summary.Status,
		)
	}
}
