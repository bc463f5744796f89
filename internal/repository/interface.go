package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yuhakway/tracker/internal/domain"
)

// ApplicationRepo defines read access to a student's applications.
type ApplicationRepo interface {
	// ListApplications returns the student's applications, newest first.
	ListApplications(ctx context.Context, studentID uuid.UUID) ([]domain.Application, error)
	GetApplication(ctx context.Context, studentID, id uuid.UUID) (*domain.Application, error)
}

// EventRepo defines read access to calendar events.
type EventRepo interface {
	// ListUpcomingEvents returns the user's events dated at or after from, earliest first.
	ListUpcomingEvents(ctx context.Context, userID uuid.UUID, from time.Time) ([]domain.CalendarEvent, error)
}

// ProfileRepo defines read access to user profiles.
type ProfileRepo interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

// Store groups every record source a screen reads from.
type Store interface {
	ApplicationRepo
	EventRepo
	ProfileRepo
}
