package domain

import (
	"time"

	"github.com/google/uuid"
)

// Application is a row of the applications table. It is created and mutated
// by advisors on the backend; this service only reads it.
type Application struct {
	ID         uuid.UUID         `json:"id" yaml:"id"`
	StudentID  uuid.UUID         `json:"student_id" yaml:"student_id"`
	University string            `json:"university" yaml:"university"`
	Program    string            `json:"program" yaml:"program"`
	Status     ApplicationStatus `json:"status" yaml:"status"`
	Notes      string            `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt  time.Time         `json:"created_at" yaml:"created_at"`
}

// EventType classifies a calendar event. The set is open: unknown types are
// rendered with a neutral style.
type EventType string

const (
	EventDeadline   EventType = "deadline"
	EventInterview  EventType = "interview"
	EventSubmission EventType = "submission"
	EventMeeting    EventType = "meeting"
)

// CalendarEvent is a row of the calendar_events table.
type CalendarEvent struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	UserID      uuid.UUID `json:"user_id" yaml:"user_id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	EventDate   time.Time `json:"event_date" yaml:"event_date"`
	EventType   EventType `json:"event_type" yaml:"event_type"`
}

// Profile is a row of the profiles table, keyed by the auth user id.
type Profile struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	FullName  string    `json:"full_name" yaml:"full_name"`
	Email     string    `json:"email" yaml:"email"`
	Phone     string    `json:"phone,omitempty" yaml:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// User is the authenticated account as reported by the auth service.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Session is an auth session issued by the backend.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         User      `json:"user"`
}
