package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yuhakway/tracker/internal/domain"
	errpkg "github.com/yuhakway/tracker/internal/errors"
)

// PostgresStore reads the backend's tables directly. It bypasses row-level
// security, so every query filters by the owning user explicitly.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore opens a connection pool and verifies it with a ping.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close releases the pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// A NULL status or event type reads as "" and takes the fallback projection
// or style.
const applicationColumns = `id, student_id, COALESCE(university, ''), COALESCE(program, ''), COALESCE(status, ''), COALESCE(notes, ''), created_at`

const eventColumns = `id, user_id, COALESCE(title, ''), COALESCE(description, ''), event_date, COALESCE(event_type, '')`

func scanApplication(row pgx.Row) (domain.Application, error) {
	var a domain.Application
	var status string
	err := row.Scan(&a.ID, &a.StudentID, &a.University, &a.Program, &status, &a.Notes, &a.CreatedAt)
	a.Status = domain.ApplicationStatus(status)
	return a, err
}

func (s *PostgresStore) ListApplications(ctx context.Context, studentID uuid.UUID) ([]domain.Application, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE student_id = $1 ORDER BY created_at DESC`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var items []domain.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) GetApplication(ctx context.Context, studentID, id uuid.UUID) (*domain.Application, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1 AND student_id = $2`,
		id, studentID)
	a, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errpkg.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}
	return &a, nil
}

func (s *PostgresStore) ListUpcomingEvents(ctx context.Context, userID uuid.UUID, from time.Time) ([]domain.CalendarEvent, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+eventColumns+`
		FROM calendar_events
		WHERE user_id = $1 AND event_date >= $2
		ORDER BY event_date ASC`,
		userID, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	defer rows.Close()

	var items []domain.CalendarEvent
	for rows.Next() {
		var e domain.CalendarEvent
		var eventType string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.EventDate, &eventType); err != nil {
			return nil, fmt.Errorf("failed to scan calendar event: %w", err)
		}
		e.EventType = domain.EventType(eventType)
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	var p domain.Profile
	err := s.pool.QueryRow(ctx,
		`SELECT id, COALESCE(full_name, ''), COALESCE(email, ''), COALESCE(phone, ''), created_at FROM profiles WHERE id = $1`,
		userID).Scan(&p.ID, &p.FullName, &p.Email, &p.Phone, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errpkg.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &p, nil
}
