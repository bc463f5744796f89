package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/yuhakway/tracker/internal/domain"
	errpkg "github.com/yuhakway/tracker/internal/errors"
)

type fixtureFile struct {
	Applications []domain.Application   `json:"applications" yaml:"applications"`
	Events       []domain.CalendarEvent `json:"calendar_events" yaml:"calendar_events"`
	Profiles     []domain.Profile       `json:"profiles" yaml:"profiles"`
}

// FixtureStore serves records loaded from a JSON or YAML seed file. It is
// read-only and meant for local development and tests.
type FixtureStore struct {
	mu           sync.RWMutex
	applications map[uuid.UUID]domain.Application
	events       map[uuid.UUID]domain.CalendarEvent
	profiles     map[uuid.UUID]domain.Profile
	file         string
}

// NewFixtureStore creates a FixtureStore and loads records from the file if it exists.
func NewFixtureStore(filePath string) (*FixtureStore, error) {
	s := &FixtureStore{
		applications: make(map[uuid.UUID]domain.Application),
		events:       make(map[uuid.UUID]domain.CalendarEvent),
		profiles:     make(map[uuid.UUID]domain.Profile),
		file:         filepath.Clean(filePath),
	}

	if err := s.Reload(); err != nil {
		return nil, fmt.Errorf("failed to load fixtures from file: %w", err)
	}

	slog.Info("Fixture store initialized",
		"file_path", s.file,
		"applications_count", len(s.applications),
		"events_count", len(s.events),
		"profiles_count", len(s.profiles),
	)
	return s, nil
}

// Reload replaces the in-memory records with the current content of the seed file.
func (s *FixtureStore) Reload() error {
	if isFileNotExist(s.file) {
		slog.Info("Fixture file does not exist, starting with empty store", "file_path", s.file)
		return nil
	}

	data, err := os.ReadFile(s.file)
	if err != nil {
		return fmt.Errorf("failed to read fixture file: %w", err)
	}

	if len(data) == 0 {
		slog.Warn("Fixture file is empty", "file_path", s.file)
		return nil
	}

	var fx fixtureFile
	switch strings.ToLower(filepath.Ext(s.file)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fx)
	default:
		err = json.Unmarshal(data, &fx)
	}
	if err != nil {
		return fmt.Errorf("failed to unmarshal fixture file: %w", err)
	}

	applications := make(map[uuid.UUID]domain.Application, len(fx.Applications))
	for _, a := range fx.Applications {
		applications[a.ID] = a
	}
	events := make(map[uuid.UUID]domain.CalendarEvent, len(fx.Events))
	for _, e := range fx.Events {
		events[e.ID] = e
	}
	profiles := make(map[uuid.UUID]domain.Profile, len(fx.Profiles))
	for _, p := range fx.Profiles {
		profiles[p.ID] = p
	}

	s.mu.Lock()
	s.applications = applications
	s.events = events
	s.profiles = profiles
	s.mu.Unlock()

	slog.Debug("Fixtures loaded from file", "file_path", s.file)
	return nil
}

func isFileNotExist(filePath string) bool {
	_, err := os.Stat(filePath)
	return os.IsNotExist(err)
}

// ListApplications returns the student's applications, newest first.
func (s *FixtureStore) ListApplications(ctx context.Context, studentID uuid.UUID) ([]domain.Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	var out []domain.Application
	for _, a := range s.applications {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetApplication retrieves an application by ID, scoped to its owner.
func (s *FixtureStore) GetApplication(ctx context.Context, studentID, id uuid.UUID) (*domain.Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	a, exists := s.applications[id]
	s.mu.RUnlock()

	if !exists || a.StudentID != studentID {
		return nil, errpkg.ErrNotFound
	}
	return &a, nil
}

// ListUpcomingEvents returns the user's events dated at or after from, earliest first.
func (s *FixtureStore) ListUpcomingEvents(ctx context.Context, userID uuid.UUID, from time.Time) ([]domain.CalendarEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	var out []domain.CalendarEvent
	for _, e := range s.events {
		if e.UserID == userID && !e.EventDate.Before(from) {
			out = append(out, e)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].EventDate.Before(out[j].EventDate)
	})
	return out, nil
}

// GetProfile retrieves a profile by user ID.
func (s *FixtureStore) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	p, exists := s.profiles[userID]
	s.mu.RUnlock()

	if !exists {
		return nil, errpkg.ErrNotFound
	}
	return &p, nil
}
