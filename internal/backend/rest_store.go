package backend

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/yuhakway/tracker/internal/domain"
	errpkg "github.com/yuhakway/tracker/internal/errors"
)

type accessTokenKey struct{}

// WithAccessToken returns a context carrying the caller's access token. REST
// reads use it so the backend's row-level security applies to the caller.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

func accessTokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(accessTokenKey{}).(string)
	return token
}

// RESTStore reads records through the backend's REST interface.
type RESTStore struct {
	client *Client
}

// NewRESTStore creates a RESTStore on top of client.
func NewRESTStore(client *Client) *RESTStore {
	return &RESTStore{client: client}
}

func (s *RESTStore) get(ctx context.Context, op, table string, query url.Values, single bool, out any) error {
	token := accessTokenFrom(ctx)
	if token == "" {
		return errpkg.ErrUnauthorized
	}
	query.Set("select", "*")
	return s.client.do(ctx, request{
		op:          op,
		method:      http.MethodGet,
		path:        "/rest/v1/" + table,
		query:       query,
		accessToken: token,
		single:      single,
	}, out)
}

func (s *RESTStore) ListApplications(ctx context.Context, studentID uuid.UUID) ([]domain.Application, error) {
	var items []domain.Application
	err := s.get(ctx, "list_applications", "applications", url.Values{
		"student_id": {"eq." + studentID.String()},
		"order":      {"created_at.desc"},
	}, false, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *RESTStore) GetApplication(ctx context.Context, studentID, id uuid.UUID) (*domain.Application, error) {
	var a domain.Application
	err := s.get(ctx, "get_application", "applications", url.Values{
		"id":         {"eq." + id.String()},
		"student_id": {"eq." + studentID.String()},
	}, true, &a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *RESTStore) ListUpcomingEvents(ctx context.Context, userID uuid.UUID, from time.Time) ([]domain.CalendarEvent, error) {
	var items []domain.CalendarEvent
	err := s.get(ctx, "list_calendar_events", "calendar_events", url.Values{
		"user_id":    {"eq." + userID.String()},
		"event_date": {"gte." + from.UTC().Format(time.RFC3339)},
		"order":      {"event_date.asc"},
	}, false, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *RESTStore) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	var p domain.Profile
	err := s.get(ctx, "get_profile", "profiles", url.Values{
		"id": {"eq." + userID.String()},
	}, true, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
