package backend

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/yuhakway/tracker/internal/domain"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpPayload struct {
	Email    string            `json:"email"`
	Password string            `json:"password"`
	Data     map[string]string `json:"data,omitempty"`
}

type authUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// sessionResponse is the GoTrue token payload. Sign-up returns the bare user
// object instead when the account still needs confirmation.
type sessionResponse struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int64     `json:"expires_in"`
	ExpiresAt    int64     `json:"expires_at"`
	RefreshToken string    `json:"refresh_token"`
	User         *authUser `json:"user"`

	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

func (r sessionResponse) session() *domain.Session {
	if r.AccessToken == "" {
		return nil
	}
	s := &domain.Session{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		TokenType:    r.TokenType,
	}
	switch {
	case r.ExpiresAt > 0:
		s.ExpiresAt = time.Unix(r.ExpiresAt, 0).UTC()
	case r.ExpiresIn > 0:
		s.ExpiresAt = time.Now().UTC().Add(time.Duration(r.ExpiresIn) * time.Second)
	}
	if r.User != nil {
		s.User = domain.User{ID: r.User.ID, Email: r.User.Email}
	}
	return s
}

// SignIn exchanges email and password for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	var resp sessionResponse
	err := c.do(ctx, request{
		op:     "sign_in",
		method: http.MethodPost,
		path:   "/auth/v1/token",
		query:  url.Values{"grant_type": {"password"}},
		body:   credentials{Email: email, Password: password},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.session(), nil
}

// SignUp creates an account with the full name stored as user metadata. The
// returned session is nil when the backend requires confirmation first.
func (c *Client) SignUp(ctx context.Context, email, password, fullName string) (*domain.Session, error) {
	var resp sessionResponse
	err := c.do(ctx, request{
		op:     "sign_up",
		method: http.MethodPost,
		path:   "/auth/v1/signup",
		body: signUpPayload{
			Email:    email,
			Password: password,
			Data:     map[string]string{"full_name": fullName},
		},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.session(), nil
}

// UpdatePassword sets a new password for the account owning accessToken.
func (c *Client) UpdatePassword(ctx context.Context, accessToken, password string) error {
	return c.do(ctx, request{
		op:          "update_password",
		method:      http.MethodPut,
		path:        "/auth/v1/user",
		body:        map[string]string{"password": password},
		accessToken: accessToken,
	}, nil)
}

// SignOut revokes the session owning accessToken.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, request{
		op:          "sign_out",
		method:      http.MethodPost,
		path:        "/auth/v1/logout",
		accessToken: accessToken,
	}, nil)
}

// RevokeSession ends only the session owning accessToken; the user's other
// sessions stay valid.
func (c *Client) RevokeSession(ctx context.Context, accessToken string) error {
	return c.do(ctx, request{
		op:          "revoke_session",
		method:      http.MethodPost,
		path:        "/auth/v1/logout",
		query:       url.Values{"scope": {"local"}},
		accessToken: accessToken,
	}, nil)
}
