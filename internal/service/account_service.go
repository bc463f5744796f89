package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/yuhakway/tracker/internal/domain"
	errpkg "github.com/yuhakway/tracker/internal/errors"
	"github.com/yuhakway/tracker/internal/metrics"
)

// MinPasswordLength is the shortest password accepted on a password change.
const MinPasswordLength = 6

// Authenticator is the hosted auth service.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	SignUp(ctx context.Context, email, password, fullName string) (*domain.Session, error)
	UpdatePassword(ctx context.Context, accessToken, password string) error
	SignOut(ctx context.Context, accessToken string) error
	RevokeSession(ctx context.Context, accessToken string) error
}

// AccountService handles sign-in, registration and password changes. It
// keeps no state; sessions live with the auth service.
type AccountService struct {
	auth   Authenticator
	logger *slog.Logger
}

func NewAccountService(auth Authenticator, logger *slog.Logger) *AccountService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountService{auth: auth, logger: logger}
}

func (s *AccountService) SignIn(ctx context.Context, req domain.SignInRequest) (*domain.Session, error) {
	session, err := s.auth.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		s.countSignIn(err)
		return nil, fmt.Errorf("sign in: %w", err)
	}
	if session == nil {
		metrics.SignInsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("sign in: %w: no session issued", errpkg.ErrBackendUnavailable)
	}
	metrics.SignInsTotal.WithLabelValues("ok").Inc()
	s.logger.Info("user signed in", "user_id", session.User.ID)
	return session, nil
}

// SignUp registers an account. When the auth service does not return a
// session right away, it signs in with the same credentials; if that fails
// the account exists but ErrAutoLoginFailed is returned.
func (s *AccountService) SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.Session, error) {
	session, err := s.auth.SignUp(ctx, req.Email, req.Password, req.FullName)
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	if session != nil {
		s.logger.Info("user registered", "user_id", session.User.ID)
		return session, nil
	}

	s.logger.Info("user registered without session, signing in", "email", req.Email)
	session, err = s.auth.SignIn(ctx, req.Email, req.Password)
	if err != nil || session == nil {
		s.logger.Warn("auto sign-in after registration failed", "email", req.Email, "error", err)
		return nil, errpkg.ErrAutoLoginFailed
	}
	return session, nil
}

// ChangePassword sets a new password for the signed-in user after checking
// the confirmation and re-verifying the current password. The session created
// by the re-verification is revoked right away.
func (s *AccountService) ChangePassword(ctx context.Context, email, accessToken string, req domain.ChangePasswordRequest) error {
	if len(req.NewPassword) < MinPasswordLength {
		return errpkg.ErrWeakPassword
	}
	if req.NewPassword != req.ConfirmPassword {
		return errpkg.ErrPasswordMismatch
	}

	check, err := s.auth.SignIn(ctx, email, req.CurrentPassword)
	if err != nil {
		if errors.Is(err, errpkg.ErrInvalidCredentials) {
			return errpkg.ErrInvalidCredentials
		}
		return fmt.Errorf("verify current password: %w", err)
	}
	// The check issued a session of its own; end it so only the caller's remains.
	if check != nil && check.AccessToken != "" {
		if err := s.auth.RevokeSession(ctx, check.AccessToken); err != nil {
			s.logger.Warn("failed to revoke verification session", "email", email, "error", err)
		}
	}

	if err := s.auth.UpdatePassword(ctx, accessToken, req.NewPassword); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	s.logger.Info("password changed", "email", email)
	return nil
}

func (s *AccountService) SignOut(ctx context.Context, accessToken string) error {
	if err := s.auth.SignOut(ctx, accessToken); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

func (s *AccountService) countSignIn(err error) {
	switch {
	case errors.Is(err, errpkg.ErrInvalidCredentials):
		metrics.SignInsTotal.WithLabelValues("invalid_credentials").Inc()
	case errors.Is(err, errpkg.ErrRateLimited):
		metrics.SignInsTotal.WithLabelValues("rate_limited").Inc()
	default:
		metrics.SignInsTotal.WithLabelValues("error").Inc()
	}
}
