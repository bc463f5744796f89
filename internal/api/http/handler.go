package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yuhakway/tracker/internal/auth"
	"github.com/yuhakway/tracker/internal/domain"
	errpkg "github.com/yuhakway/tracker/internal/errors"
	"github.com/yuhakway/tracker/internal/service"
	"github.com/yuhakway/tracker/internal/validation"
)

// TrackerServiceI defines the read operations behind the student screens.
type TrackerServiceI interface {
	Dashboard(ctx context.Context, studentID uuid.UUID) ([]service.ApplicationSummary, error)
	Application(ctx context.Context, studentID, id uuid.UUID) (*service.ApplicationDetail, error)
	Calendar(ctx context.Context, userID uuid.UUID) ([]service.EventView, error)
	Profile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Overview(ctx context.Context, userID uuid.UUID) (*service.Overview, error)
}

// AccountServiceI defines the account operations delegated to the auth service.
type AccountServiceI interface {
	SignIn(ctx context.Context, req domain.SignInRequest) (*domain.Session, error)
	SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.Session, error)
	ChangePassword(ctx context.Context, email, accessToken string, req domain.ChangePasswordRequest) error
	SignOut(ctx context.Context, accessToken string) error
}

// Handler handles HTTP requests for the tracker API.
type Handler struct {
	tracker  TrackerServiceI
	accounts AccountServiceI
	logger   *slog.Logger
}

// NewHandler creates a new Handler with the provided services and logger.
func NewHandler(tracker TrackerServiceI, accounts AccountServiceI, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		tracker:  tracker,
		accounts: accounts,
		logger:   logger,
	}
}

// decode reads a JSON body into dst and validates it. It writes the error
// response itself and reports whether the handler should go on.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.Warn("failed to decode request", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := validation.Struct(dst); err != nil {
		h.logger.Warn("validation failed", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// SignIn handles POST /auth/sign-in.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req domain.SignInRequest
	if !h.decode(w, r, &req) {
		return
	}

	session, err := h.accounts.SignIn(r.Context(), req)
	if err != nil {
		h.fail(w, "sign in failed", err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// SignUp handles POST /auth/sign-up.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req domain.SignUpRequest
	if !h.decode(w, r, &req) {
		return
	}

	session, err := h.accounts.SignUp(r.Context(), req)
	if err != nil {
		h.fail(w, "sign up failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

// SignOut handles POST /auth/sign-out.
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	p := principal(r)
	if err := h.accounts.SignOut(r.Context(), p.Token); err != nil {
		h.fail(w, "sign out failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ChangePassword handles POST /auth/password.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req domain.ChangePasswordRequest
	if !h.decode(w, r, &req) {
		return
	}

	p := principal(r)
	if p.Email == "" {
		writeError(w, http.StatusUnauthorized, "token carries no email")
		return
	}
	if err := h.accounts.ChangePassword(r.Context(), p.Email, p.Token, req); err != nil {
		h.fail(w, "change password failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Profile handles GET /me.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.tracker.Profile(r.Context(), principal(r).UserID)
	if err != nil {
		h.fail(w, "failed to get profile", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Overview handles GET /me/overview.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.tracker.Overview(r.Context(), principal(r).UserID)
	if err != nil {
		h.fail(w, "failed to get overview", err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

// ListApplications handles GET /applications.
func (h *Handler) ListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.tracker.Dashboard(r.Context(), principal(r).UserID)
	if err != nil {
		h.fail(w, "failed to list applications", err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

// GetApplication handles GET /applications/{applicationID}.
func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "applicationID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid application ID")
		return
	}

	detail, err := h.tracker.Application(r.Context(), principal(r).UserID, id)
	if err != nil {
		h.fail(w, "failed to get application", err, "application_id", id)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// Calendar handles GET /calendar.
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	events, err := h.tracker.Calendar(r.Context(), principal(r).UserID)
	if err != nil {
		h.fail(w, "failed to list calendar events", err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// fail logs err and writes the response matching its sentinel.
func (h *Handler) fail(w http.ResponseWriter, msg string, err error, attrs ...any) {
	status, message := errorStatus(err)
	args := append([]any{"error", err, "status", status}, attrs...)
	if status >= http.StatusInternalServerError {
		h.logger.Error(msg, args...)
	} else {
		h.logger.Warn(msg, args...)
	}
	writeError(w, status, message)
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, errpkg.ErrInvalidCredentials):
		return http.StatusUnauthorized, errpkg.ErrInvalidCredentials.Error()
	case errors.Is(err, errpkg.ErrUnauthorized):
		return http.StatusUnauthorized, errpkg.ErrUnauthorized.Error()
	case errors.Is(err, errpkg.ErrNotFound):
		return http.StatusNotFound, errpkg.ErrNotFound.Error()
	case errors.Is(err, errpkg.ErrRateLimited):
		return http.StatusTooManyRequests, errpkg.ErrRateLimited.Error()
	case errors.Is(err, errpkg.ErrWeakPassword):
		return http.StatusBadRequest, errpkg.ErrWeakPassword.Error()
	case errors.Is(err, errpkg.ErrPasswordMismatch):
		return http.StatusBadRequest, errpkg.ErrPasswordMismatch.Error()
	case errors.Is(err, errpkg.ErrBadRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errpkg.ErrAlreadyRegistered):
		return http.StatusConflict, errpkg.ErrAlreadyRegistered.Error()
	case errors.Is(err, errpkg.ErrAutoLoginFailed):
		// The account exists; only the session is missing.
		return http.StatusAccepted, errpkg.ErrAutoLoginFailed.Error()
	case errors.Is(err, errpkg.ErrBackendUnavailable):
		return http.StatusBadGateway, errpkg.ErrBackendUnavailable.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "backend timeout"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}

func principal(r *http.Request) *auth.Principal {
	p, _ := auth.PrincipalFromContext(r.Context())
	if p == nil {
		return &auth.Principal{}
	}
	return p
}
