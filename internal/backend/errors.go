package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	errpkg "github.com/yuhakway/tracker/internal/errors"
)

// errorResponse covers the error bodies of both GoTrue and PostgREST.
type errorResponse struct {
	Code             any    `json:"code"`
	ErrorCode        string `json:"error_code"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (e errorResponse) text() string {
	for _, s := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// pgrstNoRows is PostgREST's code for a single-object request that matched nothing.
const pgrstNoRows = "PGRST116"

func mapError(op string, status int, payload []byte) error {
	var parsed errorResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		message := strings.TrimSpace(string(payload))
		if message == "" {
			message = http.StatusText(status)
		}
		parsed = errorResponse{Message: message}
	}

	code, _ := parsed.Code.(string)
	switch {
	case parsed.ErrorCode == "invalid_credentials" || parsed.Error == "invalid_grant":
		return errpkg.ErrInvalidCredentials
	case parsed.ErrorCode == "user_already_exists" || parsed.ErrorCode == "email_exists":
		return errpkg.ErrAlreadyRegistered
	case parsed.ErrorCode == "weak_password":
		return errpkg.ErrWeakPassword
	case code == pgrstNoRows || status == http.StatusNotFound:
		return errpkg.ErrNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return errpkg.ErrUnauthorized
	case status == http.StatusTooManyRequests || parsed.ErrorCode == "over_request_rate_limit":
		return errpkg.ErrRateLimited
	case status >= 500:
		return fmt.Errorf("%s: %w: status %d: %s", op, errpkg.ErrBackendUnavailable, status, parsed.text())
	case status >= 400 && status < 500:
		return fmt.Errorf("%s: %w: status %d: %s", op, errpkg.ErrBadRequest, status, parsed.text())
	default:
		return fmt.Errorf("%s: unexpected status %d: %s", op, status, parsed.text())
	}
}
