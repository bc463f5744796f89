package errors

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrRateLimited        = errors.New("too many requests")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrAutoLoginFailed    = errors.New("account created but auto-login failed, please sign in manually")
	ErrAlreadyRegistered  = errors.New("user already registered")
	ErrBadRequest         = errors.New("request rejected by backend")
	ErrBackendUnavailable = errors.New("backend unavailable")
)
