package http

import (
	"net/http"
	"strings"

	"github.com/yuhakway/tracker/internal/auth"
	"github.com/yuhakway/tracker/internal/backend"
)

// TokenVerifier checks a bearer access token.
type TokenVerifier interface {
	Verify(token string) (*auth.Principal, error)
}

// Authenticate requires a valid bearer token. The principal and the raw token
// are put on the request context; record sources read the token from there.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}
			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") {
				writeError(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}

			p, err := verifier.Verify(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := auth.WithPrincipal(r.Context(), p)
			ctx = backend.WithAccessToken(ctx, p.Token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContentLanguage sets the Content-Language header on every response.
func ContentLanguage(locale string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if locale != "" {
				w.Header().Set("Content-Language", locale)
			}
			next.ServeHTTP(w, r)
		})
	}
}
