package validation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = New()
}

// New returns a validator with the project's custom tags registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("backend_url", validateBackendURL)
	_ = v.RegisterValidation("https_url", validateHTTPSURL)
	return v
}

// ValidateBackendURL checks the hosted backend base URL. Plain http is only
// accepted when allowInsecure is set.
func ValidateBackendURL(raw string, allowInsecure bool) error {
	tag := "required,https_url"
	if allowInsecure {
		tag = "required,backend_url"
	}
	if err := validate.Var(raw, tag); err != nil {
		return fmt.Errorf("invalid backend URL %q: %w", raw, err)
	}
	return nil
}

// Struct validates a request body against its struct tags.
func Struct(v any) error {
	return validate.Struct(v)
}

func validateBackendURL(fl validator.FieldLevel) bool {
	u, ok := parseBase(fl.Field().String())
	if !ok {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func validateHTTPSURL(fl validator.FieldLevel) bool {
	u, ok := parseBase(fl.Field().String())
	if !ok {
		return false
	}
	return u.Scheme == "https"
}

func parseBase(raw string) (*url.URL, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, false
	}
	if u.Host == "" || u.Hostname() == "" {
		return nil, false
	}
	if u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return nil, false
	}
	return u, true
}
