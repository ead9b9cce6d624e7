package domain

import "errors"

// codedError carries a stable code next to its message so adapters can map
// domain failures to user-facing text without string matching.
type codedError struct {
	code string
	msg  string
}

func (e *codedError) Error() string { return e.msg }

func newError(code, msg string) error {
	return &codedError{code: code, msg: msg}
}

// Domain errors.
var (
	ErrPreferenceUnavailable = newError("preference_unavailable", "preference storage unavailable")
	ErrPreferenceNotFound    = newError("preference_not_found", "preference not set")
	ErrUnsupportedLocale     = newError("unsupported_locale", "locale is not supported")
	ErrInvalidTheme          = newError("invalid_theme", "theme must be light or dark")
	ErrInvalidDate           = newError("invalid_date", "invalid date")
	ErrInvalidPeriod         = newError("invalid_period", "period must be today, week or month")
)

// Code returns the stable code of the first domain error found in err's
// chain, or "" when err does not wrap one.
func Code(err error) string {
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	return ""
}

// IsValidation reports whether err is caused by bad caller input rather than
// an infrastructure failure.
func IsValidation(err error) bool {
	switch Code(err) {
	case "unsupported_locale", "invalid_theme", "invalid_date", "invalid_period":
		return true
	}
	return false
}
