package contract

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/akyairhashvil/momentum/internal/util"
)

const (
	MaxTitleLen   = 200
	MaxTextLen    = 10000
	MaxEmailLen   = 254
	MaxMessageLen = 8000
)

// ValidationError describes the first rule a request broke.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// validator records only the first failure; later checks are no-ops.
type validator struct {
	first *ValidationError
}

func (v *validator) fail(field, format string, args ...interface{}) {
	if v.first != nil {
		return
	}
	v.first = &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (v *validator) err() error {
	if v.first == nil {
		return nil
	}
	return v.first
}

func (v *validator) required(field, value string, max int) {
	if strings.TrimSpace(value) == "" {
		v.fail(field, "%s is required", field)
		return
	}
	v.maxLen(field, value, max)
}

func (v *validator) maxLen(field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		v.fail(field, "%s must be at most %d characters", field, max)
	}
}

func (v *validator) optionalText(field string, value Nullable[string], max int) {
	if value.Valid {
		v.maxLen(field, value.Value, max)
	}
}

func (v *validator) percent(field string, value *int) {
	if value != nil && (*value < 0 || *value > 100) {
		v.fail(field, "%s must be between 0 and 100", field)
	}
}

func (v *validator) positiveRef(field string, value Nullable[int64]) {
	if value.Valid && value.Value <= 0 {
		v.fail(field, "%s must be a positive integer", field)
	}
}

func (v *validator) email(field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		v.fail(field, "%s is required", field)
		return
	}
	v.maxLen(field, value, MaxEmailLen)
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		v.fail(field, "%s must be a valid email address", field)
	}
}

func (v *validator) password(field, value string) {
	if err := util.ValidatePassword(value); err != nil {
		v.fail(field, "%v", err)
	}
}

// oneOf checks value against a closed set. An empty value with required=false passes.
func oneOf[T ~string](v *validator, field string, value T, allowed []T, required bool) {
	if value == "" {
		if required {
			v.fail(field, "%s is required", field)
		}
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	v.fail(field, "%s must be one of: %s", field, strings.Join(names, ", "))
}

func oneOfPtr[T ~string](v *validator, field string, value *T, allowed []T) {
	if value == nil {
		return
	}
	if *value == "" {
		v.fail(field, "%s must not be empty", field)
		return
	}
	oneOf(v, field, *value, allowed, true)
}
