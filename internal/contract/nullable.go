package contract

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Nullable distinguishes an absent JSON field from an explicit null.
// Set reports whether the field appeared in the payload; Valid reports
// whether it carried a non-null value.
type Nullable[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// Some returns a Nullable holding v.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Valid: true, Value: v}
}

// Null returns a Nullable that clears the column.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		var zero T
		n.Valid = false
		n.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr returns the value as a pointer, nil when null or absent.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// Arg converts the value to a database/sql argument.
func (n Nullable[T]) Arg() interface{} {
	if !n.Valid {
		return nil
	}
	return n.Value
}

// dateOnly is the layout accepted for bare calendar dates.
const dateOnly = "2006-01-02"

// Time is a timestamp that decodes from RFC 3339 or a bare YYYY-MM-DD date.
// Decoded values are normalized to UTC with microsecond precision.
type Time struct {
	time.Time
}

// NewTime wraps t after normalizing it.
func NewTime(t time.Time) Time {
	return Time{Time: Normalize(t)}
}

// Normalize returns t in UTC truncated to microseconds, the precision both
// storage backends keep.
func Normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// ParseTime accepts RFC 3339 (with or without fractional seconds) or YYYY-MM-DD.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Normalize(t), nil
	}
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected RFC 3339 or YYYY-MM-DD", s)
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string")
	}
	parsed, err := ParseTime(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}
