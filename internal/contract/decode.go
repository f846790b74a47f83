package contract

import (
	"encoding/json"
	"errors"
	"io"
)

// maxBodyBytes caps request bodies read by DecodeJSON.
const maxBodyBytes = 1 << 20

// DecodeJSON reads exactly one JSON object from r into v. Malformed input is
// reported as a ValidationError so it renders as a 400.
func DecodeJSON(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.Is(err, io.EOF):
			return &ValidationError{Message: "request body is required"}
		case errors.As(err, &typeErr) && typeErr.Field == "":
			return &ValidationError{Message: "request body must be a JSON object"}
		case errors.As(err, &typeErr):
			return &ValidationError{Field: typeErr.Field, Message: typeErr.Field + " has the wrong type"}
		default:
			return &ValidationError{Message: "invalid JSON body: " + err.Error()}
		}
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return &ValidationError{Message: "request body must contain a single JSON object"}
	}
	return nil
}
