// Package apperr models the API's error kinds as a tagged union with a fixed
// JSON shape per kind, so a response body never varies within one kind.
package apperr

import (
	"encoding/json"
	"net/http"
)

type Kind int

const (
	Validation Kind = iota
	Duplicate
	NotFound
	Unauthorized
	Internal
)

// FieldError describes one field that failed validation.
type FieldError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type Error struct {
	Kind    Kind
	Message string
	// Fields is set for Validation errors only, keyed by field name.
	Fields map[string]FieldError
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Status() int {
	switch e.Kind {
	case Validation, Duplicate:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// MarshalJSON emits the fixed body for each kind. NotFound and Internal
// serialize to nothing meaningful; callers send those with an empty body.
func (e *Error) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case Validation:
		return json.Marshal(struct {
			Name    string                `json:"name"`
			Message string                `json:"message"`
			Errors  map[string]FieldError `json:"errors"`
		}{"ValidationError", e.Message, e.Fields})
	case Duplicate:
		return json.Marshal(struct {
			Name    string `json:"name"`
			Code    int    `json:"code"`
			Message string `json:"message"`
		}{"DuplicateKeyError", DuplicateKeyCode, e.Message})
	default:
		return []byte("{}"), nil
	}
}

// DuplicateKeyCode is the store's native unique-constraint violation code,
// surfaced as-is in duplicate-key responses.
const DuplicateKeyCode = 11000

func NewValidation(message string, fields map[string]FieldError) *Error {
	return &Error{Kind: Validation, Message: message, Fields: fields}
}

func NewDuplicate(message string) *Error {
	return &Error{Kind: Duplicate, Message: message}
}
