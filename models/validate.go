package models

import (
	"regexp"
	"strings"

	"todo-api/apperr"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const MinPasswordLen = 6

// ValidateTodo checks a todo before persistence. Returns nil when valid.
func ValidateTodo(t *Todo) *apperr.Error {
	if strings.TrimSpace(t.Text) == "" {
		return apperr.NewValidation("Todo validation failed", map[string]apperr.FieldError{
			"text": {Name: "ValidatorError", Message: "Path `text` is required."},
		})
	}
	return nil
}

// ValidateCredentials checks a register request's email and password.
// Returns nil when both pass.
func ValidateCredentials(email, password string) *apperr.Error {
	fields := map[string]apperr.FieldError{}
	if !emailPattern.MatchString(email) {
		fields["email"] = apperr.FieldError{Name: "ValidatorError", Message: email + " is not a valid email"}
	}
	if len(password) < MinPasswordLen {
		fields["password"] = apperr.FieldError{Name: "ValidatorError", Message: "Path `password` is shorter than the minimum allowed length (6)."}
	}
	if len(fields) > 0 {
		return apperr.NewValidation("User validation failed", fields)
	}
	return nil
}
