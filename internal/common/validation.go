package common

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ParseUUID parses a required id field, mapping failures to ErrInvalidInput.
func ParseUUID(field, value string) (uuid.UUID, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return uuid.Nil, NewAppError("VALIDATION", fmt.Sprintf("%s is required", field), ErrInvalidInput)
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, NewAppError("VALIDATION", fmt.Sprintf("%s must be a UUID", field), ErrInvalidInput)
	}
	return id, nil
}

// RequireNonEmpty checks a required string field.
func RequireNonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewAppError("VALIDATION", fmt.Sprintf("%s is required", field), ErrInvalidInput)
	}
	return nil
}
