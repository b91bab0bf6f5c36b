package domain

import (
	"strings"

	"github.com/google/uuid"
)

// msgEmpty is the validation message for blank required strings.
const msgEmpty = "empty string"

// NonEmpty trims surrounding whitespace from value and returns the result.
// It fails with a *ValidationError keyed by field when nothing remains.
func NonEmpty(value, field string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", &ValidationError{Fields: map[string]string{field: msgEmpty}}
	}
	return trimmed, nil
}

// ParseID trims and lower-cases value, then parses it as a UUID. The parser's
// diagnostic is reported under field on failure.
func ParseID(value, field string) (uuid.UUID, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	id, err := uuid.Parse(normalized)
	if err != nil {
		return uuid.Nil, &ValidationError{Fields: map[string]string{field: err.Error()}}
	}
	return id, nil
}
