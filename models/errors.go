package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNilCountryRequest    = errors.New("country request is nil")
	ErrInvalidCountryName   = errors.New("invalid country name")
	ErrDuplicateCountryName = errors.New("country name already exists")

	ErrNilPersonRequest = errors.New("person request is nil")
	ErrInvalidPersonID  = errors.New("invalid person ID")
	ErrPersonNotFound   = errors.New("person does not exist")

	ErrInvalidGender        = errors.New("invalid gender")
	ErrUnknownMergeStrategy = errors.New("unknown merge strategy")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")
)

// ValidationError aggregates every field-level rule violation found in a
// request, keyed by field name. It is returned as a whole so callers never
// see just the first failure.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
