package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrProjectNotFound indicates the project id did not resolve
	ErrProjectNotFound = errors.New("project not found")

	// ErrPlaceNotFound indicates the place id does not belong to the project
	ErrPlaceNotFound = errors.New("place not found")

	// ErrProjectHasVisitedPlaces guards deletion of projects with visited places
	ErrProjectHasVisitedPlaces = errors.New("cannot delete project with visited places")
)

// ValidationError carries field-scoped validation messages. Errors for
// independent fields are collected together rather than short-circuited.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError creates an empty validation error
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add appends a message for the given field
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors reports whether any field message was recorded
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Fields[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
