package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRound is matched by every *ValidationError.
	ErrInvalidRound = errors.New("invalid round input")
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports every constraint a round input violates.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return "invalid round input: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRound
}

// Has reports whether the error carries a violation of kind.
func (e *ValidationError) Has(kind ViolationKind) bool {
	for _, v := range e.Violations {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

// NotFoundError reports a missing game or round.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func roundNotFound(id string) error {
	return &NotFoundError{Entity: "round", ID: id}
}
