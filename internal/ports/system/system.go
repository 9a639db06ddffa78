package system

import (
	"fmt"
	"time"

	"westscore/internal/ports"

	"github.com/google/uuid"
)

// UUIDGenerator issues time-ordered UUID v7 identifiers.
type UUIDGenerator struct{}

// NewID returns a new UUID v7 string.
func (UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id.String(), nil
}

// Clock reads the wall clock in UTC.
type Clock struct{}

func (Clock) Now() time.Time {
	return time.Now().UTC()
}

var (
	_ ports.IDGenerator = UUIDGenerator{}
	_ ports.Clock       = Clock{}
)
