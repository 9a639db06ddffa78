package system

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestUUIDGenerator(t *testing.T) {
	var gen UUIDGenerator
	a, err := gen.NewID()
	if err != nil {
		t.Fatal(err)
	}
	b, err := gen.NewID()
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatalf("expected unique ids, got %s twice", a)
	}
	parsed, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("invalid uuid %q: %v", a, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestClock(t *testing.T) {
	now := Clock{}.Now()
	if now.Location() != time.UTC {
		t.Errorf("expected UTC, got %v", now.Location())
	}
}
