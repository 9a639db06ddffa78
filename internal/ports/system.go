package ports

import "time"

// IDGenerator produces opaque unique identifiers for games and rounds.
type IDGenerator interface {
	NewID() (string, error)
}

// Clock is the source of createdAt/updatedAt/finishedAt timestamps.
type Clock interface {
	Now() time.Time
}
