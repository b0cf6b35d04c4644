package usage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CounterRepository persists period counters.
// Increment must be an atomic add at the store; implementations may not
// read the current value and write back a sum.
type CounterRepository interface {
	// Increment adds delta to the daily and monthly buckets containing at
	Increment(ctx context.Context, ownerID string, delta Delta, at time.Time) error

	// Snapshot returns the counters of the buckets containing at
	Snapshot(ctx context.Context, ownerID string, at time.Time) (Snapshot, error)
}

// CounterHistory is implemented by counter stores that keep past buckets
type CounterHistory interface {
	// History returns an owner's buckets of one period, newest first
	History(ctx context.Context, ownerID string, period Period, limit int) ([]Counter, error)
}

// EventRepository persists usage events
type EventRepository interface {
	// Append stores a new event; events are never updated
	Append(ctx context.Context, event *Event) error

	// ListByOwner returns an owner's events newest first
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]Event, error)

	// ListByCampaign returns a campaign's events newest first
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]Event, error)
}
