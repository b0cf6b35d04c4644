package usage

import (
	"context"

	"github.com/contentforge/backend/internal/domain/usage"
)

// History is an owner's recent usage events and past counter buckets
type History struct {
	Events  []usage.Event
	Daily   []usage.Counter
	Monthly []usage.Counter
}

// History returns up to limit of the owner's newest events. Past buckets are
// included when the counter store keeps them; the Redis store only holds the
// current ones and leaves Daily and Monthly empty.
func (r *Recorder) History(ctx context.Context, ownerID string, limit int) (*History, error) {
	events, err := r.events.ListByOwner(ctx, ownerID, limit)
	if err != nil {
		return nil, err
	}
	h := &History{Events: events}

	past, ok := r.counters.(usage.CounterHistory)
	if !ok {
		return h, nil
	}
	if h.Daily, err = past.History(ctx, ownerID, usage.PeriodDaily, limit); err != nil {
		return nil, err
	}
	if h.Monthly, err = past.History(ctx, ownerID, usage.PeriodMonthly, limit); err != nil {
		return nil, err
	}
	return h, nil
}
