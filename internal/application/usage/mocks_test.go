package usage

import (
	"context"
	"time"

	"github.com/contentforge/backend/internal/domain/usage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockEventRepository struct {
	mock.Mock
}

func (m *mockEventRepository) Append(ctx context.Context, event *usage.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockEventRepository) ListByOwner(ctx context.Context, ownerID string, limit int) ([]usage.Event, error) {
	args := m.Called(ctx, ownerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]usage.Event), args.Error(1)
}

func (m *mockEventRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]usage.Event, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]usage.Event), args.Error(1)
}

type mockCounterRepository struct {
	mock.Mock
}

func (m *mockCounterRepository) Increment(ctx context.Context, ownerID string, delta usage.Delta, at time.Time) error {
	args := m.Called(ctx, ownerID, delta, at)
	return args.Error(0)
}

func (m *mockCounterRepository) Snapshot(ctx context.Context, ownerID string, at time.Time) (usage.Snapshot, error) {
	args := m.Called(ctx, ownerID, at)
	return args.Get(0).(usage.Snapshot), args.Error(1)
}

// mockCounterHistory is a counter store that also keeps past buckets
type mockCounterHistory struct {
	mockCounterRepository
}

func (m *mockCounterHistory) History(ctx context.Context, ownerID string, period usage.Period, limit int) ([]usage.Counter, error) {
	args := m.Called(ctx, ownerID, period, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]usage.Counter), args.Error(1)
}
