package usage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/contentforge/backend/internal/domain/shared"
	"github.com/contentforge/backend/internal/domain/usage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRecorder(events *mockEventRepository, counters *mockCounterRepository, at time.Time) *Recorder {
	r := NewRecorder(events, counters, nil)
	r.now = func() time.Time { return at }
	return r
}

func TestRecorder_Record(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	campaignID := uuid.New()
	seriesID := uuid.New()

	t.Run("appends the event then increments counters", func(t *testing.T) {
		events := new(mockEventRepository)
		counters := new(mockCounterRepository)

		var order []string
		events.On("Append", ctx, mock.MatchedBy(func(e *usage.Event) bool {
			return e.OwnerID == "u1" && e.TokensConsumed == 1500 && e.ItemsProduced == 3 &&
				e.OutputType == usage.OutputTypeEmailSeries && *e.OutputID == seriesID
		})).Run(func(mock.Arguments) { order = append(order, "append") }).Return(nil)
		counters.On("Increment", ctx, "u1", usage.Delta{Tokens: 1500, Items: 3}, at).
			Run(func(mock.Arguments) { order = append(order, "increment") }).Return(nil)

		event, err := newTestRecorder(events, counters, at).Record(ctx, RecordInput{
			OwnerID:        "u1",
			CampaignID:     &campaignID,
			Feature:        usage.FeatureEmailGeneration,
			TokensConsumed: 1500,
			ItemsProduced:  3,
			SourceType:     usage.SourceTypeWebpage,
			OutputType:     usage.OutputTypeEmailSeries,
			OutputRef:      &seriesID,
			SessionID:      "sess-1",
		})
		require.NoError(t, err)
		require.NotNil(t, event)

		assert.Equal(t, []string{"append", "increment"}, order)
		assert.Equal(t, at, event.OccurredAt)
		assert.Equal(t, "sess-1", event.SessionID)
		assert.Equal(t, usage.SourceTypeWebpage, event.SourceType)
		events.AssertExpectations(t)
		counters.AssertExpectations(t)
	})

	t.Run("invalid input writes nothing", func(t *testing.T) {
		events := new(mockEventRepository)
		counters := new(mockCounterRepository)

		_, err := newTestRecorder(events, counters, at).Record(ctx, RecordInput{
			OwnerID:        "u1",
			Feature:        usage.FeatureEmailGeneration,
			TokensConsumed: -5,
		})
		assert.ErrorIs(t, err, shared.ErrValidation)
		events.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
		counters.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("event store failure is an accounting failure", func(t *testing.T) {
		events := new(mockEventRepository)
		counters := new(mockCounterRepository)
		events.On("Append", ctx, mock.Anything).Return(shared.NewPersistenceError("append usage event", errors.New("down")))

		event, err := newTestRecorder(events, counters, at).Record(ctx, RecordInput{
			OwnerID: "u1", Feature: usage.FeatureEmailGeneration, TokensConsumed: 10,
		})
		assert.Nil(t, event)
		assert.ErrorIs(t, err, shared.ErrAccountingFailure)
		assert.ErrorIs(t, err, shared.ErrPersistence)
		counters.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("counter failure is an accounting failure", func(t *testing.T) {
		events := new(mockEventRepository)
		counters := new(mockCounterRepository)
		events.On("Append", ctx, mock.Anything).Return(nil)
		counters.On("Increment", ctx, "u1", mock.Anything, at).Return(errors.New("timeout"))

		event, err := newTestRecorder(events, counters, at).Record(ctx, RecordInput{
			OwnerID: "u1", Feature: usage.FeatureEmailGeneration, TokensConsumed: 10,
		})
		assert.Nil(t, event)
		assert.ErrorIs(t, err, shared.ErrAccountingFailure)
	})
}

func TestRecorder_FindForOutput(t *testing.T) {
	ctx := context.Background()
	campaignID := uuid.New()
	seriesID := uuid.New()
	otherID := uuid.New()

	events := new(mockEventRepository)
	events.On("ListByCampaign", ctx, campaignID).Return([]usage.Event{
		{ID: uuid.New(), OwnerID: "u1", OutputID: &otherID},
		{ID: uuid.New(), OwnerID: "u1"},
		{ID: uuid.New(), OwnerID: "u1", OutputID: &seriesID, TokensConsumed: 700},
	}, nil)
	rec := NewRecorder(events, new(mockCounterRepository), nil)

	event, err := rec.FindForOutput(ctx, campaignID, seriesID)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, int64(700), event.TokensConsumed)

	event, err = rec.FindForOutput(ctx, campaignID, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, event)

	failing := new(mockEventRepository)
	failing.On("ListByCampaign", ctx, campaignID).Return(nil, errors.New("down"))
	_, err = NewRecorder(failing, new(mockCounterRepository), nil).FindForOutput(ctx, campaignID, seriesID)
	assert.ErrorIs(t, err, shared.ErrAccountingFailure)
}

func TestRecorder_History(t *testing.T) {
	ctx := context.Background()
	events := []usage.Event{{ID: uuid.New(), OwnerID: "u1", TokensConsumed: 300}}

	t.Run("with bucket history", func(t *testing.T) {
		eventRepo := new(mockEventRepository)
		eventRepo.On("ListByOwner", ctx, "u1", 10).Return(events, nil)
		counters := new(mockCounterHistory)
		counters.On("History", ctx, "u1", usage.PeriodDaily, 10).
			Return([]usage.Counter{{OwnerID: "u1", Period: usage.PeriodDaily, TokensUsed: 300}}, nil)
		counters.On("History", ctx, "u1", usage.PeriodMonthly, 10).
			Return([]usage.Counter{{OwnerID: "u1", Period: usage.PeriodMonthly, TokensUsed: 900}}, nil)

		h, err := NewRecorder(eventRepo, counters, nil).History(ctx, "u1", 10)
		require.NoError(t, err)
		assert.Equal(t, events, h.Events)
		require.Len(t, h.Daily, 1)
		require.Len(t, h.Monthly, 1)
		assert.Equal(t, int64(900), h.Monthly[0].TokensUsed)
		counters.AssertExpectations(t)
	})

	t.Run("store without history", func(t *testing.T) {
		eventRepo := new(mockEventRepository)
		eventRepo.On("ListByOwner", ctx, "u1", 10).Return(events, nil)

		h, err := NewRecorder(eventRepo, new(mockCounterRepository), nil).History(ctx, "u1", 10)
		require.NoError(t, err)
		assert.Len(t, h.Events, 1)
		assert.Empty(t, h.Daily)
		assert.Empty(t, h.Monthly)
	})

	t.Run("event store failure", func(t *testing.T) {
		eventRepo := new(mockEventRepository)
		eventRepo.On("ListByOwner", ctx, "u1", 10).Return(nil, shared.NewPersistenceError("list usage events", errors.New("down")))

		_, err := NewRecorder(eventRepo, new(mockCounterHistory), nil).History(ctx, "u1", 10)
		assert.ErrorIs(t, err, shared.ErrPersistence)
	})
}
