// Package usage records consumption and reports quota status.
package usage

import (
	"context"
	"time"

	"github.com/contentforge/backend/internal/domain/shared"
	"github.com/contentforge/backend/internal/domain/usage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecordInput describes one accounted action
type RecordInput struct {
	OwnerID        string
	CampaignID     *uuid.UUID
	Feature        usage.Feature
	TokensConsumed int64
	ItemsProduced  int64
	SourceType     usage.SourceType
	SourceRef      *uuid.UUID
	OutputType     usage.OutputType
	OutputRef      *uuid.UUID
	SessionID      string
}

// Recorder appends usage events and bumps the period counters
type Recorder struct {
	events   usage.EventRepository
	counters usage.CounterRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewRecorder creates a Recorder
func NewRecorder(events usage.EventRepository, counters usage.CounterRepository, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		events:   events,
		counters: counters,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Record stores the event and then increments the daily and monthly counters.
// Invalid input returns a validation error; store failures are wrapped in
// shared.ErrAccountingFailure. If the counters fail after the event was
// stored, the event stays in the audit log.
func (r *Recorder) Record(ctx context.Context, in RecordInput) (*usage.Event, error) {
	event, err := usage.NewEvent(in.OwnerID, in.CampaignID, in.Feature, in.TokensConsumed, in.ItemsProduced)
	if err != nil {
		return nil, err
	}
	if in.SourceType != "" {
		event.WithSource(in.SourceType, in.SourceRef)
	}
	if in.OutputType != "" {
		event.WithOutput(in.OutputType, in.OutputRef)
	}
	event.SessionID = in.SessionID
	event.OccurredAt = r.now()

	log := r.logger.With(
		zap.String("owner_id", in.OwnerID),
		zap.String("feature", string(in.Feature)),
		zap.Int64("tokens", in.TokensConsumed),
	)

	if err := r.events.Append(ctx, event); err != nil {
		log.Error("Failed to append usage event", zap.Error(err))
		return nil, shared.WrapDomainError(shared.CodeAccountingFailure, "usage event was not recorded", err)
	}

	if err := r.counters.Increment(ctx, in.OwnerID, event.Delta(), event.OccurredAt); err != nil {
		log.Error("Usage event stored but counters not incremented",
			zap.String("event_id", event.ID.String()),
			zap.Error(err))
		return nil, shared.WrapDomainError(shared.CodeAccountingFailure, "usage counters were not updated", err)
	}

	log.Debug("Usage recorded", zap.String("event_id", event.ID.String()))
	return event, nil
}

// FindForOutput returns the event that accounted outputID within a campaign,
// or nil if that output was never accounted.
func (r *Recorder) FindForOutput(ctx context.Context, campaignID, outputID uuid.UUID) (*usage.Event, error) {
	events, err := r.events.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, shared.WrapDomainError(shared.CodeAccountingFailure, "usage events could not be read", err)
	}
	for i := range events {
		if events[i].OutputID != nil && *events[i].OutputID == outputID {
			return &events[i], nil
		}
	}
	return nil, nil
}
