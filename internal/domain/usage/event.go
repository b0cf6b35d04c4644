package usage

import (
	"strings"
	"time"

	"github.com/contentforge/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Feature names the accounted action
type Feature string

const (
	FeatureEmailGeneration    Feature = "email_generation"
	FeatureWebpageScan        Feature = "webpage_scan"
	FeatureVideoTranscription Feature = "video_transcription"
	FeatureContentSave        Feature = "content_save"
)

// SourceType describes where the generation input came from
type SourceType string

const (
	SourceTypeWebpage SourceType = "webpage"
	SourceTypeManual  SourceType = "manual"
)

// OutputType describes the produced entity
type OutputType string

const (
	OutputTypeEmailSeries OutputType = "email_series"
)

// Event is an immutable audit record of one accounted action
type Event struct {
	ID             uuid.UUID
	OwnerID        string
	CampaignID     *uuid.UUID
	Feature        Feature
	TokensConsumed int64
	ItemsProduced  int64
	SourceType     SourceType
	SourceID       *uuid.UUID
	OutputType     OutputType
	OutputID       *uuid.UUID
	Success        bool
	SessionID      string
	OccurredAt     time.Time
}

// NewEvent creates a validated usage event
func NewEvent(ownerID string, campaignID *uuid.UUID, feature Feature, tokens, items int64) (*Event, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, shared.NewValidationError("owner is required")
	}
	if strings.TrimSpace(string(feature)) == "" {
		return nil, shared.NewValidationError("feature is required")
	}
	if tokens < 0 || items < 0 {
		return nil, shared.NewValidationError("tokens and items cannot be negative")
	}
	return &Event{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		CampaignID:     campaignID,
		Feature:        feature,
		TokensConsumed: tokens,
		ItemsProduced:  items,
		SourceType:     SourceTypeManual,
		Success:        true,
		OccurredAt:     time.Now().UTC(),
	}, nil
}

// WithSource sets the input reference
func (e *Event) WithSource(t SourceType, id *uuid.UUID) *Event {
	e.SourceType = t
	e.SourceID = id
	return e
}

// WithOutput sets the produced entity reference
func (e *Event) WithOutput(t OutputType, id *uuid.UUID) *Event {
	e.OutputType = t
	e.OutputID = id
	return e
}

// Delta returns the counter increment this event represents
func (e *Event) Delta() Delta {
	return Delta{Tokens: e.TokensConsumed, Items: e.ItemsProduced}
}
