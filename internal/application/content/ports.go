// Package content turns generated email copy into persisted campaign content.
package content

import (
	"context"

	appusage "github.com/contentforge/backend/internal/application/usage"
	"github.com/contentforge/backend/internal/domain/campaign"
	"github.com/contentforge/backend/internal/domain/usage"
	"github.com/google/uuid"
)

// GenerationRequest is the input to the text generation service
type GenerationRequest struct {
	SourceURL      string
	Page           campaign.ExtractedData
	Tone           string
	Industry       string
	TargetAudience string
	ReferenceLink  string
	ItemCount      int
}

// GenerationResponse is what the generation service produced.
// Success=false with a nil error is a soft failure reported by the service.
type GenerationResponse struct {
	Success        bool
	Items          []campaign.GeneratedItem
	TokensConsumed int64
	Model          string
	Error          string
}

// Generator produces an email sequence for a scanned page
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (*GenerationResponse, error)
}

// QuotaChecker reports an owner's quota status without enforcing it
type QuotaChecker interface {
	Status(ctx context.Context, ownerID, rawTier string) (*appusage.QuotaStatus, error)
}

// UsageRecorder accounts one materialization
type UsageRecorder interface {
	Record(ctx context.Context, in appusage.RecordInput) (*usage.Event, error)
	// FindForOutput returns nil, nil when the output has no event
	FindForOutput(ctx context.Context, campaignID, outputID uuid.UUID) (*usage.Event, error)
}
