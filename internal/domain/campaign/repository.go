package campaign

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists the campaign graph.
// Find-or-create operations must be backed by unique constraints with upsert
// semantics so that concurrent callers converge on one row.
type Repository interface {
	// FindOrCreateCampaign looks up by (owner, exact name) and creates with defaults if absent
	FindOrCreateCampaign(ctx context.Context, ownerID, name string, defaults Defaults) (*Campaign, error)

	// FindCampaign returns a campaign by id, scoped to its owner
	FindCampaign(ctx context.Context, id uuid.UUID, ownerID string) (*Campaign, error)

	// UpdateCampaignStatus changes the lifecycle status of an owned campaign
	UpdateCampaignStatus(ctx context.Context, id uuid.UUID, ownerID string, status Status) (*Campaign, error)

	// FindOrCreateSource looks up by (campaign, url); an existing row is returned unchanged
	FindOrCreateSource(ctx context.Context, campaignID uuid.UUID, url string, data ExtractedData) (*WebpageSource, error)

	// CreateSeries always inserts a new series
	CreateSeries(ctx context.Context, campaignID uuid.UUID, sourceID *uuid.UUID, meta SeriesMeta) (*ContentSeries, error)

	// FindSeries returns a series by id, scoped to the owner of its campaign
	FindSeries(ctx context.Context, id uuid.UUID, ownerID string) (*ContentSeries, error)

	// AppendItems inserts items in order with sequence numbers 1..N.
	// A failure after some rows were written returns *PartialPersistenceError.
	AppendItems(ctx context.Context, seriesID, campaignID uuid.UUID, items []GeneratedItem) ([]ContentItem, error)

	// AppendItemsFrom is AppendItems starting at firstSeq, for resuming a partial write
	AppendItemsFrom(ctx context.Context, seriesID, campaignID uuid.UUID, firstSeq int, items []GeneratedItem) ([]ContentItem, error)

	// CheckSeriesConsistency compares a series' declared item count with its rows
	CheckSeriesConsistency(ctx context.Context, seriesID uuid.UUID) (SeriesConsistency, error)

	// Overview lists an owner's campaigns with child counts, newest activity first
	Overview(ctx context.Context, ownerID string) ([]Summary, error)

	// LibraryStats totals an owner's campaigns
	LibraryStats(ctx context.Context, ownerID string) (LibraryStats, error)

	// Search matches campaign name/description and item subject/body
	Search(ctx context.Context, ownerID, query string) (*SearchResult, error)

	// DeleteCampaign removes a campaign and all of its children atomically
	DeleteCampaign(ctx context.Context, id uuid.UUID, ownerID string) error
}
