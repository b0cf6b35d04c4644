package content

import (
	"context"
	"time"

	appusage "github.com/contentforge/backend/internal/application/usage"
	"github.com/contentforge/backend/internal/domain/campaign"
	"github.com/contentforge/backend/internal/domain/usage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockCampaignRepository struct {
	mock.Mock
}

func (m *mockCampaignRepository) FindOrCreateCampaign(ctx context.Context, ownerID, name string, defaults campaign.Defaults) (*campaign.Campaign, error) {
	args := m.Called(ctx, ownerID, name, defaults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.Campaign), args.Error(1)
}

func (m *mockCampaignRepository) FindCampaign(ctx context.Context, id uuid.UUID, ownerID string) (*campaign.Campaign, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.Campaign), args.Error(1)
}

func (m *mockCampaignRepository) UpdateCampaignStatus(ctx context.Context, id uuid.UUID, ownerID string, status campaign.Status) (*campaign.Campaign, error) {
	args := m.Called(ctx, id, ownerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.Campaign), args.Error(1)
}

func (m *mockCampaignRepository) FindOrCreateSource(ctx context.Context, campaignID uuid.UUID, url string, data campaign.ExtractedData) (*campaign.WebpageSource, error) {
	args := m.Called(ctx, campaignID, url, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.WebpageSource), args.Error(1)
}

func (m *mockCampaignRepository) CreateSeries(ctx context.Context, campaignID uuid.UUID, sourceID *uuid.UUID, meta campaign.SeriesMeta) (*campaign.ContentSeries, error) {
	args := m.Called(ctx, campaignID, sourceID, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.ContentSeries), args.Error(1)
}

func (m *mockCampaignRepository) FindSeries(ctx context.Context, id uuid.UUID, ownerID string) (*campaign.ContentSeries, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.ContentSeries), args.Error(1)
}

func (m *mockCampaignRepository) AppendItems(ctx context.Context, seriesID, campaignID uuid.UUID, items []campaign.GeneratedItem) ([]campaign.ContentItem, error) {
	args := m.Called(ctx, seriesID, campaignID, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]campaign.ContentItem), args.Error(1)
}

func (m *mockCampaignRepository) AppendItemsFrom(ctx context.Context, seriesID, campaignID uuid.UUID, firstSeq int, items []campaign.GeneratedItem) ([]campaign.ContentItem, error) {
	args := m.Called(ctx, seriesID, campaignID, firstSeq, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]campaign.ContentItem), args.Error(1)
}

func (m *mockCampaignRepository) CheckSeriesConsistency(ctx context.Context, seriesID uuid.UUID) (campaign.SeriesConsistency, error) {
	args := m.Called(ctx, seriesID)
	return args.Get(0).(campaign.SeriesConsistency), args.Error(1)
}

func (m *mockCampaignRepository) Overview(ctx context.Context, ownerID string) ([]campaign.Summary, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]campaign.Summary), args.Error(1)
}

func (m *mockCampaignRepository) LibraryStats(ctx context.Context, ownerID string) (campaign.LibraryStats, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(campaign.LibraryStats), args.Error(1)
}

func (m *mockCampaignRepository) Search(ctx context.Context, ownerID, query string) (*campaign.SearchResult, error) {
	args := m.Called(ctx, ownerID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.SearchResult), args.Error(1)
}

func (m *mockCampaignRepository) DeleteCampaign(ctx context.Context, id uuid.UUID, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) Record(ctx context.Context, in appusage.RecordInput) (*usage.Event, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usage.Event), args.Error(1)
}

func (m *mockRecorder) FindForOutput(ctx context.Context, campaignID, outputID uuid.UUID) (*usage.Event, error) {
	args := m.Called(ctx, campaignID, outputID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usage.Event), args.Error(1)
}

type mockQuotaChecker struct {
	mock.Mock
}

func (m *mockQuotaChecker) Status(ctx context.Context, ownerID, rawTier string) (*appusage.QuotaStatus, error) {
	args := m.Called(ctx, ownerID, rawTier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appusage.QuotaStatus), args.Error(1)
}

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, req GenerationRequest) (*GenerationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GenerationResponse), args.Error(1)
}

type mockIdempotencyStore struct {
	mock.Mock
}

func (m *mockIdempotencyStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *mockIdempotencyStore) Release(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockIdempotencyStore) IsProcessed(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *mockIdempotencyStore) Close() error {
	return m.Called().Error(0)
}
