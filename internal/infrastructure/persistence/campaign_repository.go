package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/contentforge/backend/internal/domain/campaign"
	"github.com/contentforge/backend/internal/domain/shared"
	"github.com/contentforge/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCampaignRepository implements campaign.Repository using GORM
type GormCampaignRepository struct {
	db *gorm.DB
}

// NewGormCampaignRepository creates a new GormCampaignRepository
func NewGormCampaignRepository(db *gorm.DB) *GormCampaignRepository {
	return &GormCampaignRepository{db: db}
}

var _ campaign.Repository = (*GormCampaignRepository)(nil)

// FindOrCreateCampaign inserts with ON CONFLICT DO NOTHING on (owner_id, name)
// and then reads the row back, so concurrent callers converge on one campaign.
func (r *GormCampaignRepository) FindOrCreateCampaign(ctx context.Context, ownerID, name string, defaults campaign.Defaults) (*campaign.Campaign, error) {
	candidate, err := campaign.NewCampaign(ownerID, name, defaults)
	if err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	model := models.CampaignModelFromDomain(candidate)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}, {Name: "name"}},
		DoNothing: true,
	}).Create(model).Error; err != nil {
		return nil, shared.NewPersistenceError("create campaign", err)
	}

	var found models.CampaignModel
	if err := db.Where("owner_id = ? AND name = ?", ownerID, name).First(&found).Error; err != nil {
		return nil, shared.NewPersistenceError("load campaign", err)
	}
	return found.ToDomain(), nil
}

// FindCampaign returns a campaign owned by ownerID
func (r *GormCampaignRepository) FindCampaign(ctx context.Context, id uuid.UUID, ownerID string) (*campaign.Campaign, error) {
	var model models.CampaignModel
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewPersistenceError("find campaign", err)
	}
	return model.ToDomain(), nil
}

// UpdateCampaignStatus changes the status of an owned campaign
func (r *GormCampaignRepository) UpdateCampaignStatus(ctx context.Context, id uuid.UUID, ownerID string, status campaign.Status) (*campaign.Campaign, error) {
	c, err := r.FindCampaign(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if err := c.SetStatus(status); err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).Model(&models.CampaignModel{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(map[string]any{"status": c.Status, "updated_at": c.UpdatedAt}).Error
	if err != nil {
		return nil, shared.NewPersistenceError("update campaign status", err)
	}
	return c, nil
}

// FindOrCreateSource inserts with ON CONFLICT DO NOTHING on (campaign_id, source_url).
// An existing row keeps its original extraction.
func (r *GormCampaignRepository) FindOrCreateSource(ctx context.Context, campaignID uuid.UUID, url string, data campaign.ExtractedData) (*campaign.WebpageSource, error) {
	candidate, err := campaign.NewWebpageSource(campaignID, url, data)
	if err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	model := models.WebpageSourceModelFromDomain(candidate)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "campaign_id"}, {Name: "source_url"}},
		DoNothing: true,
	}).Create(model).Error; err != nil {
		return nil, shared.NewPersistenceError("create webpage source", err)
	}

	var found models.WebpageSourceModel
	if err := db.Where("campaign_id = ? AND source_url = ?", campaignID, url).First(&found).Error; err != nil {
		return nil, shared.NewPersistenceError("load webpage source", err)
	}
	return found.ToDomain(), nil
}

// CreateSeries inserts a new series and bumps the campaign's activity timestamp
func (r *GormCampaignRepository) CreateSeries(ctx context.Context, campaignID uuid.UUID, sourceID *uuid.UUID, meta campaign.SeriesMeta) (*campaign.ContentSeries, error) {
	series, err := campaign.NewContentSeries(campaignID, sourceID, meta)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(models.ContentSeriesModelFromDomain(series)).Error; err != nil {
			return err
		}
		return touchCampaign(tx, campaignID, series.CreatedAt)
	})
	if err != nil {
		return nil, shared.NewPersistenceError("create content series", err)
	}
	return series, nil
}

// AppendItems inserts items with sequence numbers 1..N
func (r *GormCampaignRepository) AppendItems(ctx context.Context, seriesID, campaignID uuid.UUID, items []campaign.GeneratedItem) ([]campaign.ContentItem, error) {
	return r.AppendItemsFrom(ctx, seriesID, campaignID, 1, items)
}

// AppendItemsFrom inserts items one row at a time starting at firstSeq.
// Rows written before a failure stay committed and are returned alongside a
// *campaign.PartialPersistenceError.
func (r *GormCampaignRepository) AppendItemsFrom(ctx context.Context, seriesID, campaignID uuid.UUID, firstSeq int, items []campaign.GeneratedItem) ([]campaign.ContentItem, error) {
	if len(items) == 0 {
		return []campaign.ContentItem{}, nil
	}
	if firstSeq < 1 {
		return nil, shared.NewValidationError("sequence numbers start at 1")
	}

	built := make([]*campaign.ContentItem, len(items))
	for i, g := range items {
		item, err := campaign.NewContentItem(seriesID, campaignID, firstSeq+i, g)
		if err != nil {
			return nil, err
		}
		built[i] = item
	}

	db := r.db.WithContext(ctx)
	written := make([]campaign.ContentItem, 0, len(items))
	for i, item := range built {
		var err error
		if i == len(built)-1 {
			// the last row commits together with the activity bump
			err = db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(models.ContentItemModelFromDomain(item)).Error; err != nil {
					return err
				}
				return touchCampaign(tx, campaignID, time.Now().UTC())
			})
		} else {
			err = db.Create(models.ContentItemModelFromDomain(item)).Error
		}
		if err != nil {
			alreadyStored := firstSeq - 1 + len(written)
			if alreadyStored == 0 {
				return written, shared.NewPersistenceError("append content items", err)
			}
			return written, &campaign.PartialPersistenceError{
				SeriesID: seriesID,
				Declared: firstSeq - 1 + len(items),
				Written:  alreadyStored,
				FailedAt: item.Sequence,
				Err:      err,
			}
		}
		written = append(written, *item)
	}
	return written, nil
}

// FindSeries returns a series whose campaign is owned by ownerID
func (r *GormCampaignRepository) FindSeries(ctx context.Context, id uuid.UUID, ownerID string) (*campaign.ContentSeries, error) {
	var model models.ContentSeriesModel
	err := r.db.WithContext(ctx).
		Joins("JOIN campaigns ON campaigns.id = content_series.campaign_id").
		Where("content_series.id = ? AND campaigns.owner_id = ?", id, ownerID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewPersistenceError("find content series", err)
	}
	return model.ToDomain(), nil
}

// CheckSeriesConsistency compares total_items with the stored item rows
func (r *GormCampaignRepository) CheckSeriesConsistency(ctx context.Context, seriesID uuid.UUID) (campaign.SeriesConsistency, error) {
	db := r.db.WithContext(ctx)
	var series models.ContentSeriesModel
	if err := db.Select("id", "total_items").Where("id = ?", seriesID).First(&series).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return campaign.SeriesConsistency{}, shared.ErrNotFound
		}
		return campaign.SeriesConsistency{}, shared.NewPersistenceError("load content series", err)
	}

	var actual int64
	if err := db.Model(&models.ContentItemModel{}).Where("series_id = ?", seriesID).Count(&actual).Error; err != nil {
		return campaign.SeriesConsistency{}, shared.NewPersistenceError("count content items", err)
	}
	return campaign.SeriesConsistency{
		SeriesID: seriesID,
		Declared: series.TotalItems,
		Actual:   int(actual),
	}, nil
}

// overviewQuery mirrors the campaign_overview view so the listing works on
// any dialect, including the sqlite used in tests.
const overviewQuery = `
SELECT
	c.id,
	c.name,
	c.description,
	c.industry,
	c.tone,
	c.status,
	c.created_at,
	c.updated_at AS last_activity_at,
	(SELECT COUNT(*) FROM webpage_sources s WHERE s.campaign_id = c.id) AS source_count,
	(SELECT COUNT(*) FROM content_series cs WHERE cs.campaign_id = c.id) AS series_count,
	(SELECT COUNT(*) FROM content_items ci WHERE ci.campaign_id = c.id) AS output_count,
	(SELECT COALESCE(SUM(cs.tokens_consumed), 0) FROM content_series cs WHERE cs.campaign_id = c.id) AS total_tokens
FROM campaigns c
WHERE c.owner_id = ?
ORDER BY c.updated_at DESC, c.name ASC`

type overviewRow struct {
	ID             uuid.UUID
	Name           string
	Description    string
	Industry       string
	Tone           string
	Status         campaign.Status
	CreatedAt      time.Time
	LastActivityAt time.Time
	SourceCount    int64
	SeriesCount    int64
	OutputCount    int64
	TotalTokens    int64
}

func (row overviewRow) toDomain() campaign.Summary {
	return campaign.Summary{
		ID:             row.ID,
		Name:           row.Name,
		Description:    row.Description,
		Industry:       row.Industry,
		Tone:           row.Tone,
		Status:         row.Status,
		SourceCount:    row.SourceCount,
		SeriesCount:    row.SeriesCount,
		OutputCount:    row.OutputCount,
		TotalTokens:    row.TotalTokens,
		CreatedAt:      row.CreatedAt,
		LastActivityAt: row.LastActivityAt,
	}
}

// Overview returns one aggregated row per campaign in a single query
func (r *GormCampaignRepository) Overview(ctx context.Context, ownerID string) ([]campaign.Summary, error) {
	var rows []overviewRow
	if err := r.db.WithContext(ctx).Raw(overviewQuery, ownerID).Scan(&rows).Error; err != nil {
		return nil, shared.NewPersistenceError("campaign overview", err)
	}
	out := make([]campaign.Summary, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// LibraryStats totals the overview rows
func (r *GormCampaignRepository) LibraryStats(ctx context.Context, ownerID string) (campaign.LibraryStats, error) {
	rows, err := r.Overview(ctx, ownerID)
	if err != nil {
		return campaign.LibraryStats{}, err
	}
	return campaign.StatsFromSummaries(rows), nil
}

// Search does a case-insensitive substring match over campaign and item text
func (r *GormCampaignRepository) Search(ctx context.Context, ownerID, query string) (*campaign.SearchResult, error) {
	result := &campaign.SearchResult{
		Campaigns: []campaign.Campaign{},
		Items:     []campaign.ContentItem{},
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return result, nil
	}
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	db := r.db.WithContext(ctx)

	var campaigns []models.CampaignModel
	err := db.Where("owner_id = ?", ownerID).
		Where("LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\'", pattern, pattern).
		Order("updated_at DESC").
		Find(&campaigns).Error
	if err != nil {
		return nil, shared.NewPersistenceError("search campaigns", err)
	}
	for i := range campaigns {
		result.Campaigns = append(result.Campaigns, *campaigns[i].ToDomain())
	}

	var items []models.ContentItemModel
	err = db.Joins("JOIN campaigns ON campaigns.id = content_items.campaign_id").
		Where("campaigns.owner_id = ?", ownerID).
		Where("LOWER(content_items.subject_line) LIKE ? ESCAPE '\\' OR LOWER(content_items.body) LIKE ? ESCAPE '\\'", pattern, pattern).
		Order("content_items.series_id, content_items.sequence").
		Find(&items).Error
	if err != nil {
		return nil, shared.NewPersistenceError("search content items", err)
	}
	for i := range items {
		result.Items = append(result.Items, *items[i].ToDomain())
	}
	return result, nil
}

// DeleteCampaign removes the campaign and its children in one transaction.
// A campaign owned by someone else is reported as not found.
func (r *GormCampaignRepository) DeleteCampaign(ctx context.Context, id uuid.UUID, ownerID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owned int64
		if err := tx.Model(&models.CampaignModel{}).Where("id = ? AND owner_id = ?", id, ownerID).Count(&owned).Error; err != nil {
			return shared.NewPersistenceError("check campaign owner", err)
		}
		if owned == 0 {
			return shared.ErrNotFound
		}

		children := []struct {
			model any
			label string
		}{
			{&models.ContentItemModel{}, "content items"},
			{&models.ContentSeriesModel{}, "content series"},
			{&models.WebpageSourceModel{}, "webpage sources"},
			{&models.UsageEventModel{}, "usage events"},
		}
		for _, child := range children {
			if err := tx.Where("campaign_id = ?", id).Delete(child.model).Error; err != nil {
				return shared.NewPersistenceError("delete "+child.label, err)
			}
		}

		if err := tx.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.CampaignModel{}).Error; err != nil {
			return shared.NewPersistenceError("delete campaign", err)
		}
		return nil
	})
}

func touchCampaign(db *gorm.DB, campaignID uuid.UUID, at time.Time) error {
	return db.Model(&models.CampaignModel{}).
		Where("id = ?", campaignID).
		UpdateColumn("updated_at", at).Error
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
