package persistence

import (
	"context"

	"github.com/contentforge/backend/internal/domain/shared"
	"github.com/contentforge/backend/internal/domain/usage"
	"github.com/contentforge/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUsageEventRepository implements usage.EventRepository using GORM
type GormUsageEventRepository struct {
	db *gorm.DB
}

// NewGormUsageEventRepository creates a new GormUsageEventRepository
func NewGormUsageEventRepository(db *gorm.DB) *GormUsageEventRepository {
	return &GormUsageEventRepository{db: db}
}

var _ usage.EventRepository = (*GormUsageEventRepository)(nil)

// Append inserts a new event
func (r *GormUsageEventRepository) Append(ctx context.Context, event *usage.Event) error {
	if err := r.db.WithContext(ctx).Create(models.UsageEventModelFromDomain(event)).Error; err != nil {
		return shared.NewPersistenceError("append usage event", err)
	}
	return nil
}

// ListByOwner returns the newest events of an owner
func (r *GormUsageEventRepository) ListByOwner(ctx context.Context, ownerID string, limit int) ([]usage.Event, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var rows []models.UsageEventModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, shared.NewPersistenceError("list usage events", err)
	}
	return eventsToDomain(rows), nil
}

// ListByCampaign returns a campaign's events, newest first
func (r *GormUsageEventRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]usage.Event, error) {
	var rows []models.UsageEventModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("occurred_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, shared.NewPersistenceError("list usage events", err)
	}
	return eventsToDomain(rows), nil
}

func eventsToDomain(rows []models.UsageEventModel) []usage.Event {
	out := make([]usage.Event, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out
}
