package persistence

import (
	"context"
	"time"

	"github.com/contentforge/backend/internal/domain/shared"
	"github.com/contentforge/backend/internal/domain/usage"
	"github.com/contentforge/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUsageCounterRepository implements usage.CounterRepository using GORM
type GormUsageCounterRepository struct {
	db *gorm.DB
}

// NewGormUsageCounterRepository creates a new GormUsageCounterRepository
func NewGormUsageCounterRepository(db *gorm.DB) *GormUsageCounterRepository {
	return &GormUsageCounterRepository{db: db}
}

var (
	_ usage.CounterRepository = (*GormUsageCounterRepository)(nil)
	_ usage.CounterHistory    = (*GormUsageCounterRepository)(nil)
)

// Increment upserts the daily and monthly buckets in one statement.
// The conflict branch adds to the stored value inside the database, so
// concurrent increments never overwrite each other.
func (r *GormUsageCounterRepository) Increment(ctx context.Context, ownerID string, delta usage.Delta, at time.Time) error {
	if err := delta.Validate(); err != nil {
		return err
	}
	if ownerID == "" {
		return shared.NewValidationError("owner is required")
	}
	if delta.IsZero() {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]models.UsageCounterModel, 0, len(usage.Periods()))
	for _, p := range usage.Periods() {
		rows = append(rows, models.UsageCounterModel{
			OwnerID:        ownerID,
			Period:         p,
			PeriodStart:    p.Start(at),
			TokensUsed:     delta.Tokens,
			ItemsProcessed: delta.Items,
			UpdatedAt:      now,
		})
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner_id"}, {Name: "period"}, {Name: "period_start"}},
		DoUpdates: clause.Assignments(map[string]any{
			"tokens_used":     gorm.Expr("usage_counters.tokens_used + excluded.tokens_used"),
			"items_processed": gorm.Expr("usage_counters.items_processed + excluded.items_processed"),
			"updated_at":      gorm.Expr("excluded.updated_at"),
		}),
	}).Create(&rows).Error
	if err != nil {
		return shared.NewPersistenceError("increment usage counters", err)
	}
	return nil
}

// Snapshot reads the buckets containing at; missing buckets count as zero
func (r *GormUsageCounterRepository) Snapshot(ctx context.Context, ownerID string, at time.Time) (usage.Snapshot, error) {
	var rows []models.UsageCounterModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Where("(period = ? AND period_start = ?) OR (period = ? AND period_start = ?)",
			usage.PeriodDaily, usage.PeriodDaily.Start(at),
			usage.PeriodMonthly, usage.PeriodMonthly.Start(at)).
		Find(&rows).Error
	if err != nil {
		return usage.Snapshot{}, shared.NewPersistenceError("load usage counters", err)
	}

	counters := make([]usage.Counter, len(rows))
	for i := range rows {
		counters[i] = rows[i].ToDomain()
	}
	return usage.SnapshotFromCounters(counters), nil
}

// History returns an owner's buckets of one period, newest first
func (r *GormUsageCounterRepository) History(ctx context.Context, ownerID string, period usage.Period, limit int) ([]usage.Counter, error) {
	if limit <= 0 {
		limit = 30
	}
	var rows []models.UsageCounterModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND period = ?", ownerID, period).
		Order("period_start DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, shared.NewPersistenceError("load usage history", err)
	}
	out := make([]usage.Counter, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}
