package models

import (
	"time"

	"github.com/contentforge/backend/internal/domain/usage"
	"github.com/google/uuid"
)

// UsageCounterModel is one owner's counters for one period bucket.
// Rows are only ever created or incremented.
type UsageCounterModel struct {
	OwnerID        string       `gorm:"type:varchar(128);primaryKey"`
	Period         usage.Period `gorm:"type:varchar(10);primaryKey"`
	PeriodStart    time.Time    `gorm:"primaryKey"`
	TokensUsed     int64        `gorm:"not null;default:0"`
	ItemsProcessed int64        `gorm:"not null;default:0"`
	UpdatedAt      time.Time    `gorm:"not null"`
}

// TableName returns the table name for GORM
func (UsageCounterModel) TableName() string {
	return "usage_counters"
}

// ToDomain converts the persistence model to a domain Counter
func (m *UsageCounterModel) ToDomain() usage.Counter {
	return usage.Counter{
		OwnerID:        m.OwnerID,
		Period:         m.Period,
		PeriodStart:    m.PeriodStart,
		TokensUsed:     m.TokensUsed,
		ItemsProcessed: m.ItemsProcessed,
		UpdatedAt:      m.UpdatedAt,
	}
}

// UsageEventModel is the append-only usage audit log
type UsageEventModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	OwnerID        string           `gorm:"type:varchar(128);not null;index"`
	CampaignID     *uuid.UUID       `gorm:"type:uuid;index"`
	Feature        usage.Feature    `gorm:"column:feature_used;type:varchar(50);not null"`
	TokensConsumed int64            `gorm:"not null;default:0"`
	ItemsProduced  int64            `gorm:"column:content_pieces_generated;not null;default:0"`
	SourceType     usage.SourceType `gorm:"type:varchar(20)"`
	SourceID       *uuid.UUID       `gorm:"type:uuid"`
	OutputType     usage.OutputType `gorm:"type:varchar(50)"`
	OutputID       *uuid.UUID       `gorm:"type:uuid"`
	Success        bool             `gorm:"not null"`
	SessionID      string           `gorm:"type:varchar(128)"`
	OccurredAt     time.Time        `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (UsageEventModel) TableName() string {
	return "usage_events"
}

// ToDomain converts the persistence model to a domain Event
func (m *UsageEventModel) ToDomain() usage.Event {
	return usage.Event{
		ID:             m.ID,
		OwnerID:        m.OwnerID,
		CampaignID:     m.CampaignID,
		Feature:        m.Feature,
		TokensConsumed: m.TokensConsumed,
		ItemsProduced:  m.ItemsProduced,
		SourceType:     m.SourceType,
		SourceID:       m.SourceID,
		OutputType:     m.OutputType,
		OutputID:       m.OutputID,
		Success:        m.Success,
		SessionID:      m.SessionID,
		OccurredAt:     m.OccurredAt,
	}
}

// UsageEventModelFromDomain converts a domain Event to its persistence model
func UsageEventModelFromDomain(e *usage.Event) *UsageEventModel {
	return &UsageEventModel{
		ID:             e.ID,
		OwnerID:        e.OwnerID,
		CampaignID:     e.CampaignID,
		Feature:        e.Feature,
		TokensConsumed: e.TokensConsumed,
		ItemsProduced:  e.ItemsProduced,
		SourceType:     e.SourceType,
		SourceID:       e.SourceID,
		OutputType:     e.OutputType,
		OutputID:       e.OutputID,
		Success:        e.Success,
		SessionID:      e.SessionID,
		OccurredAt:     e.OccurredAt,
	}
}
