package models

import (
	"time"

	"github.com/contentforge/backend/internal/domain/campaign"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CampaignModel is the persistence model for campaigns.
// (owner_id, name) is the find-or-create key.
type CampaignModel struct {
	BaseModel
	OwnerID     string          `gorm:"type:varchar(128);not null;uniqueIndex:uq_campaigns_owner_name,priority:1"`
	Name        string          `gorm:"type:varchar(200);not null;uniqueIndex:uq_campaigns_owner_name,priority:2"`
	Description string          `gorm:"type:text"`
	Industry    string          `gorm:"type:varchar(100);not null;default:'general'"`
	Tone        string          `gorm:"type:varchar(50);not null;default:'professional'"`
	Status      campaign.Status `gorm:"type:varchar(20);not null;default:'active';index"`
	Tags        datatypes.JSON  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CampaignModel) TableName() string {
	return "campaigns"
}

// ToDomain converts the persistence model to a domain Campaign
func (m *CampaignModel) ToDomain() *campaign.Campaign {
	return &campaign.Campaign{
		BaseEntity:  m.BaseModel.ToDomain(),
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		Industry:    m.Industry,
		Tone:        m.Tone,
		Status:      m.Status,
		Tags:        jsonToStrings(m.Tags, "campaigns.tags"),
	}
}

// CampaignModelFromDomain converts a domain Campaign to its persistence model
func CampaignModelFromDomain(c *campaign.Campaign) *CampaignModel {
	m := &CampaignModel{
		OwnerID:     c.OwnerID,
		Name:        c.Name,
		Description: c.Description,
		Industry:    c.Industry,
		Tone:        c.Tone,
		Status:      c.Status,
		Tags:        stringsToJSON(c.Tags),
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// WebpageSourceModel is the persistence model for scanned pages.
// (campaign_id, source_url) is the find-or-create key.
type WebpageSourceModel struct {
	BaseModel
	CampaignID       uuid.UUID                 `gorm:"type:uuid;not null;uniqueIndex:uq_webpage_sources_campaign_url,priority:1"`
	SourceURL        string                    `gorm:"type:text;not null;uniqueIndex:uq_webpage_sources_campaign_url,priority:2"`
	PageTitle        string                    `gorm:"type:text"`
	PageDescription  string                    `gorm:"type:text"`
	Domain           string                    `gorm:"type:varchar(255)"`
	Benefits         datatypes.JSON            `gorm:"column:extracted_benefits;not null"`
	Features         datatypes.JSON            `gorm:"column:extracted_features;not null"`
	ProcessingStatus campaign.ProcessingStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	ProcessedAt      *time.Time
}

// TableName returns the table name for GORM
func (WebpageSourceModel) TableName() string {
	return "webpage_sources"
}

// ToDomain converts the persistence model to a domain WebpageSource
func (m *WebpageSourceModel) ToDomain() *campaign.WebpageSource {
	return &campaign.WebpageSource{
		BaseEntity:       m.BaseModel.ToDomain(),
		CampaignID:       m.CampaignID,
		SourceURL:        m.SourceURL,
		PageTitle:        m.PageTitle,
		PageDescription:  m.PageDescription,
		Domain:           m.Domain,
		Benefits:         jsonToStrings(m.Benefits, "webpage_sources.extracted_benefits"),
		Features:         jsonToStrings(m.Features, "webpage_sources.extracted_features"),
		ProcessingStatus: m.ProcessingStatus,
		ProcessedAt:      m.ProcessedAt,
	}
}

// WebpageSourceModelFromDomain converts a domain WebpageSource to its persistence model
func WebpageSourceModelFromDomain(s *campaign.WebpageSource) *WebpageSourceModel {
	m := &WebpageSourceModel{
		CampaignID:       s.CampaignID,
		SourceURL:        s.SourceURL,
		PageTitle:        s.PageTitle,
		PageDescription:  s.PageDescription,
		Domain:           s.Domain,
		Benefits:         stringsToJSON(s.Benefits),
		Features:         stringsToJSON(s.Features),
		ProcessingStatus: s.ProcessingStatus,
		ProcessedAt:      s.ProcessedAt,
	}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m
}

// ContentSeriesModel is the persistence model for generation runs
type ContentSeriesModel struct {
	BaseModel
	CampaignID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	SourceID       *uuid.UUID `gorm:"type:uuid;index"`
	Name           string     `gorm:"column:series_name;type:varchar(255);not null"`
	Description    string     `gorm:"type:text"`
	TotalItems     int        `gorm:"not null;default:0"`
	Tone           string     `gorm:"type:varchar(50)"`
	Industry       string     `gorm:"type:varchar(100)"`
	TargetAudience string     `gorm:"type:text"`
	ReferenceLink  string     `gorm:"type:text"`
	ModelUsed      string     `gorm:"type:varchar(100)"`
	TokensConsumed int64      `gorm:"not null;default:0"`
	QualityScore   int        `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ContentSeriesModel) TableName() string {
	return "content_series"
}

// ToDomain converts the persistence model to a domain ContentSeries
func (m *ContentSeriesModel) ToDomain() *campaign.ContentSeries {
	return &campaign.ContentSeries{
		BaseEntity:     m.BaseModel.ToDomain(),
		CampaignID:     m.CampaignID,
		SourceID:       m.SourceID,
		Name:           m.Name,
		Description:    m.Description,
		TotalItems:     m.TotalItems,
		Tone:           m.Tone,
		Industry:       m.Industry,
		TargetAudience: m.TargetAudience,
		ReferenceLink:  m.ReferenceLink,
		ModelUsed:      m.ModelUsed,
		TokensConsumed: m.TokensConsumed,
		QualityScore:   m.QualityScore,
	}
}

// ContentSeriesModelFromDomain converts a domain ContentSeries to its persistence model
func ContentSeriesModelFromDomain(s *campaign.ContentSeries) *ContentSeriesModel {
	m := &ContentSeriesModel{
		CampaignID:     s.CampaignID,
		SourceID:       s.SourceID,
		Name:           s.Name,
		Description:    s.Description,
		TotalItems:     s.TotalItems,
		Tone:           s.Tone,
		Industry:       s.Industry,
		TargetAudience: s.TargetAudience,
		ReferenceLink:  s.ReferenceLink,
		ModelUsed:      s.ModelUsed,
		TokensConsumed: s.TokensConsumed,
		QualityScore:   s.QualityScore,
	}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m
}

// ContentItemModel is the persistence model for individual pieces of content.
// Sequence is unique within a series.
type ContentItemModel struct {
	BaseModel
	SeriesID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_content_items_series_sequence,priority:1"`
	CampaignID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Sequence             int       `gorm:"not null;uniqueIndex:uq_content_items_series_sequence,priority:2"`
	Subject              string    `gorm:"column:subject_line;type:text;not null"`
	Body                 string    `gorm:"type:text;not null"`
	FocusTopic           string    `gorm:"type:text"`
	WordCount            int       `gorm:"not null;default:0"`
	ReadingLevel         string    `gorm:"type:varchar(50)"`
	EstimatedReadSeconds int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ContentItemModel) TableName() string {
	return "content_items"
}

// ToDomain converts the persistence model to a domain ContentItem
func (m *ContentItemModel) ToDomain() *campaign.ContentItem {
	return &campaign.ContentItem{
		BaseEntity:           m.BaseModel.ToDomain(),
		SeriesID:             m.SeriesID,
		CampaignID:           m.CampaignID,
		Sequence:             m.Sequence,
		Subject:              m.Subject,
		Body:                 m.Body,
		FocusTopic:           m.FocusTopic,
		WordCount:            m.WordCount,
		ReadingLevel:         m.ReadingLevel,
		EstimatedReadSeconds: m.EstimatedReadSeconds,
	}
}

// ContentItemModelFromDomain converts a domain ContentItem to its persistence model
func ContentItemModelFromDomain(i *campaign.ContentItem) *ContentItemModel {
	m := &ContentItemModel{
		SeriesID:             i.SeriesID,
		CampaignID:           i.CampaignID,
		Sequence:             i.Sequence,
		Subject:              i.Subject,
		Body:                 i.Body,
		FocusTopic:           i.FocusTopic,
		WordCount:            i.WordCount,
		ReadingLevel:         i.ReadingLevel,
		EstimatedReadSeconds: i.EstimatedReadSeconds,
	}
	m.FromDomainBaseEntity(i.BaseEntity)
	return m
}
