package campaign

import (
	"fmt"

	"github.com/contentforge/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DefaultQualityScore is assigned to generated series until they are rated
const DefaultQualityScore = 8

// SeriesMeta is the generation metadata of a series
type SeriesMeta struct {
	Name           string
	Description    string
	TotalItems     int
	Tone           string
	Industry       string
	TargetAudience string
	ReferenceLink  string
	ModelUsed      string
	TokensConsumed int64
	QualityScore   int
}

// ContentSeries is the output set of one generation run
type ContentSeries struct {
	shared.BaseEntity
	CampaignID     uuid.UUID
	SourceID       *uuid.UUID
	Name           string
	Description    string
	TotalItems     int
	Tone           string
	Industry       string
	TargetAudience string
	ReferenceLink  string
	ModelUsed      string
	TokensConsumed int64
	QualityScore   int
}

// NewContentSeries creates a series; TotalItems is the declared item count
func NewContentSeries(campaignID uuid.UUID, sourceID *uuid.UUID, meta SeriesMeta) (*ContentSeries, error) {
	if campaignID == uuid.Nil {
		return nil, shared.NewValidationError("campaign id is required")
	}
	if meta.Name == "" {
		return nil, shared.NewValidationError("series name is required")
	}
	if meta.TotalItems < 0 {
		return nil, shared.NewValidationError("series item count cannot be negative")
	}
	if meta.TokensConsumed < 0 {
		return nil, shared.NewValidationError("tokens consumed cannot be negative")
	}
	score := meta.QualityScore
	if score == 0 {
		score = DefaultQualityScore
	}
	return &ContentSeries{
		BaseEntity:     shared.NewBaseEntity(),
		CampaignID:     campaignID,
		SourceID:       sourceID,
		Name:           meta.Name,
		Description:    meta.Description,
		TotalItems:     meta.TotalItems,
		Tone:           meta.Tone,
		Industry:       meta.Industry,
		TargetAudience: meta.TargetAudience,
		ReferenceLink:  meta.ReferenceLink,
		ModelUsed:      meta.ModelUsed,
		TokensConsumed: meta.TokensConsumed,
		QualityScore:   score,
	}, nil
}

// SeriesConsistency compares the declared item count with stored rows
type SeriesConsistency struct {
	SeriesID uuid.UUID `json:"series_id"`
	Declared int       `json:"declared"`
	Actual   int       `json:"actual"`
}

// Consistent returns true if declared and stored counts match
func (c SeriesConsistency) Consistent() bool {
	return c.Declared == c.Actual
}

// String describes the comparison
func (c SeriesConsistency) String() string {
	return fmt.Sprintf("series %s: declared %d, stored %d", c.SeriesID, c.Declared, c.Actual)
}
