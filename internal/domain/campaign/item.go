package campaign

import (
	"strings"

	"github.com/contentforge/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const (
	// DefaultReadingLevel is the target reading level of generated copy
	DefaultReadingLevel = "5th grade"
	wordsPerMinute      = 200
)

// GeneratedItem is one unit of generator output
type GeneratedItem struct {
	Subject    string `json:"subject" validate:"required"`
	Body       string `json:"body" validate:"required"`
	FocusTopic string `json:"focus_topic"`
}

// ContentItem is one stored unit of content within a series
type ContentItem struct {
	shared.BaseEntity
	SeriesID             uuid.UUID
	CampaignID           uuid.UUID
	Sequence             int
	Subject              string
	Body                 string
	FocusTopic           string
	WordCount            int
	ReadingLevel         string
	EstimatedReadSeconds int
}

// NewContentItem builds an item at a 1-based sequence position
func NewContentItem(seriesID, campaignID uuid.UUID, sequence int, g GeneratedItem) (*ContentItem, error) {
	if seriesID == uuid.Nil || campaignID == uuid.Nil {
		return nil, shared.NewValidationError("series and campaign ids are required")
	}
	if sequence < 1 {
		return nil, shared.NewValidationError("sequence numbers start at 1")
	}
	words := CountWords(g.Body)
	return &ContentItem{
		BaseEntity:           shared.NewBaseEntity(),
		SeriesID:             seriesID,
		CampaignID:           campaignID,
		Sequence:             sequence,
		Subject:              g.Subject,
		Body:                 g.Body,
		FocusTopic:           g.FocusTopic,
		WordCount:            words,
		ReadingLevel:         DefaultReadingLevel,
		EstimatedReadSeconds: EstimateReadSeconds(words),
	}, nil
}

// CountWords counts whitespace-separated words
func CountWords(body string) int {
	return len(strings.Fields(body))
}

// EstimateReadSeconds rounds reading time up to whole minutes, in seconds
func EstimateReadSeconds(words int) int {
	if words <= 0 {
		return 0
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return minutes * 60
}
