package campaign

import (
	"time"

	"github.com/google/uuid"
)

// Summary is one row of the campaign listing
type Summary struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Industry       string    `json:"industry"`
	Tone           string    `json:"tone"`
	Status         Status    `json:"status"`
	SourceCount    int64     `json:"source_count"`
	SeriesCount    int64     `json:"series_count"`
	OutputCount    int64     `json:"output_count"`
	TotalTokens    int64     `json:"total_tokens"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}

// LibraryStats totals an owner's content library
type LibraryStats struct {
	TotalCampaigns  int64 `json:"total_campaigns"`
	ActiveCampaigns int64 `json:"active_campaigns"`
	TotalSources    int64 `json:"total_sources"`
	TotalSeries     int64 `json:"total_series"`
	TotalItems      int64 `json:"total_items"`
	TotalTokens     int64 `json:"total_tokens"`
}

// StatsFromSummaries folds listing rows into library totals
func StatsFromSummaries(rows []Summary) LibraryStats {
	var s LibraryStats
	for _, r := range rows {
		s.TotalCampaigns++
		if r.Status == StatusActive {
			s.ActiveCampaigns++
		}
		s.TotalSources += r.SourceCount
		s.TotalSeries += r.SeriesCount
		s.TotalItems += r.OutputCount
		s.TotalTokens += r.TotalTokens
	}
	return s
}

// SearchResult holds campaigns and items matching a query
type SearchResult struct {
	Campaigns []Campaign    `json:"campaigns"`
	Items     []ContentItem `json:"items"`
}
