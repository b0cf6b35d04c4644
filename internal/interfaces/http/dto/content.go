package dto

import (
	"time"

	"github.com/contentforge/backend/internal/application/content"
	"github.com/contentforge/backend/internal/domain/campaign"
	"github.com/contentforge/backend/internal/domain/usage"
	"github.com/google/uuid"
)

// IdempotencyKeyHeader is read when the body does not carry a key
const IdempotencyKeyHeader = "Idempotency-Key"

// MaterializeRequest is the body of POST /content/materialize
type MaterializeRequest struct {
	CampaignID          *uuid.UUID               `json:"campaign_id"`
	CampaignName        string                   `json:"campaign_name" binding:"required_without=CampaignID,max=200"`
	CampaignDescription string                   `json:"campaign_description" binding:"max=2000"`
	SourceURL           string                   `json:"source_url" binding:"omitempty,url"`
	Page                campaign.ExtractedData   `json:"page"`
	SeriesName          string                   `json:"series_name" binding:"max=200"`
	Tone                string                   `json:"tone"`
	Industry            string                   `json:"industry"`
	TargetAudience      string                   `json:"target_audience"`
	ReferenceLink       string                   `json:"reference_link" binding:"omitempty,url"`
	Model               string                   `json:"model"`
	TokensConsumed      int64                    `json:"tokens_consumed" binding:"gte=0"`
	Items               []campaign.GeneratedItem `json:"items" binding:"required,min=1,max=50"`
	IdempotencyKey      string                   `json:"idempotency_key" binding:"max=128"`
	SessionID           string                   `json:"session_id"`
}

// ToCommand stamps the authenticated identity onto the request
func (r MaterializeRequest) ToCommand(ownerID, rawTier, headerKey string) content.MaterializeRequest {
	key := r.IdempotencyKey
	if key == "" {
		key = headerKey
	}
	return content.MaterializeRequest{
		OwnerID:             ownerID,
		Tier:                rawTier,
		CampaignID:          r.CampaignID,
		CampaignName:        r.CampaignName,
		CampaignDescription: r.CampaignDescription,
		SourceURL:           r.SourceURL,
		Page:                r.Page,
		SeriesName:          r.SeriesName,
		Tone:                r.Tone,
		Industry:            r.Industry,
		TargetAudience:      r.TargetAudience,
		ReferenceLink:       r.ReferenceLink,
		Model:               r.Model,
		TokensConsumed:      r.TokensConsumed,
		Items:               r.Items,
		IdempotencyKey:      key,
		SessionID:           r.SessionID,
	}
}

// ResumeRequest is the body of POST /content/materialize/resume. It repeats
// the original materialize body and names the series to finish.
type ResumeRequest struct {
	MaterializeRequest
	SeriesID uuid.UUID `json:"series_id" binding:"required"`
}

// GenerateRequest is the body of POST /content/generate
type GenerateRequest struct {
	CampaignID     *uuid.UUID             `json:"campaign_id"`
	CampaignName   string                 `json:"campaign_name" binding:"required_without=CampaignID,max=200"`
	SourceURL      string                 `json:"source_url" binding:"required,url"`
	Page           campaign.ExtractedData `json:"page"`
	Tone           string                 `json:"tone"`
	Industry       string                 `json:"industry"`
	TargetAudience string                 `json:"target_audience"`
	ReferenceLink  string                 `json:"reference_link" binding:"omitempty,url"`
	ItemCount      int                    `json:"item_count" binding:"gte=0,lte=20"`
	IdempotencyKey string                 `json:"idempotency_key" binding:"max=128"`
	SessionID      string                 `json:"session_id"`
}

// ToCommand stamps the authenticated identity onto the request
func (r GenerateRequest) ToCommand(ownerID, rawTier, headerKey string) content.GenerateRequest {
	key := r.IdempotencyKey
	if key == "" {
		key = headerKey
	}
	return content.GenerateRequest{
		OwnerID:        ownerID,
		Tier:           rawTier,
		CampaignID:     r.CampaignID,
		CampaignName:   r.CampaignName,
		SourceURL:      r.SourceURL,
		Page:           r.Page,
		Tone:           r.Tone,
		Industry:       r.Industry,
		TargetAudience: r.TargetAudience,
		ReferenceLink:  r.ReferenceLink,
		ItemCount:      r.ItemCount,
		IdempotencyKey: key,
		SessionID:      r.SessionID,
	}
}

// UpdateStatusRequest is the body of PATCH /campaigns/:id/status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active paused completed archived"`
}

// SearchQuery is the query of GET /campaigns/search
type SearchQuery struct {
	Q string `form:"q" binding:"required,min=1,max=200"`
}

// CampaignResponse is the API view of a campaign
type CampaignResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Industry    string    `json:"industry"`
	Tone        string    `json:"tone"`
	Status      string    `json:"status"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SourceResponse is the API view of a webpage source
type SourceResponse struct {
	ID               uuid.UUID  `json:"id"`
	SourceURL        string     `json:"source_url"`
	Domain           string     `json:"domain"`
	PageTitle        string     `json:"page_title"`
	PageDescription  string     `json:"page_description"`
	Benefits         []string   `json:"benefits"`
	Features         []string   `json:"features"`
	ProcessingStatus string     `json:"processing_status"`
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`
}

// SeriesResponse is the API view of a content series
type SeriesResponse struct {
	ID             uuid.UUID  `json:"id"`
	CampaignID     uuid.UUID  `json:"campaign_id"`
	SourceID       *uuid.UUID `json:"source_id,omitempty"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	TotalItems     int        `json:"total_items"`
	Tone           string     `json:"tone"`
	Industry       string     `json:"industry"`
	TargetAudience string     `json:"target_audience"`
	ReferenceLink  string     `json:"reference_link"`
	ModelUsed      string     `json:"model_used"`
	TokensConsumed int64      `json:"tokens_consumed"`
	QualityScore   int        `json:"quality_score"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ItemResponse is the API view of one content item
type ItemResponse struct {
	ID                   uuid.UUID `json:"id"`
	SeriesID             uuid.UUID `json:"series_id"`
	CampaignID           uuid.UUID `json:"campaign_id"`
	Sequence             int       `json:"sequence"`
	Subject              string    `json:"subject"`
	Body                 string    `json:"body"`
	FocusTopic           string    `json:"focus_topic"`
	WordCount            int       `json:"word_count"`
	ReadingLevel         string    `json:"reading_level"`
	EstimatedReadSeconds int       `json:"estimated_read_seconds"`
}

// UsageEventResponse is the API view of a recorded usage event
type UsageEventResponse struct {
	ID             uuid.UUID `json:"id"`
	Feature        string    `json:"feature"`
	TokensConsumed int64     `json:"tokens_consumed"`
	ItemsProduced  int64     `json:"items_produced"`
	SourceType     string    `json:"source_type"`
	OutputType     string    `json:"output_type"`
	Success        bool      `json:"success"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// MaterializeResponse is the consolidated result of a materialization run
type MaterializeResponse struct {
	State      string              `json:"state"`
	FailedAt   string              `json:"failed_at,omitempty"`
	Campaign   *CampaignResponse   `json:"campaign,omitempty"`
	Source     *SourceResponse     `json:"source,omitempty"`
	Series     *SeriesResponse     `json:"series,omitempty"`
	Items      []ItemResponse      `json:"items"`
	UsageEvent *UsageEventResponse `json:"usage_event,omitempty"`
	Warnings   []content.Warning   `json:"warnings,omitempty"`
}

// SearchResponse lists campaigns and items matching a query
type SearchResponse struct {
	Query     string             `json:"query"`
	Campaigns []CampaignResponse `json:"campaigns"`
	Items     []ItemResponse     `json:"items"`
}

// ToMaterializeResponse converts an orchestrator result; nil yields nil
func ToMaterializeResponse(r *content.Result) *MaterializeResponse {
	if r == nil {
		return nil
	}
	resp := &MaterializeResponse{
		State:    string(r.State),
		FailedAt: string(r.FailedAt),
		Items:    ToItemResponses(r.Items),
		Warnings: r.Warnings,
	}
	if r.Campaign != nil {
		c := ToCampaignResponse(r.Campaign)
		resp.Campaign = &c
	}
	if r.Source != nil {
		resp.Source = toSourceResponse(r.Source)
	}
	if r.Series != nil {
		resp.Series = toSeriesResponse(r.Series)
	}
	if r.UsageEvent != nil {
		resp.UsageEvent = toUsageEventResponse(r.UsageEvent)
	}
	return resp
}

// ToCampaignResponse converts a domain campaign
func ToCampaignResponse(c *campaign.Campaign) CampaignResponse {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return CampaignResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Industry:    c.Industry,
		Tone:        c.Tone,
		Status:      c.Status.String(),
		Tags:        tags,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToItemResponses converts stored items, never returning nil
func ToItemResponses(items []campaign.ContentItem) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ItemResponse{
			ID:                   it.ID,
			SeriesID:             it.SeriesID,
			CampaignID:           it.CampaignID,
			Sequence:             it.Sequence,
			Subject:              it.Subject,
			Body:                 it.Body,
			FocusTopic:           it.FocusTopic,
			WordCount:            it.WordCount,
			ReadingLevel:         it.ReadingLevel,
			EstimatedReadSeconds: it.EstimatedReadSeconds,
		})
	}
	return out
}

// ToSearchResponse converts a search result
func ToSearchResponse(query string, r *campaign.SearchResult) SearchResponse {
	resp := SearchResponse{
		Query:     query,
		Campaigns: []CampaignResponse{},
		Items:     []ItemResponse{},
	}
	if r == nil {
		return resp
	}
	for i := range r.Campaigns {
		resp.Campaigns = append(resp.Campaigns, ToCampaignResponse(&r.Campaigns[i]))
	}
	resp.Items = ToItemResponses(r.Items)
	return resp
}

func toSourceResponse(s *campaign.WebpageSource) *SourceResponse {
	return &SourceResponse{
		ID:               s.ID,
		SourceURL:        s.SourceURL,
		Domain:           s.Domain,
		PageTitle:        s.PageTitle,
		PageDescription:  s.PageDescription,
		Benefits:         s.Benefits,
		Features:         s.Features,
		ProcessingStatus: string(s.ProcessingStatus),
		ProcessedAt:      s.ProcessedAt,
	}
}

func toSeriesResponse(s *campaign.ContentSeries) *SeriesResponse {
	return &SeriesResponse{
		ID:             s.ID,
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
		CreatedAt:      s.CreatedAt,
	}
}

func toUsageEventResponse(e *usage.Event) *UsageEventResponse {
	return &UsageEventResponse{
		ID:             e.ID,
		Feature:        string(e.Feature),
		TokensConsumed: e.TokensConsumed,
		ItemsProduced:  e.ItemsProduced,
		SourceType:     string(e.SourceType),
		OutputType:     string(e.OutputType),
		Success:        e.Success,
		OccurredAt:     e.OccurredAt,
	}
}
