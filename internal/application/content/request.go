package content

import (
	"errors"
	"reflect"
	"strings"

	"github.com/contentforge/backend/internal/domain/campaign"
	"github.com/contentforge/backend/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DefaultItemCount is used when a generate request does not name a count
const DefaultItemCount = 3

// MaterializeRequest carries generated content to be organized under a campaign.
// CampaignID selects an existing campaign; otherwise CampaignName is found or created.
type MaterializeRequest struct {
	OwnerID             string                   `json:"owner_id"`
	Tier                string                   `json:"tier"`
	CampaignID          *uuid.UUID               `json:"campaign_id"`
	CampaignName        string                   `json:"campaign_name" validate:"required_without=CampaignID,max=200"`
	CampaignDescription string                   `json:"campaign_description" validate:"max=2000"`
	SourceURL           string                   `json:"source_url" validate:"omitempty,url"`
	Page                campaign.ExtractedData   `json:"page"`
	SeriesName          string                   `json:"series_name" validate:"max=200"`
	Tone                string                   `json:"tone" validate:"max=50"`
	Industry            string                   `json:"industry" validate:"max=100"`
	TargetAudience      string                   `json:"target_audience" validate:"max=500"`
	ReferenceLink       string                   `json:"reference_link" validate:"omitempty,url"`
	Model               string                   `json:"model"`
	TokensConsumed      int64                    `json:"tokens_consumed" validate:"gte=0"`
	Items               []campaign.GeneratedItem `json:"items" validate:"required,min=1,max=50,dive"`
	IdempotencyKey      string                   `json:"idempotency_key" validate:"max=128"`
	SessionID           string                   `json:"session_id"`
}

// GenerateRequest asks the generation service for content and materializes it
type GenerateRequest struct {
	OwnerID        string                 `json:"owner_id"`
	Tier           string                 `json:"tier"`
	CampaignID     *uuid.UUID             `json:"campaign_id"`
	CampaignName   string                 `json:"campaign_name" validate:"required_without=CampaignID,max=200"`
	SourceURL      string                 `json:"source_url" validate:"required,url"`
	Page           campaign.ExtractedData `json:"page"`
	Tone           string                 `json:"tone" validate:"max=50"`
	Industry       string                 `json:"industry" validate:"max=100"`
	TargetAudience string                 `json:"target_audience" validate:"max=500"`
	ReferenceLink  string                 `json:"reference_link" validate:"omitempty,url"`
	ItemCount      int                    `json:"item_count" validate:"gte=0,lte=20"`
	IdempotencyKey string                 `json:"idempotency_key" validate:"max=128"`
	SessionID      string                 `json:"session_id"`
}

func (g GenerateRequest) generation() GenerationRequest {
	n := g.ItemCount
	if n == 0 {
		n = DefaultItemCount
	}
	return GenerationRequest{
		SourceURL:      g.SourceURL,
		Page:           g.Page,
		Tone:           g.Tone,
		Industry:       g.Industry,
		TargetAudience: g.TargetAudience,
		ReferenceLink:  g.ReferenceLink,
		ItemCount:      n,
	}
}

func (g GenerateRequest) materialize(resp *GenerationResponse) MaterializeRequest {
	return MaterializeRequest{
		OwnerID:        g.OwnerID,
		Tier:           g.Tier,
		CampaignID:     g.CampaignID,
		CampaignName:   g.CampaignName,
		SourceURL:      g.SourceURL,
		Page:           g.Page,
		Tone:           g.Tone,
		Industry:       g.Industry,
		TargetAudience: g.TargetAudience,
		ReferenceLink:  g.ReferenceLink,
		Model:          resp.Model,
		TokensConsumed: resp.TokensConsumed,
		Items:          resp.Items,
		IdempotencyKey: g.IdempotencyKey,
		SessionID:      g.SessionID,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest checks identity first, then struct tags, then URLs.
// Every failure is a shared validation or authentication error.
func validateRequest(ownerID string, req any, sourceURL string) error {
	if strings.TrimSpace(ownerID) == "" {
		return shared.ErrNotAuthenticated
	}
	if err := validate.Struct(req); err != nil {
		return validationError(err)
	}
	if sourceURL != "" {
		if err := campaign.ValidateSourceURL(sourceURL); err != nil {
			return err
		}
	}
	return nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return shared.WrapDomainError(shared.CodeValidation, "invalid request", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		msgs = append(msgs, field+" failed "+fe.Tag())
	}
	return shared.WrapDomainError(shared.CodeValidation, strings.Join(msgs, "; "), err)
}
