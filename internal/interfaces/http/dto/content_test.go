package dto

import (
	"testing"

	"github.com/contentforge/backend/internal/application/content"
	"github.com/contentforge/backend/internal/domain/campaign"
	"github.com/contentforge/backend/internal/domain/usage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterializeRequest_ToCommand(t *testing.T) {
	req := MaterializeRequest{
		CampaignName: "Acme Launch",
		SourceURL:    "https://acme.example/launch",
		Items:        []campaign.GeneratedItem{{Subject: "Hi", Body: "Hello"}},
	}

	cmd := req.ToCommand("owner-1", "gold", "header-key")
	assert.Equal(t, "owner-1", cmd.OwnerID)
	assert.Equal(t, "gold", cmd.Tier)
	assert.Equal(t, "Acme Launch", cmd.CampaignName)
	assert.Equal(t, "header-key", cmd.IdempotencyKey)
	assert.Len(t, cmd.Items, 1)

	req.IdempotencyKey = "body-key"
	assert.Equal(t, "body-key", req.ToCommand("owner-1", "gold", "header-key").IdempotencyKey)
}

func TestGenerateRequest_ToCommand(t *testing.T) {
	id := uuid.New()
	req := GenerateRequest{CampaignID: &id, SourceURL: "https://acme.example", ItemCount: 4}

	cmd := req.ToCommand("owner-1", "", "")
	assert.Equal(t, &id, cmd.CampaignID)
	assert.Equal(t, 4, cmd.ItemCount)
	assert.Empty(t, cmd.IdempotencyKey)
}

func TestToMaterializeResponse(t *testing.T) {
	assert.Nil(t, ToMaterializeResponse(nil))

	c, err := campaign.NewCampaign("owner-1", "Acme Launch", campaign.Defaults{})
	require.NoError(t, err)
	ev, err := usage.NewEvent("owner-1", &c.ID, usage.FeatureEmailGeneration, 500, 3)
	require.NoError(t, err)

	resp := ToMaterializeResponse(&content.Result{
		Campaign:   c,
		UsageEvent: ev,
		State:      content.StateDone,
		Warnings:   []content.Warning{{Code: content.WarningQuotaAdvisory, Message: "near"}},
	})

	require.NotNil(t, resp)
	assert.Equal(t, "DONE", resp.State)
	assert.Empty(t, resp.FailedAt)
	require.NotNil(t, resp.Campaign)
	assert.Equal(t, "Acme Launch", resp.Campaign.Name)
	assert.Equal(t, []string{"email-marketing", "ai-generated"}, resp.Campaign.Tags)
	assert.Nil(t, resp.Source)
	assert.Nil(t, resp.Series)
	assert.NotNil(t, resp.Items)
	require.NotNil(t, resp.UsageEvent)
	assert.Equal(t, int64(500), resp.UsageEvent.TokensConsumed)
	assert.Len(t, resp.Warnings, 1)
}

func TestToSearchResponse(t *testing.T) {
	empty := ToSearchResponse("acme", nil)
	assert.Equal(t, "acme", empty.Query)
	assert.NotNil(t, empty.Campaigns)
	assert.NotNil(t, empty.Items)

	c, err := campaign.NewCampaign("owner-1", "Acme", campaign.Defaults{})
	require.NoError(t, err)
	resp := ToSearchResponse("acme", &campaign.SearchResult{Campaigns: []campaign.Campaign{*c}})
	require.Len(t, resp.Campaigns, 1)
	assert.Equal(t, c.ID, resp.Campaigns[0].ID)
	assert.Empty(t, resp.Items)
}
