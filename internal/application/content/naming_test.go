package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeriesName(t *testing.T) {
	assert.Equal(t, "Acme Email Series", SeriesName("https://www.acme.com/launch", "ignored"))
	assert.Equal(t, "Shopify Email Series", SeriesName("https://blog.shopify.com/post", ""))
	assert.Equal(t, "Spring Launch Email Series", SeriesName("", "spring launch"))
	assert.Equal(t, "Email Series", SeriesName("", "  "))
}

func TestSeriesDescription(t *testing.T) {
	assert.Equal(t, "Generated 3 emails from https://acme.com", SeriesDescription(3, "https://acme.com"))
	assert.Equal(t, "Generated 1 emails", SeriesDescription(1, ""))
}

func TestValidationMessageUsesJSONNames(t *testing.T) {
	err := validateRequest("u1", MaterializeRequest{CampaignName: "x"}, "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "items failed required")
}
