package content

import (
	"fmt"
	"strings"

	"github.com/contentforge/backend/internal/domain/campaign"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SeriesName names a series after the source's domain, falling back to the
// campaign name when there is no source: "Acme Email Series".
func SeriesName(sourceURL, fallback string) string {
	base := fallback
	if sourceURL != "" {
		if d := campaign.ExtractDomain(sourceURL); d != "" {
			base = d
		}
	}
	base = strings.TrimSpace(base)
	if base == "" {
		return "Email Series"
	}
	// Casers keep state, so one per call.
	return cases.Title(language.English).String(base) + " Email Series"
}

// SeriesDescription summarizes where a series came from
func SeriesDescription(n int, sourceURL string) string {
	if sourceURL == "" {
		return fmt.Sprintf("Generated %d emails", n)
	}
	return fmt.Sprintf("Generated %d emails from %s", n, sourceURL)
}
