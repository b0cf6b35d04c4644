package campaign

import (
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/contentforge/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProcessingStatus tracks page extraction
type ProcessingStatus string

const (
	ProcessingPending    ProcessingStatus = "pending"
	ProcessingProcessing ProcessingStatus = "processing"
	ProcessingCompleted  ProcessingStatus = "completed"
	ProcessingFailed     ProcessingStatus = "failed"
)

// ExtractedData is what the page scan produced
type ExtractedData struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
	Features    []string `json:"features"`
}

// WebpageSource is a scanned URL scoped to one campaign
type WebpageSource struct {
	shared.BaseEntity
	CampaignID       uuid.UUID
	SourceURL        string
	PageTitle        string
	PageDescription  string
	Domain           string
	Benefits         []string
	Features         []string
	ProcessingStatus ProcessingStatus
	ProcessedAt      *time.Time
}

// NewWebpageSource creates a completed source from extracted page data
func NewWebpageSource(campaignID uuid.UUID, rawURL string, data ExtractedData) (*WebpageSource, error) {
	if campaignID == uuid.Nil {
		return nil, shared.NewValidationError("campaign id is required")
	}
	if err := ValidateSourceURL(rawURL); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &WebpageSource{
		BaseEntity:       shared.NewBaseEntity(),
		CampaignID:       campaignID,
		SourceURL:        rawURL,
		PageTitle:        data.Title,
		PageDescription:  data.Description,
		Domain:           ExtractDomain(rawURL),
		Benefits:         nonNil(data.Benefits),
		Features:         nonNil(data.Features),
		ProcessingStatus: ProcessingCompleted,
		ProcessedAt:      &now,
	}, nil
}

// Extracted returns the stored extraction
func (s *WebpageSource) Extracted() ExtractedData {
	return ExtractedData{
		Title:       s.PageTitle,
		Description: s.PageDescription,
		Benefits:    s.Benefits,
		Features:    s.Features,
	}
}

// ValidateSourceURL accepts absolute http(s) URLs with a host
func ValidateSourceURL(rawURL string) error {
	u, err := url.ParseRequestURI(strings.TrimSpace(rawURL))
	if err != nil {
		return shared.NewValidationError("malformed source URL: " + rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return shared.NewValidationError("source URL must use http or https")
	}
	if u.Hostname() == "" {
		return shared.NewValidationError("source URL must include a host")
	}
	return nil
}

// ExtractDomain returns the second-level label of the URL host,
// e.g. "acme" for https://www.acme.co/launch. Unparseable input is returned as is.
func ExtractDomain(rawURL string) string {
	host := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = u.Hostname()
	} else if h, _, err := net.SplitHostPort(rawURL); err == nil {
		host = h
	}
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	if net.ParseIP(host) != nil {
		return host
	}
	labels := strings.Split(host, ".")
	if len(labels) >= 2 {
		return labels[len(labels)-2]
	}
	return host
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
