package campaign

import (
	"strings"

	"github.com/contentforge/backend/internal/domain/shared"
)

// Status is the lifecycle state of a campaign
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

// IsValid returns true if the status is known
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// String returns the string representation
func (s Status) String() string {
	return string(s)
}

// Campaign groups related generated content for one owner
type Campaign struct {
	shared.BaseEntity
	OwnerID     string
	Name        string
	Description string
	Industry    string
	Tone        string
	Status      Status
	Tags        []string
}

// Defaults are applied when a campaign is created implicitly
type Defaults struct {
	Description string
	Industry    string
	Tone        string
	Status      Status
	Tags        []string
}

// DefaultDefaults returns the values used for campaigns created by the orchestrator
func DefaultDefaults() Defaults {
	return Defaults{
		Industry: "general",
		Tone:     "professional",
		Status:   StatusActive,
		Tags:     []string{"email-marketing", "ai-generated"},
	}
}

// merged fills zero fields from DefaultDefaults
func (d Defaults) merged() Defaults {
	base := DefaultDefaults()
	if d.Industry == "" {
		d.Industry = base.Industry
	}
	if d.Tone == "" {
		d.Tone = base.Tone
	}
	if d.Status == "" {
		d.Status = base.Status
	}
	if d.Tags == nil {
		d.Tags = base.Tags
	}
	return d
}

// NewCampaign creates a campaign; the name is kept exactly as given
func NewCampaign(ownerID, name string, defaults Defaults) (*Campaign, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, shared.ErrNotAuthenticated
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("campaign name is required")
	}
	if len(name) > 200 {
		return nil, shared.NewValidationError("campaign name cannot exceed 200 characters")
	}
	d := defaults.merged()
	if !d.Status.IsValid() {
		return nil, shared.NewValidationError("invalid campaign status: " + string(d.Status))
	}

	tags := make([]string, len(d.Tags))
	copy(tags, d.Tags)

	return &Campaign{
		BaseEntity:  shared.NewBaseEntity(),
		OwnerID:     ownerID,
		Name:        name,
		Description: d.Description,
		Industry:    d.Industry,
		Tone:        d.Tone,
		Status:      d.Status,
		Tags:        tags,
	}, nil
}

// SetStatus moves the campaign to another lifecycle state
func (c *Campaign) SetStatus(s Status) error {
	if !s.IsValid() {
		return shared.NewValidationError("invalid campaign status: " + string(s))
	}
	c.Status = s
	c.Touch()
	return nil
}

// OwnedBy returns true if ownerID owns the campaign
func (c *Campaign) OwnedBy(ownerID string) bool {
	return c.OwnerID == ownerID
}
