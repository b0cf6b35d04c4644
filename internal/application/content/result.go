package content

import (
	"errors"
	"fmt"

	"github.com/contentforge/backend/internal/domain/campaign"
	"github.com/contentforge/backend/internal/domain/shared"
	"github.com/contentforge/backend/internal/domain/usage"
	"github.com/google/uuid"
)

// State is a step of the materialization saga
type State string

const (
	StateStart            State = "START"
	StateCampaignResolved State = "CAMPAIGN_RESOLVED"
	StateSourceResolved   State = "SOURCE_RESOLVED"
	StateSeriesCreated    State = "SERIES_CREATED"
	StateItemsAppended    State = "ITEMS_APPENDED"
	StateUsageRecorded    State = "USAGE_RECORDED"
	StateDone             State = "DONE"
	StateError            State = "ERROR"
)

// Warning codes attached to otherwise successful results
const (
	WarningQuotaAdvisory     = "QUOTA_ADVISORY"
	WarningGenerationCap     = "QUOTA_PER_GENERATION"
	WarningQuotaUnavailable  = "QUOTA_UNAVAILABLE"
	WarningAccountingFailure = shared.CodeAccountingFailure
)

// Warning is a non-fatal condition
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result is everything a materialization run produced.
// On failure State is StateError and FailedAt names the step that did not complete;
// the entities resolved before it are still set and already persisted.
type Result struct {
	Campaign   *campaign.Campaign
	Source     *campaign.WebpageSource
	Series     *campaign.ContentSeries
	Items      []campaign.ContentItem
	UsageEvent *usage.Event
	Warnings   []Warning
	State      State
	FailedAt   State
	Written    int
	// Cause is the error that stopped the run
	Cause error
}

// Failed returns true if the run stopped before DONE
func (r *Result) Failed() bool {
	return r.State == StateError
}

// Resumable returns true if Resume has something left to do: a failed step,
// or usage that was never accounted.
// A run refused as a duplicate never is; the original run owns that key.
func (r *Result) Resumable() bool {
	if r.Duplicate() {
		return false
	}
	if r.FailedAt != "" {
		return true
	}
	return r.State == StateDone && r.Series != nil && r.UsageEvent == nil
}

// Duplicate returns true if the run was refused because its idempotency key
// had already been claimed
func (r *Result) Duplicate() bool {
	return errors.Is(r.Cause, shared.ErrDuplicateRequest)
}

func (r *Result) warn(code, message string) {
	r.Warnings = append(r.Warnings, Warning{Code: code, Message: message})
}

func (r *Result) fail(at State, err error) error {
	r.State = StateError
	r.FailedAt = at
	r.Cause = err
	return &SagaError{FailedAt: at, Err: err}
}

func (r *Result) sourceID() *uuid.UUID {
	if r.Source == nil {
		return nil
	}
	id := r.Source.ID
	return &id
}

// SagaError reports the step at which a materialization stopped
type SagaError struct {
	FailedAt State
	Err      error
}

func (e *SagaError) Error() string {
	return fmt.Sprintf("materialization failed at %s: %v", e.FailedAt, e.Err)
}

func (e *SagaError) Unwrap() error {
	return e.Err
}
