package usage

import (
	"context"
	"time"

	"github.com/contentforge/backend/internal/domain/tier"
	"github.com/contentforge/backend/internal/domain/usage"
	"go.uber.org/zap"
)

// QuotaStatus is an owner's tier, limits and current consumption
type QuotaStatus struct {
	OwnerID     string          `json:"owner_id"`
	Tier        tier.Tier       `json:"tier"`
	DisplayName string          `json:"display_name"`
	Color       string          `json:"color"`
	Limits      tier.QuotaTable `json:"limits"`
	Features    []tier.Feature  `json:"features"`
	Usage       usage.Snapshot  `json:"usage"`
	Report      usage.Report    `json:"report"`
	UpgradeTo   *tier.Tier      `json:"upgrade_to,omitempty"`
	AsOf        time.Time       `json:"as_of"`
}

// NearLimit returns true if any resource is near its limit
func (s *QuotaStatus) NearLimit() bool {
	return s.Report.Overall == usage.StatusNearLimit
}

// AtLimit returns true if any resource is at or over its limit
func (s *QuotaStatus) AtLimit() bool {
	return s.Report.Overall == usage.StatusAtLimit
}

// ExceedsPerGeneration returns true if n items is over the tier's per-generation cap
func (s *QuotaStatus) ExceedsPerGeneration(n int) bool {
	limit := s.Limits.ItemsPerGeneration
	return !limit.IsUnlimited() && int64(n) > int64(limit)
}

// QuotaService evaluates current consumption against tier limits.
// It never blocks anything; callers decide what to do with the status.
type QuotaService struct {
	policy   *tier.Policy
	counters usage.CounterRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewQuotaService creates a QuotaService; a nil policy uses the default table
func NewQuotaService(policy *tier.Policy, counters usage.CounterRepository, logger *zap.Logger) *QuotaService {
	if policy == nil {
		policy = tier.DefaultPolicy()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuotaService{
		policy:   policy,
		counters: counters,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Policy returns the tier policy in use
func (s *QuotaService) Policy() *tier.Policy {
	return s.policy
}

// Status resolves the raw tier identifier and evaluates the owner's counters
func (s *QuotaService) Status(ctx context.Context, ownerID, rawTier string) (*QuotaStatus, error) {
	t, limits, features := s.policy.Resolve(rawTier)
	now := s.now()

	snapshot, err := s.counters.Snapshot(ctx, ownerID, now)
	if err != nil {
		return nil, err
	}

	status := &QuotaStatus{
		OwnerID:     ownerID,
		Tier:        t,
		DisplayName: t.DisplayName(),
		Color:       t.Color(),
		Limits:      limits,
		Features:    features.Enabled(),
		Usage:       snapshot,
		Report:      usage.Evaluate(snapshot, limits),
		AsOf:        now,
	}
	if next, ok := t.UpgradeSuggestion(); ok {
		status.UpgradeTo = &next
	}

	if status.Report.Overall != usage.StatusOK {
		s.logger.Info("Owner approaching quota",
			zap.String("owner_id", ownerID),
			zap.String("tier", t.String()),
			zap.String("status", string(status.Report.Overall)))
	}
	return status, nil
}
