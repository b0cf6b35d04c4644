package usage

import (
	"github.com/contentforge/backend/internal/domain/tier"
	"github.com/shopspring/decimal"
)

// Thresholds in percent
const (
	NearLimitPercent = 80
	AtLimitPercent   = 100
)

// Status is the quota signal for one resource or for an owner overall
type Status string

const (
	StatusOK        Status = "ok"
	StatusNearLimit Status = "nearLimit"
	StatusAtLimit   Status = "atLimit"
)

func (s Status) severity() int {
	switch s {
	case StatusAtLimit:
		return 2
	case StatusNearLimit:
		return 1
	}
	return 0
}

// MoreSevere returns the more severe of two statuses
func (s Status) MoreSevere(other Status) Status {
	if other.severity() > s.severity() {
		return other
	}
	return s
}

// PercentUsed returns consumption as a whole percentage in [0, 100].
// An unlimited or zero limit yields 0.
func PercentUsed(counter int64, limit tier.Limit) int {
	if limit.IsUnlimited() || limit <= 0 || counter <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(counter).
		Div(decimal.NewFromInt(int64(limit))).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}
	return int(pct.IntPart())
}

// Remaining returns the allowance left, never below zero.
// Unlimited is returned unchanged.
func Remaining(counter int64, limit tier.Limit) tier.Limit {
	if limit.IsUnlimited() {
		return tier.Unlimited
	}
	left := int64(limit) - counter
	if left < 0 {
		return 0
	}
	return tier.Limit(left)
}

// StatusFor maps a percentage onto a status
func StatusFor(percent int) Status {
	switch {
	case percent >= AtLimitPercent:
		return StatusAtLimit
	case percent >= NearLimitPercent:
		return StatusNearLimit
	}
	return StatusOK
}

// Resource names a tracked quota
type Resource string

const (
	ResourceDailyTokens   Resource = "daily_tokens"
	ResourceMonthlyTokens Resource = "monthly_tokens"
	ResourceDailyItems    Resource = "daily_items"
)

// ResourceUsage is the evaluation of one resource
type ResourceUsage struct {
	Resource  Resource   `json:"resource"`
	Used      int64      `json:"used"`
	Limit     tier.Limit `json:"limit"`
	Remaining tier.Limit `json:"remaining"`
	Percent   int        `json:"percent"`
	Status    Status     `json:"status"`
}

// Unlimited returns true if the resource has no ceiling
func (r ResourceUsage) Unlimited() bool {
	return r.Limit.IsUnlimited()
}

// Report is the per-resource and overall quota status of an owner
type Report struct {
	Resources []ResourceUsage `json:"resources"`
	Overall   Status          `json:"overall"`
}

// Resource returns the usage entry for r
func (rp Report) Resource(r Resource) (ResourceUsage, bool) {
	for _, u := range rp.Resources {
		if u.Resource == r {
			return u, true
		}
	}
	return ResourceUsage{}, false
}

// Breaching returns the resources that are near or at their limit
func (rp Report) Breaching() []ResourceUsage {
	var out []ResourceUsage
	for _, u := range rp.Resources {
		if u.Status != StatusOK {
			out = append(out, u)
		}
	}
	return out
}

func evaluate(r Resource, used int64, limit tier.Limit) ResourceUsage {
	pct := PercentUsed(used, limit)
	return ResourceUsage{
		Resource:  r,
		Used:      used,
		Limit:     limit,
		Remaining: Remaining(used, limit),
		Percent:   pct,
		Status:    StatusFor(pct),
	}
}

// Evaluate computes each resource independently; Overall is the most severe
func Evaluate(s Snapshot, q tier.QuotaTable) Report {
	resources := []ResourceUsage{
		evaluate(ResourceDailyTokens, s.DailyTokens, q.DailyTokens),
		evaluate(ResourceMonthlyTokens, s.MonthlyTokens, q.MonthlyTokens),
		evaluate(ResourceDailyItems, s.DailyItems, q.DailyItems),
	}
	overall := StatusOK
	for _, r := range resources {
		overall = overall.MoreSevere(r.Status)
	}
	return Report{Resources: resources, Overall: overall}
}
