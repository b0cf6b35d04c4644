package tier

import (
	"fmt"
	"strconv"
)

// Limit is a per-period ceiling. Unlimited is distinct from a zero ceiling.
type Limit int64

// Unlimited marks a resource with no ceiling
const Unlimited Limit = -1

// IsUnlimited returns true for the unlimited sentinel
func (l Limit) IsUnlimited() bool {
	return l == Unlimited
}

// String renders the limit for logs and display
func (l Limit) String() string {
	if l.IsUnlimited() {
		return "unlimited"
	}
	return strconv.FormatInt(int64(l), 10)
}

// QuotaTable holds the numeric ceilings for one tier
type QuotaTable struct {
	MonthlyTokens      Limit `json:"monthly_tokens"`
	DailyTokens        Limit `json:"daily_tokens"`
	DailyItems         Limit `json:"daily_items"`
	ItemsPerGeneration Limit `json:"items_per_generation"`
}

func (q QuotaTable) validate() error {
	for name, l := range map[string]Limit{
		"monthly_tokens":       q.MonthlyTokens,
		"daily_tokens":         q.DailyTokens,
		"daily_items":          q.DailyItems,
		"items_per_generation": q.ItemsPerGeneration,
	} {
		if l < 0 && !l.IsUnlimited() {
			return fmt.Errorf("%s must be >= 0 or unlimited, got %d", name, l)
		}
	}
	return nil
}

// UnlimitedQuota has no ceiling on any resource
func UnlimitedQuota() QuotaTable {
	return QuotaTable{
		MonthlyTokens:      Unlimited,
		DailyTokens:        Unlimited,
		DailyItems:         Unlimited,
		ItemsPerGeneration: Unlimited,
	}
}

// Table maps every canonical tier to its quotas
type Table map[Tier]QuotaTable

// DefaultTable returns the built-in quota table
func DefaultTable() Table {
	return Table{
		Free: {
			MonthlyTokens:      10000,
			DailyTokens:        500,
			DailyItems:         5,
			ItemsPerGeneration: 3,
		},
		Gold: {
			MonthlyTokens:      100000,
			DailyTokens:        5000,
			DailyItems:         50,
			ItemsPerGeneration: 5,
		},
		Enterprise: {
			MonthlyTokens:      500000,
			DailyTokens:        25000,
			DailyItems:         200,
			ItemsPerGeneration: 10,
		},
		SuperAdmin: UnlimitedQuota(),
	}
}
