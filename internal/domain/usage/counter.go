package usage

import (
	"time"

	"github.com/contentforge/backend/internal/domain/shared"
)

// Counter is one owner's consumption within one period bucket
type Counter struct {
	OwnerID        string
	Period         Period
	PeriodStart    time.Time
	TokensUsed     int64
	ItemsProcessed int64
	UpdatedAt      time.Time
}

// Delta is an amount to add to counters
type Delta struct {
	Tokens int64
	Items  int64
}

// Validate rejects deltas that would decrease a counter
func (d Delta) Validate() error {
	if d.Tokens < 0 || d.Items < 0 {
		return shared.NewValidationError("usage delta cannot be negative")
	}
	return nil
}

// IsZero returns true if the delta adds nothing
func (d Delta) IsZero() bool {
	return d.Tokens == 0 && d.Items == 0
}

// Snapshot is an owner's current-period counters
type Snapshot struct {
	DailyTokens   int64 `json:"daily_tokens"`
	MonthlyTokens int64 `json:"monthly_tokens"`
	DailyItems    int64 `json:"daily_items"`
	MonthlyItems  int64 `json:"monthly_items"`
}

// SnapshotFromCounters folds period counters into a snapshot
func SnapshotFromCounters(counters []Counter) Snapshot {
	var s Snapshot
	for _, c := range counters {
		switch c.Period {
		case PeriodDaily:
			s.DailyTokens += c.TokensUsed
			s.DailyItems += c.ItemsProcessed
		case PeriodMonthly:
			s.MonthlyTokens += c.TokensUsed
			s.MonthlyItems += c.ItemsProcessed
		}
	}
	return s
}
