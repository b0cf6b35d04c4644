package usage

import "time"

// Period is a counter bucket granularity
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodMonthly Period = "monthly"
)

// Periods returns every tracked period
func Periods() []Period {
	return []Period{PeriodDaily, PeriodMonthly}
}

// IsValid returns true if the period is known
func (p Period) IsValid() bool {
	return p == PeriodDaily || p == PeriodMonthly
}

// String returns the string representation
func (p Period) String() string {
	return string(p)
}

// Start returns the UTC start of the bucket containing at
func (p Period) Start(at time.Time) time.Time {
	at = at.UTC()
	switch p {
	case PeriodMonthly:
		return time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
	}
}

// End returns the exclusive UTC end of the bucket containing at
func (p Period) End(at time.Time) time.Time {
	start := p.Start(at)
	if p == PeriodMonthly {
		return start.AddDate(0, 1, 0)
	}
	return start.AddDate(0, 0, 1)
}
