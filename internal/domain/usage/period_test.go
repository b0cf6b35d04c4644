package usage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriod_Start(t *testing.T) {
	at := time.Date(2024, time.March, 15, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), PeriodDaily.Start(at))
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), PeriodMonthly.Start(at))
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), PeriodMonthly.End(at))
	assert.Equal(t, time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC), PeriodDaily.End(at))
}

func TestPeriod_StartUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	// 2024-03-01 05:00 in UTC+9 is still Feb 29 in UTC
	at := time.Date(2024, time.March, 1, 5, 0, 0, 0, loc)

	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), PeriodDaily.Start(at))
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), PeriodMonthly.Start(at))
}

func TestSnapshotFromCounters(t *testing.T) {
	s := SnapshotFromCounters([]Counter{
		{Period: PeriodDaily, TokensUsed: 120, ItemsProcessed: 3},
		{Period: PeriodMonthly, TokensUsed: 900, ItemsProcessed: 12},
	})

	assert.Equal(t, Snapshot{DailyTokens: 120, DailyItems: 3, MonthlyTokens: 900, MonthlyItems: 12}, s)
}

func TestDelta_Validate(t *testing.T) {
	assert.NoError(t, Delta{Tokens: 10}.Validate())
	assert.Error(t, Delta{Tokens: -1}.Validate())
	assert.Error(t, Delta{Items: -1}.Validate())
	assert.True(t, Delta{}.IsZero())
}
