package dto

import (
	"time"

	appusage "github.com/contentforge/backend/internal/application/usage"
	"github.com/contentforge/backend/internal/domain/usage"
)

// HistoryQuery is the query of GET /usage/history
type HistoryQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// CounterResponse is one daily or monthly usage bucket
type CounterResponse struct {
	Period         string    `json:"period"`
	PeriodStart    time.Time `json:"period_start"`
	TokensUsed     int64     `json:"tokens_used"`
	ItemsProcessed int64     `json:"items_processed"`
}

// UsageHistoryResponse lists recent usage events and past buckets
type UsageHistoryResponse struct {
	Events  []UsageEventResponse `json:"events"`
	Daily   []CounterResponse    `json:"daily"`
	Monthly []CounterResponse    `json:"monthly"`
}

// ToUsageHistoryResponse converts a usage history, never returning nil slices
func ToUsageHistoryResponse(h *appusage.History) UsageHistoryResponse {
	resp := UsageHistoryResponse{
		Events:  []UsageEventResponse{},
		Daily:   toCounterResponses(nil),
		Monthly: toCounterResponses(nil),
	}
	if h == nil {
		return resp
	}
	for i := range h.Events {
		resp.Events = append(resp.Events, *toUsageEventResponse(&h.Events[i]))
	}
	resp.Daily = toCounterResponses(h.Daily)
	resp.Monthly = toCounterResponses(h.Monthly)
	return resp
}

func toCounterResponses(counters []usage.Counter) []CounterResponse {
	out := make([]CounterResponse, 0, len(counters))
	for _, c := range counters {
		out = append(out, CounterResponse{
			Period:         c.Period.String(),
			PeriodStart:    c.PeriodStart,
			TokensUsed:     c.TokensUsed,
			ItemsProcessed: c.ItemsProcessed,
		})
	}
	return out
}
