package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	appusage "github.com/contentforge/backend/internal/application/usage"
	"github.com/contentforge/backend/internal/domain/shared"
	"github.com/contentforge/backend/internal/domain/tier"
	"github.com/contentforge/backend/internal/domain/usage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuotaReader answers Status with a fixed value
type fakeQuotaReader struct {
	status  *appusage.QuotaStatus
	err     error
	rawTier string
}

func (f *fakeQuotaReader) Status(_ context.Context, owner, rawTier string) (*appusage.QuotaStatus, error) {
	f.rawTier = rawTier
	if f.err != nil {
		return nil, f.err
	}
	s := *f.status
	s.OwnerID = owner
	return &s, nil
}

func TestUsageHandler_Quota(t *testing.T) {
	quotas := &fakeQuotaReader{status: &appusage.QuotaStatus{Tier: tier.Gold, DisplayName: "Gold"}}
	h := NewUsageHandler(quotas, &fakeHistoryReader{})
	r := gin.New()
	r.Use(withOwner("owner-1", "GOLD"))
	r.GET("/usage/quota", h.Quota)

	w := serve(r, http.MethodGet, "/usage/quota", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decode(t, w).Data.(map[string]any)
	assert.Equal(t, "owner-1", data["owner_id"])
	assert.Equal(t, "Gold", data["display_name"])
	assert.Equal(t, "GOLD", quotas.rawTier)

	quotas.err = shared.NewPersistenceError("read counters", errors.New("x"))
	w = serve(r, http.MethodGet, "/usage/quota", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// fakeHistoryReader records the requested limit
type fakeHistoryReader struct {
	history *appusage.History
	err     error
	owner   string
	limit   int
}

func (f *fakeHistoryReader) History(_ context.Context, ownerID string, limit int) (*appusage.History, error) {
	f.owner = ownerID
	f.limit = limit
	return f.history, f.err
}

func usageRouter(history HistoryReader, owner string) *gin.Engine {
	h := NewUsageHandler(&fakeQuotaReader{}, history)
	r := gin.New()
	r.Use(withOwner(owner, "gold"))
	r.GET("/usage/history", h.History)
	return r
}

func TestUsageHandler_History(t *testing.T) {
	history := &fakeHistoryReader{history: &appusage.History{
		Events: []usage.Event{{ID: uuid.New(), Feature: usage.FeatureEmailGeneration, TokensConsumed: 400, Success: true}},
		Daily:  []usage.Counter{{Period: usage.PeriodDaily, TokensUsed: 400, ItemsProcessed: 3}},
	}}

	w := serve(usageRouter(history, "owner-1"), http.MethodGet, "/usage/history?limit=5", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "owner-1", history.owner)
	assert.Equal(t, 5, history.limit)

	data := decode(t, w).Data.(map[string]any)
	require.Len(t, data["events"], 1)
	assert.Equal(t, float64(400), data["events"].([]any)[0].(map[string]any)["tokens_consumed"])
	require.Len(t, data["daily"], 1)
	assert.Equal(t, "daily", data["daily"].([]any)[0].(map[string]any)["period"])
	assert.Empty(t, data["monthly"])
}

func TestUsageHandler_History_Errors(t *testing.T) {
	tests := []struct {
		name       string
		owner      string
		query      string
		err        error
		wantStatus int
		wantLimit  int
	}{
		{"default limit", "owner-1", "", nil, http.StatusOK, defaultHistoryLimit},
		{"unauthenticated", "", "", nil, http.StatusUnauthorized, 0},
		{"limit too large", "owner-1", "?limit=501", nil, http.StatusBadRequest, 0},
		{"store failure", "owner-1", "", shared.NewPersistenceError("list usage events", errors.New("x")), http.StatusInternalServerError, defaultHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := &fakeHistoryReader{history: &appusage.History{}, err: tt.err}
			w := serve(usageRouter(history, tt.owner), http.MethodGet, "/usage/history"+tt.query, "")

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantLimit, history.limit)
		})
	}
}
