package handler

import (
	"context"

	appusage "github.com/contentforge/backend/internal/application/usage"
	"github.com/contentforge/backend/internal/interfaces/http/dto"
	"github.com/contentforge/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// QuotaReader reports an owner's tier limits and consumption
type QuotaReader interface {
	Status(ctx context.Context, ownerID, rawTier string) (*appusage.QuotaStatus, error)
}

// HistoryReader lists an owner's past consumption
type HistoryReader interface {
	History(ctx context.Context, ownerID string, limit int) (*appusage.History, error)
}

// defaultHistoryLimit applies when the query names no limit
const defaultHistoryLimit = 30

// UsageHandler serves quota information and usage history
type UsageHandler struct {
	BaseHandler
	quotas  QuotaReader
	history HistoryReader
}

// NewUsageHandler creates a UsageHandler
func NewUsageHandler(quotas QuotaReader, history HistoryReader) *UsageHandler {
	return &UsageHandler{quotas: quotas, history: history}
}

// Quota godoc
// @Summary Quota status
// @Description Tier limits, current consumption and enabled features. The tier comes from the verified token, never from the request.
// @Tags usage
// @Produce json
// @Success 200 {object} dto.Response{data=appusage.QuotaStatus}
// @Failure 401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 500 {object} dto.Response{error=dto.ErrorInfo}
// @Security BearerAuth
// @Router /api/v1/usage/quota [get]
func (h *UsageHandler) Quota(c *gin.Context) {
	owner, rawTier, ok := h.getOwner(c)
	if !ok {
		return
	}

	status, err := h.quotas.Status(c.Request.Context(), owner, rawTier)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, status)
}

// History godoc
// @Summary Usage history
// @Description The caller's newest usage events with past daily and monthly buckets
// @Tags usage
// @Produce json
// @Param limit query int false "Maximum rows per list (1-500, default 30)"
// @Success 200 {object} dto.Response{data=dto.UsageHistoryResponse}
// @Failure 400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 500 {object} dto.Response{error=dto.ErrorInfo}
// @Security BearerAuth
// @Router /api/v1/usage/history [get]
func (h *UsageHandler) History(c *gin.Context) {
	owner, _, ok := h.getOwner(c)
	if !ok {
		return
	}

	var q dto.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	if q.Limit == 0 {
		q.Limit = defaultHistoryLimit
	}

	history, err := h.history.History(c.Request.Context(), owner, q.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToUsageHistoryResponse(history))
}
