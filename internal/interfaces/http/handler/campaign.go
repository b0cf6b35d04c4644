package handler

import (
	"context"
	"net/http"

	"github.com/contentforge/backend/internal/domain/campaign"
	"github.com/contentforge/backend/internal/interfaces/http/dto"
	"github.com/contentforge/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CampaignStore is the slice of the campaign repository the API reads and edits
type CampaignStore interface {
	Overview(ctx context.Context, ownerID string) ([]campaign.Summary, error)
	LibraryStats(ctx context.Context, ownerID string) (campaign.LibraryStats, error)
	Search(ctx context.Context, ownerID, query string) (*campaign.SearchResult, error)
	UpdateCampaignStatus(ctx context.Context, id uuid.UUID, ownerID string, status campaign.Status) (*campaign.Campaign, error)
	DeleteCampaign(ctx context.Context, id uuid.UUID, ownerID string) error
}

// CampaignHandler serves the campaign library
type CampaignHandler struct {
	BaseHandler
	store CampaignStore
}

// NewCampaignHandler creates a CampaignHandler
func NewCampaignHandler(store CampaignStore) *CampaignHandler {
	return &CampaignHandler{store: store}
}

// List godoc
// @Summary List campaigns
// @Description List the caller's campaigns with series, output and token totals, newest activity first
// @Tags campaigns
// @Produce json
// @Success 200 {object} dto.Response{data=[]campaign.Summary,meta=dto.Meta}
// @Failure 401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 500 {object} dto.Response{error=dto.ErrorInfo}
// @Security BearerAuth
// @Router /api/v1/campaigns [get]
func (h *CampaignHandler) List(c *gin.Context) {
	owner, _, ok := h.getOwner(c)
	if !ok {
		return
	}

	rows, err := h.store.Overview(c.Request.Context(), owner)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if rows == nil {
		rows = []campaign.Summary{}
	}
	c.JSON(http.StatusOK, dto.NewListResponse(rows, len(rows)))
}

// Stats godoc
// @Summary Campaign library statistics
// @Description Totals over every campaign the caller owns
// @Tags campaigns
// @Produce json
// @Success 200 {object} dto.Response{data=campaign.LibraryStats}
// @Failure 401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 500 {object} dto.Response{error=dto.ErrorInfo}
// @Security BearerAuth
// @Router /api/v1/campaigns/stats [get]
func (h *CampaignHandler) Stats(c *gin.Context) {
	owner, _, ok := h.getOwner(c)
	if !ok {
		return
	}

	stats, err := h.store.LibraryStats(c.Request.Context(), owner)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// Search godoc
// @Summary Search the campaign library
// @Description Case-insensitive search over campaign names and content items
// @Tags campaigns
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} dto.Response{data=dto.SearchResponse}
// @Failure 400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 500 {object} dto.Response{error=dto.ErrorInfo}
// @Security BearerAuth
// @Router /api/v1/campaigns/search [get]
func (h *CampaignHandler) Search(c *gin.Context) {
	owner, _, ok := h.getOwner(c)
	if !ok {
		return
	}

	var q dto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindError(c, err)
		return
	}

	result, err := h.store.Search(c.Request.Context(), owner, q.Q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToSearchResponse(q.Q, result))
}

// UpdateStatus godoc
// @Summary Change a campaign's status
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID" format(uuid)
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.Response{data=dto.CampaignResponse}
// @Failure 400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 404 {object} dto.Response{error=dto.ErrorInfo}
// @Security BearerAuth
// @Router /api/v1/campaigns/{id}/status [patch]
func (h *CampaignHandler) UpdateStatus(c *gin.Context) {
	owner, _, ok := h.getOwner(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(c, err)
		return
	}

	updated, err := h.store.UpdateCampaignStatus(c.Request.Context(), id, owner, campaign.Status(req.Status))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToCampaignResponse(updated))
}

// Delete godoc
// @Summary Delete a campaign
// @Description Delete a campaign with its sources, series and items. Campaigns of other owners answer 404.
// @Tags campaigns
// @Param id path string true "Campaign ID" format(uuid)
// @Success 204
// @Failure 400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 404 {object} dto.Response{error=dto.ErrorInfo}
// @Security BearerAuth
// @Router /api/v1/campaigns/{id} [delete]
func (h *CampaignHandler) Delete(c *gin.Context) {
	owner, _, ok := h.getOwner(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteCampaign(c.Request.Context(), id, owner); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
