package handler

import (
	"context"
	"time"

	"github.com/contentforge/backend/internal/application/content"
	"github.com/contentforge/backend/internal/interfaces/http/dto"
	"github.com/contentforge/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContentService turns generated content into persisted campaigns
type ContentService interface {
	Materialize(ctx context.Context, req content.MaterializeRequest) (*content.Result, error)
	ResumeSeries(ctx context.Context, req content.MaterializeRequest, seriesID uuid.UUID) (*content.Result, error)
	GenerateAndMaterialize(ctx context.Context, req content.GenerateRequest, timeout time.Duration) (*content.Result, error)
}

// ContentHandler handles content materialization endpoints
type ContentHandler struct {
	BaseHandler
	service         ContentService
	generateTimeout time.Duration
}

// NewContentHandler creates a ContentHandler. generateTimeout bounds the
// external generation call; zero leaves it to the request context.
func NewContentHandler(service ContentService, generateTimeout time.Duration) *ContentHandler {
	return &ContentHandler{
		service:         service,
		generateTimeout: generateTimeout,
	}
}

// Materialize godoc
// @Summary Materialize generated content
// @Description Persist already generated items as a content series under a new or existing campaign and record the usage they consumed
// @Tags content
// @Accept json
// @Produce json
// @Param request body dto.MaterializeRequest true "Generated content to persist"
// @Param Idempotency-Key header string false "Idempotency key, used when the body carries none"
// @Success 201 {object} dto.Response{data=dto.MaterializeResponse}
// @Failure 400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 429 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 500 {object} dto.Response{data=dto.MaterializeResponse,error=dto.ErrorInfo}
// @Security BearerAuth
// @Router /api/v1/content/materialize [post]
func (h *ContentHandler) Materialize(c *gin.Context) {
	owner, rawTier, ok := h.getOwner(c)
	if !ok {
		return
	}

	var req dto.MaterializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(c, err)
		return
	}

	cmd := req.ToCommand(owner, rawTier, c.GetHeader(dto.IdempotencyKeyHeader))
	result, err := h.service.Materialize(c.Request.Context(), cmd)
	h.respond(c, result, err, h.Created)
}

// Resume godoc
// @Summary Resume a failed materialization
// @Description Finish a series whose materialization stopped part way. Stored items are kept, missing ones are appended and usage is recorded once.
// @Tags content
// @Accept json
// @Produce json
// @Param request body dto.ResumeRequest true "Original materialize body plus the series to finish"
// @Success 200 {object} dto.Response{data=dto.MaterializeResponse}
// @Failure 400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 500 {object} dto.Response{data=dto.MaterializeResponse,error=dto.ErrorInfo}
// @Security BearerAuth
// @Router /api/v1/content/materialize/resume [post]
func (h *ContentHandler) Resume(c *gin.Context) {
	owner, rawTier, ok := h.getOwner(c)
	if !ok {
		return
	}

	var req dto.ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(c, err)
		return
	}

	cmd := req.ToCommand(owner, rawTier, c.GetHeader(dto.IdempotencyKeyHeader))
	result, err := h.service.ResumeSeries(c.Request.Context(), cmd, req.SeriesID)
	h.respond(c, result, err, h.Success)
}

// Generate godoc
// @Summary Generate and materialize content
// @Description Call the text generation service for a scraped page and persist what it returns. Nothing is written when generation fails or times out.
// @Tags content
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "Page to generate content for"
// @Param Idempotency-Key header string false "Idempotency key, used when the body carries none"
// @Success 201 {object} dto.Response{data=dto.MaterializeResponse}
// @Failure 400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 429 {object} dto.Response{error=dto.ErrorInfo}
// @Failure 502 {object} dto.Response{error=dto.ErrorInfo}
// @Security BearerAuth
// @Router /api/v1/content/generate [post]
func (h *ContentHandler) Generate(c *gin.Context) {
	owner, rawTier, ok := h.getOwner(c)
	if !ok {
		return
	}

	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(c, err)
		return
	}

	cmd := req.ToCommand(owner, rawTier, c.GetHeader(dto.IdempotencyKeyHeader))
	result, err := h.service.GenerateAndMaterialize(c.Request.Context(), cmd, h.generateTimeout)
	h.respond(c, result, err, h.Created)
}

// respond answers through ok on success. A failed run that persisted
// something keeps the partial result in the body next to the error.
func (h *ContentHandler) respond(c *gin.Context, result *content.Result, err error, ok func(*gin.Context, any)) {
	if err != nil {
		if result != nil && result.Campaign != nil {
			h.HandlePartial(c, dto.ToMaterializeResponse(result), err)
			return
		}
		h.HandleError(c, err)
		return
	}
	ok(c, dto.ToMaterializeResponse(result))
}
