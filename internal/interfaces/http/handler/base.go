package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/contentforge/backend/internal/domain/campaign"
	"github.com/contentforge/backend/internal/domain/shared"
	"github.com/contentforge/backend/internal/interfaces/http/dto"
	"github.com/contentforge/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getOwner returns the authenticated owner and raw tier, answering 401 when absent
func (h *BaseHandler) getOwner(c *gin.Context) (string, string, bool) {
	owner := middleware.GetOwnerID(c)
	if owner == "" {
		h.Unauthorized(c, "Authentication required")
		return "", "", false
	}
	return owner, middleware.GetOwnerTier(c), true
}

// parseID reads the :id path parameter, answering 400 when it is not a UUID
func (h *BaseHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		middleware.HandleBindError(c, err)
		return uuid.Nil, false
	}
	return uuid.MustParse(req.ID), true
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, middleware.GetRequestID(c)))
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// errorCode resolves the API code and message for err.
// Unknown errors become ERR_INTERNAL without leaking their text.
func errorCode(err error) (string, string) {
	var partial *campaign.PartialPersistenceError
	if errors.As(err, &partial) {
		return dto.ErrCodePartialPersistence, fmt.Sprintf("%d of %d items written, failed at item %d",
			partial.Written, partial.Declared, partial.FailedAt)
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return dto.NormalizeErrorCode(domainErr.Code), domainErr.Message
	}
	return dto.ErrCodeInternal, "An unexpected error occurred"
}

// HandleError converts domain errors to HTTP responses
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)

	code, message := errorCode(err)
	h.Error(c, dto.GetHTTPStatus(code), code, message)
}

// HandlePartial answers like HandleError but keeps data in the body, so a
// caller sees which entities were persisted before the failure.
func (h *BaseHandler) HandlePartial(c *gin.Context, data any, err error) {
	_ = c.Error(err)

	code, message := errorCode(err)
	c.JSON(dto.GetHTTPStatus(code), dto.NewPartialResponse(data, code, message, middleware.GetRequestID(c)))
}
