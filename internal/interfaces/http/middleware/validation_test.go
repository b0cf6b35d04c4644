package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/contentforge/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seriesInput struct {
	Name      string `json:"name" binding:"required,max=10"`
	SourceURL string `json:"source_url" binding:"omitempty,url"`
	Status    string `json:"status" binding:"omitempty,oneof=active paused"`
	Count     int    `json:"count" binding:"gte=0,lte=20"`
}

func bindRouter() *gin.Engine {
	SetupValidator()
	router := gin.New()
	router.Use(RequestID())
	router.POST("/test", func(c *gin.Context) {
		var in seriesInput
		if err := c.ShouldBindJSON(&in); err != nil {
			HandleBindError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})
	return router
}

func postJSON(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleBindError_Validation(t *testing.T) {
	w := postJSON(bindRouter(), `{"source_url":"not a url","status":"deleted","count":30}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	assert.NotEmpty(t, resp.Error.RequestID)

	messages := map[string]string{}
	for _, d := range resp.Error.Details {
		messages[d.Field] = d.Message
	}
	assert.Equal(t, "This field is required", messages["name"])
	assert.Equal(t, "Invalid URL format", messages["source_url"])
	assert.Equal(t, "Must be one of: active paused", messages["status"])
	assert.Equal(t, "Must be less than or equal to 20", messages["count"])
}

func TestHandleBindError_StringLength(t *testing.T) {
	w := postJSON(bindRouter(), `{"name":"a name that is far too long"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Must be at most 10 characters")
}

func TestHandleBindError_MalformedJSON(t *testing.T) {
	w := postJSON(bindRouter(), `{"name":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrCodeInvalidJSON)
}

func TestHandleBindError_Valid(t *testing.T) {
	w := postJSON(bindRouter(), `{"name":"ok","count":3}`)
	assert.Equal(t, http.StatusOK, w.Code)
}
