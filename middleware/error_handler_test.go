package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
	gin.SetMode(gin.TestMode)
}

func serveWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(err)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandler_AppErrorEnvelope(t *testing.T) {
	w := serveWithError(t, apperrors.ValidationFailed("missing required field", "nome is required"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "missing required field", resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Type)
	assert.Equal(t, "400", resp.Code)
	assert.Equal(t, "nome is required", resp.Detail)
}

func TestErrorHandler_UpstreamErrorKeepsDetail(t *testing.T) {
	w := serveWithError(t, apperrors.UpstreamStatus("store", 503, "service unavailable"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UPSTREAM_ERROR", resp.Type)
	assert.Contains(t, resp.Detail, "service unavailable")
}

func TestErrorHandler_UnknownErrorIs500(t *testing.T) {
	w := serveWithError(t, errors.New("bare error"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SERVER_ERROR", resp.Type)
	assert.Equal(t, "internal server error", resp.Error)
}

func TestErrorHandler_NoErrorPassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
