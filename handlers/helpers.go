package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/types"
)

// bindStrictJSON decodes the request body into dest, rejecting unknown
// fields. Silently dropping misspelled field names turns typos into
// hard-to-find data bugs, so they are a 400 instead.
func bindStrictJSON(c *gin.Context, dest interface{}) *apperrors.AppError {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return apperrors.ValidationFailed("invalid request body", err.Error())
	}
	return nil
}

// parseID parses the :id path parameter as a positive integer.
func parseID(c *gin.Context) (int64, *apperrors.AppError) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ValidationFailed("invalid id", "id must be a positive integer")
	}
	return id, nil
}

// parseOptionalInt64 parses an optional integer query parameter, returning
// nil when absent.
func parseOptionalInt64(c *gin.Context, name string) (*int64, *apperrors.AppError) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperrors.ValidationFailed("invalid query parameter", name+" must be an integer")
	}
	return &v, nil
}

// parseOptionalBool parses an optional boolean query parameter, returning
// nil when absent.
func parseOptionalBool(c *gin.Context, name string) (*bool, *apperrors.AppError) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperrors.ValidationFailed("invalid query parameter", name+" must be true or false")
	}
	return &v, nil
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, types.Success(data))
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, types.Success(data))
}
