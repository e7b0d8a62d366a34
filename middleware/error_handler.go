package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/logger"
)

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Type    string `json:"type"`
	Code    string `json:"code"`
	Detail  string `json:"detail,omitempty"`
}

// ErrorHandler converts errors attached to the gin context into the error
// envelope. Handlers call c.Error(...) and return; this middleware owns the
// response shape so every endpoint fails identically.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		log := logger.GetLogger()

		if appError, ok := err.(*apperrors.AppError); ok {
			status := appError.GetHTTPStatus()

			if status >= 500 {
				log.Errorw("Request failed",
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"type", appError.Type,
					"error", appError.Message,
					"detail", appError.Detail,
				)
			} else {
				log.Warnw("Request rejected",
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"type", appError.Type,
					"error", appError.Message,
				)
			}

			c.JSON(status, ErrorResponse{
				Success: false,
				Error:   appError.Message,
				Type:    string(appError.Type),
				Code:    strconv.Itoa(status),
				Detail:  appError.Detail,
			})
			return
		}

		if c.Errors.Last().Type == gin.ErrorTypeBind {
			log.Warnw("Request binding failed",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error", err,
			)
			c.JSON(400, ErrorResponse{
				Success: false,
				Error:   "invalid request body",
				Type:    string(apperrors.ValidationError),
				Code:    "400",
				Detail:  err.Error(),
			})
			return
		}

		log.Errorw("Unexpected error",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err,
		)
		c.JSON(500, ErrorResponse{
			Success: false,
			Error:   "internal server error",
			Type:    string(apperrors.ServerError),
			Code:    "500",
		})
	}
}
