package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	apperrors "github.com/mlanzi/spese-backend/errors"
)

// StatsHandler handles dashboard and monthly report requests.
type StatsHandler struct {
	service StatsServiceInterface
}

func NewStatsHandler(service StatsServiceInterface) *StatsHandler {
	return &StatsHandler{service: service}
}

// Dashboard returns the current-month totals and category breakdown.
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondOK(c, stats)
}

// Monthly returns the 12-month series for ?anno=YYYY, defaulting to the
// current year.
func (h *StatsHandler) Monthly(c *gin.Context) {
	year := time.Now().Year()
	if raw := c.Query("anno"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 2000 || parsed > 2100 {
			_ = c.Error(apperrors.ValidationFailed("invalid query parameter", "anno must be a four-digit year"))
			return
		}
		year = parsed
	}

	stats, err := h.service.MonthlySeries(c.Request.Context(), year)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondOK(c, stats)
}
