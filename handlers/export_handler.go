package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mlanzi/spese-backend/types"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles spreadsheet export requests.
type ExportHandler struct {
	service ExportServiceInterface
}

func NewExportHandler(service ExportServiceInterface) *ExportHandler {
	return &ExportHandler{service: service}
}

// Excel streams the requested records as an .xlsx attachment.
func (h *ExportHandler) Excel(c *gin.Context) {
	var req types.ExportRequest
	if appErr := bindStrictJSON(c, &req); appErr != nil {
		_ = c.Error(appErr)
		return
	}

	buf, filename, err := h.service.Excel(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
