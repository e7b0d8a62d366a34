package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	apperrors "github.com/mlanzi/spese-backend/errors"
)

// UploadHandler handles receipt image uploads.
type UploadHandler struct {
	service UploadServiceInterface
	maxSize int64
}

func NewUploadHandler(service UploadServiceInterface, maxSize int64) *UploadHandler {
	return &UploadHandler{service: service, maxSize: maxSize}
}

// Upload accepts a multipart form with an "image" part, stores the normalized
// image and returns its URL along with best-effort OCR data.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		_ = c.Error(apperrors.ValidationFailed("missing file", "request must include an \"image\" form part"))
		return
	}
	if fileHeader.Filename == "" {
		_ = c.Error(apperrors.ValidationFailed("missing file", "the uploaded file has no filename"))
		return
	}
	if fileHeader.Size > h.maxSize {
		_ = c.Error(apperrors.ValidationFailed("file too large", "the uploaded file exceeds the size limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		_ = c.Error(apperrors.InternalServerError("failed to read uploaded file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxSize+1))
	if err != nil {
		_ = c.Error(apperrors.InternalServerError("failed to read uploaded file"))
		return
	}
	if int64(len(data)) > h.maxSize {
		_ = c.Error(apperrors.ValidationFailed("file too large", "the uploaded file exceeds the size limit"))
		return
	}

	result, procErr := h.service.Process(c.Request.Context(), fileHeader.Filename, data)
	if procErr != nil {
		_ = c.Error(procErr)
		return
	}
	respondOK(c, result)
}
