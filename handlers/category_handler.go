package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/types"
)

// CategoryHandler handles expense category requests.
type CategoryHandler struct {
	store CategoryStoreInterface
}

func NewCategoryHandler(store CategoryStoreInterface) *CategoryHandler {
	return &CategoryHandler{store: store}
}

// List returns all active categories.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.store.ListActive(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondOK(c, categories)
}

// Create adds a new category. Name is required; a missing attiva flag
// defaults to true.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req types.CategoryCreateRequest
	if appErr := bindStrictJSON(c, &req); appErr != nil {
		_ = c.Error(appErr)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		_ = c.Error(apperrors.ValidationFailed("missing required field", "nome is required"))
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	category, err := h.store.Create(c.Request.Context(), types.Category{
		Name:   req.Name,
		Color:  req.Color,
		Active: active,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondCreated(c, category)
}
