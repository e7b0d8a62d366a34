package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/types"
)

// ProjectHandler handles project requests.
type ProjectHandler struct {
	store ProjectStoreInterface
}

func NewProjectHandler(store ProjectStoreInterface) *ProjectHandler {
	return &ProjectHandler{store: store}
}

// List returns all projects, optionally filtered by ?cliente_id=N. The
// customer name is embedded on each row.
func (h *ProjectHandler) List(c *gin.Context) {
	customerID, appErr := parseOptionalInt64(c, "cliente_id")
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	projects, err := h.store.List(c.Request.Context(), customerID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondOK(c, projects)
}

// Create adds a new project. Name is required; status defaults to "attivo".
func (h *ProjectHandler) Create(c *gin.Context) {
	var req types.ProjectCreateRequest
	if appErr := bindStrictJSON(c, &req); appErr != nil {
		_ = c.Error(appErr)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		_ = c.Error(apperrors.ValidationFailed("missing required field", "nome is required"))
		return
	}

	status := "attivo"
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}

	project, err := h.store.Create(c.Request.Context(), types.Project{
		CustomerID: req.CustomerID,
		Code:       req.Code,
		Name:       req.Name,
		StartDate:  req.StartDate,
		Status:     status,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondCreated(c, project)
}

// Update applies a partial update to a project.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, appErr := parseID(c)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	var req types.ProjectUpdateRequest
	if appErr := bindStrictJSON(c, &req); appErr != nil {
		_ = c.Error(appErr)
		return
	}

	project, err := h.store.Update(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondOK(c, project)
}
