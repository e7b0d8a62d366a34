package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/types"
)

// VehicleHandler handles vehicle requests. Deleting a vehicle is a soft
// delete, like customers.
type VehicleHandler struct {
	store VehicleStoreInterface
}

func NewVehicleHandler(store VehicleStoreInterface) *VehicleHandler {
	return &VehicleHandler{store: store}
}

// List returns all active vehicles ordered by plate.
func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.store.ListActive(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondOK(c, vehicles)
}

// Create adds a new vehicle. Plate is required.
func (h *VehicleHandler) Create(c *gin.Context) {
	var req types.VehicleCreateRequest
	if appErr := bindStrictJSON(c, &req); appErr != nil {
		_ = c.Error(appErr)
		return
	}
	if strings.TrimSpace(req.Plate) == "" {
		_ = c.Error(apperrors.ValidationFailed("missing required field", "targa is required"))
		return
	}

	vehicle := types.Vehicle{
		Plate:      req.Plate,
		Year:       req.Year,
		ACIRate:    req.ACIRate,
		CustomRate: req.CustomRate,
		Active:     true,
	}
	if req.Make != nil {
		vehicle.Make = *req.Make
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.UseCustomRate != nil {
		vehicle.UseCustomRate = *req.UseCustomRate
	}

	created, err := h.store.Create(c.Request.Context(), vehicle)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondCreated(c, created)
}

// Update applies a partial update to a vehicle.
func (h *VehicleHandler) Update(c *gin.Context) {
	id, appErr := parseID(c)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	var req types.VehicleUpdateRequest
	if appErr := bindStrictJSON(c, &req); appErr != nil {
		_ = c.Error(appErr)
		return
	}

	vehicle, err := h.store.Update(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondOK(c, vehicle)
}

// Delete soft-deletes a vehicle by setting attivo=false.
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, appErr := parseID(c)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	if err := h.store.Deactivate(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	respondOK(c, gin.H{"id": id, "attivo": false})
}
