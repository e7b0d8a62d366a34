package handlers

import (
	"github.com/gin-gonic/gin"
	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/types"
)

// TripHandler handles mileage record requests. Create and update go through
// the trip service so the reimbursement is always recomputed from distance
// and rate.
type TripHandler struct {
	store   TripStoreInterface
	service TripServiceInterface
}

func NewTripHandler(store TripStoreInterface, service TripServiceInterface) *TripHandler {
	return &TripHandler{store: store, service: service}
}

func tripFilterFromQuery(c *gin.Context) (types.TripFilter, *apperrors.AppError) {
	f := types.TripFilter{
		DateFrom: c.Query("data_inizio"),
		DateTo:   c.Query("data_fine"),
	}
	var appErr *apperrors.AppError
	if f.VehicleID, appErr = parseOptionalInt64(c, "veicolo_id"); appErr != nil {
		return f, appErr
	}
	if f.CustomerID, appErr = parseOptionalInt64(c, "cliente_id"); appErr != nil {
		return f, appErr
	}
	if f.ProjectID, appErr = parseOptionalInt64(c, "progetto_id"); appErr != nil {
		return f, appErr
	}
	if f.Chargeable, appErr = parseOptionalBool(c, "addebitabile"); appErr != nil {
		return f, appErr
	}
	return f, nil
}

// List returns trips matching the query filters, newest first, with vehicle,
// customer and project details embedded.
func (h *TripHandler) List(c *gin.Context) {
	f, appErr := tripFilterFromQuery(c)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	trips, err := h.store.List(c.Request.Context(), f, "")
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondOK(c, trips)
}

// Create records a new trip with its computed reimbursement.
func (h *TripHandler) Create(c *gin.Context) {
	var req types.TripCreateRequest
	if appErr := bindStrictJSON(c, &req); appErr != nil {
		_ = c.Error(appErr)
		return
	}

	trip, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondCreated(c, trip)
}

// Update applies a partial update to a trip, recomputing the reimbursement
// when distance or rate changes.
func (h *TripHandler) Update(c *gin.Context) {
	id, appErr := parseID(c)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	var req types.TripUpdateRequest
	if appErr := bindStrictJSON(c, &req); appErr != nil {
		_ = c.Error(appErr)
		return
	}

	trip, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondOK(c, trip)
}

// Delete permanently removes a trip.
func (h *TripHandler) Delete(c *gin.Context) {
	id, appErr := parseID(c)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	respondOK(c, gin.H{"id": id})
}
