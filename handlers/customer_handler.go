package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/types"
)

// CustomerHandler handles customer requests. Deleting a customer is a soft
// delete: the record survives with attivo=false so historic expenses keep
// their reference.
type CustomerHandler struct {
	store CustomerStoreInterface
}

func NewCustomerHandler(store CustomerStoreInterface) *CustomerHandler {
	return &CustomerHandler{store: store}
}

// List returns all active customers ordered by name.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.store.ListActive(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondOK(c, customers)
}

// Get returns one customer by id, regardless of active state.
func (h *CustomerHandler) Get(c *gin.Context) {
	id, appErr := parseID(c)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	customer, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondOK(c, customer)
}

// Create adds a new customer. Name is required.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req types.CustomerCreateRequest
	if appErr := bindStrictJSON(c, &req); appErr != nil {
		_ = c.Error(appErr)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		_ = c.Error(apperrors.ValidationFailed("missing required field", "nome is required"))
		return
	}

	customer, err := h.store.Create(c.Request.Context(), types.Customer{
		Name:    req.Name,
		TaxID:   req.TaxID,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Active:  true,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondCreated(c, customer)
}

// Update applies a partial update to a customer.
func (h *CustomerHandler) Update(c *gin.Context) {
	id, appErr := parseID(c)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	var req types.CustomerUpdateRequest
	if appErr := bindStrictJSON(c, &req); appErr != nil {
		_ = c.Error(appErr)
		return
	}

	customer, err := h.store.Update(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondOK(c, customer)
}

// Delete soft-deletes a customer by setting attivo=false.
func (h *CustomerHandler) Delete(c *gin.Context) {
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
