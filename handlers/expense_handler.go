package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/types"
)

// ExpenseHandler handles expense requests.
type ExpenseHandler struct {
	store ExpenseStoreInterface
}

func NewExpenseHandler(store ExpenseStoreInterface) *ExpenseHandler {
	return &ExpenseHandler{store: store}
}

// expenseFilterFromQuery builds the list filter from the recognized query
// parameters. Unrecognized parameters are ignored.
func expenseFilterFromQuery(c *gin.Context) (types.ExpenseFilter, *apperrors.AppError) {
	f := types.ExpenseFilter{
		DateFrom: c.Query("data_inizio"),
		DateTo:   c.Query("data_fine"),
	}
	var appErr *apperrors.AppError
	if f.CustomerID, appErr = parseOptionalInt64(c, "cliente_id"); appErr != nil {
		return f, appErr
	}
	if f.ProjectID, appErr = parseOptionalInt64(c, "progetto_id"); appErr != nil {
		return f, appErr
	}
	if f.CategoryID, appErr = parseOptionalInt64(c, "categoria_id"); appErr != nil {
		return f, appErr
	}
	if f.Chargeable, appErr = parseOptionalBool(c, "addebitabile"); appErr != nil {
		return f, appErr
	}
	if f.Charged, appErr = parseOptionalBool(c, "addebitata"); appErr != nil {
		return f, appErr
	}
	return f, nil
}

// List returns expenses matching the query filters, newest first, with
// category, customer and project names embedded.
func (h *ExpenseHandler) List(c *gin.Context) {
	f, appErr := expenseFilterFromQuery(c)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	expenses, err := h.store.List(c.Request.Context(), f, "")
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondOK(c, expenses)
}

// Create adds a new expense. Date, amount and description are required and
// validated before any store call.
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req types.ExpenseCreateRequest
	if appErr := bindStrictJSON(c, &req); appErr != nil {
		_ = c.Error(appErr)
		return
	}

	var missing []string
	if strings.TrimSpace(req.Date) == "" {
		missing = append(missing, "data_spesa")
	}
	if req.Amount == nil {
		missing = append(missing, "importo")
	}
	if strings.TrimSpace(req.Description) == "" {
		missing = append(missing, "descrizione")
	}
	if len(missing) > 0 {
		_ = c.Error(apperrors.ValidationFailed("missing required fields", strings.Join(missing, ", ")))
		return
	}
	if req.Amount.IsNegative() {
		_ = c.Error(apperrors.ValidationFailed("invalid field", "importo must not be negative"))
		return
	}

	expense := types.Expense{
		Date:        req.Date,
		Amount:      *req.Amount,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		CustomerID:  req.CustomerID,
		ProjectID:   req.ProjectID,
		Supplier:    req.Supplier,
		Note:        req.Note,
	}
	if req.Chargeable != nil {
		expense.Chargeable = *req.Chargeable
	}
	if req.Charged != nil {
		expense.Charged = *req.Charged
	}

	created, err := h.store.Create(c.Request.Context(), expense)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondCreated(c, created)
}

// Update applies a partial update to an expense.
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, appErr := parseID(c)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	var req types.ExpenseUpdateRequest
	if appErr := bindStrictJSON(c, &req); appErr != nil {
		_ = c.Error(appErr)
		return
	}
	if req.Amount != nil && req.Amount.IsNegative() {
		_ = c.Error(apperrors.ValidationFailed("invalid field", "importo must not be negative"))
		return
	}

	expense, err := h.store.Update(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondOK(c, expense)
}

// Delete permanently removes an expense.
func (h *ExpenseHandler) Delete(c *gin.Context) {
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
