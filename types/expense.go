package types

import "github.com/shopspring/decimal"

// Expense is a single business expense. Amounts are decimal end to end so
// sums over many records never accumulate binary floating-point drift.
type Expense struct {
	ID          int64           `json:"id,omitempty"`
	Date        string          `json:"data_spesa"`
	Amount      decimal.Decimal `json:"importo"`
	Description string          `json:"descrizione"`
	CategoryID  *int64          `json:"categoria_id,omitempty"`
	CustomerID  *int64          `json:"cliente_id,omitempty"`
	ProjectID   *int64          `json:"progetto_id,omitempty"`
	Chargeable  bool            `json:"addebitabile"`
	Charged     bool            `json:"addebitata"`
	Supplier    *string         `json:"fornitore,omitempty"`
	Note        *string         `json:"note,omitempty"`
	Category    *CategoryRef    `json:"categorie,omitempty"`
	Customer    *CustomerRef    `json:"clienti,omitempty"`
	Project     *ProjectRef     `json:"progetti,omitempty"`
	CreatedAt   string          `json:"created_at,omitempty"`
}

// ExpenseCreateRequest is the body of POST /api/spese. Date, Amount and
// Description are required; their absence is a client error raised before any
// store call.
type ExpenseCreateRequest struct {
	Date        string           `json:"data_spesa"`
	Amount      *decimal.Decimal `json:"importo"`
	Description string           `json:"descrizione"`
	CategoryID  *int64           `json:"categoria_id"`
	CustomerID  *int64           `json:"cliente_id"`
	ProjectID   *int64           `json:"progetto_id"`
	Chargeable  *bool            `json:"addebitabile"`
	Charged     *bool            `json:"addebitata"`
	Supplier    *string          `json:"fornitore"`
	Note        *string          `json:"note"`
}

// ExpenseUpdateRequest is the body of PUT /api/spese/:id.
type ExpenseUpdateRequest struct {
	Date        *string          `json:"data_spesa,omitempty"`
	Amount      *decimal.Decimal `json:"importo,omitempty"`
	Description *string          `json:"descrizione,omitempty"`
	CategoryID  *int64           `json:"categoria_id,omitempty"`
	CustomerID  *int64           `json:"cliente_id,omitempty"`
	ProjectID   *int64           `json:"progetto_id,omitempty"`
	Chargeable  *bool            `json:"addebitabile,omitempty"`
	Charged     *bool            `json:"addebitata,omitempty"`
	Supplier    *string          `json:"fornitore,omitempty"`
	Note        *string          `json:"note,omitempty"`
}

// ExpenseFilter carries the recognized list-query conditions. Zero values
// mean "no condition". DateFrom and DateTo compose: both may apply to
// data_spesa at once.
type ExpenseFilter struct {
	DateFrom   string
	DateTo     string
	CustomerID *int64
	ProjectID  *int64
	CategoryID *int64
	Chargeable *bool
	Charged    *bool
}
