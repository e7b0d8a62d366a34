package store

import (
	"context"
	"strconv"

	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/types"
)

const (
	expenseTable = "spese"
	// ExpenseEmbeds is the join expansion used for list and export queries.
	ExpenseEmbeds = "*,categorie(nome,colore),clienti(nome),progetti(nome,codice)"
)

// ExpenseStore manages the spese collection. Expense deletion is a genuine
// remove, unlike the soft-deleted customers and vehicles.
type ExpenseStore struct {
	client *Client
}

func NewExpenseStore(client *Client) *ExpenseStore {
	return &ExpenseStore{client: client}
}

func applyExpenseFilter(q Query, f types.ExpenseFilter) Query {
	if f.DateFrom != "" {
		q = q.Gte("data_spesa", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Lte("data_spesa", f.DateTo)
	}
	if f.CustomerID != nil {
		q = q.Eq("cliente_id", strconv.FormatInt(*f.CustomerID, 10))
	}
	if f.ProjectID != nil {
		q = q.Eq("progetto_id", strconv.FormatInt(*f.ProjectID, 10))
	}
	if f.CategoryID != nil {
		q = q.Eq("categoria_id", strconv.FormatInt(*f.CategoryID, 10))
	}
	if f.Chargeable != nil {
		q = q.Eq("addebitabile", strconv.FormatBool(*f.Chargeable))
	}
	if f.Charged != nil {
		q = q.Eq("addebitata", strconv.FormatBool(*f.Charged))
	}
	return q
}

// List returns expenses matching the filter, newest first. columns narrows
// the select; the empty string selects everything with join expansion.
func (s *ExpenseStore) List(ctx context.Context, f types.ExpenseFilter, columns string) ([]types.Expense, error) {
	if columns == "" {
		columns = ExpenseEmbeds
	}
	q := applyExpenseFilter(NewQuery(expenseTable).Select(columns), f).Order("data_spesa", true)
	expenses := []types.Expense{}
	if err := s.client.Get(ctx, q, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// Create inserts an expense and returns the stored row.
func (s *ExpenseStore) Create(ctx context.Context, expense types.Expense) (*types.Expense, error) {
	var rows []types.Expense
	if err := s.client.Insert(ctx, expenseTable, expense, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.InternalServerError("store returned no representation for created expense")
	}
	return &rows[0], nil
}

// Update patches the fields present in req and returns the updated row.
func (s *ExpenseStore) Update(ctx context.Context, id int64, req types.ExpenseUpdateRequest) (*types.Expense, error) {
	var rows []types.Expense
	if err := s.client.Update(ctx, expenseTable, id, req, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.NotFound("expense", id)
	}
	return &rows[0], nil
}

// Delete removes an expense.
func (s *ExpenseStore) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, expenseTable, id)
}
