package store

import (
	"context"
	"strconv"

	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/types"
)

const customerTable = "clienti"

// CustomerStore manages the clienti collection. Customers are never removed:
// deletion flips attivo to false and the row stays retrievable by id.
type CustomerStore struct {
	client *Client
}

func NewCustomerStore(client *Client) *CustomerStore {
	return &CustomerStore{client: client}
}

// ListActive returns active customers ordered by name.
func (s *CustomerStore) ListActive(ctx context.Context) ([]types.Customer, error) {
	q := NewQuery(customerTable).Eq("attivo", "true").Order("nome", false)
	customers := []types.Customer{}
	if err := s.client.Get(ctx, q, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// GetByID returns one customer regardless of its active flag.
func (s *CustomerStore) GetByID(ctx context.Context, id int64) (*types.Customer, error) {
	q := NewQuery(customerTable).Eq("id", strconv.FormatInt(id, 10)).One()
	var customer types.Customer
	if err := s.client.Get(ctx, q, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Create inserts a customer and returns the stored row.
func (s *CustomerStore) Create(ctx context.Context, customer types.Customer) (*types.Customer, error) {
	var rows []types.Customer
	if err := s.client.Insert(ctx, customerTable, customer, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.InternalServerError("store returned no representation for created customer")
	}
	return &rows[0], nil
}

// Update patches the fields present in req and returns the updated row.
func (s *CustomerStore) Update(ctx context.Context, id int64, req types.CustomerUpdateRequest) (*types.Customer, error) {
	var rows []types.Customer
	if err := s.client.Update(ctx, customerTable, id, req, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.NotFound("customer", id)
	}
	return &rows[0], nil
}

// Deactivate soft-deletes a customer by clearing its active flag.
func (s *CustomerStore) Deactivate(ctx context.Context, id int64) error {
	inactive := false
	_, err := s.Update(ctx, id, types.CustomerUpdateRequest{Active: &inactive})
	return err
}
