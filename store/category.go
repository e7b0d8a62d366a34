package store

import (
	"context"

	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/types"
)

const categoryTable = "categorie"

// CategoryStore manages the categorie collection.
type CategoryStore struct {
	client *Client
}

func NewCategoryStore(client *Client) *CategoryStore {
	return &CategoryStore{client: client}
}

// ListActive returns all active categories.
func (s *CategoryStore) ListActive(ctx context.Context) ([]types.Category, error) {
	q := NewQuery(categoryTable).Eq("attiva", "true")
	categories := []types.Category{}
	if err := s.client.Get(ctx, q, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Create inserts a category and returns the stored row.
func (s *CategoryStore) Create(ctx context.Context, category types.Category) (*types.Category, error) {
	var rows []types.Category
	if err := s.client.Insert(ctx, categoryTable, category, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.InternalServerError("store returned no representation for created category")
	}
	return &rows[0], nil
}
