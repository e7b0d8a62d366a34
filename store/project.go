package store

import (
	"context"
	"strconv"

	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/types"
)

const (
	projectTable  = "progetti"
	projectEmbeds = "*,clienti(nome)"
)

// ProjectStore manages the progetti collection.
type ProjectStore struct {
	client *Client
}

func NewProjectStore(client *Client) *ProjectStore {
	return &ProjectStore{client: client}
}

// List returns projects with the owning customer name embedded, newest
// first; customerID narrows to one customer when non-nil.
func (s *ProjectStore) List(ctx context.Context, customerID *int64) ([]types.Project, error) {
	q := NewQuery(projectTable).Select(projectEmbeds).Order("created_at", true)
	if customerID != nil {
		q = q.Eq("cliente_id", strconv.FormatInt(*customerID, 10))
	}
	projects := []types.Project{}
	if err := s.client.Get(ctx, q, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Create inserts a project and returns the stored row.
func (s *ProjectStore) Create(ctx context.Context, project types.Project) (*types.Project, error) {
	var rows []types.Project
	if err := s.client.Insert(ctx, projectTable, project, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.InternalServerError("store returned no representation for created project")
	}
	return &rows[0], nil
}

// Update patches the fields present in req and returns the updated row.
func (s *ProjectStore) Update(ctx context.Context, id int64, req types.ProjectUpdateRequest) (*types.Project, error) {
	var rows []types.Project
	if err := s.client.Update(ctx, projectTable, id, req, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.NotFound("project", id)
	}
	return &rows[0], nil
}
