package store

import (
	"context"
	"strconv"

	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/types"
)

const (
	tripTable = "chilometriche"
	// TripEmbeds is the join expansion used for list and export queries.
	TripEmbeds = "*,veicoli(targa,marca,modello),clienti(nome),progetti(nome,codice)"
)

// TripStore manages the chilometriche collection.
type TripStore struct {
	client *Client
}

func NewTripStore(client *Client) *TripStore {
	return &TripStore{client: client}
}

func applyTripFilter(q Query, f types.TripFilter) Query {
	if f.DateFrom != "" {
		q = q.Gte("data_viaggio", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Lte("data_viaggio", f.DateTo)
	}
	if f.VehicleID != nil {
		q = q.Eq("veicolo_id", strconv.FormatInt(*f.VehicleID, 10))
	}
	if f.CustomerID != nil {
		q = q.Eq("cliente_id", strconv.FormatInt(*f.CustomerID, 10))
	}
	if f.ProjectID != nil {
		q = q.Eq("progetto_id", strconv.FormatInt(*f.ProjectID, 10))
	}
	if f.Chargeable != nil {
		q = q.Eq("addebitabile", strconv.FormatBool(*f.Chargeable))
	}
	return q
}

// List returns trips matching the filter, newest first. columns narrows the
// select; the empty string selects everything with join expansion.
func (s *TripStore) List(ctx context.Context, f types.TripFilter, columns string) ([]types.Trip, error) {
	if columns == "" {
		columns = TripEmbeds
	}
	q := applyTripFilter(NewQuery(tripTable).Select(columns), f).Order("data_viaggio", true)
	trips := []types.Trip{}
	if err := s.client.Get(ctx, q, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// GetByID returns one trip. Used for the reimbursement recompute on partial
// updates.
func (s *TripStore) GetByID(ctx context.Context, id int64) (*types.Trip, error) {
	q := NewQuery(tripTable).Eq("id", strconv.FormatInt(id, 10)).One()
	var trip types.Trip
	if err := s.client.Get(ctx, q, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// Create inserts a trip and returns the stored row.
func (s *TripStore) Create(ctx context.Context, trip types.Trip) (*types.Trip, error) {
	var rows []types.Trip
	if err := s.client.Insert(ctx, tripTable, trip, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.InternalServerError("store returned no representation for created trip")
	}
	return &rows[0], nil
}

// Update patches the fields present in req and returns the updated row.
func (s *TripStore) Update(ctx context.Context, id int64, req types.TripUpdateRequest) (*types.Trip, error) {
	var rows []types.Trip
	if err := s.client.Update(ctx, tripTable, id, req, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.NotFound("trip", id)
	}
	return &rows[0], nil
}

// Delete removes a trip.
func (s *TripStore) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, tripTable, id)
}
