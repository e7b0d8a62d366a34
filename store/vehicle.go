package store

import (
	"context"
	"strconv"

	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/types"
)

const vehicleTable = "veicoli"

// VehicleStore manages the veicoli collection. Like customers, vehicles are
// soft-deleted via the attivo flag.
type VehicleStore struct {
	client *Client
}

func NewVehicleStore(client *Client) *VehicleStore {
	return &VehicleStore{client: client}
}

// ListActive returns active vehicles ordered by plate.
func (s *VehicleStore) ListActive(ctx context.Context) ([]types.Vehicle, error) {
	q := NewQuery(vehicleTable).Eq("attivo", "true").Order("targa", false)
	vehicles := []types.Vehicle{}
	if err := s.client.Get(ctx, q, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// GetByID returns one vehicle regardless of its active flag.
func (s *VehicleStore) GetByID(ctx context.Context, id int64) (*types.Vehicle, error) {
	q := NewQuery(vehicleTable).Eq("id", strconv.FormatInt(id, 10)).One()
	var vehicle types.Vehicle
	if err := s.client.Get(ctx, q, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// Create inserts a vehicle and returns the stored row.
func (s *VehicleStore) Create(ctx context.Context, vehicle types.Vehicle) (*types.Vehicle, error) {
	var rows []types.Vehicle
	if err := s.client.Insert(ctx, vehicleTable, vehicle, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.InternalServerError("store returned no representation for created vehicle")
	}
	return &rows[0], nil
}

// Update patches the fields present in req and returns the updated row.
func (s *VehicleStore) Update(ctx context.Context, id int64, req types.VehicleUpdateRequest) (*types.Vehicle, error) {
	var rows []types.Vehicle
	if err := s.client.Update(ctx, vehicleTable, id, req, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.NotFound("vehicle", id)
	}
	return &rows[0], nil
}

// Deactivate soft-deletes a vehicle by clearing its active flag.
func (s *VehicleStore) Deactivate(ctx context.Context, id int64) error {
	inactive := false
	_, err := s.Update(ctx, id, types.VehicleUpdateRequest{Active: &inactive})
	return err
}
