package services

import (
	"context"

	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/types"
	"github.com/shopspring/decimal"
)

// TripStoreInterface is the slice of the trip store used by TripService.
type TripStoreInterface interface {
	GetByID(ctx context.Context, id int64) (*types.Trip, error)
	Create(ctx context.Context, trip types.Trip) (*types.Trip, error)
	Update(ctx context.Context, id int64, req types.TripUpdateRequest) (*types.Trip, error)
}

// VehicleSource resolves a vehicle for the rate fallback on trip creation.
type VehicleSource interface {
	GetByID(ctx context.Context, id int64) (*types.Vehicle, error)
}

// TripService owns the reimbursement invariant: the stored reimbursement is
// always round2(distance × rate), recomputed on create and on any update that
// touches either input.
type TripService struct {
	store       TripStoreInterface
	vehicles    VehicleSource
	defaultRate decimal.Decimal
}

func NewTripService(store TripStoreInterface, vehicles VehicleSource, defaultRate decimal.Decimal) *TripService {
	return &TripService{store: store, vehicles: vehicles, defaultRate: defaultRate}
}

// ComputeReimbursement returns distance × rate rounded half away from zero to
// 2 decimal places.
func ComputeReimbursement(distanceKm, rate decimal.Decimal) decimal.Decimal {
	return distanceKm.Mul(rate).Round(2)
}

// Create validates the request, applies the fallback rate when none is given,
// computes the reimbursement (overriding any caller-supplied value) and
// inserts the trip.
func (s *TripService) Create(ctx context.Context, req types.TripCreateRequest) (*types.Trip, error) {
	if req.Date == "" || req.DistanceKm == nil {
		return nil, apperrors.ValidationFailed("missing required fields", "data_viaggio and km_percorsi are required")
	}
	if req.DistanceKm.IsNegative() {
		return nil, apperrors.ValidationFailed("invalid distance", "km_percorsi cannot be negative")
	}

	if req.Rate != nil && req.Rate.IsNegative() {
		return nil, apperrors.ValidationFailed("invalid rate", "tariffa_applicata cannot be negative")
	}
	rate, err := s.resolveRate(ctx, req)
	if err != nil {
		return nil, err
	}

	chargeable := false
	if req.Chargeable != nil {
		chargeable = *req.Chargeable
	}

	trip := types.Trip{
		Date:          req.Date,
		VehicleID:     req.VehicleID,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DistanceKm:    *req.DistanceKm,
		Rate:          rate,
		Reimbursement: ComputeReimbursement(*req.DistanceKm, rate),
		CustomerID:    req.CustomerID,
		ProjectID:     req.ProjectID,
		Chargeable:    chargeable,
	}
	return s.store.Create(ctx, trip)
}

// resolveRate picks the applied rate: an explicit rate wins, then the rate of
// the referenced vehicle (custom rate when the vehicle says so, ACI rate
// otherwise), then the configured default.
func (s *TripService) resolveRate(ctx context.Context, req types.TripCreateRequest) (decimal.Decimal, error) {
	if req.Rate != nil {
		return *req.Rate, nil
	}
	if req.VehicleID != nil && s.vehicles != nil {
		vehicle, err := s.vehicles.GetByID(ctx, *req.VehicleID)
		if err != nil {
			return decimal.Zero, err
		}
		if r := vehicle.Rate(); r != nil {
			return *r, nil
		}
	}
	return s.defaultRate, nil
}

// Update patches a trip. When distance or rate is present the current row is
// fetched, the inputs are merged and the reimbursement recomputed; a
// caller-supplied reimbursement is overridden in that case.
func (s *TripService) Update(ctx context.Context, id int64, req types.TripUpdateRequest) (*types.Trip, error) {
	if req.DistanceKm != nil && req.DistanceKm.IsNegative() {
		return nil, apperrors.ValidationFailed("invalid distance", "km_percorsi cannot be negative")
	}
	if req.Rate != nil && req.Rate.IsNegative() {
		return nil, apperrors.ValidationFailed("invalid rate", "tariffa_applicata cannot be negative")
	}

	if req.DistanceKm != nil || req.Rate != nil {
		current, err := s.store.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		distance := current.DistanceKm
		if req.DistanceKm != nil {
			distance = *req.DistanceKm
		}
		rate := current.Rate
		if req.Rate != nil {
			rate = *req.Rate
		}
		reimbursement := ComputeReimbursement(distance, rate)
		req.Reimbursement = &reimbursement
	}

	return s.store.Update(ctx, id, req)
}
