package services

import (
	"context"
	"testing"

	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTripStore struct {
	mock.Mock
}

func (m *MockTripStore) GetByID(ctx context.Context, id int64) (*types.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Trip), args.Error(1)
}

func (m *MockTripStore) Create(ctx context.Context, trip types.Trip) (*types.Trip, error) {
	args := m.Called(ctx, trip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Trip), args.Error(1)
}

func (m *MockTripStore) Update(ctx context.Context, id int64, req types.TripUpdateRequest) (*types.Trip, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Trip), args.Error(1)
}

var _ TripStoreInterface = (*MockTripStore)(nil)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestComputeReimbursement(t *testing.T) {
	tests := []struct {
		distance string
		rate     string
		want     string
	}{
		{"100", "0.19", "19"},
		{"120.5", "0.19", "22.9"},  // 22.895 rounds half away from zero
		{"33.3", "0.3333", "11.1"}, // 11.09889 intermediate kept exact
		{"0", "0.19", "0"},
	}
	for _, tc := range tests {
		got := ComputeReimbursement(dec(tc.distance), dec(tc.rate))
		assert.Equal(t, tc.want, got.String(), "distance=%s rate=%s", tc.distance, tc.rate)
	}
}

func TestTripCreate_OverridesSuppliedReimbursement(t *testing.T) {
	store := new(MockTripStore)
	svc := NewTripService(store, nil, dec("0.19"))

	store.On("Create", mock.Anything, mock.MatchedBy(func(trip types.Trip) bool {
		return trip.Reimbursement.Equal(dec("19")) && trip.Rate.Equal(dec("0.19"))
	})).Return(&types.Trip{ID: 1}, nil)

	_, err := svc.Create(context.Background(), types.TripCreateRequest{
		Date:          "2025-03-15",
		DistanceKm:    decPtr("100"),
		Reimbursement: decPtr("999.99"),
	})

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestTripCreate_ExplicitRateWins(t *testing.T) {
	store := new(MockTripStore)
	svc := NewTripService(store, nil, dec("0.19"))

	store.On("Create", mock.Anything, mock.MatchedBy(func(trip types.Trip) bool {
		return trip.Rate.Equal(dec("0.45")) && trip.Reimbursement.Equal(dec("45"))
	})).Return(&types.Trip{ID: 1}, nil)

	_, err := svc.Create(context.Background(), types.TripCreateRequest{
		Date:       "2025-03-15",
		DistanceKm: decPtr("100"),
		Rate:       decPtr("0.45"),
	})

	require.NoError(t, err)
	store.AssertExpectations(t)
}

type MockVehicleSource struct {
	mock.Mock
}

func (m *MockVehicleSource) GetByID(ctx context.Context, id int64) (*types.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Vehicle), args.Error(1)
}

var _ VehicleSource = (*MockVehicleSource)(nil)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestTripCreate_UsesVehicleRate(t *testing.T) {
	tests := []struct {
		name     string
		vehicle  types.Vehicle
		wantRate string
	}{
		{
			name:     "aci rate",
			vehicle:  types.Vehicle{ID: 3, ACIRate: decPtr("0.35")},
			wantRate: "0.35",
		},
		{
			name: "custom rate selected",
			vehicle: types.Vehicle{
				ID:            3,
				ACIRate:       decPtr("0.35"),
				CustomRate:    decPtr("0.5"),
				UseCustomRate: true,
			},
			wantRate: "0.5",
		},
		{
			name: "custom rate present but not selected",
			vehicle: types.Vehicle{
				ID:         3,
				ACIRate:    decPtr("0.35"),
				CustomRate: decPtr("0.5"),
			},
			wantRate: "0.35",
		},
		{
			name:     "no vehicle rate falls back to default",
			vehicle:  types.Vehicle{ID: 3},
			wantRate: "0.19",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := new(MockTripStore)
			vehicles := new(MockVehicleSource)
			svc := NewTripService(store, vehicles, dec("0.19"))

			vehicles.On("GetByID", mock.Anything, int64(3)).Return(&tc.vehicle, nil)
			store.On("Create", mock.Anything, mock.MatchedBy(func(trip types.Trip) bool {
				return trip.Rate.Equal(dec(tc.wantRate))
			})).Return(&types.Trip{ID: 1}, nil)

			_, err := svc.Create(context.Background(), types.TripCreateRequest{
				Date:       "2025-03-15",
				VehicleID:  int64Ptr(3),
				DistanceKm: decPtr("100"),
			})

			require.NoError(t, err)
			store.AssertExpectations(t)
			vehicles.AssertExpectations(t)
		})
	}
}

func TestTripCreate_ExplicitRateSkipsVehicleLookup(t *testing.T) {
	store := new(MockTripStore)
	vehicles := new(MockVehicleSource)
	svc := NewTripService(store, vehicles, dec("0.19"))

	store.On("Create", mock.Anything, mock.MatchedBy(func(trip types.Trip) bool {
		return trip.Rate.Equal(dec("0.45"))
	})).Return(&types.Trip{ID: 1}, nil)

	_, err := svc.Create(context.Background(), types.TripCreateRequest{
		Date:       "2025-03-15",
		VehicleID:  int64Ptr(3),
		DistanceKm: decPtr("100"),
		Rate:       decPtr("0.45"),
	})

	require.NoError(t, err)
	vehicles.AssertNotCalled(t, "GetByID")
	store.AssertExpectations(t)
}

func TestTripCreate_UnknownVehicle(t *testing.T) {
	store := new(MockTripStore)
	vehicles := new(MockVehicleSource)
	svc := NewTripService(store, vehicles, dec("0.19"))

	vehicles.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.NotFound("vehicle", 99))

	_, err := svc.Create(context.Background(), types.TripCreateRequest{
		Date:       "2025-03-15",
		VehicleID:  int64Ptr(99),
		DistanceKm: decPtr("100"),
	})

	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.NotFoundError, appErr.Type)
	store.AssertNotCalled(t, "Create")
}

func TestTripCreate_MissingFields(t *testing.T) {
	store := new(MockTripStore)
	svc := NewTripService(store, nil, dec("0.19"))

	_, err := svc.Create(context.Background(), types.TripCreateRequest{Date: "2025-03-15"})

	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ValidationError, appErr.Type)
	store.AssertNotCalled(t, "Create")
}

func TestTripCreate_NegativeDistance(t *testing.T) {
	store := new(MockTripStore)
	svc := NewTripService(store, nil, dec("0.19"))

	_, err := svc.Create(context.Background(), types.TripCreateRequest{
		Date:       "2025-03-15",
		DistanceKm: decPtr("-5"),
	})

	require.Error(t, err)
	store.AssertNotCalled(t, "Create")
}

func TestTripUpdate_RecomputesWhenDistanceChanges(t *testing.T) {
	store := new(MockTripStore)
	svc := NewTripService(store, nil, dec("0.19"))

	store.On("GetByID", mock.Anything, int64(7)).Return(&types.Trip{
		ID:         7,
		DistanceKm: dec("100"),
		Rate:       dec("0.35"),
	}, nil)
	store.On("Update", mock.Anything, int64(7), mock.MatchedBy(func(req types.TripUpdateRequest) bool {
		// New distance at the stored rate: 200 × 0.35 = 70.00
		return req.Reimbursement != nil && req.Reimbursement.Equal(dec("70"))
	})).Return(&types.Trip{ID: 7}, nil)

	_, err := svc.Update(context.Background(), 7, types.TripUpdateRequest{
		DistanceKm: decPtr("200"),
	})

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestTripUpdate_RecomputeOverridesSuppliedReimbursement(t *testing.T) {
	store := new(MockTripStore)
	svc := NewTripService(store, nil, dec("0.19"))

	store.On("GetByID", mock.Anything, int64(7)).Return(&types.Trip{
		ID:         7,
		DistanceKm: dec("100"),
		Rate:       dec("0.19"),
	}, nil)
	store.On("Update", mock.Anything, int64(7), mock.MatchedBy(func(req types.TripUpdateRequest) bool {
		return req.Reimbursement != nil && req.Reimbursement.Equal(dec("38"))
	})).Return(&types.Trip{ID: 7}, nil)

	_, err := svc.Update(context.Background(), 7, types.TripUpdateRequest{
		DistanceKm:    decPtr("200"),
		Reimbursement: decPtr("1.23"),
	})

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestTripUpdate_PassthroughWhenInputsUntouched(t *testing.T) {
	store := new(MockTripStore)
	svc := NewTripService(store, nil, dec("0.19"))

	origin := "Milano"
	req := types.TripUpdateRequest{Origin: &origin}
	store.On("Update", mock.Anything, int64(7), req).Return(&types.Trip{ID: 7}, nil)

	_, err := svc.Update(context.Background(), 7, req)

	require.NoError(t, err)
	store.AssertNotCalled(t, "GetByID")
	store.AssertExpectations(t)
}

func TestTripUpdate_MissingTrip(t *testing.T) {
	store := new(MockTripStore)
	svc := NewTripService(store, nil, dec("0.19"))

	store.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.NotFound("trip", 99))

	_, err := svc.Update(context.Background(), 99, types.TripUpdateRequest{
		DistanceKm: decPtr("10"),
	})

	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.NotFoundError, appErr.Type)
	store.AssertNotCalled(t, "Update")
}
