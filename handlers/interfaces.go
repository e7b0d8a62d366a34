// Package handlers contains the gin HTTP handlers. Each handler depends on a
// narrow interface over its store or service so tests can substitute mocks.
package handlers

import (
	"bytes"
	"context"

	"github.com/mlanzi/spese-backend/types"
)

type CategoryStoreInterface interface {
	ListActive(ctx context.Context) ([]types.Category, error)
	Create(ctx context.Context, category types.Category) (*types.Category, error)
}

type CustomerStoreInterface interface {
	ListActive(ctx context.Context) ([]types.Customer, error)
	GetByID(ctx context.Context, id int64) (*types.Customer, error)
	Create(ctx context.Context, customer types.Customer) (*types.Customer, error)
	Update(ctx context.Context, id int64, req types.CustomerUpdateRequest) (*types.Customer, error)
	Deactivate(ctx context.Context, id int64) error
}

type ProjectStoreInterface interface {
	List(ctx context.Context, customerID *int64) ([]types.Project, error)
	Create(ctx context.Context, project types.Project) (*types.Project, error)
	Update(ctx context.Context, id int64, req types.ProjectUpdateRequest) (*types.Project, error)
}

type VehicleStoreInterface interface {
	ListActive(ctx context.Context) ([]types.Vehicle, error)
	Create(ctx context.Context, vehicle types.Vehicle) (*types.Vehicle, error)
	Update(ctx context.Context, id int64, req types.VehicleUpdateRequest) (*types.Vehicle, error)
	Deactivate(ctx context.Context, id int64) error
}

type ExpenseStoreInterface interface {
	List(ctx context.Context, f types.ExpenseFilter, columns string) ([]types.Expense, error)
	Create(ctx context.Context, expense types.Expense) (*types.Expense, error)
	Update(ctx context.Context, id int64, req types.ExpenseUpdateRequest) (*types.Expense, error)
	Delete(ctx context.Context, id int64) error
}

type TripStoreInterface interface {
	List(ctx context.Context, f types.TripFilter, columns string) ([]types.Trip, error)
	Delete(ctx context.Context, id int64) error
}

type TripServiceInterface interface {
	Create(ctx context.Context, req types.TripCreateRequest) (*types.Trip, error)
	Update(ctx context.Context, id int64, req types.TripUpdateRequest) (*types.Trip, error)
}

type StatsServiceInterface interface {
	Dashboard(ctx context.Context) (*types.DashboardStats, error)
	MonthlySeries(ctx context.Context, year int) ([]types.MonthlyStat, error)
}

type ExportServiceInterface interface {
	Excel(ctx context.Context, req types.ExportRequest) (*bytes.Buffer, string, error)
}

type UploadServiceInterface interface {
	Process(ctx context.Context, filename string, data []byte) (*types.UploadResult, error)
}

type HealthServiceInterface interface {
	Check(ctx context.Context) *types.HealthCheck
}
