package handlers

import (
	"bytes"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mlanzi/spese-backend/logger"
	"github.com/mlanzi/spese-backend/middleware"
	"github.com/mlanzi/spese-backend/types"
	"github.com/stretchr/testify/mock"
)

func init() {
	logger.IsTest = true
}

// buildRouter wraps a handler in a gin engine with the error handler
// middleware, matching the production setup so c.Error() calls produce the
// correct status and envelope.
func buildRouter(method, path string, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	switch method {
	case http.MethodGet:
		r.GET(path, handler)
	case http.MethodPost:
		r.POST(path, handler)
	case http.MethodPut:
		r.PUT(path, handler)
	case http.MethodDelete:
		r.DELETE(path, handler)
	}
	return r
}

type MockExpenseStore struct {
	mock.Mock
}

func (m *MockExpenseStore) List(ctx context.Context, f types.ExpenseFilter, columns string) ([]types.Expense, error) {
	args := m.Called(ctx, f, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Expense), args.Error(1)
}

func (m *MockExpenseStore) Create(ctx context.Context, expense types.Expense) (*types.Expense, error) {
	args := m.Called(ctx, expense)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Expense), args.Error(1)
}

func (m *MockExpenseStore) Update(ctx context.Context, id int64, req types.ExpenseUpdateRequest) (*types.Expense, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Expense), args.Error(1)
}

func (m *MockExpenseStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ ExpenseStoreInterface = (*MockExpenseStore)(nil)

type MockCustomerStore struct {
	mock.Mock
}

func (m *MockCustomerStore) ListActive(ctx context.Context) ([]types.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Customer), args.Error(1)
}

func (m *MockCustomerStore) GetByID(ctx context.Context, id int64) (*types.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Customer), args.Error(1)
}

func (m *MockCustomerStore) Create(ctx context.Context, customer types.Customer) (*types.Customer, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Customer), args.Error(1)
}

func (m *MockCustomerStore) Update(ctx context.Context, id int64, req types.CustomerUpdateRequest) (*types.Customer, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Customer), args.Error(1)
}

func (m *MockCustomerStore) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ CustomerStoreInterface = (*MockCustomerStore)(nil)

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Process(ctx context.Context, filename string, data []byte) (*types.UploadResult, error) {
	args := m.Called(ctx, filename, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UploadResult), args.Error(1)
}

var _ UploadServiceInterface = (*MockUploadService)(nil)

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Excel(ctx context.Context, req types.ExportRequest) (*bytes.Buffer, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*bytes.Buffer), args.String(1), args.Error(2)
}

var _ ExportServiceInterface = (*MockExportService)(nil)

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Dashboard(ctx context.Context) (*types.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.DashboardStats), args.Error(1)
}

func (m *MockStatsService) MonthlySeries(ctx context.Context, year int) ([]types.MonthlyStat, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.MonthlyStat), args.Error(1)
}

var _ StatsServiceInterface = (*MockStatsService)(nil)
