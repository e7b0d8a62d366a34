package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mlanzi/spese-backend/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsDashboard(t *testing.T) {
	svc := new(MockStatsService)
	svc.On("Dashboard", mock.Anything).Return(&types.DashboardStats{
		MonthExpenseTotal: decimal.RequireFromString("123.45"),
		MonthExpenseCount: 7,
		ByCategory:        map[string]types.CategoryTotal{},
	}, nil)

	r := buildRouter(http.MethodGet, "/api/stats/dashboard", NewStatsHandler(svc).Dashboard)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats/dashboard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp types.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "123.45", data["totale_spese_mese"])
	assert.Equal(t, float64(7), data["num_spese_mese"])
	svc.AssertExpectations(t)
}

func TestStatsMonthly_ExplicitYear(t *testing.T) {
	svc := new(MockStatsService)
	svc.On("MonthlySeries", mock.Anything, 2024).Return(make([]types.MonthlyStat, 12), nil)

	r := buildRouter(http.MethodGet, "/api/stats/mensili", NewStatsHandler(svc).Monthly)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats/mensili?anno=2024", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestStatsMonthly_DefaultsToCurrentYear(t *testing.T) {
	svc := new(MockStatsService)
	svc.On("MonthlySeries", mock.Anything, time.Now().Year()).Return([]types.MonthlyStat{}, nil)

	r := buildRouter(http.MethodGet, "/api/stats/mensili", NewStatsHandler(svc).Monthly)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats/mensili", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestStatsMonthly_InvalidYear(t *testing.T) {
	svc := new(MockStatsService)
	r := buildRouter(http.MethodGet, "/api/stats/mensili", NewStatsHandler(svc).Monthly)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats/mensili?anno=duemila", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "MonthlySeries")
}
