package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mlanzi/spese-backend/types"
	"github.com/shopspring/decimal"
)

// Fallback bucket for expenses without a category.
const (
	uncategorizedName  = "Non categorizzata"
	uncategorizedColor = "#6B7280"
)

// ExpenseSource is the slice of the expense store used for aggregation.
type ExpenseSource interface {
	List(ctx context.Context, f types.ExpenseFilter, columns string) ([]types.Expense, error)
}

// TripSource is the slice of the trip store used for aggregation.
type TripSource interface {
	List(ctx context.Context, f types.TripFilter, columns string) ([]types.Trip, error)
}

// StatsService computes dashboard and monthly report aggregates. All sums
// accumulate in decimal; rounding happens only at the store boundary, never
// mid-sum.
type StatsService struct {
	expenses ExpenseSource
	trips    TripSource
	now      func() time.Time
}

func NewStatsService(expenses ExpenseSource, trips TripSource) *StatsService {
	return &StatsService{expenses: expenses, trips: trips, now: time.Now}
}

// monthBounds returns the first and last day of the given month as ISO
// dates. Day 0 of the following month is the calendar-aware last day.
func monthBounds(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}

// Dashboard aggregates the current month plus outstanding chargeable
// expenses. Each underlying query is issued sequentially.
func (s *StatsService) Dashboard(ctx context.Context) (*types.DashboardStats, error) {
	today := s.now()
	from, to := monthBounds(today.Year(), today.Month())
	period := types.ExpenseFilter{DateFrom: from, DateTo: to}

	monthExpenses, err := s.expenses.List(ctx, period, "importo")
	if err != nil {
		return nil, err
	}
	expenseTotal := decimal.Zero
	for _, e := range monthExpenses {
		expenseTotal = expenseTotal.Add(e.Amount)
	}

	chargeable, notCharged := true, false
	pending, err := s.expenses.List(ctx, types.ExpenseFilter{Chargeable: &chargeable, Charged: &notCharged}, "importo")
	if err != nil {
		return nil, err
	}
	chargeableTotal := decimal.Zero
	for _, e := range pending {
		chargeableTotal = chargeableTotal.Add(e.Amount)
	}

	monthTrips, err := s.trips.List(ctx, types.TripFilter{DateFrom: from, DateTo: to}, "km_percorsi,rimborso_calcolato")
	if err != nil {
		return nil, err
	}
	distanceTotal, reimbursementTotal := decimal.Zero, decimal.Zero
	for _, t := range monthTrips {
		distanceTotal = distanceTotal.Add(t.DistanceKm)
		reimbursementTotal = reimbursementTotal.Add(t.Reimbursement)
	}

	byCategory, err := s.categoryBreakdown(ctx, period)
	if err != nil {
		return nil, err
	}

	return &types.DashboardStats{
		MonthExpenseTotal:  expenseTotal,
		ChargeableTotal:    chargeableTotal,
		MonthDistanceKm:    distanceTotal,
		MonthReimbursement: reimbursementTotal,
		MonthExpenseCount:  len(monthExpenses),
		MonthTripCount:     len(monthTrips),
		ByCategory:         byCategory,
	}, nil
}

// categoryBreakdown groups the period's expenses by category name, summing
// amounts per bucket. Expenses without a category land in an explicit
// uncategorized bucket with a fixed fallback color.
func (s *StatsService) categoryBreakdown(ctx context.Context, period types.ExpenseFilter) (map[string]types.CategoryTotal, error) {
	expenses, err := s.expenses.List(ctx, period, "categoria_id,importo,categorie(nome,colore)")
	if err != nil {
		return nil, err
	}

	totals := make(map[string]types.CategoryTotal)
	for _, e := range expenses {
		name, color := uncategorizedName, uncategorizedColor
		if e.Category != nil {
			name, color = e.Category.Name, e.Category.Color
		}
		bucket, ok := totals[name]
		if !ok {
			bucket = types.CategoryTotal{Total: decimal.Zero, Color: color}
		}
		bucket.Total = bucket.Total.Add(e.Amount)
		totals[name] = bucket
	}
	return totals, nil
}

// MonthlySeries returns exactly 12 entries for the year, months 1..12 in
// order, issuing one expense query and one trip query per month. Months with
// no records carry zero totals.
func (s *StatsService) MonthlySeries(ctx context.Context, year int) ([]types.MonthlyStat, error) {
	stats := make([]types.MonthlyStat, 0, 12)
	for month := time.January; month <= time.December; month++ {
		from, to := monthBounds(year, month)

		expenses, err := s.expenses.List(ctx, types.ExpenseFilter{DateFrom: from, DateTo: to}, "importo")
		if err != nil {
			return nil, fmt.Errorf("month %d expenses: %w", month, err)
		}
		expenseTotal := decimal.Zero
		for _, e := range expenses {
			expenseTotal = expenseTotal.Add(e.Amount)
		}

		trips, err := s.trips.List(ctx, types.TripFilter{DateFrom: from, DateTo: to}, "km_percorsi,rimborso_calcolato")
		if err != nil {
			return nil, fmt.Errorf("month %d trips: %w", month, err)
		}
		distanceTotal, reimbursementTotal := decimal.Zero, decimal.Zero
		for _, t := range trips {
			distanceTotal = distanceTotal.Add(t.DistanceKm)
			reimbursementTotal = reimbursementTotal.Add(t.Reimbursement)
		}

		stats = append(stats, types.MonthlyStat{
			Month:         int(month),
			ExpenseTotal:  expenseTotal,
			DistanceKm:    distanceTotal,
			Reimbursement: reimbursementTotal,
		})
	}
	return stats, nil
}
