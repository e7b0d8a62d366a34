package types

import "github.com/shopspring/decimal"

// CategoryTotal is one bucket of the category breakdown.
type CategoryTotal struct {
	Total decimal.Decimal `json:"totale"`
	Color string          `json:"colore"`
}

// DashboardStats aggregates the current month plus outstanding chargeable
// expenses.
type DashboardStats struct {
	MonthExpenseTotal  decimal.Decimal          `json:"totale_spese_mese"`
	ChargeableTotal    decimal.Decimal          `json:"totale_addebitabili"`
	MonthDistanceKm    decimal.Decimal          `json:"totale_km_mese"`
	MonthReimbursement decimal.Decimal          `json:"totale_rimborsi_km"`
	MonthExpenseCount  int                      `json:"num_spese_mese"`
	MonthTripCount     int                      `json:"num_viaggi_mese"`
	ByCategory         map[string]CategoryTotal `json:"spese_per_categoria"`
}

// MonthlyStat is one entry of the 12-month series for a year. Months with no
// matching records carry zero totals rather than being omitted.
type MonthlyStat struct {
	Month         int             `json:"mese"`
	ExpenseTotal  decimal.Decimal `json:"totale_spese"`
	DistanceKm    decimal.Decimal `json:"totale_km"`
	Reimbursement decimal.Decimal `json:"totale_rimborsi"`
}
