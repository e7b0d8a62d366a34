package types

import "github.com/shopspring/decimal"

// Trip is a mileage record. Reimbursement is always round2(distance × rate),
// recomputed whenever either input changes; a stale stored value is never
// trusted.
type Trip struct {
	ID            int64           `json:"id,omitempty"`
	Date          string          `json:"data_viaggio"`
	VehicleID     *int64          `json:"veicolo_id,omitempty"`
	Origin        string          `json:"partenza"`
	Destination   string          `json:"arrivo"`
	DistanceKm    decimal.Decimal `json:"km_percorsi"`
	Rate          decimal.Decimal `json:"tariffa_applicata"`
	Reimbursement decimal.Decimal `json:"rimborso_calcolato"`
	CustomerID    *int64          `json:"cliente_id,omitempty"`
	ProjectID     *int64          `json:"progetto_id,omitempty"`
	Chargeable    bool            `json:"addebitabile"`
	Vehicle       *VehicleRef     `json:"veicoli,omitempty"`
	Customer      *CustomerRef    `json:"clienti,omitempty"`
	Project       *ProjectRef     `json:"progetti,omitempty"`
	CreatedAt     string          `json:"created_at,omitempty"`
}

// TripCreateRequest is the body of POST /api/chilometriche. Rate falls back
// to the configured default when absent. A caller-supplied Reimbursement is
// ignored and recomputed.
type TripCreateRequest struct {
	Date          string           `json:"data_viaggio"`
	VehicleID     *int64           `json:"veicolo_id"`
	Origin        string           `json:"partenza"`
	Destination   string           `json:"arrivo"`
	DistanceKm    *decimal.Decimal `json:"km_percorsi"`
	Rate          *decimal.Decimal `json:"tariffa_applicata"`
	Reimbursement *decimal.Decimal `json:"rimborso_calcolato"`
	CustomerID    *int64           `json:"cliente_id"`
	ProjectID     *int64           `json:"progetto_id"`
	Chargeable    *bool            `json:"addebitabile"`
}

// TripUpdateRequest is the body of PUT /api/chilometriche/:id. When
// DistanceKm or Rate is present the reimbursement is recomputed from the
// merged record, overriding any supplied Reimbursement.
type TripUpdateRequest struct {
	Date          *string          `json:"data_viaggio,omitempty"`
	VehicleID     *int64           `json:"veicolo_id,omitempty"`
	Origin        *string          `json:"partenza,omitempty"`
	Destination   *string          `json:"arrivo,omitempty"`
	DistanceKm    *decimal.Decimal `json:"km_percorsi,omitempty"`
	Rate          *decimal.Decimal `json:"tariffa_applicata,omitempty"`
	Reimbursement *decimal.Decimal `json:"rimborso_calcolato,omitempty"`
	CustomerID    *int64           `json:"cliente_id,omitempty"`
	ProjectID     *int64           `json:"progetto_id,omitempty"`
	Chargeable    *bool            `json:"addebitabile,omitempty"`
}

// TripFilter carries the recognized list-query conditions for trips.
type TripFilter struct {
	DateFrom   string
	DateTo     string
	VehicleID  *int64
	CustomerID *int64
	ProjectID  *int64
	Chargeable *bool
}
