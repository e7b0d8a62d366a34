package types

import "github.com/shopspring/decimal"

// Vehicle is a company vehicle used for reimbursed trips. ACIRate is the
// standard government-published per-km rate; CustomRate overrides it when
// UseCustomRate is set. Deletion is a soft delete via attivo=false.
type Vehicle struct {
	ID            int64            `json:"id,omitempty"`
	Plate         string           `json:"targa"`
	Make          string           `json:"marca,omitempty"`
	Model         string           `json:"modello,omitempty"`
	Year          *int             `json:"anno,omitempty"`
	ACIRate       *decimal.Decimal `json:"tariffa_aci,omitempty"`
	CustomRate    *decimal.Decimal `json:"tariffa_personalizzata,omitempty"`
	UseCustomRate bool             `json:"usa_tariffa_personalizzata"`
	Active        bool             `json:"attivo"`
}

// Rate returns the per-km rate that applies to this vehicle, or nil when the
// vehicle carries no usable rate.
func (v *Vehicle) Rate() *decimal.Decimal {
	if v.UseCustomRate && v.CustomRate != nil {
		return v.CustomRate
	}
	return v.ACIRate
}

// VehicleCreateRequest is the body of POST /api/veicoli.
type VehicleCreateRequest struct {
	Plate         string           `json:"targa"`
	Make          *string          `json:"marca"`
	Model         *string          `json:"modello"`
	Year          *int             `json:"anno"`
	ACIRate       *decimal.Decimal `json:"tariffa_aci"`
	CustomRate    *decimal.Decimal `json:"tariffa_personalizzata"`
	UseCustomRate *bool            `json:"usa_tariffa_personalizzata"`
}

// VehicleUpdateRequest is the body of PUT /api/veicoli/:id.
type VehicleUpdateRequest struct {
	Plate         *string          `json:"targa,omitempty"`
	Make          *string          `json:"marca,omitempty"`
	Model         *string          `json:"modello,omitempty"`
	Year          *int             `json:"anno,omitempty"`
	ACIRate       *decimal.Decimal `json:"tariffa_aci,omitempty"`
	CustomRate    *decimal.Decimal `json:"tariffa_personalizzata,omitempty"`
	UseCustomRate *bool            `json:"usa_tariffa_personalizzata,omitempty"`
	Active        *bool            `json:"attivo,omitempty"`
}

// VehicleRef is the embedded shape returned by join expansion.
type VehicleRef struct {
	Plate string `json:"targa"`
	Make  string `json:"marca,omitempty"`
	Model string `json:"modello,omitempty"`
}
