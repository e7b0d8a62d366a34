package types

// Export record type selectors.
const (
	ExportExpenses = "spese"
	ExportTrips    = "chilometriche"
)

// ExportFilters narrows the record set included in a spreadsheet export.
type ExportFilters struct {
	DateFrom   string `json:"data_inizio,omitempty"`
	DateTo     string `json:"data_fine,omitempty"`
	CustomerID *int64 `json:"cliente_id,omitempty"`
	ProjectID  *int64 `json:"progetto_id,omitempty"`
	CategoryID *int64 `json:"categoria_id,omitempty"`
	VehicleID  *int64 `json:"veicolo_id,omitempty"`
	Chargeable *bool  `json:"addebitabile,omitempty"`
}

// ExportRequest is the body of POST /api/export/excel.
type ExportRequest struct {
	Type    string        `json:"tipo"`
	Filters ExportFilters `json:"filtri"`
}
