package services

import (
	"bytes"
	"context"
	"fmt"

	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/types"
	"github.com/xuri/excelize/v2"
)

// ExportService renders filtered expense or trip sets as an .xlsx workbook.
type ExportService struct {
	expenses ExpenseSource
	trips    TripSource
}

func NewExportService(expenses ExpenseSource, trips TripSource) *ExportService {
	return &ExportService{expenses: expenses, trips: trips}
}

// Excel builds the workbook for the requested record type. An unknown type is
// a client error; an empty result set still yields a sheet with the header
// row.
func (s *ExportService) Excel(ctx context.Context, req types.ExportRequest) (*bytes.Buffer, string, error) {
	switch req.Type {
	case types.ExportExpenses:
		buf, err := s.expensesWorkbook(ctx, req.Filters)
		return buf, "export_spese.xlsx", err
	case types.ExportTrips:
		buf, err := s.tripsWorkbook(ctx, req.Filters)
		return buf, "export_chilometriche.xlsx", err
	default:
		return nil, "", apperrors.ValidationFailed("invalid export type", fmt.Sprintf("tipo must be %q or %q", types.ExportExpenses, types.ExportTrips))
	}
}

func (s *ExportService) expensesWorkbook(ctx context.Context, f types.ExportFilters) (*bytes.Buffer, error) {
	expenses, err := s.expenses.List(ctx, types.ExpenseFilter{
		DateFrom:   f.DateFrom,
		DateTo:     f.DateTo,
		CustomerID: f.CustomerID,
		ProjectID:  f.ProjectID,
		CategoryID: f.CategoryID,
		Chargeable: f.Chargeable,
	}, "")
	if err != nil {
		return nil, err
	}

	const sheet = "Spese"
	headers := []string{"Data", "Categoria", "Cliente", "Progetto", "Descrizione", "Fornitore", "Importo €", "Addebitabile", "Note"}

	file, err := newWorkbook(sheet, headers)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	for i, e := range expenses {
		row := []interface{}{
			e.Date,
			categoryName(e.Category),
			customerName(e.Customer),
			projectName(e.Project),
			e.Description,
			strOrEmpty(e.Supplier),
			e.Amount.InexactFloat64(),
			yesNo(e.Chargeable),
			strOrEmpty(e.Note),
		}
		if err := writeRow(file, sheet, i+2, row); err != nil {
			return nil, err
		}
	}
	return finishWorkbook(file)
}

func (s *ExportService) tripsWorkbook(ctx context.Context, f types.ExportFilters) (*bytes.Buffer, error) {
	trips, err := s.trips.List(ctx, types.TripFilter{
		DateFrom:   f.DateFrom,
		DateTo:     f.DateTo,
		VehicleID:  f.VehicleID,
		CustomerID: f.CustomerID,
		ProjectID:  f.ProjectID,
		Chargeable: f.Chargeable,
	}, "")
	if err != nil {
		return nil, err
	}

	const sheet = "Chilometriche"
	headers := []string{"Data", "Veicolo", "Cliente", "Progetto", "Partenza", "Arrivo", "Km", "Tariffa €/km", "Rimborso €", "Addebitabile"}

	file, err := newWorkbook(sheet, headers)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	for i, t := range trips {
		row := []interface{}{
			t.Date,
			vehicleName(t.Vehicle),
			customerName(t.Customer),
			projectName(t.Project),
			t.Origin,
			t.Destination,
			t.DistanceKm.InexactFloat64(),
			t.Rate.InexactFloat64(),
			t.Reimbursement.InexactFloat64(),
			yesNo(t.Chargeable),
		}
		if err := writeRow(file, sheet, i+2, row); err != nil {
			return nil, err
		}
	}
	return finishWorkbook(file)
}

// newWorkbook creates a single-sheet workbook with a styled header row: bold
// white text on a blue fill, centered.
func newWorkbook(sheet string, headers []string) (*excelize.File, error) {
	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		file.Close()
		return nil, apperrors.InternalServerError("failed to create workbook")
	}

	style, err := file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		file.Close()
		return nil, apperrors.InternalServerError("failed to style workbook")
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := file.SetCellValue(sheet, cell, h); err != nil {
			file.Close()
			return nil, apperrors.InternalServerError("failed to write workbook header")
		}
	}
	endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := file.SetCellStyle(sheet, "A1", endCell, style); err != nil {
		file.Close()
		return nil, apperrors.InternalServerError("failed to style workbook header")
	}
	return file, nil
}

func writeRow(file *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, _ := excelize.CoordinatesToCellName(1, rowNum)
	if err := file.SetSheetRow(sheet, cell, &values); err != nil {
		return apperrors.InternalServerError("failed to write workbook row")
	}
	return nil
}

func finishWorkbook(file *excelize.File) (*bytes.Buffer, error) {
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, apperrors.InternalServerError("failed to serialize workbook")
	}
	return buf, nil
}

func yesNo(b bool) string {
	if b {
		return "Sì"
	}
	return "No"
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func categoryName(c *types.CategoryRef) string {
	if c == nil {
		return ""
	}
	return c.Name
}

func customerName(c *types.CustomerRef) string {
	if c == nil {
		return ""
	}
	return c.Name
}

func projectName(p *types.ProjectRef) string {
	if p == nil {
		return ""
	}
	return p.Name
}

func vehicleName(v *types.VehicleRef) string {
	if v == nil {
		return ""
	}
	name := v.Plate
	if v.Make != "" || v.Model != "" {
		name = fmt.Sprintf("%s (%s %s)", v.Plate, v.Make, v.Model)
	}
	return name
}
