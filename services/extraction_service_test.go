package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_TotalWithCommaDecimal(t *testing.T) {
	e := NewExtractor()

	data := e.Extract("SUPERMERCATO ROSSI\nTOTALE: € 45,90\nGrazie e arrivederci")

	require.NotNil(t, data.Amount)
	assert.Equal(t, "45.9", data.Amount.String())
	assert.Equal(t, "SUPERMERCATO ROSSI\nTOTALE: € 45,90\nGrazie e arrivederci", data.FullText)
}

func TestExtract_FirstMatchWins(t *testing.T) {
	e := NewExtractor()

	// The euro-sign pattern would also match 12.00, but the TOTALE pattern
	// has priority regardless of position in the text.
	data := e.Extract("€ 12.00 sconto applicato\nTOTALE 45.00")

	require.NotNil(t, data.Amount)
	assert.Equal(t, "45", data.Amount.String())
}

func TestExtract_Date(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"slash four-digit year", "Data: 15/03/2025", "15/03/2025"},
		{"dash separator", "emesso il 01-12-2024", "01-12-2024"},
		{"two-digit year only when no four-digit match", "scontrino 15/03/25", "15/03/25"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := e.Extract(tc.text)
			assert.Equal(t, tc.want, data.Date)
		})
	}
}

func TestExtract_TaxID(t *testing.T) {
	e := NewExtractor()

	data := e.Extract("ROSSI SRL\nP.IVA: 01234567890")
	assert.Equal(t, "01234567890", data.TaxID)

	data = e.Extract("ROSSI SRL\nPIVA 01234567890")
	assert.Equal(t, "01234567890", data.TaxID)
}

func TestExtract_AbsentFields(t *testing.T) {
	e := NewExtractor()

	data := e.Extract("testo senza importi ne date")

	assert.Nil(t, data.Amount)
	assert.Empty(t, data.Date)
	assert.Empty(t, data.TaxID)
	assert.Empty(t, data.Warning)
}

func TestExtract_EmptyText(t *testing.T) {
	e := NewExtractor()

	data := e.Extract("")

	assert.Nil(t, data.Amount)
	assert.Empty(t, data.FullText)
}
