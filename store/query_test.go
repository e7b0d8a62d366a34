package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryEncode_Defaults(t *testing.T) {
	q := NewQuery("spese")
	assert.Equal(t, "select=%2A", q.Encode())
}

func TestQueryEncode_ComposedRangeBounds(t *testing.T) {
	q := NewQuery("spese").
		Gte("data_spesa", "2025-03-01").
		Lte("data_spesa", "2025-03-31")

	// Both bounds on the same column must survive as repeated parameters;
	// PostgREST combines them with AND.
	assert.Equal(t, "data_spesa=gte.2025-03-01&data_spesa=lte.2025-03-31&select=%2A", q.Encode())
}

func TestQueryEncode_EmbeddedSelectAndOrder(t *testing.T) {
	q := NewQuery("spese").
		Select("*,clienti(nome)").
		Eq("cliente_id", "3").
		Order("data_spesa", true)

	encoded := q.Encode()
	assert.Contains(t, encoded, "select=%2A%2Cclienti%28nome%29")
	assert.Contains(t, encoded, "cliente_id=eq.3")
	assert.Contains(t, encoded, "order=data_spesa.desc")
}

func TestQueryEncode_AscendingOrderAndLimit(t *testing.T) {
	q := NewQuery("categorie").Order("nome", false).Limit(5)

	encoded := q.Encode()
	assert.Contains(t, encoded, "order=nome")
	assert.NotContains(t, encoded, ".desc")
	assert.Contains(t, encoded, "limit=5")
}
