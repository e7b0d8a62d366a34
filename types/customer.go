package types

// Customer is a billable client. Deletion is a soft delete: attivo is set to
// false and the row stays retrievable by id.
type Customer struct {
	ID      int64   `json:"id,omitempty"`
	Name    string  `json:"nome"`
	TaxID   *string `json:"partita_iva,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"telefono,omitempty"`
	Address *string `json:"indirizzo,omitempty"`
	Active  bool    `json:"attivo"`
}

// CustomerCreateRequest is the body of POST /api/clienti.
type CustomerCreateRequest struct {
	Name    string  `json:"nome"`
	TaxID   *string `json:"partita_iva"`
	Email   *string `json:"email"`
	Phone   *string `json:"telefono"`
	Address *string `json:"indirizzo"`
}

// CustomerUpdateRequest is the body of PUT /api/clienti/:id. Only fields
// present in the request are sent to the store.
type CustomerUpdateRequest struct {
	Name    *string `json:"nome,omitempty"`
	TaxID   *string `json:"partita_iva,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"telefono,omitempty"`
	Address *string `json:"indirizzo,omitempty"`
	Active  *bool   `json:"attivo,omitempty"`
}

// CustomerRef is the embedded shape returned by join expansion.
type CustomerRef struct {
	Name string `json:"nome"`
}
