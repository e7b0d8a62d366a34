package types

// Project belongs to one customer.
type Project struct {
	ID         int64        `json:"id,omitempty"`
	CustomerID *int64       `json:"cliente_id,omitempty"`
	Code       string       `json:"codice,omitempty"`
	Name       string       `json:"nome"`
	StartDate  *string      `json:"data_inizio,omitempty"`
	Status     string       `json:"stato,omitempty"`
	Customer   *CustomerRef `json:"clienti,omitempty"`
	CreatedAt  string       `json:"created_at,omitempty"`
}

// ProjectCreateRequest is the body of POST /api/progetti.
type ProjectCreateRequest struct {
	CustomerID *int64  `json:"cliente_id"`
	Code       string  `json:"codice"`
	Name       string  `json:"nome"`
	StartDate  *string `json:"data_inizio"`
	Status     *string `json:"stato"`
}

// ProjectUpdateRequest is the body of PUT /api/progetti/:id.
type ProjectUpdateRequest struct {
	CustomerID *int64  `json:"cliente_id,omitempty"`
	Code       *string `json:"codice,omitempty"`
	Name       *string `json:"nome,omitempty"`
	StartDate  *string `json:"data_inizio,omitempty"`
	Status     *string `json:"stato,omitempty"`
}

// ProjectRef is the embedded shape returned by join expansion.
type ProjectRef struct {
	Name string `json:"nome"`
	Code string `json:"codice,omitempty"`
}
