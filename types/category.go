package types

// Category is an expense category. Wire field names follow the store schema.
type Category struct {
	ID     int64  `json:"id,omitempty"`
	Name   string `json:"nome"`
	Color  string `json:"colore,omitempty"`
	Active bool   `json:"attiva"`
}

// CategoryCreateRequest is the body of POST /api/categorie.
type CategoryCreateRequest struct {
	Name   string `json:"nome"`
	Color  string `json:"colore"`
	Active *bool  `json:"attiva"`
}

// CategoryRef is the embedded shape returned by join expansion.
type CategoryRef struct {
	Name  string `json:"nome"`
	Color string `json:"colore"`
}
