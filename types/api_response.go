package types

// APIResponse is the success envelope returned by every endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// Success wraps data in the standard success envelope.
func Success(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}
