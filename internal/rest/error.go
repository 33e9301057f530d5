package rest

// ErrorResponse is the JSON error envelope shared by all API handlers.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
